package repository_test

import (
	"testing"

	"github.com/RahulAr0x/Investment-pro/internal/model"
	"github.com/RahulAr0x/Investment-pro/internal/repository"
	"github.com/RahulAr0x/Investment-pro/internal/testutil"
)

func TestWatchlistItems(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewWatchlistRepository(db)

	t.Run("add and list", func(t *testing.T) {
		testutil.AddWatchlistItem(t, db, "default", "AAPL")
		testutil.AddWatchlistItem(t, db, "default", "NVDA")
		testutil.AddWatchlistItem(t, db, "tech", "AMD")

		items, err := repo.GetItems("default")
		if err != nil {
			t.Fatalf("GetItems failed: %v", err)
		}
		if len(items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(items))
		}
		for _, item := range items {
			if item.List != "default" {
				t.Errorf("item %s on list %s, want default", item.Symbol, item.List)
			}
		}
	})

	t.Run("duplicate add is a no-op", func(t *testing.T) {
		testutil.AddWatchlistItem(t, db, "default", "AAPL")

		items, err := repo.GetItems("default")
		if err != nil {
			t.Fatalf("GetItems failed: %v", err)
		}
		if len(items) != 2 {
			t.Errorf("expected 2 items after duplicate add, got %d", len(items))
		}
	})

	t.Run("membership", func(t *testing.T) {
		has, err := repo.HasItem("default", "AAPL")
		if err != nil {
			t.Fatalf("HasItem failed: %v", err)
		}
		if !has {
			t.Error("expected AAPL on default list")
		}

		has, err = repo.HasItem("default", "AMD")
		if err != nil {
			t.Fatalf("HasItem failed: %v", err)
		}
		if has {
			t.Error("AMD should only be on the tech list")
		}
	})

	t.Run("remove", func(t *testing.T) {
		removed, err := repo.RemoveItem("default", "NVDA")
		if err != nil {
			t.Fatalf("RemoveItem failed: %v", err)
		}
		if !removed {
			t.Error("expected removal to report true")
		}

		removed, err = repo.RemoveItem("default", "NVDA")
		if err != nil {
			t.Fatalf("RemoveItem failed: %v", err)
		}
		if removed {
			t.Error("second removal should report false")
		}
	})
}

func TestAlerts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewWatchlistRepository(db)

	t.Run("create and list", func(t *testing.T) {
		testutil.NewAlert().WithSymbol("AAPL").WithCondition(200).Build(t, db)
		testutil.NewAlert().
			WithSymbol("TSLA").
			WithType(model.AlertPriceBelow).
			WithCondition(180).
			Triggered().
			Build(t, db)

		all, err := repo.GetAlerts(false)
		if err != nil {
			t.Fatalf("GetAlerts failed: %v", err)
		}
		if len(all) != 2 {
			t.Fatalf("expected 2 alerts, got %d", len(all))
		}

		active, err := repo.GetAlerts(true)
		if err != nil {
			t.Fatalf("GetAlerts failed: %v", err)
		}
		if len(active) != 1 {
			t.Fatalf("expected 1 active alert, got %d", len(active))
		}
		if active[0].Symbol != "AAPL" {
			t.Errorf("active alert symbol = %s, want AAPL", active[0].Symbol)
		}
		if active[0].Type != model.AlertPriceAbove {
			t.Errorf("active alert type = %s, want price_above", active[0].Type)
		}
	})

	t.Run("mark triggered", func(t *testing.T) {
		alert := testutil.NewAlert().WithSymbol("NVDA").Build(t, db)

		if err := repo.MarkTriggered(alert.ID); err != nil {
			t.Fatalf("MarkTriggered failed: %v", err)
		}

		active, err := repo.GetAlerts(true)
		if err != nil {
			t.Fatalf("GetAlerts failed: %v", err)
		}
		for _, a := range active {
			if a.ID == alert.ID {
				t.Error("triggered alert still listed as active")
			}
		}
	})

	t.Run("delete", func(t *testing.T) {
		alert := testutil.NewAlert().WithSymbol("AMD").Build(t, db)

		deleted, err := repo.DeleteAlert(alert.ID)
		if err != nil {
			t.Fatalf("DeleteAlert failed: %v", err)
		}
		if !deleted {
			t.Error("expected deletion to report true")
		}

		deleted, err = repo.DeleteAlert(alert.ID)
		if err != nil {
			t.Fatalf("DeleteAlert failed: %v", err)
		}
		if deleted {
			t.Error("second deletion should report false")
		}
	})
}
