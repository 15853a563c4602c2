//go:build integration
// +build integration

package repository

import (
	"testing"

	"github.com/themizzi/sauceshop/internal/repository/testutil"
)

func TestOrderRepository_Integration(t *testing.T) {
	runOrderArchiveTests(t, func(t *testing.T) orderArchive {
		testDB := testutil.SetupTestDatabase(t)
		t.Cleanup(func() { testDB.Teardown(t) })
		return NewOrderRepository(testDB.DB)
	})
}

func TestOrderRepository_ItemsKeepPosition_Integration(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	defer testDB.Teardown(t)

	repo := NewOrderRepository(testDB.DB)

	order := newTestOrder(t, "order-positions", "4", "3", "2", "1")
	if err := repo.CreateOrder(order); err != nil {
		t.Fatalf("CreateOrder() error = %v", err)
	}

	got, err := repo.GetOrderByOrderID("order-positions")
	if err != nil {
		t.Fatalf("GetOrderByOrderID() error = %v", err)
	}

	want := []string{"4", "3", "2", "1"}
	for i := range want {
		if got.Items[i] != want[i] {
			t.Fatalf("position %d: got %s, want %s", i, got.Items[i], want[i])
		}
	}
}

func TestOrderRepository_FailedInsertLeavesNothing_Integration(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	defer testDB.Teardown(t)

	repo := NewOrderRepository(testDB.DB)

	order := newTestOrder(t, "order-bad", "1")
	order.ID = "not-a-uuid"

	if err := repo.CreateOrder(order); err == nil {
		t.Fatal("expected error for invalid UUID")
	}

	var count int
	if err := testDB.DB.QueryRow("SELECT COUNT(*) FROM orders").Scan(&count); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected no rows after failed insert, got %d", count)
	}
}
