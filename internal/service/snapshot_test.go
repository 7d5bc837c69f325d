package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"optiondesk/internal/repository/memory"
)

func TestSnapshotPortfolio(t *testing.T) {
	store := memory.Demo("1", "bal1", decimal.NewFromInt(100000))
	svc := &PortfolioSnapshotService{Repo: store, BalanceID: "bal1"}
	ctx := context.Background()

	if err := svc.SnapshotPortfolio(ctx); err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if err := svc.SnapshotPortfolio(ctx); err != nil {
		t.Fatalf("snapshot: %v", err)
	}

	items, err := svc.History(ctx, 1)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("len=%d want=1", len(items))
	}
	snap := items[0]
	if snap.OpenPositions != 2 {
		t.Fatalf("open_positions=%d want=2", snap.OpenPositions)
	}
	if snap.BankBalance.Cmp(decimal.NewFromInt(100000)) != 0 {
		t.Fatalf("bank_balance=%s want=100000", snap.BankBalance.String())
	}
	// Two seeded BUY legs at 100 each.
	if snap.NetPremium.Cmp(decimal.NewFromInt(-200)) != 0 {
		t.Fatalf("net_premium=%s want=-200", snap.NetPremium.String())
	}
}

func TestSnapshotHistoryNewestFirst(t *testing.T) {
	store := memory.Demo("1", "bal1", decimal.NewFromInt(100000))
	svc := &PortfolioSnapshotService{Repo: store, BalanceID: "bal1"}
	ledger := &LedgerService{Repo: store, BalanceID: "bal1"}
	ctx := context.Background()

	if err := svc.SnapshotPortfolio(ctx); err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if _, err := ledger.AddPosition(ctx, buyPosition(100)); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.SnapshotPortfolio(ctx); err != nil {
		t.Fatalf("snapshot: %v", err)
	}

	items, err := svc.History(ctx, 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len=%d want=2", len(items))
	}
	if items[0].OpenPositions != 3 || items[1].OpenPositions != 2 {
		t.Fatalf("order wrong: got %d then %d open positions", items[0].OpenPositions, items[1].OpenPositions)
	}
}
