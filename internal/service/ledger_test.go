package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"optiondesk/internal/models"
	"optiondesk/internal/repository"
	"optiondesk/internal/repository/memory"
)

func newLedger(t *testing.T) (*LedgerService, *memory.Store) {
	t.Helper()
	store := memory.New()
	err := store.SaveBankBalance(context.Background(), &models.BankBalance{
		ID:          "bal1",
		BankBalance: decimal.NewFromInt(100000),
	})
	if err != nil {
		t.Fatalf("seed balance: %v", err)
	}
	return &LedgerService{Repo: store, BalanceID: "bal1"}, store
}

func buyPosition(netPrice int64) models.Position {
	return models.Position{
		Strike:          decimal.NewFromInt(20000),
		InstrumentType:  models.InstrumentCall,
		TransactionType: models.TransactionBuy,
		NetQuantity:     1,
		NetPrice:        decimal.NewFromInt(netPrice),
		Expiry:          models.Expiry{Date: 1, Month: 1, Year: 2026},
		UnderlyingID:    "1",
	}
}

func requireBalance(t *testing.T, svc *LedgerService, want int64) {
	t.Helper()
	bal, err := svc.Balance(context.Background())
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if bal.BankBalance.Cmp(decimal.NewFromInt(want)) != 0 {
		t.Fatalf("balance=%s want=%d", bal.BankBalance.String(), want)
	}
}

func TestAddPositionDebitsBuy(t *testing.T) {
	svc, _ := newLedger(t)

	created, err := svc.AddPosition(context.Background(), buyPosition(100))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected a generated id")
	}
	if created.Timestamp == "" {
		t.Fatal("expected a record timestamp")
	}
	requireBalance(t, svc, 99900)
}

func TestAddPositionSequence(t *testing.T) {
	svc, _ := newLedger(t)
	ctx := context.Background()

	if _, err := svc.AddPosition(ctx, buyPosition(100)); err != nil {
		t.Fatalf("add buy: %v", err)
	}
	sell := buyPosition(250)
	sell.TransactionType = models.TransactionSell
	if _, err := svc.AddPosition(ctx, sell); err != nil {
		t.Fatalf("add sell: %v", err)
	}
	if _, err := svc.AddPosition(ctx, buyPosition(40)); err != nil {
		t.Fatalf("add buy: %v", err)
	}

	// 100000 - 100 + 250 - 40
	requireBalance(t, svc, 100110)
}

func TestUpdatePositionReversesThenReapplies(t *testing.T) {
	svc, _ := newLedger(t)
	ctx := context.Background()

	created, err := svc.AddPosition(ctx, buyPosition(100))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	requireBalance(t, svc, 99900)

	updated := *created
	updated.TransactionType = models.TransactionSell
	if _, err := svc.UpdatePosition(ctx, updated); err != nil {
		t.Fatalf("update: %v", err)
	}

	// Reverse BUY (+100) then apply SELL (+100).
	requireBalance(t, svc, 100100)

	stored, err := svc.GetPositionByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.TransactionType != models.TransactionSell {
		t.Fatalf("transaction_type=%s want=SELL", stored.TransactionType)
	}
}

func TestUpdateRoundTripRestoresBalance(t *testing.T) {
	svc, _ := newLedger(t)
	ctx := context.Background()

	created, err := svc.AddPosition(ctx, buyPosition(100))
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	flipped := *created
	flipped.TransactionType = models.TransactionSell
	if _, err := svc.UpdatePosition(ctx, flipped); err != nil {
		t.Fatalf("flip: %v", err)
	}
	back := flipped
	back.TransactionType = models.TransactionBuy
	if _, err := svc.UpdatePosition(ctx, back); err != nil {
		t.Fatalf("flip back: %v", err)
	}

	requireBalance(t, svc, 99900)
}

func TestUpdateMissingPositionLeavesBalance(t *testing.T) {
	svc, _ := newLedger(t)

	ghost := buyPosition(100)
	ghost.ID = "does-not-exist"
	_, err := svc.UpdatePosition(context.Background(), ghost)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("err=%v want ErrNotFound", err)
	}
	requireBalance(t, svc, 100000)
}

// Removal keeps the position's balance effect; only update reverses it.
func TestDeletePositionKeepsBalanceEffect(t *testing.T) {
	svc, _ := newLedger(t)
	ctx := context.Background()

	created, err := svc.AddPosition(ctx, buyPosition(100))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	deleted, err := svc.DeletePosition(ctx, created.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted.ID != created.ID {
		t.Fatalf("deleted id=%s want=%s", deleted.ID, created.ID)
	}

	requireBalance(t, svc, 99900)

	items, err := svc.GetAllPositions(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("positions=%d want=0", len(items))
	}
}

func TestDeleteMissingPosition(t *testing.T) {
	svc, _ := newLedger(t)

	_, err := svc.DeletePosition(context.Background(), "does-not-exist")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("err=%v want ErrNotFound", err)
	}
	requireBalance(t, svc, 100000)
}
