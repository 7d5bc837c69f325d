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

func newAccount(t *testing.T) (*AccountService, *memory.Store) {
	t.Helper()
	store := memory.Demo("1", "bal1", decimal.NewFromInt(100000))
	return &AccountService{Repo: store}, store
}

func requireUserBalance(t *testing.T, svc *AccountService, want int64) {
	t.Helper()
	bal, err := svc.UserBankBalance(context.Background(), "1")
	if err != nil {
		t.Fatalf("user balance: %v", err)
	}
	if bal.BankBalance.Cmp(decimal.NewFromInt(want)) != 0 {
		t.Fatalf("balance=%s want=%d", bal.BankBalance.String(), want)
	}
}

func TestUserStartsWithoutPositions(t *testing.T) {
	svc, _ := newAccount(t)

	items, err := svc.UserPositions(context.Background(), "1")
	if err != nil {
		t.Fatalf("user positions: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("positions=%d want=0; seed book is global, not user-owned", len(items))
	}
}

func TestAddUserPositionTracksOwnershipAndBalance(t *testing.T) {
	svc, _ := newAccount(t)
	ctx := context.Background()

	created, err := svc.AddUserPosition(ctx, "1", buyPosition(100))
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	user, err := svc.GetUser(ctx, "1")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if !user.OwnsPosition(created.ID) {
		t.Fatalf("user does not own %s", created.ID)
	}
	requireUserBalance(t, svc, 99900)
}

func TestUpdateUserPositionRequiresOwnership(t *testing.T) {
	svc, _ := newAccount(t)

	// Position "1" exists in the global book but is not owned by the user.
	foreign := buyPosition(100)
	foreign.ID = "1"
	_, err := svc.UpdateUserPosition(context.Background(), "1", foreign)
	if !errors.Is(err, ErrNotOwned) {
		t.Fatalf("err=%v want ErrNotOwned", err)
	}
	requireUserBalance(t, svc, 100000)
}

func TestUpdateUserPositionReversesThenReapplies(t *testing.T) {
	svc, _ := newAccount(t)
	ctx := context.Background()

	created, err := svc.AddUserPosition(ctx, "1", buyPosition(100))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	flipped := *created
	flipped.TransactionType = models.TransactionSell
	if _, err := svc.UpdateUserPosition(ctx, "1", flipped); err != nil {
		t.Fatalf("update: %v", err)
	}
	requireUserBalance(t, svc, 100100)
}

func TestDeleteUserPositionKeepsBalanceEffect(t *testing.T) {
	svc, _ := newAccount(t)
	ctx := context.Background()

	created, err := svc.AddUserPosition(ctx, "1", buyPosition(100))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.DeleteUserPosition(ctx, "1", created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	user, err := svc.GetUser(ctx, "1")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if user.OwnsPosition(created.ID) {
		t.Fatal("position id still on user after delete")
	}
	requireUserBalance(t, svc, 99900)
}

func TestDeleteUserPositionNotOwned(t *testing.T) {
	svc, _ := newAccount(t)

	_, err := svc.DeleteUserPosition(context.Background(), "1", "2")
	if !errors.Is(err, ErrNotOwned) {
		t.Fatalf("err=%v want ErrNotOwned", err)
	}
}

func TestUnknownUserFails(t *testing.T) {
	svc, _ := newAccount(t)

	_, err := svc.AddUserPosition(context.Background(), "ghost", buyPosition(100))
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("err=%v want ErrNotFound", err)
	}
}

func TestSetUserBankBalance(t *testing.T) {
	svc, _ := newAccount(t)

	bal, err := svc.SetUserBankBalance(context.Background(), "1", decimal.NewFromInt(50000))
	if err != nil {
		t.Fatalf("set balance: %v", err)
	}
	if bal.BankBalance.Cmp(decimal.NewFromInt(50000)) != 0 {
		t.Fatalf("balance=%s want=50000", bal.BankBalance.String())
	}
	requireUserBalance(t, svc, 50000)
}
