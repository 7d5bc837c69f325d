package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"optiondesk/internal/models"
	"optiondesk/internal/repository"
)

const recordTimeLayout = "2006-01-02 15:04:05"

// balanceEffect is the signed cash delta a position applies to a balance
// when it is booked: BUY debits the net price, SELL credits it.
func balanceEffect(p *models.Position) decimal.Decimal {
	if p.TransactionType == models.TransactionBuy {
		return p.NetPrice.Neg()
	}
	return p.NetPrice
}

// LedgerService keeps the default account's bank balance consistent with
// position mutations. It is the only component with bookkeeping rules; the
// stores hold state and nothing else.
type LedgerService struct {
	Repo      repository.Repository
	Logger    *zap.Logger
	BalanceID string
}

func (s *LedgerService) GetAllPositions(ctx context.Context) ([]models.Position, error) {
	return s.Repo.ListPositions(ctx)
}

func (s *LedgerService) GetPositionByID(ctx context.Context, id string) (*models.Position, error) {
	return s.Repo.GetPositionByID(ctx, id)
}

// AddPosition books the position and applies its effect to the balance.
// The position is created first; a balance write failure leaves it booked
// with no compensation step.
func (s *LedgerService) AddPosition(ctx context.Context, item models.Position) (*models.Position, error) {
	if item.Timestamp == "" {
		item.Timestamp = time.Now().Format(recordTimeLayout)
	}
	created, err := s.Repo.InsertPosition(ctx, &item)
	if err != nil {
		return nil, err
	}
	if err := s.applyToBalance(ctx, balanceEffect(created)); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.Info("position added",
			zap.String("position_id", created.ID),
			zap.String("transaction_type", created.TransactionType),
			zap.String("net_price", created.NetPrice.String()),
		)
	}
	return created, nil
}

// UpdatePosition reverses the stored position's balance effect, applies the
// incoming one, then persists the new position. A missing id fails before
// any balance mutation.
func (s *LedgerService) UpdatePosition(ctx context.Context, item models.Position) (*models.Position, error) {
	old, err := s.Repo.GetPositionByID(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	if old == nil {
		return nil, fmt.Errorf("position %s: %w", item.ID, repository.ErrNotFound)
	}
	delta := balanceEffect(&item).Sub(balanceEffect(old))
	if err := s.applyToBalance(ctx, delta); err != nil {
		return nil, err
	}
	return s.Repo.UpdatePosition(ctx, &item)
}

// DeletePosition removes the position from the store. The balance keeps the
// position's original effect: removal is not a square-off refund, unlike
// update which reverses before reapplying. See DESIGN.md.
func (s *LedgerService) DeletePosition(ctx context.Context, id string) (*models.Position, error) {
	return s.Repo.DeletePosition(ctx, id)
}

func (s *LedgerService) applyToBalance(ctx context.Context, delta decimal.Decimal) error {
	bal, err := s.Repo.GetBankBalanceByID(ctx, s.BalanceID)
	if err != nil {
		return err
	}
	if bal == nil {
		return fmt.Errorf("bank balance %s: %w", s.BalanceID, repository.ErrNotFound)
	}
	bal.BankBalance = bal.BankBalance.Add(delta)
	return s.Repo.SaveBankBalance(ctx, bal)
}

// Balance reads the default account's balance record.
func (s *LedgerService) Balance(ctx context.Context) (*models.BankBalance, error) {
	bal, err := s.Repo.GetBankBalanceByID(ctx, s.BalanceID)
	if err != nil {
		return nil, err
	}
	if bal == nil {
		return nil, fmt.Errorf("bank balance %s: %w", s.BalanceID, repository.ErrNotFound)
	}
	return bal, nil
}
