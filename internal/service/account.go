package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"optiondesk/internal/models"
	"optiondesk/internal/repository"
)

// ErrNotOwned is returned when a user references a position id outside its
// own list.
var ErrNotOwned = errors.New("position does not belong to user")

// AccountService is the user-scoped view of the book: positions are tracked
// on the owning user, and ledger effects land on that user's balance record.
type AccountService struct {
	Repo   repository.Repository
	Logger *zap.Logger
}

func (s *AccountService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	return s.Repo.GetUserByID(ctx, userID)
}

// UserPositions resolves the user's position ids against the store. Dangling
// ids are skipped; an unknown user yields an empty list.
func (s *AccountService) UserPositions(ctx context.Context, userID string) ([]models.Position, error) {
	user, err := s.Repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return []models.Position{}, nil
	}
	out := make([]models.Position, 0, len(user.PositionIDs))
	for _, pid := range user.PositionIDs {
		p, err := s.Repo.GetPositionByID(ctx, pid)
		if err != nil {
			return nil, err
		}
		if p != nil {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *AccountService) AddUserPosition(ctx context.Context, userID string, item models.Position) (*models.Position, error) {
	user, err := s.requireUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if item.Timestamp == "" {
		item.Timestamp = time.Now().Format(recordTimeLayout)
	}
	created, err := s.Repo.InsertPosition(ctx, &item)
	if err != nil {
		return nil, err
	}
	user.PositionIDs = append(user.PositionIDs, created.ID)
	if err := s.applyToUserBalance(ctx, user, balanceEffect(created)); err != nil {
		return nil, err
	}
	if err := s.Repo.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.Info("user position added",
			zap.String("user_id", userID),
			zap.String("position_id", created.ID),
		)
	}
	return created, nil
}

// UpdateUserPosition applies the same reverse-then-reapply rule as the
// global ledger, against the owning user's balance record.
func (s *AccountService) UpdateUserPosition(ctx context.Context, userID string, item models.Position) (*models.Position, error) {
	user, err := s.requireUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.OwnsPosition(item.ID) {
		return nil, fmt.Errorf("position %s: %w", item.ID, ErrNotOwned)
	}
	old, err := s.Repo.GetPositionByID(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	if old == nil {
		return nil, fmt.Errorf("position %s: %w", item.ID, repository.ErrNotFound)
	}
	delta := balanceEffect(&item).Sub(balanceEffect(old))
	if err := s.applyToUserBalance(ctx, user, delta); err != nil {
		return nil, err
	}
	return s.Repo.UpdatePosition(ctx, &item)
}

// DeleteUserPosition removes the position from the user and the store. As
// with the global ledger, removal does not reverse the balance effect.
func (s *AccountService) DeleteUserPosition(ctx context.Context, userID, positionID string) (*models.Position, error) {
	user, err := s.requireUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.OwnsPosition(positionID) {
		return nil, fmt.Errorf("position %s: %w", positionID, ErrNotOwned)
	}
	user.RemovePosition(positionID)
	if err := s.Repo.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	return s.Repo.DeletePosition(ctx, positionID)
}

func (s *AccountService) UserBankBalance(ctx context.Context, userID string) (*models.BankBalance, error) {
	user, err := s.requireUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	bal, err := s.Repo.GetBankBalanceByID(ctx, user.BankBalanceID)
	if err != nil {
		return nil, err
	}
	if bal == nil {
		return nil, fmt.Errorf("bank balance %s: %w", user.BankBalanceID, repository.ErrNotFound)
	}
	return bal, nil
}

func (s *AccountService) SetUserBankBalance(ctx context.Context, userID string, amount decimal.Decimal) (*models.BankBalance, error) {
	bal, err := s.UserBankBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	bal.BankBalance = amount
	if err := s.Repo.SaveBankBalance(ctx, bal); err != nil {
		return nil, err
	}
	return bal, nil
}

func (s *AccountService) requireUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.Repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", userID, repository.ErrNotFound)
	}
	return user, nil
}

func (s *AccountService) applyToUserBalance(ctx context.Context, user *models.User, delta decimal.Decimal) error {
	bal, err := s.Repo.GetBankBalanceByID(ctx, user.BankBalanceID)
	if err != nil {
		return err
	}
	if bal == nil {
		return fmt.Errorf("bank balance %s: %w", user.BankBalanceID, repository.ErrNotFound)
	}
	bal.BankBalance = bal.BankBalance.Add(delta)
	return s.Repo.SaveBankBalance(ctx, bal)
}
