package repository

import (
	"context"
	"errors"

	"optiondesk/internal/models"
)

// ErrNotFound is returned by mutating operations whose target id does not
// exist. Lookups signal a miss with a nil result instead.
var ErrNotFound = errors.New("not found")

type PositionRepository interface {
	ListPositions(ctx context.Context) ([]models.Position, error)
	GetPositionByID(ctx context.Context, id string) (*models.Position, error)
	// InsertPosition stores the position, assigning a fresh id when the
	// given one is empty, and returns the stored record.
	InsertPosition(ctx context.Context, item *models.Position) (*models.Position, error)
	UpdatePosition(ctx context.Context, item *models.Position) (*models.Position, error)
	DeletePosition(ctx context.Context, id string) (*models.Position, error)
}

type BalanceRepository interface {
	GetBankBalanceByID(ctx context.Context, id string) (*models.BankBalance, error)
	SaveBankBalance(ctx context.Context, item *models.BankBalance) error
}

type UnderlyingRepository interface {
	ListUnderlyings(ctx context.Context) ([]models.Underlying, error)
	GetUnderlyingByID(ctx context.Context, id string) (*models.Underlying, error)
	GetUnderlyingByName(ctx context.Context, name string) (*models.Underlying, error)
}

type UserRepository interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	SaveUser(ctx context.Context, item *models.User) error
}

type SnapshotRepository interface {
	InsertPortfolioSnapshot(ctx context.Context, item *models.PortfolioSnapshot) error
	ListPortfolioSnapshots(ctx context.Context, limit int) ([]models.PortfolioSnapshot, error)
}

// Repository is the unified store handle the services and handlers share.
type Repository interface {
	PositionRepository
	BalanceRepository
	UnderlyingRepository
	UserRepository
	SnapshotRepository
}
