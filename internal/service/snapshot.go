package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"optiondesk/internal/models"
	"optiondesk/internal/repository"
)

// PortfolioSnapshotService records periodic account state for the
// dashboard's history view. Driven by cron; safe to run with no positions.
type PortfolioSnapshotService struct {
	Repo      repository.Repository
	Logger    *zap.Logger
	BalanceID string
}

func (s *PortfolioSnapshotService) SnapshotPortfolio(ctx context.Context) error {
	if s == nil || s.Repo == nil {
		return nil
	}
	positions, err := s.Repo.ListPositions(ctx)
	if err != nil {
		return err
	}
	bal, err := s.Repo.GetBankBalanceByID(ctx, s.BalanceID)
	if err != nil {
		return err
	}
	amount := decimal.Zero
	if bal != nil {
		amount = bal.BankBalance
	}
	netPremium := decimal.Zero
	for i := range positions {
		netPremium = netPremium.Add(balanceEffect(&positions[i]))
	}
	snap := models.PortfolioSnapshot{
		TakenAt:       time.Now().UTC(),
		BankBalance:   amount,
		OpenPositions: len(positions),
		NetPremium:    netPremium,
	}
	if err := s.Repo.InsertPortfolioSnapshot(ctx, &snap); err != nil {
		return err
	}
	if s.Logger != nil {
		s.Logger.Info("portfolio snapshot taken",
			zap.Int("open_positions", snap.OpenPositions),
			zap.String("bank_balance", snap.BankBalance.String()),
		)
	}
	return nil
}

func (s *PortfolioSnapshotService) History(ctx context.Context, limit int) ([]models.PortfolioSnapshot, error) {
	return s.Repo.ListPortfolioSnapshots(ctx, limit)
}
