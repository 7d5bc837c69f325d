package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"optiondesk/internal/models"
	"optiondesk/internal/repository"
)

// Store is the in-memory implementation of repository.Repository. It is
// constructed once at startup and passed around by handle, never held in a
// package-level global. The mutex keeps concurrent requests from corrupting
// the slices; read-modify-write sequences spanning several calls are not
// serialized.
type Store struct {
	mu sync.Mutex

	positions   []models.Position
	balances    []models.BankBalance
	underlyings []models.Underlying
	users       []models.User
	snapshots   []models.PortfolioSnapshot
}

func New() *Store {
	return &Store{}
}

var _ repository.Repository = (*Store)(nil)

func (s *Store) ListPositions(ctx context.Context) ([]models.Position, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Position, len(s.positions))
	copy(out, s.positions)
	return out, nil
}

func (s *Store) GetPositionByID(ctx context.Context, id string) (*models.Position, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.positions {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *Store) InsertPosition(ctx context.Context, item *models.Position) (*models.Position, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *item
	if cp.ID == "" {
		cp.ID = uuid.NewString()
	}
	s.positions = append(s.positions, cp)
	out := cp
	return &out, nil
}

func (s *Store) UpdatePosition(ctx context.Context, item *models.Position) (*models.Position, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.positions {
		if p.ID == item.ID {
			s.positions[i] = *item
			cp := s.positions[i]
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *Store) DeletePosition(ctx context.Context, id string) (*models.Position, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.positions {
		if p.ID == id {
			cp := p
			s.positions = append(s.positions[:i], s.positions[i+1:]...)
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *Store) GetBankBalanceByID(ctx context.Context, id string) (*models.BankBalance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.balances {
		if b.ID == id {
			cp := b
			return &cp, nil
		}
	}
	return nil, nil
}

// SaveBankBalance overwrites the record with the same id, inserting it when
// absent. There is no history or transaction log.
func (s *Store) SaveBankBalance(ctx context.Context, item *models.BankBalance) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.balances {
		if b.ID == item.ID {
			s.balances[i] = *item
			return nil
		}
	}
	s.balances = append(s.balances, *item)
	return nil
}

func (s *Store) ListUnderlyings(ctx context.Context) ([]models.Underlying, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Underlying, len(s.underlyings))
	copy(out, s.underlyings)
	return out, nil
}

func (s *Store) GetUnderlyingByID(ctx context.Context, id string) (*models.Underlying, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.underlyings {
		if u.ID == id {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *Store) GetUnderlyingByName(ctx context.Context, name string) (*models.Underlying, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.underlyings {
		if strings.EqualFold(u.Name, name) {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *Store) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			cp := u
			cp.PositionIDs = append([]string(nil), u.PositionIDs...)
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *Store) SaveUser(ctx context.Context, item *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *item
	cp.PositionIDs = append([]string(nil), item.PositionIDs...)
	for i, u := range s.users {
		if u.ID == item.ID {
			s.users[i] = cp
			return nil
		}
	}
	s.users = append(s.users, cp)
	return nil
}

func (s *Store) InsertPortfolioSnapshot(ctx context.Context, item *models.PortfolioSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots = append(s.snapshots, *item)
	return nil
}

// ListPortfolioSnapshots returns snapshots newest first. limit <= 0 returns
// everything.
func (s *Store) ListPortfolioSnapshots(ctx context.Context, limit int) ([]models.PortfolioSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.snapshots)
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]models.PortfolioSnapshot, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, s.snapshots[i])
	}
	return out, nil
}
