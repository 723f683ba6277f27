package shifts

import (
	"context"
	"errors"
	"time"

	"github.com/retailops/shiftbot/pkg/db"
	"github.com/retailops/shiftbot/pkg/db/models"
	"github.com/retailops/shiftbot/pkg/enums"
	pkgerrors "github.com/retailops/shiftbot/pkg/errors"
)

// Service defines shift lifecycle operations.
type Service interface {
	Open(ctx context.Context, operatorID int64) (*models.Shift, error)
	Close(ctx context.Context, shiftID int64) (*Row, error)
	CloseOwn(ctx context.Context, operatorID int64) (*Row, error)
	GetOpen(ctx context.Context, operatorID int64) (*models.Shift, error)
	Get(ctx context.Context, shiftID int64) (*Row, error)
	ListAll(ctx context.Context) ([]Row, error)
	ListOpen(ctx context.Context) ([]Row, error)
	ListByOperator(ctx context.Context, operatorID int64) ([]Row, error)
}

type service struct {
	repo Repository
}

// NewService wires shift dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "shifts repository required")
	}
	return &service{repo: repo}, nil
}

// Open starts a shift for the operator. At most one open shift per operator
// exists at any time; a second open attempt is rejected with no side effects.
func (s *service) Open(ctx context.Context, operatorID int64) (*models.Shift, error) {
	shift, err := s.repo.Open(ctx, operatorID)
	if err != nil {
		if errors.Is(err, ErrAlreadyOpen) {
			return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "You already have an open shift.")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "opening shift")
	}
	return shift, nil
}

// Close freezes the shift by id. Closing a shift that is not open is a state
// conflict; closed shifts are never reopened.
func (s *service) Close(ctx context.Context, shiftID int64) (*Row, error) {
	if _, err := s.Get(ctx, shiftID); err != nil {
		return nil, err
	}

	changed, err := s.repo.Close(ctx, shiftID, time.Now().UTC())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "closing shift")
	}
	if !changed {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "Shift is already closed.")
	}
	return s.Get(ctx, shiftID)
}

// CloseOwn closes the caller's open shift, if any.
func (s *service) CloseOwn(ctx context.Context, operatorID int64) (*Row, error) {
	open, err := s.GetOpen(ctx, operatorID)
	if err != nil {
		return nil, err
	}
	return s.Close(ctx, open.ID)
}

func (s *service) GetOpen(ctx context.Context, operatorID int64) (*models.Shift, error) {
	shift, err := s.repo.FindOpenByOperator(ctx, operatorID)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "You do not have an open shift.")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading open shift")
	}
	return shift, nil
}

func (s *service) Get(ctx context.Context, shiftID int64) (*Row, error) {
	row, err := s.repo.GetRow(ctx, shiftID)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Shift not found.")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading shift")
	}
	return row, nil
}

func (s *service) ListAll(ctx context.Context) ([]Row, error) {
	rows, err := s.repo.ListRows(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing shifts")
	}
	return rows, nil
}

func (s *service) ListOpen(ctx context.Context) ([]Row, error) {
	rows, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	open := rows[:0]
	for _, row := range rows {
		if row.Status == enums.ShiftStatusOpen {
			open = append(open, row)
		}
	}
	return open, nil
}

func (s *service) ListByOperator(ctx context.Context, operatorID int64) ([]Row, error) {
	rows, err := s.repo.ListRowsByOperator(ctx, operatorID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing operator shifts")
	}
	return rows, nil
}
