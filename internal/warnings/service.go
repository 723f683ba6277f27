package warnings

import (
	"context"
	"strings"

	"github.com/retailops/shiftbot/internal/accounts"
	"github.com/retailops/shiftbot/pkg/db/models"
	"github.com/retailops/shiftbot/pkg/enums"
	pkgerrors "github.com/retailops/shiftbot/pkg/errors"
)

// Service defines warning issue/list operations.
type Service interface {
	Issue(ctx context.Context, params IssueParams) (*models.Warning, error)
	ListByAccount(ctx context.Context, accountID int64) ([]models.Warning, error)
	ListAll(ctx context.Context) ([]models.Warning, error)
}

// IssueParams describes a warning to record.
type IssueParams struct {
	AccountID int64
	Reason    string
	IssuedBy  int64
}

type service struct {
	repo     Repository
	accounts accounts.Service
}

// NewService wires warning dependencies.
func NewService(repo Repository, accountsSvc accounts.Service) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "warnings repository required")
	}
	if accountsSvc == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "accounts service required")
	}
	return &service{repo: repo, accounts: accountsSvc}, nil
}

// Issue records a warning against an existing active account. Warnings issued
// through the conversation flow carry the elevated severity.
func (s *service) Issue(ctx context.Context, params IssueParams) (*models.Warning, error) {
	reason := strings.TrimSpace(params.Reason)
	if reason == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Warning reason cannot be empty.")
	}

	if _, err := s.accounts.Get(ctx, params.AccountID); err != nil {
		return nil, err
	}

	warning := &models.Warning{
		AccountID: params.AccountID,
		Reason:    reason,
		Severity:  enums.WarningSeverityElevated,
		IssuedBy:  params.IssuedBy,
	}
	if err := s.repo.Create(ctx, warning); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "recording warning")
	}
	return warning, nil
}

func (s *service) ListByAccount(ctx context.Context, accountID int64) ([]models.Warning, error) {
	rows, err := s.repo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing warnings")
	}
	return rows, nil
}

func (s *service) ListAll(ctx context.Context) ([]models.Warning, error) {
	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing warnings")
	}
	return rows, nil
}
