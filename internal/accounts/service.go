package accounts

import (
	"context"

	"github.com/retailops/shiftbot/pkg/db"
	"github.com/retailops/shiftbot/pkg/db/models"
	"github.com/retailops/shiftbot/pkg/enums"
	pkgerrors "github.com/retailops/shiftbot/pkg/errors"
)

// Placeholder display names used when staff is added by id before their
// first /start.
const (
	placeholderOperatorName = "New operator"
	placeholderSeniorName   = "New senior operator"
)

// Service defines account lifecycle operations.
type Service interface {
	Bootstrap(ctx context.Context, params BootstrapParams) (*models.Account, error)
	AddStaff(ctx context.Context, id int64, role enums.Role) (*models.Account, error)
	Get(ctx context.Context, id int64) (*models.Account, error)
	ListByRole(ctx context.Context, role enums.Role) ([]models.Account, error)
	ListStaff(ctx context.Context) ([]models.Account, error)
	ListActive(ctx context.Context) ([]models.Account, error)
	Deactivate(ctx context.Context, id int64) error
}

// BootstrapParams carries identity fields delivered by the chat transport
// alongside the first interaction.
type BootstrapParams struct {
	ID       int64
	Username string
	FullName string
	// Admin marks ids present on the static allow-list.
	Admin bool
}

type service struct {
	repo Repository
}

// NewService wires account dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "accounts repository required")
	}
	return &service{repo: repo}, nil
}

// Bootstrap returns the existing account for the id, or registers a new one:
// allow-listed ids become administrators, everyone else an operator.
func (s *service) Bootstrap(ctx context.Context, params BootstrapParams) (*models.Account, error) {
	if params.ID == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "account id required")
	}

	existing, err := s.repo.Get(ctx, params.ID)
	if err == nil {
		return existing, nil
	}
	if !db.IsNotFound(err) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading account")
	}

	role := enums.RoleOperator
	if params.Admin {
		role = enums.RoleAdmin
	}
	account := &models.Account{
		ID:       params.ID,
		Username: params.Username,
		FullName: params.FullName,
		Role:     role,
	}
	if err := s.repo.Upsert(ctx, account); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "registering account")
	}
	return account, nil
}

func (s *service) AddStaff(ctx context.Context, id int64, role enums.Role) (*models.Account, error) {
	if id <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid id format. Enter a numeric id:")
	}
	if role != enums.RoleOperator && role != enums.RoleSeniorOperator {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "staff role must be operator or senior operator")
	}

	fullName := placeholderOperatorName
	if role == enums.RoleSeniorOperator {
		fullName = placeholderSeniorName
	}
	account := &models.Account{
		ID:       id,
		Username: "unknown",
		FullName: fullName,
		Role:     role,
	}
	if err := s.repo.Upsert(ctx, account); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "adding staff account")
	}
	return account, nil
}

func (s *service) Get(ctx context.Context, id int64) (*models.Account, error) {
	account, err := s.repo.Get(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Account not found.")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading account")
	}
	return account, nil
}

func (s *service) ListByRole(ctx context.Context, role enums.Role) ([]models.Account, error) {
	rows, err := s.repo.ListByRole(ctx, role)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing accounts by role")
	}
	return rows, nil
}

// ListStaff returns every active operator and senior operator,
// operators first.
func (s *service) ListStaff(ctx context.Context) ([]models.Account, error) {
	operators, err := s.repo.ListByRole(ctx, enums.RoleOperator)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing operators")
	}
	seniors, err := s.repo.ListByRole(ctx, enums.RoleSeniorOperator)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing senior operators")
	}
	return append(operators, seniors...), nil
}

func (s *service) ListActive(ctx context.Context) ([]models.Account, error) {
	rows, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing active accounts")
	}
	return rows, nil
}

func (s *service) Deactivate(ctx context.Context, id int64) error {
	found, err := s.repo.Deactivate(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "deactivating account")
	}
	if !found {
		return pkgerrors.New(pkgerrors.CodeNotFound, "Account not found.")
	}
	return nil
}
