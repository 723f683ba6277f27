package accounts

import (
	"context"
	"testing"

	"github.com/retailops/shiftbot/pkg/db/models"
	"github.com/retailops/shiftbot/pkg/enums"
	pkgerrors "github.com/retailops/shiftbot/pkg/errors"
	"gorm.io/gorm"
)

type fakeRepository struct {
	upsertFn     func(ctx context.Context, account *models.Account) error
	getFn        func(ctx context.Context, id int64) (*models.Account, error)
	listByRoleFn func(ctx context.Context, role enums.Role) ([]models.Account, error)
	deactivateFn func(ctx context.Context, id int64) (bool, error)
}

func (f *fakeRepository) Upsert(ctx context.Context, account *models.Account) error {
	if f.upsertFn != nil {
		return f.upsertFn(ctx, account)
	}
	return nil
}

func (f *fakeRepository) Get(ctx context.Context, id int64) (*models.Account, error) {
	if f.getFn != nil {
		return f.getFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepository) ListByRole(ctx context.Context, role enums.Role) ([]models.Account, error) {
	if f.listByRoleFn != nil {
		return f.listByRoleFn(ctx, role)
	}
	return nil, nil
}

func (f *fakeRepository) ListActive(ctx context.Context) ([]models.Account, error) {
	return nil, nil
}

func (f *fakeRepository) Deactivate(ctx context.Context, id int64) (bool, error) {
	if f.deactivateFn != nil {
		return f.deactivateFn(ctx, id)
	}
	return false, nil
}

func newServiceWithRepo(t *testing.T, repo Repository) Service {
	t.Helper()
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("unexpected constructor error: %v", err)
	}
	return svc
}

func TestService_BootstrapRegistersAdminFromAllowList(t *testing.T) {
	var created *models.Account
	repo := &fakeRepository{
		upsertFn: func(ctx context.Context, account *models.Account) error {
			created = account
			return nil
		},
	}

	svc := newServiceWithRepo(t, repo)
	account, err := svc.Bootstrap(context.Background(), BootstrapParams{
		ID:       500,
		FullName: "Boss",
		Admin:    true,
	})
	if err != nil {
		t.Fatalf("unexpected bootstrap error: %v", err)
	}
	if account.Role != enums.RoleAdmin {
		t.Fatalf("expected admin role, got %s", account.Role)
	}
	if created == nil || created.ID != 500 {
		t.Fatal("expected account to be persisted")
	}
}

func TestService_BootstrapDefaultsToOperator(t *testing.T) {
	svc := newServiceWithRepo(t, &fakeRepository{})
	account, err := svc.Bootstrap(context.Background(), BootstrapParams{ID: 600, FullName: "Kay"})
	if err != nil {
		t.Fatalf("unexpected bootstrap error: %v", err)
	}
	if account.Role != enums.RoleOperator {
		t.Fatalf("expected operator role, got %s", account.Role)
	}
}

func TestService_BootstrapReturnsExistingWithoutWrite(t *testing.T) {
	existing := &models.Account{ID: 700, FullName: "Sam", Role: enums.RoleSeniorOperator}
	repo := &fakeRepository{
		getFn: func(ctx context.Context, id int64) (*models.Account, error) {
			return existing, nil
		},
		upsertFn: func(ctx context.Context, account *models.Account) error {
			t.Fatal("existing accounts must not be rewritten on /start")
			return nil
		},
	}

	svc := newServiceWithRepo(t, repo)
	account, err := svc.Bootstrap(context.Background(), BootstrapParams{ID: 700, FullName: "Renamed", Admin: true})
	if err != nil {
		t.Fatalf("unexpected bootstrap error: %v", err)
	}
	if account.Role != enums.RoleSeniorOperator {
		t.Fatalf("stored role must win over the allow-list, got %s", account.Role)
	}
}

func TestService_AddStaffPlaceholderNames(t *testing.T) {
	svc := newServiceWithRepo(t, &fakeRepository{})

	operator, err := svc.AddStaff(context.Background(), 10, enums.RoleOperator)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if operator.FullName != placeholderOperatorName {
		t.Fatalf("unexpected operator placeholder %q", operator.FullName)
	}

	senior, err := svc.AddStaff(context.Background(), 11, enums.RoleSeniorOperator)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if senior.FullName != placeholderSeniorName {
		t.Fatalf("unexpected senior placeholder %q", senior.FullName)
	}
}

func TestService_AddStaffRejectsAdminRole(t *testing.T) {
	svc := newServiceWithRepo(t, &fakeRepository{})
	_, err := svc.AddStaff(context.Background(), 10, enums.RoleAdmin)
	if pkgerrors.As(err).Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestService_AddStaffRejectsBadID(t *testing.T) {
	svc := newServiceWithRepo(t, &fakeRepository{})
	_, err := svc.AddStaff(context.Background(), 0, enums.RoleOperator)
	if pkgerrors.As(err).Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestService_DeactivateMissingAccount(t *testing.T) {
	svc := newServiceWithRepo(t, &fakeRepository{})
	err := svc.Deactivate(context.Background(), 999)
	if pkgerrors.As(err).Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestService_ListStaffMergesRoles(t *testing.T) {
	repo := &fakeRepository{
		listByRoleFn: func(ctx context.Context, role enums.Role) ([]models.Account, error) {
			switch role {
			case enums.RoleOperator:
				return []models.Account{{ID: 1}}, nil
			case enums.RoleSeniorOperator:
				return []models.Account{{ID: 2}}, nil
			}
			return nil, nil
		},
	}

	svc := newServiceWithRepo(t, repo)
	staff, err := svc.ListStaff(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(staff) != 2 || staff[0].ID != 1 || staff[1].ID != 2 {
		t.Fatalf("unexpected staff listing %+v", staff)
	}
}
