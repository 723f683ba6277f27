package warnings

import (
	"context"
	"fmt"
	"testing"

	"github.com/retailops/shiftbot/internal/accounts"
	"github.com/retailops/shiftbot/pkg/db/models"
	"github.com/retailops/shiftbot/pkg/enums"
	pkgerrors "github.com/retailops/shiftbot/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupWarningsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.Account{}, &models.Warning{}))
	return conn
}

func newTestService(t *testing.T, conn *gorm.DB) (Service, accounts.Service) {
	t.Helper()

	accountsSvc, err := accounts.NewService(accounts.NewRepository(conn))
	require.NoError(t, err)
	svc, err := NewService(NewRepository(conn), accountsSvc)
	require.NoError(t, err)
	return svc, accountsSvc
}

func TestService_IssueAndList(t *testing.T) {
	conn := setupWarningsTestDB(t)
	svc, accountsSvc := newTestService(t, conn)
	ctx := context.Background()

	_, err := accountsSvc.AddStaff(ctx, 42, enums.RoleOperator)
	require.NoError(t, err)

	warning, err := svc.Issue(ctx, IssueParams{AccountID: 42, Reason: "late", IssuedBy: 1})
	require.NoError(t, err)
	assert.Equal(t, enums.WarningSeverityElevated, warning.Severity)

	rows, err := svc.ListByAccount(ctx, 42)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "late", rows[0].Reason)
	assert.Equal(t, enums.WarningSeverityElevated, rows[0].Severity)
	assert.Equal(t, int64(1), rows[0].IssuedBy)
}

func TestService_IssueUnknownAccount(t *testing.T) {
	conn := setupWarningsTestDB(t)
	svc, _ := newTestService(t, conn)

	_, err := svc.Issue(context.Background(), IssueParams{AccountID: 999, Reason: "late", IssuedBy: 1})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())

	var count int64
	require.NoError(t, conn.Model(&models.Warning{}).Count(&count).Error)
	assert.Zero(t, count, "no partial state on not-found")
}

func TestService_IssueEmptyReason(t *testing.T) {
	conn := setupWarningsTestDB(t)
	svc, _ := newTestService(t, conn)

	_, err := svc.Issue(context.Background(), IssueParams{AccountID: 42, Reason: "  ", IssuedBy: 1})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestService_WarningsSurviveAccountDeactivation(t *testing.T) {
	conn := setupWarningsTestDB(t)
	svc, accountsSvc := newTestService(t, conn)
	ctx := context.Background()

	_, err := accountsSvc.AddStaff(ctx, 42, enums.RoleOperator)
	require.NoError(t, err)
	_, err = svc.Issue(ctx, IssueParams{AccountID: 42, Reason: "late", IssuedBy: 1})
	require.NoError(t, err)

	require.NoError(t, accountsSvc.Deactivate(ctx, 42))

	rows, err := svc.ListByAccount(ctx, 42)
	require.NoError(t, err)
	assert.Len(t, rows, 1, "history must survive soft delete")
}
