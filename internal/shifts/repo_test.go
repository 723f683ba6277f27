package shifts

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/retailops/shiftbot/pkg/db/models"
	"github.com/retailops/shiftbot/pkg/enums"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupShiftsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.Account{}, &models.Shift{}))
	return conn
}

func seedOperator(t *testing.T, conn *gorm.DB, id int64, name string) {
	t.Helper()
	require.NoError(t, conn.Create(&models.Account{
		ID:       id,
		FullName: name,
		Role:     enums.RoleOperator,
		IsActive: true,
	}).Error)
}

func TestRepository_OpenRejectsSecondOpenShift(t *testing.T) {
	conn := setupShiftsTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()
	seedOperator(t, conn, 7, "Jo")

	first, err := repo.Open(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, enums.ShiftStatusOpen, first.Status)

	_, err = repo.Open(ctx, 7)
	assert.ErrorIs(t, err, ErrAlreadyOpen)

	var count int64
	require.NoError(t, conn.Model(&models.Shift{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "rejected open must leave no side effects")
}

func TestRepository_OpenAllowedAfterClose(t *testing.T) {
	conn := setupShiftsTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()
	seedOperator(t, conn, 7, "Jo")

	first, err := repo.Open(ctx, 7)
	require.NoError(t, err)

	changed, err := repo.Close(ctx, first.ID, time.Now().UTC())
	require.NoError(t, err)
	assert.True(t, changed)

	_, err = repo.Open(ctx, 7)
	require.NoError(t, err)
}

func TestRepository_CloseIsNotRepeatable(t *testing.T) {
	conn := setupShiftsTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()
	seedOperator(t, conn, 7, "Jo")

	shift, err := repo.Open(ctx, 7)
	require.NoError(t, err)

	changed, err := repo.Close(ctx, shift.ID, time.Now().UTC())
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = repo.Close(ctx, shift.ID, time.Now().UTC())
	require.NoError(t, err)
	assert.False(t, changed, "closed shifts never transition again")
}

func TestRepository_RowsCarryOperatorName(t *testing.T) {
	conn := setupShiftsTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()
	seedOperator(t, conn, 7, "Jo Smith")

	shift, err := repo.Open(ctx, 7)
	require.NoError(t, err)

	row, err := repo.GetRow(ctx, shift.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jo Smith", row.OperatorName)
	assert.Equal(t, enums.ShiftStatusOpen, row.Status)

	rows, err := repo.ListRows(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Jo Smith", rows[0].OperatorName)
}

func TestRepository_ListRowsNewestFirst(t *testing.T) {
	conn := setupShiftsTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()
	seedOperator(t, conn, 7, "Jo")
	seedOperator(t, conn, 8, "Kay")

	first, err := repo.Open(ctx, 7)
	require.NoError(t, err)
	second, err := repo.Open(ctx, 8)
	require.NoError(t, err)

	rows, err := repo.ListRows(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, second.ID, rows[0].ID)
	assert.Equal(t, first.ID, rows[1].ID)
}
