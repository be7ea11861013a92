package repository

import (
	"testing"
	"time"

	"eldercare-manager-api/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mockDB, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gdb, mockDB
}

func TestReminderFindPendingDue(t *testing.T) {
	db, mockDB := setupMockDB(t)
	repo := NewReminderRepository()

	now := time.Date(2026, 8, 28, 8, 30, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "user_id", "title", "status", "scheduled_time"}).
		AddRow(1, 7, "Morning pills", entity.ReminderStatusPending, now.Add(-30*time.Minute)).
		AddRow(2, 9, "Blood pressure check", entity.ReminderStatusPending, now.Add(-5*time.Minute))

	mockDB.ExpectQuery(`SELECT \* FROM "ec_reminders" WHERE status = \$1 AND scheduled_time <= \$2 ORDER BY scheduled_time ASC`).
		WithArgs(entity.ReminderStatusPending, now).
		WillReturnRows(rows)

	list, err := repo.FindPendingDue(db, now)

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(1), list[0].ID)
	assert.Equal(t, int64(7), list[0].UserID)
	assert.Equal(t, "Morning pills", list[0].Title)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestReminderFindByID_NotFoundReadsAsNil(t *testing.T) {
	db, mockDB := setupMockDB(t)
	repo := NewReminderRepository()

	mockDB.ExpectQuery(`SELECT \* FROM "ec_reminders" WHERE id = \$1`).
		WithArgs(int64(404), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	reminder, err := repo.FindByID(db, 404)

	require.NoError(t, err)
	assert.Nil(t, reminder)
}

func TestReminderFindWindowByUser_AppliesLimit(t *testing.T) {
	db, mockDB := setupMockDB(t)
	repo := NewReminderRepository()

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 2, 23, 59, 59, 0, time.UTC)

	mockDB.ExpectQuery(`SELECT \* FROM "ec_reminders" WHERE user_id = \$1 AND scheduled_time >= \$2 AND scheduled_time <= \$3 ORDER BY scheduled_time DESC LIMIT \$4`).
		WithArgs(int64(7), start, end, 20).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(3, 7))

	list, err := repo.FindWindowByUser(db, 7, start, end, 20)

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(3), list[0].ID)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}
