package db

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open("oracle", "whatever")
	assert.Error(t, err)
}

func TestMigrateAndReset(t *testing.T) {
	gormDB, err := Open("sqlite", ":memory:")
	require.NoError(t, err)

	require.NoError(t, Migrate(gormDB))
	for _, m := range Models() {
		assert.True(t, gormDB.Migrator().HasTable(m))
	}

	require.NoError(t, Reset(gormDB))
	for _, m := range Models() {
		assert.False(t, gormDB.Migrator().HasTable(m))
	}
}

func TestCaseSensitiveEmail_MySQL(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	gormDB, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)

	mock.ExpectExec("ALTER TABLE `users` MODIFY `email` .* COLLATE utf8mb4_bin").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, caseSensitiveEmail(gormDB))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate_EmailsDifferingInCaseAreDistinct(t *testing.T) {
	gormDB, err := Open("sqlite", ":memory:")
	require.NoError(t, err)
	require.NoError(t, Migrate(gormDB))

	require.NoError(t, gormDB.Exec("INSERT INTO users (id, email, password_hash) VALUES (?, ?, ?)", "00000000-0000-0000-0000-000000000001", "a@x.com", "h").Error)
	require.NoError(t, gormDB.Exec("INSERT INTO users (id, email, password_hash) VALUES (?, ?, ?)", "00000000-0000-0000-0000-000000000002", "A@x.com", "h").Error)
}
