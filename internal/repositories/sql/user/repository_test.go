package user

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/drinkshop/backend/pkg/infra"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockRepository(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	assert.NoError(t, err)

	repo, err := NewRepository(&infra.SQLConnection{
		DB:   gormDB,
		Meta: map[string]interface{}{"db_name": "drinkshop"},
	})
	assert.NoError(t, err)
	return repo, mock
}

func TestNewRepositoryNilConnection(t *testing.T) {
	_, err := NewRepository(nil)
	assert.Error(t, err)
}

func TestGetUserByEmail(t *testing.T) {
	repo, mock := newMockRepository(t)

	rows := sqlmock.NewRows([]string{"id", "uid", "email", "display_name", "password_hash"}).
		AddRow(1, "uid-1", "khach@example.com", "Khách Hàng", "hash")
	mock.ExpectQuery("SELECT (.+) FROM `users` WHERE email = (.+)").
		WillReturnRows(rows)

	record, err := repo.GetUserByEmail("khach@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "uid-1", record.UID)
	assert.Equal(t, "Khách Hàng", record.DisplayName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByEmailNotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("SELECT (.+) FROM `users` WHERE email = (.+)").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetUserByEmail("missing@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `users`")).
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	id, err := repo.CreateUser(&User{
		UID:          "uid-7",
		Email:        "moi@example.com",
		DisplayName:  "Người Mới",
		PasswordHash: "hash",
	})
	assert.NoError(t, err)
	assert.Equal(t, uint(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateDisplayName(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `users` SET")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.UpdateDisplayName("uid-1", "Tên Mới"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
