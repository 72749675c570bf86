package user

import (
	"errors"

	"github.com/drinkshop/backend/pkg/infra"
	"gorm.io/gorm"
)

type Repository interface {
	CreateUser(user *User) (uint, error)
	GetUserByUID(uid string) (*User, error)
	GetUserByEmail(email string) (*User, error)
	UpdateDisplayName(uid, displayName string) error
}

type Users struct {
	db     *gorm.DB
	dbName string
}

func NewRepository(connection *infra.SQLConnection) (Repository, error) {
	if connection == nil {
		return nil, errors.New("connection cannot be nil")
	}

	session, err := connection.GetConn()
	if err != nil {
		return nil, err
	}
	meta, err := connection.GetMeta()
	if err != nil {
		return nil, err
	}
	dbName := meta["db_name"].(string)

	return &Users{
		db:     session.(*gorm.DB),
		dbName: dbName,
	}, nil
}

// CreateUser adds a new user to the database.
func (u *Users) CreateUser(user *User) (uint, error) {
	result := u.db.Create(user)
	if result.Error != nil {
		return 0, result.Error
	}
	return user.ID, nil
}

// GetUserByUID retrieves a user by their public uid.
func (u *Users) GetUserByUID(uid string) (*User, error) {
	var user User
	result := u.db.Where("uid = ?", uid).First(&user)
	return &user, result.Error
}

// GetUserByEmail retrieves a user by their email address.
func (u *Users) GetUserByEmail(email string) (*User, error) {
	var user User
	result := u.db.Where("email = ?", email).First(&user)
	return &user, result.Error
}

func (u *Users) UpdateDisplayName(uid, displayName string) error {
	result := u.db.Model(&User{}).Where("uid = ?", uid).Update("display_name", displayName)
	return result.Error
}
