package session

import (
	"errors"
	"time"

	"github.com/drinkshop/backend/pkg/infra"
	"gorm.io/gorm"
)

// Repository manages issued login sessions
type Repository interface {
	Save(userUID, token string, expiration time.Time) error
	Revoke(token string) error
	IsActive(token string) (bool, error)
	PurgeExpired() error
}

type Sessions struct {
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

	return &Sessions{
		db:     session.(*gorm.DB),
		dbName: dbName,
	}, nil
}

// Save records a newly issued token
func (s *Sessions) Save(userUID, token string, expiration time.Time) error {
	record := &Session{
		UserUID:   userUID,
		Token:     token,
		ExpiresAt: expiration,
	}
	result := s.db.Create(record)
	return result.Error
}

// Revoke removes a token so it can no longer authenticate requests
func (s *Sessions) Revoke(token string) error {
	result := s.db.Where("token = ?", token).Delete(&Session{})
	return result.Error
}

// IsActive reports whether a token exists and has not expired
func (s *Sessions) IsActive(token string) (bool, error) {
	var count int64
	err := s.db.Model(&Session{}).
		Where("token = ? AND expires_at > ?", token, time.Now()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// PurgeExpired deletes sessions whose expiry has passed
func (s *Sessions) PurgeExpired() error {
	result := s.db.Where("expires_at < ?", time.Now()).Delete(&Session{})
	return result.Error
}
