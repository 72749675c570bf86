package session

import (
	"time"

	"gorm.io/gorm"
)

const (
	tableName        = "sessions"
	sessionCreatedAt = "created_at"
)

// Session is one issued login token. A token is usable until it is
// revoked or its expiry passes.
type Session struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	UserUID   string    `gorm:"not null;index"`
	Token     string    `gorm:"unique;not null"`
	CreatedAt time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null"`
}

func (Session) TableName() string {
	return tableName
}

func (Session) BeforeCreate(tx *gorm.DB) (err error) {
	tx.Statement.SetColumn(sessionCreatedAt, time.Now())
	return
}
