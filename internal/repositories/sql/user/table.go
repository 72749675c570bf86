package user

import (
	"time"

	"gorm.io/gorm"
)

const (
	tableName = "users"
	createdAt = "CreatedAt"
	updatedAt = "UpdatedAt"
)

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	UID          string `gorm:"unique;not null"`
	Email        string `gorm:"unique;not null"`
	DisplayName  string `gorm:"not null"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (User) TableName() string {
	return tableName
}

func (User) BeforeCreate(tx *gorm.DB) (err error) {
	tx.Statement.SetColumn(createdAt, time.Now())
	return
}

func (User) BeforeUpdate(tx *gorm.DB) (err error) {
	tx.Statement.SetColumn(updatedAt, time.Now())
	return
}
