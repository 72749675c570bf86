package docstore

import (
	"time"

	"gorm.io/gorm"
)

const (
	tableName = "documents"
	createdAt = "CreatedAt"
	updatedAt = "UpdatedAt"
)

type documentRow struct {
	ID         string `gorm:"primaryKey;size:36"`
	Collection string `gorm:"size:64;index:idx_documents_collection"`
	Data       string `gorm:"type:json"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (documentRow) TableName() string {
	return tableName
}

func (documentRow) BeforeCreate(tx *gorm.DB) (err error) {
	tx.Statement.SetColumn(createdAt, time.Now())
	return
}

func (documentRow) BeforeUpdate(tx *gorm.DB) (err error) {
	tx.Statement.SetColumn(updatedAt, time.Now())
	return
}
