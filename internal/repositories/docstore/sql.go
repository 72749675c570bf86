package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	"github.com/drinkshop/backend/pkg/infra"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var fieldNamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// SQLStore implements Store on a MySQL documents table with a JSON payload column
type SQLStore struct {
	db *gorm.DB
}

func NewSQLStore(connection *infra.SQLConnection) (Store, error) {
	if connection == nil {
		return nil, errors.New("connection cannot be nil")
	}
	session, err := connection.GetConn()
	if err != nil {
		return nil, err
	}
	return &SQLStore{db: session.(*gorm.DB)}, nil
}

func (s *SQLStore) Insert(ctx context.Context, collection string, data map[string]interface{}) (string, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to marshal document: %w", err)
	}
	row := documentRow{
		ID:         uuid.NewString(),
		Collection: collection,
		Data:       string(payload),
	}
	result := s.db.WithContext(ctx).Create(&row)
	if result.Error != nil {
		return "", result.Error
	}
	return row.ID, nil
}

func (s *SQLStore) Get(ctx context.Context, collection, id string) (map[string]interface{}, error) {
	var row documentRow
	result := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Where("id = ?", id).
		First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return decodeRow(row)
}

func (s *SQLStore) GetAll(ctx context.Context, collection string) ([]Document, error) {
	var rows []documentRow
	result := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Order("created_at ASC").
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return decodeRows(rows)
}

func (s *SQLStore) Query(ctx context.Context, collection, field string, value interface{}, opts QueryOptions) ([]Document, error) {
	if !fieldNamePattern.MatchString(field) {
		return nil, fmt.Errorf("invalid query field %q", field)
	}
	query := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Where("JSON_UNQUOTE(JSON_EXTRACT(data, ?)) = ?", "$."+field, fmt.Sprint(value))
	if opts.OrderByCreatedDesc {
		query = query.Order("created_at DESC")
	} else {
		query = query.Order("created_at ASC")
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	var rows []documentRow
	if result := query.Find(&rows); result.Error != nil {
		return nil, result.Error
	}
	return decodeRows(rows)
}

// Update applies a partial merge: patched fields replace stored ones,
// every other stored field survives untouched.
func (s *SQLStore) Update(ctx context.Context, collection, id string, patch map[string]interface{}) error {
	var row documentRow
	result := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Where("id = ?", id).
		First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return result.Error
	}

	var data map[string]interface{}
	if err := json.Unmarshal([]byte(row.Data), &data); err != nil {
		data = map[string]interface{}{}
	}
	for k, v := range patch {
		data[k] = v
	}
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	result = s.db.WithContext(ctx).
		Model(&documentRow{}).
		Where("collection = ?", collection).
		Where("id = ?", id).
		Update("data", string(payload))
	return result.Error
}

func (s *SQLStore) Delete(ctx context.Context, collection, id string) error {
	result := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Where("id = ?", id).
		Delete(&documentRow{})
	return result.Error
}

func decodeRow(row documentRow) (map[string]interface{}, error) {
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(row.Data), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document %s: %w", row.ID, err)
	}
	data["id"] = row.ID
	return data, nil
}

func decodeRows(rows []documentRow) ([]Document, error) {
	docs := make([]Document, 0, len(rows))
	for _, row := range rows {
		data, err := decodeRow(row)
		if err != nil {
			return nil, err
		}
		docs = append(docs, Document{ID: row.ID, Data: data, CreatedAt: row.CreatedAt})
	}
	return docs, nil
}
