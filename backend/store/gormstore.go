package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// document is the storage row: one JSON document per (collection, doc_id).
type document struct {
	ID         uint   `gorm:"primaryKey"`
	Collection string `gorm:"size:512;uniqueIndex:idx_documents_path,priority:1"`
	DocID      string `gorm:"size:128;uniqueIndex:idx_documents_path,priority:2"`
	Data       datatypes.JSONMap
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (document) TableName() string {
	return "documents"
}

// GormStore implements Store on a single documents table. Field-equality
// queries go through datatypes.JSONQuery so the same code runs on postgres
// in production and sqlite in tests.
type GormStore struct {
	db    *gorm.DB
	newID func() string
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&document{}); err != nil {
		return nil, fmt.Errorf("migrate documents table: %w", err)
	}
	return &GormStore{db: db, newID: uuid.NewString}, nil
}

func (s *GormStore) Get(ctx context.Context, collection, id string) (map[string]any, error) {
	var rec document
	err := s.db.WithContext(ctx).
		Where("collection = ? AND doc_id = ?", collection, id).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	return normalizeDoc(rec.Data), nil
}

func (s *GormStore) Query(ctx context.Context, collection, field string, value any) ([]Document, error) {
	var recs []document
	err := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Where(datatypes.JSONQuery("data").Equals(value, field)).
		Order("doc_id").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("query %s where %s: %w", collection, field, err)
	}
	return toDocuments(recs), nil
}

func (s *GormStore) List(ctx context.Context, collection string) ([]Document, error) {
	var recs []document
	err := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Order("doc_id").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}
	return toDocuments(recs), nil
}

func (s *GormStore) Add(ctx context.Context, collection string, doc map[string]any) (string, error) {
	id := s.newID()
	if err := s.Set(ctx, collection, id, doc); err != nil {
		return "", err
	}
	return id, nil
}

func (s *GormStore) Set(ctx context.Context, collection, id string, doc map[string]any) error {
	rec := document{
		Collection: collection,
		DocID:      id,
		Data:       datatypes.JSONMap(doc),
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "collection"}, {Name: "doc_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("set %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *GormStore) SetMerge(ctx context.Context, collection, id string, doc map[string]any) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec document
		err := tx.Where("collection = ? AND doc_id = ?", collection, id).First(&rec).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			rec = document{Collection: collection, DocID: id, Data: datatypes.JSONMap(doc)}
			return tx.Create(&rec).Error
		}
		if err != nil {
			return err
		}
		if rec.Data == nil {
			rec.Data = datatypes.JSONMap{}
		}
		for k, v := range doc {
			rec.Data[k] = v
		}
		return tx.Save(&rec).Error
	})
	if err != nil {
		return fmt.Errorf("merge %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *GormStore) Delete(ctx context.Context, collection, id string) error {
	err := s.db.WithContext(ctx).
		Where("collection = ? AND doc_id = ?", collection, id).
		Delete(&document{}).Error
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	return nil
}

func toDocuments(recs []document) []Document {
	out := make([]Document, 0, len(recs))
	for _, rec := range recs {
		out = append(out, Document{ID: rec.DocID, Data: normalizeDoc(rec.Data)})
	}
	return out
}

// normalizeDoc converts json.Number values left by JSONMap.Scan (which decodes
// with UseNumber) into float64, recursively. The Store contract is that every
// number reads back as float64.
func normalizeDoc(m map[string]any) map[string]any {
	for k, v := range m {
		m[k] = normalizeJSONValue(v)
	}
	return m
}

func normalizeJSONValue(v any) any {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return n.String()
		}
		return f
	case map[string]any:
		return normalizeDoc(n)
	case []any:
		for i, item := range n {
			n[i] = normalizeJSONValue(item)
		}
		return n
	}
	return v
}
