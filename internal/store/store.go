// SPDX-License-Identifier: MIT
package store

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ErrNotFound reports a page id with no stored document.
var ErrNotFound = errors.New("page document not found")

// PageDocument is a stored raw page document keyed by page id. The raw
// payload may be in any supported format, canonical or legacy; the engine
// normalizes it at read time.
type PageDocument struct {
	ID        uint   `gorm:"primarykey"`
	PageID    string `gorm:"uniqueIndex;size:64"`
	Raw       string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store is the document-store collaborator: raw page documents keyed by page
// id. It sits outside the rendering engine's boundary; the engine only ever
// sees the raw values it hands back.
type Store struct {
	db *gorm.DB
}

// Open connects to the backing database and runs migrations.
func Open(dbType, dsn string) (*Store, error) {
	var dialector gorm.Dialector
	switch dbType {
	case "sqlite":
		dialector = sqlite.Open(dsn)
	case "mysql", "mariadb":
		dialector = mysql.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", dbType)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&PageDocument{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return &Store{db: db}, nil
}

// NewWithDB wraps an existing connection (used for testing).
func NewWithDB(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&PageDocument{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return &Store{db: db}, nil
}

// Get returns the raw document for a page id.
func (s *Store) Get(pageID string) (string, error) {
	var doc PageDocument
	result := s.db.Where("page_id = ?", pageID).First(&doc)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to load page %s: %w", pageID, result.Error)
	}
	return doc.Raw, nil
}

// Put stores or replaces the raw document for a page id.
func (s *Store) Put(pageID, raw string) error {
	var existing PageDocument
	result := s.db.Where("page_id = ?", pageID).First(&existing)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to look up page %s: %w", pageID, result.Error)
		}
		doc := PageDocument{PageID: pageID, Raw: raw}
		if err := s.db.Create(&doc).Error; err != nil {
			return fmt.Errorf("failed to store page %s: %w", pageID, err)
		}
		return nil
	}
	existing.Raw = raw
	if err := s.db.Save(&existing).Error; err != nil {
		return fmt.Errorf("failed to update page %s: %w", pageID, err)
	}
	return nil
}

// Delete removes a page's stored document. Deleting an absent page is not an
// error.
func (s *Store) Delete(pageID string) error {
	if err := s.db.Where("page_id = ?", pageID).Delete(&PageDocument{}).Error; err != nil {
		return fmt.Errorf("failed to delete page %s: %w", pageID, err)
	}
	return nil
}

// List returns all stored page ids.
func (s *Store) List() ([]string, error) {
	var ids []string
	if err := s.db.Model(&PageDocument{}).Order("page_id").Pluck("page_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}
	return ids, nil
}
