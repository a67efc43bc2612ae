package posts

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Store interface {
	Create(p *Post) error
	// ListAll returns every post, newest first, with the author loaded.
	ListAll() ([]Post, error)
	ListByAuthor(authorID uuid.UUID) ([]Post, error)
	Count() (int64, error)
}

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Create(p *Post) error {
	return s.db.Create(p).Error
}

func (s *GormStore) ListAll() ([]Post, error) {
	var list []Post
	if err := s.db.Preload("Author").Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (s *GormStore) ListByAuthor(authorID uuid.UUID) ([]Post, error) {
	var list []Post
	err := s.db.Preload("Author").Where("author_id = ?", authorID).
		Order("created_at DESC").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (s *GormStore) Count() (int64, error) {
	var count int64
	if err := s.db.Model(&Post{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
