// Package process contains the work queues and result tables shared with the
// downstream entity extraction and similarity batch jobs.
package process

import (
	"fmt"

	"github.com/pkg/errors"
)

// MaxEntityLength is the longest entity the entities table can hold
const MaxEntityLength = 40

var (
	ErrEntityRequired = errors.New("entity is required")
	ErrEntityTooLong  = errors.Errorf("entity exceeds %d characters", MaxEntityLength)
)

// EntityQueue marks a post as pending entity extraction
type EntityQueue struct {
	ID     uint `gorm:"primary_key" json:"id"`
	PostID uint `gorm:"unique" json:"post_id"`
}

// TableName overrides the gorm table name
func (EntityQueue) TableName() string {
	return "entity_queue"
}

// Entity is a named entity extracted from a post
type Entity struct {
	ID     uint   `gorm:"primary_key" json:"id"`
	Entity string `gorm:"size:40;not null" json:"entity"`
	PostID uint   `gorm:"index" json:"post_id"`
}

// TableName overrides the gorm table name
func (Entity) TableName() string {
	return "entities"
}

// BeforeSave rejects empty or oversized entities
func (e *Entity) BeforeSave() error {
	if e.Entity == "" {
		return ErrEntityRequired
	}
	if len([]rune(e.Entity)) > MaxEntityLength {
		return ErrEntityTooLong
	}

	return nil
}

func (e *Entity) String() string {
	return e.Entity
}

// SimilarityQueue marks a post as pending similarity detection
type SimilarityQueue struct {
	ID     uint `gorm:"primary_key" json:"id"`
	PostID uint `gorm:"unique" json:"post_id"`
}

// TableName overrides the gorm table name
func (SimilarityQueue) TableName() string {
	return "similarity_queue"
}

// Similarity links a post to another post found to cover the same story
type Similarity struct {
	ID        uint `gorm:"primary_key" json:"id"`
	SourceID  uint `gorm:"index" json:"source_id"`
	RelatedID uint `json:"related_id"`
}

// TableName overrides the gorm table name
func (Similarity) TableName() string {
	return "similarities"
}

func (s *Similarity) String() string {
	return fmt.Sprintf("<%d ~ %d>", s.SourceID, s.RelatedID)
}
