package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finbook/bookfile-api/internal/domain/enum"
)

// Job groups invoices under a project. It is itself owned by a customer or a
// vendor; that owner gives the ultimate type used to route job invoices.
type Job struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Number    string         `gorm:"size:100;not null" json:"number"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	OwnerType enum.OwnerType `gorm:"not null" json:"owner_type"`
	OwnerID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"owner_id"`
	Active    bool           `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new job
func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Job model
func (Job) TableName() string {
	return "jobs"
}
