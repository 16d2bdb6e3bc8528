// Package model contains the GORM persistence models. They mirror tables,
// never leave the infra layer, and are mapped to domain entities at the
// repository boundary.
package model

import (
	"time"

	"github.com/google/uuid"
)

// CampgroundModel mirrors the 'campgrounds' table. PostgreSQL generates
// UUIDs via uuid_generate_v7().
type CampgroundModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	Location    string    `gorm:"type:varchar(255);not null"`
	Image       string    `gorm:"type:varchar(512);not null"`
	Price       *float64  `gorm:"type:numeric(10,2);check:price >= 0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Reviews []*ReviewModel `gorm:"foreignKey:CampgroundID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CampgroundModel) TableName() string {
	return "campgrounds"
}

// ReviewModel mirrors the 'reviews' table. CampgroundID references
// campgrounds.id; the FK cascades so DB-level deletes can never orphan rows.
type ReviewModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CampgroundID uuid.UUID `gorm:"type:uuid;not null;index"`
	Body         string    `gorm:"type:text;not null"`
	Rating       int       `gorm:"not null;check:rating BETWEEN 1 AND 5"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
