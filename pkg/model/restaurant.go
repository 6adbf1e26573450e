package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Restaurant is the canonical directory record. The same physical place can
// hold one row per source until the consolidation pipeline merges them, so
// (Source, SourceID) is only unique within a single provider.
type Restaurant struct {
	gorm.Model
	Slug     string `gorm:"uniqueIndex"`
	Source   string `gorm:"index:idx_restaurant_source,unique"`
	SourceID string `gorm:"index:idx_restaurant_source,unique;column:source_id"`

	Name        string `gorm:"index"`
	Brand       *string
	Description *string
	Cuisine     datatypes.JSONSlice[string]
	PriceRange  *string
	Phone       *string
	Website     *string
	Email       *string
	SourceURL   *string

	Address  string
	City     string `gorm:"index"`
	Country  *string
	Region   *string
	District *string

	Latitude  float64 `gorm:"index"`
	Longitude float64 `gorm:"index"`

	Rating      *float64
	RatingCount int `gorm:"default:0"`

	Images datatypes.JSONSlice[string]

	IsActive   bool `gorm:"default:true"`
	IsVerified bool `gorm:"default:false"`
	IsArchived bool `gorm:"default:false;index"`

	LastSynced *time.Time

	WorkingHours []WorkingHours `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Reviews      []Review       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	MenuItems    []MenuItem     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// HasCoordinates reports whether the record is eligible for geo matching.
// Imports occasionally land with zeroed coordinates; those rows can only be
// matched by phone.
func (r *Restaurant) HasCoordinates() bool {
	return r.Latitude != 0 && r.Longitude != 0
}

type WorkingHours struct {
	gorm.Model
	RestaurantID uint `gorm:"index"`
	DayOfWeek    int  `gorm:"check:day_of_week >= 0 AND day_of_week <= 6"`
	OpensAt      string
	ClosesAt     string
	IsClosed     bool `gorm:"default:false"`
}

type Review struct {
	gorm.Model
	RestaurantID uint `gorm:"index"`
	Source       string
	ExternalID   *string `gorm:"uniqueIndex:idx_review_external"`
	Author       string
	Rating       float64
	Text         string `gorm:"type:text"`
	PublishedAt  *time.Time
	AvatarURL    *string
	Likes        int `gorm:"default:0"`
}

type MenuItem struct {
	gorm.Model
	RestaurantID uint `gorm:"index"`
	Name         string
	Price        *float64
	Category     *string
}
