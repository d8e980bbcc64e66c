// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExperienceBucket classifies a farmer by years of experience.
type ExperienceBucket string

const (
	ExperienceBucketNew         ExperienceBucket = "new"         // [0, 2) years
	ExperienceBucketExperienced ExperienceBucket = "experienced" // [2, 10) years
	ExperienceBucketExpert      ExperienceBucket = "expert"      // [10, inf) years
)

// ExperienceBucketForYears returns the bucket a farmer with the given years
// of experience falls into. Boundaries are half-open: exactly 2 years is
// experienced, exactly 10 is expert.
func ExperienceBucketForYears(years int) ExperienceBucket {
	switch {
	case years >= 10:
		return ExperienceBucketExpert
	case years >= 2:
		return ExperienceBucketExperienced
	default:
		return ExperienceBucketNew
	}
}

// Farmer represents a farmer in the Farm Tracker system.
type Farmer struct {
	ID              uuid.UUID
	Name            string
	Phone           string
	Email           string // Optional
	Address         string
	UserID          *uuid.UUID // Optional login account
	DateOfBirth     *time.Time
	ExperienceYears int
	LandAreaAcres   decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewFarmer creates a new Farmer entity.
func NewFarmer(
	name string,
	phone string,
	email string,
	address string,
	dateOfBirth *time.Time,
	experienceYears int,
	landAreaAcres decimal.Decimal,
) *Farmer {
	now := time.Now().UTC()

	return &Farmer{
		ID:              uuid.New(),
		Name:            name,
		Phone:           phone,
		Email:           email,
		Address:         address,
		DateOfBirth:     dateOfBirth,
		ExperienceYears: experienceYears,
		LandAreaAcres:   landAreaAcres,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// ExperienceBucket returns the experience classification of the farmer.
func (f *Farmer) ExperienceBucket() ExperienceBucket {
	return ExperienceBucketForYears(f.ExperienceYears)
}

// FarmerWithStats represents a farmer with aggregated crop statistics for
// list views.
type FarmerWithStats struct {
	Farmer        *Farmer
	CropCount     int
	TotalValue    decimal.Decimal // Sum of crop TotalValue
	UpcomingCount int             // Harvests within the next 30 days
}
