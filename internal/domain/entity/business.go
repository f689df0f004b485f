package entity

import (
	"time"

	"github.com/google/uuid"
)

// Business is a student-run business listing. Each owner has at most one.
type Business struct {
	ID              uuid.UUID
	Name            string
	Description     string
	Industry        string
	YouTubeVideoURL *string
	WebsiteURL      *string
	Email           *string
	Phone           *string
	SocialLinks     map[string]string
	Featured        bool
	Rating          float64
	TotalRatings    int
	VisitorCount    int
	OwnerID         uuid.UUID
	OwnerName       string // populated only by joined reads
	CreatedAt       time.Time
}

// BusinessDetails is the owner-editable subset of a Business.
type BusinessDetails struct {
	Name            string
	Description     string
	Industry        string
	YouTubeVideoURL *string
	WebsiteURL      *string
	Email           *string
	Phone           *string
	SocialLinks     map[string]string
}

// Apply copies the editable fields onto b.
func (d *BusinessDetails) Apply(b *Business) {
	b.Name = d.Name
	b.Description = d.Description
	b.Industry = d.Industry
	b.YouTubeVideoURL = d.YouTubeVideoURL
	b.WebsiteURL = d.WebsiteURL
	b.Email = d.Email
	b.Phone = d.Phone
	if d.SocialLinks != nil {
		b.SocialLinks = d.SocialLinks
	}
}

// NewBusiness builds an unsaved Business for owner from details.
func NewBusiness(ownerID uuid.UUID, details *BusinessDetails) *Business {
	b := &Business{
		OwnerID:     ownerID,
		SocialLinks: map[string]string{},
	}
	details.Apply(b)

	return b
}
