package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// BusinessModel is the GORM-specific struct for the 'businesses' table.
type BusinessModel struct {
	ID              uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name            string            `gorm:"type:text;not null"`
	Description     string            `gorm:"type:text;not null;default:''"`
	Industry        string            `gorm:"type:text;not null;default:''"`
	YouTubeVideoURL *string           `gorm:"column:youtube_video_url;type:text"`
	WebsiteURL      *string           `gorm:"type:text"`
	Email           *string           `gorm:"type:text"`
	Phone           *string           `gorm:"type:text"`
	SocialLinks     datatypes.JSONMap `gorm:"type:jsonb;not null;default:'{}'"`
	Featured        bool              `gorm:"not null;default:false"`
	Rating          float64           `gorm:"type:numeric;not null;default:0"`
	TotalRatings    int               `gorm:"not null;default:0"`
	VisitorCount    int               `gorm:"not null;default:0"`
	OwnerID         uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (BusinessModel) TableName() string {
	return "businesses"
}

// BusinessWithOwner is the read model for joined listings.
type BusinessWithOwner struct {
	BusinessModel `gorm:"embedded"`
	OwnerName     string
}
