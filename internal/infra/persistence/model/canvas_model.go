package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// BusinessModelCanvasModel is the GORM-specific struct for the 'business_model_canvas' table.
type BusinessModelCanvasModel struct {
	ID                    uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	BusinessID            uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	KeyPartners           pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	KeyActivities         pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	KeyResources          pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	ValuePropositions     pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	CustomerRelationships pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	Channels              pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	CustomerSegments      pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	CostStructure         pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	RevenueStreams        pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName explicitly sets the table name for GORM.
func (BusinessModelCanvasModel) TableName() string {
	return "business_model_canvas"
}

// ValuePropositionCanvasModel is the GORM-specific struct for the 'value_proposition_canvas' table.
type ValuePropositionCanvasModel struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	BusinessID       uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	CustomerJobs     pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	Pains            pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	Gains            pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	ProductsServices pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	PainRelievers    pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	GainCreators     pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (ValuePropositionCanvasModel) TableName() string {
	return "value_proposition_canvas"
}
