package usecase

import (
	"context"

	"github.com/Abros3006/business-tracker/internal/domain/entity"

	"github.com/google/uuid"
)

// DashboardTab selects the admin dashboard tab.
type DashboardTab string

const (
	TabOverview DashboardTab = "overview"
	TabUsers    DashboardTab = "users"
)

// Overview carries the admin aggregate counts.
type Overview struct {
	TotalBusinesses    int `json:"total_businesses"`
	TotalUsers         int `json:"total_users"`
	FeaturedBusinesses int `json:"featured_businesses"`
}

// UserRow is one line of the admin user-management table.
type UserRow struct {
	Profile   *entity.Profile
	Deletable bool
}

// AdminPanel is only ever built for admins.
type AdminPanel struct {
	Overview   Overview
	Businesses []*entity.Business
	Users      []UserRow // only filled for the users tab
}

// StudentPanel shows the owner's own business, if any.
type StudentPanel struct {
	Business      *entity.Business
	ManageURL     string
	ShowCreateCTA bool
}

// Dashboard is role-conditional: exactly one of Admin and Student is set.
// Degraded is set when the admin panels failed to load and are shown empty.
type Dashboard struct {
	Profile  *entity.Profile
	Tab      DashboardTab
	Admin    *AdminPanel
	Student  *StudentPanel
	Degraded bool
}

// DashboardUsecase builds the dashboard for the signed-in user.
type DashboardUsecase interface {
	Load(ctx context.Context, userID uuid.UUID, tab DashboardTab) (*Dashboard, error)
}
