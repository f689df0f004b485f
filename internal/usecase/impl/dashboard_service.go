package impl

import (
	"context"
	"log/slog"

	deliverycontext "github.com/Abros3006/business-tracker/internal/delivery/context"
	"github.com/Abros3006/business-tracker/internal/domain/constants"
	"github.com/Abros3006/business-tracker/internal/domain/entity"
	domainerrors "github.com/Abros3006/business-tracker/internal/domain/errors"
	"github.com/Abros3006/business-tracker/internal/domain/repository"
	"github.com/Abros3006/business-tracker/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	profileRepo  repository.ProfileRepository
	businessRepo repository.BusinessRepository
	logger       *slog.Logger
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	ProfileRepo  repository.ProfileRepository
	BusinessRepo repository.BusinessRepository
	Logger       *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		profileRepo:  params.ProfileRepo,
		businessRepo: params.BusinessRepo,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *dashboardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Load builds the dashboard for userID. The admin panel is only ever built for admins,
// whatever tab was asked for.
func (srv *dashboardService) Load(ctx context.Context, userID uuid.UUID, tab usecase.DashboardTab) (*usecase.Dashboard, error) {
	profile, err := srv.profileRepo.FindByID(ctx, userID)
	if err != nil {
		srv.log(ctx).Warn("Dashboard profile lookup failed", slog.String("user_id", userID.String()), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "dashboard profile")
	}

	if profile.IsAdmin() {
		return srv.adminDashboard(ctx, profile, tab)
	}

	return srv.studentDashboard(ctx, profile)
}

// adminDashboard never fails on a panel load error: the admin sees empty tables
// and the dashboard is flagged degraded.
func (srv *dashboardService) adminDashboard(ctx context.Context, profile *entity.Profile, tab usecase.DashboardTab) (*usecase.Dashboard, error) {
	if tab != usecase.TabUsers {
		tab = usecase.TabOverview
	}

	dashboard := &usecase.Dashboard{
		Profile: profile,
		Tab:     tab,
	}

	panel, err := srv.adminPanel(ctx, profile, tab)
	if err != nil {
		srv.log(ctx).Error("Failed to load admin dashboard",
			slog.String("user_id", profile.ID.String()),
			slog.String("tab", string(tab)),
			slog.Any("error", err),
		)

		panel = &usecase.AdminPanel{Businesses: []*entity.Business{}}
		if tab == usecase.TabUsers {
			panel.Users = []usecase.UserRow{}
		}
		dashboard.Degraded = true
	}
	dashboard.Admin = panel

	return dashboard, nil
}

func (srv *dashboardService) adminPanel(ctx context.Context, profile *entity.Profile, tab usecase.DashboardTab) (*usecase.AdminPanel, error) {
	businesses, err := srv.businessRepo.FindAll(ctx, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load businesses")
	}

	total, featured, err := srv.businessRepo.CountAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count businesses")
	}

	users, err := srv.profileRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	panel := &usecase.AdminPanel{
		Overview: usecase.Overview{
			TotalBusinesses:    int(total),
			TotalUsers:         int(users),
			FeaturedBusinesses: int(featured),
		},
		Businesses: businesses,
	}

	if tab == usecase.TabUsers {
		profiles, err := srv.profileRepo.FindAll(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load users")
		}

		panel.Users = make([]usecase.UserRow, 0, len(profiles))
		for _, p := range profiles {
			panel.Users = append(panel.Users, usecase.UserRow{
				Profile:   p,
				Deletable: p.ID != profile.ID,
			})
		}
	}

	return panel, nil
}

func (srv *dashboardService) studentDashboard(ctx context.Context, profile *entity.Profile) (*usecase.Dashboard, error) {
	businesses, err := srv.businessRepo.FindByOwner(ctx, profile.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load own business")
	}

	panel := &usecase.StudentPanel{
		ManageURL: constants.ManagePath,
	}
	if len(businesses) > 0 {
		panel.Business = businesses[0]
	}
	panel.ShowCreateCTA = panel.Business == nil

	return &usecase.Dashboard{
		Profile: profile,
		Student: panel,
	}, nil
}
