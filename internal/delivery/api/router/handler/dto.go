package handler

import (
	"strings"
	"time"

	"github.com/Abros3006/business-tracker/internal/domain/entity"
	"github.com/Abros3006/business-tracker/internal/usecase"

	"github.com/google/uuid"
)

// BusinessResponse is the wire form of a business listing.
type BusinessResponse struct {
	ID              uuid.UUID         `json:"id"`
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	Industry        string            `json:"industry"`
	YouTubeVideoURL *string           `json:"youtube_video_url,omitempty"`
	WebsiteURL      *string           `json:"website_url,omitempty"`
	Email           *string           `json:"email,omitempty"`
	Phone           *string           `json:"phone,omitempty"`
	SocialLinks     map[string]string `json:"social_links"`
	Featured        bool              `json:"featured"`
	Rating          float64           `json:"rating"`
	TotalRatings    int               `json:"total_ratings"`
	VisitorCount    int               `json:"visitor_count"`
	OwnerID         uuid.UUID         `json:"owner_id"`
	OwnerName       string            `json:"owner_name,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
}

// ProfileResponse is the wire form of a profile.
type ProfileResponse struct {
	ID        uuid.UUID   `json:"id"`
	FullName  string      `json:"full_name"`
	Role      entity.Role `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
}

// CanvasResponse lists every schema field, empty ones included.
type CanvasResponse struct {
	ID         uuid.UUID           `json:"id"`
	BusinessID uuid.UUID           `json:"business_id"`
	Kind       entity.CanvasKind   `json:"kind"`
	Fields     map[string][]string `json:"fields"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// BusinessDetailsRequest is the owner-editable part of a business.
type BusinessDetailsRequest struct {
	Name            string            `json:"name" validate:"required,max=120"`
	Description     string            `json:"description" validate:"required,max=2000"`
	Industry        string            `json:"industry" validate:"required,max=80"`
	YouTubeVideoURL string            `json:"youtube_video_url" validate:"omitempty,url"`
	WebsiteURL      string            `json:"website_url" validate:"omitempty,url"`
	Email           string            `json:"email" validate:"omitempty,email"`
	Phone           string            `json:"phone" validate:"omitempty,max=32"`
	SocialLinks     map[string]string `json:"social_links" validate:"omitempty,dive,keys,required,endkeys,url"`
}

// normalize trims the optional contact fields so a blank value reads as absent.
func (r *BusinessDetailsRequest) normalize() {
	r.YouTubeVideoURL = strings.TrimSpace(r.YouTubeVideoURL)
	r.WebsiteURL = strings.TrimSpace(r.WebsiteURL)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
}

func (r *BusinessDetailsRequest) toEntity() *entity.BusinessDetails {
	return &entity.BusinessDetails{
		Name:            r.Name,
		Description:     r.Description,
		Industry:        r.Industry,
		YouTubeVideoURL: blankToNil(r.YouTubeVideoURL),
		WebsiteURL:      blankToNil(r.WebsiteURL),
		Email:           blankToNil(r.Email),
		Phone:           blankToNil(r.Phone),
		SocialLinks:     r.SocialLinks,
	}
}

func blankToNil(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func toBusinessResponse(b *entity.Business) *BusinessResponse {
	if b == nil {
		return nil
	}

	links := b.SocialLinks
	if links == nil {
		links = map[string]string{}
	}

	return &BusinessResponse{
		ID:              b.ID,
		Name:            b.Name,
		Description:     b.Description,
		Industry:        b.Industry,
		YouTubeVideoURL: b.YouTubeVideoURL,
		WebsiteURL:      b.WebsiteURL,
		Email:           b.Email,
		Phone:           b.Phone,
		SocialLinks:     links,
		Featured:        b.Featured,
		Rating:          b.Rating,
		TotalRatings:    b.TotalRatings,
		VisitorCount:    b.VisitorCount,
		OwnerID:         b.OwnerID,
		OwnerName:       b.OwnerName,
		CreatedAt:       b.CreatedAt,
	}
}

func toBusinessResponses(list []*entity.Business) []*BusinessResponse {
	out := make([]*BusinessResponse, 0, len(list))
	for _, b := range list {
		out = append(out, toBusinessResponse(b))
	}

	return out
}

func toProfileResponse(p *entity.Profile) *ProfileResponse {
	if p == nil {
		return nil
	}

	return &ProfileResponse{
		ID:        p.ID,
		FullName:  p.FullName,
		Role:      p.Role,
		CreatedAt: p.CreatedAt,
	}
}

func toCanvasResponse(c *entity.Canvas) *CanvasResponse {
	if c == nil {
		return nil
	}

	fields := make(map[string][]string, len(c.Kind.Fields()))
	for _, name := range c.Kind.Fields() {
		lines := c.Fields[name]
		if lines == nil {
			lines = entity.Lines{}
		}
		fields[name] = lines
	}

	return &CanvasResponse{
		ID:         c.ID,
		BusinessID: c.BusinessID,
		Kind:       c.Kind,
		Fields:     fields,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

// WorkspaceResponse is the management view for one owner.
type WorkspaceResponse struct {
	State                  usecase.WorkspaceState `json:"state"`
	Business               *BusinessResponse      `json:"business,omitempty"`
	BusinessModelCanvas    *CanvasResponse        `json:"business_model_canvas,omitempty"`
	ValuePropositionCanvas *CanvasResponse        `json:"value_proposition_canvas,omitempty"`
}

func toWorkspaceResponse(w *usecase.Workspace) *WorkspaceResponse {
	return &WorkspaceResponse{
		State:                  w.State,
		Business:               toBusinessResponse(w.Business),
		BusinessModelCanvas:    toCanvasResponse(w.BusinessModelCanvas),
		ValuePropositionCanvas: toCanvasResponse(w.ValuePropositionCanvas),
	}
}

// UserRowResponse is one line of the admin user table.
type UserRowResponse struct {
	Profile   *ProfileResponse `json:"profile"`
	Deletable bool             `json:"deletable"`
}

// AdminPanelResponse is only present for admins.
type AdminPanelResponse struct {
	Overview   usecase.Overview    `json:"overview"`
	Businesses []*BusinessResponse `json:"businesses"`
	Users      []UserRowResponse   `json:"users,omitempty"`
}

// StudentPanelResponse is only present for students.
type StudentPanelResponse struct {
	Business      *BusinessResponse `json:"business,omitempty"`
	ManageURL     string            `json:"manage_url"`
	ShowCreateCTA bool              `json:"show_create_cta"`
}

// DashboardResponse carries exactly one of Admin and Student.
type DashboardResponse struct {
	Profile *ProfileResponse      `json:"profile"`
	Tab     usecase.DashboardTab  `json:"tab"`
	Admin   *AdminPanelResponse   `json:"admin,omitempty"`
	Student *StudentPanelResponse `json:"student,omitempty"`
}

func toDashboardResponse(d *usecase.Dashboard) *DashboardResponse {
	resp := &DashboardResponse{
		Profile: toProfileResponse(d.Profile),
		Tab:     d.Tab,
	}

	if d.Admin != nil {
		admin := &AdminPanelResponse{
			Overview:   d.Admin.Overview,
			Businesses: toBusinessResponses(d.Admin.Businesses),
		}
		for _, row := range d.Admin.Users {
			admin.Users = append(admin.Users, UserRowResponse{
				Profile:   toProfileResponse(row.Profile),
				Deletable: row.Deletable,
			})
		}
		resp.Admin = admin
	}

	if d.Student != nil {
		resp.Student = &StudentPanelResponse{
			Business:      toBusinessResponse(d.Student.Business),
			ManageURL:     d.Student.ManageURL,
			ShowCreateCTA: d.Student.ShowCreateCTA,
		}
	}

	return resp
}
