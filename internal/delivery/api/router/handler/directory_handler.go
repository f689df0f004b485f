package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/Abros3006/business-tracker/internal/delivery/api/response"
	"github.com/Abros3006/business-tracker/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const directoryUnavailableNotice = "Businesses could not be loaded right now. Please try again shortly."

// DirectoryHandlerParams holds dependencies for DirectoryHandler, injected by Fx.
type DirectoryHandlerParams struct {
	fx.In

	DirectoryUC usecase.DirectoryUsecase
	Logger      *slog.Logger
}

// DirectoryHandler serves the public business directory
type DirectoryHandler struct {
	directoryUC usecase.DirectoryUsecase
	logger      *slog.Logger
}

// NewDirectoryHandler is the constructor for DirectoryHandler
func NewDirectoryHandler(params DirectoryHandlerParams) *DirectoryHandler {
	return &DirectoryHandler{
		directoryUC: params.DirectoryUC,
		logger:      params.Logger,
	}
}

// DirectoryResponse is the filtered directory listing.
type DirectoryResponse struct {
	Businesses []*BusinessResponse `json:"businesses"`
	Industries []string            `json:"industries"`
	Total      int                 `json:"total"`
}

// BusinessProfileResponse is the public detail view of a business.
type BusinessProfileResponse struct {
	*BusinessResponse
	EmbedURL   string `json:"embed_url,omitempty"`
	ProfileURL string `json:"profile_url"`
}

// ListBusinesses handles the directory with optional search and industry filters.
func (h *DirectoryHandler) ListBusinesses(c echo.Context) error {
	result := h.directoryUC.ListBusinesses(c.Request().Context(), usecase.DirectoryQuery{
		Search:   strings.TrimSpace(c.QueryParam("search")),
		Industry: strings.TrimSpace(c.QueryParam("industry")),
	})

	industries := result.Industries
	if industries == nil {
		industries = []string{}
	}

	body := DirectoryResponse{
		Businesses: toBusinessResponses(result.Businesses),
		Industries: industries,
		Total:      result.Total,
	}

	if result.Degraded {
		return response.SuccessWithNotice(c, http.StatusOK, body, directoryUnavailableNotice)
	}

	return response.Success(c, http.StatusOK, body)
}

// ListIndustries returns the distinct industries in the directory.
func (h *DirectoryHandler) ListIndustries(c echo.Context) error {
	industries, err := h.directoryUC.Industries(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if industries == nil {
		industries = []string{}
	}

	return response.Success(c, http.StatusOK, industries)
}

// GetBusiness returns one business with its embeddable video link.
func (h *DirectoryHandler) GetBusiness(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "BUSINESS_NOT_FOUND", "Business not found")
	}

	profile, err := h.directoryUC.GetBusiness(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, BusinessProfileResponse{
		BusinessResponse: toBusinessResponse(profile.Business),
		EmbedURL:         profile.EmbedURL,
		ProfileURL:       profile.ProfileURL,
	})
}

// GetBusinessQRCode returns a PNG linking to the business profile.
func (h *DirectoryHandler) GetBusinessQRCode(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "BUSINESS_NOT_FOUND", "Business not found")
	}

	png, err := h.directoryUC.BusinessQRCode(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=3600")

	return c.Blob(http.StatusOK, "image/png", png)
}
