package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Abros3006/business-tracker/internal/domain/entity"
	domainerrors "github.com/Abros3006/business-tracker/internal/domain/errors"
	mockUC "github.com/Abros3006/business-tracker/internal/mocks/usecase"
	"github.com/Abros3006/business-tracker/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestManagementHandler(t *testing.T) (*ManagementHandler, *mockUC.MockManagementUsecase) {
	managementUC := mockUC.NewMockManagementUsecase(t)

	return NewManagementHandler(ManagementHandlerParams{
		ManagementUC: managementUC,
		Logger:       discardLogger(),
	}), managementUC
}

func TestManagementHandler_GetWorkspace(t *testing.T) {
	h, managementUC := createTestManagementHandler(t)
	e := newTestEcho()
	ownerID := uuid.New()

	managementUC.EXPECT().GetWorkspace(mock.Anything, ownerID).
		Return(&usecase.Workspace{State: usecase.WorkspaceNoBusiness}, nil)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/business/manage", nil), rec)
	signedIn(c, ownerID, entity.RoleStudent)

	require.NoError(t, h.GetWorkspace(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"state":"no_business"}`, string(decode(t, rec).Data))
}

func TestManagementHandler_CreateBusiness(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h, managementUC := createTestManagementHandler(t)
		e := newTestEcho()
		ownerID := uuid.New()

		managementUC.EXPECT().
			CreateBusiness(mock.Anything, ownerID, mock.MatchedBy(func(d *entity.BusinessDetails) bool {
				return d.Name == "Byte Bakery" && d.WebsiteURL == nil && *d.Email == "hi@bytebakery.example"
			})).
			Return(&usecase.Workspace{
				State:    usecase.WorkspaceHasBusiness,
				Business: &entity.Business{ID: uuid.New(), Name: "Byte Bakery", OwnerID: ownerID},
			}, nil)

		rec := httptest.NewRecorder()
		c := e.NewContext(newJSONRequest(http.MethodPost, "/api/v1/business/manage",
			`{"name":"Byte Bakery","description":"Bread","industry":"Food","website_url":"","email":"hi@bytebakery.example"}`), rec)
		signedIn(c, ownerID, entity.RoleStudent)

		require.NoError(t, h.CreateBusiness(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		out := decodeData[WorkspaceResponse](t, rec)
		assert.Equal(t, usecase.WorkspaceHasBusiness, out.State)
		assert.Equal(t, "Byte Bakery", out.Business.Name)
	})

	t.Run("blank optional fields are accepted", func(t *testing.T) {
		h, managementUC := createTestManagementHandler(t)
		e := newTestEcho()
		ownerID := uuid.New()

		managementUC.EXPECT().
			CreateBusiness(mock.Anything, ownerID, mock.MatchedBy(func(d *entity.BusinessDetails) bool {
				return d.YouTubeVideoURL == nil && d.WebsiteURL == nil && d.Email == nil && d.Phone == nil
			})).
			Return(&usecase.Workspace{
				State:    usecase.WorkspaceHasBusiness,
				Business: &entity.Business{ID: uuid.New(), Name: "Byte Bakery", OwnerID: ownerID},
			}, nil)

		rec := httptest.NewRecorder()
		c := e.NewContext(newJSONRequest(http.MethodPost, "/api/v1/business/manage",
			`{"name":"Byte Bakery","description":"Bread","industry":"Food",`+
				`"youtube_video_url":"","website_url":"  ","email":"","phone":""}`), rec)
		signedIn(c, ownerID, entity.RoleStudent)

		require.NoError(t, h.CreateBusiness(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("second business conflicts", func(t *testing.T) {
		h, managementUC := createTestManagementHandler(t)
		e := newTestEcho()

		managementUC.EXPECT().CreateBusiness(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrBusinessAlreadyExists)

		rec := httptest.NewRecorder()
		c := e.NewContext(newJSONRequest(http.MethodPost, "/api/v1/business/manage",
			`{"name":"Byte Bakery","description":"Bread","industry":"Food"}`), rec)
		signedIn(c, uuid.New(), entity.RoleStudent)

		require.NoError(t, h.CreateBusiness(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("invalid details", func(t *testing.T) {
		h, _ := createTestManagementHandler(t)
		e := newTestEcho()

		rec := httptest.NewRecorder()
		c := e.NewContext(newJSONRequest(http.MethodPost, "/api/v1/business/manage",
			`{"name":"","description":"Bread","industry":"Food","youtube_video_url":"not a url"}`), rec)
		signedIn(c, uuid.New(), entity.RoleStudent)

		require.NoError(t, h.CreateBusiness(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		env := decode(t, rec)
		assert.Equal(t, "is required", env.detail("name"))
		assert.Equal(t, "must be a valid URL", env.detail("youtube_video_url"))
	})
}

func TestManagementHandler_UpdateBusiness(t *testing.T) {
	t.Run("blank optional fields clear the values", func(t *testing.T) {
		h, managementUC := createTestManagementHandler(t)
		e := newTestEcho()
		ownerID := uuid.New()

		managementUC.EXPECT().
			UpdateBusiness(mock.Anything, ownerID, mock.MatchedBy(func(d *entity.BusinessDetails) bool {
				return d.Name == "Byte Bakery" && d.YouTubeVideoURL == nil && d.WebsiteURL == nil &&
					d.Email == nil && d.Phone == nil
			})).
			Return(&entity.Business{ID: uuid.New(), Name: "Byte Bakery", OwnerID: ownerID}, nil)

		rec := httptest.NewRecorder()
		c := e.NewContext(newJSONRequest(http.MethodPut, "/api/v1/business/manage",
			`{"name":"Byte Bakery","description":"Bread","industry":"Food",`+
				`"youtube_video_url":"","website_url":"","email":"","phone":""}`), rec)
		signedIn(c, ownerID, entity.RoleStudent)

		require.NoError(t, h.UpdateBusiness(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		out := decodeData[BusinessResponse](t, rec)
		assert.Equal(t, "Byte Bakery", out.Name)
		assert.Nil(t, out.WebsiteURL)
	})

	t.Run("invalid email is rejected", func(t *testing.T) {
		h, _ := createTestManagementHandler(t)
		e := newTestEcho()

		rec := httptest.NewRecorder()
		c := e.NewContext(newJSONRequest(http.MethodPut, "/api/v1/business/manage",
			`{"name":"Byte Bakery","description":"Bread","industry":"Food","email":"nope"}`), rec)
		signedIn(c, uuid.New(), entity.RoleStudent)

		require.NoError(t, h.UpdateBusiness(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.NotEmpty(t, decode(t, rec).detail("email"))
	})
}

func TestManagementHandler_SaveCanvas(t *testing.T) {
	h, managementUC := createTestManagementHandler(t)
	e := newTestEcho()
	ownerID := uuid.New()

	managementUC.EXPECT().SaveCanvas(mock.Anything, ownerID, usecase.SaveCanvasInput{
		Kind: entity.CanvasValueProposition,
		Text: map[string]string{"pains": "slow checkout\nno delivery"},
	}).Return(&entity.Canvas{
		Kind:   entity.CanvasValueProposition,
		Fields: map[string]entity.Lines{"pains": {"slow checkout", "no delivery"}},
	}, nil)

	rec := httptest.NewRecorder()
	c := e.NewContext(newJSONRequest(http.MethodPut, "/", `{"text":{"pains":"slow checkout\nno delivery"}}`), rec)
	c.SetParamNames("kind")
	c.SetParamValues("vpc")
	signedIn(c, ownerID, entity.RoleStudent)

	require.NoError(t, h.SaveCanvas(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	out := decodeData[CanvasResponse](t, rec)
	assert.Len(t, out.Fields, len(entity.CanvasValueProposition.Fields()))
	assert.Equal(t, []string{"slow checkout", "no delivery"}, out.Fields["pains"])
	assert.Equal(t, []string{}, out.Fields["gains"])
}

func TestManagementHandler_EditCanvasField(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected usecase.EditCanvasFieldInput
	}{
		{
			name: "add appends without an index",
			body: `{"op":"add","value":"campus cafe"}`,
			expected: usecase.EditCanvasFieldInput{
				Kind: entity.CanvasBusinessModel, Field: "key_partners",
				Op: usecase.LineOpAdd, Value: "campus cafe", Index: -1,
			},
		},
		{
			name: "remove at zero",
			body: `{"op":"remove","index":0}`,
			expected: usecase.EditCanvasFieldInput{
				Kind: entity.CanvasBusinessModel, Field: "key_partners",
				Op: usecase.LineOpRemove, Index: 0,
			},
		},
		{
			name: "move",
			body: `{"op":"move","from":2,"to":0}`,
			expected: usecase.EditCanvasFieldInput{
				Kind: entity.CanvasBusinessModel, Field: "key_partners",
				Op: usecase.LineOpMove, Index: -1, From: 2, To: 0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, managementUC := createTestManagementHandler(t)
			e := newTestEcho()
			ownerID := uuid.New()

			managementUC.EXPECT().EditCanvasField(mock.Anything, ownerID, tt.expected).
				Return(&entity.Canvas{Kind: entity.CanvasBusinessModel}, nil)

			rec := httptest.NewRecorder()
			c := e.NewContext(newJSONRequest(http.MethodPatch, "/", tt.body), rec)
			c.SetParamNames("kind", "field")
			c.SetParamValues("bmc", "key_partners")
			signedIn(c, ownerID, entity.RoleStudent)

			require.NoError(t, h.EditCanvasField(c))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}

	t.Run("remove needs an index", func(t *testing.T) {
		h, _ := createTestManagementHandler(t)
		e := newTestEcho()

		rec := httptest.NewRecorder()
		c := e.NewContext(newJSONRequest(http.MethodPatch, "/", `{"op":"remove"}`), rec)
		c.SetParamNames("kind", "field")
		c.SetParamValues("bmc", "key_partners")
		signedIn(c, uuid.New(), entity.RoleStudent)

		require.NoError(t, h.EditCanvasField(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "is required", decode(t, rec).detail("index"))
	})

	t.Run("out of range index from the usecase", func(t *testing.T) {
		h, managementUC := createTestManagementHandler(t)
		e := newTestEcho()

		managementUC.EXPECT().EditCanvasField(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrValidationFailed.WithDetails("line index out of range"))

		rec := httptest.NewRecorder()
		c := e.NewContext(newJSONRequest(http.MethodPatch, "/", `{"op":"remove","index":7}`), rec)
		c.SetParamNames("kind", "field")
		c.SetParamValues("bmc", "key_partners")
		signedIn(c, uuid.New(), entity.RoleStudent)

		require.NoError(t, h.EditCanvasField(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
	})
}
