package impl

import (
	"context"
	"testing"

	"github.com/Abros3006/business-tracker/config"
	"github.com/Abros3006/business-tracker/internal/domain/entity"
	domainerrors "github.com/Abros3006/business-tracker/internal/domain/errors"
	"github.com/Abros3006/business-tracker/internal/domain/repository"
	"github.com/Abros3006/business-tracker/internal/domain/service"
	mockRepo "github.com/Abros3006/business-tracker/internal/mocks/repository"
	mockSvc "github.com/Abros3006/business-tracker/internal/mocks/service"
	"github.com/Abros3006/business-tracker/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type directoryFixture struct {
	service      usecase.DirectoryUsecase
	businessRepo *mockRepo.MockBusinessRepository
	qrcode       *mockSvc.MockQRCodeService
	publisher    *mockSvc.MockEventPublisher
}

func createTestDirectoryService(t *testing.T) *directoryFixture {
	t.Helper()

	fx := &directoryFixture{
		businessRepo: mockRepo.NewMockBusinessRepository(t),
		qrcode:       mockSvc.NewMockQRCodeService(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}
	fx.service = NewDirectoryService(DirectoryServiceParams{
		BusinessRepo: fx.businessRepo,
		QRCode:       fx.qrcode,
		Publisher:    fx.publisher,
		Config:       &config.Config{Site: &config.SiteConfig{PublicURL: "https://showcase.example"}},
		Logger:       newDiscardLogger(),
	})

	return fx
}

func strPtr(s string) *string {
	return &s
}

func sampleDirectory() []*entity.Business {
	return []*entity.Business{
		{ID: uuid.New(), Name: "Bean There", Description: "Campus coffee cart", Industry: "Food"},
		{ID: uuid.New(), Name: "CodeCraft", Description: "Web sites for clubs", Industry: "Technology"},
		{ID: uuid.New(), Name: "Thread Lab", Description: "Upcycled clothing", Industry: "Fashion"},
		{ID: uuid.New(), Name: "Byte Bakery", Description: "Cookies with code puns", Industry: "Food"},
	}
}

func TestDirectoryService_ListBusinesses_FiltersInProcess(t *testing.T) {
	fx := createTestDirectoryService(t)
	ctx := context.Background()
	all := sampleDirectory()

	fx.businessRepo.EXPECT().FindAll(ctx, false).Return(all, nil)

	result := fx.service.ListBusinesses(ctx, usecase.DirectoryQuery{Search: "code", Industry: "Food"})

	require.False(t, result.Degraded)
	require.Len(t, result.Businesses, 1)
	assert.Equal(t, "Byte Bakery", result.Businesses[0].Name)
	assert.Equal(t, 1, result.Total)
	assert.Equal(t, []string{"Fashion", "Food", "Technology"}, result.Industries)
}

func TestDirectoryService_ListBusinesses_DegradesOnFailure(t *testing.T) {
	fx := createTestDirectoryService(t)
	ctx := context.Background()

	fx.businessRepo.EXPECT().FindAll(ctx, false).Return(nil, errors.New("connection reset"))

	result := fx.service.ListBusinesses(ctx, usecase.DirectoryQuery{})

	assert.True(t, result.Degraded)
	assert.Empty(t, result.Businesses)
	assert.NotNil(t, result.Businesses)
	assert.Equal(t, 0, result.Total)
}

func TestDirectoryService_Industries(t *testing.T) {
	fx := createTestDirectoryService(t)
	ctx := context.Background()

	fx.businessRepo.EXPECT().FindAll(ctx, false).Return(sampleDirectory(), nil).Once()
	industries, err := fx.service.Industries(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Fashion", "Food", "Technology"}, industries)

	fx.businessRepo.EXPECT().FindAll(ctx, false).Return(nil, errors.New("boom")).Once()
	_, err = fx.service.Industries(ctx)
	require.Error(t, err)
}

func TestDirectoryService_GetBusiness_WithEmbed(t *testing.T) {
	fx := createTestDirectoryService(t)
	ctx := context.Background()
	business := &entity.Business{ID: uuid.New(), Name: "Bean There", YouTubeVideoURL: strPtr("https://youtu.be/dQw4w9WgXcQ")}

	fx.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
	fx.qrcode.EXPECT().ProfileURL(business.ID).Return("https://showcase.example/businesses/" + business.ID.String())
	fx.publisher.EXPECT().Publish(ctx, mock.MatchedBy(func(e *service.DomainEvent) bool {
		return e.Type == service.EventBusinessViewed && e.BusinessID == business.ID.String()
	})).Return(nil)

	profile, err := fx.service.GetBusiness(ctx, business.ID)

	require.NoError(t, err)
	assert.Equal(t, business, profile.Business)
	assert.Equal(t,
		"https://www.youtube.com/embed/dQw4w9WgXcQ?enablejsapi=1&origin=https%3A%2F%2Fshowcase.example&rel=0&modestbranding=1",
		profile.EmbedURL,
	)
}

func TestDirectoryService_GetBusiness_UnembeddableVideoIsOmitted(t *testing.T) {
	fx := createTestDirectoryService(t)
	ctx := context.Background()
	business := &entity.Business{ID: uuid.New(), YouTubeVideoURL: strPtr("https://vimeo.com/123")}

	fx.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
	fx.qrcode.EXPECT().ProfileURL(business.ID).Return("")
	fx.publisher.EXPECT().Publish(ctx, mock.Anything).Return(errors.New("broker down"))

	profile, err := fx.service.GetBusiness(ctx, business.ID)

	require.NoError(t, err)
	assert.Empty(t, profile.EmbedURL)
}

func TestDirectoryService_GetBusiness_AnyFailureIsNotFound(t *testing.T) {
	fx := createTestDirectoryService(t)
	ctx := context.Background()
	missing, broken := uuid.New(), uuid.New()

	fx.businessRepo.EXPECT().FindByID(ctx, missing).Return(nil, repository.ErrBusinessNotFound)
	fx.businessRepo.EXPECT().FindByID(ctx, broken).Return(nil, errors.New("syntax error"))

	_, err := fx.service.GetBusiness(ctx, missing)
	assert.True(t, errors.Is(err, domainerrors.ErrBusinessNotFound))

	_, err = fx.service.GetBusiness(ctx, broken)
	assert.True(t, errors.Is(err, domainerrors.ErrBusinessNotFound))
	assert.Equal(t, 404, domainerrors.HTTPStatus(err))
}

func TestDirectoryService_BusinessQRCode(t *testing.T) {
	fx := createTestDirectoryService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.businessRepo.EXPECT().FindByID(ctx, id).Return(&entity.Business{ID: id}, nil)
	fx.qrcode.EXPECT().BusinessProfileQR(id).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.BusinessQRCode(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
}

func TestDirectoryService_RecordVisit(t *testing.T) {
	fx := createTestDirectoryService(t)
	ctx := context.Background()
	id, gone := uuid.New(), uuid.New()

	fx.businessRepo.EXPECT().IncrementVisitorCount(ctx, id).Return(nil)
	fx.businessRepo.EXPECT().IncrementVisitorCount(ctx, gone).Return(repository.ErrBusinessNotFound)

	require.NoError(t, fx.service.RecordVisit(ctx, id))
	assert.True(t, errors.Is(fx.service.RecordVisit(ctx, gone), domainerrors.ErrBusinessNotFound))
}
