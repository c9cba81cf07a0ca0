package courts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	courtRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/court"
	"github.com/m04kA/SMC-CourtBookingService/internal/integrations/venueauth"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/courts/models"
	"github.com/m04kA/SMC-CourtBookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeCourtRepo struct {
	byID       map[int64]*domain.Court
	byFacility []*domain.Court

	created *domain.Court
	updated *domain.Court
}

func (f *fakeCourtRepo) Create(_ context.Context, court *domain.Court) (*domain.Court, error) {
	out := *court
	out.ID = 1
	f.created = &out
	return &out, nil
}

func (f *fakeCourtRepo) GetByID(_ context.Context, id int64) (*domain.Court, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, courtRepo.ErrCourtNotFound
	}
	copied := *c
	return &copied, nil
}

func (f *fakeCourtRepo) GetByFacility(_ context.Context, _ int64, onlyActive bool) ([]*domain.Court, error) {
	if !onlyActive {
		return f.byFacility, nil
	}
	result := make([]*domain.Court, 0)
	for _, c := range f.byFacility {
		if c.Active {
			result = append(result, c)
		}
	}
	return result, nil
}

func (f *fakeCourtRepo) Update(_ context.Context, court *domain.Court) error {
	copied := *court
	f.updated = &copied
	return nil
}

func (f *fakeCourtRepo) SetActive(_ context.Context, _ int64, _ bool) error {
	return nil
}

type fakeVenueAuth struct {
	allowed     bool
	facilityErr error
}

func (f *fakeVenueAuth) GetFacility(_ context.Context, facilityID int64) (*venueauth.Facility, error) {
	if f.facilityErr != nil {
		return nil, f.facilityErr
	}
	return &venueauth.Facility{ID: facilityID, Active: true}, nil
}

func (f *fakeVenueAuth) CanManage(_ context.Context, _, _ int64) (bool, error) {
	return f.allowed, nil
}

func testCourt() *domain.Court {
	return &domain.Court{
		ID:           1,
		FacilityID:   10,
		Name:         "Корт 1",
		Sport:        domain.SportBasketball,
		PricePerHour: 450,
		OpenHour:     6,
		CloseHour:    23,
		Active:       true,
	}
}

func createRequest() *models.CreateCourtRequest {
	return &models.CreateCourtRequest{
		UserID:       42,
		FacilityID:   10,
		Name:         "Корт 1",
		Sport:        "tennis",
		PricePerHour: 450,
		OpenHour:     6,
		CloseHour:    23,
	}
}

func TestCreate_Success(t *testing.T) {
	repo := &fakeCourtRepo{}
	svc := NewService(repo, &fakeVenueAuth{allowed: true}, nopLogger{})

	resp, err := svc.Create(context.Background(), createRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.True(t, resp.Active, "new court must start active")
	assert.Equal(t, "tennis", resp.Sport)
}

func TestCreate_AccessDenied(t *testing.T) {
	svc := NewService(&fakeCourtRepo{}, &fakeVenueAuth{allowed: false}, nopLogger{})

	_, err := svc.Create(context.Background(), createRequest())

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCreate_FacilityNotFound(t *testing.T) {
	svc := NewService(&fakeCourtRepo{}, &fakeVenueAuth{facilityErr: venueauth.ErrFacilityNotFound}, nopLogger{})

	_, err := svc.Create(context.Background(), createRequest())

	assert.ErrorIs(t, err, ErrFacilityNotFound)
}

func TestCreate_InvalidSport(t *testing.T) {
	svc := NewService(&fakeCourtRepo{}, &fakeVenueAuth{allowed: true}, nopLogger{})

	req := createRequest()
	req.Sport = "chess"

	_, err := svc.Create(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_InvalidOperatingHours(t *testing.T) {
	svc := NewService(&fakeCourtRepo{}, &fakeVenueAuth{allowed: true}, nopLogger{})

	req := createRequest()
	req.OpenHour = 23
	req.CloseHour = 6

	_, err := svc.Create(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_PriceChange(t *testing.T) {
	repo := &fakeCourtRepo{byID: map[int64]*domain.Court{1: testCourt()}}
	svc := NewService(repo, &fakeVenueAuth{allowed: true}, nopLogger{})

	resp, err := svc.Update(context.Background(), 1, &models.UpdateCourtRequest{
		UserID:       42,
		PricePerHour: ptr.Ptr(500.0),
	})

	require.NoError(t, err)
	assert.Equal(t, 500.0, resp.PricePerHour)
	require.NotNil(t, repo.updated)
	assert.Equal(t, 500.0, repo.updated.PricePerHour)
}

func TestUpdate_Deactivate(t *testing.T) {
	repo := &fakeCourtRepo{byID: map[int64]*domain.Court{1: testCourt()}}
	svc := NewService(repo, &fakeVenueAuth{allowed: true}, nopLogger{})

	resp, err := svc.Update(context.Background(), 1, &models.UpdateCourtRequest{
		UserID: 42,
		Active: ptr.Ptr(false),
	})

	require.NoError(t, err)
	assert.False(t, resp.Active)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := NewService(&fakeCourtRepo{}, &fakeVenueAuth{allowed: true}, nopLogger{})

	_, err := svc.Update(context.Background(), 99, &models.UpdateCourtRequest{
		UserID: 42,
		Name:   ptr.Ptr("Корт 2"),
	})

	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestList_OnlyActive(t *testing.T) {
	inactive := testCourt()
	inactive.ID = 2
	inactive.Active = false

	repo := &fakeCourtRepo{byFacility: []*domain.Court{testCourt(), inactive}}
	svc := NewService(repo, &fakeVenueAuth{}, nopLogger{})

	resp, err := svc.List(context.Background(), 10, true)

	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, int64(1), resp.Courts[0].ID)
}
