package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"localreach/internal/core/domain"
	"localreach/internal/core/port"
	"localreach/internal/core/port/mocks"
)

func TestSetStatusRecordsActor(t *testing.T) {
	repo := mocks.NewMockZipCodeRepository(t)
	now := time.Now()

	repo.EXPECT().
		ReplaceStatus(mock.Anything, mock.MatchedBy(func(st *domain.ZipCodeStatus) bool {
			return st.ZipCodeID == "z1" && st.IsActive && st.CreatedBy == "admin-1" &&
				st.CampaignID == nil && st.Reason != nil && *st.Reason == "launch"
		})).
		Run(func(ctx context.Context, st *domain.ZipCodeStatus) {
			st.ID = "s1"
			st.StartDate = now
		}).
		Return(nil)

	svc := NewZipCodeUseCase(repo, discardLogger())
	st, err := svc.SetStatus(context.Background(), port.SetStatusReq{
		ZipCodeID:  "z1",
		IsActive:   true,
		Reason:     ptr(" launch "),
		CampaignID: ptr(""),
	}, admin)
	require.NoError(t, err)
	require.Equal(t, "s1", st.ID)
	require.True(t, st.Open())
}

func TestSetStatusAuthorization(t *testing.T) {
	svc := NewZipCodeUseCase(mocks.NewMockZipCodeRepository(t), discardLogger())
	req := port.SetStatusReq{ZipCodeID: "z1", IsActive: true}

	_, err := svc.SetStatus(context.Background(), req, nil)
	require.ErrorIs(t, err, port.ErrUnauthenticated)

	_, err = svc.SetStatus(context.Background(), req, business)
	require.ErrorIs(t, err, port.ErrForbidden)
}

func TestSetStatusUnknownZipCode(t *testing.T) {
	repo := mocks.NewMockZipCodeRepository(t)
	repo.EXPECT().ReplaceStatus(mock.Anything, mock.Anything).Return(port.ErrNotFound)

	svc := NewZipCodeUseCase(repo, discardLogger())
	_, err := svc.SetStatus(context.Background(), port.SetStatusReq{ZipCodeID: "missing"}, admin)
	require.ErrorIs(t, err, port.ErrNotFound)
}

func TestIsActiveUnknownCode(t *testing.T) {
	repo := mocks.NewMockZipCodeRepository(t)
	repo.EXPECT().GetZipCodeByCode(mock.Anything, "00000").Return(nil, nil)

	svc := NewZipCodeUseCase(repo, discardLogger())
	active, err := svc.IsActive(context.Background(), "00000", nil)
	require.NoError(t, err)
	require.False(t, active)
}

func TestIsActiveCampaignScope(t *testing.T) {
	tests := []struct {
		name     string
		status   *domain.ZipCodeStatus
		campaign *string
		want     bool
	}{
		{"no history", nil, ptr("campaign-A"), false},
		{"global activation", &domain.ZipCodeStatus{IsActive: true}, ptr("campaign-A"), true},
		{"other campaign", &domain.ZipCodeStatus{IsActive: true, CampaignID: ptr("campaign-B")}, ptr("campaign-A"), false},
		{"same campaign", &domain.ZipCodeStatus{IsActive: true, CampaignID: ptr("campaign-A")}, ptr("campaign-A"), true},
		{"scoped without campaign", &domain.ZipCodeStatus{IsActive: true, CampaignID: ptr("campaign-B")}, nil, true},
		{"inactive", &domain.ZipCodeStatus{IsActive: false}, nil, false},
		{"blank campaign is global", &domain.ZipCodeStatus{IsActive: true, CampaignID: ptr("campaign-B")}, ptr(" "), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockZipCodeRepository(t)
			repo.EXPECT().GetZipCodeByCode(mock.Anything, "94110").
				Return(&domain.ZipCode{ID: "z1", Code: "94110"}, nil)
			repo.EXPECT().CurrentStatus(mock.Anything, "z1").Return(tt.status, nil)

			svc := NewZipCodeUseCase(repo, discardLogger())
			active, err := svc.IsActive(context.Background(), "94110", tt.campaign)
			require.NoError(t, err)
			require.Equal(t, tt.want, active)
		})
	}
}

func TestCreateValidation(t *testing.T) {
	svc := NewZipCodeUseCase(mocks.NewMockZipCodeRepository(t), discardLogger())
	tests := []struct {
		name  string
		req   port.CreateZipCodeReq
		field string
	}{
		{"short code", port.CreateZipCodeReq{Code: "1234", City: "Austin", State: "TX"}, "code"},
		{"letters in code", port.CreateZipCodeReq{Code: "78a01", City: "Austin", State: "TX"}, "code"},
		{"missing city", port.CreateZipCodeReq{Code: "78701", State: "TX"}, "city"},
		{"long state", port.CreateZipCodeReq{Code: "78701", City: "Austin", State: "TEX"}, "state"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req, admin)
			require.ErrorIs(t, err, port.ErrValidation)
			var ve *port.ValidationError
			require.ErrorAs(t, err, &ve)
			require.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestCreateActiveRecordsInitialStatus(t *testing.T) {
	repo := mocks.NewMockZipCodeRepository(t)
	repo.EXPECT().
		CreateZipCode(mock.Anything,
			&domain.ZipCode{Code: "78701", City: "Austin", State: "TX"},
			&domain.ZipCodeStatus{IsActive: true, Reason: ptr("pilot"), CreatedBy: admin.ProfileID},
		).
		Run(func(ctx context.Context, zc *domain.ZipCode, initial *domain.ZipCodeStatus) {
			zc.ID = "z1"
			initial.ID = "s1"
			initial.ZipCodeID = zc.ID
		}).
		Return(nil)

	svc := NewZipCodeUseCase(repo, discardLogger())
	view, err := svc.Create(context.Background(), port.CreateZipCodeReq{
		Code: "78701", City: " Austin ", State: "tx", IsActive: true, Reason: ptr(" pilot "),
	}, admin)
	require.NoError(t, err)
	require.Equal(t, "z1", view.ZipCode.ID)
	require.Equal(t, "TX", view.ZipCode.State)
	require.NotNil(t, view.Status)
	require.Equal(t, "z1", view.Status.ZipCodeID)
	repo.AssertNotCalled(t, "ReplaceStatus", mock.Anything, mock.Anything)
}

func TestCreateFailureReturnsNoView(t *testing.T) {
	repo := mocks.NewMockZipCodeRepository(t)
	repo.EXPECT().CreateZipCode(mock.Anything, mock.Anything, mock.Anything).Return(port.ErrConflict)

	svc := NewZipCodeUseCase(repo, discardLogger())
	view, err := svc.Create(context.Background(), port.CreateZipCodeReq{
		Code: "78701", City: "Austin", State: "TX", IsActive: true,
	}, admin)
	require.ErrorIs(t, err, port.ErrConflict)
	require.Nil(t, view)
}

func TestCreateInactiveSkipsStatus(t *testing.T) {
	repo := mocks.NewMockZipCodeRepository(t)
	repo.EXPECT().CreateZipCode(mock.Anything, mock.Anything, (*domain.ZipCodeStatus)(nil)).Return(nil)

	svc := NewZipCodeUseCase(repo, discardLogger())
	view, err := svc.Create(context.Background(), port.CreateZipCodeReq{Code: "78701", City: "Austin", State: "TX"}, admin)
	require.NoError(t, err)
	require.Nil(t, view.Status)
}

func TestUpdateUnchangedStatusWritesNothing(t *testing.T) {
	repo := mocks.NewMockZipCodeRepository(t)
	zc := &domain.ZipCode{ID: "z1", Code: "78701", City: "Austin", State: "TX"}
	current := &domain.ZipCodeStatus{ID: "s1", ZipCodeID: "z1", IsActive: true, Reason: ptr("launch")}

	repo.EXPECT().GetZipCode(mock.Anything, "z1").Return(zc, nil)
	repo.EXPECT().CurrentStatus(mock.Anything, "z1").Return(current, nil)

	svc := NewZipCodeUseCase(repo, discardLogger())
	view, err := svc.Update(context.Background(), "z1", port.UpdateZipCodeReq{
		IsActive: ptr(true),
		Reason:   ptr("launch"),
	}, admin)
	require.NoError(t, err)
	require.Equal(t, "s1", view.Status.ID)
}

func TestUpdateChangedStatus(t *testing.T) {
	repo := mocks.NewMockZipCodeRepository(t)
	zc := &domain.ZipCode{ID: "z1", Code: "78701", City: "Austn", State: "TX"}
	current := &domain.ZipCodeStatus{ID: "s1", ZipCodeID: "z1", IsActive: true, CampaignID: ptr("c1")}

	repo.EXPECT().GetZipCode(mock.Anything, "z1").Return(zc, nil)
	repo.EXPECT().
		UpdateZipCode(mock.Anything, domain.ZipCode{ID: "z1", Code: "78701", City: "Austin", State: "TX"}).
		Return(nil)
	repo.EXPECT().CurrentStatus(mock.Anything, "z1").Return(current, nil)
	repo.EXPECT().
		ReplaceStatus(mock.Anything, mock.MatchedBy(func(st *domain.ZipCodeStatus) bool {
			return !st.IsActive && *st.Reason == "paused" && *st.CampaignID == "c1"
		})).
		Run(func(ctx context.Context, st *domain.ZipCodeStatus) { st.ID = "s2" }).
		Return(nil)

	svc := NewZipCodeUseCase(repo, discardLogger())
	view, err := svc.Update(context.Background(), "z1", port.UpdateZipCodeReq{
		City:     ptr("Austin"),
		IsActive: ptr(false),
		Reason:   ptr("paused"),
	}, admin)
	require.NoError(t, err)
	require.Equal(t, "Austin", view.ZipCode.City)
	require.Equal(t, "s2", view.Status.ID)
}

func TestUpdateUnknownZipCode(t *testing.T) {
	repo := mocks.NewMockZipCodeRepository(t)
	repo.EXPECT().GetZipCode(mock.Anything, "nope").Return(nil, nil)

	svc := NewZipCodeUseCase(repo, discardLogger())
	_, err := svc.Update(context.Background(), "nope", port.UpdateZipCodeReq{}, admin)
	require.ErrorIs(t, err, port.ErrNotFound)
}

func TestListClampsLimit(t *testing.T) {
	repo := mocks.NewMockZipCodeRepository(t)
	repo.EXPECT().ListZipCodes(mock.Anything, port.ListFilter{Limit: 500, Offset: 0}).Return(nil, nil)

	svc := NewZipCodeUseCase(repo, discardLogger())
	_, err := svc.List(context.Background(), port.ListFilter{Limit: 10000, Offset: -3}, admin)
	require.NoError(t, err)
}

func TestGetRequiresAdmin(t *testing.T) {
	svc := NewZipCodeUseCase(mocks.NewMockZipCodeRepository(t), discardLogger())

	_, err := svc.Get(context.Background(), "78701", nil)
	require.ErrorIs(t, err, port.ErrUnauthenticated)

	_, err = svc.Get(context.Background(), "78701", business)
	require.ErrorIs(t, err, port.ErrForbidden)
}

func TestGetWithCurrentStatus(t *testing.T) {
	repo := mocks.NewMockZipCodeRepository(t)
	zc := &domain.ZipCode{ID: "z1", Code: "78701", City: "Austin", State: "TX"}
	st := &domain.ZipCodeStatus{ID: "s1", ZipCodeID: "z1", IsActive: true, CreatedBy: "admin-1"}
	repo.EXPECT().GetZipCodeByCode(mock.Anything, "78701").Return(zc, nil)
	repo.EXPECT().CurrentStatus(mock.Anything, "z1").Return(st, nil)

	svc := NewZipCodeUseCase(repo, discardLogger())
	view, err := svc.Get(context.Background(), "78701", admin)
	require.NoError(t, err)
	require.Equal(t, *zc, view.ZipCode)
	require.Same(t, st, view.Status)
}
