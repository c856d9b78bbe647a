package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"localreach/internal/adapter/usecase"
	"localreach/internal/core/domain"
	"localreach/internal/core/port"
	"localreach/internal/core/port/mocks"
)

var admin = &domain.Actor{ProfileID: "admin-1", Role: domain.RoleAdmin}

type testDeps struct {
	campaigns *mocks.MockCampaignUseCase
	zipCodes  *mocks.MockZipCodeUseCase
	posts     *mocks.MockPostUseCase
	subs      *mocks.MockSubscriptionUseCase
	media     *mocks.MockMediaUseCase
	sessions  *mocks.MockSessionProvider
}

func newTestHandler(t *testing.T) (*Handler, testDeps) {
	t.Helper()
	d := testDeps{
		campaigns: mocks.NewMockCampaignUseCase(t),
		zipCodes:  mocks.NewMockZipCodeUseCase(t),
		posts:     mocks.NewMockPostUseCase(t),
		subs:      mocks.NewMockSubscriptionUseCase(t),
		media:     mocks.NewMockMediaUseCase(t),
		sessions:  mocks.NewMockSessionProvider(t),
	}
	h := NewHandler(Deps{
		Campaigns:     d.campaigns,
		ZipCodes:      d.zipCodes,
		Posts:         d.posts,
		Subscriptions: d.subs,
		Media:         d.media,
		Sessions:      d.sessions,
	}, slog.New(slog.DiscardHandler), Options{CORSOrigins: []string{"https://admin.example.com"}})
	return h, d
}

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestSendCampaignEndpoint(t *testing.T) {
	h, d := newTestHandler(t)
	d.sessions.EXPECT().Resolve(mock.Anything, "tok").Return(admin, nil)
	d.campaigns.EXPECT().Send(mock.Anything, "c1", admin).Return(&port.SendResult{RecipientCount: 3}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/campaigns/c1/send", nil)
	req.AddCookie(&http.Cookie{Name: "sb-access-token", Value: "tok"})
	rec := serve(h, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, map[string]any{
		"success":        true,
		"message":        "Campaign sent successfully to 3 subscribers",
		"recipientCount": float64(3),
	}, decodeBody(t, rec))
}

func TestSendCampaignErrors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"unauthenticated", port.ErrUnauthenticated, http.StatusUnauthorized, "not authenticated"},
		{"forbidden", port.ErrForbidden, http.StatusForbidden, "admin access required"},
		{"not found", errors.Join(errors.New("campaign c1"), port.ErrNotFound), http.StatusNotFound, ""},
		{"no recipients", port.ErrNoRecipients, http.StatusBadRequest, "no active subscribers found for this list"},
		{"already sent", port.ErrAlreadySent, http.StatusConflict, "campaign has already been sent"},
		{"delivery", &port.DeliveryError{Err: errors.New("throttled")}, http.StatusInternalServerError, "email delivery failed"},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError, "internal error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, d := newTestHandler(t)
			d.sessions.EXPECT().Resolve(mock.Anything, "tok").Return(admin, nil)
			d.campaigns.EXPECT().Send(mock.Anything, "c1", admin).Return(nil, tc.err)

			req := httptest.NewRequest(http.MethodPost, "/api/campaigns/c1/send", nil)
			req.Header.Set("Authorization", "Bearer tok")
			rec := serve(h, req)

			require.Equal(t, tc.status, rec.Code)
			if tc.msg != "" {
				assert.Equal(t, tc.msg, decodeBody(t, rec)["error"])
			}
		})
	}
}

func TestAnonymousRequestReachesUseCase(t *testing.T) {
	h, d := newTestHandler(t)
	d.campaigns.EXPECT().Send(mock.Anything, "c1", (*domain.Actor)(nil)).Return(nil, port.ErrUnauthenticated)

	rec := serve(h, httptest.NewRequest(http.MethodPost, "/api/campaigns/c1/send", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestInvalidSessionRejected(t *testing.T) {
	h, d := newTestHandler(t)
	d.sessions.EXPECT().Resolve(mock.Anything, "expired").Return(nil, port.ErrUnauthenticated)

	req := httptest.NewRequest(http.MethodGet, "/api/campaigns/c1", nil)
	req.Header.Set("Authorization", "Bearer expired")
	rec := serve(h, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	d.campaigns.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
}

func TestZipCodeDetailsRequireAdmin(t *testing.T) {
	repo := mocks.NewMockZipCodeRepository(t)
	sessions := mocks.NewMockSessionProvider(t)
	h := NewHandler(Deps{
		ZipCodes: usecase.NewZipCodeUseCase(repo, slog.New(slog.DiscardHandler)),
		Sessions: sessions,
	}, slog.New(slog.DiscardHandler), Options{})

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/zip-codes/by-code/78701", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotContains(t, rec.Body.String(), "reason")

	business := &domain.Actor{ProfileID: "biz-1", Role: domain.RoleBusiness}
	sessions.EXPECT().Resolve(mock.Anything, "tok").Return(business, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/zip-codes/by-code/78701", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rec = serve(h, req)
	require.Equal(t, http.StatusForbidden, rec.Code)

	repo.AssertNotCalled(t, "GetZipCodeByCode", mock.Anything, mock.Anything)
}

func TestGetZipCodeEndpoint(t *testing.T) {
	h, d := newTestHandler(t)
	d.sessions.EXPECT().Resolve(mock.Anything, "tok").Return(admin, nil)
	d.zipCodes.EXPECT().Get(mock.Anything, "78701", admin).Return(&port.ZipCodeView{
		ZipCode: domain.ZipCode{ID: "z1", Code: "78701"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/zip-codes/by-code/78701", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rec := serve(h, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestZipCodeActiveIsPublic(t *testing.T) {
	h, d := newTestHandler(t)
	d.zipCodes.EXPECT().
		IsActive(mock.Anything, "78701", mock.MatchedBy(func(id *string) bool { return id != nil && *id == "camp-A" })).
		Return(true, nil)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/zip-codes/by-code/78701/active?campaign_id=camp-A", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"code": "78701", "is_active": true}, decodeBody(t, rec))
	d.sessions.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
}

func TestSetZipCodeStatusEndpoint(t *testing.T) {
	h, d := newTestHandler(t)
	d.sessions.EXPECT().Resolve(mock.Anything, "tok").Return(admin, nil)
	d.zipCodes.EXPECT().
		SetStatus(mock.Anything, mock.MatchedBy(func(req port.SetStatusReq) bool {
			return req.ZipCodeID == "z1" && req.IsActive && req.Reason != nil && *req.Reason == "launch"
		}), admin).
		Return(&domain.ZipCodeStatus{ID: "s1", ZipCodeID: "z1", IsActive: true}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/zip-codes/z1/status", strings.NewReader(`{"is_active":true,"reason":"launch"}`))
	req.Header.Set("Authorization", "Bearer tok")
	rec := serve(h, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "s1", decodeBody(t, rec)["id"])
}

func TestCreateZipCodeValidation(t *testing.T) {
	h, d := newTestHandler(t)
	d.sessions.EXPECT().Resolve(mock.Anything, "tok").Return(admin, nil)
	d.zipCodes.EXPECT().Create(mock.Anything, mock.Anything, admin).
		Return(nil, port.NewValidationError("code", "must be 5 digits"))

	req := httptest.NewRequest(http.MethodPost, "/api/zip-codes", strings.NewReader(`{"code":"123","city":"Austin","state":"TX"}`))
	req.Header.Set("Authorization", "Bearer tok")
	rec := serve(h, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "code: must be 5 digits", decodeBody(t, rec)["error"])
}

func TestMalformedBody(t *testing.T) {
	h, d := newTestHandler(t)
	d.sessions.EXPECT().Resolve(mock.Anything, "tok").Return(admin, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/collections", strings.NewReader(`{"name":`))
	req.Header.Set("Authorization", "Bearer tok")
	rec := serve(h, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "body: invalid JSON", decodeBody(t, rec)["error"])
}

func TestListZipCodesQuery(t *testing.T) {
	h, d := newTestHandler(t)
	d.sessions.EXPECT().Resolve(mock.Anything, "tok").Return(admin, nil)
	d.zipCodes.EXPECT().List(mock.Anything, port.ListFilter{Limit: 10, Offset: 20}, admin).
		Return([]domain.ZipCode{{ID: "z1", Code: "78701"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/zip-codes?limit=10&offset=20", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rec := serve(h, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestUnsubscribeEndpoint(t *testing.T) {
	h, d := newTestHandler(t)
	sub := &domain.Actor{ProfileID: "p1", Role: domain.RoleSubscriber}
	d.sessions.EXPECT().Resolve(mock.Anything, "tok").Return(sub, nil)
	d.subs.EXPECT().Unsubscribe(mock.Anything, "l1", sub).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/lists/l1/subscriptions", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rec := serve(h, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestWaitForVideoTimeout(t *testing.T) {
	h, d := newTestHandler(t)
	d.sessions.EXPECT().Resolve(mock.Anything, "tok").Return(admin, nil)
	d.media.EXPECT().WaitForVideo(mock.Anything, "a1", admin).Return(nil, port.ErrVideoNotReady)

	req := httptest.NewRequest(http.MethodGet, "/api/media/videos/a1", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rec := serve(h, req)

	require.Equal(t, http.StatusGatewayTimeout, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/campaigns/c1/send", nil)
	req.Header.Set("Origin", "https://admin.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := serve(h, req)

	assert.Equal(t, "https://admin.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestHealth(t *testing.T) {
	h, _ := newTestHandler(t)
	rec := serve(h, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}
