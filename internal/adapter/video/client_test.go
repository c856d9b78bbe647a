package video

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localreach/internal/core/domain"
	"localreach/internal/core/port"
)

func TestGetAsset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "id" || pass != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch r.URL.Path {
		case "/video/v1/assets/a1":
			_, _ = w.Write([]byte(`{"data":{"id":"a1","status":"ready","duration":12.5,
				"playback_ids":[{"id":"signed-pb","policy":"signed"},{"id":"pb1","policy":"public"}]}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "id", "secret", srv.Client())

	asset, err := c.GetAsset(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, &domain.VideoAsset{ID: "a1", Status: domain.VideoReady, PlaybackID: "pb1", Duration: 12.5}, asset)

	_, err = c.GetAsset(context.Background(), "missing")
	require.ErrorIs(t, err, port.ErrNotFound)
}

func TestGetAssetServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "id", "secret", nil).GetAsset(context.Background(), "a1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, port.ErrNotFound)
}
