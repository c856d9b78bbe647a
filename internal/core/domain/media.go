package domain

import "time"

// VideoStatus is the transcoding state reported by the video host.
type VideoStatus string

const (
	VideoPreparing VideoStatus = "preparing"
	VideoReady     VideoStatus = "ready"
	VideoErrored   VideoStatus = "errored"
)

// VideoAsset is a hosted video such as a staff intro clip.
type VideoAsset struct {
	ID         string      `json:"id"`
	Status     VideoStatus `json:"status"`
	PlaybackID string      `json:"playback_id,omitempty"`
	Duration   float64     `json:"duration,omitempty"`
}

// UploadURL is a presigned object storage URL a client uploads media to.
type UploadURL struct {
	URL       string    `json:"url"`
	Key       string    `json:"key"`
	ExpiresAt time.Time `json:"expires_at"`
}
