package domain

import (
	"strings"
	"time"
)

// PostSource tells where a post came from.
type PostSource string

const (
	SourceFacebook PostSource = "facebook"
	SourceAdmin    PostSource = "admin"
	SourcePlatform PostSource = "platform"
)

// PostType is the curated category of a post. Campaign emails group posts
// into one list per type.
type PostType string

const (
	PostTypeUpdate    PostType = "update"
	PostTypePromotion PostType = "promotion"
	PostTypeEvent     PostType = "event"
)

// ParsePostType maps free text, such as an AI classification answer, to a
// PostType. The second result is false when nothing matched.
func ParsePostType(s string) (PostType, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.Contains(s, "promo"):
		return PostTypePromotion, true
	case strings.Contains(s, "event"):
		return PostTypeEvent, true
	case strings.Contains(s, "update"):
		return PostTypeUpdate, true
	}
	return "", false
}

// Post is a piece of business content. FinalContent and FinalType hold the
// curated override written by an admin or the AI rewriter.
type Post struct {
	ID           string     `json:"id"`
	ProfileID    string     `json:"profile_id"`
	Source       PostSource `json:"source"`
	Content      string     `json:"content"`
	FinalContent *string    `json:"final_content,omitempty"`
	FinalType    *PostType  `json:"final_type,omitempty"`
	PostURL      *string    `json:"post_url,omitempty"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// EffectiveContent returns the curated content when present and the
// original content otherwise.
func (p Post) EffectiveContent() string {
	if p.FinalContent != nil && *p.FinalContent != "" {
		return *p.FinalContent
	}
	return p.Content
}

// Collection groups curated posts for AI generation and campaign lists.
type Collection struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
