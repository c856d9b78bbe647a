package tagmerge

import (
	"strings"
	"time"

	"localreach/internal/core/domain"
)

// Campaign email tags.
const (
	TagUpdatesList = "updates_list"
	TagPromosList  = "promos_list"
	TagEventsList  = "events_list"
)

// AI prompt tags.
const (
	TagBusinessName  = "business_name"
	TagContent       = "content"
	TagPostType      = "post_type"
	TagPostURL       = "post_url"
	TagPublishedDate = "published_date"
)

// PromptFallbacks are the labels prompt tags take when the post lacks the
// data.
var PromptFallbacks = map[string]string{
	TagBusinessName:  "Unknown Business",
	TagPostType:      "Unknown Type",
	TagPublishedDate: "Unknown Date",
}

const (
	listStyle = `style="margin: 0 0 16px 0; padding-left: 20px;"`
	itemStyle = `style="margin-bottom: 8px; line-height: 1.5;"`

	// en-US short date, as shown to content authors.
	publishedDateLayout = "1/2/2006"
)

// CampaignTags builds the list tags of a campaign email from the posts of
// its collection. Posts are grouped by final type in the given order; posts
// with no final type are skipped. A type without posts maps to the empty
// string. Post content goes through s.HTML.
func CampaignTags(posts []domain.Post, s *Sanitizer) map[string]string {
	groups := make(map[domain.PostType][]string, 3)
	for _, p := range posts {
		if p.FinalType == nil {
			continue
		}
		item := strings.TrimSpace(s.HTML(p.EffectiveContent()))
		if item == "" {
			continue
		}
		groups[*p.FinalType] = append(groups[*p.FinalType], item)
	}
	return map[string]string{
		TagUpdatesList: renderList(groups[domain.PostTypeUpdate]),
		TagPromosList:  renderList(groups[domain.PostTypePromotion]),
		TagEventsList:  renderList(groups[domain.PostTypeEvent]),
	}
}

func renderList(items []string) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("<ul " + listStyle + ">")
	for _, item := range items {
		b.WriteString("<li " + itemStyle + ">")
		b.WriteString(item)
		b.WriteString("</li>")
	}
	b.WriteString("</ul>")
	return b.String()
}

// PromptTags builds the tags of an AI prompt for a post. Missing values
// take PromptFallbacks; a missing URL maps to the empty string.
func PromptTags(p domain.Post, businessName string, s *Sanitizer) map[string]string {
	tags := map[string]string{
		TagBusinessName: businessName,
		TagContent:      s.Text(p.Content),
		TagPostURL:      "",
	}
	if p.FinalType != nil {
		tags[TagPostType] = string(*p.FinalType)
	}
	if p.PostURL != nil {
		tags[TagPostURL] = *p.PostURL
	}
	if p.PublishedAt != nil {
		tags[TagPublishedDate] = FormatDate(*p.PublishedAt)
	}
	return WithFallbacks(tags, PromptFallbacks)
}

// FormatDate renders t the way prompt authors expect dates.
func FormatDate(t time.Time) string {
	return t.Format(publishedDateLayout)
}
