package domain

import "time"

// Campaign pairs a curated collection with an email template and a target
// list. A campaign is a draft until SentAt is set, which happens exactly
// once. SendClaimedAt marks a send in progress (or one whose completion
// could not be recorded) and blocks further sends.
type Campaign struct {
	ID            string     `json:"id"`
	CollectionID  string     `json:"collection_id"`
	TemplateID    string     `json:"template_id"`
	ListID        string     `json:"list_id"`
	SendClaimedAt *time.Time `json:"send_claimed_at,omitempty"`
	SentAt        *time.Time `json:"sent_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Sent reports whether the campaign was delivered or is being delivered.
func (c Campaign) Sent() bool {
	return c.SentAt != nil || c.SendClaimedAt != nil
}

// TemplateType separates one-off transactional mail from campaign bodies.
type TemplateType string

const (
	TemplateTransactional TemplateType = "transactional"
	TemplateCampaign      TemplateType = "campaign"
)

// Valid reports whether t is a known template type.
func (t TemplateType) Valid() bool {
	return t == TemplateTransactional || t == TemplateCampaign
}

// EmailTemplate is an HTML body with {{tag}} placeholders resolved at send
// time.
type EmailTemplate struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Subject   string       `json:"subject"`
	Type      TemplateType `json:"type"`
	Content   string       `json:"content"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
