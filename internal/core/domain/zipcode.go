package domain

import "time"

// ZipCode is a five digit postal code with its city and state. Code is the
// natural key used by lookups; only City and State may change after
// creation.
type ZipCode struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	CreatedAt time.Time `json:"created_at"`
}

// ZipCodeStatus is one interval of a zip code's activation history. The
// interval is open while EndDate is nil; a zip code has at most one open
// interval. CampaignID scopes an activation to a single campaign, a nil
// CampaignID applies to all campaigns.
type ZipCodeStatus struct {
	ID         string     `json:"id"`
	ZipCodeID  string     `json:"zip_code_id"`
	IsActive   bool       `json:"is_active"`
	StartDate  time.Time  `json:"start_date"`
	EndDate    *time.Time `json:"end_date,omitempty"`
	Reason     *string    `json:"reason,omitempty"`
	CampaignID *string    `json:"campaign_id,omitempty"`
	CreatedBy  string     `json:"created_by"`
}

// Open reports whether the interval is the zip code's current status.
func (s ZipCodeStatus) Open() bool {
	return s.EndDate == nil
}

// ActiveFor reports whether the status activates its zip code for the given
// campaign. A global activation counts for every campaign; a campaign scoped
// one only for its own campaign. With no campaign any open activation counts.
func (s ZipCodeStatus) ActiveFor(campaignID *string) bool {
	if !s.Open() || !s.IsActive {
		return false
	}
	if campaignID == nil || s.CampaignID == nil {
		return true
	}
	return *s.CampaignID == *campaignID
}
