package domain

import "time"

// EmailList is a newsletter audience.
type EmailList struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Subscription links a profile to a list. It is active until
// UnsubscribedAt is set.
type Subscription struct {
	ID             string     `json:"id"`
	ProfileID      string     `json:"profile_id"`
	ListID         string     `json:"list_id"`
	SubscribedAt   time.Time  `json:"subscribed_at"`
	UnsubscribedAt *time.Time `json:"unsubscribed_at,omitempty"`
}

// Active reports whether the subscriber still receives the list.
func (s Subscription) Active() bool {
	return s.UnsubscribedAt == nil
}
