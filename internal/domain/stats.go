package domain

import "time"

// Visit is a single recorded page view. The client IP is never stored;
// HashedIP is a salted, truncated digest.
type Visit struct {
	ID        string    `json:"id"`
	HashedIP  string    `json:"hashedIp"`
	UserAgent string    `json:"userAgent"`
	Path      string    `json:"path"`
	VisitedAt time.Time `json:"visitedAt"`
}

// VisitorStats summarizes recorded page views.
type VisitorStats struct {
	TotalVisits    int64   `json:"totalVisits"`
	UniqueVisitors int64   `json:"uniqueVisitors"`
	VisitsToday    int64   `json:"visitsToday"`
	VisitsThisWeek int64   `json:"visitsThisWeek"`
	RecentVisits   []Visit `json:"recentVisits"`
}

// AdminStats is the payload of the admin dashboard endpoint.
type AdminStats struct {
	Collections    map[string]int64 `json:"collections"`
	UnreadContacts int64            `json:"unreadContacts"`
	Visitors       VisitorStats     `json:"visitors"`
}

// Export is a full snapshot of the site content.
type Export struct {
	ExportedAt   time.Time     `json:"exportedAt"`
	Settings     *SiteSettings `json:"settings"`
	Projects     []Project     `json:"projects"`
	Experiences  []Experience  `json:"experiences"`
	Skills       []Skill       `json:"skills"`
	Certificates []Certificate `json:"certificates"`
	Contacts     []Contact     `json:"contacts"`
}
