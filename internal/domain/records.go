// Package domain holds the persisted record types of the portfolio.
//
// JSON keys match the field keys of the normalization tables in package
// content, so a record serialized by the API can be posted back unchanged.
package domain

import "time"

// Project is a portfolio project card.
type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Subtitle     string   `json:"subtitle"`
	Period       string   `json:"period"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Achievements []string `json:"achievements"`
	Metrics      []string `json:"metrics"`
	Challenges   []string `json:"challenges"`
	Screenshots  []string `json:"screenshots"`
	ThumbnailURL string   `json:"thumbnailUrl"`
	ImageURL     string   `json:"imageUrl"`
	VideoURL     string   `json:"videoUrl"`
	ProjectURL   string   `json:"projectUrl"`
	GithubURL    string   `json:"githubUrl"`
	LiveDemo     string   `json:"liveDemo"`
	CaseStudyURL string   `json:"caseStudyUrl"`
	Category     string   `json:"category"`
	Role         string   `json:"role"`
	TeamSize     string   `json:"teamSize"`
	Status       string   `json:"status"`
	Featured     bool     `json:"featured"`
	Priority     int      `json:"priority"`
	Order        int      `json:"order"`
	Published    bool     `json:"published"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Experience is a work history entry. When IsCurrent is set, EndDate is
// rendered as "Present" regardless of its value.
type Experience struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	CompanyURL       string   `json:"companyUrl"`
	Location         string   `json:"location"`
	EmploymentType   string   `json:"employmentType"`
	CompanySize      string   `json:"companySize"`
	Industry         string   `json:"industry"`
	ImageURL         string   `json:"imageUrl"`
	StartDate        string   `json:"startDate"`
	EndDate          string   `json:"endDate"`
	IsCurrent        bool     `json:"isCurrent"`
	Description      string   `json:"description"`
	Achievements     []string `json:"achievements"`
	Technologies     []string `json:"technologies"`
	Responsibilities []string `json:"responsibilities"`
	Metrics          []string `json:"metrics"`
	Projects         []string `json:"projects"`
	SkillsGained     []string `json:"skillsGained"`
	Featured         bool     `json:"featured"`
	Priority         int      `json:"priority"`
	Published        bool     `json:"published"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Skill is a single skill, grouped on the page by Category.
type Skill struct {
	ID        string `json:"id"`
	Category  string `json:"category"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	Level     string `json:"level"`
	Order     int    `json:"order"`
	Published bool   `json:"published"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Certificate struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Institute string `json:"institute"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SiteSettings is the owner-editable site text. Callers treat the most
// recently written row as the live one.
type SiteSettings struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	SiteTitle   string `json:"siteTitle"`
	OwnerName   string `json:"ownerName"`
	Headline    string `json:"headline"`
	About       string `json:"about"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
	GithubURL   string `json:"githubUrl"`
	LinkedinURL string `json:"linkedinUrl"`
	ResumeURL   string `json:"resumeUrl"`
	AvatarURL   string `json:"avatarUrl"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Contact is a message left through the public contact form.
type Contact struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Read    bool   `json:"read"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
