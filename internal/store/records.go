package store

import "github.com/Zachkp/folio/internal/domain"

// Scan functions read columns in content.Schema.Columns order.

func scanProject(row rowScanner) (domain.Project, error) {
	var (
		p                domain.Project
		created, updated dbTime
	)
	var technologies, achievements, metrics, challenges, screenshots stringList
	err := row.Scan(
		&p.ID, &created, &updated,
		&p.Title, &p.Subtitle, &p.Period, &p.Description,
		&technologies, &achievements, &metrics, &challenges, &screenshots,
		&p.ThumbnailURL, &p.ImageURL, &p.VideoURL, &p.ProjectURL, &p.GithubURL,
		&p.LiveDemo, &p.CaseStudyURL, &p.Category, &p.Role, &p.TeamSize, &p.Status,
		&p.Featured, &p.Priority, &p.Order, &p.Published,
	)
	if err != nil {
		return domain.Project{}, err
	}
	p.CreatedAt, p.UpdatedAt = created.Time, updated.Time
	p.Technologies = technologies
	p.Achievements = achievements
	p.Metrics = metrics
	p.Challenges = challenges
	p.Screenshots = screenshots
	return p, nil
}

func scanExperience(row rowScanner) (domain.Experience, error) {
	var (
		e                domain.Experience
		created, updated dbTime
	)
	var achievements, technologies, responsibilities, metrics, projects, skillsGained stringList
	err := row.Scan(
		&e.ID, &created, &updated,
		&e.Title, &e.Company, &e.CompanyURL, &e.Location, &e.EmploymentType,
		&e.CompanySize, &e.Industry, &e.ImageURL, &e.StartDate, &e.EndDate,
		&e.IsCurrent, &e.Description,
		&achievements, &technologies, &responsibilities, &metrics, &projects, &skillsGained,
		&e.Featured, &e.Priority, &e.Published,
	)
	if err != nil {
		return domain.Experience{}, err
	}
	e.CreatedAt, e.UpdatedAt = created.Time, updated.Time
	e.Achievements = achievements
	e.Technologies = technologies
	e.Responsibilities = responsibilities
	e.Metrics = metrics
	e.Projects = projects
	e.SkillsGained = skillsGained
	return e, nil
}

func scanSkill(row rowScanner) (domain.Skill, error) {
	var (
		s                domain.Skill
		created, updated dbTime
	)
	err := row.Scan(
		&s.ID, &created, &updated,
		&s.Category, &s.Name, &s.Icon, &s.Level, &s.Order, &s.Published,
	)
	if err != nil {
		return domain.Skill{}, err
	}
	s.CreatedAt, s.UpdatedAt = created.Time, updated.Time
	return s, nil
}

func scanCertificate(row rowScanner) (domain.Certificate, error) {
	var (
		c                domain.Certificate
		created, updated dbTime
	)
	if err := row.Scan(&c.ID, &created, &updated, &c.Name, &c.Institute); err != nil {
		return domain.Certificate{}, err
	}
	c.CreatedAt, c.UpdatedAt = created.Time, updated.Time
	return c, nil
}

func scanSettings(row rowScanner) (domain.SiteSettings, error) {
	var (
		s                domain.SiteSettings
		created, updated dbTime
	)
	err := row.Scan(
		&s.ID, &created, &updated,
		&s.Text, &s.SiteTitle, &s.OwnerName, &s.Headline, &s.About,
		&s.Email, &s.Phone, &s.Location,
		&s.GithubURL, &s.LinkedinURL, &s.ResumeURL, &s.AvatarURL,
	)
	if err != nil {
		return domain.SiteSettings{}, err
	}
	s.CreatedAt, s.UpdatedAt = created.Time, updated.Time
	return s, nil
}

func scanContact(row rowScanner) (domain.Contact, error) {
	var (
		c                domain.Contact
		created, updated dbTime
	)
	err := row.Scan(
		&c.ID, &created, &updated,
		&c.Name, &c.Email, &c.Subject, &c.Message, &c.Read,
	)
	if err != nil {
		return domain.Contact{}, err
	}
	c.CreatedAt, c.UpdatedAt = created.Time, updated.Time
	return c, nil
}
