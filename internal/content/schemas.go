package content

func text(key string) Field { return Field{Key: key, Column: columnName(key), Kind: Text} }
func list(key string) Field { return Field{Key: key, Column: columnName(key), Kind: List} }
func number(key string) Field {
	return Field{Key: key, Column: columnName(key), Kind: Number}
}
func flag(key string, def bool) Field {
	return Field{Key: key, Column: columnName(key), Kind: Flag, Default: def}
}

// sortOrder is the legacy manual ordering field. "order" is reserved in SQL.
var sortOrder = Field{Key: "order", Column: "sort_order", Kind: Number}

// Projects lists featured work first, then by owner priority, then by the
// legacy manual order, newest first as the final tiebreak.
var Projects = &Schema{
	Entity: "project",
	Table:  "projects",
	Fields: []Field{
		text("title"),
		text("subtitle"),
		text("period"),
		text("description"),
		list("technologies"),
		list("achievements"),
		list("metrics"),
		list("challenges"),
		list("screenshots"),
		text("thumbnailUrl"),
		text("imageUrl"),
		text("videoUrl"),
		text("projectUrl"),
		text("githubUrl"),
		text("liveDemo"),
		text("caseStudyUrl"),
		text("category"),
		text("role"),
		text("teamSize"),
		text("status"),
		flag("featured", false),
		number("priority"),
		sortOrder,
		flag("published", true),
	},
	Order: []SortKey{
		{Column: "featured", Desc: true},
		{Column: "priority", Desc: true},
		{Column: "sort_order"},
		{Column: ColumnCreatedAt, Desc: true},
	},
}

// Experiences lists current roles first, current dominating featured and
// priority.
var Experiences = &Schema{
	Entity: "experience",
	Table:  "experiences",
	Fields: []Field{
		text("title"),
		text("company"),
		text("companyUrl"),
		text("location"),
		text("employmentType"),
		text("companySize"),
		text("industry"),
		text("imageUrl"),
		text("startDate"),
		text("endDate"),
		flag("isCurrent", false),
		text("description"),
		list("achievements"),
		list("technologies"),
		list("responsibilities"),
		list("metrics"),
		list("projects"),
		list("skillsGained"),
		flag("featured", false),
		number("priority"),
		flag("published", true),
	},
	Order: []SortKey{
		{Column: "is_current", Desc: true},
		{Column: "featured", Desc: true},
		{Column: "priority", Desc: true},
		{Column: ColumnCreatedAt, Desc: true},
	},
}

var Skills = &Schema{
	Entity: "skill",
	Table:  "skills",
	Fields: []Field{
		text("category"),
		text("name"),
		text("icon"),
		text("level"),
		sortOrder,
		flag("published", true),
	},
	Order: []SortKey{
		{Column: "category", Text: true},
		{Column: "sort_order"},
	},
}

var Certificates = &Schema{
	Entity: "certificate",
	Table:  "certificates",
	Fields: []Field{
		text("name"),
		text("institute"),
	},
	Order: []SortKey{
		{Column: ColumnCreatedAt, Desc: true},
	},
}

// Settings is the site settings singleton. Its listing order picks the live
// row: the most recently written one.
var Settings = &Schema{
	Entity: "site settings",
	Table:  "site_settings",
	Fields: []Field{
		text("text"),
		text("siteTitle"),
		text("ownerName"),
		text("headline"),
		text("about"),
		text("email"),
		text("phone"),
		text("location"),
		text("githubUrl"),
		text("linkedinUrl"),
		text("resumeUrl"),
		text("avatarUrl"),
	},
	Order: []SortKey{
		{Column: ColumnUpdatedAt, Desc: true},
	},
}

var Contacts = &Schema{
	Entity: "contact",
	Table:  "contacts",
	Fields: []Field{
		text("name"),
		text("email"),
		text("subject"),
		text("message"),
		flag("read", false),
	},
	Order: []SortKey{
		{Column: ColumnCreatedAt, Desc: true},
	},
}
