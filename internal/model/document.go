// Package model defines the canonical in-memory resume document and the
// snapshot-based update operations that every other component mutates it
// through. A Document is never modified in place: each operation returns a
// fresh snapshot so hosts can rely on identity comparison for change
// detection.
package model

// TemplateID selects one of the closed set of template renderers.
type TemplateID int

// The known templates. Unknown or zero values resolve to Template1.
const (
	Template1 TemplateID = iota + 1
	Template2
	Template3
)

// Known returns true if the id names a renderer in the closed set.
func (t TemplateID) Known() bool {
	return t >= Template1 && t <= Template3
}

// Resolve maps any id onto a renderable template, falling back to Template1
// for unknown values. Fallback is deterministic and never an error.
func (t TemplateID) Resolve() TemplateID {
	if t.Known() {
		return t
	}
	return Template1
}

// Profile holds the identity block shown at the top of every template.
type Profile struct {
	FullName    string `json:"fullName"`
	Designation string `json:"designation"`
	Summary     string `json:"summary"`
}

// Contact holds reachability and link fields.
type Contact struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Website  string `json:"website"`
}

// Experience is one work history entry.
type Experience struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// Education is one degree entry.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

// Skill pairs a name with a 0-100 proficiency. The discrete tick level used
// by templates is derived at render time, never stored here.
type Skill struct {
	Name        string `json:"name"`
	Proficiency int    `json:"proficiency"`
}

// Project is one portfolio entry.
type Project struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	RepoLink    string `json:"repoLink"`
	DemoLink    string `json:"demoLink"`
}

// Certification is one credential entry.
type Certification struct {
	Title  string `json:"title"`
	Issuer string `json:"issuer"`
	Year   string `json:"year"`
}

// Language pairs a spoken language with a 0-100 proficiency.
type Language struct {
	Name        string `json:"name"`
	Proficiency int    `json:"proficiency"`
}

// Theme configures colors, font and layout independently of the template.
// Any template must accept any Theme.
type Theme struct {
	PrimaryColor string `json:"primaryColor"`
	AccentColor  string `json:"accentColor"`
	FontFamily   string `json:"fontFamily"`
	Layout       Layout `json:"layout"`
}

// Layout is the named arrangement style carried by a theme.
type Layout string

// The known layout styles.
const (
	LayoutModern   Layout = "modern"
	LayoutClassic  Layout = "classic"
	LayoutCreative Layout = "creative"
	LayoutCompact  Layout = "compact"
)

// Presentation couples the selected template with the active theme.
type Presentation struct {
	TemplateID TemplateID `json:"templateId"`
	Theme      Theme      `json:"theme"`
}

// Document is the root aggregate for a resume. It is owned exclusively by the
// editing session until persisted; persisted copies live only behind the
// backend interface.
type Document struct {
	ID             string          `json:"id,omitempty"`
	Title          string          `json:"title"`
	Profile        Profile         `json:"profile"`
	Contact        Contact         `json:"contact"`
	WorkExperience []Experience    `json:"workExperience"`
	Education      []Education     `json:"education"`
	Skills         []Skill         `json:"skills"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
	Languages      []Language      `json:"languages"`
	Interests      []string        `json:"interests"`
	Presentation   Presentation    `json:"presentation"`

	// Thumbnail and ProfileImage are links into external image storage,
	// updated after a successful upload.
	Thumbnail    string `json:"thumbnailLink,omitempty"`
	ProfileImage string `json:"profileImageLink,omitempty"`

	// AIRaw holds unparseable AI output verbatim so a failed parse never
	// discards generated text.
	AIRaw string `json:"aiRaw,omitempty"`
}

// New creates a document with the given title and a placeholder entry in
// every ordered section, so step navigation never lands on an undefined
// index.
func New(title string) Document {
	return Document{
		Title:          title,
		WorkExperience: []Experience{{}},
		Education:      []Education{{}},
		Skills:         []Skill{{}},
		Projects:       []Project{{}},
		Certifications: []Certification{{}},
		Languages:      []Language{{}},
		Interests:      []string{""},
		Presentation: Presentation{
			TemplateID: Template1,
			Theme:      DefaultTheme(),
		},
	}
}

// DefaultTheme returns the theme applied to freshly created documents.
func DefaultTheme() Theme {
	return Theme{
		PrimaryColor: "#0d47a1",
		AccentColor:  "#64b5f6",
		FontFamily:   "Poppins",
		Layout:       LayoutModern,
	}
}

// ClampProficiency confines a proficiency value to [0,100].
func ClampProficiency(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
