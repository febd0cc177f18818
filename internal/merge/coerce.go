package merge

import (
	"encoding/json"
	"strings"

	"github.com/jonathan/resume-studio/internal/model"
)

// defaultProficiency is assigned when the AI names a skill or language
// without a level. The user tunes it afterwards in the editor.
const defaultProficiency = 70

// Coercion rules for known shape mismatches. Each rule is deterministic:
// the same input always produces the same output, and unusable elements
// collapse to zero values rather than failing the merge.

// coerceString accepts a JSON string or renders any other value verbatim.
func coerceString(msg json.RawMessage) string {
	var s string
	if err := json.Unmarshal(msg, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(msg))
}

// coerceStringList accepts an array of strings or a single comma-separated
// string.
func coerceStringList(msg json.RawMessage) []string {
	var list []string
	if err := json.Unmarshal(msg, &list); err == nil {
		return list
	}
	var s string
	if err := json.Unmarshal(msg, &s); err == nil {
		parts := strings.Split(s, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out
	}
	return []string{}
}

// coerceSkills accepts canonical {name,proficiency} objects, bare strings,
// or a comma-separated string.
func coerceSkills(msg json.RawMessage) []model.Skill {
	var canonical []model.Skill
	if err := json.Unmarshal(msg, &canonical); err == nil && allNamed(canonical) {
		for i := range canonical {
			canonical[i].Proficiency = model.ClampProficiency(canonical[i].Proficiency)
			if canonical[i].Proficiency == 0 {
				canonical[i].Proficiency = defaultProficiency
			}
		}
		return canonical
	}
	names := coerceStringList(msg)
	out := make([]model.Skill, 0, len(names))
	for _, name := range names {
		out = append(out, model.Skill{Name: name, Proficiency: defaultProficiency})
	}
	return out
}

func allNamed(skills []model.Skill) bool {
	for _, s := range skills {
		if s.Name == "" {
			return false
		}
	}
	return len(skills) > 0
}

// aiExperience is the experience shape the generation prompt asks for.
type aiExperience struct {
	Title       string   `json:"title"`
	Role        string   `json:"role"`
	Company     string   `json:"company"`
	Duration    string   `json:"duration"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Description string   `json:"description"`
	Details     []string `json:"details"`
}

// coerceExperience accepts the AI shape ({title,company,duration,details})
// or the canonical shape, mapping duration to a start/end split on the first
// dash and joining detail bullets into the description.
func coerceExperience(msg json.RawMessage) []model.Experience {
	var entries []aiExperience
	if err := json.Unmarshal(msg, &entries); err != nil {
		return []model.Experience{}
	}
	out := make([]model.Experience, 0, len(entries))
	for _, e := range entries {
		role := e.Role
		if role == "" {
			role = e.Title
		}
		start, end := e.StartDate, e.EndDate
		if start == "" && end == "" && e.Duration != "" {
			start, end = splitDuration(e.Duration)
		}
		desc := e.Description
		if desc == "" && len(e.Details) > 0 {
			desc = strings.Join(e.Details, "\n")
		}
		out = append(out, model.Experience{
			Company:     e.Company,
			Role:        role,
			StartDate:   start,
			EndDate:     end,
			Description: desc,
		})
	}
	return out
}

// splitDuration splits "Jan 2020 - Dec 2022" into its endpoints. A duration
// without a dash becomes the start date.
func splitDuration(duration string) (start, end string) {
	parts := strings.SplitN(duration, "-", 2)
	start = strings.TrimSpace(parts[0])
	if len(parts) == 2 {
		end = strings.TrimSpace(parts[1])
	}
	return start, end
}

type aiEducation struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

// coerceEducation maps the AI's single year field to the end date.
func coerceEducation(msg json.RawMessage) []model.Education {
	var entries []aiEducation
	if err := json.Unmarshal(msg, &entries); err != nil {
		return []model.Education{}
	}
	out := make([]model.Education, 0, len(entries))
	for _, e := range entries {
		end := e.EndDate
		if end == "" {
			end = e.Year
		}
		out = append(out, model.Education{
			Degree:      e.Degree,
			Institution: e.Institution,
			StartDate:   e.StartDate,
			EndDate:     end,
		})
	}
	return out
}

type aiProject struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	RepoLink     string   `json:"repoLink"`
	DemoLink     string   `json:"demoLink"`
}

// coerceProjects folds a technologies list into the description since the
// canonical project has no separate tech field.
func coerceProjects(msg json.RawMessage) []model.Project {
	var entries []aiProject
	if err := json.Unmarshal(msg, &entries); err != nil {
		return []model.Project{}
	}
	out := make([]model.Project, 0, len(entries))
	for _, p := range entries {
		desc := p.Description
		if len(p.Technologies) > 0 {
			if desc != "" {
				desc += " "
			}
			desc += "Technologies: " + strings.Join(p.Technologies, ", ")
		}
		out = append(out, model.Project{
			Title:       p.Title,
			Description: desc,
			RepoLink:    p.RepoLink,
			DemoLink:    p.DemoLink,
		})
	}
	return out
}

type aiCertification struct {
	Title  string `json:"title"`
	Issuer string `json:"issuer"`
	Year   string `json:"year"`
}

// coerceCertifications accepts canonical objects or bare strings.
func coerceCertifications(msg json.RawMessage) []model.Certification {
	var canonical []aiCertification
	if err := json.Unmarshal(msg, &canonical); err == nil && len(canonical) > 0 && canonical[0].Title != "" {
		out := make([]model.Certification, 0, len(canonical))
		for _, c := range canonical {
			out = append(out, model.Certification{Title: c.Title, Issuer: c.Issuer, Year: c.Year})
		}
		return out
	}
	titles := coerceStringList(msg)
	out := make([]model.Certification, 0, len(titles))
	for _, title := range titles {
		out = append(out, model.Certification{Title: title})
	}
	return out
}

// coerceLanguages accepts canonical {name,proficiency} objects or bare
// strings.
func coerceLanguages(msg json.RawMessage) []model.Language {
	var canonical []model.Language
	if err := json.Unmarshal(msg, &canonical); err == nil && allLanguagesNamed(canonical) {
		for i := range canonical {
			canonical[i].Proficiency = model.ClampProficiency(canonical[i].Proficiency)
			if canonical[i].Proficiency == 0 {
				canonical[i].Proficiency = defaultProficiency
			}
		}
		return canonical
	}
	names := coerceStringList(msg)
	out := make([]model.Language, 0, len(names))
	for _, name := range names {
		out = append(out, model.Language{Name: name, Proficiency: defaultProficiency})
	}
	return out
}

func allLanguagesNamed(langs []model.Language) bool {
	for _, l := range langs {
		if l.Name == "" {
			return false
		}
	}
	return len(langs) > 0
}
