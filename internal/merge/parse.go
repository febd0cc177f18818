// Package merge folds AI-generated resume content into the canonical
// document. Input is untrusted text that may wrap JSON in markdown fences,
// prose or HTML; the parser strips those artifacts and produces a tagged
// union so downstream code never guesses the shape at the call site. A parse
// failure is not an error: the raw text is preserved in a holding field and
// the document is otherwise untouched.
package merge

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/resume-studio/internal/model"
)

// Result is the tagged union produced by Parse: either a structured partial
// resume or the raw text fallback.
type Result struct {
	Partial *Partial
	Raw     string
}

// Parsed reports whether structured content was recovered.
func (r Result) Parsed() bool { return r.Partial != nil }

// Partial carries the document fields present in an AI response. A nil slice
// or pointer means the field was absent and the corresponding document field
// must be preserved; a present field fully replaces its counterpart.
type Partial struct {
	Summary        *string
	Skills         []model.Skill
	Experience     []model.Experience
	Education      []model.Education
	Projects       []model.Project
	Certifications []model.Certification
	Languages      []model.Language
	Interests      []string
}

// Parse recovers structured content from an AI response. It never fails:
// markdown fences are stripped, the outermost JSON object is extracted from
// surrounding prose, HTML wrapping is flattened to text, and anything still
// unparseable comes back as Raw.
func Parse(aiResponse string) Result {
	raw := strings.TrimSpace(aiResponse)
	if raw == "" {
		return Result{Raw: aiResponse}
	}

	candidates := []string{stripFences(raw)}
	if looksLikeHTML(raw) {
		if text, ok := htmlText(raw); ok {
			candidates = append(candidates, stripFences(text))
		}
	}

	for _, candidate := range candidates {
		if obj, ok := extractObject(candidate); ok {
			if partial, ok := decodePartial(obj); ok {
				return Result{Partial: partial}
			}
		}
	}
	return Result{Raw: aiResponse}
}

// stripFences removes markdown code block wrappers. Models often wrap JSON
// in ```json ... ``` blocks even when instructed not to.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Skip a language identifier on the first line.
		if idx := strings.Index(text, "\n"); idx >= 0 {
			first := text[:idx]
			if len(first) < 20 && !strings.Contains(first, " ") && !strings.Contains(first, "{") {
				text = text[idx+1:]
			}
		}
	} else {
		return text
	}
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}

// extractObject slices the outermost JSON object out of surrounding prose.
func extractObject(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

func looksLikeHTML(text string) bool {
	return strings.Contains(text, "<") && strings.Contains(text, ">")
}

// htmlText flattens HTML wrapping down to its text content so a JSON object
// embedded in markup can still be extracted.
func htmlText(raw string) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return "", false
	}
	text := strings.TrimSpace(doc.Text())
	return text, text != ""
}

// decodePartial maps the present top-level keys onto the partial, coercing
// known shape mismatches with the deterministic rules in coerce.go. Absent
// keys stay nil so the merge preserves them.
func decodePartial(obj string) (*Partial, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(obj), &fields); err != nil {
		return nil, false
	}

	p := &Partial{}
	if msg, ok := fields["summary"]; ok {
		s := coerceString(msg)
		p.Summary = &s
	}
	if msg, ok := fields["skills"]; ok {
		p.Skills = coerceSkills(msg)
	}
	for _, key := range []string{"experience", "workExperience"} {
		if msg, ok := fields[key]; ok {
			p.Experience = coerceExperience(msg)
			break
		}
	}
	if msg, ok := fields["education"]; ok {
		p.Education = coerceEducation(msg)
	}
	if msg, ok := fields["projects"]; ok {
		p.Projects = coerceProjects(msg)
	}
	if msg, ok := fields["certifications"]; ok {
		p.Certifications = coerceCertifications(msg)
	}
	if msg, ok := fields["languages"]; ok {
		p.Languages = coerceLanguages(msg)
	}
	if msg, ok := fields["interests"]; ok {
		p.Interests = coerceStringList(msg)
	}
	return p, true
}
