package merge

import "github.com/jonathan/resume-studio/internal/model"

// Apply folds a parse result into a document snapshot. Field-present-wins,
// field-absent-preserves: a present field replaces its document counterpart
// wholesale, an absent field leaves it untouched. A Raw result lands in the
// AIRaw holding field and changes nothing else. Apply is all-or-nothing by
// construction: it only ever builds one complete new snapshot.
func Apply(doc model.Document, result Result) model.Document {
	next := doc
	if !result.Parsed() {
		next.AIRaw = result.Raw
		return next
	}

	p := result.Partial
	if p.Summary != nil {
		next.Profile.Summary = *p.Summary
	}
	if p.Skills != nil {
		next.Skills = p.Skills
	}
	if p.Experience != nil {
		next.WorkExperience = p.Experience
	}
	if p.Education != nil {
		next.Education = p.Education
	}
	if p.Projects != nil {
		next.Projects = p.Projects
	}
	if p.Certifications != nil {
		next.Certifications = p.Certifications
	}
	if p.Languages != nil {
		next.Languages = p.Languages
	}
	if p.Interests != nil {
		next.Interests = p.Interests
	}
	return next
}

// Generated parses an AI response and applies it in one step.
func Generated(doc model.Document, aiResponse string) model.Document {
	return Apply(doc, Parse(aiResponse))
}
