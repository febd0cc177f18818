package llm

import (
	"fmt"
	"strings"
)

// DraftInput is the candidate summary used to build a drafting prompt.
type DraftInput struct {
	Prompt     string
	Name       string
	Role       string
	Skills     []string
	Experience []string
	Education  []string
	Projects   []string
}

// BuildDraftPrompt asks the model for a partial resume as strict JSON. The
// field names mirror the editor's wire format so the draft can be merged
// without renaming.
func BuildDraftPrompt(in DraftInput) string {
	var sb strings.Builder
	sb.WriteString("You are a professional resume writer. Draft resume content for the candidate below.\n\n")

	if in.Name != "" {
		fmt.Fprintf(&sb, "Name: %s\n", in.Name)
	}
	if in.Role != "" {
		fmt.Fprintf(&sb, "Target role: %s\n", in.Role)
	}
	writeList(&sb, "Skills", in.Skills)
	writeList(&sb, "Experience", in.Experience)
	writeList(&sb, "Education", in.Education)
	writeList(&sb, "Projects", in.Projects)
	if in.Prompt != "" {
		fmt.Fprintf(&sb, "\nAdditional instructions: %s\n", in.Prompt)
	}

	sb.WriteString(`
Respond with a single JSON object and nothing else. Use this shape, omitting
any section you have nothing for:
{
  "summary": "2-3 sentence professional summary",
  "skills": [{"name": "Skill", "proficiency": 80}],
  "experience": [{"company": "", "role": "", "startDate": "", "endDate": "", "description": ""}],
  "education": [{"degree": "", "institution": "", "startDate": "", "endDate": ""}],
  "projects": [{"title": "", "description": "", "link": ""}],
  "certifications": [{"title": "", "issuer": "", "year": ""}],
  "languages": [{"name": "", "proficiency": 80}],
  "interests": ["interest"]
}
Proficiency values are integers from 0 to 100. Do not invent employers or
credentials the candidate did not mention.`)
	return sb.String()
}

// BuildAnalysisPrompt asks the model to critique a resume as strict JSON.
func BuildAnalysisPrompt(resumeJSON string) string {
	return fmt.Sprintf(`You are an experienced hiring manager reviewing a resume.
Analyze the resume data below and respond with a single JSON object:
{
  "strengths": ["..."],
  "weaknesses": ["..."],
  "suggestions": ["..."],
  "toneSummary": "one sentence describing the overall tone"
}

Resume data:
%s`, resumeJSON)
}

func writeList(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(sb, "%s:\n", label)
	for _, item := range items {
		fmt.Fprintf(sb, "- %s\n", item)
	}
}
