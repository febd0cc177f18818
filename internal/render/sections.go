package render

import (
	"strings"

	"github.com/jonathan/resume-studio/internal/model"
)

// Section heading labels shared by the templates.
const (
	headingSummary        = "Summary"
	headingExperience     = "Work Experience"
	headingEducation      = "Education"
	headingSkills         = "Skills"
	headingProjects       = "Projects"
	headingCertifications = "Certifications"
	headingLanguages      = "Languages"
	headingInterests      = "Interests"
)

func dateRange(start, end string) string {
	switch {
	case start == "" && end == "":
		return ""
	case end == "":
		return start + " - Present"
	case start == "":
		return end
	default:
		return start + " - " + end
	}
}

func contactLine(c model.Contact) string {
	var parts []string
	for _, p := range []string{c.Email, c.Phone, c.Location} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "  |  ")
}

func contactLinks(c model.Contact, style Style) []*Node {
	var nodes []*Node
	if c.LinkedIn != "" {
		nodes = append(nodes, link("LinkedIn", c.LinkedIn, style))
	}
	if c.GitHub != "" {
		nodes = append(nodes, link("GitHub", c.GitHub, style))
	}
	if c.Website != "" {
		nodes = append(nodes, link("Portfolio", c.Website, style))
	}
	return nodes
}

func experienceEntry(e model.Experience, th model.Theme, body Style) *Node {
	title := Style{FontSize: body.FontSize + 1, Bold: true, FontFamily: body.FontFamily, Color: th.PrimaryColor}
	meta := Style{FontSize: body.FontSize - 1, Italic: true, FontFamily: body.FontFamily, Color: "#555555"}

	children := []*Node{text(strings.TrimSpace(e.Role+" at "+e.Company), title)}
	if r := dateRange(e.StartDate, e.EndDate); r != "" {
		children = append(children, text(r, meta))
	}
	if e.Description != "" {
		children = append(children, text(e.Description, body))
	}
	return column(Style{Gap: 2, PadY: 4}, children...)
}

func educationEntry(e model.Education, th model.Theme, body Style) *Node {
	title := Style{FontSize: body.FontSize + 1, Bold: true, FontFamily: body.FontFamily, Color: th.PrimaryColor}
	meta := Style{FontSize: body.FontSize - 1, FontFamily: body.FontFamily, Color: "#555555"}

	children := []*Node{text(e.Degree, title), text(e.Institution, body)}
	if r := dateRange(e.StartDate, e.EndDate); r != "" {
		children = append(children, text(r, meta))
	}
	return column(Style{Gap: 2, PadY: 3}, children...)
}

func projectEntry(p model.Project, th model.Theme, body Style) *Node {
	title := Style{FontSize: body.FontSize + 1, Bold: true, FontFamily: body.FontFamily, Color: th.PrimaryColor}
	linkStyle := Style{FontSize: body.FontSize - 1, FontFamily: body.FontFamily, Color: th.AccentColor}

	children := []*Node{text(p.Title, title)}
	if p.Description != "" {
		children = append(children, text(p.Description, body))
	}
	var links []*Node
	if p.RepoLink != "" {
		links = append(links, link("Repository", p.RepoLink, linkStyle))
	}
	if p.DemoLink != "" {
		links = append(links, link("Live Demo", p.DemoLink, linkStyle))
	}
	if len(links) > 0 {
		children = append(children, row(Style{Gap: 12}, links...))
	}
	return column(Style{Gap: 2, PadY: 4}, children...)
}

func certificationEntry(c model.Certification, th model.Theme, body Style) *Node {
	line := c.Title
	if c.Issuer != "" {
		line += " — " + c.Issuer
	}
	if c.Year != "" {
		line += " (" + c.Year + ")"
	}
	return text(line, body)
}

func skillRow(s model.Skill, th model.Theme, body Style) *Node {
	return row(Style{Gap: 10, PadY: 2},
		text(s.Name, body),
		tickBar(proficiencyTicks(s.Proficiency), 5, th.AccentColor),
	)
}

func languageRow(l model.Language, th model.Theme, body Style) *Node {
	return row(Style{Gap: 10, PadY: 2},
		text(l.Name, body),
		tickBar(proficiencyTicks(l.Proficiency), 5, th.AccentColor),
	)
}

func interestsLine(interests []string) string {
	var kept []string
	for _, s := range interests {
		if strings.TrimSpace(s) != "" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, " · ")
}
