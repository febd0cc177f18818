package render

import "github.com/jonathan/resume-studio/internal/model"

// templateOne is the classic single-column layout: a bordered header with
// identity and contact details, then every populated section stacked full
// width. It is the deterministic fallback for unknown template ids.
func templateOne(doc model.Document, th model.Theme) (*Node, float64) {
	const wrapWidth = 800.0

	body := Style{FontSize: 13, FontFamily: th.FontFamily, Color: "#333333"}
	headingStyle := Style{FontSize: 16, Bold: true, Uppercase: true, FontFamily: th.FontFamily, Color: th.PrimaryColor, PadY: 2}
	linkStyle := Style{FontSize: 12, FontFamily: th.FontFamily, Color: th.AccentColor}

	header := column(Style{Gap: 4, PadY: 6},
		text(doc.Profile.FullName, Style{FontSize: 28, Bold: true, FontFamily: th.FontFamily, Color: th.PrimaryColor}),
		text(doc.Profile.Designation, Style{FontSize: 16, FontFamily: th.FontFamily, Color: "#555555"}),
	)
	if line := contactLine(doc.Contact); line != "" {
		header.Children = append(header.Children, text(line, Style{FontSize: 12, FontFamily: th.FontFamily, Color: "#555555"}))
	}
	if links := contactLinks(doc.Contact, linkStyle); len(links) > 0 {
		header.Children = append(header.Children, row(Style{Gap: 14}, links...))
	}
	header.Children = append(header.Children, divider(th.PrimaryColor))

	sections := []*Node{header}

	if doc.Profile.Summary != "" {
		sections = append(sections,
			heading(headingSummary, headingStyle),
			text(doc.Profile.Summary, body),
		)
	}

	if len(doc.WorkExperience) > 0 {
		block := column(Style{Gap: 4}, heading(headingExperience, headingStyle))
		for _, e := range doc.WorkExperience {
			block.Children = append(block.Children, experienceEntry(e, th, body))
		}
		sections = append(sections, block)
	}

	if len(doc.Education) > 0 {
		block := column(Style{Gap: 4}, heading(headingEducation, headingStyle))
		for _, e := range doc.Education {
			block.Children = append(block.Children, educationEntry(e, th, body))
		}
		sections = append(sections, block)
	}

	if len(doc.Skills) > 0 {
		block := column(Style{Gap: 2}, heading(headingSkills, headingStyle))
		for _, s := range doc.Skills {
			block.Children = append(block.Children, skillRow(s, th, body))
		}
		sections = append(sections, block)
	}

	if len(doc.Projects) > 0 {
		block := column(Style{Gap: 4}, heading(headingProjects, headingStyle))
		for _, p := range doc.Projects {
			block.Children = append(block.Children, projectEntry(p, th, body))
		}
		sections = append(sections, block)
	}

	if len(doc.Certifications) > 0 {
		block := column(Style{Gap: 2}, heading(headingCertifications, headingStyle))
		for _, c := range doc.Certifications {
			block.Children = append(block.Children, certificationEntry(c, th, body))
		}
		sections = append(sections, block)
	}

	if len(doc.Languages) > 0 {
		block := column(Style{Gap: 2}, heading(headingLanguages, headingStyle))
		for _, l := range doc.Languages {
			block.Children = append(block.Children, languageRow(l, th, body))
		}
		sections = append(sections, block)
	}

	if line := interestsLine(doc.Interests); line != "" {
		sections = append(sections,
			heading(headingInterests, headingStyle),
			text(line, body),
		)
	}

	root := column(Style{Gap: 8, PadX: 24, PadY: 24}, sections...)
	return root, wrapWidth
}
