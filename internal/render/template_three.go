package render

import "github.com/jonathan/resume-studio/internal/model"

// templateThree is the banner layout: a full-width block in the primary
// color carrying the identity, followed by a two-column body with experience
// and projects on the left and the remaining sections on the right.
func templateThree(doc model.Document, th model.Theme) (*Node, float64) {
	const wrapWidth = 840.0

	body := Style{FontSize: 12, FontFamily: th.FontFamily, Color: "#333333"}
	headingStyle := Style{FontSize: 14, Bold: true, Uppercase: true, FontFamily: th.FontFamily, Color: th.PrimaryColor, PadY: 2}

	banner := column(Style{Gap: 4, PadX: 26, PadY: 22, Background: th.PrimaryColor},
		text(doc.Profile.FullName, Style{FontSize: 30, Bold: true, FontFamily: th.FontFamily, Color: "#ffffff"}),
		text(doc.Profile.Designation, Style{FontSize: 15, FontFamily: th.FontFamily, Color: "#ffffffcc"}),
	)
	if line := contactLine(doc.Contact); line != "" {
		banner.Children = append(banner.Children, text(line, Style{FontSize: 12, FontFamily: th.FontFamily, Color: "#ffffffcc"}))
	}
	if links := contactLinks(doc.Contact, Style{FontSize: 11, FontFamily: th.FontFamily, Color: "#ffffff"}); len(links) > 0 {
		banner.Children = append(banner.Children, row(Style{Gap: 14}, links...))
	}

	left := column(Style{Gap: 8, PadX: 16, PadY: 14})
	if doc.Profile.Summary != "" {
		left.Children = append(left.Children,
			heading(headingSummary, headingStyle),
			text(doc.Profile.Summary, body),
		)
	}
	if len(doc.WorkExperience) > 0 {
		left.Children = append(left.Children, heading(headingExperience, headingStyle))
		for _, e := range doc.WorkExperience {
			left.Children = append(left.Children, experienceEntry(e, th, body))
		}
	}
	if len(doc.Projects) > 0 {
		left.Children = append(left.Children, heading(headingProjects, headingStyle))
		for _, p := range doc.Projects {
			left.Children = append(left.Children, projectEntry(p, th, body))
		}
	}

	right := column(Style{Gap: 8, PadX: 16, PadY: 14})
	if len(doc.Education) > 0 {
		right.Children = append(right.Children, heading(headingEducation, headingStyle))
		for _, e := range doc.Education {
			right.Children = append(right.Children, educationEntry(e, th, body))
		}
	}
	if len(doc.Skills) > 0 {
		right.Children = append(right.Children, heading(headingSkills, headingStyle))
		for _, s := range doc.Skills {
			right.Children = append(right.Children, skillRow(s, th, body))
		}
	}
	if len(doc.Certifications) > 0 {
		right.Children = append(right.Children, heading(headingCertifications, headingStyle))
		for _, c := range doc.Certifications {
			right.Children = append(right.Children, certificationEntry(c, th, body))
		}
	}
	if len(doc.Languages) > 0 {
		right.Children = append(right.Children, heading(headingLanguages, headingStyle))
		for _, l := range doc.Languages {
			right.Children = append(right.Children, languageRow(l, th, body))
		}
	}
	if line := interestsLine(doc.Interests); line != "" {
		right.Children = append(right.Children,
			heading(headingInterests, headingStyle),
			text(line, body),
		)
	}

	root := column(Style{Gap: 0}, banner, row(Style{Gap: 12}, left, right))
	return root, wrapWidth
}
