package render

import "github.com/jonathan/resume-studio/internal/model"

// templateTwo is the sidebar layout: a tinted left rail with contact, skills,
// languages and interests, and a wide main column with summary, experience,
// education, projects and certifications.
func templateTwo(doc model.Document, th model.Theme) (*Node, float64) {
	const wrapWidth = 760.0

	body := Style{FontSize: 12, FontFamily: th.FontFamily, Color: "#333333"}
	railBody := Style{FontSize: 12, FontFamily: th.FontFamily, Color: "#222222"}
	railHeading := Style{FontSize: 13, Bold: true, Uppercase: true, FontFamily: th.FontFamily, Color: th.PrimaryColor, PadY: 2}
	mainHeading := Style{FontSize: 15, Bold: true, Uppercase: true, FontFamily: th.FontFamily, Color: th.PrimaryColor, PadY: 2}
	linkStyle := Style{FontSize: 11, FontFamily: th.FontFamily, Color: th.AccentColor}

	rail := column(Style{Gap: 6, PadX: 14, PadY: 18, Background: th.AccentColor + "22"},
		text(doc.Profile.FullName, Style{FontSize: 22, Bold: true, FontFamily: th.FontFamily, Color: th.PrimaryColor}),
		text(doc.Profile.Designation, Style{FontSize: 13, FontFamily: th.FontFamily, Color: "#555555"}),
	)
	if line := contactLine(doc.Contact); line != "" {
		rail.Children = append(rail.Children, text(line, railBody))
	}
	for _, l := range contactLinks(doc.Contact, linkStyle) {
		rail.Children = append(rail.Children, l)
	}

	if len(doc.Skills) > 0 {
		rail.Children = append(rail.Children, heading(headingSkills, railHeading))
		for _, s := range doc.Skills {
			rail.Children = append(rail.Children, skillRow(s, th, railBody))
		}
	}
	if len(doc.Languages) > 0 {
		rail.Children = append(rail.Children, heading(headingLanguages, railHeading))
		for _, l := range doc.Languages {
			rail.Children = append(rail.Children, languageRow(l, th, railBody))
		}
	}
	if line := interestsLine(doc.Interests); line != "" {
		rail.Children = append(rail.Children,
			heading(headingInterests, railHeading),
			text(line, railBody),
		)
	}

	main := column(Style{Gap: 8, PadX: 18, PadY: 18})
	if doc.Profile.Summary != "" {
		main.Children = append(main.Children,
			heading(headingSummary, mainHeading),
			text(doc.Profile.Summary, body),
		)
	}
	if len(doc.WorkExperience) > 0 {
		main.Children = append(main.Children, heading(headingExperience, mainHeading))
		for _, e := range doc.WorkExperience {
			main.Children = append(main.Children, experienceEntry(e, th, body))
		}
	}
	if len(doc.Education) > 0 {
		main.Children = append(main.Children, heading(headingEducation, mainHeading))
		for _, e := range doc.Education {
			main.Children = append(main.Children, educationEntry(e, th, body))
		}
	}
	if len(doc.Projects) > 0 {
		main.Children = append(main.Children, heading(headingProjects, mainHeading))
		for _, p := range doc.Projects {
			main.Children = append(main.Children, projectEntry(p, th, body))
		}
	}
	if len(doc.Certifications) > 0 {
		main.Children = append(main.Children, heading(headingCertifications, mainHeading))
		for _, c := range doc.Certifications {
			main.Children = append(main.Children, certificationEntry(c, th, body))
		}
	}

	root := row(Style{Gap: 0}, rail, main)
	return root, wrapWidth
}
