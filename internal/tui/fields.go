package tui

import (
	"strconv"

	"github.com/jonathan/resume-studio/internal/model"
	"github.com/jonathan/resume-studio/internal/wizard"
)

// fieldSpec describes one editable leaf of a step.
type fieldSpec struct {
	Label       string
	Section     model.Section
	Key         string
	Proficiency bool // numeric 0-100, stored via UpdateProficiency
}

// scalar reports whether the field belongs to a scalar group rather than an
// ordered section.
func (f fieldSpec) scalar() bool {
	return f.Section == model.SectionProfile || f.Section == model.SectionContact
}

// stepFields maps each wizard step to the leaves it edits. Array steps edit
// one entry at a time; the editor tracks the entry index.
func stepFields(id wizard.StepID) []fieldSpec {
	switch id {
	case wizard.StepProfile:
		return []fieldSpec{
			{Label: "Full name", Section: model.SectionProfile, Key: "fullName"},
			{Label: "Designation", Section: model.SectionProfile, Key: "designation"},
			{Label: "Summary", Section: model.SectionProfile, Key: "summary"},
		}
	case wizard.StepContact:
		return []fieldSpec{
			{Label: "Email", Section: model.SectionContact, Key: "email"},
			{Label: "Phone", Section: model.SectionContact, Key: "phone"},
			{Label: "Location", Section: model.SectionContact, Key: "location"},
			{Label: "LinkedIn", Section: model.SectionContact, Key: "linkedin"},
			{Label: "GitHub", Section: model.SectionContact, Key: "github"},
			{Label: "Website", Section: model.SectionContact, Key: "website"},
		}
	case wizard.StepExperience:
		return []fieldSpec{
			{Label: "Company", Section: model.SectionExperience, Key: "company"},
			{Label: "Role", Section: model.SectionExperience, Key: "role"},
			{Label: "Start date", Section: model.SectionExperience, Key: "startDate"},
			{Label: "End date", Section: model.SectionExperience, Key: "endDate"},
			{Label: "Description", Section: model.SectionExperience, Key: "description"},
		}
	case wizard.StepEducation:
		return []fieldSpec{
			{Label: "Degree", Section: model.SectionEducation, Key: "degree"},
			{Label: "Institution", Section: model.SectionEducation, Key: "institution"},
			{Label: "Start date", Section: model.SectionEducation, Key: "startDate"},
			{Label: "End date", Section: model.SectionEducation, Key: "endDate"},
		}
	case wizard.StepSkills:
		return []fieldSpec{
			{Label: "Skill", Section: model.SectionSkills, Key: "name"},
			{Label: "Proficiency", Section: model.SectionSkills, Key: "proficiency", Proficiency: true},
		}
	case wizard.StepProjects:
		return []fieldSpec{
			{Label: "Title", Section: model.SectionProjects, Key: "title"},
			{Label: "Description", Section: model.SectionProjects, Key: "description"},
			{Label: "Repo link", Section: model.SectionProjects, Key: "repoLink"},
			{Label: "Demo link", Section: model.SectionProjects, Key: "demoLink"},
		}
	case wizard.StepCertifications:
		return []fieldSpec{
			{Label: "Title", Section: model.SectionCertifications, Key: "title"},
			{Label: "Issuer", Section: model.SectionCertifications, Key: "issuer"},
			{Label: "Year", Section: model.SectionCertifications, Key: "year"},
		}
	case wizard.StepAdditional:
		return []fieldSpec{
			{Label: "Language", Section: model.SectionLanguages, Key: "name"},
			{Label: "Fluency", Section: model.SectionLanguages, Key: "proficiency", Proficiency: true},
			{Label: "Interest", Section: model.SectionInterests, Key: "interest"},
		}
	}
	return nil
}

// fieldValue reads the current value of a field for display and editing.
func fieldValue(doc model.Document, f fieldSpec, index int) string {
	switch f.Section {
	case model.SectionProfile:
		switch f.Key {
		case "fullName":
			return doc.Profile.FullName
		case "designation":
			return doc.Profile.Designation
		case "summary":
			return doc.Profile.Summary
		}
	case model.SectionContact:
		switch f.Key {
		case "email":
			return doc.Contact.Email
		case "phone":
			return doc.Contact.Phone
		case "location":
			return doc.Contact.Location
		case "linkedin":
			return doc.Contact.LinkedIn
		case "github":
			return doc.Contact.GitHub
		case "website":
			return doc.Contact.Website
		}
	case model.SectionExperience:
		if index >= len(doc.WorkExperience) {
			return ""
		}
		e := doc.WorkExperience[index]
		switch f.Key {
		case "company":
			return e.Company
		case "role":
			return e.Role
		case "startDate":
			return e.StartDate
		case "endDate":
			return e.EndDate
		case "description":
			return e.Description
		}
	case model.SectionEducation:
		if index >= len(doc.Education) {
			return ""
		}
		e := doc.Education[index]
		switch f.Key {
		case "degree":
			return e.Degree
		case "institution":
			return e.Institution
		case "startDate":
			return e.StartDate
		case "endDate":
			return e.EndDate
		}
	case model.SectionSkills:
		if index >= len(doc.Skills) {
			return ""
		}
		if f.Proficiency {
			return strconv.Itoa(doc.Skills[index].Proficiency)
		}
		return doc.Skills[index].Name
	case model.SectionProjects:
		if index >= len(doc.Projects) {
			return ""
		}
		p := doc.Projects[index]
		switch f.Key {
		case "title":
			return p.Title
		case "description":
			return p.Description
		case "repoLink":
			return p.RepoLink
		case "demoLink":
			return p.DemoLink
		}
	case model.SectionCertifications:
		if index >= len(doc.Certifications) {
			return ""
		}
		c := doc.Certifications[index]
		switch f.Key {
		case "title":
			return c.Title
		case "issuer":
			return c.Issuer
		case "year":
			return c.Year
		}
	case model.SectionLanguages:
		if index >= len(doc.Languages) {
			return ""
		}
		if f.Proficiency {
			return strconv.Itoa(doc.Languages[index].Proficiency)
		}
		return doc.Languages[index].Name
	case model.SectionInterests:
		if index >= len(doc.Interests) {
			return ""
		}
		return doc.Interests[index]
	}
	return ""
}

// applyField writes an edited value back into a snapshot.
func applyField(doc model.Document, f fieldSpec, index int, value string) model.Document {
	if f.scalar() {
		return doc.UpdateSection(f.Section, f.Key, value)
	}
	if f.Proficiency {
		n, err := strconv.Atoi(value)
		if err != nil {
			return doc
		}
		return doc.UpdateProficiency(f.Section, index, n)
	}
	if f.Section == model.SectionInterests {
		return doc.UpdateArrayItem(f.Section, index, "", value)
	}
	return doc.UpdateArrayItem(f.Section, index, f.Key, value)
}
