package model

// Section identifies a field group of the document for field-scoped updates.
type Section string

// The addressable document sections.
const (
	SectionProfile        Section = "profile"
	SectionContact        Section = "contact"
	SectionExperience     Section = "experience"
	SectionEducation      Section = "education"
	SectionSkills         Section = "skills"
	SectionProjects       Section = "projects"
	SectionCertifications Section = "certifications"
	SectionLanguages      Section = "languages"
	SectionInterests      Section = "interests"
)

// OrderedSections lists the sections backed by ordered sequences.
func OrderedSections() []Section {
	return []Section{
		SectionExperience,
		SectionEducation,
		SectionSkills,
		SectionProjects,
		SectionCertifications,
		SectionLanguages,
		SectionInterests,
	}
}

// UpdateSection returns a snapshot with one leaf field of a scalar group
// replaced. Unknown section/key pairs are a caller contract violation and
// leave the document unchanged; they are meant to be caught by tests, not
// handled at runtime.
func (d Document) UpdateSection(section Section, key, value string) Document {
	next := d
	switch section {
	case SectionProfile:
		switch key {
		case "fullName":
			next.Profile.FullName = value
		case "designation":
			next.Profile.Designation = value
		case "summary":
			next.Profile.Summary = value
		}
	case SectionContact:
		switch key {
		case "email":
			next.Contact.Email = value
		case "phone":
			next.Contact.Phone = value
		case "location":
			next.Contact.Location = value
		case "linkedin":
			next.Contact.LinkedIn = value
		case "github":
			next.Contact.GitHub = value
		case "website":
			next.Contact.Website = value
		}
	}
	return next
}

// UpdateArrayItem returns a snapshot with one leaf field of one element of an
// ordered section replaced. The element's slice is copied so untouched
// sections keep their identity. Out-of-range indices are a no-op.
func (d Document) UpdateArrayItem(section Section, index int, key, value string) Document {
	next := d
	switch section {
	case SectionExperience:
		if index < 0 || index >= len(d.WorkExperience) {
			return d
		}
		items := append([]Experience(nil), d.WorkExperience...)
		switch key {
		case "company":
			items[index].Company = value
		case "role":
			items[index].Role = value
		case "startDate":
			items[index].StartDate = value
		case "endDate":
			items[index].EndDate = value
		case "description":
			items[index].Description = value
		}
		next.WorkExperience = items
	case SectionEducation:
		if index < 0 || index >= len(d.Education) {
			return d
		}
		items := append([]Education(nil), d.Education...)
		switch key {
		case "degree":
			items[index].Degree = value
		case "institution":
			items[index].Institution = value
		case "startDate":
			items[index].StartDate = value
		case "endDate":
			items[index].EndDate = value
		}
		next.Education = items
	case SectionSkills:
		if index < 0 || index >= len(d.Skills) {
			return d
		}
		items := append([]Skill(nil), d.Skills...)
		if key == "name" {
			items[index].Name = value
		}
		next.Skills = items
	case SectionProjects:
		if index < 0 || index >= len(d.Projects) {
			return d
		}
		items := append([]Project(nil), d.Projects...)
		switch key {
		case "title":
			items[index].Title = value
		case "description":
			items[index].Description = value
		case "repoLink":
			items[index].RepoLink = value
		case "demoLink":
			items[index].DemoLink = value
		}
		next.Projects = items
	case SectionCertifications:
		if index < 0 || index >= len(d.Certifications) {
			return d
		}
		items := append([]Certification(nil), d.Certifications...)
		switch key {
		case "title":
			items[index].Title = value
		case "issuer":
			items[index].Issuer = value
		case "year":
			items[index].Year = value
		}
		next.Certifications = items
	case SectionLanguages:
		if index < 0 || index >= len(d.Languages) {
			return d
		}
		items := append([]Language(nil), d.Languages...)
		if key == "name" {
			items[index].Name = value
		}
		next.Languages = items
	case SectionInterests:
		if index < 0 || index >= len(d.Interests) {
			return d
		}
		items := append([]string(nil), d.Interests...)
		items[index] = value
		next.Interests = items
	}
	return next
}

// UpdateProficiency replaces the proficiency of a skill or language entry,
// clamped to [0,100]. Other sections are a no-op.
func (d Document) UpdateProficiency(section Section, index, proficiency int) Document {
	next := d
	switch section {
	case SectionSkills:
		if index < 0 || index >= len(d.Skills) {
			return d
		}
		items := append([]Skill(nil), d.Skills...)
		items[index].Proficiency = ClampProficiency(proficiency)
		next.Skills = items
	case SectionLanguages:
		if index < 0 || index >= len(d.Languages) {
			return d
		}
		items := append([]Language(nil), d.Languages...)
		items[index].Proficiency = ClampProficiency(proficiency)
		next.Languages = items
	}
	return next
}

// AddArrayItem returns a snapshot with a zero-valued entry appended to an
// ordered section.
func (d Document) AddArrayItem(section Section) Document {
	next := d
	switch section {
	case SectionExperience:
		next.WorkExperience = append(append([]Experience(nil), d.WorkExperience...), Experience{})
	case SectionEducation:
		next.Education = append(append([]Education(nil), d.Education...), Education{})
	case SectionSkills:
		next.Skills = append(append([]Skill(nil), d.Skills...), Skill{})
	case SectionProjects:
		next.Projects = append(append([]Project(nil), d.Projects...), Project{})
	case SectionCertifications:
		next.Certifications = append(append([]Certification(nil), d.Certifications...), Certification{})
	case SectionLanguages:
		next.Languages = append(append([]Language(nil), d.Languages...), Language{})
	case SectionInterests:
		next.Interests = append(append([]string(nil), d.Interests...), "")
	}
	return next
}

// RemoveArrayItem returns a snapshot with one element of an ordered section
// removed. Removing the last remaining element is permitted; re-seeding a
// placeholder afterwards is the wizard's responsibility. Out-of-range indices
// are a no-op.
func (d Document) RemoveArrayItem(section Section, index int) Document {
	next := d
	switch section {
	case SectionExperience:
		if index < 0 || index >= len(d.WorkExperience) {
			return d
		}
		next.WorkExperience = removeAt(d.WorkExperience, index)
	case SectionEducation:
		if index < 0 || index >= len(d.Education) {
			return d
		}
		next.Education = removeAt(d.Education, index)
	case SectionSkills:
		if index < 0 || index >= len(d.Skills) {
			return d
		}
		next.Skills = removeAt(d.Skills, index)
	case SectionProjects:
		if index < 0 || index >= len(d.Projects) {
			return d
		}
		next.Projects = removeAt(d.Projects, index)
	case SectionCertifications:
		if index < 0 || index >= len(d.Certifications) {
			return d
		}
		next.Certifications = removeAt(d.Certifications, index)
	case SectionLanguages:
		if index < 0 || index >= len(d.Languages) {
			return d
		}
		next.Languages = removeAt(d.Languages, index)
	case SectionInterests:
		if index < 0 || index >= len(d.Interests) {
			return d
		}
		next.Interests = removeAt(d.Interests, index)
	}
	return next
}

// SectionLen reports the number of entries in an ordered section. Scalar
// sections report zero.
func (d Document) SectionLen(section Section) int {
	switch section {
	case SectionExperience:
		return len(d.WorkExperience)
	case SectionEducation:
		return len(d.Education)
	case SectionSkills:
		return len(d.Skills)
	case SectionProjects:
		return len(d.Projects)
	case SectionCertifications:
		return len(d.Certifications)
	case SectionLanguages:
		return len(d.Languages)
	case SectionInterests:
		return len(d.Interests)
	}
	return 0
}

// SeedPlaceholder appends a placeholder entry if the ordered section is
// empty, restoring the never-empty navigation invariant after a final
// removal.
func (d Document) SeedPlaceholder(section Section) Document {
	if d.SectionLen(section) > 0 {
		return d
	}
	return d.AddArrayItem(section)
}

func removeAt[T any](items []T, index int) []T {
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:index]...)
	return append(out, items[index+1:]...)
}
