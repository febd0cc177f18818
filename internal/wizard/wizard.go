// Package wizard drives the ordered multi-step editing flow. Steps are fixed,
// validation is declarative per step, and the terminal transitions signal the
// host instead of wrapping around.
package wizard

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-studio/internal/model"
)

// StepID names one editing step.
type StepID string

// The editing steps in their fixed order.
const (
	StepProfile        StepID = "profile"
	StepContact        StepID = "contact"
	StepExperience     StepID = "experience"
	StepEducation      StepID = "education"
	StepSkills         StepID = "skills"
	StepProjects       StepID = "projects"
	StepCertifications StepID = "certifications"
	StepAdditional     StepID = "additional"
)

// Signal tells the host what a boundary transition means.
type Signal int

const (
	// SignalNone means the wizard simply moved (or refused to move).
	SignalNone Signal = iota
	// SignalRequestPreview is emitted by Next on the terminal step and opens
	// the export flow.
	SignalRequestPreview
	// SignalExitEditor is emitted by Back on the initial step.
	SignalExitEditor
)

// Rule is one required leaf field of a step, validated with a validator tag.
type Rule struct {
	Field string
	Tag   string
	Value func(model.Document) string
}

// Step couples a step id with its validation rules and the document sections
// it edits. A step with no rules is validation-free on purpose; the policy is
// explicit here rather than implied.
type Step struct {
	ID       StepID
	Title    string
	Sections []model.Section
	Rules    []Rule
}

// ValidationError reports the fields that blocked a Next transition.
type ValidationError struct {
	Step   StepID
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("step %s: missing or invalid fields: %s", e.Step, strings.Join(e.Fields, ", "))
}

// Steps returns the fixed step table. Validation policy per step:
//   - profile:        fullName and designation required
//   - contact:        email required and well-formed
//   - all others:     validation-free (explicitly empty rule sets)
func Steps() []Step {
	return []Step{
		{
			ID:       StepProfile,
			Title:    "Profile",
			Sections: []model.Section{model.SectionProfile},
			Rules: []Rule{
				{Field: "fullName", Tag: "required", Value: func(d model.Document) string { return d.Profile.FullName }},
				{Field: "designation", Tag: "required", Value: func(d model.Document) string { return d.Profile.Designation }},
			},
		},
		{
			ID:       StepContact,
			Title:    "Contact",
			Sections: []model.Section{model.SectionContact},
			Rules: []Rule{
				{Field: "email", Tag: "required,email", Value: func(d model.Document) string { return d.Contact.Email }},
			},
		},
		{ID: StepExperience, Title: "Work Experience", Sections: []model.Section{model.SectionExperience}},
		{ID: StepEducation, Title: "Education", Sections: []model.Section{model.SectionEducation}},
		{ID: StepSkills, Title: "Skills", Sections: []model.Section{model.SectionSkills}},
		{ID: StepProjects, Title: "Projects", Sections: []model.Section{model.SectionProjects}},
		{ID: StepCertifications, Title: "Certifications", Sections: []model.Section{model.SectionCertifications}},
		{ID: StepAdditional, Title: "Additional Info", Sections: []model.Section{model.SectionLanguages, model.SectionInterests}},
	}
}

// Wizard tracks the current step over a document owned by the host.
type Wizard struct {
	steps    []Step
	index    int
	validate *validator.Validate
}

// New starts a wizard at the first step.
func New() *Wizard {
	return &Wizard{
		steps:    Steps(),
		validate: validator.New(),
	}
}

// Current returns the active step.
func (w *Wizard) Current() Step { return w.steps[w.index] }

// Index returns the zero-based position of the active step.
func (w *Wizard) Index() int { return w.index }

// StepCount returns the number of steps.
func (w *Wizard) StepCount() int { return len(w.steps) }

// Progress reports completion as round(index/(stepCount-1)*100).
func (w *Wizard) Progress() int {
	return int(math.Round(float64(w.index) / float64(len(w.steps)-1) * 100))
}

// Next validates the current step against the document and advances. On the
// terminal step it emits SignalRequestPreview instead of advancing. A
// validation failure leaves the current step unchanged and returns a
// *ValidationError.
func (w *Wizard) Next(doc model.Document) (Signal, error) {
	if err := w.Validate(doc); err != nil {
		return SignalNone, err
	}
	if w.index == len(w.steps)-1 {
		return SignalRequestPreview, nil
	}
	w.index++
	return SignalNone, nil
}

// Back retreats one step, emitting SignalExitEditor on the initial step.
// Back never validates; leaving a half-filled step backwards is allowed.
func (w *Wizard) Back() Signal {
	if w.index == 0 {
		return SignalExitEditor
	}
	w.index--
	return SignalNone
}

// Validate checks the active step's rules against the document.
func (w *Wizard) Validate(doc model.Document) error {
	step := w.Current()
	var failed []string
	for _, rule := range step.Rules {
		if err := w.validate.Var(rule.Value(doc), rule.Tag); err != nil {
			failed = append(failed, rule.Field)
		}
	}
	if len(failed) > 0 {
		return &ValidationError{Step: step.ID, Fields: failed}
	}
	return nil
}
