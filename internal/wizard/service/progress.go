package service

import "steam-intake/internal/wizard/models"

// StepStatus is the projected display state of one wizard step.
type StepStatus string

const (
	StatusCompleted StepStatus = "completed"
	StatusActive    StepStatus = "active"
	StatusInactive  StepStatus = "inactive"
	// StatusSkipped marks the profile step of the role not selected, whatever
	// its position; it is never merely upcoming.
	StatusSkipped StepStatus = "skipped"
)

// ProgressStep is one entry of the progress projection.
type ProgressStep struct {
	Step     models.StepID `json:"step"`
	Label    string        `json:"label"`
	Position int           `json:"position"`
	Status   StepStatus    `json:"status"`
}

var stepLabels = map[models.StepID]string{
	models.StepBasic:         "Basic Info",
	models.StepMentorProfile: "Mentor Profile",
	models.StepMenteeProfile: "Mentee Profile",
	models.StepScheduling:    "Calendar Availability",
}

// Project derives the per-step status purely from the current step and role.
// With no role selected yet both profile steps sit inactive.
func Project(current models.StepID, role models.Role) []ProgressStep {
	order := []models.StepID{
		models.StepBasic,
		models.StepMentorProfile,
		models.StepMenteeProfile,
		models.StepScheduling,
	}

	out := make([]ProgressStep, 0, len(order))
	for _, step := range order {
		ps := ProgressStep{
			Step:     step,
			Label:    stepLabels[step],
			Position: step.Position(),
			Status:   StatusInactive,
		}
		switch {
		case role.Valid() && isProfile(step) && step != models.ProfileStep(role):
			ps.Status = StatusSkipped
		case step == current:
			ps.Status = StatusActive
		case step.Position() < current.Position():
			ps.Status = StatusCompleted
		}
		out = append(out, ps)
	}
	return out
}

func isProfile(step models.StepID) bool {
	return step == models.StepMentorProfile || step == models.StepMenteeProfile
}
