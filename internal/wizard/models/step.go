package models

// StepID names one page of the wizard.
type StepID string

const (
	StepBasic         StepID = "basic"
	StepMentorProfile StepID = "mentor_profile"
	StepMenteeProfile StepID = "mentee_profile"
	StepScheduling    StepID = "scheduling"
)

// ProfileStep returns the role-specific middle page.
func ProfileStep(role Role) StepID {
	if role == RoleMentor {
		return StepMentorProfile
	}
	return StepMenteeProfile
}

// Position returns the 1-based position of a step in the four-page layout.
// Both profile pages keep their own slot so progress displays can show the
// skipped branch of the other role.
func (s StepID) Position() int {
	switch s {
	case StepBasic:
		return 1
	case StepMentorProfile:
		return 2
	case StepMenteeProfile:
		return 3
	case StepScheduling:
		return 4
	default:
		return 0
	}
}
