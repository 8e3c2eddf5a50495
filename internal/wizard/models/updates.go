package models

import "fmt"

// Each wizard page submits its whole field subset as one typed update. The
// advance request carries exactly one variant, which must match the step the
// session is currently on.

type BasicUpdate struct {
	Email              string `json:"email"`
	Name               string `json:"name"`
	AgeBracket         int    `json:"age_bracket"`
	PhoneNumber        string `json:"phone_number"`
	AddressLine1       string `json:"address_line_1"`
	City               string `json:"city"`
	State              string `json:"state"`
	Zipcode            string `json:"zipcode"`
	Ethnicities        []int  `json:"ethnicities"`
	EthnicityPreference int   `json:"ethnicity_preference"`
	Genders            []int  `json:"genders"`
	GenderPreference   int    `json:"gender_preference"`
	ContactMethods     []int  `json:"contact_methods"`
	SessionPreferences []int  `json:"session_preferences"`
	// Empty means "leave the stored role alone"; a non-empty value is only
	// accepted while no role has been recorded yet.
	Role Role `json:"role"`
}

type MentorUpdate struct {
	Background        int    `json:"background"`
	AcademicLevel     int    `json:"academic_level"`
	ProfessionalTitle string `json:"professional_title"`
	CurrentEmployer   string `json:"current_employer"`
	MentoringReason   int    `json:"mentoring_reason"`
	Capacity          int    `json:"capacity"`
}

type MenteeUpdate struct {
	Grade             int    `json:"grade"`
	MenteeReasons     []int  `json:"mentee_reasons"`
	MenteeReasonOther string `json:"mentee_reason_other"`
	Interests         []int  `json:"interests"`
	InterestOther     string `json:"interest_other"`
}

type SchedulingUpdate struct {
	Availability  []string `json:"availability"`
	BlackoutDates string   `json:"blackout_dates"`
}

// StepUpdate is the advance request body: exactly one variant set.
type StepUpdate struct {
	Basic      *BasicUpdate      `json:"basic,omitempty"`
	Mentor     *MentorUpdate     `json:"mentor_profile,omitempty"`
	Mentee     *MenteeUpdate     `json:"mentee_profile,omitempty"`
	Scheduling *SchedulingUpdate `json:"scheduling,omitempty"`
}

// Step returns the step the populated variant belongs to, or an error when
// the update carries zero or multiple variants.
func (u StepUpdate) Step() (StepID, error) {
	var (
		step StepID
		n    int
	)
	if u.Basic != nil {
		step, n = StepBasic, n+1
	}
	if u.Mentor != nil {
		step, n = StepMentorProfile, n+1
	}
	if u.Mentee != nil {
		step, n = StepMenteeProfile, n+1
	}
	if u.Scheduling != nil {
		step, n = StepScheduling, n+1
	}
	if n != 1 {
		return "", fmt.Errorf("expected exactly one step update, got %d", n)
	}
	return step, nil
}
