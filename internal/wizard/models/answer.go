package models

import (
	"time"

	"github.com/google/uuid"
)

// AnswerRecord accumulates every questionnaire field for one wizard session.
// It is owned by the wizard service; steps hand back typed updates and never
// hold their own copy. Single-choice fields use 0 for "not answered";
// latitude/longitude are set only by a successful address lookup.
type AnswerRecord struct {
	// Basic page.
	Email              string   `json:"email"`
	Name               string   `json:"name"`
	AgeBracket         int      `json:"age_bracket"`
	PhoneNumber        string   `json:"phone_number"`
	AddressLine1       string   `json:"address_line_1"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Zipcode            string   `json:"zipcode"`
	Latitude           *float64 `json:"latitude"`
	Longitude          *float64 `json:"longitude"`
	Ethnicities        []int    `json:"ethnicities"`
	EthnicityPreference int     `json:"ethnicity_preference"`
	Genders            []int    `json:"genders"`
	GenderPreference   int      `json:"gender_preference"`
	ContactMethods     []int    `json:"contact_methods"`
	SessionPreferences []int    `json:"session_preferences"`
	Role               Role     `json:"role"`

	// Mentor profile page.
	Background        int    `json:"background"`
	AcademicLevel     int    `json:"academic_level"`
	ProfessionalTitle string `json:"professional_title"`
	CurrentEmployer   string `json:"current_employer"`
	MentoringReason   int    `json:"mentoring_reason"`
	Capacity          int    `json:"capacity"`

	// Mentee profile page.
	Grade             int    `json:"grade"`
	MenteeReasons     []int  `json:"mentee_reasons"`
	MenteeReasonOther string `json:"mentee_reason_other"`
	Interests         []int  `json:"interests"`
	InterestOther     string `json:"interest_other"`

	// Scheduling page.
	Availability  []string `json:"availability"`
	BlackoutDates string   `json:"blackout_dates"`
}

// NewAnswerRecord returns an empty record with field defaults applied.
func NewAnswerRecord() *AnswerRecord {
	return &AnswerRecord{
		Ethnicities:        []int{},
		Genders:            []int{},
		ContactMethods:     []int{},
		SessionPreferences: []int{},
		MenteeReasons:      []int{},
		Interests:          []int{},
		Availability:       []string{},
		Capacity:           1,
	}
}

// HasCoordinates reports whether the address has been resolved.
func (a *AnswerRecord) HasCoordinates() bool {
	return a.Latitude != nil && a.Longitude != nil
}

// ClearCoordinates drops a previously resolved pair; called whenever any of
// the address fields change so a stale resolution never reaches submission.
func (a *AnswerRecord) ClearCoordinates() {
	a.Latitude = nil
	a.Longitude = nil
}

// WizardSession is one in-flight wizard walk, keyed by the authenticated user.
type WizardSession struct {
	ID        uuid.UUID     `json:"id"`
	UserID    uuid.UUID     `json:"user_id"`
	Step      StepID        `json:"step"`
	Answers   *AnswerRecord `json:"answers"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
