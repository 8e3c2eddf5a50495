package registration

import (
	"steam-intake/internal/wizard/models"
	dErrors "steam-intake/pkg/domain-errors"
)

// SubmissionDefaults are the system-assigned fields every registration
// carries regardless of role. Kept as an explicit builder so the contract is
// visible and testable on its own.
type SubmissionDefaults struct {
	MatchPairIDs               []string `json:"match_pair_ids"`
	IsAvailableForMatching     bool     `json:"is_available_for_matching"`
	MentoringSessionsCompleted int      `json:"mentoring_sessions_completed"`
}

func Defaults() SubmissionDefaults {
	return SubmissionDefaults{
		MatchPairIDs:               []string{},
		IsAvailableForMatching:     true,
		MentoringSessionsCompleted: 0,
	}
}

// basePayload is the contact/demographic block shared by both roles. Field
// names follow the remote registration API, which mixes snake_case and
// camelCase.
type basePayload struct {
	Email               string   `json:"email"`
	Name                string   `json:"name"`
	AgeBracket          int      `json:"age_bracket"`
	PhoneNumber         string   `json:"phone_number"`
	AddressLine1        string   `json:"address_line_1"`
	City                string   `json:"city"`
	State               string   `json:"state"`
	Zipcode             string   `json:"zipcode"`
	Latitude            *float64 `json:"latitude"`
	Longitude           *float64 `json:"longitude"`
	Ethnicities         []int    `json:"ethnicities"`
	EthnicityPreference int      `json:"ethnicity_preference"`
	Gender              []int    `json:"gender"`
	GenderPreference    int      `json:"gender_preference"`
	Methods             []int    `json:"methods"`
	SessionPreferences  []int    `json:"sessionPreferences"`
	Role                string   `json:"role"`
}

// MentorPayload is the wire shape POSTed to /mentor/register.
type MentorPayload struct {
	basePayload
	SteamBackground   int      `json:"steamBackground"`
	AcademicLevel     int      `json:"academicLevel"`
	ProfessionalTitle string   `json:"professionalTitle"`
	CurrentEmployer   string   `json:"currentEmployer"`
	ReasonsForMentoring int    `json:"reasonsForMentoring"`
	WillingToAdvise   int      `json:"willingToAdvise"`
	Availability      []string `json:"availability"`
	UnavailableDates  string   `json:"unavailableDates"`
	SubmissionDefaults
}

// MenteePayload is the wire shape POSTed to /mentee/register. The reason and
// interest sets are heterogeneous on the wire: enumerated ids, plus the free
// "Other…" text appended verbatim when its sentinel is selected.
type MenteePayload struct {
	basePayload
	Grade               int      `json:"grade"`
	ReasonsForMentoring []any    `json:"reasons_for_mentoring"`
	Interests           []any    `json:"interests"`
	Availability        []string `json:"availability"`
	UnavailableDates    string   `json:"unavailableDates"`
	SubmissionDefaults
}

func base(rec *models.AnswerRecord) basePayload {
	return basePayload{
		Email:               rec.Email,
		Name:                rec.Name,
		AgeBracket:          rec.AgeBracket,
		PhoneNumber:         rec.PhoneNumber,
		AddressLine1:        rec.AddressLine1,
		City:                rec.City,
		State:               rec.State,
		Zipcode:             rec.Zipcode,
		Latitude:            rec.Latitude,
		Longitude:           rec.Longitude,
		Ethnicities:         rec.Ethnicities,
		EthnicityPreference: rec.EthnicityPreference,
		Gender:              rec.Genders,
		GenderPreference:    rec.GenderPreference,
		Methods:             rec.ContactMethods,
		SessionPreferences:  rec.SessionPreferences,
		Role:                string(rec.Role),
	}
}

// BuildMentor maps a completed record to the mentor wire shape.
func BuildMentor(rec *models.AnswerRecord) (*MentorPayload, error) {
	if rec.Role != models.RoleMentor {
		return nil, dErrors.New(dErrors.CodeBadRequest, "record does not belong to a mentor")
	}
	return &MentorPayload{
		basePayload:         base(rec),
		SteamBackground:     rec.Background,
		AcademicLevel:       rec.AcademicLevel,
		ProfessionalTitle:   rec.ProfessionalTitle,
		CurrentEmployer:     rec.CurrentEmployer,
		ReasonsForMentoring: rec.MentoringReason,
		WillingToAdvise:     rec.Capacity,
		Availability:        rec.Availability,
		UnavailableDates:    rec.BlackoutDates,
		SubmissionDefaults:  Defaults(),
	}, nil
}

// BuildMentee maps a completed record to the mentee wire shape, appending the
// "Other…" free text to its set when the sentinel id is selected.
func BuildMentee(rec *models.AnswerRecord) (*MenteePayload, error) {
	if rec.Role != models.RoleMentee {
		return nil, dErrors.New(dErrors.CodeBadRequest, "record does not belong to a mentee")
	}
	return &MenteePayload{
		basePayload:         base(rec),
		Grade:               rec.Grade,
		ReasonsForMentoring: withOther(rec.MenteeReasons, models.MenteeReasons.OtherID(), rec.MenteeReasonOther),
		Interests:           withOther(rec.Interests, models.Interests.OtherID(), rec.InterestOther),
		Availability:        rec.Availability,
		UnavailableDates:    rec.BlackoutDates,
		SubmissionDefaults:  Defaults(),
	}, nil
}

func withOther(set []int, otherID int, text string) []any {
	out := make([]any, 0, len(set)+1)
	hasOther := false
	for _, id := range set {
		out = append(out, id)
		if id == otherID {
			hasOther = true
		}
	}
	if hasOther && text != "" {
		out = append(out, text)
	}
	return out
}
