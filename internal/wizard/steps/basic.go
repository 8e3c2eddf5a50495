package steps

import (
	"regexp"

	"github.com/asaskevich/govalidator"

	"steam-intake/internal/wizard/models"
	dErrors "steam-intake/pkg/domain-errors"
)

var zipPattern = regexp.MustCompile(`^\d{5}$`)

// ValidateBasic runs the first page's local validation against an incoming
// update. Email is the only hard requirement; everything else is checked
// only when present.
func ValidateBasic(rec *models.AnswerRecord, u models.BasicUpdate) error {
	if u.Email == "" {
		return dErrors.New(dErrors.CodeValidation, "email is required")
	}
	if !govalidator.IsEmail(u.Email) {
		return dErrors.New(dErrors.CodeValidation, "email is not valid")
	}
	if u.State != "" && !models.ValidStateCode(u.State) {
		return dErrors.New(dErrors.CodeValidation, "state must be a two-letter US state code")
	}
	if u.Zipcode != "" && !zipPattern.MatchString(u.Zipcode) {
		return dErrors.New(dErrors.CodeValidation, "zip code must be 5 digits")
	}
	if u.AgeBracket != 0 && !models.AgeBrackets.Valid(u.AgeBracket) {
		return dErrors.New(dErrors.CodeValidation, "unknown age bracket")
	}
	if u.EthnicityPreference != 0 && !models.MatchPreferences.Valid(u.EthnicityPreference) {
		return dErrors.New(dErrors.CodeValidation, "unknown ethnicity matching preference")
	}
	if u.GenderPreference != 0 && !models.MatchPreferences.Valid(u.GenderPreference) {
		return dErrors.New(dErrors.CodeValidation, "unknown gender matching preference")
	}
	if _, ok := models.NormalizeChoices(u.Ethnicities, models.Ethnicities); !ok {
		return dErrors.New(dErrors.CodeValidation, "unknown ethnicity selection")
	}
	if _, ok := models.NormalizeChoices(u.Genders, models.Genders); !ok {
		return dErrors.New(dErrors.CodeValidation, "unknown gender selection")
	}
	if _, ok := models.NormalizeChoices(u.ContactMethods, models.ContactMethods); !ok {
		return dErrors.New(dErrors.CodeValidation, "unknown contact method selection")
	}
	if _, ok := models.NormalizeChoices(u.SessionPreferences, models.SessionTypePreferences); !ok {
		return dErrors.New(dErrors.CodeValidation, "unknown session preference selection")
	}
	if u.Role != "" {
		if !u.Role.Valid() {
			return dErrors.New(dErrors.CodeValidation, "role must be mentor or mentee")
		}
		if rec.Role != "" && rec.Role != u.Role {
			return dErrors.New(dErrors.CodeValidation, "role cannot be changed once selected")
		}
	}
	return nil
}

// ApplyBasic merges a validated first-page update into the record. It reports
// whether the address triple changed, which forces re-resolution of the
// stored coordinates before the step may advance again.
func ApplyBasic(rec *models.AnswerRecord, u models.BasicUpdate) (addressChanged bool) {
	addressChanged = u.AddressLine1 != rec.AddressLine1 ||
		u.City != rec.City ||
		u.State != rec.State ||
		u.Zipcode != rec.Zipcode

	rec.Email = u.Email
	rec.Name = u.Name
	rec.AgeBracket = u.AgeBracket
	rec.PhoneNumber = u.PhoneNumber
	rec.AddressLine1 = u.AddressLine1
	rec.City = u.City
	rec.State = u.State
	rec.Zipcode = u.Zipcode
	rec.Ethnicities, _ = models.NormalizeChoices(u.Ethnicities, models.Ethnicities)
	rec.EthnicityPreference = u.EthnicityPreference
	rec.Genders, _ = models.NormalizeChoices(u.Genders, models.Genders)
	rec.GenderPreference = u.GenderPreference
	rec.ContactMethods, _ = models.NormalizeChoices(u.ContactMethods, models.ContactMethods)
	rec.SessionPreferences, _ = models.NormalizeChoices(u.SessionPreferences, models.SessionTypePreferences)
	if u.Role != "" {
		rec.Role = u.Role
	}

	if addressChanged {
		rec.ClearCoordinates()
	}
	return addressChanged
}
