package models

// Option is one entry of an enumerated question. IDs are stable wire values;
// the "Other…" escape, where present, always carries the highest ID of its set.
type Option struct {
	ID    int
	Label string
}

// OptionSet is an ordered enumeration of options for one question.
type OptionSet []Option

// Valid reports whether id names an option in the set.
func (s OptionSet) Valid(id int) bool {
	for _, o := range s {
		if o.ID == id {
			return true
		}
	}
	return false
}

// OtherID returns the highest ID in the set, which by convention is the
// "Other…" sentinel for sets that carry one.
func (s OptionSet) OtherID() int {
	max := 0
	for _, o := range s {
		if o.ID > max {
			max = o.ID
		}
	}
	return max
}

// Label returns the label for id, or "" when id is not in the set.
func (s OptionSet) Label(id int) string {
	for _, o := range s {
		if o.ID == id {
			return o.Label
		}
	}
	return ""
}

var AgeBrackets = OptionSet{
	{1, "9-13"}, {2, "13-18"}, {3, "18-22"}, {4, "22-30"},
	{5, "30-40"}, {6, "40-50"}, {7, "50-60"}, {8, "60+"},
}

var Ethnicities = OptionSet{
	{1, "American Indian or Alaska Native"},
	{2, "Asian: Includes Chinese, Japanese, Filipino, Korean, South Asian, and Vietnamese"},
	{3, "South Asian: Includes Indian, Pakistan, Sri Lankan, Bangaladesh"},
	{4, "Black or African American: Includes Jamaican, Nigerian, Haitian, and Ethiopian"},
	{5, "Hispanic or Latino: Includes Puerto Rican, Mexican, Cuban, Salvadoran, and Colombian"},
	{6, "Middle Eastern or North African: Includes Lebanese, Iranian, Egyptian, Moroccan, Israeli, and Palestinian"},
	{7, "Native Hawaiian or Pacific Islander: Includes Samoan, Guamanian, Chamorro, and Tongan"},
	{8, "White or European: Includes German, Irish, English, Italian, Polish, and French"},
	{9, "Other…"},
}

// MatchPreferences is shared by the ethnicity and gender matching questions.
var MatchPreferences = OptionSet{
	{1, "Prefer ONLY to be matched within that similarity"},
	{2, "Prefer it, but available to others as needed"},
	{3, "Prefer NOT to be matched within that similarity"},
	{4, "Do not have a preference. Either is fine."},
	{5, "Other…"},
}

var Genders = OptionSet{
	{1, "Cisgender Male"},
	{2, "Cisgender Female"},
	{3, "Transgender Male"},
	{4, "Transgender Female"},
	{5, "Prefer not to disclose"},
	{6, "Other…"},
}

var ContactMethods = OptionSet{
	{1, "Web Conference (i.e. Zoom Conference)"},
	{2, "In Person"},
	{3, "Hybrid (Both In Person and web)"},
	{4, "Other..."},
}

var SessionTypePreferences = OptionSet{
	{1, "Homework Help"},
	{2, "Exposure to STEAM in general"},
	{3, "College guidance"},
	{4, "Career guidance"},
	{5, "Explore a particular field"},
	{6, "Other: text"},
}

var MentorBackgrounds = OptionSet{
	{1, "Professional"},
	{2, "Student"},
}

var AcademicLevels = OptionSet{
	{1, "High School Freshman"},
	{2, "High School Sophomore"},
	{3, "High School Junior"},
	{4, "High School Senior"},
	{5, "College Undergraduate"},
	{6, "Graduate School"},
	{7, "Graduated / Working Professional"},
}

var MentoringReasons = OptionSet{
	{1, "Give back to community"},
	{2, "Volunteer hours"},
	{3, "Other"},
}

var Grades = OptionSet{
	{1, "5th grade"}, {2, "6th grade"}, {3, "7th grade"}, {4, "8th grade"},
	{5, "9th grade"}, {6, "10th grade"}, {7, "11th grade"}, {8, "12th grade"},
	{9, "College Freshman"}, {10, "College Sophomore"}, {11, "College Junior"},
	{12, "College Senior"}, {13, "Graduate Student"},
}

var MenteeReasons = OptionSet{
	{1, "Career Exploration"},
	{2, "Do better in school"},
	{3, "Learn about STEAM"},
	{4, "Other…"},
}

var Interests = OptionSet{
	{1, "Science"}, {2, "Dance"}, {3, "Math"}, {4, "Music"},
	{5, "Building"}, {6, "Robotics"}, {7, "Art"}, {8, "Other…"},
}

// StateCodes is the fixed set of accepted two-letter state codes (50 states
// plus DC).
var StateCodes = map[string]string{
	"AL": "Alabama", "AK": "Alaska", "AZ": "Arizona", "AR": "Arkansas",
	"CA": "California", "CO": "Colorado", "CT": "Connecticut",
	"DC": "District of Columbia", "DE": "Delaware", "FL": "Florida",
	"GA": "Georgia", "HI": "Hawaii", "ID": "Idaho", "IL": "Illinois",
	"IN": "Indiana", "IA": "Iowa", "KS": "Kansas", "KY": "Kentucky",
	"LA": "Louisiana", "ME": "Maine", "MD": "Maryland", "MA": "Massachussetts",
	"MI": "Michigan", "MN": "Minnesota", "MS": "Mississippi", "MO": "Missouri",
	"MT": "Montana", "NE": "Nebraska", "NV": "Nevada", "NY": "New York",
	"NC": "North Carolina", "ND": "North Dakota", "OH": "Ohio",
	"OK": "Oklahoma", "OR": "Oregon", "PA": "Pennsylvania",
	"RI": "Rhode Island", "SC": "South Carolina", "SD": "South Dakota",
	"TN": "Tennessee", "TX": "Texas", "VT": "Vermont", "VA": "Virginia",
	"WA": "Washington", "WV": "West Virginia", "WI": "Wisconsin",
	"WY": "Wyoming",
}

func ValidStateCode(code string) bool {
	_, ok := StateCodes[code]
	return ok
}

// Toggle flips membership of id in a choice set, preserving the order of the
// remaining selections. Toggling twice restores the original set.
func Toggle(set []int, id int) []int {
	for i, v := range set {
		if v == id {
			return append(append([]int{}, set[:i]...), set[i+1:]...)
		}
	}
	return append(append([]int{}, set...), id)
}

// NormalizeChoices validates every id against opts and drops duplicates while
// keeping first-seen order.
func NormalizeChoices(set []int, opts OptionSet) ([]int, bool) {
	seen := make(map[int]struct{}, len(set))
	out := make([]int, 0, len(set))
	for _, id := range set {
		if !opts.Valid(id) {
			return nil, false
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, true
}
