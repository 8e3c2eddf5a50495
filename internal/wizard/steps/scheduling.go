package steps

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"steam-intake/internal/wizard/models"
	dErrors "steam-intake/pkg/domain-errors"
)

var blackoutToken = regexp.MustCompile(`^(\d{8})(?:-(\d{8}))?$`)

// ParseBlackoutDates validates the blackout mini-grammar: comma-separated
// tokens, each an 8-digit date (YYYYMMDD) or a dash-joined range of two. The
// text is otherwise stored opaque. Empty input is fine.
func ParseBlackoutDates(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	for _, raw := range strings.Split(s, ",") {
		tok := strings.TrimSpace(raw)
		m := blackoutToken.FindStringSubmatch(tok)
		if m == nil {
			return fmt.Errorf("malformed blackout token %q", tok)
		}
		if _, err := time.Parse("20060102", m[1]); err != nil {
			return fmt.Errorf("invalid date in blackout token %q", tok)
		}
		if m[2] != "" {
			if _, err := time.Parse("20060102", m[2]); err != nil {
				return fmt.Errorf("invalid date in blackout token %q", tok)
			}
		}
	}
	return nil
}

// ValidateScheduling checks the final page: the availability grid must carry
// at least MinAvailability cells, every cell must name a real day/timeslot,
// and the blackout text must parse.
func ValidateScheduling(u models.SchedulingUpdate) error {
	if len(u.Availability) < models.MinAvailability {
		return dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("select at least %d availability slots", models.MinAvailability))
	}
	seen := make(map[string]struct{}, len(u.Availability))
	for _, slot := range u.Availability {
		if !models.ValidSlot(slot) {
			return dErrors.New(dErrors.CodeValidation, "unknown availability slot "+slot)
		}
		if _, dup := seen[slot]; dup {
			return dErrors.New(dErrors.CodeValidation, "duplicate availability slot "+slot)
		}
		seen[slot] = struct{}{}
	}
	if err := ParseBlackoutDates(u.BlackoutDates); err != nil {
		return dErrors.New(dErrors.CodeValidation, err.Error())
	}
	return nil
}

// ApplyScheduling merges the final page; availability is stored sorted by
// day then timeslot so snapshots and exports are deterministic.
func ApplyScheduling(rec *models.AnswerRecord, u models.SchedulingUpdate) {
	slots := append([]string{}, u.Availability...)
	models.SortSlots(slots)
	rec.Availability = slots
	rec.BlackoutDates = u.BlackoutDates
}
