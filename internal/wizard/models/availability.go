package models

import (
	"fmt"
	"sort"
	"strings"
)

// Days and Timeslots define the weekly availability grid. A selected cell is
// encoded on the wire as "<Day>-<slot>", e.g. "Monday-7am to 9am".
var Days = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

var Timeslots = []string{
	"7am to 9am",
	"9am to 11am",
	"11am to 1pm",
	"1pm to 3pm",
	"3pm to 5pm",
	"5pm to 7pm",
	"7pm to 9pm",
}

// MinAvailability is the minimum number of grid cells a registrant must pick.
const MinAvailability = 3

var (
	dayIndex  = indexOf(Days)
	slotIndex = indexOf(Timeslots)
)

func indexOf(xs []string) map[string]int {
	m := make(map[string]int, len(xs))
	for i, x := range xs {
		m[x] = i
	}
	return m
}

// EncodeSlot returns the wire form of one grid cell.
func EncodeSlot(day, slot string) string {
	return day + "-" + slot
}

// DecodeSlot splits a wire-form cell back into day and timeslot. The slot
// labels themselves never contain a dash, so the first dash is the separator.
func DecodeSlot(s string) (day, slot string, err error) {
	i := strings.Index(s, "-")
	if i <= 0 || i == len(s)-1 {
		return "", "", fmt.Errorf("malformed availability slot %q", s)
	}
	day, slot = s[:i], s[i+1:]
	if _, ok := dayIndex[day]; !ok {
		return "", "", fmt.Errorf("unknown day in slot %q", s)
	}
	if _, ok := slotIndex[slot]; !ok {
		return "", "", fmt.Errorf("unknown timeslot in slot %q", s)
	}
	return day, slot, nil
}

// ValidSlot reports whether s encodes a cell of the grid.
func ValidSlot(s string) bool {
	_, _, err := DecodeSlot(s)
	return err == nil
}

// SortSlots orders encoded cells by day of week, then by timeslot, in place.
// Unknown entries sort last; callers validate before sorting.
func SortSlots(slots []string) {
	rank := func(s string) int {
		day, slot, err := DecodeSlot(s)
		if err != nil {
			return len(Days) * len(Timeslots)
		}
		return dayIndex[day]*len(Timeslots) + slotIndex[slot]
	}
	sort.SliceStable(slots, func(i, j int) bool { return rank(slots[i]) < rank(slots[j]) })
}
