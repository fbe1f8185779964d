package kernel

import (
	"sync/atomic"
	"time"

	"walt/internal/pkg/errs"
)

const (
	// HourOfDayMin is the first hour of a calendar day.
	HourOfDayMin HourOfDay = 0
	// HourOfDayMax is the last hour of a calendar day.
	HourOfDayMax HourOfDay = 23
)

// HourOfDay is the hour field (0-23) of a delivery time on the delivery
// calendar. Driver scheduling works on this field only: the date is ignored,
// so two deliveries exactly one day apart occupy the same slot.
type HourOfDay int

var calendar atomic.Pointer[time.Location]

// SetCalendar sets the location whose wall clock decides delivery hours.
// A nil location restores the default, time.Local.
func SetCalendar(loc *time.Location) {
	calendar.Store(loc)
}

// Calendar returns the location delivery hours are read in.
func Calendar() *time.Location {
	if loc := calendar.Load(); loc != nil {
		return loc
	}
	return time.Local
}

// HourOf extracts the hour field of t on the delivery calendar. The offset t
// was written with does not matter: one instant always falls into one slot.
func HourOf(t time.Time) HourOfDay {
	return HourOfDay(t.In(Calendar()).Hour())
}

// NewHourOfDay validates an hour read back from storage.
func NewHourOfDay(h int) (HourOfDay, error) {
	hour := HourOfDay(h)
	if hour < HourOfDayMin || hour > HourOfDayMax {
		return 0, errs.NewValueIsOutOfRangeError("hour", h, HourOfDayMin, HourOfDayMax)
	}
	return hour, nil
}

// ConflictsWith reports whether a driver busy at h is busy at other.
// The window is h < other+1 && other < h+1, which for whole hours means equality.
func (h HourOfDay) ConflictsWith(other HourOfDay) bool {
	return h < other+1 && other < h+1
}

// Int returns the hour as a plain int, for persistence.
func (h HourOfDay) Int() int {
	return int(h)
}
