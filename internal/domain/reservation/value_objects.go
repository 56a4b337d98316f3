package reservation

import (
	"errors"
	"time"
)

// PickupWindow is the interval during which the holder may collect the
// reserved units. After the window lapses the reservation is sweepable.
type PickupWindow struct {
	start time.Time
	end   time.Time
}

func NewPickupWindow(start, end time.Time) (PickupWindow, error) {
	if !start.Before(end) {
		return PickupWindow{}, errors.New("pickup start must be before pickup end")
	}
	return PickupWindow{start: start, end: end}, nil
}

// DefaultPickupWindow derives the audience-specific window from the
// configured lead time and length.
func DefaultPickupWindow(now time.Time, lead, length time.Duration) PickupWindow {
	start := now.Add(lead)
	return PickupWindow{start: start, end: start.Add(length)}
}

func (w PickupWindow) Start() time.Time {
	return w.start
}

func (w PickupWindow) End() time.Time {
	return w.end
}

func (w PickupWindow) HasLapsed(now time.Time) bool {
	return w.end.Before(now)
}

func (w PickupWindow) Duration() time.Duration {
	return w.end.Sub(w.start)
}
