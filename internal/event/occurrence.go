package event

import (
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

// EventDetail is the public event page payload: the record plus the
// resolved next occurrence, which for recurring events is usually later
// than the stored start.
type EventDetail struct {
	Event
	NextOccurrence *time.Time `json:"next_occurrence,omitempty"`
}

// Detail resolves the event's next occurrence relative to "from".
func (e *Event) Detail(from time.Time) EventDetail {
	detail := EventDetail{Event: *e}
	if next, ok := e.NextOccurrence(from); ok {
		detail.NextOccurrence = &next
	}
	return detail
}

var weekdays = map[string]rrule.Weekday{
	"monday":    rrule.MO,
	"tuesday":   rrule.TU,
	"wednesday": rrule.WE,
	"thursday":  rrule.TH,
	"friday":    rrule.FR,
	"saturday":  rrule.SA,
	"sunday":    rrule.SU,
}

// NextOccurrence returns the first occurrence of the event strictly after
// "from". For one-off events that is the start time itself; for recurring
// events the recurrence rule is expanded from the schedule pair.
func (e *Event) NextOccurrence(from time.Time) (time.Time, bool) {
	if !e.IsRecurring {
		if e.StartDatetime.After(from) {
			return e.StartDatetime, true
		}
		return time.Time{}, false
	}

	sched := e.Schedule()
	if sched == nil {
		return time.Time{}, false
	}

	var freq rrule.Frequency
	switch strings.ToLower(sched.Frequency) {
	case "weekly":
		freq = rrule.WEEKLY
	case "monthly":
		freq = rrule.MONTHLY
	default:
		return time.Time{}, false
	}

	opt := rrule.ROption{
		Freq:    freq,
		Dtstart: e.StartDatetime.UTC(),
	}
	if day, ok := weekdays[strings.ToLower(sched.Day)]; ok {
		opt.Byweekday = []rrule.Weekday{day}
	}

	rule, err := rrule.NewRRule(opt)
	if err != nil {
		return time.Time{}, false
	}

	next := rule.After(from, false)
	if next.IsZero() {
		return time.Time{}, false
	}
	return next, true
}
