// Package filter narrows transaction lists by search term and date range.
// It composes over the aggregation engine's type partitions; it never
// touches the store directly.
package filter

import (
	"strings"
	"time"

	"github.com/tallyhq/tally/internal/model"
)

// Mode selects a date-range preset.
type Mode string

const (
	ModeAll    Mode = "all"
	ModeToday  Mode = "today"
	ModeWeek   Mode = "week" // current week, starting Sunday
	ModeMonth  Mode = "month"
	ModeYear   Mode = "year"
	ModeCustom Mode = "custom"
)

// ParseMode validates a mode name from user input.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeAll, ModeToday, ModeWeek, ModeMonth, ModeYear, ModeCustom:
		return Mode(s), true
	}
	return "", false
}

// Params describes one filter evaluation. Search matches case-insensitively
// against description and category; an empty term matches everything.
// Start/End bound custom ranges inclusively; if either is zero, a custom
// range degrades to all.
type Params struct {
	Search string
	Mode   Mode
	Start  time.Time
	End    time.Time
}

// Apply returns the transactions passing both the text and date predicates,
// preserving order. Preset windows are anchored on now at each call, never
// stored.
func Apply(txs []model.Transaction, p Params, now time.Time) []model.Transaction {
	start, end, bounded := window(p, now)
	term := strings.ToLower(strings.TrimSpace(p.Search))

	var out []model.Transaction
	for _, tx := range txs {
		if term != "" && !matches(tx, term) {
			continue
		}
		if bounded && (tx.Date.Before(start) || tx.Date.After(end)) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

func matches(tx model.Transaction, term string) bool {
	return strings.Contains(strings.ToLower(tx.Description), term) ||
		strings.Contains(strings.ToLower(tx.Category), term)
}

// window computes the inclusive [start, end] day bounds for p. bounded is
// false when no date filtering applies.
func window(p Params, now time.Time) (start, end time.Time, bounded bool) {
	today := day(now)
	switch p.Mode {
	case ModeToday:
		return today, today.AddDate(0, 0, 1).Add(-time.Nanosecond), true
	case ModeWeek:
		start = today.AddDate(0, 0, -int(today.Weekday()))
		return start, start.AddDate(0, 0, 7).Add(-time.Nanosecond), true
	case ModeMonth:
		start = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return start, start.AddDate(0, 1, 0).Add(-time.Nanosecond), true
	case ModeYear:
		start = time.Date(today.Year(), 1, 1, 0, 0, 0, 0, today.Location())
		return start, start.AddDate(1, 0, 0).Add(-time.Nanosecond), true
	case ModeCustom:
		if p.Start.IsZero() || p.End.IsZero() {
			return time.Time{}, time.Time{}, false
		}
		return day(p.Start), day(p.End).AddDate(0, 0, 1).Add(-time.Nanosecond), true
	default:
		return time.Time{}, time.Time{}, false
	}
}

func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
