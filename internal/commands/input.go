package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/tallyhq/tally/internal/categories"
	"github.com/tallyhq/tally/internal/model"
)

// Input-collection boundary checks. The store trusts what arrives here, so
// the future-date rule, the amount cap, and the fixed category set are all
// enforced at this layer.

const maxAmount = 999_999_999

const dateFormat = "2006-01-02"

func parseType(s string) (model.Type, error) {
	t := model.Type(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("type must be %q or %q, got %q", model.TypeIncome, model.TypeExpense, s)
	}
	return t, nil
}

func checkAmount(a float64) error {
	if !(a > 0) {
		return fmt.Errorf("amount must be greater than 0")
	}
	if a > maxAmount {
		return fmt.Errorf("amount is too large (max %d)", maxAmount)
	}
	return nil
}

func parseDate(s string, now time.Time) (time.Time, error) {
	d, err := time.Parse(dateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q (want YYYY-MM-DD): %w", s, err)
	}
	endOfToday := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, time.UTC)
	if d.After(endOfToday) {
		return time.Time{}, fmt.Errorf("date %s cannot be in the future", s)
	}
	return d, nil
}

// resolveCategory maps user input onto the configured set. Empty stays
// empty: Add lets the store default it, Update lets the store reject it.
func resolveCategory(cats *categories.Set, name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", nil
	}
	c, ok := cats.Canonical(name)
	if !ok {
		return "", fmt.Errorf("unknown category %q (choose from: %s)", name, strings.Join(cats.All(), ", "))
	}
	return c, nil
}
