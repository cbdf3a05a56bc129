package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	tghelpers "github.com/jarviz/jarvizbot/core/telegram/helpers"
)

var (
	amountCleanRe = regexp.MustCompile(`[^\d.\-]`)
	quickRe       = regexp.MustCompile(`^(?P<category>[\w-]+)\s+(?P<amount>[\d,]+(?:\.\d+)?)\s*(?P<rest>.*)$`)
	descFlagRe    = regexp.MustCompile(`--desc\s+"([^"]+)"`)
)

// ErrBadAmount is returned when user input cannot be read as a positive number.
var ErrBadAmount = fmt.Errorf("amount is not a number")

// ParseAmount reads a user-typed amount, tolerating currency symbols and
// thousands separators.
func ParseAmount(input string) (float64, error) {
	cleaned := amountCleanRe.ReplaceAllString(strings.TrimSpace(input), "")
	if cleaned == "" {
		return 0, ErrBadAmount
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || v <= 0 {
		return 0, ErrBadAmount
	}
	return v, nil
}

// ParseDate reads a user-typed date: keywords first, then common layouts.
// The result is truncated to a calendar day in UTC.
func ParseDate(input string, now time.Time) (time.Time, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	day := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
	switch s {
	case "", "today":
		return day(now), nil
	case "yesterday":
		return day(now.AddDate(0, 0, -1)), nil
	}
	if t, ok := tghelpers.ParseFlexibleDate(s); ok {
		return day(t), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", input)
}

// QuickEntry is the parsed form of "/quick <category> <amount> [free text] [--desc \"...\"]".
type QuickEntry struct {
	Category    string
	Amount      float64
	Date        time.Time
	Description string
}

// ParseQuick parses the /quick payload. The free text after the amount may
// carry a date; anything captured by --desc becomes the description.
func ParseQuick(payload string, now time.Time) (QuickEntry, error) {
	m := quickRe.FindStringSubmatch(strings.TrimSpace(payload))
	if m == nil {
		return QuickEntry{}, fmt.Errorf("quick entry must start with category and amount")
	}
	entry := QuickEntry{Category: m[1]}

	amount, err := strconv.ParseFloat(strings.ReplaceAll(m[2], ",", ""), 64)
	if err != nil || amount <= 0 {
		return QuickEntry{}, ErrBadAmount
	}
	entry.Amount = amount

	rest := strings.TrimSpace(m[3])
	if dm := descFlagRe.FindStringSubmatch(rest); dm != nil {
		entry.Description = dm[1]
		rest = strings.TrimSpace(strings.Replace(rest, dm[0], "", 1))
	}

	if d, err := ParseDate(rest, now); err == nil {
		entry.Date = d
	} else {
		// Free text that is not a date is ignored, the entry lands on today.
		entry.Date, _ = ParseDate("today", now)
	}
	return entry, nil
}
