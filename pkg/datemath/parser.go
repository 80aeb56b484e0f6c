package datemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ISODate is the layout of absolute dates accepted by Parse.
const ISODate = "2006-01-02"

var (
	ErrUnrecognized = errors.New("unrecognized date expression")

	inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

	weekdays = map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}
)

// Parser converts date expressions to calendar days in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/Berlin"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Today returns midnight of now's calendar day in the parser's timezone.
func (p *Parser) Today(now time.Time) time.Time {
	return p.startOfDay(now)
}

// Parse converts an ISO date (YYYY-MM-DD) or a relative expression such as
// "tomorrow", "in 3 days" or "next friday" to midnight of that day.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(expr string, baseTime time.Time) (time.Time, error) {
	expr = strings.ToLower(strings.TrimSpace(expr))

	if d, err := time.ParseInLocation(ISODate, expr, p.location); err == nil {
		return d, nil
	}

	switch expr {
	case "today":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	// Handle "in X days/weeks/months"
	if strings.HasPrefix(expr, "in ") {
		return p.parseInDuration(expr, baseTime)
	}

	// Handle "next <weekday>"
	if strings.HasPrefix(expr, "next ") {
		return p.parseNextWeekday(expr, baseTime)
	}

	return baseTime, fmt.Errorf("%w: %q", ErrUnrecognized, expr)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(expr string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(expr)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("%w: invalid duration %q", ErrUnrecognized, expr)
	}

	amount, _ := strconv.Atoi(matches[1])
	base := baseTime.In(p.location)

	switch unit := matches[2]; {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(base.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(base.AddDate(0, 0, amount*7)), nil
	default:
		return p.startOfDay(base.AddDate(0, amount, 0)), nil
	}
}

// parseNextWeekday handles patterns like "next monday", "next friday".
// The same weekday as today means one week ahead.
func (p *Parser) parseNextWeekday(expr string, baseTime time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(expr, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("%w: unknown weekday %q", ErrUnrecognized, dayName)
	}

	base := baseTime.In(p.location)
	daysUntil := int(targetWeekday - base.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.startOfDay(base.AddDate(0, 0, daysUntil)), nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
