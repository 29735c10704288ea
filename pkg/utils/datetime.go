package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/locales/en"
)

var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
	"2006-01-02",
}

// displayLocation is where zoneless form input is read and where show times
// are rendered. It is set once at startup.
var displayLocation = time.UTC

// SetTimezone sets the display location by IANA name, or "Local".
func SetTimezone(name string) error {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", name, err)
	}
	displayLocation = loc
	return nil
}

func DisplayLocation() *time.Location {
	return displayLocation
}

// ParseTimestamp accepts the formats the show form and its date picker send.
// Values without a zone are read in the display location.
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, value, displayLocation); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", value)
}

var english = en.New()

// FormatDateTime renders t in the display location. format is "full" or
// "medium"; any other value falls back to medium.
func FormatDateTime(t time.Time, format string) string {
	if t.IsZero() {
		return ""
	}

	t = t.In(displayLocation)
	clock := strings.ToUpper(english.FmtTimeShort(t))

	switch format {
	case "full":
		return english.FmtDateFull(t) + " at " + clock
	default:
		return english.FmtDateMedium(t) + " " + clock
	}
}
