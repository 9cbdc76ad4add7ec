package format

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

// Short month names as printed by the "MMM" token.
var shortMonths = map[language.Tag][12]string{
	language.BrazilianPortuguese: {"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"},
	language.English:             {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
}

var (
	supported = []language.Tag{language.BrazilianPortuguese, language.English}
	matcher   = language.NewMatcher(supported)
)

// Layouts accepted for upstream timestamps, tried in order. The zone-less
// ones are interpreted in the formatter location. Fractional seconds are
// accepted by every layout with seconds.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05Z07",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04Z0700",
	"2006-01-02T15:04",
	"2006-01-02",
}

// DateFormatter renders ISO timestamps as "d MMM yy" (e.g. "15 mar 21").
type DateFormatter struct {
	months   [12]string
	location *time.Location
}

// NewDateFormatter creates a formatter for the given BCP 47 locale and IANA
// time zone. Unsupported locales fall back to the closest supported one.
func NewDateFormatter(locale string, timezone string) (*DateFormatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid locale %q", locale)
	}

	_, index, _ := matcher.Match(tag)

	location, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid time zone %q", timezone)
	}

	return &DateFormatter{
		months:   shortMonths[supported[index]],
		location: location,
	}, nil
}

// Parse reads an ISO 8601 timestamp.
// The date and time may be separated by a space instead of "T", as in
// "2021-01-22 19:00:00".
func (f *DateFormatter) Parse(value string) (time.Time, error) {
	normalized := value
	if len(value) > 10 && value[10] == ' ' {
		normalized = value[:10] + "T" + value[11:]
	}

	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, normalized, f.location); err == nil {
			return t, nil
		}
	}

	return time.Time{}, errors.Errorf("invalid timestamp %q", value)
}

// Format parses an ISO timestamp and renders it as "d MMM yy".
func (f *DateFormatter) Format(value string) (string, error) {
	t, err := f.Parse(value)
	if err != nil {
		return "", err
	}

	return f.FormatTime(t), nil
}

func (f *DateFormatter) FormatTime(t time.Time) string {
	t = t.In(f.location)
	return fmt.Sprintf("%d %s %02d", t.Day(), f.months[t.Month()-1], t.Year()%100)
}
