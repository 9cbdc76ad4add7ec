package model

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Episode is the record a page is rendered from.
// DurationAsString and PublishedAt are derived from Duration and the upstream
// publish timestamp and are only ever filled in together with them.
type Episode struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Thumbnail        string `json:"thumbnail"`
	Members          string `json:"members"`
	Duration         int64  `json:"duration"`
	DurationAsString string `json:"durationAsString"`
	URL              string `json:"url"`
	PublishedAt      string `json:"publishedAt"`
	// Description is trusted markup, inserted into the page verbatim.
	Description string `json:"description"`
}

// RawEpisode is an episode as returned by the upstream API.
type RawEpisode struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Members     string   `json:"members"`
	PublishedAt string   `json:"published_at"`
	Thumbnail   string   `json:"thumbnail"`
	Description string   `json:"description"`
	File        *RawFile `json:"file"`
}

type RawFile struct {
	URL      string        `json:"url"`
	Type     string        `json:"type"`
	Duration NumericString `json:"duration"`
}

// NumericString is a number that upstream may send either as a JSON number or
// as a string holding one.
type NumericString string

func (n *NumericString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = ""
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = NumericString(s)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return errors.Wrap(err, "duration is neither a string nor a number")
	}

	*n = NumericString(num.String())
	return nil
}

// Seconds converts the value to whole seconds. Fractions are truncated.
func (n NumericString) Seconds() (int64, error) {
	if n == "" {
		return 0, errors.Wrap(ErrMalformed, "empty duration")
	}

	if v, err := strconv.ParseInt(string(n), 10, 64); err == nil {
		if v < 0 {
			return 0, errors.Wrapf(ErrMalformed, "negative duration %q", string(n))
		}
		return v, nil
	}

	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil || f < 0 {
		return 0, errors.Wrapf(ErrMalformed, "invalid duration %q", string(n))
	}

	return int64(f), nil
}

// Page is a rendered episode page together with its cache metadata.
type Page struct {
	Slug        string
	Episode     *Episode
	HTML        []byte
	GeneratedAt time.Time
	Revalidate  time.Duration
}

// Stale reports whether the page is past its revalidation window at now.
func (p *Page) Stale(now time.Time) bool {
	return now.Sub(p.GeneratedAt) >= p.Revalidate
}
