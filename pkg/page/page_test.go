package page

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/podcastr/podcastr/pkg/format"
	"github.com/podcastr/podcastr/pkg/model"
)

var testCtx = context.Background()

func testDates(t *testing.T) *format.DateFormatter {
	dates, err := format.NewDateFormatter("pt-BR", "UTC")
	require.NoError(t, err)
	return dates
}

func testRawEpisode() *model.RawEpisode {
	return &model.RawEpisode{
		ID:          "ep1",
		Title:       "T",
		Members:     "M",
		Thumbnail:   "x.png",
		Description: "<p>d</p>",
		PublishedAt: "2021-01-05T00:00:00Z",
		File: &model.RawFile{
			Duration: "125",
			URL:      "a.mp3",
		},
	}
}
