package reviews

import (
	"testing"

	"github.com/stretchr/testify/assert"

	corereviews "github.com/colonyops/reel/internal/core/reviews"
)

func TestDetailMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		record   corereviews.Record
		contains []string
		excludes []string
	}{
		{
			name: "both reviewers with a re-rating",
			record: corereviews.Record{
				Title: "Alien",
				Primary: corereviews.Opinion{
					Rating:         corereviews.Score(8),
					Notes:          "Tense.",
					RevisedRating:  corereviews.Score(9),
					RevisionReason: "Better on a rewatch.",
				},
				Secondary: corereviews.Opinion{Rating: corereviews.Absent(), Notes: "Scary."},
			},
			contains: []string{
				"# Alien",
				"## Ben's Rating: 8",
				"### Re-rating: 9",
				"Better on a rewatch.",
				"## Laza's Rating: N/A",
				"Scary.",
			},
			excludes: []string{noReviewText},
		},
		{
			name: "rating without notes is not a review",
			record: corereviews.Record{
				Title:   "Heat",
				Primary: corereviews.Opinion{Rating: corereviews.Score(7), Notes: "   "},
			},
			contains: []string{"# Heat", noReviewText},
			excludes: []string{"Ben's Rating"},
		},
		{
			name: "re-rating hidden when absent",
			record: corereviews.Record{
				Title:   "Brazil",
				Primary: corereviews.Opinion{Rating: corereviews.Score(0), Notes: "Odd."},
			},
			contains: []string{"## Ben's Rating: 0"},
			excludes: []string{"Re-rating", "Laza"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md := DetailMarkdown(tt.record, testNames)
			for _, s := range tt.contains {
				assert.Contains(t, md, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, md, s)
			}
		})
	}
}

func TestRenderMarkdown_StripsDecoration(t *testing.T) {
	out := RenderMarkdown("# Title\n\nbody text\n", 60)
	assert.Contains(t, out, "body text")
	assert.NotEqual(t, '\n', rune(out[0]))
}

func TestStripDecorative(t *testing.T) {
	in := "\n────\ncontent\n----\n"
	assert.Equal(t, "content\n----\n", stripLeadingDecorative(in))
	assert.Equal(t, "\n────\ncontent", stripTrailingDecorative(in))
}
