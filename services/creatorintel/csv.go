package creatorintel

import (
	"encoding/csv"
	"io"
	"strconv"

	"instacreators-backend/lib/engagement"
)

// Floats are written with fixed 2-decimal rounding so diffs between runs stay
// readable; internal computation keeps full precision.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatVerdict(pass bool) string {
	if pass {
		return "Pass"
	}
	return "Fail"
}

// WritePostsCSV renders the flat per-post table.
func WritePostsCSV(w io.Writer, posts []engagement.PostMetrics) error {
	out := csv.NewWriter(w)
	err := out.Write([]string{
		"creator_handle",
		"post_url",
		"total_comments",
		"text_percentage",
		"emoji_percentage",
		"mixed_percentage",
		"unique_commenters_ratio",
		"EQS",
		"pass",
	})
	if err != nil {
		return err
	}
	for _, p := range posts {
		err = out.Write([]string{
			p.CreatorHandle,
			p.PostURL,
			strconv.Itoa(p.TotalComments),
			formatFloat(p.TextPercentage),
			formatFloat(p.EmojiPercentage),
			formatFloat(p.MixedPercentage),
			formatFloat(p.UniqueCommentersRatio),
			formatFloat(p.EQS),
			formatVerdict(p.Pass),
		})
		if err != nil {
			return err
		}
	}
	out.Flush()
	return out.Error()
}

// WriteCreatorsCSV renders the per-creator rollup table.
func WriteCreatorsCSV(w io.Writer, creators []engagement.CreatorSummary) error {
	out := csv.NewWriter(w)
	err := out.Write([]string{
		"creator_handle",
		"posts_analyzed",
		"posts_passed",
		"avg_text_percentage",
		"avg_emoji_percentage",
		"avg_mixed_percentage",
		"avg_EQS",
		"best_EQS",
		"worst_EQS",
	})
	if err != nil {
		return err
	}
	for _, c := range creators {
		err = out.Write([]string{
			c.CreatorHandle,
			strconv.Itoa(c.PostsAnalyzed),
			strconv.Itoa(c.PostsPassed),
			formatFloat(c.AvgTextPercentage),
			formatFloat(c.AvgEmojiPercentage),
			formatFloat(c.AvgMixedPercentage),
			formatFloat(c.AvgEQS),
			formatFloat(c.BestEQS),
			formatFloat(c.WorstEQS),
		})
		if err != nil {
			return err
		}
	}
	out.Flush()
	return out.Error()
}
