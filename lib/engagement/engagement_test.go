package engagement

import (
	"errors"
	"fmt"
	"testing"

	"instacreators-backend/lib/commentclass"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestClassifyAll(t *testing.T) {
	comments := []RawComment{
		{Text: "Love this! 😍"},
		{Text: "😍😍😍"},
		{Text: "Nice shot, where was this taken?"},
		{Text: ""},
	}
	classified := ClassifyAll(comments)

	expected := []commentclass.Category{
		commentclass.CategoryMixed,
		commentclass.CategoryEmoji,
		commentclass.CategoryText,
		commentclass.CategoryEmpty,
	}
	require.Len(t, classified, len(expected))
	for i, c := range classified {
		require.Equal(t, expected[i], c.Category, "comment %d: %q", i, c.Text)
		require.Equal(t, comments[i], c.RawComment)
	}
}

func TestAnalyzePost(t *testing.T) {
	comments := []RawComment{
		{Text: "Love this! 😍"},
		{Text: "😍😍😍"},
		{Text: "Nice shot, where was this taken?"},
		{Text: ""},
	}
	metrics := AnalyzePost("creator", "https://example.com/p/1", comments, Thresholds{
		MinimumComments:       2,
		MinimumTextPercentage: 20,
	})

	// the empty comment stays in the denominator but contributes to no
	// category percentage and no uniqueness key
	expected := PostMetrics{
		CreatorHandle:         "creator",
		PostURL:               "https://example.com/p/1",
		TotalComments:         4,
		TextPercentage:        25,
		EmojiPercentage:       25,
		MixedPercentage:       25,
		UniqueCommentersRatio: 0.75,
		EQS:                   25*0.6 + 25*0.3 - 25*0.1 + 0.75*0.2,
		Pass:                  true,
	}
	diff := cmp.Diff(expected, metrics, cmpopts.EquateApprox(0, 1e-9))
	if diff != "" {
		t.Fatal(diff)
	}
}

func TestAnalyzePostPassCriteria(t *testing.T) {
	var comments []RawComment
	for i := 0; i < 40; i++ {
		comments = append(comments, RawComment{
			Text:   fmt.Sprintf("comment number %d", i),
			Author: fmt.Sprintf("user%d", i),
		})
	}
	for i := 40; i < 60; i++ {
		comments = append(comments, RawComment{
			Text:   "🔥🔥🔥",
			Author: fmt.Sprintf("user%d", i),
		})
	}

	metrics := AnalyzePost("creator", "https://example.com/p/2", comments, Thresholds{
		MinimumComments:       50,
		MinimumTextPercentage: 50,
	})

	require.Equal(t, 60, metrics.TotalComments)
	require.InDelta(t, 66.67, metrics.TextPercentage, 0.01)
	require.InDelta(t, 33.33, metrics.EmojiPercentage, 0.01)
	require.Equal(t, 0.0, metrics.MixedPercentage)
	require.Equal(t, 1.0, metrics.UniqueCommentersRatio)
	require.InDelta(t, 36.87, metrics.EQS, 0.01)
	require.True(t, metrics.Pass)
}

func TestAnalyzePostEmpty(t *testing.T) {
	metrics := AnalyzePost("creator", "https://example.com/p/3", nil, Thresholds{})

	require.Equal(t, 0, metrics.TotalComments)
	require.Equal(t, 0.0, metrics.TextPercentage)
	require.Equal(t, 0.0, metrics.EmojiPercentage)
	require.Equal(t, 0.0, metrics.MixedPercentage)
	require.Equal(t, 0.0, metrics.UniqueCommentersRatio)
	require.Equal(t, 0.0, metrics.EQS)
	// zero comments always fail, even with a zero minimum
	require.False(t, metrics.Pass)
}

func TestAnalyzePostRatioBounds(t *testing.T) {
	testCases := [][]RawComment{
		{{Text: "same"}, {Text: "same"}, {Text: "SAME "}},
		{{Text: "a", Author: "x"}, {Text: "b", Author: "x"}},
		{{Text: ""}, {Text: "  "}},
		{{Text: "one"}},
	}
	for i, comments := range testCases {
		metrics := AnalyzePost("creator", fmt.Sprintf("post-%d", i), comments, Thresholds{})
		require.GreaterOrEqual(t, metrics.UniqueCommentersRatio, 0.0, "case %d", i)
		require.LessOrEqual(t, metrics.UniqueCommentersRatio, 1.0, "case %d", i)
	}
}

func TestSummarizeCreator(t *testing.T) {
	posts := []PostMetrics{
		{CreatorHandle: "creator", PostURL: "p1", TotalComments: 10, TextPercentage: 50, EQS: 40, Pass: true},
		{CreatorHandle: "creator", PostURL: "p2", TotalComments: 20, TextPercentage: 70, EQS: 60, Pass: true},
	}
	summary, err := SummarizeCreator("creator", posts)
	require.NoError(t, err)

	require.Equal(t, "creator", summary.CreatorHandle)
	require.Equal(t, 2, summary.PostsAnalyzed)
	require.Equal(t, 2, summary.PostsPassed)
	require.Equal(t, 60.0, summary.AvgTextPercentage)
	require.Equal(t, 50.0, summary.AvgEQS)
	require.Equal(t, 60.0, summary.BestEQS)
	require.Equal(t, 40.0, summary.WorstEQS)
}

func TestSummarizeCreatorOrderingInvariant(t *testing.T) {
	posts := []PostMetrics{
		{PostURL: "p1", EQS: 12.5},
		{PostURL: "p2", EQS: -3},
		{PostURL: "p3", EQS: 47.25},
		{PostURL: "p4", EQS: 47.25},
		{PostURL: "p5", EQS: 0},
	}
	summary, err := SummarizeCreator("creator", posts)
	require.NoError(t, err)

	require.GreaterOrEqual(t, summary.BestEQS, summary.AvgEQS)
	require.GreaterOrEqual(t, summary.AvgEQS, summary.WorstEQS)
}

func TestSummarizeCreatorEmpty(t *testing.T) {
	_, err := SummarizeCreator("creator", nil)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestSummarizeCreatorRejectsCorruptMetrics(t *testing.T) {
	testCases := []PostMetrics{
		{PostURL: "p1", TotalComments: -1},
		{PostURL: "p2", TextPercentage: 150},
		{PostURL: "p3", EmojiPercentage: -10},
		{PostURL: "p4", UniqueCommentersRatio: 1.5},
	}
	for _, p := range testCases {
		_, err := SummarizeCreator("creator", []PostMetrics{p})
		require.Error(t, err, "post: %s", p.PostURL)
		require.True(t, errors.Is(err, ErrInvalidInput), "post: %s", p.PostURL)
	}
}
