// Package engagement turns classified comments into per-post metrics and
// per-creator rollups.
package engagement

import (
	"errors"
	"fmt"

	"instacreators-backend/lib/commentclass"
	"instacreators-backend/lib/textutil"
)

// ErrInvalidInput signals a contract violation by the caller, such as
// summarizing a creator with zero posts. It is never recovered locally.
var ErrInvalidInput = errors.New("invalid input")

// RawComment is one comment as delivered by the collector. Author is empty
// when the collector could not attribute the comment.
type RawComment struct {
	Text   string `json:"text"`
	Author string `json:"author,omitempty"`
}

type ClassifiedComment struct {
	RawComment
	Category commentclass.Category
}

// ClassifyAll annotates every comment with its category, preserving order.
func ClassifyAll(comments []RawComment) []ClassifiedComment {
	out := make([]ClassifiedComment, len(comments))
	for i, c := range comments {
		out[i] = ClassifiedComment{
			RawComment: c,
			Category:   commentclass.Classify(c.Text),
		}
	}
	return out
}

// Thresholds hold the pass criteria for a post. They must be supplied
// explicitly; the analyzers carry no defaults.
type Thresholds struct {
	MinimumComments       int     `json:"minimum_comments_required"`
	MinimumTextPercentage float64 `json:"minimum_text_percentage_required"`
}

type PostMetrics struct {
	CreatorHandle   string
	PostURL         string
	TotalComments   int
	TextPercentage  float64
	EmojiPercentage float64
	MixedPercentage float64
	// UniqueCommentersRatio approximates distinct commenting identities.
	// When the collector supplies no author id, distinct normalized comment
	// text stands in, which undercounts users who post identical comments.
	UniqueCommentersRatio float64
	EQS                   float64
	Pass                  bool
}

type CreatorSummary struct {
	CreatorHandle      string
	PostsAnalyzed      int
	PostsPassed        int
	AvgTextPercentage  float64
	AvgEmojiPercentage float64
	AvgMixedPercentage float64
	AvgEQS             float64
	BestEQS            float64
	WorstEQS           float64
}

// Engagement Quality Score weights. The uniqueness term stays a 0..1 ratio
// while the others are 0..100 percentages; do not rescale it.
const (
	weightText   = 0.6
	weightMixed  = 0.3
	weightEmoji  = 0.1
	weightUnique = 0.2
)

// Score computes the Engagement Quality Score from already-derived metrics.
func Score(m PostMetrics) float64 {
	return m.TextPercentage*weightText +
		m.MixedPercentage*weightMixed -
		m.EmojiPercentage*weightEmoji +
		m.UniqueCommentersRatio*weightUnique
}

// AnalyzePost classifies every comment of one post and derives its metrics.
// It never fails: a post with zero comments yields zeroed metrics and a
// failing verdict rather than an error.
func AnalyzePost(creatorHandle, postURL string, comments []RawComment, cfg Thresholds) PostMetrics {
	m := PostMetrics{
		CreatorHandle: creatorHandle,
		PostURL:       postURL,
		TotalComments: len(comments),
	}
	if len(comments) == 0 {
		return m
	}

	var nText, nEmoji, nMixed int
	unique := make(map[string]struct{})
	for _, c := range comments {
		switch commentclass.Classify(c.Text) {
		case commentclass.CategoryText:
			nText++
		case commentclass.CategoryEmoji:
			nEmoji++
		case commentclass.CategoryMixed:
			nMixed++
		}

		if c.Author != "" {
			unique["author:"+c.Author] = struct{}{}
		} else if normalized := textutil.NormalizeComment(c.Text); normalized != "" {
			unique["text:"+normalized] = struct{}{}
		}
	}

	// empties stay in the denominator, so the three percentages may sum
	// to less than 100
	total := float64(m.TotalComments)
	m.TextPercentage = 100 * float64(nText) / total
	m.EmojiPercentage = 100 * float64(nEmoji) / total
	m.MixedPercentage = 100 * float64(nMixed) / total
	m.UniqueCommentersRatio = float64(len(unique)) / total
	m.EQS = Score(m)
	m.Pass = m.TotalComments >= cfg.MinimumComments &&
		m.TextPercentage >= cfg.MinimumTextPercentage
	return m
}

func validateMetrics(p PostMetrics) error {
	if p.TotalComments < 0 {
		return fmt.Errorf("%w: post %q has negative total_comments %d",
			ErrInvalidInput, p.PostURL, p.TotalComments)
	}
	percentages := map[string]float64{
		"text_percentage":  p.TextPercentage,
		"emoji_percentage": p.EmojiPercentage,
		"mixed_percentage": p.MixedPercentage,
	}
	for name, v := range percentages {
		if v < 0 || v > 100 {
			return fmt.Errorf("%w: post %q has out-of-range %s %.2f",
				ErrInvalidInput, p.PostURL, name, v)
		}
	}
	if p.UniqueCommentersRatio < 0 || p.UniqueCommentersRatio > 1 {
		return fmt.Errorf("%w: post %q has out-of-range unique_commenters_ratio %.4f",
			ErrInvalidInput, p.PostURL, p.UniqueCommentersRatio)
	}
	return nil
}

// SummarizeCreator aggregates one creator's post metrics, unweighted by
// comment volume. The posts slice must be non-empty and hold in-range
// metrics, otherwise ErrInvalidInput is returned.
func SummarizeCreator(creatorHandle string, posts []PostMetrics) (CreatorSummary, error) {
	if len(posts) == 0 {
		return CreatorSummary{}, fmt.Errorf("%w: no posts for creator %q",
			ErrInvalidInput, creatorHandle)
	}

	s := CreatorSummary{
		CreatorHandle: creatorHandle,
		PostsAnalyzed: len(posts),
		BestEQS:       posts[0].EQS,
		WorstEQS:      posts[0].EQS,
	}
	for _, p := range posts {
		if err := validateMetrics(p); err != nil {
			return CreatorSummary{}, err
		}
		if p.Pass {
			s.PostsPassed++
		}
		s.AvgTextPercentage += p.TextPercentage
		s.AvgEmojiPercentage += p.EmojiPercentage
		s.AvgMixedPercentage += p.MixedPercentage
		s.AvgEQS += p.EQS
		// strict comparisons keep the first occurrence on ties
		if p.EQS > s.BestEQS {
			s.BestEQS = p.EQS
		}
		if p.EQS < s.WorstEQS {
			s.WorstEQS = p.EQS
		}
	}

	n := float64(len(posts))
	s.AvgTextPercentage /= n
	s.AvgEmojiPercentage /= n
	s.AvgMixedPercentage /= n
	s.AvgEQS /= n
	return s, nil
}
