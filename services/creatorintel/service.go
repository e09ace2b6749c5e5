// Package creatorintel feeds collected comment batches through the
// engagement analyzers and groups the results by creator. It performs no
// classification or scoring of its own.
package creatorintel

import (
	"context"
	"log/slog"

	"instacreators-backend/lib/engagement"
	"instacreators-backend/lib/textutil"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/creatorintel")

type Service struct {
	thresholds engagement.Thresholds
}

func NewService(thresholds engagement.Thresholds) Service {
	return Service{
		thresholds: thresholds,
	}
}

// Report is the full output of one analysis run: the flat post table and the
// per-creator rollup table, both in arrival order.
type Report struct {
	Posts    []engagement.PostMetrics
	Creators []engagement.CreatorSummary
}

// Analyze runs every collected post through the post analyzer, then
// summarizes each creator's posts. Creator groups keep first-seen order;
// posts keep arrival order within their group.
func (s Service) Analyze(ctx context.Context, posts []CollectedPost) (Report, error) {
	ctx, span := tracer.Start(ctx, "Analyze")
	defer span.End()

	span.SetAttributes(attribute.Int("posts", len(posts)))

	var report Report
	var keyOrder []string
	handles := map[string]string{}
	groups := map[string][]engagement.PostMetrics{}

	for _, post := range posts {
		metrics := engagement.AnalyzePost(
			post.CreatorHandle,
			post.PostURL,
			post.Comments,
			s.thresholds,
		)
		slog.InfoContext(
			ctx, "analyzed post",
			"creator", post.CreatorHandle,
			"post", post.PostURL,
			"comments", metrics.TotalComments,
			"eqs", metrics.EQS,
			"pass", metrics.Pass,
		)
		report.Posts = append(report.Posts, metrics)

		key := textutil.NormalizeHandle(post.CreatorHandle)
		if _, seen := groups[key]; !seen {
			keyOrder = append(keyOrder, key)
			handles[key] = post.CreatorHandle
		}
		groups[key] = append(groups[key], metrics)
	}

	for _, key := range keyOrder {
		summary, err := engagement.SummarizeCreator(handles[key], groups[key])
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return Report{}, err
		}
		report.Creators = append(report.Creators, summary)
	}

	return report, nil
}
