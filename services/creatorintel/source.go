package creatorintel

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"instacreators-backend/lib/engagement"
)

// CollectedPost is one post's worth of raw comments as delivered by the
// external collector. How the comments were obtained (retries, scrolling,
// rate limits) is the collector's business and never surfaces here.
type CollectedPost struct {
	CreatorHandle string                  `json:"creator_handle"`
	PostURL       string                  `json:"post_url"`
	Comments      []engagement.RawComment `json:"comments"`
}

// Source supplies collected posts in collection order.
type Source interface {
	Posts(ctx context.Context) ([]CollectedPost, error)
}

// FileSource reads a JSON dump exported by the collector: a flat array of
// CollectedPost objects.
type FileSource struct {
	Path string
}

func (s FileSource) Posts(ctx context.Context) ([]CollectedPost, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read comment dump %q: %w", s.Path, err)
	}

	var posts []CollectedPost
	err = json.Unmarshal(data, &posts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse comment dump %q: %w", s.Path, err)
	}

	seen := map[string]struct{}{}
	for i, post := range posts {
		if post.CreatorHandle == "" {
			return nil, fmt.Errorf("comment dump %q: post %d has no creator_handle", s.Path, i)
		}
		if post.PostURL == "" {
			return nil, fmt.Errorf("comment dump %q: post %d has no post_url", s.Path, i)
		}
		if _, duplicate := seen[post.PostURL]; duplicate {
			return nil, fmt.Errorf("comment dump %q: duplicate post_url %q", s.Path, post.PostURL)
		}
		seen[post.PostURL] = struct{}{}
	}

	return posts, nil
}
