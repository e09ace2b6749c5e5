package creatorintel

import (
	"bytes"
	"testing"

	"instacreators-backend/lib/engagement"

	"github.com/stretchr/testify/require"
)

func TestWritePostsCSV(t *testing.T) {
	posts := []engagement.PostMetrics{
		{
			CreatorHandle:         "@wildlife.daily",
			PostURL:               "https://www.instagram.com/p/abc123/",
			TotalComments:         4,
			TextPercentage:        25,
			EmojiPercentage:       25,
			MixedPercentage:       25,
			UniqueCommentersRatio: 0.75,
			EQS:                   20.15,
			Pass:                  true,
		},
		{
			CreatorHandle: "@city.walks",
			PostURL:       "https://www.instagram.com/p/ghi789/",
		},
	}

	var buf bytes.Buffer
	err := WritePostsCSV(&buf, posts)
	require.NoError(t, err)

	expected := "creator_handle,post_url,total_comments,text_percentage,emoji_percentage,mixed_percentage,unique_commenters_ratio,EQS,pass\n" +
		"@wildlife.daily,https://www.instagram.com/p/abc123/,4,25.00,25.00,25.00,0.75,20.15,Pass\n" +
		"@city.walks,https://www.instagram.com/p/ghi789/,0,0.00,0.00,0.00,0.00,0.00,Fail\n"
	require.Equal(t, expected, buf.String())
}

func TestWriteCreatorsCSV(t *testing.T) {
	creators := []engagement.CreatorSummary{
		{
			CreatorHandle:      "@wildlife.daily",
			PostsAnalyzed:      2,
			PostsPassed:        1,
			AvgTextPercentage:  45.833333,
			AvgEmojiPercentage: 29.166666,
			AvgMixedPercentage: 12.5,
			AvgEQS:             30.074999,
			BestEQS:            40,
			WorstEQS:           20.15,
		},
	}

	var buf bytes.Buffer
	err := WriteCreatorsCSV(&buf, creators)
	require.NoError(t, err)

	expected := "creator_handle,posts_analyzed,posts_passed,avg_text_percentage,avg_emoji_percentage,avg_mixed_percentage,avg_EQS,best_EQS,worst_EQS\n" +
		"@wildlife.daily,2,1,45.83,29.17,12.50,30.07,40.00,20.15\n"
	require.Equal(t, expected, buf.String())
}
