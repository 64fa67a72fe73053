package dashboard

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The stats rollup must only ever see published videos, or unpublished
// uploads would inflate the channel's totals.
func TestVideoStatsPipeline_ScopesToPublishedVideos(t *testing.T) {
	channel := primitive.NewObjectID()

	pipeline := videoStatsPipeline(channel)
	require.NotEmpty(t, pipeline)

	matchStage := pipeline[0]
	require.Equal(t, "$match", matchStage[0].Key)

	match, isM := matchStage[0].Value.(bson.M)
	require.True(t, isM)
	require.Equal(t, channel, match["owner"])
	require.Equal(t, true, match["isPublished"])
}
