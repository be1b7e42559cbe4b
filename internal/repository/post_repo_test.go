package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTagFilter(t *testing.T) {
	assert.Empty(t, TagFilter(""))

	f := TagFilter("c++")
	re := f["tags"].(bson.M)["$regex"].(primitive.Regex)
	assert.Equal(t, `c\+\+`, re.Pattern)
	assert.Equal(t, "i", re.Options)
}

func TestPopularPipeline(t *testing.T) {
	p := PopularPipeline("go", 20, 10)
	require.Len(t, p, 6)

	assert.Equal(t, "$match", p[0][0].Key)
	assert.Equal(t, bson.D{{Key: "voteDifference", Value: -1}, {Key: "_id", Value: -1}}, p[2][0].Value)
	assert.Equal(t, int64(20), p[3][0].Value)
	assert.Equal(t, int64(10), p[4][0].Value)
	assert.Equal(t, bson.M{"voteDifference": 0}, p[5][0].Value)
}
