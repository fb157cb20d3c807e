package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNormalize_Decimal128(t *testing.T) {
	dec, err := primitive.ParseDecimal128("123.45")
	require.NoError(t, err)

	got := Normalize(dec)
	assert.Equal(t, 123.45, got)
}

func TestNormalize_ObjectID(t *testing.T) {
	id := primitive.NewObjectID()

	got := Normalize(id)
	assert.Equal(t, id.Hex(), got)
}

func TestNormalize_DateTime(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

	got := Normalize(primitive.NewDateTimeFromTime(ts))
	assert.Equal(t, "2024-03-01T12:30:00Z", got)
}

func TestNormalize_NestedDocument(t *testing.T) {
	dec, err := primitive.ParseDecimal128("10.5")
	require.NoError(t, err)

	doc := bson.D{
		{Key: "name", Value: "AAPL"},
		{Key: "meta", Value: bson.D{{Key: "price", Value: dec}}},
		{Key: "tags", Value: bson.A{"tech", dec}},
	}

	got, ok := Normalize(doc).(map[string]interface{})
	require.True(t, ok)

	assert.Equal(t, "AAPL", got["name"])
	meta, ok := got["meta"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 10.5, meta["price"])
	tags, ok := got["tags"].([]interface{})
	require.True(t, ok)
	assert.Equal(t, []interface{}{"tech", 10.5}, tags)
}

func TestNormalize_PassthroughScalars(t *testing.T) {
	assert.Equal(t, "x", Normalize("x"))
	assert.Equal(t, 42.0, Normalize(42.0))
	assert.Equal(t, true, Normalize(true))
	assert.Nil(t, Normalize(nil))
}

func TestToFloat(t *testing.T) {
	dec, err := primitive.ParseDecimal128("7.25")
	require.NoError(t, err)

	tests := []struct {
		name  string
		in    interface{}
		want  float64
		valid bool
	}{
		{"float64", 1.5, 1.5, true},
		{"int32", int32(3), 3, true},
		{"int64", int64(4), 4, true},
		{"decimal128", dec, 7.25, true},
		{"string", "1.5", 0, false},
		{"nil", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToFloat(tt.in)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
