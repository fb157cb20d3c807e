package store

import (
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Normalize converts BSON-specific values into plain JSON-safe Go values.
// Decimal128 becomes float64, ObjectID becomes its hex string, DateTime
// becomes an RFC3339 string, and documents/arrays are walked recursively.
// Values that cannot be converted are returned unchanged.
func Normalize(v interface{}) interface{} {
	switch val := v.(type) {
	case bson.D:
		out := make(map[string]interface{}, len(val))
		for _, el := range val {
			out[el.Key] = Normalize(el.Value)
		}
		return out
	case bson.M:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			out[k] = Normalize(item)
		}
		return out
	case bson.A:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = Normalize(item)
		}
		return out
	case primitive.Decimal128:
		f, err := strconv.ParseFloat(val.String(), 64)
		if err != nil {
			return 0.0
		}
		return f
	case primitive.ObjectID:
		return val.Hex()
	case primitive.DateTime:
		return val.Time().UTC().Format(time.RFC3339)
	default:
		return v
	}
}

// ToFloat converts the numeric BSON representations that appear in stored
// documents into a float64. The bool reports whether the value was numeric.
func ToFloat(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case primitive.Decimal128:
		f, err := strconv.ParseFloat(val.String(), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
