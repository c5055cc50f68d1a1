package store

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// timestampFields are the store-internal instants normalized to ISO-8601
// strings at the system boundary.
var timestampFields = [...]string{"created_at", "updated_at"}

// Serialize converts a stored document into its public, JSON-safe form:
// the native "_id" field is replaced by a string "id", and recognized
// timestamp fields are rewritten as RFC 3339 strings. The input is not
// mutated. A document without "_id" passes through without an "id" key,
// so serializing twice is a no-op.
func Serialize(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}

	if raw, ok := out["_id"]; ok {
		delete(out, "_id")
		out["id"] = idString(raw)
	}

	for _, k := range timestampFields {
		v, ok := out[k]
		if !ok {
			continue
		}
		if s, ok := isoTime(v); ok {
			out[k] = s
		}
	}

	return out
}

func idString(raw any) string {
	switch id := raw.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return fmt.Sprint(id)
	}
}

func isoTime(v any) (string, bool) {
	switch t := v.(type) {
	case time.Time:
		return t.UTC().Format(time.RFC3339Nano), true
	case primitive.DateTime:
		return t.Time().UTC().Format(time.RFC3339Nano), true
	default:
		return "", false
	}
}
