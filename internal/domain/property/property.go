package property

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

var (
	ErrNotFound  = errors.New("property not found")
	ErrInvalidID = errors.New("invalid property id")
)

// Properties are schemaless: whatever the admin dashboard sends is
// stored as-is. The server only owns the identifier and the creation
// timestamp, which drives listing order.

const FieldCreatedAt = "createdAt"

// Document is a single property listing as stored.
type Document = bson.M

// NewFromPayload copies the caller-supplied fields and stamps the
// server-side creation time (epoch milliseconds, matching what the
// site's frontend sorts on). A caller-supplied _id or createdAt is
// dropped so it cannot influence identity or ordering.
func NewFromPayload(payload map[string]interface{}) Document {
	doc := make(Document, len(payload)+1)

	for k, v := range payload {
		doc[k] = v
	}

	delete(doc, "_id")
	doc[FieldCreatedAt] = time.Now().UnixMilli()

	return doc
}

// UpdateFields strips the fields a merge-update is never allowed to
// touch and returns what remains.
func UpdateFields(payload map[string]interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(payload))

	for k, v := range payload {
		fields[k] = v
	}

	delete(fields, "_id")
	delete(fields, FieldCreatedAt)

	return fields
}
