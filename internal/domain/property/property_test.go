package property_test

import (
	"testing"
	"time"

	"github.com/yuvrajghadi/thakkar-backend/internal/domain/property"
)

func TestNewFromPayload(t *testing.T) {
	before := time.Now().UnixMilli()

	doc := property.NewFromPayload(map[string]interface{}{
		"title":     "Lakeview Villa",
		"price":     100,
		"_id":       "attacker-chosen",
		"createdAt": int64(1),
	})

	after := time.Now().UnixMilli()

	if doc["title"] != "Lakeview Villa" || doc["price"] != 100 {
		t.Errorf("caller fields lost: %v", doc)
	}

	if _, ok := doc["_id"]; ok {
		t.Error("caller-supplied _id must be dropped")
	}

	created, ok := doc[property.FieldCreatedAt].(int64)

	if !ok {
		t.Fatalf("createdAt = %v", doc[property.FieldCreatedAt])
	}

	if created < before || created > after {
		t.Errorf("createdAt %d outside [%d,%d]", created, before, after)
	}
}

func TestUpdateFields(t *testing.T) {
	payload := map[string]interface{}{
		"price":     250,
		"_id":       "x",
		"createdAt": int64(9),
	}

	fields := property.UpdateFields(payload)

	if fields["price"] != 250 {
		t.Errorf("fields = %v", fields)
	}

	if _, ok := fields["_id"]; ok {
		t.Error("_id must not survive a merge update")
	}

	if _, ok := fields[property.FieldCreatedAt]; ok {
		t.Error("createdAt must not survive a merge update")
	}

	// the input payload stays untouched
	if _, ok := payload["_id"]; !ok {
		t.Error("UpdateFields should copy, not mutate")
	}
}
