package mongo

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMongoAccountTimestampsEncodeAsDates(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	doc := mongoAccount{
		Name:      "Ada Lovelace",
		Email:     "ada@example.com",
		Role:      "client",
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}

	raw, err := bson.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"created_at", "updated_at"} {
		if _, ok := fields[key].(primitive.DateTime); !ok {
			t.Errorf("%s stored as %T, want primitive.DateTime", key, fields[key])
		}
	}

	var decoded mongoAccount
	if err := bson.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal into struct: %v", err)
	}
	got := decoded.toDomain()
	if !got.CreatedAt.Equal(now) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, now)
	}
	if !got.UpdatedAt.Equal(now) {
		t.Errorf("UpdatedAt = %v, want %v", got.UpdatedAt, now)
	}
}
