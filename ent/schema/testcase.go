package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TestCase holds the schema definition for the TestCase entity.
type TestCase struct {
	ent.Schema
}

// Fields of the TestCase.
func (TestCase) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("test_case_id").
			Unique().
			Immutable(),
		field.String("request_id").
			Immutable(),
		field.String("name").
			Comment("Python test function name, e.g. test_login_positive"),
		field.Text("code"),
		field.String("description").
			Optional(),
		field.String("test_type").
			Optional().
			Comment("positive, negative or boundary"),
		field.Int("score").
			Default(0).
			Comment("Validator score 0-100"),
		field.Bool("valid").
			Default(false),
		field.String("duplicate_of").
			Optional().
			Nillable().
			Comment("Test case this one was deduplicated against"),
		field.Float("similarity").
			Optional().
			Nillable().
			Comment("Cosine similarity to duplicate_of; 1.0 for exact duplicates"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the TestCase.
func (TestCase) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("request", Request.Type).
			Ref("test_cases").
			Field("request_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the TestCase.
func (TestCase) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("request_id", "name").
			Unique(),
		index.Fields("test_type"),
		index.Fields("valid", "score"),
	}
}
