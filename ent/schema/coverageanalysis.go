package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CoverageAnalysis holds the schema definition for the CoverageAnalysis
// entity. One row per requirement per optimization run.
type CoverageAnalysis struct {
	ent.Schema
}

// Fields of the CoverageAnalysis.
func (CoverageAnalysis) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("coverage_id").
			Unique().
			Immutable(),
		field.String("request_id").
			Immutable(),
		field.Text("requirement"),
		field.Bool("covered").
			Default(false),
		field.JSON("covered_by", []string{}).
			Optional().
			Comment("Test case ids covering this requirement"),
		field.Enum("quality").
			Values("good", "weak", "none").
			Default("none"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the CoverageAnalysis.
func (CoverageAnalysis) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("request", Request.Type).
			Ref("coverage").
			Field("request_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the CoverageAnalysis.
func (CoverageAnalysis) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("request_id"),
		index.Fields("covered"),
	}
}
