package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GenerationMetric holds the schema definition for the GenerationMetric
// entity. One row per stage attempt, including retried attempts.
type GenerationMetric struct {
	ent.Schema
}

// Fields of the GenerationMetric.
func (GenerationMetric) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("metric_id").
			Unique().
			Immutable(),
		field.String("request_id").
			Immutable(),
		field.Enum("stage").
			Values("reconnaissance", "generation", "validation", "optimization"),
		field.Int("attempt").
			Default(1),
		field.Enum("status").
			Values("success", "retry", "failed"),
		field.Int("duration_ms"),
		field.Int("tokens_prompt").
			Default(0),
		field.Int("tokens_completion").
			Default(0),
		field.Int("tokens_total").
			Default(0),
		field.String("model").
			Optional(),
		field.String("error_code").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the GenerationMetric.
func (GenerationMetric) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("request", Request.Type).
			Ref("metrics").
			Field("request_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the GenerationMetric.
func (GenerationMetric) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("request_id", "stage", "attempt").
			Unique(),
	}
}
