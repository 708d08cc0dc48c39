package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Request holds the schema definition for the Request entity.
// One row per test-generation request; doubles as the work queue
// (workers claim pending rows with FOR UPDATE SKIP LOCKED).
type Request struct {
	ent.Schema
}

// Fields of the Request.
func (Request) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("request_id").
			Unique().
			Immutable(),
		field.Enum("request_type").
			Values("ui", "api"),
		field.String("url").
			Optional().
			Nillable().
			Comment("Target page URL for UI requests"),
		field.JSON("requirements", []string{}),
		field.JSON("test_types", []string{}).
			Optional().
			Comment("Requested coverage: positive, negative, boundary"),
		field.String("openapi_url").
			Optional().
			Nillable(),
		field.Text("openapi_content").
			Optional().
			Nillable().
			Comment("Inline OpenAPI document for API requests"),
		field.JSON("options", map[string]interface{}{}).
			Optional(),
		field.Enum("status").
			Values("pending", "reconnaissance", "generation", "validation", "optimization", "completed", "failed", "cancelled").
			Default("pending"),
		field.String("error_code").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.JSON("result_summary", map[string]interface{}{}).
			Optional().
			Comment("Counts, scores and durations recorded on completion"),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Int("requeue_count").
			Default(0).
			Comment("Times this request was recovered after a worker died"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Request.
func (Request) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("test_cases", TestCase.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("metrics", GenerationMetric.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("coverage", CoverageAnalysis.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("audit_logs", SecurityAuditLog.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("checkpoint", Checkpoint.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Request.
func (Request) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("request_type"),

		// Claim order and orphan scans
		index.Fields("status", "created_at"),
		index.Fields("status", "last_heartbeat_at"),

		// Partial index keeps the active set cheap to scan
		index.Fields("pod_id").
			Annotations(entsql.IndexWhere("status IN ('reconnaissance', 'generation', 'validation', 'optimization')")),
	}
}
