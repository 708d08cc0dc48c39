package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SecurityAuditLog holds the schema definition for the SecurityAuditLog
// entity. Append-only record of safety guard findings.
type SecurityAuditLog struct {
	ent.Schema
}

// Fields of the SecurityAuditLog.
func (SecurityAuditLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("audit_id").
			Unique().
			Immutable(),
		field.String("request_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Null for ad-hoc /validate/tests calls"),
		field.Int("test_index").
			Default(0),
		field.Enum("layer").
			Values("static", "ast", "behavioral"),
		field.Enum("severity").
			Values("critical", "high", "medium", "low"),
		field.String("pattern").
			Comment("Blacklist pattern or import that matched"),
		field.Text("snippet").
			Optional().
			Comment("Offending code excerpt"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the SecurityAuditLog.
func (SecurityAuditLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("request", Request.Type).
			Ref("audit_logs").
			Field("request_id").
			Unique().
			Immutable(),
	}
}

// Indexes of the SecurityAuditLog.
func (SecurityAuditLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("severity"),
		index.Fields("created_at"),
	}
}
