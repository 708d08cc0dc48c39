package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Checkpoint holds the schema definition for the Checkpoint entity.
// At most one row per request; upserted after every completed stage.
type Checkpoint struct {
	ent.Schema
}

// Fields of the Checkpoint.
func (Checkpoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("checkpoint_id").
			Unique().
			Immutable(),
		field.String("request_id").
			Unique().
			Immutable(),
		field.Int("version"),
		field.JSON("payload", map[string]interface{}{}).
			Comment("Stage outputs and retry counts, schema owned by pkg/queue"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Checkpoint.
func (Checkpoint) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("request", Request.Type).
			Ref("checkpoint").
			Field("request_id").
			Unique().
			Required().
			Immutable(),
	}
}
