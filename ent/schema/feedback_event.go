package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FeedbackEvent records a guardian's thumbs rating of the tutor.
type FeedbackEvent struct {
	ent.Schema
}

func (FeedbackEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (FeedbackEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("learner_id"),
		field.Int("rating").
			Comment("+1 or -1"),
		field.Int64("latency_ms").
			Default(0).
			Comment("Latency of the rated exchange"),
		field.Bool("delivered").
			Default(false).
			Comment("Whether the remote service acknowledged the rating"),
	}
}

func (FeedbackEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id"),
	}
}
