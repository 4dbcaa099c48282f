package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TurnEvent records one resolved tutoring exchange: the user message
// and how the tutor answered it.
type TurnEvent struct {
	ent.Schema
}

func (TurnEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TurnEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.Int("learner_id"),
		field.String("user_text").
			Optional().
			Comment("Empty for the synthetic greeting turn"),
		field.String("bot_text").Optional(),
		field.String("status").
			NotEmpty().
			Comment("completed or errored"),
		field.Int64("latency_ms").Default(0),
		field.Bool("greeting").Default(false),
	}
}

func (TurnEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("learner_id"),
	}
}
