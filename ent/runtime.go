// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/learnpal/ent/feedbackevent"
	"github.com/abhisek/learnpal/ent/schema"
	"github.com/abhisek/learnpal/ent/sessionevent"
	"github.com/abhisek/learnpal/ent/turnevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	feedbackeventMixin := schema.FeedbackEvent{}.Mixin()
	feedbackeventMixinFields0 := feedbackeventMixin[0].Fields()
	_ = feedbackeventMixinFields0
	feedbackeventFields := schema.FeedbackEvent{}.Fields()
	_ = feedbackeventFields
	// feedbackeventDescTimestamp is the schema descriptor for timestamp field.
	feedbackeventDescTimestamp := feedbackeventMixinFields0[1].Descriptor()
	// feedbackevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	feedbackevent.DefaultTimestamp = feedbackeventDescTimestamp.Default.(func() time.Time)
	// feedbackeventDescLatencyMs is the schema descriptor for latency_ms field.
	feedbackeventDescLatencyMs := feedbackeventFields[2].Descriptor()
	// feedbackevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	feedbackevent.DefaultLatencyMs = feedbackeventDescLatencyMs.Default.(int64)
	// feedbackeventDescDelivered is the schema descriptor for delivered field.
	feedbackeventDescDelivered := feedbackeventFields[3].Descriptor()
	// feedbackevent.DefaultDelivered holds the default value on creation for the delivered field.
	feedbackevent.DefaultDelivered = feedbackeventDescDelivered.Default.(bool)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescLearnerName is the schema descriptor for learner_name field.
	sessioneventDescLearnerName := sessioneventFields[2].Descriptor()
	// sessionevent.LearnerNameValidator is a validator for the "learner_name" field. It is called by the builders before save.
	sessionevent.LearnerNameValidator = sessioneventDescLearnerName.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[3].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	turneventMixin := schema.TurnEvent{}.Mixin()
	turneventMixinFields0 := turneventMixin[0].Fields()
	_ = turneventMixinFields0
	turneventFields := schema.TurnEvent{}.Fields()
	_ = turneventFields
	// turneventDescTimestamp is the schema descriptor for timestamp field.
	turneventDescTimestamp := turneventMixinFields0[1].Descriptor()
	// turnevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	turnevent.DefaultTimestamp = turneventDescTimestamp.Default.(func() time.Time)
	// turneventDescSessionID is the schema descriptor for session_id field.
	turneventDescSessionID := turneventFields[0].Descriptor()
	// turnevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	turnevent.SessionIDValidator = turneventDescSessionID.Validators[0].(func(string) error)
	// turneventDescStatus is the schema descriptor for status field.
	turneventDescStatus := turneventFields[4].Descriptor()
	// turnevent.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	turnevent.StatusValidator = turneventDescStatus.Validators[0].(func(string) error)
	// turneventDescLatencyMs is the schema descriptor for latency_ms field.
	turneventDescLatencyMs := turneventFields[5].Descriptor()
	// turnevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	turnevent.DefaultLatencyMs = turneventDescLatencyMs.Default.(int64)
	// turneventDescGreeting is the schema descriptor for greeting field.
	turneventDescGreeting := turneventFields[6].Descriptor()
	// turnevent.DefaultGreeting holds the default value on creation for the greeting field.
	turnevent.DefaultGreeting = turneventDescGreeting.Default.(bool)
}
