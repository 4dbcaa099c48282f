// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/learnpal/ent/predicate"
	"github.com/abhisek/learnpal/ent/turnevent"
)

// TurnEventUpdate is the builder for updating TurnEvent entities.
type TurnEventUpdate struct {
	config
	hooks    []Hook
	mutation *TurnEventMutation
}

// Where appends a list predicates to the TurnEventUpdate builder.
func (_u *TurnEventUpdate) Where(ps ...predicate.TurnEvent) *TurnEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *TurnEventUpdate) SetSessionID(v string) *TurnEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableSessionID(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *TurnEventUpdate) SetLearnerID(v int) *TurnEventUpdate {
	_u.mutation.ResetLearnerID()
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableLearnerID(v *int) *TurnEventUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// AddLearnerID adds value to the "learner_id" field.
func (_u *TurnEventUpdate) AddLearnerID(v int) *TurnEventUpdate {
	_u.mutation.AddLearnerID(v)
	return _u
}

// SetUserText sets the "user_text" field.
func (_u *TurnEventUpdate) SetUserText(v string) *TurnEventUpdate {
	_u.mutation.SetUserText(v)
	return _u
}

// SetNillableUserText sets the "user_text" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableUserText(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetUserText(*v)
	}
	return _u
}

// ClearUserText clears the value of the "user_text" field.
func (_u *TurnEventUpdate) ClearUserText() *TurnEventUpdate {
	_u.mutation.ClearUserText()
	return _u
}

// SetBotText sets the "bot_text" field.
func (_u *TurnEventUpdate) SetBotText(v string) *TurnEventUpdate {
	_u.mutation.SetBotText(v)
	return _u
}

// SetNillableBotText sets the "bot_text" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableBotText(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetBotText(*v)
	}
	return _u
}

// ClearBotText clears the value of the "bot_text" field.
func (_u *TurnEventUpdate) ClearBotText() *TurnEventUpdate {
	_u.mutation.ClearBotText()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TurnEventUpdate) SetStatus(v string) *TurnEventUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableStatus(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *TurnEventUpdate) SetLatencyMs(v int64) *TurnEventUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableLatencyMs(v *int64) *TurnEventUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *TurnEventUpdate) AddLatencyMs(v int64) *TurnEventUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetGreeting sets the "greeting" field.
func (_u *TurnEventUpdate) SetGreeting(v bool) *TurnEventUpdate {
	_u.mutation.SetGreeting(v)
	return _u
}

// SetNillableGreeting sets the "greeting" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableGreeting(v *bool) *TurnEventUpdate {
	if v != nil {
		_u.SetGreeting(*v)
	}
	return _u
}

// Mutation returns the TurnEventMutation object of the builder.
func (_u *TurnEventUpdate) Mutation() *TurnEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TurnEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TurnEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TurnEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TurnEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TurnEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := turnevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := turnevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TurnEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(turnevent.Table, turnevent.Columns, sqlgraph.NewFieldSpec(turnevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(turnevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(turnevent.FieldLearnerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLearnerID(); ok {
		_spec.AddField(turnevent.FieldLearnerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UserText(); ok {
		_spec.SetField(turnevent.FieldUserText, field.TypeString, value)
	}
	if _u.mutation.UserTextCleared() {
		_spec.ClearField(turnevent.FieldUserText, field.TypeString)
	}
	if value, ok := _u.mutation.BotText(); ok {
		_spec.SetField(turnevent.FieldBotText, field.TypeString, value)
	}
	if _u.mutation.BotTextCleared() {
		_spec.ClearField(turnevent.FieldBotText, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(turnevent.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(turnevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(turnevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Greeting(); ok {
		_spec.SetField(turnevent.FieldGreeting, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{turnevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TurnEventUpdateOne is the builder for updating a single TurnEvent entity.
type TurnEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TurnEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *TurnEventUpdateOne) SetSessionID(v string) *TurnEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableSessionID(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *TurnEventUpdateOne) SetLearnerID(v int) *TurnEventUpdateOne {
	_u.mutation.ResetLearnerID()
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableLearnerID(v *int) *TurnEventUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// AddLearnerID adds value to the "learner_id" field.
func (_u *TurnEventUpdateOne) AddLearnerID(v int) *TurnEventUpdateOne {
	_u.mutation.AddLearnerID(v)
	return _u
}

// SetUserText sets the "user_text" field.
func (_u *TurnEventUpdateOne) SetUserText(v string) *TurnEventUpdateOne {
	_u.mutation.SetUserText(v)
	return _u
}

// SetNillableUserText sets the "user_text" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableUserText(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetUserText(*v)
	}
	return _u
}

// ClearUserText clears the value of the "user_text" field.
func (_u *TurnEventUpdateOne) ClearUserText() *TurnEventUpdateOne {
	_u.mutation.ClearUserText()
	return _u
}

// SetBotText sets the "bot_text" field.
func (_u *TurnEventUpdateOne) SetBotText(v string) *TurnEventUpdateOne {
	_u.mutation.SetBotText(v)
	return _u
}

// SetNillableBotText sets the "bot_text" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableBotText(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetBotText(*v)
	}
	return _u
}

// ClearBotText clears the value of the "bot_text" field.
func (_u *TurnEventUpdateOne) ClearBotText() *TurnEventUpdateOne {
	_u.mutation.ClearBotText()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TurnEventUpdateOne) SetStatus(v string) *TurnEventUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableStatus(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *TurnEventUpdateOne) SetLatencyMs(v int64) *TurnEventUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableLatencyMs(v *int64) *TurnEventUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *TurnEventUpdateOne) AddLatencyMs(v int64) *TurnEventUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetGreeting sets the "greeting" field.
func (_u *TurnEventUpdateOne) SetGreeting(v bool) *TurnEventUpdateOne {
	_u.mutation.SetGreeting(v)
	return _u
}

// SetNillableGreeting sets the "greeting" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableGreeting(v *bool) *TurnEventUpdateOne {
	if v != nil {
		_u.SetGreeting(*v)
	}
	return _u
}

// Mutation returns the TurnEventMutation object of the builder.
func (_u *TurnEventUpdateOne) Mutation() *TurnEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the TurnEventUpdate builder.
func (_u *TurnEventUpdateOne) Where(ps ...predicate.TurnEvent) *TurnEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TurnEventUpdateOne) Select(field string, fields ...string) *TurnEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TurnEvent entity.
func (_u *TurnEventUpdateOne) Save(ctx context.Context) (*TurnEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TurnEventUpdateOne) SaveX(ctx context.Context) *TurnEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TurnEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TurnEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TurnEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := turnevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := turnevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TurnEventUpdateOne) sqlSave(ctx context.Context) (_node *TurnEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(turnevent.Table, turnevent.Columns, sqlgraph.NewFieldSpec(turnevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TurnEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, turnevent.FieldID)
		for _, f := range fields {
			if !turnevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != turnevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(turnevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(turnevent.FieldLearnerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLearnerID(); ok {
		_spec.AddField(turnevent.FieldLearnerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UserText(); ok {
		_spec.SetField(turnevent.FieldUserText, field.TypeString, value)
	}
	if _u.mutation.UserTextCleared() {
		_spec.ClearField(turnevent.FieldUserText, field.TypeString)
	}
	if value, ok := _u.mutation.BotText(); ok {
		_spec.SetField(turnevent.FieldBotText, field.TypeString, value)
	}
	if _u.mutation.BotTextCleared() {
		_spec.ClearField(turnevent.FieldBotText, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(turnevent.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(turnevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(turnevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Greeting(); ok {
		_spec.SetField(turnevent.FieldGreeting, field.TypeBool, value)
	}
	_node = &TurnEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{turnevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
