package store

import (
	"context"
	"fmt"

	"github.com/abhisek/learnpal/ent"
	"github.com/abhisek/learnpal/ent/turnevent"
)

func (r *eventRepo) AppendTurn(ctx context.Context, data TurnEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.TurnEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetLearnerID(data.LearnerID).
		SetUserText(data.UserText).
		SetBotText(data.BotText).
		SetStatus(data.Status).
		SetLatencyMs(data.LatencyMs).
		SetGreeting(data.Greeting).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save turn event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentTurns(ctx context.Context, limit int) ([]TurnRecord, error) {
	q := r.client.TurnEvent.Query().
		Order(ent.Desc(turnevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query turns: %w", err)
	}

	out := make([]TurnRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, TurnRecord{
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			SessionID: row.SessionID,
			LearnerID: row.LearnerID,
			UserText:  row.UserText,
			BotText:   row.BotText,
			Status:    row.Status,
			LatencyMs: row.LatencyMs,
			Greeting:  row.Greeting,
		})
	}
	return out, nil
}
