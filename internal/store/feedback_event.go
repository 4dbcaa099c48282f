package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendFeedback(ctx context.Context, data FeedbackEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.FeedbackEvent.Create().
		SetSequence(seqNum).
		SetLearnerID(data.LearnerID).
		SetRating(data.Rating).
		SetLatencyMs(data.LatencyMs).
		SetDelivered(data.Delivered).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save feedback event: %w", err)
	}
	return nil
}
