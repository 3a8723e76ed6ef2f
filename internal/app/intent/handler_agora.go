package intent

import (
	"context"
	"fmt"

	"agoraverse/internal/app/ports"
	"agoraverse/internal/domain/econ"

	"github.com/google/uuid"
)

type agoraPostHandler struct{}

func (agoraPostHandler) Execute(ctx context.Context, uc UseCase, in *Input) (Outcome, error) {
	topic := paramString(in, "topic")
	if topic == "" {
		return blocked(in, "missing_topic"), nil
	}

	body := fmt.Sprintf("%s shares a thought about %s.", in.Actor.Name, topic)
	if uc.TextGen != nil {
		prompt := fmt.Sprintf("Write a short forum post by %s about %s.", in.Actor.Name, topic)
		if text, err := uc.TextGen.Generate(ctx, prompt); err == nil && text != "" {
			body = text
		}
	}

	verdict := ports.ModerationVerdict{Action: ports.ModerationAllow}
	if uc.Moderator != nil {
		v, err := uc.Moderator.Review(ctx, body)
		if err != nil {
			// No safe fallback for an unreviewable post.
			return blocked(in, "moderation_unavailable"), nil
		}
		verdict = v
	}
	if verdict.Action == ports.ModerationBlock {
		return blocked(in, "moderation_blocked"), nil
	}

	postID := uuid.NewString()
	updates := []econ.StateUpdate{
		{
			Table: econ.TableForumPosts,
			Op:    econ.OpCreate,
			Patch: map[string]any{
				"id":        postID,
				"author_id": in.Actor.ID,
				"topic":     topic,
				"body":      body,
				"tick":      in.Tick,
				"flagged":   verdict.Action == ports.ModerationFlag,
			},
		},
		stateUpdate(in.Actor.ID, map[string]any{"purpose": clampNeed(in.State.Needs.Purpose + econ.AgoraPurposeGain)}),
	}
	// Flag escalation rides the same batch instead of a second round trip.
	if verdict.Action == ports.ModerationFlag {
		updates = append(updates, econ.StateUpdate{
			Table: econ.TableModerationLogs,
			Op:    econ.OpCreate,
			Patch: map[string]any{
				"id":             uuid.NewString(),
				"post_id":        postID,
				"author_id":      in.Actor.ID,
				"classification": verdict.Classification,
				"reasoning":      verdict.Reasoning,
				"tick":           in.Tick,
			},
		})
	}

	return Outcome{
		Updates: updates,
		Events: []econ.Event{newEvent(in, econ.EventAgoraPosted, postID, econ.OutcomeSuccess, map[string]any{
			"topic":             topic,
			"moderation_action": string(verdict.Action),
		})},
		Status: econ.IntentExecuted,
	}, nil
}
