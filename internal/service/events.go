package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"Folks_Community/internal/pkg"
)

const (
	EventCommunityCreated = "community.created"
	EventMemberAdded      = "member.added"
	EventMemberRemoved    = "member.removed"
)

type lifecycleEvent struct {
	Type      string    `json:"type"`
	Community string    `json:"community"`
	Member    string    `json:"member,omitempty"`
	User      string    `json:"user,omitempty"`
	At        time.Time `json:"at"`
}

// emitEvent publishes best-effort in the background; a dead broker must
// never fail the request that triggered the event.
func emitEvent(producer *pkg.EventProducer, ev lifecycleEvent) {
	if producer == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		payload, err := json.Marshal(ev)
		if err != nil {
			slog.Error("marshal lifecycle event", "type", ev.Type, "err", err)
			return
		}
		if err := producer.Send(ctx, ev.Community, payload); err != nil {
			slog.Error("publish lifecycle event", "type", ev.Type, "community", ev.Community, "err", err)
		}
	}()
}
