package mq

import (
	"context"
	"time"

	"ReelHub.com/cmd/model"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ActionEvent is the audit record published for significant mutations.
type ActionEvent struct {
	EventId    string               `json:"event_id"`
	UserId     string               `json:"user"`
	Action     string               `json:"action"`
	TargetType string               `json:"targetType"`
	TargetId   string               `json:"targetId"`
	Device     string               `json:"device"`
	Location   model.ActionLocation `json:"location"`
	Timestamp  time.Time            `json:"timestamp"`
}

// NewActionEvent stamps an event with an id and timestamp.
func NewActionEvent(userId, action, targetType, targetId string) *ActionEvent {
	return &ActionEvent{
		EventId:    uuid.NewString(),
		UserId:     userId,
		Action:     action,
		TargetType: targetType,
		TargetId:   targetId,
		Timestamp:  time.Now(),
	}
}

// Recorder is the fire-and-forget audit sink. Record must never surface a
// failure to the caller; a failed audit write cannot fail the mutation that
// produced it.
type Recorder interface {
	Record(ctx context.Context, event *ActionEvent)
}

// NopRecorder logs events locally. Used when the broker is unreachable so
// the request path keeps working.
type NopRecorder struct{}

func (NopRecorder) Record(ctx context.Context, event *ActionEvent) {
	logrus.WithFields(logrus.Fields{
		"action": event.Action,
		"user":   event.UserId,
		"target": event.TargetId,
	}).Info("action event (local only)")
}
