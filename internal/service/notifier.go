package service

import (
	"context"

	"eldercare-manager-api/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

// VoiceNotifier pushes a reminder to the voice/agent channel when it
// triggers. The real delivery runs in the agent subsystem; this service
// only needs a seam to hand the reminder off.
type VoiceNotifier interface {
	NotifyReminder(ctx context.Context, reminder *entity.Reminder) error
}

// EmergencyDialer places outbound calls for an emergency incident and
// returns a result summary for the call log.
type EmergencyDialer interface {
	Dial(ctx context.Context, call *entity.EmergencyCall, numbers string) (string, error)
}

type logVoiceNotifier struct {
	log *logrus.Logger
}

// NewLogVoiceNotifier returns a notifier that records the hand-off
// without delivering anything. Stands in until the agent channel is
// wired up.
func NewLogVoiceNotifier(log *logrus.Logger) VoiceNotifier {
	return &logVoiceNotifier{log: log}
}

func (n *logVoiceNotifier) NotifyReminder(ctx context.Context, reminder *entity.Reminder) error {
	n.log.WithFields(logrus.Fields{
		"reminder_id":   reminder.ID,
		"user_id":       reminder.UserID,
		"reminder_type": reminder.ReminderType,
	}).Info("Reminder handed to voice channel")
	return nil
}

type logEmergencyDialer struct {
	log *logrus.Logger
}

// NewLogEmergencyDialer returns a dialer that records the dial attempt
// and reports it as initiated. Stands in until a telephony provider is
// integrated.
func NewLogEmergencyDialer(log *logrus.Logger) EmergencyDialer {
	return &logEmergencyDialer{log: log}
}

func (d *logEmergencyDialer) Dial(ctx context.Context, call *entity.EmergencyCall, numbers string) (string, error) {
	d.log.WithFields(logrus.Fields{
		"emergency_id": call.ID,
		"user_id":      call.UserID,
		"numbers":      numbers,
	}).Info("Emergency auto-call initiated")
	return "auto_call_initiated", nil
}
