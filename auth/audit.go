package auth

import "github.com/rs/zerolog"

// AuditRecorder receives authentication events for out-of-band recording.
// It sits next to the guard as a collaborator: the guard reports outcomes
// to it but never changes behavior based on it.
type AuditRecorder interface {
	LoginAttempt(email, kind string)
	SessionRenewal(subjectID, kind string)
}

// LogRecorder writes audit events through a zerolog logger.
type LogRecorder struct {
	logger zerolog.Logger
}

func NewLogRecorder(logger zerolog.Logger) *LogRecorder {
	return &LogRecorder{logger: logger}
}

func (r *LogRecorder) LoginAttempt(email, kind string) {
	event := r.logger.Info()
	if kind != "" {
		event = r.logger.Warn().Str("kind", kind)
	}
	event.Str("event", "login_attempt").Str("email", email).Msg("authentication attempt")
}

func (r *LogRecorder) SessionRenewal(subjectID, kind string) {
	event := r.logger.Info()
	if kind != "" {
		event = r.logger.Warn().Str("kind", kind)
	}
	event.Str("event", "session_renewal").Str("subject_id", subjectID).Msg("session renewal")
}

// NoopRecorder discards all audit events.
type NoopRecorder struct{}

func (NoopRecorder) LoginAttempt(string, string)   {}
func (NoopRecorder) SessionRenewal(string, string) {}
