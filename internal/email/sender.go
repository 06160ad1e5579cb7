package email

import (
	"context"
	"errors"
	"time"
)

// CrisisAlert es el aviso de seguridad. Nunca incluye el texto del mensaje.
type CrisisAlert struct {
	UserID     string
	Username   string
	DetectedAt time.Time
}

// Sender define la interfaz para envío de alertas de seguridad.
type Sender interface {
	SendCrisisAlert(ctx context.Context, toEmail string, alert CrisisAlert) error
}

type disabledSender struct {
	reason string
}

func NewDisabledSender(reason string) Sender {
	return &disabledSender{reason: reason}
}

func (s *disabledSender) SendCrisisAlert(_ context.Context, _ string, _ CrisisAlert) error {
	if s.reason == "" {
		return errors.New("email sender disabled")
	}
	return errors.New(s.reason)
}
