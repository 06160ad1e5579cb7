package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"ai-listener/internal/email"
)

// SafetyAlerter avisa al equipo de guardia cuando un chat se clasifica como crisis.
type SafetyAlerter struct {
	logger  *zap.Logger
	sender  email.Sender
	to      string
	timeout time.Duration
}

// NewSafetyAlerter devuelve nil si no hay destinatario o sender configurado.
func NewSafetyAlerter(logger *zap.Logger, sender email.Sender, to string) *SafetyAlerter {
	to = strings.TrimSpace(to)
	if sender == nil || to == "" {
		return nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SafetyAlerter{logger: logger, sender: sender, to: to, timeout: 10 * time.Second}
}

// Notify envía la alerta. Los errores solo se loguean.
func (a *SafetyAlerter) Notify(ctx context.Context, alert email.CrisisAlert) {
	if a == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()
	if err := a.sender.SendCrisisAlert(ctx, a.to, alert); err != nil {
		a.logger.Warn("crisis alert failed", zap.Error(err), zap.String("user_id", alert.UserID))
		return
	}
	a.logger.Info("crisis alert sent", zap.String("user_id", alert.UserID))
}
