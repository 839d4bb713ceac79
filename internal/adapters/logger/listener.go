package logger

import (
	"go.trai.ch/sniff/internal/core/domain"
	"go.trai.ch/sniff/internal/core/ports"
)

// EventListener forwards every engine message to a logger at debug level.
type EventListener struct {
	logger ports.Logger
}

// NewEventListener creates an EventListener writing to log.
func NewEventListener(log ports.Logger) *EventListener {
	return &EventListener{logger: log}
}

// HandleMessage implements ports.Listener.
func (l *EventListener) HandleMessage(event domain.MessageEvent) {
	if event.Message == "" {
		return
	}
	if event.SenderName == "" {
		l.logger.Debug(event.Message)
		return
	}
	l.logger.Debug("[" + event.SenderName + "] " + event.Message)
}
