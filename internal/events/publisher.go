package events

import (
	"context"

	"trait-match/internal/domain"
)

// MatchingCompleted es el payload publicado al terminar una corrida.
type MatchingCompleted struct {
	MatchingID string              `json:"matchingId"`
	Teams      []domain.TeamReport `json:"teams"`
	Timestamp  string              `json:"timestamp"`
}

// Publisher es el colaborador de salida del motor. Debe ser seguro de usar
// desde corridas concurrentes; el motor emite exactamente un Publish seguido de
// un Flush por corrida completada y no reintenta ante fallos.
type Publisher interface {
	Publish(ctx context.Context, topic string, event MatchingCompleted) error
	Flush(ctx context.Context) error
}
