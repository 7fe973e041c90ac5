package service

import "errors"

// Errores del motor de matching. Todos abortan unicamente la corrida actual;
// nunca llegan al cliente HTTP porque la respuesta ya fue emitida.
var (
	ErrInvalidInput           = errors.New("invalid matching input")
	ErrEmptyTeam              = errors.New("cannot score an empty team")
	ErrInsufficientCandidates = errors.New("insufficient filtered candidates")
)
