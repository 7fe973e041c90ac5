package events

import (
	"context"
	"sync"
)

// PublishedEvent conserva un evento capturado por el MemoryPublisher.
type PublishedEvent struct {
	Topic string
	Event MatchingCompleted
}

// MemoryPublisher es un publisher en memoria para tests. Es seguro para uso
// concurrente.
type MemoryPublisher struct {
	mu         sync.Mutex
	published  []PublishedEvent
	flushCount int

	PublishErr error
	FlushErr   error
}

func NewMemoryPublisher() *MemoryPublisher {
	return &MemoryPublisher{}
}

func (p *MemoryPublisher) Publish(_ context.Context, topic string, event MatchingCompleted) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.PublishErr != nil {
		return p.PublishErr
	}
	p.published = append(p.published, PublishedEvent{Topic: topic, Event: event})
	return nil
}

func (p *MemoryPublisher) Flush(_ context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.FlushErr != nil {
		return p.FlushErr
	}
	p.flushCount++
	return nil
}

// Published devuelve una copia de los eventos capturados.
func (p *MemoryPublisher) Published() []PublishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]PublishedEvent(nil), p.published...)
}

// FlushCount devuelve la cantidad de flushes emitidos.
func (p *MemoryPublisher) FlushCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.flushCount
}
