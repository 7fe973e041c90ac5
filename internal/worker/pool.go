package worker

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

// ErrQueueFull indica que la cola de corridas esta saturada; el llamador decide
// como responder (el handler HTTP devuelve 503).
var ErrQueueFull = errors.New("worker queue full")

// Job es una unidad de trabajo fire-and-forget. Una vez iniciada corre hasta
// terminar; no hay cancelacion por corrida.
type Job func(ctx context.Context)

// Pool ejecuta jobs con concurrencia y cola acotadas, para que el disparo de
// corridas bajo carga no crezca sin limite.
type Pool struct {
	logger *zap.Logger
	jobs   chan Job
	wg     sync.WaitGroup
}

func NewPool(logger *zap.Logger, concurrency, queueSize int) *Pool {
	if concurrency <= 0 {
		concurrency = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}
	p := &Pool{
		logger: logger,
		jobs:   make(chan Job, queueSize),
	}
	p.start(concurrency)
	return p
}

func (p *Pool) start(concurrency int) {
	for i := 0; i < concurrency; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				p.run(job)
			}
		}()
	}
}

func (p *Pool) run(job Job) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("worker job panicked", zap.Any("panic", r))
		}
	}()
	job(context.Background())
}

// Submit encola un job sin bloquear. Devuelve ErrQueueFull si la cola esta
// llena.
func (p *Pool) Submit(job Job) error {
	select {
	case p.jobs <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Stop cierra la cola y espera a que terminen los jobs en vuelo.
func (p *Pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}
