package queue

import (
	"context"
	"hash/fnv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/hellostack/portal/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher fans background events out to a fixed set of workers, sharded
// by event key so events for one key are handled in order. Enqueue never
// blocks the request path: when a worker queue is full the event is dropped
// and logged.
type Dispatcher struct {
	workers   []chan ports.Event
	processor ports.EventProcessor
	log       zerolog.Logger
	onDrop    func()
	wg        sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, processor ports.EventProcessor, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:   make([]chan ports.Event, numWorkers),
		processor: processor,
		log:       log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.Event, channelBuffer)
	}
	return d
}

// OnDrop registers a callback invoked for every dropped event.
func (d *Dispatcher) OnDrop(fn func()) { d.onDrop = fn }

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Wait blocks until every worker has returned.
func (d *Dispatcher) Wait() { d.wg.Wait() }

// Enqueue queues event on the worker responsible for its key.
func (d *Dispatcher) Enqueue(event ports.Event) {
	select {
	case d.workers[d.shardIndex(event.Key)] <- event:
	default:
		d.log.Warn().Str("key", event.Key).Msg("event queue full, dropping event")
		if d.onDrop != nil {
			d.onDrop()
		}
	}
}

// shardIndex maps a key deterministically to a worker index.
func (d *Dispatcher) shardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.Event) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			d.process(ctx, id, event)
		}
	}
}

// process runs the processor with panics contained to the single event.
func (d *Dispatcher) process(ctx context.Context, id int, event ports.Event) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Error().Interface("panic", r).Str("key", event.Key).Int("worker_id", id).Msg("event handler panicked")
		}
	}()
	if err := d.processor.Process(ctx, event); err != nil {
		d.log.Error().Err(err).
			Str("key", event.Key).
			Int("worker_id", id).
			Msg("event processing failed")
	}
}
