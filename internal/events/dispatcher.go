package events

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/TSM-StudioService/pkg/logger"
)

const (
	defaultQueueSize  = 256
	handleTimeout     = 5 * time.Second
	shutdownWaitLimit = 10 * time.Second
)

// Handler обработчик доменного события
type Handler interface {
	Handle(ctx context.Context, event Event)
}

// Dispatcher внутрипроцессная шина доменных событий.
// Публикация неблокирующая: при переполненной очереди событие отбрасывается с предупреждением,
// основная операция никогда не ждет подписчиков.
type Dispatcher struct {
	queue    chan Event
	handlers []Handler
	logs     *logger.Logger

	wg       sync.WaitGroup
	stopOnce sync.Once
}

// NewDispatcher создает шину событий и запускает воркер доставки
func NewDispatcher(logs *logger.Logger, handlers ...Handler) *Dispatcher {
	d := &Dispatcher{
		queue:    make(chan Event, defaultQueueSize),
		handlers: handlers,
		logs:     logs,
	}

	d.wg.Add(1)
	go d.run()

	return d
}

// Publish ставит событие в очередь доставки
func (d *Dispatcher) Publish(event Event) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	select {
	case d.queue <- event:
	default:
		d.logs.Warn("events: queue full, dropping event %s for booking %d", event.Type, event.BookingID)
	}
}

// Close останавливает доставку после обработки уже поставленных событий
func (d *Dispatcher) Close() {
	d.stopOnce.Do(func() {
		close(d.queue)
	})

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(shutdownWaitLimit):
		d.logs.Warn("events: shutdown wait limit reached, some events may be unprocessed")
	}
}

func (d *Dispatcher) run() {
	defer d.wg.Done()

	for event := range d.queue {
		for _, handler := range d.handlers {
			d.dispatch(handler, event)
		}
	}
}

func (d *Dispatcher) dispatch(handler Handler, event Event) {
	defer func() {
		if r := recover(); r != nil {
			d.logs.Error("events: handler panic on event %s: %v", event.Type, r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()

	handler.Handle(ctx, event)
}
