package event

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/ddd-commerce/backend/domain"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type Option func(ed *eventDispatcher)

// WithLogger makes the dispatcher log dispatches and handler failures.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(ed *eventDispatcher) {
		if logger != nil {
			ed.logger = logger
		}
	}
}

// WithFailureIsolation switches Notify from stopping at the first failing
// handler to attempting every handler and returning all of their errors
// combined.
func WithFailureIsolation() Option {
	return func(ed *eventDispatcher) {
		ed.isolateFailures = true
	}
}

type eventDispatcher struct {
	handlers        map[string][]domain.EventHandler
	mutex           sync.RWMutex
	logger          *zap.SugaredLogger
	isolateFailures bool
}

func NewEventDispatcher(options ...Option) *eventDispatcher {
	ed := &eventDispatcher{
		handlers: make(map[string][]domain.EventHandler),
		logger:   zap.NewNop().Sugar(),
	}

	for _, fn := range options {
		fn(ed)
	}

	return ed
}

// Register appends handler to the handlers of eventName. The same handler
// may be registered more than once and is then invoked once per
// registration.
func (ed *eventDispatcher) Register(eventName string, handler domain.EventHandler) {
	if handler == nil {
		return
	}

	ed.mutex.Lock()
	defer ed.mutex.Unlock()

	ed.handlers[eventName] = append(ed.handlers[eventName], handler)
}

// Unregister removes every registration of handler for eventName.
func (ed *eventDispatcher) Unregister(eventName string, handler domain.EventHandler) {
	ed.mutex.Lock()
	defer ed.mutex.Unlock()

	handlers, ok := ed.handlers[eventName]
	if !ok {
		return
	}

	kept := make([]domain.EventHandler, 0, len(handlers))
	for _, h := range handlers {
		if !sameHandler(h, handler) {
			kept = append(kept, h)
		}
	}

	if len(kept) == 0 {
		delete(ed.handlers, eventName)
		return
	}

	ed.handlers[eventName] = kept
}

func (ed *eventDispatcher) UnregisterAll() {
	ed.mutex.Lock()
	defer ed.mutex.Unlock()

	ed.handlers = make(map[string][]domain.EventHandler)
}

// Notify invokes the handlers registered for the event's name in
// registration order on the calling goroutine. The handler list is
// snapshotted before the first call, so handlers may register, unregister
// or notify on the same dispatcher.
//
// By default the first handler error is returned as is and the remaining
// handlers are skipped. With WithFailureIsolation every handler runs and
// the errors are combined.
func (ed *eventDispatcher) Notify(event domain.Event) error {
	if event == nil {
		return nil
	}

	name := event.EventName()
	handlers := ed.snapshot(name)
	if len(handlers) == 0 {
		return nil
	}

	ed.logger.Debugw("event dispatched",
		zap.String("event", name),
		zap.Int("handlers", len(handlers)),
	)

	var errs error
	for i, handler := range handlers {
		if err := handler.Handle(event); err != nil {
			ed.logger.Warnw("event handler failed",
				zap.String("event", name),
				zap.Int("position", i),
				zap.Error(err),
			)

			if !ed.isolateFailures {
				return err
			}

			errs = multierr.Append(errs, fmt.Errorf("%s handler %d: %w", name, i, err))
		}
	}

	return errs
}

// Handlers returns a copy of the registry.
func (ed *eventDispatcher) Handlers() map[string][]domain.EventHandler {
	ed.mutex.RLock()
	defer ed.mutex.RUnlock()

	registry := make(map[string][]domain.EventHandler, len(ed.handlers))
	for name, handlers := range ed.handlers {
		registry[name] = append([]domain.EventHandler(nil), handlers...)
	}

	return registry
}

func (ed *eventDispatcher) snapshot(eventName string) []domain.EventHandler {
	ed.mutex.RLock()
	defer ed.mutex.RUnlock()

	return append([]domain.EventHandler(nil), ed.handlers[eventName]...)
}

// sameHandler reports whether a and b are the same handler value. Handlers
// with a non-comparable dynamic type never match.
func sameHandler(a, b domain.EventHandler) bool {
	if b == nil {
		return false
	}

	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}

	return a == b
}
