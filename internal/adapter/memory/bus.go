package memory

import (
	"context"
	"sync"

	"github.com/quartermill/reviewdesk/internal/domain/event"
	porteventbus "github.com/quartermill/reviewdesk/internal/port/eventbus"
)

// Bus is an in-process event bus for dev mode. Handlers run synchronously in
// the publisher's goroutine; dev-mode subscribers are expected to be cheap.
type Bus struct {
	mu   sync.RWMutex
	subs map[event.Channel]map[*busSubscription]struct{}
}

func NewBus() *Bus {
	return &Bus{subs: make(map[event.Channel]map[*busSubscription]struct{})}
}

func (b *Bus) Publish(ctx context.Context, e event.Event) error {
	ch := event.ChannelFor(e.Type)

	b.mu.RLock()
	var handlers []porteventbus.Handler
	for sub := range b.subs[ch] {
		handlers = append(handlers, sub.handler)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(ctx, e)
	}
	return nil
}

func (b *Bus) Subscribe(_ context.Context, ch event.Channel, handler porteventbus.Handler) (porteventbus.Subscription, error) {
	sub := &busSubscription{bus: b, channel: ch, handler: handler}

	b.mu.Lock()
	if b.subs[ch] == nil {
		b.subs[ch] = make(map[*busSubscription]struct{})
	}
	b.subs[ch][sub] = struct{}{}
	b.mu.Unlock()

	return sub, nil
}

type busSubscription struct {
	bus     *Bus
	channel event.Channel
	handler porteventbus.Handler
}

func (s *busSubscription) Unsubscribe() {
	s.bus.mu.Lock()
	delete(s.bus.subs[s.channel], s)
	s.bus.mu.Unlock()
}
