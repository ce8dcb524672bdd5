package memory

import (
	"context"
	"sync"

	"github.com/gridstats/gridiron/internal/domain/event"
)

type EventRepository struct {
	mu      sync.RWMutex
	nextID  int64
	events  map[int64]event.Event
	weather map[int64]event.Weather
}

func NewEventRepository() *EventRepository {
	return &EventRepository{
		events:  make(map[int64]event.Event),
		weather: make(map[int64]event.Weather),
	}
}

func (r *EventRepository) GetByID(_ context.Context, id int64) (event.Event, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.events[id]
	return e, ok, nil
}

func (r *EventRepository) Insert(_ context.Context, e event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events[e.ID] = e
	return nil
}

func (r *EventRepository) InsertWeather(_ context.Context, w event.Weather) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	w.ID = r.nextID
	r.weather[w.ID] = w
	return w.ID, nil
}
