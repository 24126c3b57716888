package zoo

import (
	"errors"
	"fmt"
	"sync"

	"github.com/zeusync/zoo/internal/core/events/bus"
	"github.com/zeusync/zoo/internal/core/observability/log"
)

// Entry is one lifecycle event as seen by the journal.
type Entry struct {
	Type   string
	Record Record
}

// Journal listens to the zoo lifecycle events, logs them and keeps them in
// order of arrival.
type Journal struct {
	mu      sync.Mutex
	log     log.Log
	subs    []bus.Subscription
	entries []Entry
}

func NewJournal(events bus.EventBus, logger log.Log) (*Journal, error) {
	if events == nil {
		return nil, errors.New("journal: nil event bus")
	}
	if logger == nil {
		logger = log.NewNop()
	}
	j := &Journal{log: logger.With(log.String("component", "journal"))}
	for _, eventType := range []string{EventAdopted, EventGrown, EventGrowthRejected} {
		sub, err := events.Subscribe(eventType, j.handle)
		if err != nil {
			_ = j.Close()
			return nil, fmt.Errorf("journal: subscribe %s: %w", eventType, err)
		}
		j.subs = append(j.subs, sub)
	}
	return j, nil
}

func (j *Journal) handle(e bus.Event) error {
	rec, ok := e.Data().(Record)
	if !ok {
		return fmt.Errorf("journal: unexpected payload %T for %s", e.Data(), e.Type())
	}

	fields := []log.Field{
		log.String("event", e.Type()),
		log.String("event_id", e.ID()),
		log.Uint64("animal_id", uint64(rec.ID)),
		log.String("name", rec.Name),
		log.Stringer("species", rec.Species),
		log.Int("age", rec.Age),
		log.Int("stage", rec.Stage),
	}
	if rec.Err != nil {
		fields = append(fields, log.Error(rec.Err))
	}
	j.log.Debug("lifecycle", fields...)

	j.mu.Lock()
	j.entries = append(j.entries, Entry{Type: e.Type(), Record: rec})
	j.mu.Unlock()
	return nil
}

// Entries returns a copy of everything recorded so far.
func (j *Journal) Entries() []Entry {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]Entry, len(j.entries))
	copy(out, j.entries)
	return out
}

// Close stops listening. Recorded entries stay available.
func (j *Journal) Close() error {
	var all error
	for _, sub := range j.subs {
		all = errors.Join(all, sub.Cancel())
	}
	j.subs = nil
	return all
}
