package recipient

import (
	"sync"
	"sync/atomic"
)

// Operation names the store mutation that produced a snapshot.
type Operation string

// Store operations, as reported to observers.
const (
	OpToggleSelection   Operation = "toggle_selection"
	OpSelectAllInDomain Operation = "select_all_in_domain"
	OpDeselect          Operation = "deselect"
	OpClearAll          Operation = "clear_all"
	OpSetSearchText     Operation = "set_search_text"
	OpChooseSuggestion  Operation = "choose_suggestion"
)

// Observer is notified after a new snapshot has been published. Observers run
// while the writer lock is held, so they see snapshots in publish order and
// must not call back into the store's mutating methods.
type Observer func(op Operation, next Snapshot)

// Store holds the canonical snapshot and publishes replacements atomically.
type Store struct {
	mu        sync.Mutex
	current   atomic.Pointer[Snapshot]
	observers []Observer
}

// Option configures a Store.
type Option func(*Store)

// WithObserver registers an observer called after every mutation.
func WithObserver(observer Observer) Option {
	return func(s *Store) {
		if observer != nil {
			s.observers = append(s.observers, observer)
		}
	}
}

// NewStore returns a store initialized with a copy of recipients.
func NewStore(recipients []Recipient, opts ...Option) *Store {
	s := &Store{}
	for _, opt := range opts {
		opt(s)
	}
	initial := NewSnapshot(recipients)
	s.current.Store(&initial)
	return s
}

// NewSeededStore returns a store initialized with the seed recipients.
func NewSeededStore(opts ...Option) *Store {
	return NewStore(Seed(), opts...)
}

// Snapshot returns the current snapshot.
func (s *Store) Snapshot() Snapshot {
	return *s.current.Load()
}

// Recipients returns the current ordered recipient sequence.
func (s *Store) Recipients() []Recipient {
	return s.Snapshot().Recipients()
}

// SearchText returns the current search string.
func (s *Store) SearchText() string {
	return s.Snapshot().SearchText()
}

// ToggleSelection flips the selection of email.
func (s *Store) ToggleSelection(email string) Snapshot {
	return s.apply(OpToggleSelection, func(cur Snapshot) Snapshot { return ToggleSelection(cur, email) })
}

// SelectAllInDomain selects every recipient in domain.
func (s *Store) SelectAllInDomain(domain string) Snapshot {
	return s.apply(OpSelectAllInDomain, func(cur Snapshot) Snapshot { return SelectAllInDomain(cur, domain) })
}

// Deselect clears the selection of email.
func (s *Store) Deselect(email string) Snapshot {
	return s.apply(OpDeselect, func(cur Snapshot) Snapshot { return Deselect(cur, email) })
}

// ClearAll deselects every recipient.
func (s *Store) ClearAll() Snapshot {
	return s.apply(OpClearAll, ClearAll)
}

// SetSearchText replaces the search string.
func (s *Store) SetSearchText(text string) Snapshot {
	return s.apply(OpSetSearchText, func(cur Snapshot) Snapshot { return SetSearchText(cur, text) })
}

// ChooseSuggestion clears the search text and toggles email.
func (s *Store) ChooseSuggestion(email string) Snapshot {
	return s.apply(OpChooseSuggestion, func(cur Snapshot) Snapshot { return ChooseSuggestion(cur, email) })
}

func (s *Store) apply(op Operation, transform func(Snapshot) Snapshot) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := transform(*s.current.Load())
	s.current.Store(&next)
	for _, observe := range s.observers {
		observe(op, next)
	}
	return next
}
