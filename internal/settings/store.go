package settings

// Store owns the live configuration and notifies listeners after every
// change. It is only touched from Bubbletea's single-threaded Update loop.
type Store struct {
	cfg   Configuration
	hooks []func(Configuration)
}

// NewStore creates a store seeded with cfg.
func NewStore(cfg Configuration) *Store {
	return &Store{cfg: cfg.Normalize()}
}

// Config returns a copy of the current configuration.
func (s *Store) Config() Configuration {
	return s.cfg.Clone()
}

// OnChange registers fn to run after every Update, in registration order.
func (s *Store) OnChange(fn func(Configuration)) {
	s.hooks = append(s.hooks, fn)
}

// Update applies mutate to a copy of the configuration, normalizes it, stores
// it and runs the change hooks synchronously.
func (s *Store) Update(mutate func(*Configuration)) {
	next := s.cfg.Clone()
	mutate(&next)
	s.cfg = next.Normalize()
	for _, fn := range s.hooks {
		fn(s.cfg.Clone())
	}
}
