package chemops

// Service runs protonation and depiction operations against one chemistry
// engine instance. Calls are synchronous and stateless; nothing is cached
// between them. A Service is not safe for concurrent use because the
// engine pipe is serialized; use ServicePool for parallel work.
type Service struct {
	cfg    serviceConfig
	engine Engine
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithEngine).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{timeout: defaultTimeout},
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create the Marvin engine if not injected (e.g., by tests)
	if s.engine == nil {
		s.engine = newMarvinEngine(s.cfg.timeout)
	}

	return s
}

// Close releases engine resources (the JVM bridge process).
func (s *Service) Close() error {
	if s.engine != nil {
		return s.engine.Close()
	}
	return nil
}
