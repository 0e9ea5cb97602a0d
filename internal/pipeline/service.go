package pipeline

// Service bundles both stages behind the job handler interface.
type Service struct {
	*Coordinator
	*Orchestrator
}

func NewService(c *Coordinator, o *Orchestrator) *Service {
	return &Service{Coordinator: c, Orchestrator: o}
}
