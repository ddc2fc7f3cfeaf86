package order

import (
	"github.com/avGenie/go-order-lifecycle/internal/app/storage/api/model"
)

// Service bundles the order use cases served over HTTP.
type Service struct {
	*Submitter
	*Finder
	*Lifecycle
}

func NewService(storage model.Storage, refunder Refunder, notifier Notifier) *Service {
	return &Service{
		Submitter: NewSubmitter(storage),
		Finder:    NewFinder(storage),
		Lifecycle: NewLifecycle(storage, refunder, notifier),
	}
}
