package ports

import (
	"iter"

	"go.trai.ch/sniff/internal/core/domain"
)

//go:generate mockgen -source=listener.go -destination=mocks/mock_listener.go -package=mocks

// Listener observes messages raised by the build engine.
// Engines may call HandleMessage from several goroutines at once.
type Listener interface {
	HandleMessage(event domain.MessageEvent)
}

// ItemCollector is a Listener that accumulates the items reported during one build.
type ItemCollector interface {
	Listener
	// ItemsBuilt returns the items seen so far in arrival order, marking repeats as duplicates.
	ItemsBuilt() iter.Seq[domain.BuiltItem]
}

// CollectorFactory creates a fresh ItemCollector for every build invocation.
type CollectorFactory interface {
	NewCollector() ItemCollector
}
