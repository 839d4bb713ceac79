// Package capture collects the items a build reports through engine messages.
package capture

import (
	"iter"
	"strings"
	"sync"

	"go.trai.ch/sniff/internal/core/domain"
	"go.trai.ch/sniff/internal/core/ports"
)

// Listener accumulates item names from messages raised by the Message task.
// It is safe for concurrent use; the engine may deliver events from several goroutines.
type Listener struct {
	mu    sync.Mutex
	items []string
}

// New creates an empty Listener.
func New() *Listener {
	return &Listener{}
}

// HandleMessage records the items carried by a message from the sentinel sender.
// Messages from any other sender, and empty messages, are ignored.
func (l *Listener) HandleMessage(event domain.MessageEvent) {
	if !strings.EqualFold(event.SenderName, domain.MessageSenderName) || event.Message == "" {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for _, fragment := range strings.Split(event.Message, domain.ItemDelimiter) {
		if fragment == "" {
			continue
		}
		l.items = append(l.items, fragment)
	}
}

// ItemsBuilt yields every recorded item in arrival order.
// The first occurrence of a name is reported as original, later ones as duplicates.
// Each call iterates over a fresh snapshot taken under the lock.
func (l *Listener) ItemsBuilt() iter.Seq[domain.BuiltItem] {
	return func(yield func(domain.BuiltItem) bool) {
		snapshot := l.snapshot()
		seen := make(map[string]struct{}, len(snapshot))

		for _, name := range snapshot {
			_, dup := seen[name]
			if !dup {
				seen[name] = struct{}{}
			}
			if !yield(domain.BuiltItem{Name: name, IsDuplicate: dup}) {
				return
			}
		}
	}
}

// Len returns the number of raw items recorded so far, duplicates included.
func (l *Listener) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

func (l *Listener) snapshot() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]string, len(l.items))
	copy(out, l.items)
	return out
}

// Factory creates a fresh Listener per build.
type Factory struct{}

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// NewCollector implements ports.CollectorFactory.
func (f *Factory) NewCollector() ports.ItemCollector {
	return New()
}
