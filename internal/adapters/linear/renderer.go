// Package linear provides a line-oriented console renderer for build results.
package linear

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/sniff/internal/core/domain"
	"go.trai.ch/sniff/internal/core/ports"
	"go.trai.ch/sniff/internal/ui/output"
	"go.trai.ch/sniff/internal/ui/style"
)

// Renderer implements ports.Renderer. Results go to stdout, notices to stderr.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	output *termenv.Output

	mu sync.Mutex
}

// NewRenderer creates a new Renderer. Nil writers default to the process streams.
func NewRenderer(stdout, stderr io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Renderer{
		stdout: stdout,
		stderr: stderr,
		output: output.New(stdout),
	}
}

// RenderReport prints each target followed by the items it built.
func (r *Renderer) RenderReport(report domain.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(report.Targets) == 0 {
		_, err := fmt.Fprintln(r.stderr, "No target built any items.")
		return err
	}

	for _, target := range report.Targets {
		name := r.output.String(fmt.Sprintf("%q", target.Name)).Bold().String()
		if _, err := fmt.Fprintf(r.stdout, "Target: %s is building:\n", name); err != nil {
			return err
		}

		for _, item := range target.Items {
			if _, err := fmt.Fprintf(r.stdout, "\t%s %s\n", style.Arrow, r.item(item)); err != nil {
				return err
			}
		}
	}
	return nil
}

// RenderTargets prints one target name per line.
func (r *Renderer) RenderTargets(targets []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, target := range targets {
		if _, err := fmt.Fprintln(r.stdout, target); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) item(item domain.BuiltItem) string {
	if !item.IsDuplicate {
		return item.Name
	}
	marker := r.output.String(domain.DuplicateMarker).Foreground(r.output.Color(string(style.Yellow))).String()
	return item.Name + marker
}

var _ ports.Renderer = (*Renderer)(nil)
