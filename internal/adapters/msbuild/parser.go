package msbuild

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"go.trai.ch/sniff/internal/core/domain"
	"go.trai.ch/sniff/internal/core/ports"
)

const maxLineSize = 1 << 20

var (
	nodePrefix   = regexp.MustCompile(`^\s*(\d+)>`)
	taskIDSuffix = regexp.MustCompile(`\s*\(TaskId:\d+\)$`)
	taskStart    = regexp.MustCompile(`^Task "([^"]+)"$`)
	taskDone     = regexp.MustCompile(`^Done executing task "([^"]+)"`)
)

// consoleParser turns the engine's console log into message events.
// Lines between `Task "X"` and `Done executing task "X".` are attributed to X; anything
// else is forwarded with an empty sender. Task state is tracked per build node.
// Entries naming the snapshot file are dropped; the snapshot stands in for the project.
type consoleParser struct {
	listeners []ports.Listener
	snapshot  string
	tasks     map[string]string
}

func newConsoleParser(listeners []ports.Listener, snapshot string) *consoleParser {
	return &consoleParser{
		listeners: listeners,
		snapshot:  snapshot,
		tasks:     make(map[string]string),
	}
}

// parse consumes r line by line until EOF. After a read error the rest of r is drained
// so the engine never blocks on a full pipe.
func (p *consoleParser) parse(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		p.parseLine(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		_, _ = io.Copy(io.Discard, r)
		return err
	}
	return nil
}

func (p *consoleParser) parseLine(raw string) {
	line := strings.TrimRight(raw, "\r")

	node := ""
	if m := nodePrefix.FindStringSubmatch(line); m != nil {
		node = m[1]
		line = line[len(m[0]):]
	}
	line = strings.TrimSpace(taskIDSuffix.ReplaceAllString(line, ""))

	if m := taskStart.FindStringSubmatch(line); m != nil {
		p.tasks[node] = m[1]
		return
	}
	if m := taskDone.FindStringSubmatch(line); m != nil {
		if p.tasks[node] == m[1] {
			delete(p.tasks, node)
		}
		return
	}

	if line == "" || strings.HasPrefix(line, "Task Parameter:") {
		return
	}
	if line = withoutSnapshot(line, p.snapshot); line == "" {
		return
	}

	p.emit(domain.MessageEvent{SenderName: p.tasks[node], Message: line})
}

func (p *consoleParser) emit(event domain.MessageEvent) {
	for _, l := range p.listeners {
		l.HandleMessage(event)
	}
}

// withoutSnapshot removes the delimited entries of msg whose file name is snapshot.
func withoutSnapshot(msg, snapshot string) string {
	if snapshot == "" || !strings.Contains(msg, snapshot) {
		return msg
	}

	entries := strings.Split(msg, domain.ItemDelimiter)
	kept := entries[:0]
	for _, entry := range entries {
		name := strings.TrimSpace(entry)
		if i := strings.LastIndexAny(name, `/\`); i >= 0 {
			name = name[i+1:]
		}
		if name != snapshot {
			kept = append(kept, entry)
		}
	}
	return strings.TrimSpace(strings.Join(kept, domain.ItemDelimiter))
}
