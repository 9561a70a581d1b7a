package diag

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Level is the severity of a diagnostic.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// Diagnostic is a single finding about a data file.
type Diagnostic struct {
	Level   Level
	Source  string // data file path, empty for built-in data
	Field   string // e.g. menu[2].path
	Message string
	Err     error
}

func (d Diagnostic) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "[%s] ", d.Level)
	if d.Source != "" {
		b.WriteString(d.Source)
		b.WriteString(": ")
	}
	if d.Field != "" {
		b.WriteString(d.Field)
		b.WriteString(": ")
	}
	b.WriteString(d.Message)
	if d.Err != nil {
		b.WriteString(": ")
		b.WriteString(d.Err.Error())
	}

	return b.String()
}

func (d Diagnostic) Unwrap() error {
	return d.Err
}

// Sink collects diagnostics.
type Sink interface {
	// Report adds a diagnostic to the sink.
	Report(d Diagnostic)

	// Diagnostics returns all collected diagnostics.
	Diagnostics() []Diagnostic

	// HasLevel reports whether any diagnostic at or above level was reported.
	HasLevel(level Level) bool

	// Clear removes all diagnostics.
	Clear()
}

// Collector is the default thread-safe Sink.
type Collector struct {
	mu          sync.RWMutex
	diagnostics []Diagnostic
	minLevel    Level

	onReport func(Diagnostic)
}

type CollectorOption func(*Collector)

// WithMinLevel drops diagnostics below level.
func WithMinLevel(level Level) CollectorOption {
	return func(c *Collector) {
		c.minLevel = level
	}
}

// WithOnReport streams each collected diagnostic to fn.
// fn is called outside the collector's lock.
func WithOnReport(fn func(Diagnostic)) CollectorOption {
	return func(c *Collector) {
		c.onReport = fn
	}
}

func NewCollector(opts ...CollectorOption) *Collector {
	c := &Collector{
		minLevel: LevelDebug,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Collector) Report(d Diagnostic) {
	if d.Level < c.minLevel {
		return
	}

	c.mu.Lock()
	c.diagnostics = append(c.diagnostics, d)
	callback := c.onReport
	c.mu.Unlock()

	if callback != nil {
		callback(d)
	}
}

func (c *Collector) Diagnostics() []Diagnostic {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.diagnostics)
}

func (c *Collector) HasLevel(level Level) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.ContainsFunc(c.diagnostics, func(d Diagnostic) bool {
		return d.Level >= level
	})
}

func (c *Collector) Clear() {
	c.mu.Lock()
	c.diagnostics = nil
	c.mu.Unlock()
}

// Summary returns e.g. "1 error(s), 2 warning(s)".
func (c *Collector) Summary() string {
	return Summarize(c.Diagnostics())
}

// Summarize formats per-level counts of diagnostics, most severe first.
func Summarize(diagnostics []Diagnostic) string {
	if len(diagnostics) == 0 {
		return "no diagnostics"
	}

	counts := make(map[Level]int)
	for _, d := range diagnostics {
		counts[d.Level]++
	}

	var parts []string
	for _, level := range []Level{LevelError, LevelWarning, LevelInfo, LevelDebug} {
		if n := counts[level]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s(s)", n, level))
		}
	}
	return strings.Join(parts, ", ")
}
