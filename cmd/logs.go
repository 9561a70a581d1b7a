package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/olimci/cactus/pkg/diag"
)

type outputStyle int

const (
	outputPlain outputStyle = iota
	outputRich
)

// isTerminal reports whether stream is a terminal, looking through *os.File
// only. stream may be either end of the app's io.
func isTerminal(stream any) bool {
	f, ok := stream.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func styleFor(w io.Writer) outputStyle {
	if isTerminal(w) {
		return outputRich
	}
	return outputPlain
}

type logPrinter struct {
	out io.Writer
	mu  sync.Mutex

	levelStyles map[diag.Level]lipgloss.Style
	sourceStyle lipgloss.Style
	fieldStyle  lipgloss.Style
}

func newLogPrinter(style outputStyle, out io.Writer) *logPrinter {
	p := &logPrinter{out: out}
	if style != outputRich {
		return p
	}

	p.levelStyles = map[diag.Level]lipgloss.Style{
		diag.LevelDebug:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086")),
		diag.LevelInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")),
		diag.LevelWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("#f9e2af")),
		diag.LevelError:   lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8")),
	}
	p.sourceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))
	p.fieldStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
	return p
}

func (p *logPrinter) Print(d diag.Diagnostic) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintln(p.out, p.format(d))
}

func (p *logPrinter) format(d diag.Diagnostic) string {
	level, source, field := d.Level.String(), d.Source, d.Field
	if style, ok := p.levelStyles[d.Level]; ok {
		level = style.Render(level)
		source = p.sourceStyle.Render(source)
		field = p.fieldStyle.Render(field)
	}

	var b strings.Builder
	b.WriteString(level)
	b.WriteString(": ")
	if d.Source != "" {
		b.WriteString(source)
		b.WriteString(": ")
	}
	if d.Field != "" {
		b.WriteString(field)
		b.WriteString(": ")
	}

	b.WriteString(d.Message)
	if d.Err != nil {
		b.WriteString(": ")
		b.WriteString(d.Err.Error())
	}

	return b.String()
}
