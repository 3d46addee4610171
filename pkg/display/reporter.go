// Package display renders human-readable progress for a bootstrap run.
// Output is informational only and not meant to be parsed.
package display

import (
	"fmt"
	"io"

	"github.com/arthur-debert/dotboot/pkg/output/styles"
	"github.com/arthur-debert/dotboot/pkg/types"
	"github.com/mattn/go-isatty"
)

// Reporter receives progress events from the bootstrap components
type Reporter interface {
	// Step announces a stage of the run
	Step(msg string)
	// Command announces an external command about to run
	Command(cmdline string)
	// Removing announces that an existing destination is being replaced
	Removing(path string, kind types.EntryKind)
	// Linked reports a symlink created at dest pointing to source
	Linked(dest, source string)
	// Skipped reports work that was not needed or not performed
	Skipped(msg string)
	// Done reports successful completion
	Done(msg string)
	// Failed reports the error that aborted the run
	Failed(err error)
}

// ConsoleReporter writes styled progress lines
type ConsoleReporter struct {
	w     io.Writer
	color bool
}

// NewConsoleReporter creates a reporter writing to w. Styling is applied
// only when w is a terminal.
func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{w: w, color: isTerminal(w)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (r *ConsoleReporter) style(name, s string) string {
	if !r.color {
		return s
	}
	return styles.GetStyle(name).Render(s)
}

func (r *ConsoleReporter) println(line string) {
	_, _ = fmt.Fprintln(r.w, line)
}

// Step implements Reporter
func (r *ConsoleReporter) Step(msg string) {
	r.println(r.style("Step", "🚀 "+msg))
}

// Command implements Reporter
func (r *ConsoleReporter) Command(cmdline string) {
	r.println(r.style("Command", "🔧 Running: "+cmdline))
}

// Removing implements Reporter
func (r *ConsoleReporter) Removing(path string, kind types.EntryKind) {
	r.println(fmt.Sprintf("♻️  Removing existing %s %s", kind, r.style("Path", path)))
}

// Linked implements Reporter
func (r *ConsoleReporter) Linked(dest, source string) {
	r.println(fmt.Sprintf("🔗 Linking %s -> %s", r.style("Path", dest), source))
}

// Skipped implements Reporter
func (r *ConsoleReporter) Skipped(msg string) {
	r.println(r.style("Muted", "   "+msg))
}

// Done implements Reporter
func (r *ConsoleReporter) Done(msg string) {
	r.println(r.style("Success", "✨ "+msg))
}

// Failed implements Reporter
func (r *ConsoleReporter) Failed(err error) {
	r.println(r.style("Error", "❌ "+err.Error()))
}

// Discard is a Reporter that drops every event
var Discard Reporter = discard{}

type discard struct{}

func (discard) Step(string)                      {}
func (discard) Command(string)                   {}
func (discard) Removing(string, types.EntryKind) {}
func (discard) Linked(string, string)            {}
func (discard) Skipped(string)                   {}
func (discard) Done(string)                      {}
func (discard) Failed(error)                     {}
