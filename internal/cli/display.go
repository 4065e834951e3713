package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/ytget/tubedl/internal/download"
	"github.com/ytget/tubedl/internal/model"
)

const progressBarWidth = 30

// clearLine erases the rest of the terminal line
const clearLine = "\033[K"

// terminalDisplay renders download state as a single redrawn progress line
type terminalDisplay struct {
	mu     sync.Mutex
	out    io.Writer
	status string
	drawn  bool
}

func newTerminalDisplay(out io.Writer) *terminalDisplay {
	return &terminalDisplay{out: out}
}

func (d *terminalDisplay) SetControlsEnabled(enabled bool) {}

func (d *terminalDisplay) SetProgress(fraction float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if fraction <= 0 {
		d.endLine()
		return
	}
	fmt.Fprintf(d.out, "\r%s %5.1f%% %s%s", RenderBar(fraction, progressBarWidth), fraction*100, FStream(d.status), clearLine)
	d.drawn = true
}

func (d *terminalDisplay) SetStatus(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.status = text
	if text == "" {
		d.endLine()
	}
}

func (d *terminalDisplay) Warn(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.endLine()
	PrintWarning(d.out, download.WarningText(err))
}

func (d *terminalDisplay) NotifySuccess(kind model.Kind) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.endLine()
	PrintSuccess(d.out, download.SuccessMessage(kind))
}

func (d *terminalDisplay) NotifyFailure(kind model.FailureKind, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.endLine()
	title, text := download.FailureMessage(kind, err)
	PrintError(d.out, title+": "+text)
}

func (d *terminalDisplay) endLine() {
	if d.drawn {
		fmt.Fprintln(d.out)
		d.drawn = false
	}
}
