package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/thoreinstein/ddx/internal/logging"
)

// Progress renders a per-file progress bar on stderr. It stays silent
// when disabled or when stderr is not a terminal, so piped and
// scripted runs see no bar.
type Progress struct {
	enabled bool
	bar     *progressbar.ProgressBar
}

// NewProgress creates a Progress. Pass enabled=false for --no-progress
// or quiet mode.
func NewProgress(enabled bool) *Progress {
	return &Progress{enabled: enabled && logging.IsTTY(os.Stderr)}
}

// StartScan begins a bar over totalFiles source files.
func (p *Progress) StartScan(totalFiles int) {
	if !p.enabled || totalFiles == 0 {
		return
	}
	p.bar = progressbar.NewOptions(totalFiles,
		progressbar.OptionSetDescription("Scanning sources"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("files/s"),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)
}

// FileDone advances the bar by one file.
func (p *Progress) FileDone() {
	if p.bar != nil {
		p.bar.Add(1)
	}
}

// Finish completes and clears the bar.
func (p *Progress) Finish() {
	if p.bar != nil {
		p.bar.Finish()
		p.bar = nil
	}
}
