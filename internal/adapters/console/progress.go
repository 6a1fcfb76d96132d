// Package console renders annotation progress on the terminal.
package console

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"

	"track2text/internal/domain"
)

// Observer drives a terminal progress bar, one tick per annotated
// sample, showing the most recently resolved road or place.
type Observer struct {
	bar *progressbar.ProgressBar
}

// NewObserver sizes the bar to the expected sample count and writes to w
// (stderr in the CLI, so the bar never mixes into a redirected report).
func NewObserver(total int, w io.Writer) *Observer {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("Annotiere Samples"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(false),
	)
	return &Observer{bar: bar}
}

func (o *Observer) ObserveSample(s domain.Sample, addr domain.Address, fraction float64) {
	if label := describe(addr); label != "" {
		o.bar.Describe(fmt.Sprintf("Annotiere Samples (%s)", label))
	}
	_ = o.bar.Add(1)
}

// Finish completes the bar; call once after the pipeline is done.
func (o *Observer) Finish() {
	_ = o.bar.Finish()
}

func describe(addr domain.Address) string {
	switch {
	case addr.Road != "":
		return addr.Road
	case addr.Place != "":
		return addr.Place
	}
	return ""
}
