// Package report writes the tick resolution line.
package report

import (
	"fmt"
	"io"

	"github.com/ethpandaops/tickres/internal/tick"
	"github.com/sirupsen/logrus"
)

// Label prefixes the reported value.
const Label = "Tick count resolution:"

// Reporter queries the tick clock and prints its resolution.
type Reporter struct {
	log    logrus.FieldLogger
	source tick.Source
	rounds int
}

// NewReporter creates a reporter answering from source. rounds is only used
// by tick.SourceMeasured.
func NewReporter(log logrus.FieldLogger, source tick.Source, rounds int) *Reporter {
	return &Reporter{
		log:    log.WithField("component", "reporter"),
		source: source,
		rounds: rounds,
	}
}

// Run writes one resolution line to w. Clock failures fall back to the runtime
// resolution; only write errors are returned.
func (r *Reporter) Run(w io.Writer) error {
	start := tick.Now()

	res, err := tick.Resolution(r.source, r.rounds)
	if err != nil {
		r.log.WithError(err).WithField("source", r.source).Warn("Falling back to runtime resolution")
	}

	r.log.WithFields(logrus.Fields{
		"source":     r.source,
		"resolution": res,
		"took":       tick.Now().Sub(start).Duration(),
	}).Debug("Queried tick resolution")

	if _, err := fmt.Fprintf(w, "%s %g\n", Label, res); err != nil {
		return fmt.Errorf("failed to write resolution: %w", err)
	}

	return nil
}
