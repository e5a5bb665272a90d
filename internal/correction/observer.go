package correction

import (
	"log/slog"

	"github.com/MrWong99/kupu/pkg/types"
)

// Observer receives pipeline events as they happen. Implementations must be
// safe for concurrent use when one Observer is shared by several pipelines.
type Observer interface {
	// Corrected is called for every correction applied to the text.
	Corrected(pass Pass, rec types.CorrectionRecord)

	// Suggested is called for every correction withheld because its
	// confidence is below the threshold.
	Suggested(pass Pass, rec types.CorrectionRecord)

	// Recognised is called for every lexicon term found already spelled
	// correctly.
	Recognised(pass Pass, m types.Match)
}

// Compile-time interface assertions.
var (
	_ Observer = LogObserver{}
	_ Observer = nopObserver{}
)

// LogObserver writes pipeline events to a [slog.Logger] at debug level.
type LogObserver struct {
	Logger *slog.Logger
}

func (o LogObserver) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

// Corrected implements [Observer].
func (o LogObserver) Corrected(pass Pass, rec types.CorrectionRecord) {
	o.logger().Debug("correction applied",
		"pass", string(pass),
		"tier", string(rec.SourceTier),
		"original", rec.Original,
		"corrected", rec.Corrected,
		"confidence", rec.Confidence,
		"reason", rec.Reason,
	)
}

// Suggested implements [Observer].
func (o LogObserver) Suggested(pass Pass, rec types.CorrectionRecord) {
	o.logger().Debug("correction suggested",
		"pass", string(pass),
		"tier", string(rec.SourceTier),
		"original", rec.Original,
		"suggested", rec.Corrected,
		"confidence", rec.Confidence,
	)
}

// Recognised implements [Observer].
func (o LogObserver) Recognised(pass Pass, m types.Match) {
	o.logger().Debug("term recognised",
		"pass", string(pass),
		"tier", string(m.Tier),
		"text", m.Text,
	)
}

type nopObserver struct{}

func (nopObserver) Corrected(Pass, types.CorrectionRecord) {}
func (nopObserver) Suggested(Pass, types.CorrectionRecord) {}
func (nopObserver) Recognised(Pass, types.Match)           {}
