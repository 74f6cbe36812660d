package omni

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/hdtodd/omnisensor-433/internal/options"
)

// DecodeOptions configures decoding. The zero value uses the protocol
// defaults: 2 minimum repeated rows and the process standard logger.
type DecodeOptions struct {
	// MinRepeats overrides how many identical rows must agree before a
	// frame is accepted.
	MinRepeats int
	// Logger receives debug-level diagnostics for dropped frames.
	Logger *logrus.Logger
}

func (opts DecodeOptions) toInternal(ctx context.Context) (context.Context, int) {
	if opts.Logger != nil {
		ctx = options.WithLogger(ctx, logrus.NewEntry(opts.Logger))
	}
	return ctx, options.MinRepeats(opts.MinRepeats)
}
