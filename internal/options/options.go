package options

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/hdtodd/omnisensor-433/internal/frame"
)

type contextKey struct{}

// WithLogger stores the provided log entry inside the context. Decode stages
// use it to report recoverable frame drops at debug verbosity.
func WithLogger(ctx context.Context, entry *logrus.Entry) context.Context {
	if entry == nil {
		return ctx
	}
	return context.WithValue(ctx, contextKey{}, entry)
}

// Logger retrieves the log entry from context, falling back to the process
// standard logger.
func Logger(ctx context.Context) *logrus.Entry {
	if v := ctx.Value(contextKey{}); v != nil {
		if entry, ok := v.(*logrus.Entry); ok {
			return entry
		}
	}
	return logrus.NewEntry(logrus.StandardLogger())
}

// MinRepeats normalizes a caller-supplied repeat threshold, substituting the
// protocol default for the zero value.
func MinRepeats(v int) int {
	if v <= 0 {
		return frame.MinRepeats
	}
	return v
}
