// Package tracing is a thin facade over the schuko tracing framework.
// All packages of this module trace to the global core tracer; tests
// redirect it to the testing.T log.
package tracing

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// Tracer returns the tracer all packages of this module write to.
func Tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// P attaches a key/value pair to a trace message.
func P(key string, val interface{}) tracing.Trace {
	return gtrace.CoreTracer.P(key, val)
}

// Debugf traces a debug-level message.
func Debugf(format string, args ...interface{}) {
	gtrace.CoreTracer.Debugf(format, args...)
}

// Infof traces an info-level message.
func Infof(format string, args ...interface{}) {
	gtrace.CoreTracer.Infof(format, args...)
}

// Errorf traces an error-level message. The tokenizer uses this for
// non-fatal integrity warnings; nothing is ever propagated to callers.
func Errorf(format string, args ...interface{}) {
	gtrace.CoreTracer.Errorf(format, args...)
}

// SetTestingLog redirects tracing output to t for the duration of a test.
func SetTestingLog(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	t.Cleanup(teardown)
}
