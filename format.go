// SPDX-License-Identifier: Apache-2.0

package esb

import (
	"fmt"

	"github.com/pkg/errors"
)

// Writef appends printf-style formatted output in two phases. The measure
// phase renders through the configured sink to learn the expanded size
// without touching the buffer; a sink failure aborts with FormatFailed and
// the buffer unchanged. The commit phase sizes the buffer for the measured
// result and renders directly into the storage tail, bounded by the
// remaining capacity. Should the render overrun the measurement, the length
// advances only by the bytes actually written, never past capacity.
//
// Writef returns the number of bytes committed.
func (b *Buffer) Writef(format string, args ...interface{}) (int, error) {
	measured, err := b.options().Sink.Measure(format, args...)
	if err != nil {
		return 0, errors.Wrap(FormatFailed, err.Error())
	}

	if err = b.ForceAllocation(b.used + measured + 1); err != nil {
		return 0, err
	}

	// Room for content only; the terminator slot stays reserved.
	tail := tailWriter{dst: b.storage[b.used : len(b.storage)-1]}
	_, _ = fmt.Fprintf(&tail, format, args...)

	b.used += tail.n
	b.storage[b.used] = 0
	return tail.n, nil
}

// tailWriter renders into a fixed slice, silently truncating once full so
// that fmt keeps formatting without error. n is the count actually copied.
type tailWriter struct {
	dst []byte
	n   int
}

func (w *tailWriter) Write(p []byte) (int, error) {
	w.n += copy(w.dst[w.n:], p)
	return len(p), nil
}
