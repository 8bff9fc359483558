// SPDX-License-Identifier: Apache-2.0

// Package sink provides the capacity-probing sink used to measure formatted
// output before it is committed to a buffer. A Sink only reports the number
// of bytes a fully expanded format would occupy; it never needs storage
// large enough to hold the result.
package sink

import (
	"fmt"
	"io"
)

// Sink measures the expanded size of a printf-style format. Implementations
// return the byte count the rendering would produce, or an error when the
// format cannot be rendered at all.
type Sink interface {
	Measure(format string, args ...interface{}) (int, error)
}

// Default is the Sink used by buffers unless one is configured explicitly.
var Default Sink = Discard{}

// Discard measures by rendering into io.Discard, the null-device analogue:
// the bytes go nowhere, only the count comes back.
type Discard struct{}

func (Discard) Measure(format string, args ...interface{}) (int, error) {
	return fmt.Fprintf(io.Discard, format, args...)
}
