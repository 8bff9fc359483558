// SPDX-License-Identifier: Apache-2.0

package esb

import (
	"github.com/pkg/errors"
)

// These are the errors that can be returned by Buffer operations:
var (
	// CapacityOverflow means a requested capacity could not be represented.
	// Growth arithmetic is checked before any allocation happens, so a
	// buffer that returns this error is left exactly as it was.
	CapacityOverflow = errors.New("buffer capacity overflow")

	// FormatFailed means the capacity-probing sink could not measure a
	// formatted append. The buffer content is unchanged.
	FormatFailed = errors.New("unable to measure formatted output")
)
