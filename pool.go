// SPDX-License-Identifier: Apache-2.0

package esb

import (
	"github.com/loopholelabs/common/pkg/pool"
)

var (
	bufferPool = pool.NewPool[Buffer, *Buffer](func() *Buffer {
		return New()
	})
)

// Get retrieves a recycled Buffer from the package pool, or constructs one
// with default options. Pooled buffers keep their storage across reuse, so
// hot paths that build and discard strings constantly avoid reallocating.
func Get() *Buffer {
	return bufferPool.Get()
}

// Put resets b and returns it to the pool. The caller must not touch b, or
// any view obtained from it, afterward. Buffers constructed with custom
// options should not be pooled: the next Get may hand them to a caller
// expecting defaults.
func Put(b *Buffer) {
	bufferPool.Put(b)
}
