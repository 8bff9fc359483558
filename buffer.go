// SPDX-License-Identifier: Apache-2.0

package esb

import (
	"bytes"
)

// Buffer is an extensible byte accumulator whose content is always available
// as a NUL-terminated sequence. Storage is allocated lazily on first use and
// capacity never decreases over the buffer's lifetime; a trailing terminator
// slot is reserved in every allocation.
//
// The zero value is ready to use with default options. A Buffer must not be
// mutated concurrently.
type Buffer struct {
	// storage holds content plus the terminator slot; len(storage) is the
	// allocated capacity. Empty until first use.
	storage []byte
	used    int
	opts    *Options
}

// New returns a constructed Buffer with no storage allocated yet.
func New(options ...Option) *Buffer {
	return &Buffer{
		opts: loadOptions(options...),
	}
}

func (b *Buffer) options() *Options {
	if b.opts == nil {
		b.opts = loadOptions()
	}
	return b.opts
}

// init allocates the first storage for the buffer, sized to hold at least
// minLen content bytes plus the terminator.
func (b *Buffer) init(minLen int) error {
	if len(b.storage) != 0 {
		return nil
	}
	opts := b.options()
	if minLen < opts.Quantum {
		minLen = opts.Quantum
	}
	size := minLen + 1
	if size <= minLen {
		return CapacityOverflow
	}
	b.storage = make([]byte, size)
	b.used = 0
	return nil
}

// grow reallocates to at least the current capacity plus extra, preserving
// content and the terminator. Capacity never shrinks.
func (b *Buffer) grow(extra int) error {
	current := len(b.storage)
	size := current + extra
	if extra < 0 || size < current {
		return CapacityOverflow
	}
	if size < b.options().Quantum {
		size = b.options().Quantum
	}
	next := make([]byte, size)
	copy(next, b.storage)
	b.storage = next
	return nil
}

// ensure makes room for n more content bytes while keeping the terminator
// slot free. The remaining-space check is deliberately <=, not <: equality
// would leave no room for the terminator.
func (b *Buffer) ensure(n int) error {
	if len(b.storage) == 0 {
		return b.init(n)
	}
	if len(b.storage)-b.used <= n {
		return b.grow(n)
	}
	return nil
}

// ForceAllocation grows the buffer so its capacity is at least minTotal
// bytes. It is a pre-sizing hook for callers about to issue a burst of
// writes; content is unaffected and capacity never shrinks.
func (b *Buffer) ForceAllocation(minTotal int) error {
	if len(b.storage) == 0 {
		if err := b.init(0); err != nil {
			return err
		}
	}
	if len(b.storage) < minTotal {
		return b.grow(minTotal - len(b.storage))
	}
	return nil
}

// Write appends p to the buffer. The length is trusted; every other append
// funnels through here. Implements io.Writer and never returns a short
// write without an error.
func (b *Buffer) Write(p []byte) (int, error) {
	if err := b.ensure(len(p)); err != nil {
		return 0, err
	}
	copy(b.storage[b.used:], p)
	b.used += len(p)
	b.storage[b.used] = 0
	return len(p), nil
}

// WriteString appends s. An empty string is a no-op and does not allocate.
// Implements io.StringWriter.
func (b *Buffer) WriteString(s string) (int, error) {
	if len(s) == 0 {
		return 0, nil
	}
	if err := b.ensure(len(s)); err != nil {
		return 0, err
	}
	copy(b.storage[b.used:], s)
	b.used += len(s)
	b.storage[b.used] = 0
	return len(s), nil
}

// WriteByte appends a single byte. Implements io.ByteWriter.
func (b *Buffer) WriteByte(c byte) error {
	if err := b.ensure(1); err != nil {
		return err
	}
	b.storage[b.used] = c
	b.used++
	b.storage[b.used] = 0
	return nil
}

// WriteCString appends the content of p up to, and excluding, its first NUL
// byte. Callers holding terminator-delimited byte sequences use this to let
// the content determine its own length. A zero content length is a no-op.
func (b *Buffer) WriteCString(p []byte) (int, error) {
	n := cstringLen(p)
	if n == 0 {
		return 0, nil
	}
	return b.Write(p[:n])
}

// WriteCStringN appends claimed bytes of p, defensively re-scanning p for
// its true terminator-delimited length first. A claimed length longer than
// the true content is a caller contract violation: a diagnostic is logged
// and the append clamps to the true length. The scan never reads past p's
// own terminator.
func (b *Buffer) WriteCStringN(p []byte, claimed int) (int, error) {
	if claimed < 0 {
		claimed = 0
	}
	if actual := cstringLen(p); actual < claimed {
		b.options().Logger.Warn().
			Int("claimed", claimed).
			Int("actual", actual).
			Msg("bounded append claims more bytes than the string holds")
		claimed = actual
	}
	return b.Write(p[:claimed])
}

// cstringLen is the content length of a terminator-delimited byte sequence,
// bounded by len(p) when no terminator is present.
func cstringLen(p []byte) int {
	if i := bytes.IndexByte(p, 0); i >= 0 {
		return i
	}
	return len(p)
}

// materialize performs the lazy first allocation for read paths, which can
// never fail: the requested size is quantum+1.
func (b *Buffer) materialize() {
	if len(b.storage) == 0 {
		b.storage = make([]byte, b.options().Quantum+1)
		b.used = 0
	}
}

// Bytes returns the buffer content as a read-only view into the buffer's
// storage. It never returns nil: an unallocated buffer materializes empty
// storage first. The view is invalidated by the next mutating call.
func (b *Buffer) Bytes() []byte {
	b.materialize()
	return b.storage[:b.used]
}

// String returns the accumulated content.
func (b *Buffer) String() string {
	b.materialize()
	return string(b.storage[:b.used])
}

// CString returns the content including its trailing NUL terminator, for
// handing to consumers that expect terminator-delimited sequences. Like
// Bytes, the view is invalidated by the next mutating call.
func (b *Buffer) CString() []byte {
	b.materialize()
	return b.storage[:b.used+1]
}

// Copy returns a detached, owned copy of the content including the trailing
// terminator, or nil when the buffer is empty. Mutating the source buffer
// afterward does not affect the copy.
func (b *Buffer) Copy() []byte {
	if b.used == 0 {
		return nil
	}
	out := make([]byte, b.used+1)
	copy(out, b.storage[:b.used+1])
	return out
}

// Len returns the number of content bytes, excluding the terminator.
func (b *Buffer) Len() int {
	return b.used
}

// Cap returns the allocated capacity, including the terminator slot.
// Diagnostic and testing use.
func (b *Buffer) Cap() int {
	return len(b.storage)
}

// Reset empties the buffer for reuse. Storage is retained, so a reset
// buffer appends without reallocating until it outgrows its old capacity.
func (b *Buffer) Reset() {
	b.materialize()
	b.used = 0
	b.storage[0] = 0
}

// Release frees the buffer's storage and returns it to the constructed
// state. Safe to call on an already-released buffer; the buffer may be
// reused afterward and will allocate lazily again.
func (b *Buffer) Release() {
	b.storage = nil
	b.used = 0
}
