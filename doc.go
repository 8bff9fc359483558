// SPDX-License-Identifier: Apache-2.0

// Package esb implements an extensible string buffer: a byte accumulator
// for building text incrementally, in arbitrarily small pieces, without
// predicting the final size up front. The accumulated content is always
// available as a NUL-terminated sequence, and appends never corrupt
// previously written bytes even when storage is reallocated underneath.
//
// A Buffer allocates lazily on first use and grows by at least its
// configured quantum. Formatted appends are measured through a
// capacity-probing sink before a single byte is committed, so a Writef
// either lands whole or leaves the buffer untouched.
//
//	b := esb.Get()
//	defer esb.Put(b)
//
//	b.WriteString("section ")
//	if _, err := b.Writef("%-12s size %d", name, size); err != nil {
//		return err
//	}
//	report := b.String()
//
// Buffers are not safe for concurrent use; callers own serialization.
package esb
