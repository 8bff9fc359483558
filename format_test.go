// SPDX-License-Identifier: Apache-2.0

package esb

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingSink refuses every measurement.
type failingSink struct{}

func (failingSink) Measure(string, ...interface{}) (int, error) {
	return 0, errors.New("probe unavailable")
}

// shortSink under-reports every measurement, forcing the commit phase onto
// its defensive truncation path.
type shortSink struct{}

func (shortSink) Measure(string, ...interface{}) (int, error) {
	return 0, nil
}

func TestWritefComposition(t *testing.T) {
	t.Parallel()

	b := New(WithQuantum(1))

	require.NoError(t, b.ForceAllocation(50))
	assert.Equal(t, 50, b.Cap())

	n, err := b.Writef("aaaa %s bbbb", "insert me")
	require.NoError(t, err)
	assert.Equal(t, 19, n)
	validate(t, b, 19, 50, "aaaa insert me bbbb")
}

func TestWritefLazyInit(t *testing.T) {
	t.Parallel()

	b := New()

	n, err := b.Writef("%d-%d", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "1-2", b.String())
}

func TestWritefGrows(t *testing.T) {
	t.Parallel()

	b := New(WithQuantum(1))

	_, err := b.WriteString("head ")
	require.NoError(t, err)

	n, err := b.Writef("%s and %s and %s", "one", "two", "three")
	require.NoError(t, err)
	assert.Equal(t, len("one and two and three"), n)
	assert.Equal(t, "head one and two and three", b.String())
	assert.Equal(t, byte(0), b.CString()[b.Len()])
}

func TestWritefMeasureError(t *testing.T) {
	t.Parallel()

	b := New(WithSink(failingSink{}))
	_, err := b.WriteString("kept")
	require.NoError(t, err)

	n, err := b.Writef("%s", "dropped")
	assert.ErrorIs(t, err, FormatFailed)
	assert.Zero(t, n)

	// Failed measurement leaves the buffer untouched.
	assert.Equal(t, "kept", b.String())
	assert.Equal(t, byte(0), b.CString()[4])
}

func TestWritefUnderMeasuredSink(t *testing.T) {
	t.Parallel()

	b := New(WithQuantum(4), WithSink(shortSink{}))

	// Measured size 0 allocates quantum+1; only what fits is committed and
	// the length never passes allocated capacity.
	n, err := b.Writef("abcdefghij")
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, 4, b.Len())
	assert.Equal(t, 5, b.Cap())
	assert.Equal(t, "abcd", b.String())
	assert.Equal(t, byte(0), b.CString()[b.Len()])
}
