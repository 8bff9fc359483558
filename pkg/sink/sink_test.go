// SPDX-License-Identifier: Apache-2.0

package sink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscardMeasure(t *testing.T) {
	t.Parallel()

	n, err := Discard{}.Measure("aaaa %s bbbb", "insert me")
	require.NoError(t, err)
	assert.Equal(t, len("aaaa insert me bbbb"), n)

	n, err = Discard{}.Measure("")
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = Discard{}.Measure("%6d|%-4s|", 42, "ab")
	require.NoError(t, err)
	assert.Equal(t, len("    42|ab  |"), n)
}

func TestDefaultSink(t *testing.T) {
	t.Parallel()

	require.NotNil(t, Default)
	n, err := Default.Measure("%x", 255)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
