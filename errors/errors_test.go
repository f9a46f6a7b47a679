package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	require.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestMarkPreservesMessage(t *testing.T) {
	err := Mark(Newf("corpus has %d rows", 3), ErrData)

	assert.True(t, Is(err, ErrData))
	assert.Contains(t, err.Error(), "corpus has 3 rows")
}

func TestDataErrorHelpers(t *testing.T) {
	err := NewDataError("missing column %q", "Audit Rights")
	require.True(t, IsDataError(err))
	assert.Contains(t, err.Error(), `missing column "Audit Rights"`)

	wrapped := WrapData(fmt.Errorf("open failed"), "loading corpus")
	assert.True(t, IsDataError(wrapped))
	assert.False(t, IsNotFittedError(wrapped))
}

func TestNotFittedSentinel(t *testing.T) {
	err := Wrap(ErrNotFitted, "predict")
	assert.True(t, IsNotFittedError(err))
	assert.False(t, IsDataError(err))
}

func TestSentinelsAreDistinct(t *testing.T) {
	assert.False(t, Is(ErrData, ErrNotFitted))
	assert.False(t, Is(ErrNotFitted, ErrNotConverged))
	assert.False(t, Is(ErrNotConverged, ErrData))
}
