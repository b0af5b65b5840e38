package contract

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/huangsam/votetab/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataLoadError(t *testing.T) {
	underlying := os.ErrNotExist
	err := NewDataLoadError("/tmp/survey.parquet", "source is unreadable", underlying)

	assert.Contains(t, err.Error(), "/tmp/survey.parquet")
	assert.Contains(t, err.Error(), "source is unreadable")
	assert.ErrorIs(t, err, os.ErrNotExist, "Unwrap should expose the underlying error")
	assert.True(t, IsDataLoadError(err))

	// Detection works through wrapping too.
	wrapped := fmt.Errorf("loading failed: %w", err)
	assert.True(t, IsDataLoadError(wrapped))

	// Without an underlying error, the message still names the source.
	bare := NewDataLoadError("s3://bucket/file", "missing required column party", nil)
	assert.Contains(t, bare.Error(), "missing required column party")
	assert.NoError(t, errors.Unwrap(bare))
}

func TestUnorderedComparisonError(t *testing.T) {
	err := NewUnorderedComparisonError(schema.ReasonColumn)

	assert.Contains(t, err.Error(), string(schema.ReasonColumn))
	assert.True(t, IsUnorderedComparisonError(err))

	wrapped := fmt.Errorf("filter failed: %w", err)
	require.True(t, IsUnorderedComparisonError(wrapped))

	// The two error kinds never match each other.
	assert.False(t, IsDataLoadError(err))
	assert.False(t, IsUnorderedComparisonError(NewDataLoadError("x", "y", nil)))
}
