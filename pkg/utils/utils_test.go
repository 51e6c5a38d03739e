package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeErrorChans(t *testing.T) {
	chan1 := make(chan error, 1)
	chan2 := make(chan error, 1)

	merged := MergeErrorChans(chan1, chan2)

	want := errors.New("boom")
	chan2 <- want

	select {
	case got := <-merged:
		assert.Equal(t, want, got)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for merged error")
	}

	// Merged channel closes once all inputs close.
	close(chan1)
	close(chan2)

	select {
	case _, open := <-merged:
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for merged channel to close")
	}
}

func TestToPtr(t *testing.T) {
	s := ToPtr("hello")
	require.NotNil(t, s)
	assert.Equal(t, "hello", *s)

	n := ToPtr(42)
	require.NotNil(t, n)
	assert.Equal(t, 42, *n)
}
