package audio

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerHappyPath(t *testing.T) {
	p := NewPlayer()
	assert.Equal(t, StateIdle, p.State())

	require.NoError(t, p.BeginLoad())
	assert.Equal(t, StateLoading, p.State())

	buf := &Buffer{SampleRate: 24000, Channels: [][]float64{{0}}}
	require.NoError(t, p.Ready(buf))
	assert.Equal(t, StateReady, p.State())
	assert.Same(t, buf, p.Buffer())

	require.NoError(t, p.Play())
	assert.Equal(t, StatePlaying, p.State())

	require.NoError(t, p.Pause())
	assert.Equal(t, StatePaused, p.State())

	require.NoError(t, p.Play())
	assert.Equal(t, StatePlaying, p.State())

	p.Stop()
	assert.Equal(t, StateIdle, p.State())
	assert.Nil(t, p.Buffer())
}

func TestPlayerFailurePath(t *testing.T) {
	p := NewPlayer()
	require.NoError(t, p.BeginLoad())

	synthErr := errors.New("synthesis failed")
	require.NoError(t, p.Fail(synthErr))
	assert.Equal(t, StateFailed, p.State())
	assert.Equal(t, synthErr, p.Err())

	// Dismissing a failure returns to Idle and clears the error.
	p.Stop()
	assert.Equal(t, StateIdle, p.State())
	assert.NoError(t, p.Err())
}

func TestPlayerRejectsInvalidTransitions(t *testing.T) {
	p := NewPlayer()

	assert.EqualError(t, p.Play(), "cannot play while idle")
	assert.EqualError(t, p.Pause(), "cannot pause while idle")
	assert.EqualError(t, p.Ready(nil), "cannot ready while idle")

	require.NoError(t, p.BeginLoad())
	assert.EqualError(t, p.BeginLoad(), "cannot begin load while loading")
	assert.EqualError(t, p.Play(), "cannot play while loading")

	require.NoError(t, p.Ready(&Buffer{SampleRate: 24000}))
	assert.EqualError(t, p.Fail(errors.New("late")), "cannot fail while ready")
}

func TestPlayerCloseReleasesBuffer(t *testing.T) {
	p := NewPlayer()
	require.NoError(t, p.BeginLoad())
	require.NoError(t, p.Ready(&Buffer{SampleRate: 24000}))

	p.Close()
	assert.Equal(t, StateIdle, p.State())
	assert.Nil(t, p.Buffer())
}
