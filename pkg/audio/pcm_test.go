package audio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePCMNormalizesSamples(t *testing.T) {
	// int16 min (-32768) then zero, little-endian.
	data := []byte{0x00, 0x80, 0x00, 0x00}

	buf, err := DecodePCM(data, 24000, 1)
	require.NoError(t, err)
	require.Len(t, buf.Channels, 1)
	assert.Equal(t, []float64{-1.0, 0.0}, buf.Channels[0])
}

func TestDecodePCMDeinterleavesStereo(t *testing.T) {
	// Frames: (L=1, R=2), (L=3, R=4), plain int16 values.
	data := []byte{
		0x01, 0x00, 0x02, 0x00,
		0x03, 0x00, 0x04, 0x00,
	}

	buf, err := DecodePCM(data, 24000, 2)
	require.NoError(t, err)
	require.Len(t, buf.Channels, 2)
	assert.Equal(t, []float64{1.0 / 32768.0, 3.0 / 32768.0}, buf.Channels[0])
	assert.Equal(t, []float64{2.0 / 32768.0, 4.0 / 32768.0}, buf.Channels[1])
	assert.Equal(t, 2, buf.FrameCount())
}

func TestDecodePCMRejectsMalformedInput(t *testing.T) {
	_, err := DecodePCM([]byte{0x01}, 24000, 1)
	assert.Error(t, err, "odd byte count")

	_, err = DecodePCM([]byte{0x01, 0x00}, 24000, 2)
	assert.Error(t, err, "one sample cannot fill two channels")

	_, err = DecodePCM([]byte{0x01, 0x00}, 0, 1)
	assert.Error(t, err, "zero sample rate")

	_, err = DecodePCM([]byte{0x01, 0x00}, 24000, 0)
	assert.Error(t, err, "zero channels")
}

func TestBufferDuration(t *testing.T) {
	data := make([]byte, 24000*2) // one second of mono silence
	buf, err := DecodePCM(data, 24000, 1)
	require.NoError(t, err)
	assert.Equal(t, time.Second, buf.Duration())
}
