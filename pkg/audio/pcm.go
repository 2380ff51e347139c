package audio

import (
	"encoding/binary"
	"fmt"
	"time"
)

// Buffer holds decoded floating-point audio, one sample slice per channel,
// every sample normalized to [-1.0, 1.0).
type Buffer struct {
	SampleRate int
	Channels   [][]float64
}

// FrameCount returns the number of per-channel sample frames.
func (b *Buffer) FrameCount() int {
	if len(b.Channels) == 0 {
		return 0
	}
	return len(b.Channels[0])
}

// Duration returns the playback length of the buffer.
func (b *Buffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(b.FrameCount()) / float64(b.SampleRate) * float64(time.Second))
}

// DecodePCM reinterprets raw little-endian signed 16-bit PCM as normalized
// floating-point samples. Interleaved input: sample i of channel c sits at
// flat index i*numChannels+c.
func DecodePCM(data []byte, sampleRate, numChannels int) (*Buffer, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate %d", sampleRate)
	}
	if numChannels <= 0 {
		return nil, fmt.Errorf("invalid channel count %d", numChannels)
	}
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("pcm payload length %d is not a multiple of 2", len(data))
	}

	sampleCount := len(data) / 2
	if sampleCount%numChannels != 0 {
		return nil, fmt.Errorf("sample count %d does not divide into %d channels", sampleCount, numChannels)
	}

	frameCount := sampleCount / numChannels
	channels := make([][]float64, numChannels)
	for c := 0; c < numChannels; c++ {
		channels[c] = make([]float64, frameCount)
		for i := 0; i < frameCount; i++ {
			flat := i*numChannels + c
			sample := int16(binary.LittleEndian.Uint16(data[flat*2 : flat*2+2]))
			channels[c][i] = float64(sample) / 32768.0
		}
	}

	return &Buffer{
		SampleRate: sampleRate,
		Channels:   channels,
	}, nil
}
