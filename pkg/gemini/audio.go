package gemini

import (
	"context"
	"encoding/base64"
)

// AudioSampleRate and AudioChannels describe the raw PCM the TTS model
// returns: little-endian signed 16-bit samples, 24 kHz, mono.
const (
	AudioSampleRate = 24000
	AudioChannels   = 1
)

// SynthesizeAudio requests a spoken overview of the given text and returns
// the raw PCM byte sequence. The backend delivers the full payload in one
// response, there is no streaming. A response without inline audio data is
// an *AudioGenerationError.
func (c *Client) SynthesizeAudio(ctx context.Context, text string) ([]byte, error) {
	payload := &GenerateContentRequest{
		Contents: []*GenerateContentContent{{
			Parts: []*GenerateContentPart{{
				Text: "Provide a professional summary of this content: " + text,
			}},
		}},
		GenerationConfig: &GenerationConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig: &SpeechConfig{
				VoiceConfig: VoiceConfig{
					PrebuiltVoiceConfig: PrebuiltVoiceConfig{VoiceName: c.voice},
				},
			},
		},
	}

	res, err := c.generateContent(ctx, c.ttsModel, payload)
	if err != nil {
		return nil, err
	}

	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil || len(res.Candidates[0].Content.Parts) == 0 {
		return nil, &AudioGenerationError{Reason: "response contained no candidates"}
	}

	inline := res.Candidates[0].Content.Parts[0].InlineData
	if inline == nil || inline.Data == "" {
		return nil, &AudioGenerationError{Reason: "response contained no inline audio data"}
	}

	pcm, err := base64.StdEncoding.DecodeString(inline.Data)
	if err != nil {
		return nil, &AudioGenerationError{Reason: "audio payload was not valid base64: " + err.Error()}
	}
	return pcm, nil
}
