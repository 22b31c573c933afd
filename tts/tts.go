package tts

import (
	"context"

	"github.com/lemon-mint/coord/speech"
)

type Format string

const (
	FormatLINEAR16 Format = "audio/l16"
	FormatPCM      Format = "audio/pcm"
	FormatMP3      Format = "audio/mpeg"
	FormatOGG      Format = "audio/ogg"
	FormatOPUS     Format = "audio/opus"
)

// FormatOf returns the MIME format of audio encoded as f.
func FormatOf(f speech.AudioFormat) Format {
	return Format(f.MIMEType())
}

type AudioFile struct {
	Format Format `json:"mime"`
	Data   []byte `json:"data"`
}

type Config struct {
	Language string
	Model    string

	SpeakingRate float64
	Pitch        float64
	SampleRate   int

	// VoiceID overrides the voice of every request. Its meaning is up to
	// the provider.
	VoiceID string

	// UseLocaleVoice picks the voice from speech.Options.Locale when VoiceID
	// is empty.
	UseLocaleVoice bool
}

type Model interface {
	GenerateSpeech(ctx context.Context, opts *speech.Options) (*AudioFile, error)
}
