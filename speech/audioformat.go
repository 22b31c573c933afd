package speech

// AudioFormat is the encoding of the returned audio.
type AudioFormat uint8

const (
	AudioFormatMP3 AudioFormat = iota
	AudioFormatOggVorbis
	AudioFormatPCM
)

var audioFormats = [...]struct {
	code string
	mime string
}{
	AudioFormatMP3:       {"mp3", "audio/mpeg"},
	AudioFormatOggVorbis: {"ogg_vorbis", "audio/ogg"},
	AudioFormatPCM:       {"pcm", "audio/pcm"},
}

// AudioFormats returns every AudioFormat in declaration order.
func AudioFormats() []AudioFormat {
	return []AudioFormat{AudioFormatMP3, AudioFormatOggVorbis, AudioFormatPCM}
}

func (f AudioFormat) String() string {
	if int(f) < len(audioFormats) {
		return audioFormats[f].code
	}
	return ""
}

// MIMEType returns the media type of audio in this format.
func (f AudioFormat) MIMEType() string {
	if int(f) < len(audioFormats) {
		return audioFormats[f].mime
	}
	return "application/octet-stream"
}

// ParseAudioFormat returns the AudioFormat whose code is exactly s.
func ParseAudioFormat(s string) (AudioFormat, bool) {
	for i, f := range audioFormats {
		if f.code == s {
			return AudioFormat(i), true
		}
	}
	return 0, false
}

func (f AudioFormat) MarshalText() ([]byte, error) {
	if f.String() == "" {
		return nil, ErrUnknownAudioFormat
	}
	return []byte(f.String()), nil
}

func (f *AudioFormat) UnmarshalText(b []byte) error {
	v, ok := ParseAudioFormat(string(b))
	if !ok {
		return unknownCode(ErrUnknownAudioFormat, string(b))
	}
	*f = v
	return nil
}
