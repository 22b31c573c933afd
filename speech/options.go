package speech

import (
	"net/url"
	"strings"
)

// PathPrefix is the Voice API endpoint the text is appended to.
const PathPrefix = "voice/v1/speak/"

// Options describes a single speech request.
type Options struct {
	// Text to speak. Either plain text or SSML.
	Text string

	// TextType must be TextTypeSSML when Text is SSML. Nothing here checks
	// that the two agree; the service rejects malformed SSML.
	TextType TextType

	// VoiceID is the speaker. Voices belong to a locale, see VoiceForLocale.
	VoiceID VoiceID

	OutputFormat AudioFormat

	// Locale is only used to pick a voice. It is never sent to the service
	// and is not part of Record.
	Locale string
}

// NewText returns options for speaking plain text.
func NewText(text string) *Options {
	return &Options{
		Text:         text,
		TextType:     TextTypeText,
		VoiceID:      DefaultVoice,
		OutputFormat: AudioFormatMP3,
		Locale:       CurrentLocale(),
	}
}

// NewSSML returns options for speaking an SSML document.
func NewSSML(ssml string) *Options {
	o := NewText(ssml)
	o.TextType = TextTypeSSML
	return o
}

// VoiceForLocale returns the voice suited to o.Locale without changing o.
func (o *Options) VoiceForLocale() VoiceID {
	return VoiceForLocale(o.Locale)
}

// ApplyLocaleVoice sets VoiceID from Locale.
func (o *Options) ApplyLocaleVoice() {
	o.VoiceID = o.VoiceForLocale()
}

// Path is the request path, without host or query, for the current Text.
func (o *Options) Path() string {
	return Path(o.Text)
}

// Params is the ordered query of the request for the current fields.
func (o *Options) Params() []QueryItem {
	return Params(o.TextType, o.VoiceID, o.OutputFormat)
}

// Path returns PathPrefix followed by the escaped text.
func Path(text string) string {
	return PathPrefix + EscapeText(text)
}

// QueryItem is one name/value pair of a request query.
type QueryItem struct {
	Name  string
	Value string
}

// Params returns the textType, voiceId and outputFormat items, in that order.
func Params(textType TextType, voice VoiceID, format AudioFormat) []QueryItem {
	return []QueryItem{
		{Name: "textType", Value: textType.String()},
		{Name: "voiceId", Value: voice.String()},
		{Name: "outputFormat", Value: format.String()},
	}
}

// EncodeQuery renders items as a query string, keeping their order.
func EncodeQuery(items []QueryItem) string {
	var sb strings.Builder
	for i, item := range items {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(item.Name))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(item.Value))
	}
	return sb.String()
}

const upperhex = "0123456789ABCDEF"

// EscapeText percent-encodes text for use as a single path segment. Only
// ASCII letters, digits and "-._~" are left as is; every other byte,
// including each byte of a multi-byte UTF-8 sequence, becomes %XX.
// This is stricter than escaping only the URL delimiters: characters such
// as "^" or "|" are escaped too, so the bytes may differ from other clients
// even though the decoded text is the same.
func EscapeText(text string) string {
	n := 0
	for i := 0; i < len(text); i++ {
		if !unescaped(text[i]) {
			n++
		}
	}
	if n == 0 {
		return text
	}

	buf := make([]byte, 0, len(text)+2*n)
	for i := 0; i < len(text); i++ {
		c := text[i]
		if unescaped(c) {
			buf = append(buf, c)
			continue
		}
		buf = append(buf, '%', upperhex[c>>4], upperhex[c&15])
	}
	return string(buf)
}

func unescaped(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '.', c == '_', c == '~':
		return true
	}
	return false
}
