package speech

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/valyala/fastjson"
)

// Record is the persisted form of Options. Locale is deliberately absent.
type Record struct {
	Text         string `json:"text" yaml:"text"`
	TextType     string `json:"textType" yaml:"textType"`
	VoiceID      string `json:"voiceId" yaml:"voiceId"`
	OutputFormat string `json:"outputFormat" yaml:"outputFormat"`
}

// Record returns the persisted form of o.
func (o *Options) Record() Record {
	return Record{
		Text:         o.Text,
		TextType:     o.TextType.String(),
		VoiceID:      o.VoiceID.String(),
		OutputFormat: o.OutputFormat.String(),
	}
}

// FromRecord rebuilds Options from r. Any unknown code fails the whole
// record. Locale is set to CurrentLocale().
func FromRecord(r Record) (*Options, error) {
	textType, ok := ParseTextType(r.TextType)
	if !ok {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, unknownCode(ErrUnknownTextType, r.TextType))
	}

	format, ok := ParseAudioFormat(r.OutputFormat)
	if !ok {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, unknownCode(ErrUnknownAudioFormat, r.OutputFormat))
	}

	voice, ok := ParseVoiceID(r.VoiceID)
	if !ok {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, unknownCode(ErrUnknownVoice, r.VoiceID))
	}

	return &Options{
		Text:         r.Text,
		TextType:     textType,
		VoiceID:      voice,
		OutputFormat: format,
		Locale:       CurrentLocale(),
	}, nil
}

func (o Options) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Record())
}

// UnmarshalJSON replaces o with the decoded options. o is left unchanged if
// the record is invalid.
func (o *Options) UnmarshalJSON(data []byte) error {
	v, err := Decode(data)
	if err != nil {
		return err
	}
	*o = *v
	return nil
}

// fieldFunc looks up key in a decoded record. ok reports whether the key is
// present; str is set only when the value is a string.
type fieldFunc func(key string) (str string, isString, ok bool)

// decodeRecord applies the record rules shared by every codec: a missing or
// non-string "text" is the empty string, and the three code fields must be
// present strings.
func decodeRecord(get fieldFunc) (*Options, error) {
	var r Record
	if text, isString, ok := get("text"); ok && isString {
		r.Text = text
	}

	fields := []struct {
		key string
		dst *string
	}{
		{"textType", &r.TextType},
		{"outputFormat", &r.OutputFormat},
		{"voiceId", &r.VoiceID},
	}
	for _, f := range fields {
		v, isString, ok := get(f.key)
		if !ok {
			return nil, fmt.Errorf("%w: missing %q", ErrInvalidRecord, f.key)
		}
		if !isString {
			return nil, fmt.Errorf("%w: %q is not a string", ErrInvalidRecord, f.key)
		}
		*f.dst = v
	}

	return FromRecord(r)
}

// Decode parses a JSON record. A missing or non-string "text" decodes as
// the empty string; the three code fields are required.
func Decode(data []byte) (*Options, error) {
	var p fastjson.Parser
	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	if v.Type() != fastjson.TypeObject {
		return nil, fmt.Errorf("%w: expected object, got %s", ErrInvalidRecord, v.Type())
	}

	return decodeRecord(func(key string) (string, bool, bool) {
		fv := v.Get(key)
		if fv == nil {
			return "", false, false
		}
		if fv.Type() != fastjson.TypeString {
			return "", false, true
		}
		return string(fv.GetStringBytes()), true, true
	})
}

// EncodeYAML writes o as a YAML record.
func EncodeYAML(o *Options) ([]byte, error) {
	return yaml.Marshal(o.Record())
}

// DecodeYAML parses a YAML record with the same rules as Decode.
func DecodeYAML(data []byte) (*Options, error) {
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	return decodeRecord(func(key string) (string, bool, bool) {
		v, ok := m[key]
		if !ok {
			return "", false, false
		}
		s, isString := v.(string)
		return s, isString, true
	})
}
