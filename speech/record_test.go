package speech_test

import (
	"encoding/json"
	"testing"

	"github.com/lemon-mint/coord/speech"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONRoundTrip(t *testing.T) {
	o := speech.NewSSML("<speak>Bonjour</speak>")
	o.VoiceID = speech.VoiceCeline
	o.OutputFormat = speech.AudioFormatPCM
	o.Locale = "fr-FR"

	data, err := json.Marshal(o)
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"<speak>Bonjour</speak>","textType":"ssml","voiceId":"Celine","outputFormat":"pcm"}`, string(data))
	assert.NotContains(t, string(data), "fr-FR")

	got, err := speech.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, o.Text, got.Text)
	assert.Equal(t, o.TextType, got.TextType)
	assert.Equal(t, o.VoiceID, got.VoiceID)
	assert.Equal(t, o.OutputFormat, got.OutputFormat)
	assert.Equal(t, speech.CurrentLocale(), got.Locale)
}

func TestDecodeRejectsInvalidOutputFormat(t *testing.T) {
	got, err := speech.Decode([]byte(`{"text":"hi","textType":"text","voiceId":"Joanna","outputFormat":"wav"}`))
	assert.Nil(t, got)
	assert.ErrorIs(t, err, speech.ErrInvalidRecord)
	assert.ErrorIs(t, err, speech.ErrUnknownAudioFormat)
}

func TestDecodeFailures(t *testing.T) {
	cases := map[string]string{
		"not json":           `{`,
		"not an object":      `["text"]`,
		"missing textType":   `{"text":"hi","voiceId":"Joanna","outputFormat":"mp3"}`,
		"missing voiceId":    `{"text":"hi","textType":"text","outputFormat":"mp3"}`,
		"missing format":     `{"text":"hi","textType":"text","voiceId":"Joanna"}`,
		"numeric textType":   `{"text":"hi","textType":0,"voiceId":"Joanna","outputFormat":"mp3"}`,
		"unknown textType":   `{"text":"hi","textType":"Text","voiceId":"Joanna","outputFormat":"mp3"}`,
		"unknown voice":      `{"text":"hi","textType":"text","voiceId":"Nobody","outputFormat":"mp3"}`,
		"lowercase voice id": `{"text":"hi","textType":"text","voiceId":"joanna","outputFormat":"mp3"}`,
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := speech.Decode([]byte(in))
			assert.Nil(t, got)
			assert.ErrorIs(t, err, speech.ErrInvalidRecord)
		})
	}
}

func TestDecodeTextDefaultsToEmpty(t *testing.T) {
	for _, in := range []string{
		`{"textType":"text","voiceId":"Joanna","outputFormat":"mp3"}`,
		`{"text":42,"textType":"text","voiceId":"Joanna","outputFormat":"mp3"}`,
		`{"text":null,"textType":"text","voiceId":"Joanna","outputFormat":"mp3"}`,
	} {
		got, err := speech.Decode([]byte(in))
		require.NoError(t, err, in)
		assert.Empty(t, got.Text)
	}
}

func TestUnmarshalJSONLeavesReceiverOnFailure(t *testing.T) {
	o := speech.NewText("keep me")
	err := json.Unmarshal([]byte(`{"text":"x","textType":"text","voiceId":"Joanna","outputFormat":"flac"}`), o)
	require.Error(t, err)
	assert.Equal(t, "keep me", o.Text)

	require.NoError(t, json.Unmarshal([]byte(`{"text":"x","textType":"ssml","voiceId":"Maxim","outputFormat":"ogg_vorbis"}`), o))
	assert.Equal(t, "x", o.Text)
	assert.Equal(t, speech.TextTypeSSML, o.TextType)
	assert.Equal(t, speech.VoiceMaxim, o.VoiceID)
	assert.Equal(t, speech.AudioFormatOggVorbis, o.OutputFormat)
}

func TestYAMLRoundTrip(t *testing.T) {
	o := speech.NewText("Guten Tag")
	o.VoiceID = speech.VoiceVicki

	data, err := speech.EncodeYAML(o)
	require.NoError(t, err)

	got, err := speech.DecodeYAML(data)
	require.NoError(t, err)
	assert.Equal(t, o.Record(), got.Record())
}

func TestDecodeYAMLRequiresCodes(t *testing.T) {
	got, err := speech.DecodeYAML([]byte("text: hi\ntextType: text\nvoiceId: Joanna\n"))
	assert.Nil(t, got)
	assert.ErrorIs(t, err, speech.ErrInvalidRecord)

	got, err = speech.DecodeYAML([]byte("text: hi\ntextType: text\nvoiceId: Joanna\noutputFormat: wav\n"))
	assert.Nil(t, got)
	assert.ErrorIs(t, err, speech.ErrUnknownAudioFormat)
}

func TestDecodeYAMLTextDefaultsToEmpty(t *testing.T) {
	for _, in := range []string{
		"textType: text\nvoiceId: Joanna\noutputFormat: mp3\n",
		"text: 42\ntextType: text\nvoiceId: Joanna\noutputFormat: mp3\n",
		"text: [a, b]\ntextType: text\nvoiceId: Joanna\noutputFormat: mp3\n",
		"text: {a: b}\ntextType: text\nvoiceId: Joanna\noutputFormat: mp3\n",
		"text: null\ntextType: text\nvoiceId: Joanna\noutputFormat: mp3\n",
	} {
		got, err := speech.DecodeYAML([]byte(in))
		require.NoError(t, err, in)
		assert.Empty(t, got.Text, in)
		assert.Equal(t, speech.VoiceJoanna, got.VoiceID)
	}
}

func TestDecodeYAMLFailures(t *testing.T) {
	cases := map[string]string{
		"missing textType": "text: hi\nvoiceId: Joanna\noutputFormat: mp3\n",
		"list textType":    "text: hi\ntextType: [text]\nvoiceId: Joanna\noutputFormat: mp3\n",
		"numeric format":   "text: hi\ntextType: text\nvoiceId: Joanna\noutputFormat: 3\n",
		"unknown voice":    "text: hi\ntextType: text\nvoiceId: Nobody\noutputFormat: mp3\n",
		"not a mapping":    "- text\n- ssml\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := speech.DecodeYAML([]byte(in))
			assert.Nil(t, got)
			assert.ErrorIs(t, err, speech.ErrInvalidRecord)
		})
	}
}

func TestCodecsAgreeOnText(t *testing.T) {
	fromJSON, err := speech.Decode([]byte(`{"text":["a"],"textType":"ssml","voiceId":"Amy","outputFormat":"pcm"}`))
	require.NoError(t, err)
	fromYAML, err := speech.DecodeYAML([]byte("text: [a]\ntextType: ssml\nvoiceId: Amy\noutputFormat: pcm\n"))
	require.NoError(t, err)
	assert.Equal(t, fromJSON.Record(), fromYAML.Record())
}
