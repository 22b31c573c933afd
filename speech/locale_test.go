package speech_test

import (
	"testing"

	"github.com/lemon-mint/coord/speech"
	"github.com/stretchr/testify/assert"
)

func TestVoiceForLocale(t *testing.T) {
	cases := []struct {
		locale string
		want   speech.VoiceID
	}{
		{"de", speech.VoiceMarlene},
		{"de-AT", speech.VoiceMarlene},
		{"de-DE", speech.VoiceMarlene},
		{"en-CA", speech.VoiceKimberly},
		{"en-GB", speech.VoiceBrian},
		{"en-AU", speech.VoiceNicole},
		{"en-IN", speech.VoiceRaveena},
		{"en-US", speech.VoiceJoanna},
		{"en", speech.VoiceJoanna},
		{"es-ES", speech.VoiceEnrique},
		{"es-MX", speech.VoiceMiguel},
		{"es", speech.VoiceMiguel},
		{"fr-CA", speech.VoiceCeline},
		{"it-IT", speech.VoiceGiorgio},
		{"nl-BE", speech.VoiceLotte},
		{"ro", speech.VoiceCarmen},
		{"ru-RU", speech.VoiceMaxim},
		{"sv-FI", speech.VoiceAstrid},
		{"tr-TR", speech.VoiceFiliz},
		{"xx-YY", speech.VoiceJoanna},
		{"", speech.VoiceJoanna},
		{"en_GB", speech.VoiceJoanna},
	}

	for _, c := range cases {
		t.Run(c.locale, func(t *testing.T) {
			assert.Equal(t, c.want, speech.VoiceForLocale(c.locale))
		})
	}
}

func TestVoiceForLocaleRegionalEnglishIsDistinct(t *testing.T) {
	gb := speech.VoiceForLocale("en-GB")
	ca := speech.VoiceForLocale("en-CA")
	us := speech.VoiceForLocale("en-US")

	assert.NotEqual(t, gb, ca)
	assert.NotEqual(t, gb, us)
	assert.NotEqual(t, ca, us)
	assert.Equal(t, us, speech.VoiceForLocale("xx-YY"))
}

func TestVoiceForLocaleLeavesOptionsAlone(t *testing.T) {
	o := speech.NewText("hallo")
	o.Locale = "de-CH"

	assert.Equal(t, speech.VoiceMarlene, o.VoiceForLocale())
	assert.Equal(t, speech.DefaultVoice, o.VoiceID)
	assert.Equal(t, "de-CH", o.Locale)

	o.ApplyLocaleVoice()
	assert.Equal(t, speech.VoiceMarlene, o.VoiceID)
}
