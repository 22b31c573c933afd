package speech

import "strings"

// CurrentLocale reports the locale of the running environment. Options
// created by this package start with its value. Applications that know the
// user's locale should replace it at startup.
var CurrentLocale = func() string {
	return "en-US"
}

type localeKey struct {
	lang   string
	region string
}

var voiceByLocale = map[localeKey]VoiceID{
	{"en", "CA"}: VoiceKimberly,
	{"en", "GB"}: VoiceBrian,
	{"en", "AU"}: VoiceNicole,
	{"en", "IN"}: VoiceRaveena,
	{"es", "ES"}: VoiceEnrique,
}

var voiceByLanguage = map[string]VoiceID{
	"de": VoiceMarlene,
	"en": VoiceJoanna,
	"es": VoiceMiguel,
	"fr": VoiceCeline,
	"it": VoiceGiorgio,
	"nl": VoiceLotte,
	"ro": VoiceCarmen,
	"ru": VoiceMaxim,
	"sv": VoiceAstrid,
	"tr": VoiceFiliz,
}

// VoiceForLocale picks a voice for a locale identifier such as "en-GB".
// It never fails; unknown languages get DefaultVoice.
func VoiceForLocale(locale string) VoiceID {
	parts := strings.Split(locale, "-")
	key := localeKey{lang: parts[0]}
	if len(parts) > 1 {
		key.region = parts[1]
	}

	if v, ok := voiceByLocale[key]; ok {
		return v
	}
	if v, ok := voiceByLanguage[key.lang]; ok {
		return v
	}
	return DefaultVoice
}
