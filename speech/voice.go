package speech

import "strings"

// VoiceID selects the synthetic speaker. Voices are tied to the locale
// they were recorded for; pairing a voice with text in another language
// produces heavily accented speech.
type VoiceID uint16

const (
	VoiceJoanna VoiceID = iota
	VoiceIvy
	VoiceJoey
	VoiceJustin
	VoiceKendra
	VoiceKimberly
	VoiceMatthew
	VoiceSalli
	VoiceNicole
	VoiceRussell
	VoiceAmy
	VoiceBrian
	VoiceEmma
	VoiceAditi
	VoiceRaveena
	VoiceGeraint
	VoiceGwyneth
	VoiceMads
	VoiceNaja
	VoiceLotte
	VoiceRuben
	VoiceCeline
	VoiceMathieu
	VoiceChantal
	VoiceHans
	VoiceMarlene
	VoiceVicki
	VoiceDora
	VoiceKarl
	VoiceCarla
	VoiceGiorgio
	VoiceMizuki
	VoiceTakumi
	VoiceSeoyeon
	VoiceLiv
	VoiceEwa
	VoiceJacek
	VoiceJan
	VoiceMaja
	VoiceRicardo
	VoiceVitoria
	VoiceCristiano
	VoiceInes
	VoiceCarmen
	VoiceMaxim
	VoiceTatyana
	VoiceConchita
	VoiceEnrique
	VoiceMiguel
	VoicePenelope
	VoiceAstrid
	VoiceFiliz
)

// DefaultVoice is used when nothing else picks a voice.
const DefaultVoice = VoiceJoanna

var voices = [...]struct {
	code   string
	locale string
}{
	VoiceJoanna:    {"Joanna", "en-US"},
	VoiceIvy:       {"Ivy", "en-US"},
	VoiceJoey:      {"Joey", "en-US"},
	VoiceJustin:    {"Justin", "en-US"},
	VoiceKendra:    {"Kendra", "en-US"},
	VoiceKimberly:  {"Kimberly", "en-US"},
	VoiceMatthew:   {"Matthew", "en-US"},
	VoiceSalli:     {"Salli", "en-US"},
	VoiceNicole:    {"Nicole", "en-AU"},
	VoiceRussell:   {"Russell", "en-AU"},
	VoiceAmy:       {"Amy", "en-GB"},
	VoiceBrian:     {"Brian", "en-GB"},
	VoiceEmma:      {"Emma", "en-GB"},
	VoiceAditi:     {"Aditi", "en-IN"},
	VoiceRaveena:   {"Raveena", "en-IN"},
	VoiceGeraint:   {"Geraint", "en-GB-WLS"},
	VoiceGwyneth:   {"Gwyneth", "cy-GB"},
	VoiceMads:      {"Mads", "da-DK"},
	VoiceNaja:      {"Naja", "da-DK"},
	VoiceLotte:     {"Lotte", "nl-NL"},
	VoiceRuben:     {"Ruben", "nl-NL"},
	VoiceCeline:    {"Celine", "fr-FR"},
	VoiceMathieu:   {"Mathieu", "fr-FR"},
	VoiceChantal:   {"Chantal", "fr-CA"},
	VoiceHans:      {"Hans", "de-DE"},
	VoiceMarlene:   {"Marlene", "de-DE"},
	VoiceVicki:     {"Vicki", "de-DE"},
	VoiceDora:      {"Dora", "is-IS"},
	VoiceKarl:      {"Karl", "is-IS"},
	VoiceCarla:     {"Carla", "it-IT"},
	VoiceGiorgio:   {"Giorgio", "it-IT"},
	VoiceMizuki:    {"Mizuki", "ja-JP"},
	VoiceTakumi:    {"Takumi", "ja-JP"},
	VoiceSeoyeon:   {"Seoyeon", "ko-KR"},
	VoiceLiv:       {"Liv", "nb-NO"},
	VoiceEwa:       {"Ewa", "pl-PL"},
	VoiceJacek:     {"Jacek", "pl-PL"},
	VoiceJan:       {"Jan", "pl-PL"},
	VoiceMaja:      {"Maja", "pl-PL"},
	VoiceRicardo:   {"Ricardo", "pt-BR"},
	VoiceVitoria:   {"Vitoria", "pt-BR"},
	VoiceCristiano: {"Cristiano", "pt-PT"},
	VoiceInes:      {"Ines", "pt-PT"},
	VoiceCarmen:    {"Carmen", "ro-RO"},
	VoiceMaxim:     {"Maxim", "ru-RU"},
	VoiceTatyana:   {"Tatyana", "ru-RU"},
	VoiceConchita:  {"Conchita", "es-ES"},
	VoiceEnrique:   {"Enrique", "es-ES"},
	VoiceMiguel:    {"Miguel", "es-US"},
	VoicePenelope:  {"Penelope", "es-US"},
	VoiceAstrid:    {"Astrid", "sv-SE"},
	VoiceFiliz:     {"Filiz", "tr-TR"},
}

// Voices returns the whole catalog in declaration order.
func Voices() []VoiceID {
	list := make([]VoiceID, len(voices))
	for i := range voices {
		list[i] = VoiceID(i)
	}
	return list
}

// VoicesForLanguage returns the voices whose locale starts with the given
// language subtag.
func VoicesForLanguage(lang string) []VoiceID {
	var list []VoiceID
	for i, v := range voices {
		if l, _, _ := strings.Cut(v.locale, "-"); l == lang {
			list = append(list, VoiceID(i))
		}
	}
	return list
}

func (v VoiceID) String() string {
	if int(v) < len(voices) {
		return voices[v].code
	}
	return ""
}

// Locale is the locale the voice is best suited for, e.g. "en-GB".
func (v VoiceID) Locale() string {
	if int(v) < len(voices) {
		return voices[v].locale
	}
	return ""
}

// ParseVoiceID returns the voice whose code is exactly s.
func ParseVoiceID(s string) (VoiceID, bool) {
	for i, v := range voices {
		if v.code == s {
			return VoiceID(i), true
		}
	}
	return 0, false
}

func (v VoiceID) MarshalText() ([]byte, error) {
	if v.String() == "" {
		return nil, ErrUnknownVoice
	}
	return []byte(v.String()), nil
}

func (v *VoiceID) UnmarshalText(b []byte) error {
	id, ok := ParseVoiceID(string(b))
	if !ok {
		return unknownCode(ErrUnknownVoice, string(b))
	}
	*v = id
	return nil
}
