package speech

// TextType tells the service how to interpret Options.Text.
type TextType uint8

const (
	TextTypeText TextType = iota
	TextTypeSSML
)

var textTypeCodes = [...]string{
	TextTypeText: "text",
	TextTypeSSML: "ssml",
}

// TextTypes returns every TextType in declaration order.
func TextTypes() []TextType {
	return []TextType{TextTypeText, TextTypeSSML}
}

func (t TextType) String() string {
	if int(t) < len(textTypeCodes) {
		return textTypeCodes[t]
	}
	return ""
}

// ParseTextType returns the TextType whose code is exactly s.
func ParseTextType(s string) (TextType, bool) {
	for i, code := range textTypeCodes {
		if code == s {
			return TextType(i), true
		}
	}
	return 0, false
}

func (t TextType) MarshalText() ([]byte, error) {
	if t.String() == "" {
		return nil, ErrUnknownTextType
	}
	return []byte(t.String()), nil
}

func (t *TextType) UnmarshalText(b []byte) error {
	v, ok := ParseTextType(string(b))
	if !ok {
		return unknownCode(ErrUnknownTextType, string(b))
	}
	*t = v
	return nil
}
