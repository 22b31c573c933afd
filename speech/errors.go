package speech

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRecord      = errors.New("speech: invalid options record")
	ErrUnknownTextType    = errors.New("speech: unknown text type")
	ErrUnknownAudioFormat = errors.New("speech: unknown audio format")
	ErrUnknownVoice       = errors.New("speech: unknown voice id")
)

func unknownCode(err error, code string) error {
	return fmt.Errorf("%w %q", err, code)
}
