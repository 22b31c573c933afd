package provider

import (
	"context"

	"github.com/lemon-mint/coord/pconf"
	"github.com/lemon-mint/coord/tts"
)

type TTSClient interface {
	NewTTS(model string, config *tts.Config) (tts.Model, error)
	Name() string
	Close() error
}

type TTSProvider interface {
	NewTTSClient(ctx context.Context, configs ...pconf.Config) (TTSClient, error)
}
