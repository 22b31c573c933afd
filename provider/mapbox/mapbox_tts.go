package mapbox

import (
	"context"
	"fmt"

	"github.com/lemon-mint/coord"
	"github.com/lemon-mint/coord/pconf"
	"github.com/lemon-mint/coord/provider"
	"github.com/lemon-mint/coord/speech"
	"github.com/lemon-mint/coord/tts"
)

// =================== Client ===================

var _ provider.TTSClient = (*MapboxClient)(nil)

type MapboxClient struct {
	client *mapboxAPIClient
}

// NewTTS returns a model speaking through the Voice API. The API has a
// single model, so model is ignored.
func (g *MapboxClient) NewTTS(model string, config *tts.Config) (tts.Model, error) {
	if config == nil {
		config = &tts.Config{}
	}

	_vm := &mapboxModel{
		client:         g.client,
		useLocaleVoice: config.UseLocaleVoice,
	}

	if config.VoiceID != "" {
		voice, ok := speech.ParseVoiceID(config.VoiceID)
		if !ok {
			return nil, fmt.Errorf("mapbox: %w %q", speech.ErrUnknownVoice, config.VoiceID)
		}
		_vm.voice = &voice
	}

	return _vm, nil
}

func (*MapboxClient) Close() error {
	return nil
}

func (*MapboxClient) Name() string {
	return ProviderName
}

// =================== Model ===================

var _ tts.Model = (*mapboxModel)(nil)

type mapboxModel struct {
	client *mapboxAPIClient

	voice          *speech.VoiceID
	useLocaleVoice bool
}

// request returns the options actually sent. The caller's options are
// never modified.
func (g *mapboxModel) request(opts *speech.Options) *speech.Options {
	req := *opts
	switch {
	case g.voice != nil:
		req.VoiceID = *g.voice
	case g.useLocaleVoice:
		req.ApplyLocaleVoice()
	}
	return &req
}

func (g *mapboxModel) GenerateSpeech(ctx context.Context, opts *speech.Options) (*tts.AudioFile, error) {
	req := g.request(opts)

	audio, err := g.client.RequestSpeech(ctx, req)
	if err != nil {
		return nil, err
	}

	return &tts.AudioFile{
		Format: tts.FormatOf(req.OutputFormat),
		Data:   audio,
	}, nil
}

// =================== Provider ===================

var _ provider.TTSProvider = Provider

type MapboxProvider struct{}

func (MapboxProvider) NewTTSClient(ctx context.Context, configs ...pconf.Config) (provider.TTSClient, error) {
	client_config, err := pconf.Resolve(configs...)
	if err != nil {
		return nil, err
	}

	if client_config.APIKey == "" {
		return nil, ErrAccessTokenRequired
	}

	return &MapboxClient{
		client: newClient(client_config.APIKey, client_config.BaseURL, client_config.HTTPClient),
	}, nil
}

// ===================== Init =====================

const ProviderName = "mapbox"

var Provider MapboxProvider

func init() {
	var exists bool
	for _, n := range coord.ListTTSProviders() {
		if n == ProviderName {
			exists = true
			break
		}
	}
	if !exists {
		coord.RegisterTTSProvider(ProviderName, Provider)
	}
}
