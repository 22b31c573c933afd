package vertexai

import (
	"context"
	"fmt"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"github.com/googleapis/gax-go/v2"
	"github.com/lemon-mint/coord"
	"github.com/lemon-mint/coord/pconf"
	"github.com/lemon-mint/coord/provider"
	"github.com/lemon-mint/coord/speech"
	"github.com/lemon-mint/coord/tts"
	"google.golang.org/api/option"
)

type synthesizer interface {
	SynthesizeSpeech(ctx context.Context, req *texttospeechpb.SynthesizeSpeechRequest, opts ...gax.CallOption) (*texttospeechpb.SynthesizeSpeechResponse, error)
}

type textToSpeechModel struct {
	client synthesizer

	language string
	name     string

	speaking_rate float64
	pitch         float64

	sample_rate int32
}

var _ tts.Model = (*textToSpeechModel)(nil)

// synthesizeRequest renders opts for Cloud Text-to-Speech. Without a
// configured language the locale of opts is sent, which lets the service
// pick a default voice for it.
func (g *textToSpeechModel) synthesizeRequest(opts *speech.Options) (*texttospeechpb.SynthesizeSpeechRequest, tts.Format, error) {
	var encoding texttospeechpb.AudioEncoding
	var format tts.Format

	switch opts.OutputFormat {
	case speech.AudioFormatMP3:
		encoding, format = texttospeechpb.AudioEncoding_MP3, tts.FormatMP3
	case speech.AudioFormatOggVorbis:
		// Cloud TTS has no Vorbis encoder; Opus in an Ogg container is sent
		// instead.
		encoding, format = texttospeechpb.AudioEncoding_OGG_OPUS, tts.FormatOGG
	case speech.AudioFormatPCM:
		encoding, format = texttospeechpb.AudioEncoding_LINEAR16, tts.FormatLINEAR16
	default:
		return nil, "", tts.ErrUnsupportedFileFormat
	}

	input := &texttospeechpb.SynthesisInput{}
	switch opts.TextType {
	case speech.TextTypeText:
		input.InputSource = &texttospeechpb.SynthesisInput_Text{Text: opts.Text}
	case speech.TextTypeSSML:
		input.InputSource = &texttospeechpb.SynthesisInput_Ssml{Ssml: opts.Text}
	default:
		return nil, "", fmt.Errorf("vertexai: %w: %d", tts.ErrUnsupportedTextType, opts.TextType)
	}

	language := g.language
	if language == "" {
		language = opts.Locale
	}

	return &texttospeechpb.SynthesizeSpeechRequest{
		Input: input,

		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: language,
			Name:         g.name,
		},

		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding:   encoding,
			SpeakingRate:    g.speaking_rate,
			Pitch:           g.pitch,
			SampleRateHertz: g.sample_rate,
		},
	}, format, nil
}

func (g *textToSpeechModel) GenerateSpeech(ctx context.Context, opts *speech.Options) (*tts.AudioFile, error) {
	req, format, err := g.synthesizeRequest(opts)
	if err != nil {
		return nil, err
	}

	resp, err := g.client.SynthesizeSpeech(ctx, req)
	if err != nil {
		return nil, err
	}

	return &tts.AudioFile{
		Format: format,
		Data:   resp.AudioContent,
	}, nil
}

var defaultTextToSpeechConfig = &tts.Config{
	Language:     "en-US",
	Model:        "en-US-Journey-F",
	SpeakingRate: 1.0,
	Pitch:        0,
}

type textToSpeechClient struct {
	client *texttospeech.Client
}

var _ provider.TTSClient = (*textToSpeechClient)(nil)

// NewTTS uses model as the Cloud voice name, e.g. "en-US-Journey-F".
func (g *textToSpeechClient) NewTTS(model string, config *tts.Config) (tts.Model, error) {
	if config == nil {
		config = defaultTextToSpeechConfig
	}

	_em := &textToSpeechModel{
		client:        g.client,
		language:      config.Language,
		name:          model,
		speaking_rate: config.SpeakingRate,
		pitch:         config.Pitch,
		sample_rate:   int32(config.SampleRate),
	}

	if _em.name == "" {
		_em.name = config.Model
	}

	return _em, nil
}

func (g *textToSpeechClient) Close() error {
	return g.client.Close()
}

func (*textToSpeechClient) Name() string {
	return ProviderName
}

// =================== Provider ===================

var _ provider.TTSProvider = Provider

type VertexAIProvider struct{}

// clientEndpoint returns BaseURL, or the regional endpoint of Location when
// no BaseURL is set.
func clientEndpoint(c pconf.GeneralConfig) string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	if c.Location != "" && c.Location != "global" {
		return fmt.Sprintf("%s-texttospeech.googleapis.com:443", c.Location)
	}
	return ""
}

func clientOptions(c pconf.GeneralConfig) []option.ClientOption {
	client_options := append([]option.ClientOption(nil), c.GoogleClientOptions...)
	if c.GoogleCredentials != nil {
		client_options = append(client_options, option.WithAuthCredentials(c.GoogleCredentials))
	}
	if c.APIKey != "" {
		client_options = append(client_options, option.WithAPIKey(c.APIKey))
	}
	if c.ProjectID != "" {
		client_options = append(client_options, option.WithQuotaProject(c.ProjectID))
	}
	if endpoint := clientEndpoint(c); endpoint != "" {
		client_options = append(client_options, option.WithEndpoint(endpoint))
	}
	if c.HTTPClient != nil {
		client_options = append(client_options, option.WithHTTPClient(c.HTTPClient))
	}
	return client_options
}

func (VertexAIProvider) NewTTSClient(ctx context.Context, configs ...pconf.Config) (provider.TTSClient, error) {
	client_config, err := pconf.Resolve(configs...)
	if err != nil {
		return nil, err
	}

	client_options := clientOptions(client_config)

	var client *texttospeech.Client
	if client_config.UseREST {
		client, err = texttospeech.NewRESTClient(ctx, client_options...)
	} else {
		client, err = texttospeech.NewClient(ctx, client_options...)
	}
	if err != nil {
		return nil, err
	}

	return &textToSpeechClient{
		client: client,
	}, nil
}

const ProviderName = "vertexai"

var Provider VertexAIProvider

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
