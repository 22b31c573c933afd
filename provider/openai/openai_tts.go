package openai

import (
	"context"
	"fmt"
	"io"

	"github.com/lemon-mint/coord/provider"
	"github.com/lemon-mint/coord/speech"
	"github.com/lemon-mint/coord/tts"
	"github.com/sashabaranov/go-openai"
)

type openAITTS struct {
	client *openai.Client

	model openai.SpeechModel
	voice openai.SpeechVoice
	speed float64
}

var _ tts.Model = (*openAITTS)(nil)

// speechRequest renders opts for the audio/speech endpoint. OpenAI has no
// SSML input and its own voice catalog, so opts.VoiceID is not used.
// AudioFormatOggVorbis is answered with Opus in an Ogg container, as the
// endpoint does not produce Vorbis.
func (g *openAITTS) speechRequest(opts *speech.Options) (openai.CreateSpeechRequest, tts.Format, error) {
	if opts.TextType != speech.TextTypeText {
		return openai.CreateSpeechRequest{}, "", fmt.Errorf("openai: %w: %s", tts.ErrUnsupportedTextType, opts.TextType)
	}

	var encoding openai.SpeechResponseFormat
	var format tts.Format

	switch opts.OutputFormat {
	case speech.AudioFormatMP3:
		encoding, format = openai.SpeechResponseFormatMp3, tts.FormatMP3
	case speech.AudioFormatOggVorbis:
		encoding, format = openai.SpeechResponseFormatOpus, tts.FormatOGG
	case speech.AudioFormatPCM:
		encoding, format = openai.SpeechResponseFormatPcm, tts.FormatPCM
	default:
		return openai.CreateSpeechRequest{}, "", tts.ErrUnsupportedFileFormat
	}

	return openai.CreateSpeechRequest{
		Model:          g.model,
		Voice:          g.voice,
		Speed:          g.speed,
		ResponseFormat: encoding,
		Input:          opts.Text,
	}, format, nil
}

func (g *openAITTS) GenerateSpeech(ctx context.Context, opts *speech.Options) (*tts.AudioFile, error) {
	req, format, err := g.speechRequest(opts)
	if err != nil {
		return nil, err
	}

	resp, err := g.client.CreateSpeech(ctx, req)
	if err != nil {
		return nil, err
	}
	defer resp.Close()

	file, err := io.ReadAll(resp)
	if err != nil {
		return nil, err
	}

	return &tts.AudioFile{
		Format: format,
		Data:   file,
	}, nil
}

var defaultOpenAITTSConfig = &tts.Config{
	Model:        string(openai.TTSModel1),
	VoiceID:      string(openai.VoiceNova),
	SpeakingRate: 1.0,
}

var _ provider.TTSClient = (*openAIClient)(nil)

func (g *openAIClient) NewTTS(model string, config *tts.Config) (tts.Model, error) {
	if config == nil {
		config = defaultOpenAITTSConfig
	}

	_em := &openAITTS{
		client: g.client,
		model:  openai.SpeechModel(model),
		voice:  openai.SpeechVoice(config.VoiceID),
		speed:  config.SpeakingRate,
	}

	if _em.model == "" {
		_em.model = openai.SpeechModel(defaultOpenAITTSConfig.Model)
	}
	if _em.voice == "" {
		_em.voice = openai.SpeechVoice(defaultOpenAITTSConfig.VoiceID)
	}
	if _em.speed == 0 {
		_em.speed = defaultOpenAITTSConfig.SpeakingRate
	}

	return _em, nil
}
