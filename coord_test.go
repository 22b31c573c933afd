package coord_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lemon-mint/coord"
	"github.com/lemon-mint/coord/pconf"
	"github.com/lemon-mint/coord/provider"
	"github.com/lemon-mint/coord/speech"
	"github.com/lemon-mint/coord/tts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoProvider struct{}

func (echoProvider) NewTTSClient(ctx context.Context, configs ...pconf.Config) (provider.TTSClient, error) {
	c, err := pconf.Resolve(configs...)
	if err != nil {
		return nil, err
	}
	return &echoClient{prefix: c.APIKey}, nil
}

type echoClient struct {
	prefix string
}

func (c *echoClient) NewTTS(model string, config *tts.Config) (tts.Model, error) {
	return c, nil
}

func (*echoClient) Name() string { return "echo" }
func (*echoClient) Close() error { return nil }

func (c *echoClient) GenerateSpeech(ctx context.Context, opts *speech.Options) (*tts.AudioFile, error) {
	return &tts.AudioFile{
		Format: tts.FormatOf(opts.OutputFormat),
		Data:   []byte(c.prefix + opts.Text),
	}, nil
}

func TestRegistry(t *testing.T) {
	coord.RegisterTTSProvider("echo", echoProvider{})
	assert.Contains(t, coord.ListTTSProviders(), "echo")

	client, err := coord.NewTTSClient(context.Background(), "echo", pconf.WithAPIKey("> "))
	require.NoError(t, err)
	defer client.Close()

	model, err := client.NewTTS("", nil)
	require.NoError(t, err)

	audio, err := model.GenerateSpeech(context.Background(), speech.NewText("hi"))
	require.NoError(t, err)
	assert.Equal(t, "> hi", string(audio.Data))
	assert.Equal(t, tts.FormatMP3, audio.Format)
}

func TestNewTTSClientUnknownProvider(t *testing.T) {
	_, err := coord.NewTTSClient(context.Background(), "nope")
	assert.Error(t, err)
}

type failingConfig struct{}

func (failingConfig) Apply(*pconf.GeneralConfig) error { return errors.New("bad config") }

func TestResolveStopsOnError(t *testing.T) {
	_, err := pconf.Resolve(pconf.WithAPIKey("k"), failingConfig{})
	assert.EqualError(t, err, "bad config")

	c, err := pconf.Resolve(pconf.WithAPIKey("k"), pconf.WithBaseURL("http://x"), pconf.WithUseREST(true))
	require.NoError(t, err)
	assert.Equal(t, "k", c.APIKey)
	assert.Equal(t, "http://x", c.BaseURL)
	assert.True(t, c.UseREST)
	assert.Equal(t, "<GeneralConfig [REDACTED]>", c.String())
}
