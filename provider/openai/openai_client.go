package openai

import (
	"context"
	"errors"

	"github.com/lemon-mint/coord"
	"github.com/lemon-mint/coord/pconf"
	"github.com/lemon-mint/coord/provider"
	"github.com/sashabaranov/go-openai"
)

type openAIClient struct {
	client *openai.Client
}

func (*openAIClient) Close() error {
	return nil
}

func (*openAIClient) Name() string {
	return ProviderName
}

var (
	ErrAPIKeyRequired error = errors.New("api key is required")
)

type openaiConfig func(*openAIClient) error

func (openaiConfig) Apply(*pconf.GeneralConfig) error {
	return nil
}

func WithAzureConfig(apiKey, baseURL string) pconf.Config {
	return WithOpenAIConfig(openai.DefaultAzureConfig(apiKey, baseURL))
}

func WithOpenAIConfig(config openai.ClientConfig) pconf.Config {
	return WithOpenAIClient(openai.NewClientWithConfig(config))
}

func WithOpenAIClient(client *openai.Client) pconf.Config {
	return openaiConfig(func(c *openAIClient) error {
		c.client = client
		return nil
	})
}

func newClient(configs ...pconf.Config) (*openAIClient, error) {
	client_config := pconf.GeneralConfig{}
	var openai_client openAIClient
	for i := range configs {
		switch v := configs[i].(type) {
		case openaiConfig:
			if err := v(&openai_client); err != nil {
				return nil, err
			}
		default:
			if err := configs[i].Apply(&client_config); err != nil {
				return nil, err
			}
		}
	}

	if openai_client.client != nil {
		return &openai_client, nil
	}

	if client_config.APIKey == "" {
		return nil, ErrAPIKeyRequired
	}

	openai_config := openai.DefaultConfig(client_config.APIKey)
	if client_config.BaseURL != "" {
		openai_config.BaseURL = client_config.BaseURL
	}
	if client_config.HTTPClient != nil {
		openai_config.HTTPClient = client_config.HTTPClient
	}

	openai_client.client = openai.NewClientWithConfig(openai_config)
	return &openai_client, nil
}

// =================== Provider ===================

var _ provider.TTSProvider = Provider

type OpenAIProvider struct{}

func (OpenAIProvider) NewTTSClient(ctx context.Context, configs ...pconf.Config) (provider.TTSClient, error) {
	return newClient(configs...)
}

const ProviderName = "openai"

var Provider OpenAIProvider

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
