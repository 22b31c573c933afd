package pconf

import (
	"net/http"

	"cloud.google.com/go/auth"
	"google.golang.org/api/option"
)

type GeneralConfig struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client

	ProjectID string
	Location  string
	UseREST   bool

	GoogleCredentials   *auth.Credentials
	GoogleClientOptions []option.ClientOption
}

func (GeneralConfig) String() string {
	return "<GeneralConfig [REDACTED]>"
}

type Config interface {
	Apply(g *GeneralConfig) error
}

// Resolve applies configs in order to a fresh GeneralConfig.
func Resolve(configs ...Config) (GeneralConfig, error) {
	var g GeneralConfig
	for i := range configs {
		if err := configs[i].Apply(&g); err != nil {
			return GeneralConfig{}, err
		}
	}
	return g, nil
}
