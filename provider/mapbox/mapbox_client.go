package mapbox

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/lemon-mint/coord/speech"
)

// =================== API Client ===================

type mapboxAPIClient struct {
	baseURL     string
	accessToken string

	httpClient *http.Client
}

const mapboxBaseURL = "https://api.mapbox.com"

// speakURL returns the full request URL for opts. The path is already
// escaped and must not be passed through url.JoinPath, which would unescape
// %2F in the spoken text.
func (c *mapboxAPIClient) speakURL(opts *speech.Options) string {
	query := speech.EncodeQuery(append(opts.Params(), speech.QueryItem{
		Name:  "access_token",
		Value: c.accessToken,
	}))
	return strings.TrimRight(c.baseURL, "/") + "/" + opts.Path() + "?" + query
}

func (c *mapboxAPIClient) RequestSpeech(ctx context.Context, opts *speech.Options) ([]byte, error) {
	r, err := http.NewRequestWithContext(ctx, http.MethodGet, c.speakURL(opts), nil)
	if err != nil {
		return nil, err
	}
	r.Header.Set("Accept", opts.OutputFormat.MIMEType())

	resp, err := c.httpClient.Do(r)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, getErrorByStatus(resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// ================================================

var mapboxHTTPClient *http.Client = &http.Client{
	Transport: &http.Transport{
		MaxIdleConns:    16,
		IdleConnTimeout: 30 * time.Second,
	},
}

func newClient(accessToken, baseURL string, httpClient *http.Client) *mapboxAPIClient {
	if baseURL == "" {
		baseURL = mapboxBaseURL
	}
	if httpClient == nil {
		httpClient = mapboxHTTPClient
	}
	return &mapboxAPIClient{
		baseURL:     baseURL,
		accessToken: strings.TrimSpace(accessToken),
		httpClient:  httpClient,
	}
}
