package commands

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lemon-mint/coord/speech"
)

const defaultBaseURL = "https://api.mapbox.com"

var (
	urlFlags     requestFlags
	urlBaseURL   string
	urlShowToken bool
)

var urlCmd = &cobra.Command{
	Use:   "url",
	Short: "Print the request URL",
	Long: `Print the Voice API URL for a request without sending it.

The access token is replaced by a placeholder unless --show-token is given.

Example:
  speechctl url --text "Turn left" --locale en-GB --locale-voice`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := urlFlags.options()
		if err != nil {
			return err
		}

		token := "<token>"
		if urlShowToken {
			token = os.Getenv("MAPBOX_ACCESS_TOKEN")
		}

		fmt.Fprintln(cmd.OutOrStdout(), requestURL(urlBaseURL, opts, token))
		return nil
	},
}

func init() {
	urlFlags.register(urlCmd)
	urlCmd.Flags().StringVar(&urlBaseURL, "base-url", defaultBaseURL, "API base URL")
	urlCmd.Flags().BoolVar(&urlShowToken, "show-token", false, "include the real access token")
}

func requestURL(baseURL string, opts *speech.Options, token string) string {
	query := speech.EncodeQuery(opts.Params())
	if token != "" {
		query += "&access_token=" + url.QueryEscape(token)
	}
	return strings.TrimRight(baseURL, "/") + "/" + opts.Path() + "?" + query
}
