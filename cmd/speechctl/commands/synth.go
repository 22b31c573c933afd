package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lemon-mint/coord"
	"github.com/lemon-mint/coord/pconf"
	"github.com/lemon-mint/coord/provider/mapbox"
	"github.com/lemon-mint/coord/tts"
)

var (
	synthFlags   requestFlags
	synthBaseURL string
	synthOutput  string
)

var synthCmd = &cobra.Command{
	Use:   "synth",
	Short: "Synthesize speech into a file",
	Long: `Send a request to the Voice API and write the returned audio.

Example:
  speechctl synth --text "Turn left" --format ogg_vorbis -o turn.ogg
  speechctl synth -f request.yaml -o out.mp3`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if synthOutput == "" {
			return fmt.Errorf("output file is required, use -o flag")
		}

		opts, err := synthFlags.options()
		if err != nil {
			return err
		}

		client, err := coord.NewTTSClient(cmd.Context(), mapbox.ProviderName,
			pconf.WithAPIKey(os.Getenv("MAPBOX_ACCESS_TOKEN")),
			pconf.WithBaseURL(synthBaseURL),
		)
		if err != nil {
			return err
		}
		defer client.Close()

		model, err := client.NewTTS("", &tts.Config{})
		if err != nil {
			return err
		}

		slog.Debug("requesting speech",
			"path", opts.Path(),
			"voice", opts.VoiceID.String(),
			"format", opts.OutputFormat.String(),
		)

		audio, err := model.GenerateSpeech(cmd.Context(), opts)
		if err != nil {
			return err
		}

		if err := saveToFile(synthOutput, audio.Data); err != nil {
			return err
		}

		slog.Info("wrote audio", "file", synthOutput, "bytes", len(audio.Data), "mime", audio.Format)
		return nil
	},
}

func init() {
	synthFlags.register(synthCmd)
	synthCmd.Flags().StringVar(&synthBaseURL, "base-url", defaultBaseURL, "API base URL")
	synthCmd.Flags().StringVarP(&synthOutput, "output", "o", "", "output audio file")
}

func saveToFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0644)
}
