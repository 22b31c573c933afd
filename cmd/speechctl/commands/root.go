package commands

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/lemon-mint/godotenv"
	"github.com/spf13/cobra"

	"github.com/lemon-mint/coord/speech"
)

var (
	envFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "speechctl",
	Short: "Mapbox Voice API client",
	Long: `Build and send Mapbox Voice API speech requests.

A request is given either with --text / --ssml flags or as a request file
(-f) holding the persisted options record:

  text: Turn left onto Main Street.
  textType: text
  voiceId: Joanna
  outputFormat: mp3`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

		if err := loadEnvFile(envFile); err != nil {
			return err
		}

		if locale := environmentLocale(); locale != "" {
			speech.CurrentLocale = func() string { return locale }
			slog.Debug("using environment locale", "locale", locale)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before running")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(urlCmd)
	rootCmd.AddCommand(synthCmd)
	rootCmd.AddCommand(voicesCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		slog.Debug("env file not found", "path", path)
		return nil
	}
	return godotenv.Load(path)
}
