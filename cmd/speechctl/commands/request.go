package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lemon-mint/coord/speech"
)

type requestFlags struct {
	file        string
	text        string
	ssml        string
	voice       string
	format      string
	locale      string
	localeVoice bool
}

func (f *requestFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "request file (YAML or JSON options record)")
	cmd.Flags().StringVar(&f.text, "text", "", "plain text to speak")
	cmd.Flags().StringVar(&f.ssml, "ssml", "", "SSML document to speak")
	cmd.Flags().StringVar(&f.voice, "voice", "", "voice id, e.g. Joanna (see 'speechctl voices')")
	cmd.Flags().StringVar(&f.format, "format", "", "output format: mp3, ogg_vorbis or pcm")
	cmd.Flags().StringVar(&f.locale, "locale", "", "locale used to pick a voice, e.g. en-GB")
	cmd.Flags().BoolVar(&f.localeVoice, "locale-voice", false, "pick the voice from the locale")
	cmd.MarkFlagsMutuallyExclusive("file", "text", "ssml")
}

// options builds the request described by the flags.
func (f *requestFlags) options() (*speech.Options, error) {
	var opts *speech.Options
	switch {
	case f.file != "":
		o, err := loadOptions(f.file)
		if err != nil {
			return nil, err
		}
		opts = o
	case f.ssml != "":
		opts = speech.NewSSML(f.ssml)
	case f.text != "":
		opts = speech.NewText(f.text)
	default:
		return nil, fmt.Errorf("one of --text, --ssml or -f is required")
	}

	if f.locale != "" {
		opts.Locale = f.locale
	}

	switch {
	case f.voice != "":
		voice, ok := speech.ParseVoiceID(f.voice)
		if !ok {
			return nil, fmt.Errorf("unknown voice %q", f.voice)
		}
		opts.VoiceID = voice
	case f.localeVoice:
		opts.ApplyLocaleVoice()
	}

	if f.format != "" {
		format, ok := speech.ParseAudioFormat(f.format)
		if !ok {
			return nil, fmt.Errorf("unknown output format %q", f.format)
		}
		opts.OutputFormat = format
	}

	return opts, nil
}

// loadOptions reads a persisted options record. Files ending in .json are
// decoded as JSON, everything else as YAML.
func loadOptions(path string) (*speech.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return speech.Decode(data)
	}
	return speech.DecodeYAML(data)
}
