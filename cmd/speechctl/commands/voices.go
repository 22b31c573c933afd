package commands

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/lemon-mint/coord/speech"
)

var voicesLanguage string

var voicesCmd = &cobra.Command{
	Use:   "voices",
	Short: "List the voice catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "VOICE\tLOCALE")
		for _, v := range listVoices(voicesLanguage) {
			fmt.Fprintf(w, "%s\t%s\n", v, v.Locale())
		}
		return w.Flush()
	},
}

func init() {
	voicesCmd.Flags().StringVarP(&voicesLanguage, "language", "l", "", "only list voices for this language, e.g. de")
}

// listVoices returns the catalog grouped by locale, optionally restricted
// to one language.
func listVoices(lang string) []speech.VoiceID {
	voices := speech.Voices()
	if lang != "" {
		voices = speech.VoicesForLanguage(lang)
	}

	byLocale := lo.GroupBy(voices, speech.VoiceID.Locale)
	locales := lo.Keys(byLocale)
	sort.Strings(locales)

	return lo.FlatMap(locales, func(locale string, _ int) []speech.VoiceID {
		return byLocale[locale]
	})
}
