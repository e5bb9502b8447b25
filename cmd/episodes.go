package cmd

import (
	"encoding/json"

	"github.com/mugiwara-cli/mugiwara/color"
	"github.com/mugiwara-cli/mugiwara/icon"
	"github.com/mugiwara-cli/mugiwara/inline"
	"github.com/mugiwara-cli/mugiwara/style"
	"github.com/mugiwara-cli/mugiwara/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(episodesCmd)
	episodesCmd.Flags().BoolP("json", "j", false, "Print the episodes as JSON")
	episodesCmd.Flags().StringP("episodes", "e", "all", "Episode selector, see \"mugiwara inline --help\"")
}

var episodesCmd = &cobra.Command{
	Use:     "episodes [title url]",
	Short:   "List the episodes of a title",
	Example: "  mugiwara episodes https://www.mugiwara-no-streaming.com/catalogue/one-piece/",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		filter, err := inline.ParseEpisodesFilter(lo.Must(cmd.Flags().GetString("episodes")))
		handleErr(err)

		s := currentSite()
		episodes, err := filter(s.Episodes(cmd.Context(), args[0]))
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(episodes))
			return
		}

		if len(episodes) == 0 {
			cmd.Printf("%s no episode found\n", icon.Get(icon.Unavailable))
			return
		}

		cmd.Printf("%s %s\n\n", icon.Get(icon.Episode), util.Quantify(len(episodes), "episode", "episodes"))
		for _, ep := range episodes {
			cmd.Printf("%s %s\n", style.Fg(color.Purple)(ep.Name), style.Faint(ep.URL))
		}
	},
}
