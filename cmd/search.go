package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mugiwara-cli/mugiwara/color"
	"github.com/mugiwara-cli/mugiwara/icon"
	"github.com/mugiwara-cli/mugiwara/key"
	"github.com/mugiwara-cli/mugiwara/log"
	"github.com/mugiwara-cli/mugiwara/query"
	"github.com/mugiwara-cli/mugiwara/source"
	"github.com/mugiwara-cli/mugiwara/style"
	"github.com/mugiwara-cli/mugiwara/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().BoolP("json", "j", false, "Print the results as JSON")
}

var searchCmd = &cobra.Command{
	Use:     "search [query]",
	Short:   "Search the catalogue of the site",
	Example: "  mugiwara search one piece",
	Args:    cobra.MinimumNArgs(1),
	ValidArgsFunction: func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		q := strings.Join(args, " ")
		s := currentSite()

		results := s.Search(cmd.Context(), q, viper.GetBool(key.SearchDub))
		if err := query.Remember(q, 1); err != nil {
			log.Warn(err)
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(results))
			return
		}

		if len(results) == 0 {
			cmd.Printf("%s nothing found for %s on %s\n", icon.Get(icon.Unavailable), style.Fg(color.Yellow)(q), s.Name())
			return
		}

		cmd.Printf("%s %s on %s\n\n", icon.Get(icon.Site), util.Quantify(len(results), "result", "results"), style.Bold(s.Name()))
		for i, r := range results {
			printResult(cmd, i, r)
		}
	},
}

func printResult(cmd *cobra.Command, i int, r *source.Result) {
	cmd.Printf(
		"%s %s %s\n    %s\n",
		style.Faint(fmt.Sprintf("%2d.", i)),
		style.Fg(color.Purple)(r.Title),
		style.Faint(fmt.Sprintf("(%.2f)", r.Score)),
		style.Faint(r.URL),
	)
}
