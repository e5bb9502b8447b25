package cmd

import (
	"encoding/json"

	"github.com/mugiwara-cli/mugiwara/color"
	"github.com/mugiwara-cli/mugiwara/icon"
	"github.com/mugiwara-cli/mugiwara/source"
	"github.com/mugiwara-cli/mugiwara/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().StringSliceP("server", "s", []string{}, "Servers to resolve, all the site servers by default")
	resolveCmd.Flags().IntP("number", "n", 1, "Episode number, used for display")
	resolveCmd.Flags().BoolP("json", "j", false, "Print the servers as JSON")
}

var resolveCmd = &cobra.Command{
	Use:     "resolve [episode url]",
	Short:   "Resolve the streams of an episode",
	Example: "  mugiwara resolve https://www.mugiwara-no-streaming.com/catalogue/one-piece/saison1/vostfr/episode-1 -s voe -s sibnet",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := currentSite()

		servers := lo.Must(cmd.Flags().GetStringSlice("server"))
		if len(servers) == 0 {
			servers = s.Settings().Servers
		}

		episode := source.NewEpisode(args[0], lo.Must(cmd.Flags().GetInt("number")))
		resolved := source.ResolveAll(cmd.Context(), s, episode, servers)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(resolved))
			return
		}

		for _, server := range resolved {
			printServer(cmd, server)
		}
	},
}

func printServer(cmd *cobra.Command, server *source.Server) {
	if !server.Available() {
		cmd.Println(style.Faint(icon.Get(icon.Unavailable) + " " + server.Name))
		return
	}

	cmd.Printf("%s %s\n", icon.Get(icon.Server), style.Bold(server.Name))
	for _, video := range server.Videos {
		cmd.Printf("  %s %s %s\n", kindTag(video.Kind), video.Quality, style.Faint(video.URL))
	}
}

func kindTag(kind source.Kind) string {
	bg := color.Blue
	if kind == source.MP4 {
		bg = color.Purple
	}
	return style.Tag(bg)(string(kind))
}
