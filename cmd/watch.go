package cmd

import (
	"context"
	"strings"

	"github.com/mugiwara-cli/mugiwara/icon"
	"github.com/mugiwara-cli/mugiwara/key"
	"github.com/mugiwara-cli/mugiwara/mini"
	"github.com/mugiwara-cli/mugiwara/open"
	"github.com/mugiwara-cli/mugiwara/player"
	"github.com/mugiwara-cli/mugiwara/query"
	"github.com/mugiwara-cli/mugiwara/source"
	"github.com/mugiwara-cli/mugiwara/tui"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().BoolP("print", "p", false, "Print the stream URL instead of playing it")
	watchCmd.Flags().BoolP("open", "o", false, "Open the stream URL with the default handler instead of the player")
	watchCmd.MarkFlagsMutuallyExclusive("print", "open")
}

var watchCmd = &cobra.Command{
	Use:   "watch [query]",
	Short: "Pick a title, an episode and a server, then play the stream",
	Long: `Walk through the whole pipeline interactively: search, pick a title, pick an episode,
pick a server and a quality. The stream is handed to mpv (see player.binary) with
the headers its server requires.

The full screen interface is used unless --mini (or tui.mini) asks for plain prompts.`,
	ValidArgsFunction: func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		mode := playStream
		switch {
		case lo.Must(cmd.Flags().GetBool("print")):
			mode = printStream
		case lo.Must(cmd.Flags().GetBool("open")):
			mode = openStream
		}

		runWatch(cmd, args, mode)
	},
}

type watchMode int

const (
	playStream watchMode = iota
	printStream
	openStream
)

// picker runs one interactive session and returns the chosen stream.
type picker func(ctx context.Context, src source.Source, q string, p player.Player) (*player.Stream, error)

func tuiPicker(ctx context.Context, src source.Source, q string, p player.Player) (*player.Stream, error) {
	return tui.Run(ctx, &tui.Options{
		Source: src,
		Query:  q,
		Dub:    viper.GetBool(key.SearchDub),
		Player: p,
	})
}

func miniPicker(ctx context.Context, src source.Source, q string, p player.Player) (*player.Stream, error) {
	return mini.Run(ctx, &mini.Options{
		Source: src,
		Query:  q,
		Dub:    viper.GetBool(key.SearchDub),
		Player: p,
	})
}

func runWatch(cmd *cobra.Command, args []string, mode watchMode) {
	var p player.Player
	if mode == playStream {
		binary := viper.GetString(key.PlayerBinary)
		checkPlayer(binary)
		p = player.NewMPV(binary)
	}

	pick := picker(tuiPicker)
	if viper.GetBool(key.TUIMini) {
		pick = miniPicker
	}

	ctx := cmd.Context()
	stream, err := pick(ctx, currentSite(), strings.Join(args, " "), p)
	if ctx.Err() != nil {
		// interrupted
		return
	}
	handleErr(err)

	if stream == nil || mode == playStream {
		return
	}

	switch mode {
	case printStream:
		cmd.Println(stream.URL)
	case openStream:
		cmd.Printf("%s opening %s\n", icon.Get(icon.Progress), stream.Title)
		handleErr(open.Start(stream.URL))
	}
}
