package cmd

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/mugiwara-cli/mugiwara/filesystem"
	"github.com/mugiwara-cli/mugiwara/inline"
	"github.com/mugiwara-cli/mugiwara/key"
	"github.com/mugiwara-cli/mugiwara/log"
	"github.com/mugiwara-cli/mugiwara/query"
	"github.com/mugiwara-cli/mugiwara/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringP("query", "q", "", "The search query")
	inlineCmd.Flags().StringP("title", "t", "", "Title selector")
	inlineCmd.Flags().StringP("episodes", "e", "", "Episode selector")
	inlineCmd.Flags().StringSliceP("server", "s", []string{}, "Resolve the selected episodes on these servers")
	inlineCmd.Flags().BoolP("all-servers", "A", false, "Resolve the selected episodes on every server of the site")
	inlineCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	inlineCmd.Flags().StringP("output", "o", "", "Write the output to this file")

	inlineCmd.MarkFlagsMutuallyExclusive("server", "all-servers")
	lo.Must0(inlineCmd.MarkFlagRequired("query"))

	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("query", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}))
}

var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Run the pipeline without interaction, for scripts",
	Long: `Search, select and resolve in one go.

Title selectors:
  first - first result
  last - last result
  exact - result whose title equals the query
  closest - result whose title is the closest to the query
  [number] - result at this index (starting from 0)

Episode selectors:
  first - first episode
  last - last episode
  all - every episode
  [number] - episode with this number
  [from]-[to] - episodes numbered from..to, inclusive
  @[substring]@ - episodes whose name contains substring

Without --json a title selector is required. With --json and no selector every result is kept.
Without servers only episode URLs are printed, with servers the stream URLs.`,
	Example: "  mugiwara inline -q \"one piece\" -t closest -e 1-3 -s voe -j",
	Run: func(cmd *cobra.Command, args []string) {
		asJson := lo.Must(cmd.Flags().GetBool("json"))
		if !asJson && !cmd.Flags().Changed("title") {
			handleErr(errors.New("--title is required without --json"))
		}

		s := currentSite()
		q := lo.Must(cmd.Flags().GetString("query"))

		var writer io.Writer = os.Stdout
		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			f, err := filesystem.API().Create(output)
			handleErr(err)
			defer util.Ignore(f.Close)
			writer = f
		}

		titlePicker := mo.None[inline.TitlePicker]()
		if flag := lo.Must(cmd.Flags().GetString("title")); flag != "" {
			fn, err := inline.ParseTitlePicker(flag, q)
			handleErr(err)
			titlePicker = mo.Some(fn)
		}

		episodesFilter := mo.None[inline.EpisodesFilter]()
		if flag := lo.Must(cmd.Flags().GetString("episodes")); flag != "" {
			fn, err := inline.ParseEpisodesFilter(flag)
			handleErr(err)
			episodesFilter = mo.Some(fn)
		}

		servers := lo.Must(cmd.Flags().GetStringSlice("server"))
		if lo.Must(cmd.Flags().GetBool("all-servers")) {
			servers = s.Settings().Servers
		}

		options := &inline.Options{
			Out:            writer,
			Source:         s,
			Json:           asJson,
			Query:          q,
			Dub:            viper.GetBool(key.SearchDub),
			TitlePicker:    titlePicker,
			EpisodesFilter: episodesFilter,
			Servers:        servers,
		}

		handleErr(inline.Run(cmd.Context(), options))
		if err := query.Remember(q, 1); err != nil {
			log.Warn(err)
		}
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the inline output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "title", "episode", "output":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(reflector.Reflect(&inline.Output{})))
	},
}
