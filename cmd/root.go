// Package cmd implements the command-line interface of mugiwara.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/mugiwara-cli/mugiwara/color"
	"github.com/mugiwara-cli/mugiwara/constant"
	"github.com/mugiwara-cli/mugiwara/icon"
	"github.com/mugiwara-cli/mugiwara/key"
	"github.com/mugiwara-cli/mugiwara/log"
	"github.com/mugiwara-cli/mugiwara/provider"
	"github.com/mugiwara-cli/mugiwara/provider/site"
	"github.com/mugiwara-cli/mugiwara/style"
	"github.com/mugiwara-cli/mugiwara/version"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Icons variant (emoji, nerd, plain, kaomoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("site", "S", "", "Site to resolve streams from")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("site", completionSites))
	lo.Must0(viper.BindPFlag(key.SitesDefault, rootCmd.PersistentFlags().Lookup("site")))

	rootCmd.PersistentFlags().Bool("dub", false, "Ask for dubbed versions")
	lo.Must0(viper.BindPFlag(key.SearchDub, rootCmd.PersistentFlags().Lookup("dub")))

	rootCmd.PersistentFlags().BoolP("mini", "m", false, "Use plain prompts instead of the full screen interface")
	lo.Must0(viper.BindPFlag(key.TUIMini, rootCmd.PersistentFlags().Lookup("mini")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify(os.Stdout)
	})
}

var rootCmd = &cobra.Command{
	Use:   constant.Mugiwara,
	Short: "Resolve and watch streams from HTML-only anime sites",
	Long: style.New().Bold(true).Foreground(color.HiRed).Render(constant.Mugiwara) + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Resolve and watch streams from HTML-only anime sites"),
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		runWatch(cmd, args, playStream)
	},
}

// Execute runs the command line until completion or interruption.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// currentSite builds the pipeline of the site selected with --site or sites.default.
func currentSite() *site.Site {
	p, err := provider.Get(viper.GetString(key.SitesDefault))
	handleErr(err)

	s, err := p.CreateSource()
	handleErr(err)
	return s
}

func completionSites(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lo.Map(provider.All(), func(p *provider.Provider, _ int) string {
		return p.Name
	}), cobra.ShellCompDirectiveNoFileComp
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", style.Fg(color.Red)(icon.Get(icon.Fail)), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
