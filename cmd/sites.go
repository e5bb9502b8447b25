package cmd

import (
	"fmt"
	"net/url"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/mugiwara-cli/mugiwara/color"
	"github.com/mugiwara-cli/mugiwara/constant"
	"github.com/mugiwara-cli/mugiwara/filesystem"
	"github.com/mugiwara-cli/mugiwara/icon"
	"github.com/mugiwara-cli/mugiwara/provider"
	"github.com/mugiwara-cli/mugiwara/provider/site"
	"github.com/mugiwara-cli/mugiwara/style"
	"github.com/mugiwara-cli/mugiwara/util"
	"github.com/mugiwara-cli/mugiwara/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(sitesCmd)
}

var sitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "Manage built-in and custom sites",
}

func init() {
	sitesCmd.AddCommand(sitesListCmd)

	sitesListCmd.Flags().BoolP("raw", "r", false, "Only print names")
	sitesListCmd.Flags().BoolP("custom", "c", false, "Only show custom sites")
	sitesListCmd.Flags().BoolP("builtin", "b", false, "Only show built-in sites")

	sitesListCmd.MarkFlagsMutuallyExclusive("custom", "builtin")
	sitesListCmd.SetOut(os.Stdout)
}

var sitesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available sites",
	Run: func(cmd *cobra.Command, args []string) {
		raw := lo.Must(cmd.Flags().GetBool("raw"))
		headerStyle := style.New().Foreground(color.HiBlue).Bold(true).Render

		list := func(header string, providers []*provider.Provider) {
			if !raw {
				cmd.Println(headerStyle(header))
			}
			for _, p := range providers {
				if raw {
					cmd.Println(p.Name)
					continue
				}
				cmd.Printf("%s %s %s\n", icon.Get(icon.Site), p.Name, style.Faint(p.Config.URL))
			}
		}

		printCustom := func() {
			customs, err := provider.CustomProviders()
			if err != nil && !raw {
				cmd.Println(style.Fg(color.Red)(err.Error()))
			}
			list("Custom:", customs)
		}

		switch {
		case lo.Must(cmd.Flags().GetBool("builtin")):
			list("Builtin:", provider.Builtins())
		case lo.Must(cmd.Flags().GetBool("custom")):
			printCustom()
		default:
			list("Builtin:", provider.Builtins())
			if !raw {
				cmd.Println()
			}
			printCustom()
		}
	},
}

func init() {
	sitesCmd.AddCommand(sitesRemoveCmd)

	sitesRemoveCmd.Flags().StringArrayP("name", "n", []string{}, "Name of the custom site to remove")
	lo.Must0(sitesRemoveCmd.RegisterFlagCompletionFunc("name", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		customs, _ := provider.CustomProviders()
		return lo.Map(customs, func(p *provider.Provider, _ int) string {
			return p.Name
		}), cobra.ShellCompDirectiveNoFileComp
	}))
}

var sitesRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove custom site definitions",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range lo.Must(cmd.Flags().GetStringArray("name")) {
			path := filepath.Join(where.Sites(), util.SanitizeFilename(name)+constant.SiteExtension)
			handleErr(filesystem.API().Remove(path))
			fmt.Printf("%s removed %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(name))
		}
	},
}

func init() {
	sitesCmd.AddCommand(sitesGenCmd)

	sitesGenCmd.Flags().StringP("name", "n", "", "Name of the new site")
	sitesGenCmd.Flags().StringP("url", "u", "", "Origin of the new site")
	sitesGenCmd.Flags().StringP("catalogue-path", "c", "/catalogue", "Path listing every title")
	sitesGenCmd.Flags().StringSliceP("server", "s", provider.DefaultServers, "Video servers fronted by the site")
	sitesGenCmd.Flags().Bool("no-proxy", false, "Fetch embeds and manifests directly")

	lo.Must0(sitesGenCmd.MarkFlagRequired("name"))
	lo.Must0(sitesGenCmd.MarkFlagRequired("url"))
}

var sitesGenCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a site definition",
	Long:  `Write a site definition prefilled with the default selectors to the sites directory.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.SetOut(os.Stdout)

		author := "Anonymous"
		if usr, err := user.Current(); err == nil {
			author = usr.Username
		}

		rawURL := strings.TrimRight(lo.Must(cmd.Flags().GetString("url")), "/")
		if u, err := url.Parse(rawURL); err != nil || u.Host == "" {
			handleErr(fmt.Errorf("invalid url %q", rawURL))
		}

		cataloguePath := "/" + strings.Trim(lo.Must(cmd.Flags().GetString("catalogue-path")), "/")

		proxy := ""
		if lo.Must(cmd.Flags().GetBool("no-proxy")) {
			proxy = site.NoProxy
		}

		s := struct {
			Name             string
			Author           string
			URL              string
			Proxy            string
			Servers          []string
			CataloguePath    string
			CatalogueKeyword string
		}{
			Name:             lo.Must(cmd.Flags().GetString("name")),
			Author:           author,
			URL:              rawURL,
			Proxy:            proxy,
			Servers:          lo.Must(cmd.Flags().GetStringSlice("server")),
			CataloguePath:    cataloguePath,
			CatalogueKeyword: strings.Trim(cataloguePath, "/"),
		}

		tmpl, err := template.New("site").Parse(constant.SiteTemplate)
		handleErr(err)

		var b strings.Builder
		handleErr(tmpl.Execute(&b, s))

		// the generated file must load as is
		cfg, err := site.DecodeConfig([]byte(b.String()))
		handleErr(err)
		handleErr(cfg.Validate())

		target := filepath.Join(where.Sites(), util.SanitizeFilename(s.Name)+constant.SiteExtension)
		handleErr(filesystem.API().WriteFile(target, []byte(b.String()), 0o644))

		cmd.Println(target)
	},
}
