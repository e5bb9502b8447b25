// Package provider manages built-in and custom hosting sites.
package provider

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/mugiwara-cli/mugiwara/constant"
	"github.com/mugiwara-cli/mugiwara/filesystem"
	"github.com/mugiwara-cli/mugiwara/key"
	"github.com/mugiwara-cli/mugiwara/log"
	"github.com/mugiwara-cli/mugiwara/network"
	"github.com/mugiwara-cli/mugiwara/provider/site"
	"github.com/mugiwara-cli/mugiwara/util"
	"github.com/mugiwara-cli/mugiwara/where"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// ErrNotFound is returned when no site has the requested name.
var ErrNotFound = errors.New("site not found")

// DefaultServers are the video servers the built-in sites front.
var DefaultServers = []string{
	"sibnet",
	"sendvid",
	"doodstream",
	"voe",
	"mixdrop",
	"streamtape",
	"vidmoly",
}

const builtinURL = "https://www.mugiwara-no-streaming.com"

// Provider represents a hosting site.
type Provider struct {
	ID       string
	Name     string
	IsCustom bool // Defined by a TOML file in the sites directory.
	Config   site.Config
}

func (p *Provider) String() string {
	return p.Name
}

// CreateSource builds the pipeline of the site with the configured network settings.
func (p *Provider) CreateSource() (*site.Site, error) {
	cfg := p.Config
	if cfg.Proxy == "" {
		cfg.Proxy = viper.GetString(key.NetworkProxy)
	}

	client := network.NewClient(viper.GetDuration(key.NetworkTimeout), viper.GetBool(key.NetworkTLSFingerprint))
	fetcher := network.NewDirect(client, viper.GetString(key.NetworkUserAgent))

	s, err := site.New(cfg, fetcher, log.Scoped(p.ID, viper.GetBool(key.ProviderVerbose)))
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", p.Name, err)
	}
	return s, nil
}

// Builtins returns built-in sites.
func Builtins() []*Provider {
	return []*Provider{
		{
			ID:   constant.Mugiwara,
			Name: constant.Mugiwara,
			Config: site.Config{
				Name:        constant.Mugiwara,
				URL:         builtinURL,
				Servers:     DefaultServers,
				SupportsDub: true,
			},
		},
		{
			ID:   constant.Mugiwara + "-direct",
			Name: constant.Mugiwara + "-direct",
			Config: site.Config{
				Name:        constant.Mugiwara + "-direct",
				URL:         builtinURL,
				Proxy:       site.NoProxy,
				Servers:     DefaultServers,
				SupportsDub: true,
			},
		},
	}
}

// Customs returns all valid custom sites. Broken definitions are logged and skipped.
func Customs() []*Provider {
	providers, err := CustomProviders()
	if err != nil {
		log.Warn(err)
	}
	return providers
}

// All returns built-in sites followed by custom ones.
func All() []*Provider {
	return append(Builtins(), Customs()...)
}

// Get finds a site by name.
func Get(name string) (*Provider, error) {
	if p, ok := lo.Find(All(), func(p *Provider) bool {
		return p.Name == name
	}); ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// CustomProviders reads the site definitions in the sites directory.
// Definitions that fail to decode or validate are reported in the returned error.
func CustomProviders() ([]*Provider, error) {
	files, err := filesystem.API().ReadDir(where.Sites())
	if err != nil {
		return nil, err
	}

	var (
		providers []*Provider
		errs      []error
	)
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != constant.SiteExtension {
			continue
		}

		path := filepath.Join(where.Sites(), f.Name())
		cfg, err := loadConfig(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if cfg.Name == "" {
			cfg.Name = util.FileStem(f.Name())
		}

		if err := cfg.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}

		providers = append(providers, &Provider{
			ID:       cfg.Name + " custom",
			Name:     cfg.Name,
			IsCustom: true,
			Config:   cfg,
		})
	}

	return providers, errors.Join(errs...)
}

func loadConfig(path string) (site.Config, error) {
	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return site.Config{}, err
	}

	cfg, err := site.DecodeConfig(data)
	if err != nil {
		return site.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
