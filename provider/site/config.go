// Package site implements the resolution pipeline for hosting sites that only serve HTML:
// catalogue search, episode discovery, server location and stream extraction.
//
// A single pipeline serves every site; differences between sites live in Config.
package site

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// NoProxy disables the proxy for embed and manifest fetches.
const NoProxy = "none"

// Config describes a hosting site.
type Config struct {
	Name string `toml:"name"`
	// URL is the site origin, used to resolve relative links.
	URL           string `toml:"url"`
	CatalogueURL  string `toml:"catalogue_url"`
	CataloguePath string `toml:"catalogue_path"`
	// Proxy is prefixed to embed and manifest URLs. Empty inherits the global proxy,
	// NoProxy fetches them directly.
	Proxy       string    `toml:"proxy"`
	Servers     []string  `toml:"servers"`
	SupportsDub bool      `toml:"supports_dub"`
	Selectors   Selectors `toml:"selectors"`
}

// Selectors are the CSS selectors the pipeline relies on.
type Selectors struct {
	// Catalogue is a cascade: the first selector matching anything is used.
	Catalogue  []string `toml:"catalogue"`
	Headings   []string `toml:"headings"`
	SeasonLink string   `toml:"season_link"`
	Episode    string   `toml:"episode"`
}

// DecodeConfig reads a TOML site definition.
func DecodeConfig(data []byte) (Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode site: %w", err)
	}
	return cfg, nil
}

// WithDefaults fills the optional fields.
func (c Config) WithDefaults() Config {
	if c.CataloguePath == "" {
		c.CataloguePath = "/catalogue"
	}
	c.CataloguePath = "/" + strings.Trim(c.CataloguePath, "/")

	if c.CatalogueURL == "" {
		c.CatalogueURL = strings.TrimRight(c.URL, "/") + c.CataloguePath
	}

	if len(c.Selectors.Catalogue) == 0 {
		keyword := strings.Trim(c.CataloguePath, "/")
		c.Selectors.Catalogue = []string{
			fmt.Sprintf("a[href^='%s/']", c.CataloguePath),
			fmt.Sprintf("a[href*='%s']", keyword),
			"a",
		}
	}
	if len(c.Selectors.Headings) == 0 {
		c.Selectors.Headings = []string{"h3", "h2", "h1"}
	}
	if c.Selectors.SeasonLink == "" {
		c.Selectors.SeasonLink = "a[href]"
	}
	if c.Selectors.Episode == "" {
		c.Selectors.Episode = "[data-episode]"
	}

	return c
}

// Validate checks the fields the pipeline cannot work without.
func (c Config) Validate() error {
	if c.Name == "" {
		return errors.New("site name is required")
	}

	u, err := url.Parse(c.URL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("site %s: url %q must be an absolute http(s) URL", c.Name, c.URL)
	}

	if len(c.Servers) == 0 {
		return fmt.Errorf("site %s: at least one server is required", c.Name)
	}

	return nil
}
