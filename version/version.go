package version

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/metafates/gache"
	"github.com/mugiwara-cli/mugiwara/filesystem"
	"github.com/mugiwara-cli/mugiwara/network"
	"github.com/mugiwara-cli/mugiwara/where"
)

// ReleasesURL lists the latest release of the application.
const ReleasesURL = "https://api.github.com/repos/mugiwara-cli/mugiwara/releases/latest"

var versionCacher = gache.New[string](&gache.Options{
	Path:       filepath.Join(where.Cache(), "version.json"),
	Lifetime:   time.Hour * 24 * 2,
	FileSystem: &filesystem.GacheFs{},
})

// Latest returns the most recent released version, without the "v" prefix.
// The answer is kept for two days.
func Latest(ctx context.Context, f network.Fetcher) (string, error) {
	if cached, expired, err := versionCacher.Get(); err == nil && !expired && cached != "" {
		return cached, nil
	}

	latest, err := fetchLatest(ctx, f, ReleasesURL)
	if err != nil {
		return "", err
	}

	_ = versionCacher.Set(latest)
	return latest, nil
}

func fetchLatest(ctx context.Context, f network.Fetcher, releasesURL string) (string, error) {
	body, err := network.Get(ctx, f, releasesURL)
	if err != nil {
		return "", err
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.Unmarshal([]byte(body), &release); err != nil {
		return "", fmt.Errorf("decode release: %w", err)
	}

	if release.TagName == "" {
		return "", errors.New("empty tag name")
	}

	return strings.TrimPrefix(release.TagName, "v"), nil
}
