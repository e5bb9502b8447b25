// Package hls parses HLS master playlists into quality-labeled variant streams.
package hls

import (
	"bufio"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

const (
	// Header is the tag every playlist must start with.
	Header = "#EXTM3U"

	streamInfTag = "#EXT-X-STREAM-INF"

	maxLine = 1024 * 1024
)

// Auto labels a variant whose resolution is unknown or below 360 lines.
const Auto = "Auto"

var resolutionRe = regexp.MustCompile(`RESOLUTION=\d+x(\d+)`)

// Variant is one quality-specific stream of a master playlist.
type Variant struct {
	URL     string `json:"url"`
	Quality string `json:"quality"`
}

// Label maps a vertical resolution to its quality label.
func Label(height int) string {
	switch {
	case height >= 1080:
		return "1080p"
	case height >= 720:
		return "720p"
	case height >= 480:
		return "480p"
	case height >= 360:
		return "360p"
	default:
		return Auto
	}
}

// IsPlaylist reports whether body looks like an HLS playlist.
func IsPlaylist(body string) bool {
	body = strings.TrimPrefix(body, "\uFEFF")
	return strings.HasPrefix(strings.TrimSpace(body), Header)
}

// ParseMaster extracts the variants of the master playlist found at manifestURL.
//
// Variants are paired by adjacency: a stream-info line sets the pending label and the
// next URI line consumes it. A second stream-info line before any URI replaces the
// first one, and URI lines without a pending label are ignored.
//
// A stream-info line without RESOLUTION yields an Auto variant instead of being dropped,
// so a master without resolutions still lists its streams.
// A body that cannot be scanned to the end yields no variants rather than a truncated list.
func ParseMaster(manifestURL, body string) []Variant {
	if !IsPlaylist(body) {
		return nil
	}

	base, err := url.Parse(manifestURL)
	if err != nil {
		base = nil
	}

	var (
		variants []Variant
		pending  string
	)

	scanner := bufio.NewScanner(strings.NewReader(body))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, streamInfTag):
			pending = qualityOf(line)
		case strings.HasPrefix(line, "#"):
			continue
		default:
			if pending == "" {
				continue
			}
			variants = append(variants, Variant{URL: resolve(base, line), Quality: pending})
			pending = ""
		}
	}

	if scanner.Err() != nil {
		return nil
	}
	return variants
}

func qualityOf(streamInf string) string {
	m := resolutionRe.FindStringSubmatch(streamInf)
	if m == nil {
		return Auto
	}

	height, err := strconv.Atoi(m[1])
	if err != nil {
		return Auto
	}
	return Label(height)
}

func resolve(base *url.URL, ref string) string {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") || base == nil {
		return ref
	}

	u, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return base.ResolveReference(u).String()
}
