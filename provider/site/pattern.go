package site

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// Heuristic patterns used where the markup offers no structure to select on.
var (
	m3u8Re = regexp.MustCompile(`https?://[^\s'"<>]+\.m3u8(?:\?[^\s'"<>]*)?`)
	mp4Re  = regexp.MustCompile(`https?://[^\s'"<>]+\.mp4(?:\?[^\s'"<>]*)?`)

	// "720p" inside an MP4 URL
	mp4QualityRe = regexp.MustCompile(`(\d{3,4})p`)

	// {episode: 3}, "episode":"3", episode 3
	scriptEpisodeRe = regexp.MustCompile(`(?i)episode["\s:]+(\d+)`)

	linkEpisodeRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)episode[-_]?(\d+)`),
		regexp.MustCompile(`(?i)\bep\.?\s?(\d+)`),
	}

	seasonRe = regexp.MustCompile(`(?i)(?:saison|season)[-_/]?(\d+)`)

	quotedURLRe = regexp.MustCompile(`['"](https?://[^'"]+)['"]`)
)

// IsVideoServer reports whether rawURL points at the named server: the URL mentions the
// name, the name without "stream" (doodstream -> dood), or any server the site declares.
func IsVideoServer(rawURL, server string, supported []string) bool {
	lowerURL := strings.ToLower(rawURL)
	name := strings.ToLower(strings.TrimSpace(server))

	if name != "" && strings.Contains(lowerURL, name) {
		return true
	}

	// "stream" alone would leave an empty needle that matches everything.
	if short := strings.ReplaceAll(name, "stream", ""); short != "" && short != name {
		if strings.Contains(lowerURL, short) {
			return true
		}
	}

	for _, s := range supported {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" && strings.Contains(lowerURL, s) {
			return true
		}
	}

	return false
}

// episodeNumber extracts the first capture group of re from s.
func episodeNumber(re *regexp.Regexp, s string) (int, bool) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// isMaster reports whether an m3u8 URL names a master playlist.
func isMaster(rawURL string) bool {
	if u, err := url.Parse(rawURL); err == nil {
		return strings.Contains(strings.ToLower(u.Path), "master")
	}
	return strings.Contains(strings.ToLower(rawURL), "master")
}

// mp4Quality guesses the quality label of an MP4 URL.
func mp4Quality(rawURL string) (string, bool) {
	m := mp4QualityRe.FindStringSubmatch(rawURL)
	if m == nil {
		return "", false
	}
	return m[1] + "p", true
}
