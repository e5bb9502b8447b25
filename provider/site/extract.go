package site

import (
	"context"
	"html"
	"regexp"

	"github.com/mugiwara-cli/mugiwara/hls"
	"github.com/mugiwara-cli/mugiwara/network"
	"github.com/mugiwara-cli/mugiwara/source"
	"github.com/samber/lo"
)

// Extract mines an embed page for HLS manifests and MP4 files.
func (s *Site) Extract(ctx context.Context, embedURL, server string) []*source.Video {
	log := s.log.WithField("server", server)

	body, err := network.Get(ctx, s.proxy, embedURL)
	if err != nil {
		log.WithError(err).Warn("load embed")
		return []*source.Video{}
	}

	videos := make([]*source.Video, 0)

	for _, manifest := range matches(m3u8Re, body) {
		if isMaster(manifest) {
			variants := s.Qualities(ctx, manifest)
			if len(variants) > 0 {
				for _, v := range variants {
					videos = append(videos, source.NewVideo(v.URL, source.HLS, server, v.Quality))
				}
				continue
			}
		}
		videos = append(videos, source.NewVideo(manifest, source.HLS, server, hls.Auto))
	}

	for _, file := range matches(mp4Re, body) {
		quality, ok := mp4Quality(file)
		if !ok {
			quality = hls.Auto
		}
		videos = append(videos, source.NewVideo(file, source.MP4, server, quality))
	}

	log.Debugf("%d streams extracted", len(videos))
	return videos
}

// Qualities fetches a master playlist and lists its variants.
func (s *Site) Qualities(ctx context.Context, masterURL string) []hls.Variant {
	body, err := network.Get(ctx, s.proxy, masterURL)
	if err != nil {
		s.log.WithError(err).Warnf("load manifest %s", masterURL)
		return nil
	}

	return hls.ParseMaster(masterURL, body)
}

// matches returns the distinct matches of re in body, in order of appearance.
func matches(re *regexp.Regexp, body string) []string {
	found := lo.Map(re.FindAllString(body, -1), func(m string, _ int) string {
		return html.UnescapeString(m)
	})
	return lo.Uniq(found)
}
