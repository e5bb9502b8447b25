// Package inline runs the whole pipeline without interaction, for scripts.
package inline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mugiwara-cli/mugiwara/log"
	"github.com/mugiwara-cli/mugiwara/source"
	"github.com/samber/lo"
)

// Run searches, selects and resolves according to options, then writes the outcome.
func Run(ctx context.Context, options *Options) error {
	if options.Source == nil {
		return errors.New("no site to search")
	}
	if options.Out == nil {
		options.Out = os.Stdout
	}

	results := options.Source.Search(ctx, options.Query, options.Dub)

	selected := results
	if picker, ok := options.TitlePicker.Get(); ok {
		selected = lo.Compact([]*source.Result{picker(results)})
	}

	titles := make([]*Title, 0, len(selected))
	for _, result := range selected {
		title, err := prepareTitle(ctx, result, options)
		if err != nil {
			return err
		}
		titles = append(titles, title)
	}

	if options.Json {
		return writeJson(options.Out, titles, options)
	}
	return writePlain(options.Out, titles)
}

func prepareTitle(ctx context.Context, result *source.Result, options *Options) (*Title, error) {
	episodes := options.Source.Episodes(ctx, result.URL)

	if filter, ok := options.EpisodesFilter.Get(); ok {
		filtered, err := filter(episodes)
		if err != nil {
			return nil, err
		}
		episodes = filtered
	}

	title := &Title{
		Site:     options.Source.Name(),
		Title:    result,
		Episodes: make([]*Episode, len(episodes)),
		Settings: options.Source.Settings(),
	}

	for i, ep := range episodes {
		title.Episodes[i] = &Episode{Episode: ep}
		if len(options.Servers) == 0 {
			continue
		}

		title.Episodes[i].Servers = source.ResolveAll(ctx, options.Source, ep, options.Servers)
		log.Infof("resolved %s of %s on %d servers", ep.Name, result.Title, len(options.Servers))
	}

	return title, nil
}

// writePlain prints one URL per line: video URLs when servers were resolved, episode URLs otherwise.
func writePlain(out io.Writer, titles []*Title) error {
	for _, title := range titles {
		for _, ep := range title.Episodes {
			if ep.Servers == nil {
				if _, err := fmt.Fprintln(out, ep.Episode.URL); err != nil {
					return err
				}
				continue
			}

			for _, server := range ep.Servers {
				for _, video := range server.Videos {
					if _, err := fmt.Fprintln(out, video.URL); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

func writeJson(out io.Writer, titles []*Title, options *Options) error {
	data, err := asJson(titles, options)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
