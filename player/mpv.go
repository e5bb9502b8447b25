package player

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// MPV plays streams with the mpv binary.
type MPV struct {
	// Binary is the executable name or path, "mpv" when empty.
	Binary string
}

// NewMPV creates a player that runs binary.
func NewMPV(binary string) *MPV {
	return &MPV{Binary: binary}
}

// Play runs mpv in the foreground until it exits or ctx is cancelled.
func (m *MPV) Play(ctx context.Context, stream Stream) error {
	args, err := m.args(stream)
	if err != nil {
		return err
	}

	binary := lo.CoalesceOrEmpty(m.Binary, "mpv")
	path, err := exec.LookPath(binary)
	if err != nil {
		return fmt.Errorf("%s not found: %w", binary, err)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.SysProcAttr = sysProcAttr()
	cmd.Cancel = func() error {
		return killProcess(cmd)
	}

	if err := cmd.Run(); err != nil && !errors.Is(ctx.Err(), context.Canceled) {
		return fmt.Errorf("mpv: %w", err)
	}
	return nil
}

func (m *MPV) args(stream Stream) ([]string, error) {
	target, err := sanitizeMediaTarget(stream.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid media target: %w", err)
	}

	title := sanitizeTitle(stream.Title)
	args := []string{
		"--no-terminal",
		"--force-window=yes",
		fmt.Sprintf("--force-media-title=%s", title),
	}

	if referer, ok := stream.Headers["referer"]; ok {
		args = append(args, fmt.Sprintf("--referrer=%s", referer))
	}

	if fields := headerFields(stream.Headers); fields != "" {
		args = append(args, fmt.Sprintf("--http-header-fields=%s", fields))
	}

	return append(args, target), nil
}

// headerFields renders headers the way --http-header-fields expects them, in key order.
func headerFields(headers map[string]string) string {
	keys := lo.Keys(headers)
	slices.Sort(keys)

	fields := lo.Map(keys, func(k string, _ int) string {
		// mpv splits the list on commas
		return fmt.Sprintf("%s: %s", k, strings.ReplaceAll(headers[k], ",", "%2C"))
	})
	return strings.Join(fields, ",")
}

func sanitizeMediaTarget(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", errors.New("empty URL")
	}

	if strings.ContainsAny(l, "\x00\n\r") {
		return "", errors.New("invalid control characters in URL")
	}

	// would be parsed as a flag
	if strings.HasPrefix(l, "-") {
		return "", errors.New("url must not start with '-'")
	}

	if !strings.Contains(l, "://") {
		return filepath.Clean(l), nil
	}

	u, err := url.Parse(l)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return l, nil
	default:
		return "", fmt.Errorf("unsupported URL scheme: %s", u.Scheme)
	}
}

func sanitizeTitle(title string) string {
	t := strings.NewReplacer("\n", " ", "\r", " ", "\t", " ", "\x00", "").Replace(title)
	return strings.TrimSpace(t)
}
