package app

import (
	"context"
	"fmt"
	"log"

	"github.com/five82/backyard/internal/cards"
	"github.com/five82/backyard/internal/clipboard"
	"github.com/five82/backyard/internal/config"
	"github.com/five82/backyard/internal/ebird"
	"github.com/five82/backyard/internal/emailrelay"
	"github.com/five82/backyard/internal/logging"
	"github.com/five82/backyard/internal/prefs"
	"github.com/five82/backyard/internal/ui"
)

// requestBurst lets startup fetches and a quick region search go out together.
const requestBurst = 3

// Options configure the backyard application.
type Options struct {
	ConfigPath string // empty uses ~/.config/backyard/config.toml
	PrefsPath  string // empty uses ~/.config/backyard/prefs.toml
	LogPath    string // overrides log_file from the config
	Version    string
}

// Run boots the backyard TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logPath := opts.LogPath
	if logPath == "" {
		logPath = cfg.LogFile
	}
	if logPath != "" {
		if logPath, err = config.ExpandPath(logPath); err != nil {
			return fmt.Errorf("log path: %w", err)
		}
	}
	cleanup, err := logging.Setup(logPath)
	if err != nil {
		return err
	}
	defer cleanup()

	uiOpts, err := buildUIOptions(ctx, cfg, opts, logPath)
	if err != nil {
		return err
	}
	return ui.Run(uiOpts)
}

// buildUIOptions wires the clients and preferences the UI depends on.
func buildUIOptions(ctx context.Context, cfg config.Config, opts Options, logPath string) (ui.Options, error) {
	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		return ui.Options{}, fmt.Errorf("load prefs: %w", err)
	}

	fetcher, err := ebird.NewClient(ebird.Options{
		BaseURL:       cfg.APIBase,
		Token:         cfg.APIToken,
		CountryPrefix: cfg.CountryPrefix,
		UserAgent:     userAgent(opts.Version),
		Timeout:       cfg.RequestTimeout,

		RequestsPerMinute: cfg.RequestsPerMinute,
		Burst:             requestBurst,
	})
	if err != nil {
		return ui.Options{}, fmt.Errorf("init observation client: %w", err)
	}

	if !cfg.Email.Configured() {
		log.Printf("contact: email relay not configured; set [email] service_id, template_id and public_key")
	}
	sender, err := emailrelay.NewClient(emailrelay.Options{
		BaseURL:    cfg.Email.RelayBase,
		ServiceID:  cfg.Email.ServiceID,
		TemplateID: cfg.Email.TemplateID,
		PublicKey:  cfg.Email.PublicKey,
		Recipient:  cfg.Email.Recipient,
	})
	if err != nil {
		return ui.Options{}, fmt.Errorf("init email relay: %w", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		return ui.Options{}, err
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	return ui.Options{
		Context:    ctx,
		Fetcher:    fetcher,
		Sender:     sender,
		Clipboard:  clipboard.NewSystem(),
		Formatter:  cards.NewDateFormatter(cfg.Display.Locale, loc),
		Lat:        cfg.Sightings.Lat,
		Lng:        cfg.Sightings.Lng,
		PlaceName:  cfg.Sightings.PlaceName,
		LastRegion: userPrefs.LastRegion,
		ThemeName:  userPrefs.Theme,
		PrefsPath:  prefsPath,
		LogPath:    logPath,
	}, nil
}

func userAgent(version string) string {
	if version == "" {
		version = "dev"
	}
	return "backyard/" + version
}
