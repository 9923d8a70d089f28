package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/five82/talentdesk/internal/config"
	"github.com/five82/talentdesk/internal/export"
	"github.com/five82/talentdesk/internal/logger"
	"github.com/five82/talentdesk/internal/logtail"
	"github.com/five82/talentdesk/internal/prefs"
	"github.com/five82/talentdesk/internal/recruit"
	"github.com/five82/talentdesk/internal/state"
	"github.com/five82/talentdesk/internal/table"
	"github.com/five82/talentdesk/internal/toolbar"
	"github.com/five82/talentdesk/internal/ui"
	"github.com/five82/talentdesk/internal/views"
)

// Options configure the talentdesk application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/talentdesk/prefs.toml
	ExportDir  string // directory for console exports; empty is the working directory
	// Overrides are applied over the config file; empty fields are ignored.
	Overrides config.Config
	JSONLog   bool
	Debug     bool
}

// ExportOptions select what the headless export writes.
type ExportOptions struct {
	Resource recruit.Resource
	Search   string
	// Preset names the search columns; empty uses the view's first preset.
	Preset string
	Sort   string
	// Where adds fixed column filters, also sent as query parameters.
	Where []table.ColumnFilter
	// Out is the file to write; empty derives a name from the resource.
	Out string
}

type runtime struct {
	cfg    config.Config
	log    *zap.Logger
	client *recruit.Client
}

func setup(opts Options) (runtime, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return runtime{}, fmt.Errorf("load config: %w", err)
	}
	cfg.Merge(opts.Overrides)

	log, err := logger.New(cfg.LogPath, opts.JSONLog, opts.Debug)
	if err != nil {
		return runtime{}, fmt.Errorf("init logger: %w", err)
	}

	client, err := recruit.NewClient(cfg.APIURL, cfg.APIToken)
	if err != nil {
		_ = log.Sync()
		return runtime{}, fmt.Errorf("init api client: %w", err)
	}
	return runtime{cfg: cfg, log: log, client: client}, nil
}

// Run boots the console until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	rt, err := setup(opts)
	if err != nil {
		return err
	}
	defer func() { _ = rt.log.Sync() }()

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs, err := prefs.Load(prefsPath)
	if err != nil {
		rt.log.Warn("load preferences failed", zap.String("path", prefsPath), zap.Error(err))
	}

	defs := views.All()
	if err := views.Validate(defs); err != nil {
		return err
	}

	interval := defaultPollInterval
	if rt.cfg.PollSeconds > 0 {
		interval = time.Duration(rt.cfg.PollSeconds) * time.Second
	}

	rt.log.Info("starting console",
		zap.String("api", rt.cfg.APIURL),
		zap.Duration("poll", interval),
		zap.Int("views", len(defs)),
	)

	store := &state.Store{}
	// The first poll runs while the UI draws its loading state.
	StartPoller(ctx, store, rt.client, interval, views.Queries(defs), rt.log)

	return ui.Run(ui.Options{
		Context:   ctx,
		Fetcher:   rt.client,
		Store:     store,
		Views:     defs,
		Prefs:     userPrefs,
		PrefsPath: prefsPath,
		ExportDir: opts.ExportDir,
		PollTick:  time.Second,
		Logger:    rt.log,
	})
}

// Export fetches one resource, applies the search, preset and sort the way
// the console would, and writes the visible rows to an xlsx file. It
// returns the written path and row count.
func Export(ctx context.Context, opts Options, eo ExportOptions) (string, int, error) {
	rt, err := setup(opts)
	if err != nil {
		return "", 0, err
	}
	defer func() { _ = rt.log.Sync() }()

	def, bar, err := exportView(eo)
	if err != nil {
		return "", 0, err
	}

	var store state.Store
	store.MarkFetching(def.Resource())
	data, err := recruit.Fetch(ctx, rt.client, def.Resource(), views.Query(def))
	store.Update(def.Resource(), data, err)
	if err != nil {
		return "", 0, fmt.Errorf("fetch %s: %w", def.Resource(), err)
	}

	proj := def.Project(store.Snapshot(), bar.State())
	out := eo.Out
	if out == "" {
		out = export.FileName(string(def.Resource()), time.Now())
	}
	if err := export.SaveFile(out, export.FromProjection(def.Title(), proj)); err != nil {
		return "", 0, err
	}
	rt.log.Info("exported view",
		zap.String("resource", string(def.Resource())),
		zap.String("path", out),
		zap.Int("rows", len(proj.Rows)),
		zap.Int("total", proj.Total),
	)
	return out, len(proj.Rows), nil
}

// exportView builds the view and a settled toolbar for eo.
func exportView(eo ExportOptions) (views.Definition, toolbar.Toolbar, error) {
	def, ok := views.Find(views.All(), eo.Resource)
	if !ok {
		return nil, toolbar.Toolbar{}, fmt.Errorf("unknown resource %q", eo.Resource)
	}
	if len(eo.Where) > 0 {
		def = def.WithExtraQuery(eo.Where)
	}
	if err := def.Config().Validate(); err != nil {
		return nil, toolbar.Toolbar{}, fmt.Errorf("view %s: %w", eo.Resource, err)
	}

	bar := toolbar.New(def.Config())
	if eo.Preset != "" {
		preset, ok := findPreset(def, eo.Preset)
		if !ok {
			return nil, toolbar.Toolbar{}, fmt.Errorf("unknown preset %q for %s", eo.Preset, eo.Resource)
		}
		bar.SetFilterColumns(preset.Columns)
	}
	if eo.Sort != "" && eo.Sort != bar.SortOption() && !bar.SelectSort(eo.Sort) {
		return nil, toolbar.Toolbar{}, fmt.Errorf("unknown sort %q (want one of %s)",
			eo.Sort, strings.Join(def.Config().SortOptions(), ", "))
	}
	if eo.Search != "" {
		if !def.Config().Search {
			return nil, toolbar.Toolbar{}, fmt.Errorf("%s does not support search", eo.Resource)
		}
		bar.SetSearch(eo.Search)
		bar.Flush()
	}
	return def, bar, nil
}

func findPreset(def views.Definition, name string) (views.Preset, bool) {
	for _, p := range def.Presets() {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return views.Preset{}, false
}

// Logs returns the newest records of the configured log file at or above
// level. It reads the config but does not open the logger, so it never
// writes to the file it reads.
func Logs(opts Options, lines int, level string) ([]string, string, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, "", fmt.Errorf("load config: %w", err)
	}
	cfg.Merge(opts.Overrides)

	minLevel := zapcore.InfoLevel
	if level != "" {
		if minLevel, err = zapcore.ParseLevel(level); err != nil {
			return nil, "", fmt.Errorf("invalid log level %q: %w", level, err)
		}
	}
	out, err := logtail.Read(cfg.LogPath, lines, minLevel)
	return out, cfg.LogPath, err
}
