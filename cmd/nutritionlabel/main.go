package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jask/nutritionlabel/internal/catalog"
	"github.com/jask/nutritionlabel/internal/config"
	"github.com/jask/nutritionlabel/internal/database"
	"github.com/jask/nutritionlabel/internal/database/repository"
	"github.com/jask/nutritionlabel/internal/display"
	"github.com/jask/nutritionlabel/internal/logging"
	"github.com/jask/nutritionlabel/internal/tui"
)

const appName = "nutritionlabel"

type options struct {
	configPath string
	print      bool
	feature    string
	width      int
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Browse iOS accessibility nutrition labels in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.print {
				return printPage(out, opts)
			}
			return runTUI(cmd.Context(), opts)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", os.Getenv(config.EnvConfig), "config file")
	f.BoolVarP(&opts.print, "print", "p", false, "print a page to stdout and exit")
	f.StringVarP(&opts.feature, "feature", "f", "", "feature id to print (default: the catalog page)")
	f.IntVarP(&opts.width, "width", "w", 80, "print width in cells")
	return cmd
}

func loadCatalog(cfg config.Config) (*catalog.Catalog, error) {
	if cfg.Catalog.Path != "" {
		return catalog.Load(cfg.Catalog.Path)
	}
	return catalog.Default()
}

// printPage renders one page without a terminal, database or log file.
func printPage(out io.Writer, opts options) error {
	cfg, err := config.LoadFile(opts.configPath)
	if err != nil {
		return err
	}
	logger, err := logging.Console(appName, cfg.Log.Level)
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	ctx, err := cfg.DisplayContext()
	if err != nil {
		return err
	}
	s := &tui.Session{
		Display:        ctx,
		Catalog:        cat,
		Log:            logger,
		BadgeSpacing:   cfg.Layout.BadgeSpacing,
		HistoryLimit:   cfg.History.Limit,
		SampleVideoURL: cfg.Media.SampleVideoURL,
	}
	page, err := tui.Render(s, catalog.FeatureID(opts.feature), opts.width)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, page)
	return err
}

func runTUI(ctx context.Context, opts options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.LoadFile(opts.configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	logger, closer, err := logging.Init(appName, cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("log: %w", err)
	}
	defer closer.Close()

	cat, err := loadCatalog(cfg)
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	disp, err := cfg.DisplayContext()
	if err != nil {
		logger.Warn().Err(err).Msg("invalid display settings, using defaults")
		disp = display.Default()
	}

	db, err := openStore(ctx, cfg, cat, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	savePath := opts.configPath
	if savePath == "" {
		savePath = config.Path()
	}
	base := cfg
	s := &tui.Session{
		Context:        ctx,
		Display:        disp,
		Catalog:        cat,
		Store:          tui.NewSQLStore(db),
		Log:            logger,
		BadgeSpacing:   cfg.Layout.BadgeSpacing,
		HistoryLimit:   cfg.History.Limit,
		SampleVideoURL: cfg.Media.SampleVideoURL,
		SaveDisplay: func(c display.Context) error {
			return config.SaveFile(savePath, base.WithDisplay(c))
		},
	}

	logger.Info().Int("features", cat.Len()).Str("db", cfg.Database.Path).Msg("starting")
	p := tea.NewProgram(tui.NewModel(s), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	logger.Info().Msg("exit")
	return nil
}

// openStore opens and migrates the history database, mirrors the catalog
// into it and prunes expired visits.
func openStore(ctx context.Context, cfg config.Config, cat *catalog.Catalog, logger zerolog.Logger) (*sql.DB, error) {
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	if err := database.SeedFeatures(ctx, db, cat); err != nil {
		db.Close()
		return nil, fmt.Errorf("seed features: %w", err)
	}
	if cfg.History.Retention > 0 {
		cutoff := database.Now().Add(-cfg.History.Retention)
		n, err := repository.NewVisitRepo(db).Prune(ctx, cutoff)
		if err != nil {
			logger.Warn().Err(err).Msg("prune visits")
		} else if n > 0 {
			logger.Info().Int64("removed", n).Time("before", cutoff.Truncate(time.Second)).Msg("pruned visits")
		}
	}
	return db, nil
}
