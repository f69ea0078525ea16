package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	mform "github.com/goliatone/go-mform"
	"github.com/goliatone/go-mform/internal/config"
	"github.com/goliatone/go-mform/internal/logging"
	"github.com/goliatone/go-mform/internal/prompt"
	"github.com/goliatone/go-mform/pkg/builder"
	"github.com/goliatone/go-mform/pkg/formfile"
	"github.com/goliatone/go-mform/pkg/model"
	"github.com/goliatone/go-mform/pkg/render"
	"github.com/goliatone/go-mform/pkg/sqloptions"
	"github.com/goliatone/go-mform/pkg/themes"
)

type promptDriverFunc func(cmd *cobra.Command) prompt.Driver

func defaultPromptDriver(*cobra.Command) prompt.Driver {
	return prompt.NewSurveyDriver()
}

type renderFlags struct {
	values string
	prompt bool
	debug  bool
}

func newRenderCommand(newDriver promptDriverFunc) *cobra.Command {
	var flags renderFlags
	cmd := &cobra.Command{
		Use:   "render <form.yaml>",
		Short: "Render a form file to HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], flags, newDriver)
		},
	}
	cmd.Flags().String("theme", "", "theme to render with")
	cmd.Flags().String("mode", "", "add or edit (overrides the form file)")
	cmd.Flags().StringVar(&flags.values, "values", "", "YAML file of loaded record values")
	cmd.Flags().BoolVar(&flags.prompt, "prompt", false, "collect record values interactively and render in edit mode")
	cmd.Flags().StringP("output", "o", "", "write markup to file instead of stdout")
	cmd.Flags().Bool("with-assets", false, "prepend theme stylesheet links")
	cmd.Flags().BoolVar(&flags.debug, "debug", false, "dump field descriptors to stderr")
	cmd.Flags().String("db-driver", "", "database driver for sql options (sqlite3)")
	cmd.Flags().String("db-dsn", "", "database data source name")
	cmd.Flags().StringSlice("theme-manifest", nil, "go-theme manifest file to register (repeatable)")
	return cmd
}

func runRender(cmd *cobra.Command, path string, flags renderFlags, newDriver promptDriverFunc) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log.Level)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	doc, err := formfile.Load(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if err != nil {
		return err
	}

	mode := cfg.FormMode()
	if doc.Mode != "" && !cmd.Flags().Changed("mode") {
		mode = doc.FormMode()
	}
	themeName := cfg.Theme
	if doc.Theme != "" && !cmd.Flags().Changed("theme") {
		themeName = doc.Theme
	}

	values := map[string]string{}
	for k, v := range doc.Values {
		values[k] = v
	}
	if flags.values != "" {
		data, err := os.ReadFile(flags.values)
		if err != nil {
			return fmt.Errorf("mform: read values: %w", err)
		}
		loaded, err := formfile.ParseValues(data, flags.values)
		if err != nil {
			return err
		}
		for k, v := range loaded {
			values[k] = v
		}
	}

	var querier sqloptions.Querier
	if cfg.Database.Driver != "" {
		db, err := sql.Open(cfg.Database.Driver, cfg.Database.DSN)
		if err != nil {
			return fmt.Errorf("mform: open database: %w", err)
		}
		defer db.Close()
		querier = db
	}
	apply := formfile.ApplyOptions{Querier: querier, Logger: logger}

	if flags.prompt {
		values, err = promptValues(ctx, newDriver(cmd), doc, apply, values)
		if err != nil {
			return err
		}
		mode = model.ModeEdit
	}

	provider, err := themeProvider(cfg.Themes.Manifests)
	if err != nil {
		return err
	}

	// The parser stays on the bundled theme so any other theme is booted and
	// reports its stylesheets.
	form, err := mform.New(
		mform.WithMode(mode),
		mform.WithValues(builder.MapValues(values)),
		mform.WithTheme(themes.DefaultThemeName),
		mform.WithLogger(logger),
		mform.WithContext(ctx),
		mform.WithRenderOptions(render.WithThemeAssets(provider), render.WithResolver(provider)),
	)
	if err != nil {
		return err
	}
	if err := formfile.Apply(ctx, form.Builder, doc, apply); err != nil {
		return err
	}

	opts := mform.RenderOptions{Theme: themeName}
	if flags.debug {
		opts.Debug = cmd.ErrOrStderr()
	}
	result, err := form.Render(ctx, opts)
	if err != nil {
		return err
	}
	for _, skipped := range result.Skipped {
		logger.Debug("field skipped", zap.Error(skipped))
	}

	markup := result.HTML
	if cfg.Output.WithAssets {
		markup = result.WithAssets()
	}
	return writeMarkup(cmd, cfg.Output.Path, markup)
}

func themeProvider(manifests []string) (*themes.Provider, error) {
	selector := themes.NewSelector()
	for _, manifest := range manifests {
		if err := selector.Load(os.DirFS(filepath.Dir(manifest)), filepath.Base(manifest)); err != nil {
			return nil, err
		}
	}
	return themes.NewProvider(themes.WithSelector(selector)), nil
}

// promptValues builds the form once in add mode to learn its fields, then
// asks for a value per field.
func promptValues(ctx context.Context, driver prompt.Driver, doc formfile.Document, apply formfile.ApplyOptions, current map[string]string) (map[string]string, error) {
	scratch := builder.New(builder.WithMode(model.ModeAdd), builder.WithLogger(zap.NewNop()))
	apply.Logger = zap.NewNop()
	if err := formfile.Apply(ctx, scratch, doc, apply); err != nil {
		return nil, err
	}
	if err := driver.Info(ctx, fmt.Sprintf("Values for %s", doc.Source)); err != nil {
		return nil, err
	}
	return prompt.CollectValues(ctx, driver, scratch.Fields(), current)
}

func writeMarkup(cmd *cobra.Command, path, markup string) error {
	if path == "" {
		_, err := io.WriteString(cmd.OutOrStdout(), markup)
		return err
	}
	if err := os.WriteFile(path, []byte(markup), 0o644); err != nil {
		return fmt.Errorf("mform: write output: %w", err)
	}
	color.New(color.FgGreen).Fprintf(cmd.ErrOrStderr(), "Form written to %s\n", path)
	return nil
}
