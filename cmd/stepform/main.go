package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-stepform/internal/config"
	"github.com/goliatone/go-stepform/pkg/renderers/html"
	"github.com/goliatone/go-stepform/pkg/renderers/tui"
	"github.com/goliatone/go-stepform/pkg/stepform"
	"github.com/goliatone/go-stepform/pkg/storage"
)

const usage = `usage: stepform <command> [flags]

commands:
  run      fill in the form interactively
  render   print the HTML for the saved form
  schema   print the OpenAPI schema of a completed form
  reset    discard the saved form
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "run":
		err = runCommand(ctx, args)
	case "render":
		err = renderCommand(ctx, args)
	case "schema":
		err = schemaCommand(args, os.Stdout)
	case "reset":
		err = resetCommand(ctx, args)
	case "-h", "--help", "help":
		fmt.Fprint(os.Stdout, usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", cmd, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("stepform %s: %v", os.Args[1], err)
	}
}

type common struct {
	configPath *string
	envFile    *string
}

func commonFlags(fs *flag.FlagSet) common {
	return common{
		configPath: fs.String("config", "", "YAML configuration file"),
		envFile:    fs.String("env-file", ".env", "dotenv file loaded when present"),
	}
}

// app holds what every command needs once configuration is resolved.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	store  stepform.Store
	close  func() error
}

func (c common) open(ctx context.Context) (*app, error) {
	cfg, err := config.Load(*c.configPath, *c.envFile)
	if err != nil {
		return nil, err
	}
	logger, err := cfg.Log.Logger(os.Stderr)
	if err != nil {
		return nil, err
	}
	backend, closeFn, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		return nil, err
	}
	logger.Debug("storage opened", "driver", cfg.Storage.Driver, "key", cfg.Storage.Key)
	return &app{
		cfg:    cfg,
		logger: logger,
		store:  storage.Bind(backend, cfg.Storage.Key),
		close:  closeFn,
	}, nil
}

func (a *app) controller(ctx context.Context) *stepform.Controller {
	return stepform.New(ctx,
		stepform.WithStore(a.store),
		stepform.WithSubmitter(stepform.LogSubmitter{Logger: a.logger}),
		stepform.WithLogger(a.logger),
	)
}

func (a *app) shutdown() {
	if err := a.close(); err != nil {
		a.logger.Warn("close storage", "error", err)
	}
}

func runCommand(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	opts := commonFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := opts.open(ctx)
	if err != nil {
		return err
	}
	defer a.shutdown()

	session, err := tui.New(a.controller(ctx),
		tui.WithOutputFormat(tui.OutputFormat(strings.ToLower(a.cfg.UI.Output))),
		tui.WithOutput(os.Stdout),
		tui.WithLogger(a.logger),
	)
	if err != nil {
		return err
	}

	if _, err := session.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrAborted) {
			fmt.Fprintln(os.Stderr, "aborted; progress saved")
			return nil
		}
		return err
	}
	return nil
}

func renderCommand(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	opts := commonFlags(fs)
	stepNum := fs.Int("step", int(stepform.StepContact), "step to render (1-3)")
	validate := fs.Bool("validate", false, "include validation messages for the step")
	output := fs.String("output", "", "output file (stdout if empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	step := stepform.Step(*stepNum)
	if !step.Valid() {
		return fmt.Errorf("invalid step %d", *stepNum)
	}

	a, err := opts.open(ctx)
	if err != nil {
		return err
	}
	defer a.shutdown()

	ctrl := a.controller(ctx)
	var errs stepform.ErrorMap
	if *validate {
		errs = ctrl.ValidateStep(step)
	}

	renderer, err := html.New(rendererOptions(a)...)
	if err != nil {
		return err
	}
	out, err := renderer.RenderView(ctx, stepform.BuildView(step, ctrl.Data(), errs))
	if err != nil {
		return err
	}

	if *output != "" {
		if err := os.WriteFile(*output, out, 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		fmt.Printf("Form written to %s\n", *output)
		return nil
	}
	_, err = os.Stdout.Write(out)
	return err
}

func rendererOptions(a *app) []html.Option {
	options := []html.Option{html.WithLogger(a.logger)}
	if a.cfg.UI.Action != "" {
		options = append(options, html.WithAction(a.cfg.UI.Action))
	}
	if manifest := themeManifest(a.cfg.Theme); manifest != nil {
		options = append(options, html.WithThemeSelector(
			html.StaticSelector{Manifest: manifest},
			manifest.Name,
			a.cfg.Theme.Variant,
		))
	}
	return options
}

func themeManifest(cfg config.ThemeConfig) *theme.Manifest {
	if !cfg.Enabled() {
		return nil
	}
	manifest := &theme.Manifest{
		Name:   strings.TrimSpace(cfg.Name),
		Tokens: cfg.Tokens,
		Assets: theme.Assets{Prefix: cfg.AssetsPath},
	}
	if cfg.Stylesheet != "" {
		manifest.Assets.Files = map[string]string{html.StylesheetAsset: cfg.Stylesheet}
	}
	return manifest
}

func schemaCommand(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("schema", flag.ExitOnError)
	snapshot := fs.Bool("snapshot", false, "print the saved-progress schema instead")
	if err := fs.Parse(args); err != nil {
		return err
	}

	schema := stepform.SubmissionSchema()
	if *snapshot {
		schema = stepform.SnapshotSchema()
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(schema)
}

func resetCommand(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reset", flag.ExitOnError)
	opts := commonFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := opts.open(ctx)
	if err != nil {
		return err
	}
	defer a.shutdown()

	if err := a.store.Clear(ctx); err != nil {
		return err
	}
	fmt.Println("Saved form cleared")
	return nil
}
