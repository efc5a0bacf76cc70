package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-webpack-config/internal/logger"
	"github.com/MKhiriev/go-webpack-config/models"
	"github.com/MKhiriev/go-webpack-config/pkg/builder"
)

// Global is the state handed to every subcommand.
type Global struct {
	Log     *logger.Logger
	Environ builder.Environment
	Stdout  io.Writer
}

// CLI definition & global flags.
type CLI struct {
	LogLevel string           `name:"log-level" help:"Log level written to stderr" enum:"trace,debug,info,warn,error,disabled" default:"warn"`
	Version  kong.VersionFlag `name:"version" help:"Show version and exit"`

	Client ClientCmd `cmd:"" help:"Print the browser bundle configuration"`
	Server ServerCmd `cmd:"" help:"Print the node bundle configuration"`
}

// BuildFlags are shared by the client and server commands.
type BuildFlags struct {
	Root          string            `help:"Project root directory" default:"." type:"path"`
	Entry         []string          `help:"Entry module, relative to the root (repeatable)" required:""`
	Alias         map[string]string `help:"Import alias as name=path (repeatable)"`
	LegacyAliases bool              `name:"legacy-aliases" help:"Install the @ and ~ aliases"`
	Target        string            `help:"Bundler target (defaults to web or node)"`
	NoHMR         bool              `name:"no-hmr" help:"Disable hot module replacement in development"`
	Format        string            `help:"Output format" enum:"json,yaml" default:"json"`
}

func (f *BuildFlags) options(g *Global) []builder.Option {
	opts := []builder.Option{
		builder.WithEnvironment(g.Environ),
		builder.WithLogger(g.Log.Logger),
	}
	if f.LegacyAliases {
		opts = append(opts, builder.WithLegacyAliases())
	}
	return opts
}

// ClientCmd implements the 'client' command.
type ClientCmd struct {
	BuildFlags `embed:""`
}

func (c *ClientCmd) Run(g *Global) error {
	b, err := builder.NewClient(c.Root, builder.Paths(c.Entry...), c.options(g)...)
	if err != nil {
		return fmt.Errorf("error creating client builder: %w", err)
	}

	for name, target := range c.Alias {
		b.SetAlias(name, target)
	}
	if c.Target != "" {
		b.SetTarget(c.Target)
	}
	b.SetDevHMREnabled(!c.NoHMR)

	return emit(g.Stdout, c.Format, b)
}

// ServerCmd implements the 'server' command.
type ServerCmd struct {
	BuildFlags `embed:""`

	NoRunScript bool     `name:"no-run-script" help:"Do not run the bundle after development builds"`
	RunArg      []string `name:"run-arg" help:"Argument passed to the running bundle (repeatable)" sep:"none"`
}

func (s *ServerCmd) Run(g *Global) error {
	b, err := builder.NewServer(s.Root, builder.Paths(s.Entry...), s.options(g)...)
	if err != nil {
		return fmt.Errorf("error creating server builder: %w", err)
	}

	for name, target := range s.Alias {
		b.SetAlias(name, target)
	}
	if s.Target != "" {
		b.SetTarget(s.Target)
	}
	b.SetDevHMREnabled(!s.NoHMR).
		SetDevRunScript(!s.NoRunScript).
		SetRunScriptArgs(s.RunArg)

	return emit(g.Stdout, s.Format, b)
}

type configBuilder interface {
	ToConfig() (*models.Configuration, error)
}

func emit(w io.Writer, format string, b configBuilder) error {
	cfg, err := b.ToConfig()
	if err != nil {
		return err
	}

	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(cfg); err != nil {
			return fmt.Errorf("error encoding configuration: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err = enc.Encode(cfg); err != nil {
			return fmt.Errorf("error encoding configuration: %w", err)
		}
		return nil
	}
}

// run parses args, executes the selected command and logs a failure to
// stderr.
func run(args []string, stdout, stderr io.Writer, environ builder.Environment) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("webpack-config"),
		kong.Description("Print a webpack configuration for a client or server bundle."),
		kong.Vars{"version": buildInfo()},
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
	)
	if err != nil {
		return err
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return err
	}

	level, err := zerolog.ParseLevel(cli.LogLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}
	log := logger.NewLogger("webpack-config", stderr, level)

	if err = ctx.Run(&Global{Log: log, Environ: environ, Stdout: stdout}); err != nil {
		log.Error().Err(err).Str("command", ctx.Command()).Msg("error building configuration")
		return err
	}
	return nil
}
