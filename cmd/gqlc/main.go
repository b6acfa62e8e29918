package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/hanpama/gqlclient/internal/client"
	"github.com/hanpama/gqlclient/internal/config"
	"github.com/hanpama/gqlclient/internal/eventbus"
	"github.com/hanpama/gqlclient/internal/otel"
)

const rootUsage = `gqlc: GraphQL client for single-field operations

USAGE:
  gqlc <command> [flags]

COMMANDS:
  build            Print the GraphQL document for an operation file
  exec             Execute an operation file and print the JSON result
  help             Show help for any command
`

const buildUsage = `build FLAGS:
  -op <file>               Operation file (YAML, required)
`

const execUsage = `exec FLAGS:
  -op <file>               Operation file (YAML, required)
  -config <file>           Client config file (YAML)
  -env <file>              Load environment variables from file (default: .env if present)
  -url <url>               GraphQL endpoint; overrides config
  -timeout <duration>      Request timeout, e.g. 10s; overrides config (default: 30s)
  -header <Name=Value>     Extra request header. Repeatable
  -check                   Parse the built document before sending
  -pretty                  Pretty-print the JSON result
  -v                       Log operations to stderr
  -otel.endpoint <addr>    OTLP collector endpoint; overrides config
  -otel.service <name>     OpenTelemetry service name (default: gqlc)
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("missing command")
	}
	cmd, cmdArgs := args[0], args[1:]
	switch cmd {
	case "build":
		return cmdBuild(cmdArgs, os.Stdout)
	case "exec":
		return cmdExec(cmdArgs, os.Stdout)
	case "help":
		return cmdHelp(cmdArgs)
	default:
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func cmdHelp(args []string) error {
	if len(args) == 0 {
		fmt.Print(rootUsage)
		return nil
	}
	switch args[0] {
	case "build":
		fmt.Print(buildUsage)
	case "exec":
		fmt.Print(execUsage)
	default:
		return fmt.Errorf("unknown help topic %q", args[0])
	}
	return nil
}

type headerFlag map[string]string

func (h headerFlag) String() string { return "" }

func (h headerFlag) Set(v string) error {
	name, value, ok := strings.Cut(v, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return fmt.Errorf("invalid header %q", v)
	}
	h[name] = strings.TrimSpace(value)
	return nil
}

func cmdBuild(args []string, out io.Writer) error {
	opPath := ""
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	fs.StringVar(&opPath, "op", opPath, "Operation file")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, buildUsage)
		return err
	}
	if opPath == "" {
		fmt.Fprint(os.Stderr, buildUsage)
		return fmt.Errorf("-op is required")
	}
	op, _, err := loadOperation(opPath)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, op.Document())
	return err
}

func cmdExec(args []string, out io.Writer) error {
	opPath := ""
	configPath := ""
	envPath := ""
	endpoint := ""
	var timeout time.Duration
	check := false
	pretty := false
	verbose := false
	otelEndpoint := ""
	otelService := ""
	headers := headerFlag{}

	fs := flag.NewFlagSet("exec", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	fs.StringVar(&opPath, "op", opPath, "Operation file")
	fs.StringVar(&configPath, "config", configPath, "Client config file")
	fs.StringVar(&envPath, "env", envPath, "Environment file")
	fs.StringVar(&endpoint, "url", endpoint, "GraphQL endpoint")
	fs.DurationVar(&timeout, "timeout", timeout, "Request timeout")
	fs.Var(headers, "header", "Extra request header")
	fs.BoolVar(&check, "check", check, "Parse the built document before sending")
	fs.BoolVar(&pretty, "pretty", pretty, "Pretty-print the JSON result")
	fs.BoolVar(&verbose, "v", verbose, "Log operations to stderr")
	fs.StringVar(&otelEndpoint, "otel.endpoint", otelEndpoint, "OTLP collector endpoint")
	fs.StringVar(&otelService, "otel.service", otelService, "OpenTelemetry service name")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, execUsage)
		return err
	}
	if opPath == "" {
		fmt.Fprint(os.Stderr, execUsage)
		return fmt.Errorf("-op is required")
	}

	var envFiles []string
	if envPath != "" {
		envFiles = append(envFiles, envPath)
	}
	if err := config.LoadDotEnv(envFiles...); err != nil {
		return err
	}

	override := func(c *config.Config) {
		if endpoint != "" {
			c.Endpoint = endpoint
		}
		if timeout > 0 {
			c.Timeout = timeout
		}
		if check {
			c.CheckDocument = true
		}
		if otelEndpoint != "" {
			c.OTel.Endpoint = otelEndpoint
		}
		if otelService != "" {
			c.OTel.Service = otelService
		}
		if len(headers) > 0 && c.Headers == nil {
			c.Headers = map[string]string{}
		}
		for k, v := range headers {
			c.Headers[k] = v
		}
	}
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.Load(configPath, override)
	} else {
		cfg, err = config.Parse(nil, override)
	}
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	op, payload, err := loadOperation(opPath)
	if err != nil {
		return err
	}

	eventbus.Use(eventbus.New())
	shutdown, err := otel.Setup(cfg.OTel.Endpoint, cfg.OTel.Service)
	if err != nil {
		return fmt.Errorf("otel setup: %w", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	opts := cfg.ClientOptions()
	if verbose {
		opts = append(opts, client.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	}
	c := client.New(cfg.Endpoint, opts...)

	res, err := c.Execute(context.Background(), op, payload)
	if err != nil {
		return fmt.Errorf("execute %s: %w", op.Name, err)
	}

	enc := json.NewEncoder(out)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(res)
}
