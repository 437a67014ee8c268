// Package main writes the files changed by a pull request to a text file,
// one path per line, for a downstream validation step.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/exitflynn/changedfiles/internal/config"
	"github.com/exitflynn/changedfiles/internal/fetch"
	"github.com/exitflynn/changedfiles/internal/github"
	"github.com/exitflynn/changedfiles/internal/logging"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr))
}

type cliConfig struct {
	params     config.Params
	configPath string
	logLevel   string
}

func parseFlags(args []string, stderr io.Writer) (cliConfig, error) {
	var cfg cliConfig

	flags := pflag.NewFlagSet("changedfiles", pflag.ContinueOnError)
	flags.SetOutput(stderr)

	flags.StringVar(&cfg.params.Username, "username", "", "Account name for Basic authentication (or "+config.EnvUsername+")")
	flags.StringVar(&cfg.params.Token, "token", "", "Read-only token paired with username (or "+config.EnvToken+")")
	flags.StringVarP(&cfg.params.Output, "output", "o", "", "File to write the newline-delimited list of changed files to")
	flags.StringVarP(&cfg.params.PullRequestID, "pull-request-id", "p", "", "Pull request to query")
	flags.StringVarP(&cfg.configPath, "config", "c", "", "Optional YAML config file")
	flags.StringVar(&cfg.logLevel, "log-level", "", "Log level: debug, info, warn or error")

	flags.Usage = func() {
		fmt.Fprintln(stderr, "Usage: changedfiles --username USER --token TOKEN --output FILE --pull-request-id ID")
		fmt.Fprintln(stderr, "\nWrites the paths changed by a pull request to FILE, one per line.")
		fmt.Fprintln(stderr, "Without username and token nothing is fetched and the command succeeds.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return cfg, err
	}
	if flags.NArg() > 0 {
		flags.Usage()
		return cfg, fmt.Errorf("unexpected arguments: %v", flags.Args())
	}

	cfg.params.ApplyEnv()
	return cfg, nil
}

func run(ctx context.Context, args []string, stderr io.Writer) int {
	cli, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if err := execute(ctx, cli, stderr); err != nil {
		fmt.Fprintf(stderr, "error: %s\n", err)
		return exitError
	}
	return exitOK
}

func execute(ctx context.Context, cli cliConfig, stderr io.Writer) error {
	// Without credentials nothing below may fail the run, config included
	if !cli.params.HasCredentials() {
		return skip(ctx, cli.params, stderr)
	}

	cfg, err := config.LoadConfig(cli.configPath)
	if err != nil {
		return err
	}
	if cli.logLevel != "" {
		cfg.LogLevel = strings.ToLower(cli.logLevel)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, err := logging.NewLogger(cfg.LogLevel, stderr)
	if err != nil {
		return err
	}
	//nolint:errcheck // Sync on stderr is not actionable
	defer logger.Sync()

	client, err := github.NewClient(ctx, github.Options{
		BaseURL:    cfg.APIBaseURL,
		AuthScheme: cfg.AuthScheme,
		Username:   cli.params.Username,
		Token:      cli.params.Token,
	})
	if err != nil {
		return err
	}

	fetcher := fetch.NewFetcher(cfg, client, logger)
	if _, err := fetcher.FetchChangedFiles(ctx, cli.params); err != nil {
		return err
	}
	return nil
}

// skip emits the soft-skip message at info level regardless of the
// configured level and reports success.
func skip(ctx context.Context, params config.Params, stderr io.Writer) error {
	logger := logging.NewInfoLogger(stderr)
	//nolint:errcheck // Sync on stderr is not actionable
	defer logger.Sync()

	_, err := fetch.NewFetcher(config.Default(), nil, logger).FetchChangedFiles(ctx, params)
	if errors.Is(err, fetch.ErrSkipped) {
		return nil
	}
	return err
}
