// Command hscrape is a small CLI around hpattern: compile a pattern from a
// file, fetch or read a document, and print the resulting
// bindings as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/peterbourgon/ff/v3/ffcli"
	"go.uber.org/zap"

	"github.com/monkescience/hpattern"
)

func main() {
	logger, err := newLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "hscrape: failed to build logger:", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck // best effort flush on exit.

	root := rootCmd(logger)
	if err := root.ParseAndRun(context.Background(), os.Args[1:]); err != nil {
		logger.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger() (*zap.Logger, error) {
	if os.Getenv("HSCRAPE_DEBUG") != "" {
		return zap.NewDevelopment()
	}

	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true

	return cfg.Build()
}

func rootCmd(logger *zap.Logger) *ffcli.Command {
	fs := flag.NewFlagSet("hscrape", flag.ExitOnError)

	return &ffcli.Command{
		Name:       "hscrape",
		ShortUsage: "hscrape <subcommand> [flags]",
		ShortHelp:  "compile an hpattern and match it against fetched or local HTML",
		FlagSet:    fs,
		Subcommands: []*ffcli.Command{
			matchCmd(logger),
		},
		Exec: func(context.Context, []string) error {
			return flag.ErrHelp
		},
	}
}

func matchCmd(logger *zap.Logger) *ffcli.Command {
	fs := flag.NewFlagSet("hscrape match", flag.ExitOnError)

	patternFile := fs.String("pattern", "", "path to a file containing the hpattern pattern")
	url := fs.String("url", "", "URL to fetch the document from")
	docFile := fs.String("doc", "", "path to a local file containing the document (alternative to -url)")
	timeout := fs.Duration("timeout", 30*time.Second, "HTTP fetch timeout")
	maxBindings := fs.Int("max-bindings", 0, "cap the number of bindings enumerated (0 = unlimited)")

	return &ffcli.Command{
		Name:       "match",
		ShortUsage: "hscrape match -pattern <file> (-url <url> | -doc <file>)",
		ShortHelp:  "match a pattern against a document and print bindings as JSON",
		FlagSet:    fs,
		Exec: func(ctx context.Context, _ []string) error {
			return runMatch(ctx, logger, *patternFile, *url, *docFile, *timeout, *maxBindings)
		},
	}
}

func runMatch(ctx context.Context, logger *zap.Logger, patternFile, url, docFile string, timeout time.Duration, maxBindings int) error {
	if patternFile == "" {
		return fmt.Errorf("hscrape: -pattern is required")
	}

	if (url == "") == (docFile == "") {
		return fmt.Errorf("hscrape: exactly one of -url or -doc must be set")
	}

	patternSrc, err := os.ReadFile(patternFile) //nolint:gosec // path is operator-supplied CLI input.
	if err != nil {
		return fmt.Errorf("hscrape: reading pattern file: %w", err)
	}

	var opts []hpattern.Option
	if maxBindings > 0 {
		opts = append(opts, hpattern.WithMaxBindings(maxBindings))
	}

	pat, err := hpattern.New(string(patternSrc), opts...)
	if err != nil {
		return fmt.Errorf("hscrape: compiling pattern: %w", err)
	}

	doc, err := fetchDocument(ctx, logger, url, docFile, timeout)
	if err != nil {
		return err
	}

	bindings := pat.Match(doc)
	logger.Info("matched pattern", zap.Int("bindings", len(bindings)))

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	if err := enc.Encode(bindings); err != nil {
		return fmt.Errorf("hscrape: encoding bindings: %w", err)
	}

	return nil
}

func fetchDocument(ctx context.Context, logger *zap.Logger, url, docFile string, timeout time.Duration) (string, error) {
	if docFile != "" {
		data, err := os.ReadFile(docFile) //nolint:gosec // path is operator-supplied CLI input.
		if err != nil {
			return "", fmt.Errorf("hscrape: reading document file: %w", err)
		}

		return string(data), nil
	}

	client := retryablehttp.NewClient()
	client.Logger = zapRetryableLogger{logger}
	client.HTTPClient.Timeout = timeout

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("hscrape: building request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("hscrape: fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("hscrape: reading response body: %w", err)
	}

	return string(body), nil
}

// zapRetryableLogger adapts a *zap.Logger to retryablehttp's minimal
// leveled-logger interface.
type zapRetryableLogger struct {
	log *zap.Logger
}

func (l zapRetryableLogger) Error(msg string, keysAndValues ...any) {
	l.log.Sugar().Errorw(msg, keysAndValues...)
}

func (l zapRetryableLogger) Info(msg string, keysAndValues ...any) {
	l.log.Sugar().Infow(msg, keysAndValues...)
}

func (l zapRetryableLogger) Debug(msg string, keysAndValues ...any) {
	l.log.Sugar().Debugw(msg, keysAndValues...)
}

func (l zapRetryableLogger) Warn(msg string, keysAndValues ...any) {
	l.log.Sugar().Warnw(msg, keysAndValues...)
}
