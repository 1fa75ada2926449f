package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/baxromumarov/job-board/internal/board"
	"github.com/baxromumarov/job-board/internal/client"
)

type idList []uuid.UUID

func (l *idList) String() string {
	parts := make([]string, len(*l))
	for i, id := range *l {
		parts[i] = id.String()
	}
	return strings.Join(parts, ",")
}

func (l *idList) Set(v string) error {
	id, err := uuid.Parse(v)
	if err != nil {
		return fmt.Errorf("invalid offer id %q: %w", v, err)
	}
	*l = append(*l, id)
	return nil
}

// optionalID is an offer id flag that is unset until given.
type optionalID struct {
	id  uuid.UUID
	set bool
}

func (o *optionalID) String() string {
	if !o.set {
		return ""
	}
	return o.id.String()
}

func (o *optionalID) Set(v string) error {
	id, err := uuid.Parse(v)
	if err != nil {
		return fmt.Errorf("invalid offer id %q: %w", v, err)
	}
	o.id, o.set = id, true
	return nil
}

var errUsage = errors.New("usage")

type options struct {
	apiURL   string
	token    string
	search   string
	location string
	timeout  time.Duration
	likes    idList
	email    optionalID
	details  optionalID
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("board", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.apiURL, "api", envOr("BOARD_API_URL", "http://localhost:8080"), "Job board API base URL")
	fs.StringVar(&opts.token, "token", os.Getenv("BOARD_TOKEN"), "Bearer token")
	fs.StringVar(&opts.search, "search", "", "Search term (title, candidate, category, description)")
	fs.StringVar(&opts.location, "location", "", "Location filter")
	fs.DurationVar(&opts.timeout, "timeout", 15*time.Second, "Request timeout")
	fs.Var(&opts.likes, "like", "Offer id to mark as liked (repeatable)")
	fs.Var(&opts.email, "email", "Offer id whose contact email to show (exclusive with -details)")
	fs.Var(&opts.details, "details", "Offer id whose details to show (exclusive with -email)")

	if err := fs.Parse(args); err != nil {
		return options{}, errUsage
	}
	if opts.email.set && opts.details.set {
		fmt.Fprintln(stderr, "-email and -details cannot be combined: only one popup can be open")
		return options{}, errUsage
	}
	return opts, nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return 2
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	c, err := client.New(opts.apiURL, client.WithHTTPClient(&http.Client{Timeout: opts.timeout}))
	if err != nil {
		logger.Error("invalid api url", "error", err)
		return 2
	}

	b := board.New()
	syncer := board.NewSync(b, c, logger)
	defer syncer.Close()
	syncer.SetToken(opts.token)
	syncer.Wait()

	for _, id := range opts.likes {
		b.ToggleLike(id)
	}
	if opts.email.set {
		b.ToggleEmail(opts.email.id)
	}
	if opts.details.set {
		b.ToggleDetails(opts.details.id)
	}

	if err := board.Render(stdout, b, opts.search, opts.location); err != nil {
		logger.Error("render failed", "error", err)
		return 1
	}
	return 0
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
