package query

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
)

// Fetcher obtains the raw report text from some source.
//
// Design decision: We use an interface rather than a concrete type because:
//  1. The subprocess call is an external collaborator the core must not
//     depend on directly
//  2. Allows for easy mocking in tests
//  3. The report command can swap in a file source with --input
type Fetcher interface {
	// Fetch returns the raw report text.
	// The context should be used for cancellation; a hang in the license
	// query utility is an external fault, and cancelling the context is
	// the only recovery the caller has.
	Fetch(ctx context.Context) (string, error)
}

// CommandFetcher runs the license query utility as a subprocess and captures
// its standard output.
type CommandFetcher struct {
	utilPath string
	host     string
	port     string
	logger   *slog.Logger
}

// CommandFetcherOption configures a CommandFetcher.
type CommandFetcherOption func(*CommandFetcher)

// WithLogger sets a custom logger. If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) CommandFetcherOption {
	return func(f *CommandFetcher) {
		f.logger = logger
	}
}

// NewCommandFetcher creates a fetcher that queries the license server at
// host:port via the utility at utilPath.
func NewCommandFetcher(utilPath, host, port string, opts ...CommandFetcherOption) *CommandFetcher {
	f := &CommandFetcher{
		utilPath: utilPath,
		host:     host,
		port:     port,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.logger == nil {
		f.logger = slog.Default()
	}
	return f
}

// Fetch runs the query utility and returns its standard output.
// The argument set matches the vendor utility's network status query:
//
//	lmxendutil -licstat -host <host> -port <port> -network
func (f *CommandFetcher) Fetch(ctx context.Context) (string, error) {
	args := []string{"-licstat", "-host", f.host, "-port", f.port, "-network"}

	f.logger.Debug("querying license server",
		"utility", f.utilPath,
		"host", f.host,
		"port", f.port,
	)

	cmd := exec.CommandContext(ctx, f.utilPath, args...) //nolint:gosec // utility path comes from user configuration
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("license query %s failed: %w", f.utilPath, err)
	}
	return string(out), nil
}

// FileFetcher reads a previously captured raw report from a file.
type FileFetcher struct {
	path string
}

// NewFileFetcher creates a fetcher that reads the report from path.
func NewFileFetcher(path string) *FileFetcher {
	return &FileFetcher{path: path}
}

// Fetch reads the whole file.
func (f *FileFetcher) Fetch(_ context.Context) (string, error) {
	data, err := os.ReadFile(f.path) //nolint:gosec // user-provided input path is intentional
	if err != nil {
		return "", fmt.Errorf("failed to read report file: %w", err)
	}
	return string(data), nil
}

// SaveRaw writes the raw report text to path with owner-only permissions.
// The dump contains usernames and client addresses, so it should not be
// world readable.
func SaveRaw(path, raw string) error {
	if err := os.WriteFile(path, []byte(raw), 0600); err != nil {
		return fmt.Errorf("failed to save raw report: %w", err)
	}
	return nil
}
