package fetch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"github.com/exitflynn/changedfiles/internal/config"
	"github.com/exitflynn/changedfiles/internal/github"
)

// ErrSkipped is returned when no credentials were supplied. It is not a failure.
var ErrSkipped = errors.New("credentials not provided, skipping changed files retrieval")

// Result describes a completed run
type Result struct {
	Output string
	Files  []string
}

type Fetcher struct {
	config *config.Config
	lister github.FilesLister
	logger *zap.Logger
}

func NewFetcher(cfg *config.Config, lister github.FilesLister, logger *zap.Logger) *Fetcher {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Fetcher{
		config: cfg,
		lister: lister,
		logger: logger,
	}
}

// FetchChangedFiles writes the paths changed by a pull request to p.Output,
// one per line in API order. Without both credentials it returns ErrSkipped
// and leaves the output path alone.
func (f *Fetcher) FetchChangedFiles(ctx context.Context, p config.Params) (*Result, error) {
	if !p.HasCredentials() {
		f.logger.Info("username or token not provided, skipping changed files retrieval")
		return nil, ErrSkipped
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}
	number, err := p.PullRequestNumber()
	if err != nil {
		return nil, err
	}

	if err := resetOutput(p.Output); err != nil {
		return nil, err
	}

	owner, repo := f.config.Repository.Owner, f.config.Repository.Name
	log := f.logger.With(
		zap.String("repository", owner+"/"+repo),
		zap.Int("pull_request", number),
	)
	log.Debug("listing pull request files")

	files, err := f.lister.ListChangedFiles(ctx, owner, repo, number)
	if err != nil {
		return nil, fmt.Errorf("failed to get changed files: %w", err)
	}

	paths := make([]string, 0, len(files))
	for _, file := range files {
		log.Debug("changed file",
			zap.String("filename", file.Filename),
			zap.String("status", file.Status),
		)
		paths = append(paths, file.Filename)
	}

	if err := writeLines(p.Output, paths); err != nil {
		return nil, err
	}

	log.Info("wrote changed files",
		zap.String("output", p.Output),
		zap.Int("count", len(paths)),
	)

	return &Result{Output: p.Output, Files: paths}, nil
}

// resetOutput removes a file left by a previous run
func resetOutput(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove existing output file: %w", err)
	}
	return nil
}
