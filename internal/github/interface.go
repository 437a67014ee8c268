package github

import "context"

//go:generate mockgen -destination=../../mocks/mock_files_lister.go -package=mocks github.com/exitflynn/changedfiles/internal/github FilesLister

// ChangedFile is one entry of a pull request's file listing
type ChangedFile struct {
	Filename  string
	Status    string
	Additions int
	Deletions int
}

type FilesLister interface {
	ListChangedFiles(ctx context.Context, owner, repo string, number int) ([]ChangedFile, error)
}
