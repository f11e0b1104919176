// Package gitrepo implements the repository-information lookup on top of
// go-git. The core supplies a path and consumes the result; no protocol work
// happens here.
package gitrepo

import (
	"fmt"

	git "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"

	"scriptherder.io/cli/internal/core/ports"
)

// DefaultRemote is the conventional remote consulted for the URL.
const DefaultRemote = "origin"

// Inspector opens a working copy and reads its remote and identity config.
type Inspector struct {
	Remote string
}

func NewInspector() *Inspector {
	return &Inspector{Remote: DefaultRemote}
}

// Inspect implements ports.RepoInspector.
func (i *Inspector) Inspect(path string) (ports.RepoInfo, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return ports.RepoInfo{}, fmt.Errorf("gitrepo: open %s: %w", path, err)
	}

	remote, err := repo.Remote(i.Remote)
	if err != nil {
		return ports.RepoInfo{}, fmt.Errorf("gitrepo: remote %s: %w", i.Remote, err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return ports.RepoInfo{}, fmt.Errorf("gitrepo: remote %s has no URL", i.Remote)
	}

	cfg, err := repo.ConfigScoped(gitconfig.SystemScope)
	if err != nil {
		return ports.RepoInfo{}, fmt.Errorf("gitrepo: read config: %w", err)
	}
	if cfg.User.Name == "" || cfg.User.Email == "" {
		return ports.RepoInfo{}, fmt.Errorf("gitrepo: user identity not configured")
	}

	return ports.RepoInfo{
		Path:      path,
		Remote:    i.Remote,
		RemoteURL: urls[0],
		User:      cfg.User.Name,
		Email:     cfg.User.Email,
	}, nil
}

var _ ports.RepoInspector = (*Inspector)(nil)
