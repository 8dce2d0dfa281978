// Package gitrepo resolves the GitHub owner/repo pair for the repository
// containing the working directory, by reading git metadata directly from
// the filesystem.
package gitrepo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

// Repo identifies one GitHub repository.
type Repo struct {
	Owner string
	Name  string
}

// String returns the owner/name form used in output.
func (r Repo) String() string {
	return r.Owner + "/" + r.Name
}

var (
	// ErrNotARepository means no .git metadata was found walking upward
	// from the starting directory.
	ErrNotARepository = errors.New("not a git repository. Run this command from within a git repository")

	// ErrNoOriginRemote means the repository has no remote with the
	// requested name.
	ErrNoOriginRemote = errors.New("could not find remote URL. Make sure your repository has an origin remote pointing to GitHub")
)

// Resolve walks upward from startDir to the repository root and extracts
// the owner/repo pair from the named remote's URL. Pure function of the
// filesystem: no caching, no subprocesses, no side effects.
func Resolve(startDir, remoteName string) (Repo, error) {
	if remoteName == "" {
		remoteName = "origin"
	}

	gitDir, err := findGitDir(startDir)
	if err != nil {
		return Repo{}, err
	}

	url, err := remoteURL(gitDir, remoteName)
	if err != nil {
		return Repo{}, err
	}

	return ParseRemoteURL(url)
}

// findGitDir locates the .git directory for the repository containing dir,
// following a .git gitfile pointer for worktrees and submodules.
func findGitDir(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		gitPath := filepath.Join(dir, ".git")
		info, err := os.Stat(gitPath)
		if err == nil {
			if info.IsDir() {
				return gitPath, nil
			}
			return resolveGitFile(dir, gitPath)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotARepository
		}
		dir = parent
	}
}

// resolveGitFile reads a "gitdir: <path>" pointer file.
func resolveGitFile(repoDir, gitFile string) (string, error) {
	data, err := os.ReadFile(gitFile)
	if err != nil {
		return "", ErrNotARepository
	}

	line := strings.TrimSpace(string(data))
	target, ok := strings.CutPrefix(line, "gitdir:")
	if !ok {
		return "", ErrNotARepository
	}

	target = strings.TrimSpace(target)
	if !filepath.IsAbs(target) {
		target = filepath.Join(repoDir, target)
	}

	// Worktree git dirs live under <main>/.git/worktrees/<name> and keep
	// their config in the main git dir two levels up.
	if base := filepath.Dir(filepath.Dir(target)); filepath.Base(base) == ".git" {
		return base, nil
	}

	return target, nil
}

// remoteURL reads the remote's url key from the git config file.
func remoteURL(gitDir, remoteName string) (string, error) {
	cfg, err := ini.Load(filepath.Join(gitDir, "config"))
	if err != nil {
		return "", ErrNoOriginRemote
	}

	section := cfg.Section(fmt.Sprintf(`remote "%s"`, remoteName))
	url := section.Key("url").String()
	if url == "" {
		return "", ErrNoOriginRemote
	}

	return url, nil
}

// ParseRemoteURL extracts the owner/repo pair from an HTTPS or SSH remote
// URL, stripping an optional trailing .git.
//
// Supported forms:
//   - https://github.com/owner/repo[.git]
//   - git@github.com:owner/repo[.git]
func ParseRemoteURL(url string) (Repo, error) {
	var path string

	switch {
	case strings.HasPrefix(url, "https://"):
		rest := strings.TrimPrefix(url, "https://")
		if idx := strings.Index(rest, "/"); idx >= 0 {
			path = rest[idx+1:]
		}
	case strings.Contains(url, "@") && strings.Contains(url, ":") && !strings.Contains(url, "://"):
		path = url[strings.Index(url, ":")+1:]
	}

	if path == "" {
		return Repo{}, fmt.Errorf("unsupported remote URL %q: only HTTPS and SSH GitHub URLs are supported", url)
	}

	path = strings.TrimSuffix(path, ".git")
	parts := strings.Split(path, "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return Repo{}, fmt.Errorf("could not parse owner and repo from remote URL %q", url)
	}

	return Repo{Owner: parts[0], Name: parts[1]}, nil
}
