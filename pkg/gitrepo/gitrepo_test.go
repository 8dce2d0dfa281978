package gitrepo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRemoteURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    Repo
		wantErr bool
	}{
		{
			name: "https with .git",
			url:  "https://github.com/octocat/hello-world.git",
			want: Repo{Owner: "octocat", Name: "hello-world"},
		},
		{
			name: "https without .git",
			url:  "https://github.com/octocat/hello-world",
			want: Repo{Owner: "octocat", Name: "hello-world"},
		},
		{
			name: "ssh with .git",
			url:  "git@github.com:octocat/hello-world.git",
			want: Repo{Owner: "octocat", Name: "hello-world"},
		},
		{
			name: "ssh without .git",
			url:  "git@github.com:octocat/hello-world",
			want: Repo{Owner: "octocat", Name: "hello-world"},
		},
		{
			name: "enterprise host",
			url:  "https://github.example.com/team/service.git",
			want: Repo{Owner: "team", Name: "service"},
		},
		{
			name:    "ssh protocol url is rejected",
			url:     "ssh://git@github.com/octocat/hello-world.git",
			wantErr: true,
		},
		{
			name:    "missing repo segment",
			url:     "https://github.com/octocat",
			wantErr: true,
		},
		{
			name:    "empty",
			url:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, err := ParseRemoteURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, repo)
		})
	}
}

func TestRepoString(t *testing.T) {
	assert.Equal(t, "octocat/hello-world", Repo{Owner: "octocat", Name: "hello-world"}.String())
}

func writeGitConfig(t *testing.T, gitDir, remote, url string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(gitDir, 0o755))
	content := "[core]\n\tbare = false\n[remote \"" + remote + "\"]\n\turl = " + url + "\n\tfetch = +refs/heads/*:refs/remotes/" + remote + "/*\n"
	require.NoError(t, os.WriteFile(filepath.Join(gitDir, "config"), []byte(content), 0o644))
}

func TestResolveFromRepoRoot(t *testing.T) {
	dir := t.TempDir()
	writeGitConfig(t, filepath.Join(dir, ".git"), "origin", "git@github.com:octocat/hello-world.git")

	repo, err := Resolve(dir, "origin")
	require.NoError(t, err)
	assert.Equal(t, Repo{Owner: "octocat", Name: "hello-world"}, repo)
}

func TestResolveWalksUpward(t *testing.T) {
	dir := t.TempDir()
	writeGitConfig(t, filepath.Join(dir, ".git"), "origin", "https://github.com/octocat/hello-world.git")

	nested := filepath.Join(dir, "pkg", "deep", "inside")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	repo, err := Resolve(nested, "")
	require.NoError(t, err)
	assert.Equal(t, "octocat/hello-world", repo.String())
}

func TestResolveCustomRemote(t *testing.T) {
	dir := t.TempDir()
	writeGitConfig(t, filepath.Join(dir, ".git"), "upstream", "https://github.com/octocat/hello-world.git")

	_, err := Resolve(dir, "origin")
	assert.ErrorIs(t, err, ErrNoOriginRemote)

	repo, err := Resolve(dir, "upstream")
	require.NoError(t, err)
	assert.Equal(t, "octocat", repo.Owner)
}

func TestResolveNotARepository(t *testing.T) {
	_, err := Resolve(t.TempDir(), "origin")
	assert.ErrorIs(t, err, ErrNotARepository)
}

func TestResolveGitFilePointer(t *testing.T) {
	root := t.TempDir()

	mainGit := filepath.Join(root, "main", ".git")
	writeGitConfig(t, mainGit, "origin", "git@github.com:octocat/hello-world.git")

	// Worktree checkout: .git is a pointer file into the main git dir.
	worktree := filepath.Join(root, "wt")
	require.NoError(t, os.MkdirAll(worktree, 0o755))
	worktreeGitDir := filepath.Join(mainGit, "worktrees", "wt")
	require.NoError(t, os.MkdirAll(worktreeGitDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(worktree, ".git"),
		[]byte("gitdir: "+worktreeGitDir+"\n"), 0o644))

	repo, err := Resolve(worktree, "origin")
	require.NoError(t, err)
	assert.Equal(t, "octocat/hello-world", repo.String())
}

func TestResolveGitFileRelativePointer(t *testing.T) {
	root := t.TempDir()

	gitDir := filepath.Join(root, "real-git")
	writeGitConfig(t, gitDir, "origin", "https://github.com/octocat/hello-world.git")

	checkout := filepath.Join(root, "checkout")
	require.NoError(t, os.MkdirAll(checkout, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(checkout, ".git"),
		[]byte("gitdir: ../real-git\n"), 0o644))

	repo, err := Resolve(checkout, "origin")
	require.NoError(t, err)
	assert.Equal(t, "hello-world", repo.Name)
}
