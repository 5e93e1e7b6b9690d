package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"

	dmerrors "github.com/alexisbeaulieu97/dropmenu/pkg/errors"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestValidateCommand(t *testing.T) {
	t.Parallel()

	valid := writeFile(t, "menu.yaml", `version: "1.0"
name: Valid
components:
  - title: One
    rows:
      - title: A
      - title: B
  - title: Two
`)
	invalid := writeFile(t, "bad.yaml", `version: "1.0"
name: Invalid
components:
  - title: One
  - title: One
`)

	cases := []struct {
		name   string
		args   []string
		output string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "valid document",
			args:   []string{"validate", valid},
			output: "✓ Valid: 2 components, 2 rows",
			check:  func(t *testing.T, err error) { require.NoError(t, err) },
		},
		{
			name: "duplicate titles",
			args: []string{"validate", invalid},
			check: func(t *testing.T, err error) {
				var verr *dmerrors.ValidationError
				require.ErrorAs(t, err, &verr)
				require.Contains(t, verr.Field, "components[1].title")
			},
		},
		{
			name:  "missing argument",
			args:  []string{"validate"},
			check: func(t *testing.T, err error) { require.Error(t, err) },
		},
		{
			name: "missing file",
			args: []string{"validate", filepath.Join(t.TempDir(), "nope.yaml")},
			check: func(t *testing.T, err error) {
				require.ErrorIs(t, err, os.ErrNotExist)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			output, err := execute(t, tc.args...)
			tc.check(t, err)
			if tc.output != "" {
				require.Contains(t, output, tc.output)
			}
		})
	}
}

func TestDemoSnapshot(t *testing.T) {
	t.Parallel()

	output, err := execute(t, "demo", "--snapshot", "--width", "72", "--height", "16")
	require.NoError(t, err)
	plain := ansi.Strip(output)
	require.Contains(t, plain, "Colors")
	require.Contains(t, plain, "Sort by")
	require.NotContains(t, plain, "Orange")

	output, err = execute(t, "demo", "--snapshot", "--width", "72", "--height", "16", "--open", "0")
	require.NoError(t, err)
	plain = ansi.Strip(output)
	require.Contains(t, plain, "Choose a color")
	require.Contains(t, plain, "Orange")
}

func TestDemoSnapshotErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		args []string
		msg  string
	}{
		{name: "too small", args: []string{"demo", "--snapshot", "--height", "1"}, msg: "too small"},
		{name: "component out of range", args: []string{"demo", "--snapshot", "--open", "9"}, msg: "out of range"},
		{name: "missing config", args: []string{"demo", "--config", "/does/not/exist.yaml"}, msg: "exist.yaml"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := execute(t, tc.args...)
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestDemoLogsToFile(t *testing.T) {
	t.Parallel()

	logPath := filepath.Join(t.TempDir(), "dropmenu.log")
	_, err := execute(t, "--verbose", "--log-file", logPath, "demo", "--snapshot")
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "document loaded")
}

func TestGitSnapshot(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("menu"), 0o644))
	_, err = wt.Add("README.md")
	require.NoError(t, err)
	_, err = wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "Dropmenu", Email: "dropmenu@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	output, err := execute(t, "git", dir, "--snapshot", "--open", "0")
	require.NoError(t, err)
	plain := ansi.Strip(output)
	require.Contains(t, plain, "Branches (1)")
	require.Contains(t, plain, "Tags")

	_, err = execute(t, "git", t.TempDir(), "--snapshot")
	require.ErrorIs(t, err, git.ErrRepositoryNotExists)
}
