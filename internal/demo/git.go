package demo

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

const shortHashLen = 7

// GitCatalog lists the branches, tags and remotes of a repository. The checked-out branch
// starts selected.
type GitCatalog struct {
	path       string
	components []ComponentInfo
	rows       [][]Entry
}

// OpenGitCatalog reads the repository containing path, searching parent directories for
// the .git directory.
func OpenGitCatalog(path string) (*GitCatalog, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repository %s: %w", path, err)
	}

	var head plumbing.ReferenceName
	if ref, err := repo.Head(); err == nil {
		head = ref.Name()
	}

	branches, err := collectRefs(repo.Branches)
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	for i := range branches {
		branches[i].Selected = branches[i].Title == head.Short() && head.IsBranch()
	}

	tags, err := collectRefs(repo.Tags)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	remotes, err := repo.Remotes()
	if err != nil {
		return nil, fmt.Errorf("list remotes: %w", err)
	}
	remoteRows := make([]Entry, 0, len(remotes))
	for _, r := range remotes {
		cfg := r.Config()
		e := Entry{Title: cfg.Name}
		if len(cfg.URLs) > 0 {
			e.Detail = cfg.URLs[0]
		}
		remoteRows = append(remoteRows, e)
	}
	sortEntries(remoteRows)

	g := &GitCatalog{path: path}
	g.add("Branches", branches, 10)
	g.add("Tags", tags, 10)
	g.add("Remotes", remoteRows, 0)
	return g, nil
}

func collectRefs(list func() (storer.ReferenceIter, error)) ([]Entry, error) {
	iter, err := list()
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var entries []Entry
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		entries = append(entries, Entry{
			Title:  ref.Name().Short(),
			Detail: shortHash(ref.Hash()),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	sortEntries(entries)
	return entries, nil
}

func shortHash(h plumbing.Hash) string {
	s := h.String()
	if len(s) > shortHashLen {
		return s[:shortHashLen]
	}
	return s
}

func sortEntries(entries []Entry) {
	slices.SortFunc(entries, func(a, b Entry) int { return cmp.Compare(a.Title, b.Title) })
}

func (g *GitCatalog) add(title string, rows []Entry, maxRows int) {
	g.components = append(g.components, ComponentInfo{
		Title:         title,
		SelectedTitle: fmt.Sprintf("%s (%d)", title, len(rows)),
		MaxRows:       maxRows,
		FullRow:       true,
		Enabled:       len(rows) > 0,
	})
	g.rows = append(g.rows, rows)
}

// Path returns the path the catalog was opened from.
func (g *GitCatalog) Path() string { return g.path }

func (g *GitCatalog) Len() int { return len(g.components) }

func (g *GitCatalog) Component(c int) ComponentInfo { return g.components[c] }

func (g *GitCatalog) Rows(c int) []Entry { return g.rows[c] }
