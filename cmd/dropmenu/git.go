package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/dropmenu/internal/demo"
	"github.com/alexisbeaulieu97/dropmenu/pkg/dropdown"
)

type gitOptions struct {
	multi bool
	view  viewFlags
}

func newGitCmd(root *rootFlags) *cobra.Command {
	opts := gitOptions{}

	cmd := &cobra.Command{
		Use:   "git [path]",
		Short: "Browse the branches, tags and remotes of a repository",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) == 1 {
				path = args[0]
			}
			return runGit(cmd, root, path, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.multi, "multi", false, "Allow picking several rows per segment")
	opts.view.register(cmd)

	return cmd
}

func runGit(cmd *cobra.Command, root *rootFlags, path string, opts gitOptions) error {
	catalog, err := demo.OpenGitCatalog(path)
	if err != nil {
		return err
	}

	log, err := root.logger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Close() }()

	menuOpts := dropdown.DefaultOptions()
	menuOpts.AllowsMultipleSelection = opts.multi
	menuOpts.RoundedCorners = dropdown.CornersBottom

	log.WithFields(map[string]any{"path": path}).Debug("repository opened")
	binding := demo.NewBinding(catalog, menuOpts, log)
	return runMenus(cmd, log, opts.view, []demo.Binding{binding})
}
