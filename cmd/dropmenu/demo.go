package main

import (
	_ "embed"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/dropmenu/internal/config"
	"github.com/alexisbeaulieu97/dropmenu/internal/demo"
)

//go:embed demo.yaml
var demoDocument []byte

type demoOptions struct {
	configPath string
	view       viewFlags
}

func newDemoCmd(root *rootFlags) *cobra.Command {
	opts := demoOptions{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Open a menu bar described by a YAML document",
		Long: `Demo opens the built-in sample menu, or the document given with --config.
Click or press 1-9 to open a segment, arrows to move, enter to pick a row
and / to filter the open segment.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Menu document to open instead of the built-in sample")
	opts.view.register(cmd)

	return cmd
}

func runDemo(cmd *cobra.Command, root *rootFlags, opts demoOptions) error {
	var (
		doc *config.Document
		err error
	)
	if opts.configPath != "" {
		doc, err = config.ParseFile(opts.configPath)
	} else {
		doc, err = config.Parse("demo.yaml", demoDocument)
	}
	if err != nil {
		return err
	}

	menuOpts, err := doc.Options()
	if err != nil {
		return err
	}

	log, err := root.logger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Close() }()

	log.WithFields(map[string]any{"document": doc.Name, "components": len(doc.Components)}).Debug("document loaded")
	binding := demo.NewBinding(demo.NewDocumentCatalog(doc), menuOpts, log)
	return runMenus(cmd, log, opts.view, []demo.Binding{binding})
}
