package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/dropmenu/internal/demo"
	"github.com/alexisbeaulieu97/dropmenu/internal/logger"
)

var errNotTerminal = errors.New("an interactive terminal is required; use --snapshot to print a single frame")

// viewFlags are shared by the commands that show menus.
type viewFlags struct {
	snapshot bool
	width    int
	height   int
	open     int
}

func (v *viewFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&v.snapshot, "snapshot", false, "Print one frame instead of starting the interactive menu")
	cmd.Flags().IntVar(&v.width, "width", 80, "Snapshot width in cells")
	cmd.Flags().IntVar(&v.height, "height", 20, "Snapshot height in lines")
	cmd.Flags().IntVar(&v.open, "open", -1, "Component to open in the snapshot")
}

func runMenus(cmd *cobra.Command, log *logger.Logger, v viewFlags, bindings []demo.Binding) error {
	app := demo.NewApp(log, bindings)
	if v.snapshot {
		return writeSnapshot(cmd.OutOrStdout(), app, bindings, v)
	}

	if !isTerminal(os.Stdout) {
		return errNotTerminal
	}

	log.Info("menu started")
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Error(err, "menu failed")
		return fmt.Errorf("run menu: %w", err)
	}
	log.Info("menu closed")
	return nil
}

func writeSnapshot(w io.Writer, app demo.App, bindings []demo.Binding, v viewFlags) error {
	if v.width <= 0 || v.height <= 1 {
		return fmt.Errorf("snapshot size %dx%d is too small", v.width, v.height)
	}
	model, _ := app.Update(tea.WindowSizeMsg{Width: v.width, Height: v.height})

	if v.open >= 0 && len(bindings) > 0 {
		menu := bindings[0].Menu
		if v.open >= menu.NumberOfComponents() {
			return fmt.Errorf("component %d out of range, menu has %d", v.open, menu.NumberOfComponents())
		}
		menu.Open(v.open, false)
	}

	_, err := fmt.Fprintln(w, model.View())
	return err
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
