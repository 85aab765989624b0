package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rcakit/ishikawa/pkg/diagram"
	"github.com/rcakit/ishikawa/pkg/render/fishbone"
)

// newPreviewCmd creates the preview command: an interactive cause table for
// inspecting input before rendering. One row per cause, category repeated,
// mirroring the accessible table in the JSON document format.
func newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Inspect diagram input as an interactive cause table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, in, err := readInput(args[0])
			if err != nil {
				return err
			}
			norm := fishbone.Normalize(in.Effect, in.Categories)
			m := previewModel{effect: norm.Effect, rows: norm.Table()}
			_, err = tea.NewProgram(m).Run()
			return err
		},
	}
	return cmd
}

// previewModel is the bubbletea model for the cause table.
type previewModel struct {
	effect string
	rows   []diagram.Row
	cursor int
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	}
	return m, nil
}

func (m previewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Effect: "+m.effect) + "\n\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %-20s %s", "CATEGORY", "CAUSE")) + "\n")

	for i, row := range m.rows {
		line := fmt.Sprintf("%-20s %s", row.Category, row.Item)
		if i == m.cursor {
			b.WriteString(StyleSelected.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + StyleHighlight.Render(fmt.Sprintf("%-20s", row.Category)) + " " + StyleValue.Render(row.Item) + "\n")
		}
	}

	b.WriteString("\n" + StyleDim.Render(fmt.Sprintf("%d cause(s) · ↑/↓ move · q quit", len(m.rows))) + "\n")
	return b.String()
}
