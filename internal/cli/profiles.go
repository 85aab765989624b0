package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcakit/ishikawa/pkg/profile"
)

// newProfilesCmd creates the profiles command, listing the builtin layout
// profiles and their capacities.
func newProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the builtin layout profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range profile.Names() {
				p, err := profile.ByName(name)
				if err != nil {
					return err
				}
				fmt.Println(StyleTitle.Render(p.Name))
				printDetail("canvas: %dx%d", int(p.CanvasWidth), int(p.CanvasHeight))
				printDetail("capacity: %d categories, %d causes each", p.MaxCategories, p.MaxItemsPerCategory)
				printDetail("wrap: labels %d chars, causes %d chars x %d lines", p.LabelMaxChars, p.ItemMaxChars, p.ItemMaxLines)
			}
			return nil
		},
	}
}
