package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// newListCmd creates the list command showing stored documents.
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.Context())
		},
	}
}

// runList prints every stored document with its compile status.
func runList(ctx context.Context) error {
	cfg := configFromContext(ctx)

	st, err := buildStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	docs, err := st.List(ctx)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		printDetail("No documents stored; add one with tikzgo save")
		return nil
	}

	printInfo("%d documents", len(docs))
	nameStyle := lipgloss.NewStyle().Foreground(colorWhite).Width(20)
	for _, d := range docs {
		status := StyleDim.Render("not compiled")
		if d.Compiled != nil {
			status = StyleSuccess.Render(iconSuccess + " " + d.Compiled.Engine)
		}
		fmt.Println("  " + nameStyle.Render(d.Name) + " " +
			StyleDim.Render(d.UpdatedAt.Format("2006-01-02 15:04")) + "  " + status)
	}
	return nil
}
