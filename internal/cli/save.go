package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saltsmart/tikzgo/pkg/store"
)

// saveOpts holds the command-line flags for the save command.
type saveOpts struct {
	name string // document name, empty derives from the input basename
}

// newSaveCmd creates the save command storing a file as a document.
func newSaveCmd() *cobra.Command {
	var opts saveOpts

	cmd := &cobra.Command{
		Use:   "save <file.tex>",
		Short: "Store a TikZ file as a named document",
		Long: `Save stores a TikZ file in the document store under a name, creating
the document or updating its source. Saved documents show up in
tikzgo list and in the preview server.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSave(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "document name (default input basename)")

	return cmd
}

// runSave upserts the file contents under the chosen name. Updating
// keeps the document's UUID, so preview URLs stay valid.
func runSave(ctx context.Context, input string, opts *saveOpts) error {
	cfg := configFromContext(ctx)

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}

	name := opts.name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	}

	st, err := buildStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	doc, err := st.Get(ctx, name)
	switch {
	case err == nil:
		doc.SetSource(string(data))
	case stderrors.Is(err, store.ErrNotFound):
		doc, err = store.New(name, string(data))
		if err != nil {
			return err
		}
	default:
		return err
	}

	if err := st.Put(ctx, doc); err != nil {
		return err
	}

	printSuccess("Saved %s", StyleHighlight.Render(name))
	printKeyValue("id", doc.ID)
	printNewline()
	printNextStep("Browse it", "tikzgo serve")
	return nil
}
