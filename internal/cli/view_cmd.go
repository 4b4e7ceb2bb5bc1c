package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/folio/internal/cli/formatter"
	"github.com/alexanderramin/folio/internal/schema"
)

func newViewCmd(app *App) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Preview the public portfolio in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := currentDocument(cmd.Context(), app)
			if err != nil {
				return err
			}
			if width <= 0 {
				width = app.width()
			}
			fmt.Fprintln(out(cmd), formatter.FormatPortfolio(doc.Public(), width))
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "Render width in columns (default: terminal width)")

	return cmd
}

func newExportCmd(app *App) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the stored document as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := currentDocument(cmd.Context(), app)
			if err != nil {
				return err
			}
			data, err := schema.Encode(doc)
			if err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := json.Indent(&buf, data, "", "  "); err != nil {
				return fmt.Errorf("formatting export: %w", err)
			}
			buf.WriteByte('\n')

			if outPath == "" || outPath == "-" {
				_, err := out(cmd).Write(buf.Bytes())
				return err
			}
			if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", outPath, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Exported %s to %s\n", formatter.FormatBytes(buf.Len()), outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default: stdout)")

	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Replace the stored document with an exported one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			doc, err := schema.Decode(data)
			if err != nil {
				return fmt.Errorf("importing %s: %w", args[0], err)
			}

			if _, exists := app.Documents.Current(ctx); exists && !yes && app.interactive() {
				confirmed := false
				if err := wizardConfirm("Replace the current portfolio?", &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(out(cmd), "Cancelled.")
					return nil
				}
			}

			if err := app.Documents.Save(ctx, doc); err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "Imported portfolio for %s: %d projects, %d timeline entries, %d videos.\n",
				doc.User.Username, len(doc.Projects), len(doc.Timeline), len(doc.Videos))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")

	return cmd
}
