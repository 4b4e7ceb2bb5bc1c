package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/folio/internal/cli/formatter"
)

// resolveImage turns an image flag value into something storable. URLs and
// data URIs pass through; anything else is read as a local file and
// encoded as a data URI.
func resolveImage(ctx context.Context, app *App, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	switch {
	case ref == "":
		return "", nil
	case strings.HasPrefix(ref, "data:"),
		strings.HasPrefix(ref, "http://"),
		strings.HasPrefix(ref, "https://"):
		return ref, nil
	}
	return app.Images.EncodeImage(ctx, ref)
}

func resolveImages(ctx context.Context, app *App, refs []string) ([]string, error) {
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		uri, err := resolveImage(ctx, app, r)
		if err != nil {
			return nil, err
		}
		if uri != "" {
			out = append(out, uri)
		}
	}
	return out, nil
}

func newImageCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "image",
		Short: "Work with images",
	}
	cmd.AddCommand(newImageEncodeCmd(app))
	return cmd
}

func newImageEncodeCmd(app *App) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "encode PATH",
		Short: "Print an image file as a data URI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			results := app.Images.EncodeImageAsync(ctx, args[0])

			stop := func() {}
			if app.interactive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Encoding "+args[0])
			}
			res := <-results
			stop()
			if res.Err != nil {
				return res.Err
			}

			if outPath != "" {
				if err := os.WriteFile(outPath, []byte(res.URI), 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", outPath, err)
				}
				fmt.Fprintf(out(cmd), "Wrote %s (%s)\n", outPath, formatter.FormatBytes(len(res.URI)))
				return nil
			}
			fmt.Fprintln(out(cmd), res.URI)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the data URI to a file instead of stdout")

	return cmd
}
