package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/folio/internal/cli/formatter"
	"github.com/alexanderramin/folio/internal/domain"
)

func newAboutCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "about",
		Short: "Show or edit the about section",
	}
	cmd.AddCommand(newAboutShowCmd(app), newAboutSetCmd(app))
	return cmd
}

func newAboutShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Render the about section",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := currentDocument(cmd.Context(), app)
			if err != nil {
				return err
			}
			fmt.Fprintln(out(cmd), formatter.FormatAbout(doc.About, app.width()))
			return nil
		},
	}
}

func newAboutSetCmd(app *App) *cobra.Command {
	var content, file, image, layout string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Replace the about content, image or layout",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			doc, err := currentDocument(ctx, app)
			if err != nil {
				return err
			}
			about := doc.About

			flags := cmd.Flags()
			if !flags.Changed("content") && !flags.Changed("file") && !flags.Changed("image") && !flags.Changed("layout") {
				if !app.interactive() {
					return fmt.Errorf("nothing to change; pass --content, --file, --image or --layout")
				}
				content, image, layout = about.Content, about.Image, string(about.Layout)
				if err := wizardAbout(&content, &image, &layout).Run(); err != nil {
					return err
				}
				flags.Set("content", content)
				flags.Set("image", image)
				flags.Set("layout", layout)
			}

			if flags.Changed("file") {
				data, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("reading %s: %w", file, err)
				}
				about.Content = string(data)
			} else if flags.Changed("content") {
				about.Content = content
			}
			if flags.Changed("image") {
				uri, err := resolveImage(ctx, app, image)
				if err != nil {
					return err
				}
				about.Image = uri
			}
			if flags.Changed("layout") {
				about.Layout = domain.AboutLayout(layout)
			}

			if err := app.Settings.SetAbout(ctx, about); err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "About section saved (%s layout).\n", about.Layout)
			return nil
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "Markdown content")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read markdown content from a file")
	cmd.Flags().StringVar(&image, "image", "", "Image: file, URL or data URI")
	cmd.Flags().StringVar(&layout, "layout", "", "Layout: vertical, horizontal or carousel")
	cmd.MarkFlagsMutuallyExclusive("content", "file")

	return cmd
}

// wizardAbout edits the about section in place.
func wizardAbout(content, image, layout *string) *huh.Form {
	return themed(
		huh.NewGroup(
			huh.NewText().Title("About (markdown, ## starts a carousel slide)").Lines(10).Value(content),
			imageInput("Image (file, URL or data URI, blank for none)", image),
			aboutLayoutSelect(layout),
		),
	)
}
