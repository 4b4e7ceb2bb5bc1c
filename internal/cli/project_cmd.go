package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/folio/internal/cli/formatter"
	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/service"
)

// currentDocument returns the stored document or ErrNoActiveSession.
func currentDocument(ctx context.Context, app *App) (*domain.Document, error) {
	doc, ok := app.Documents.Current(ctx)
	if !ok {
		return nil, service.ErrNoActiveSession
	}
	return doc, nil
}

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectShowCmd(app),
		newProjectUpdateCmd(app),
		newProjectRemoveCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var title, description, date, cover string
	var images []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a project to the top of the list",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if title == "" && app.interactive() {
				if err := wizardProject(&title, &description, &date, &cover).Run(); err != nil {
					return err
				}
			}
			if err := validateOptionalDate(date); err != nil {
				return fmt.Errorf("invalid --date %q: %w", date, err)
			}

			coverURI, err := resolveImage(ctx, app, cover)
			if err != nil {
				return err
			}
			imageURIs, err := resolveImages(ctx, app, images)
			if err != nil {
				return err
			}
			if coverURI == "" && len(imageURIs) > 0 {
				coverURI = imageURIs[0]
			}
			if coverURI != "" && len(imageURIs) == 0 {
				imageURIs = []string{coverURI}
			}

			p, err := app.Projects.AddProject(ctx, domain.NewProject{
				Title:       title,
				Description: description,
				Date:        date,
				CoverImage:  coverURI,
				Images:      imageURIs,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(out(cmd), "Added project %s [%s]\n", p.Title, p.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Project title")
	cmd.Flags().StringVar(&description, "description", "", "Project description")
	cmd.Flags().StringVar(&date, "date", "", "Project date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&cover, "cover", "", "Cover image: file, URL or data URI")
	cmd.Flags().StringArrayVar(&images, "image", nil, "Gallery image, repeatable: file, URL or data URI")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	var cards bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := currentDocument(cmd.Context(), app)
			if err != nil {
				return err
			}
			if len(doc.Projects) == 0 {
				fmt.Fprintln(out(cmd), "No projects found.")
				return nil
			}
			if cards {
				fmt.Fprintln(out(cmd), formatter.FormatProjectCards(doc.Projects, doc.LayoutPreferences.ProjectLayout, app.width()))
				return nil
			}
			fmt.Fprintln(out(cmd), formatter.FormatProjectList(doc.Projects, app.now()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&cards, "cards", false, "Render cards in the saved project layout")

	return cmd
}

func newProjectShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show project details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := currentDocument(cmd.Context(), app)
			if err != nil {
				return err
			}
			i := doc.FindProject(args[0])
			if i < 0 {
				return fmt.Errorf("project %q not found", args[0])
			}
			fmt.Fprintln(out(cmd), formatter.FormatProjectDetail(doc.Projects[i], app.now()))
			return nil
		},
	}
}

func newProjectUpdateCmd(app *App) *cobra.Command {
	var title, description, date, cover string
	var images []string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var patch domain.ProjectPatch
			if cmd.Flags().Changed("title") {
				patch.Title = &title
			}
			if cmd.Flags().Changed("description") {
				patch.Description = &description
			}
			if cmd.Flags().Changed("date") {
				if err := validateOptionalDate(date); err != nil {
					return fmt.Errorf("invalid --date %q: %w", date, err)
				}
				patch.Date = &date
			}
			if cmd.Flags().Changed("cover") {
				uri, err := resolveImage(ctx, app, cover)
				if err != nil {
					return err
				}
				patch.CoverImage = &uri
			}
			if cmd.Flags().Changed("image") {
				uris, err := resolveImages(ctx, app, images)
				if err != nil {
					return err
				}
				patch.Images = &uris
			}
			if patch.Empty() {
				return fmt.Errorf("nothing to change; pass at least one field flag")
			}

			p, err := app.Projects.UpdateProject(ctx, args[0], patch)
			if err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "Updated project %s [%s]\n", p.Title, p.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Project title")
	cmd.Flags().StringVar(&description, "description", "", "Project description")
	cmd.Flags().StringVar(&date, "date", "", "Project date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&cover, "cover", "", "Cover image: file, URL or data URI")
	cmd.Flags().StringArrayVar(&images, "image", nil, "Replace gallery images, repeatable")

	return cmd
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"remove"},
		Short:   "Remove a project",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if ok, err := confirmRemoval(cmd, app, yes, "project", args[0]); err != nil || !ok {
				return err
			}
			if err := app.Projects.RemoveProject(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "Removed project %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")

	return cmd
}

// confirmRemoval asks before deleting when a terminal is attached. It
// reports whether to proceed.
func confirmRemoval(cmd *cobra.Command, app *App, yes bool, kind, id string) (bool, error) {
	if yes || !app.interactive() {
		return true, nil
	}
	confirmed := false
	if err := wizardConfirm(fmt.Sprintf("Remove %s %s?", kind, id), &confirmed).Run(); err != nil {
		return false, err
	}
	if !confirmed {
		fmt.Fprintln(out(cmd), "Cancelled.")
	}
	return confirmed, nil
}
