package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/folio/internal/cli/formatter"
	"github.com/alexanderramin/folio/internal/domain"
)

func newTimelineCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Manage timeline entries",
	}

	cmd.AddCommand(
		newTimelineAddCmd(app),
		newTimelineListCmd(app),
		newTimelineUpdateCmd(app),
		newTimelineRemoveCmd(app),
	)

	return cmd
}

func newTimelineAddCmd(app *App) *cobra.Command {
	var title, description, date, image string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a timeline entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if title == "" && app.interactive() {
				if err := wizardTimelineEntry(&title, &description, &date, &image).Run(); err != nil {
					return err
				}
			}
			if err := validateOptionalDate(date); err != nil {
				return fmt.Errorf("invalid --date %q: %w", date, err)
			}
			imageURI, err := resolveImage(ctx, app, image)
			if err != nil {
				return err
			}

			e, err := app.Timeline.AddTimelineEntry(ctx, domain.NewTimelineEntry{
				Title:       title,
				Description: description,
				Date:        date,
				Image:       imageURI,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "Added timeline entry %s [%s]\n", e.Title, e.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Entry title")
	cmd.Flags().StringVar(&description, "description", "", "Entry description")
	cmd.Flags().StringVar(&date, "date", "", "Entry date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&image, "image", "", "Image: file, URL or data URI")

	return cmd
}

func newTimelineListCmd(app *App) *cobra.Command {
	var stored, cards bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List timeline entries, newest date first",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := currentDocument(cmd.Context(), app)
			if err != nil {
				return err
			}
			if len(doc.Timeline) == 0 {
				fmt.Fprintln(out(cmd), "No timeline entries found.")
				return nil
			}
			entries := doc.Timeline
			if !stored {
				entries = domain.SortTimelineByDateDesc(entries)
			}
			if cards {
				fmt.Fprintln(out(cmd), formatter.FormatTimeline(entries, doc.LayoutPreferences.TimelineLayout, app.width()))
				return nil
			}
			fmt.Fprintln(out(cmd), formatter.FormatTimelineList(entries))
			return nil
		},
	}

	cmd.Flags().BoolVar(&stored, "stored", false, "Keep insertion order instead of sorting by date")
	cmd.Flags().BoolVar(&cards, "cards", false, "Render cards in the saved timeline layout")

	return cmd
}

func newTimelineUpdateCmd(app *App) *cobra.Command {
	var title, description, date, image string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a timeline entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var patch domain.TimelineEntryPatch
			changed := false
			if cmd.Flags().Changed("title") {
				patch.Title, changed = &title, true
			}
			if cmd.Flags().Changed("description") {
				patch.Description, changed = &description, true
			}
			if cmd.Flags().Changed("date") {
				if err := validateOptionalDate(date); err != nil {
					return fmt.Errorf("invalid --date %q: %w", date, err)
				}
				patch.Date, changed = &date, true
			}
			if cmd.Flags().Changed("image") {
				uri, err := resolveImage(ctx, app, image)
				if err != nil {
					return err
				}
				patch.Image, changed = &uri, true
			}
			if !changed {
				return fmt.Errorf("nothing to change; pass at least one field flag")
			}

			e, err := app.Timeline.UpdateTimelineEntry(ctx, args[0], patch)
			if err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "Updated timeline entry %s [%s]\n", e.Title, e.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Entry title")
	cmd.Flags().StringVar(&description, "description", "", "Entry description")
	cmd.Flags().StringVar(&date, "date", "", "Entry date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&image, "image", "", "Image: file, URL or data URI")

	return cmd
}

func newTimelineRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"remove"},
		Short:   "Remove a timeline entry",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if ok, err := confirmRemoval(cmd, app, yes, "timeline entry", args[0]); err != nil || !ok {
				return err
			}
			if err := app.Timeline.RemoveTimelineEntry(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "Removed timeline entry %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")

	return cmd
}
