package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/folio/internal/cli/formatter"
	"github.com/alexanderramin/folio/internal/domain"
)

func newLayoutCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Show or change layout preferences",
	}
	cmd.AddCommand(newLayoutShowCmd(app), newLayoutSetCmd(app))
	return cmd
}

func newLayoutShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show layout preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := currentDocument(cmd.Context(), app)
			if err != nil {
				return err
			}
			fmt.Fprintln(out(cmd), formatLayoutPrefs(doc.LayoutPreferences))
			return nil
		},
	}
}

func newLayoutSetCmd(app *App) *cobra.Command {
	var projects, timeline string
	var samples bool

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change project or timeline layout and sample visibility",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			flags := cmd.Flags()
			if !flags.Changed("projects") && !flags.Changed("timeline") && !flags.Changed("samples") {
				if !app.interactive() {
					return fmt.Errorf("nothing to change; pass --projects, --timeline or --samples")
				}
				doc, err := currentDocument(ctx, app)
				if err != nil {
					return err
				}
				prefs := doc.LayoutPreferences
				projects, timeline, samples = string(prefs.ProjectLayout), string(prefs.TimelineLayout), prefs.ShowSampleContent
				if err := wizardLayout(&projects, &timeline, &samples).Run(); err != nil {
					return err
				}
				flags.Set("projects", projects)
				flags.Set("timeline", timeline)
				flags.Set("samples", fmt.Sprint(samples))
			}

			var patch domain.LayoutPatch
			if flags.Changed("projects") {
				if err := validateLayout(projects); err != nil {
					return fmt.Errorf("--projects: %w", err)
				}
				k := domain.LayoutKind(projects)
				patch.ProjectLayout = &k
			}
			if flags.Changed("timeline") {
				if err := validateLayout(timeline); err != nil {
					return fmt.Errorf("--timeline: %w", err)
				}
				k := domain.LayoutKind(timeline)
				patch.TimelineLayout = &k
			}
			if flags.Changed("samples") {
				patch.ShowSampleContent = &samples
			}

			prefs, err := app.Settings.SetLayoutPreferences(ctx, patch)
			if err != nil {
				return err
			}
			fmt.Fprintln(out(cmd), formatLayoutPrefs(prefs))
			return nil
		},
	}

	cmd.Flags().StringVar(&projects, "projects", "", "Project layout: grid, masonry or carousel")
	cmd.Flags().StringVar(&timeline, "timeline", "", "Timeline layout: grid, masonry or carousel")
	cmd.Flags().BoolVar(&samples, "samples", true, "Show sample content on the public portfolio")

	return cmd
}

func formatLayoutPrefs(p domain.LayoutPreferences) string {
	samples := "hidden"
	if p.ShowSampleContent {
		samples = "shown"
	}
	return fmt.Sprintf("Projects: %s\nTimeline: %s\nSamples:  %s",
		formatter.LayoutBadge(p.ProjectLayout), formatter.LayoutBadge(p.TimelineLayout), samples)
}
