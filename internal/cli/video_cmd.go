package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/folio/internal/cli/formatter"
	"github.com/alexanderramin/folio/internal/domain"
)

// embedFromURL maps a pasted YouTube link to its embed URL. Other URLs are
// kept as given. thumb is the YouTube default thumbnail, or empty.
func embedFromURL(url string) (embed, thumb string) {
	if e, t, ok := domain.YouTubeEmbed(url); ok {
		return e, t
	}
	return url, ""
}

func newVideoCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "video",
		Short: "Manage the video gallery",
	}

	cmd.AddCommand(
		newVideoAddCmd(app),
		newVideoListCmd(app),
		newVideoUpdateCmd(app),
		newVideoRemoveCmd(app),
	)

	return cmd
}

func newVideoAddCmd(app *App) *cobra.Command {
	var title, description, url, thumbnail string
	var local bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a video to the top of the gallery",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if (title == "" || url == "") && app.interactive() {
				if err := wizardVideo(&title, &description, &url).Run(); err != nil {
					return err
				}
			}

			embed, ytThumb := embedFromURL(url)
			thumbURI, err := resolveImage(ctx, app, thumbnail)
			if err != nil {
				return err
			}

			v, err := app.Videos.AddVideo(ctx, domain.VideoItem{
				Title:        title,
				Description:  description,
				EmbedURL:     embed,
				ThumbnailURL: domain.CoalesceStr(thumbURI, ytThumb),
				IsLocal:      local,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "Added video %s [%s]\n", v.Title, v.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Video title")
	cmd.Flags().StringVar(&description, "description", "", "Video description")
	cmd.Flags().StringVar(&url, "url", "", "YouTube link or embed URL")
	cmd.Flags().StringVar(&thumbnail, "thumbnail", "", "Thumbnail: file, URL or data URI")
	cmd.Flags().BoolVar(&local, "local", false, "Mark the video as a local upload")

	return cmd
}

func newVideoListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List videos",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := currentDocument(cmd.Context(), app)
			if err != nil {
				return err
			}
			if len(doc.Videos) == 0 {
				fmt.Fprintln(out(cmd), "No videos found.")
				return nil
			}
			fmt.Fprintln(out(cmd), formatter.FormatVideoList(doc.Videos))
			return nil
		},
	}
}

func newVideoUpdateCmd(app *App) *cobra.Command {
	var title, description, url, thumbnail string
	var local bool

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var patch domain.VideoPatch
			changed := false
			if cmd.Flags().Changed("title") {
				patch.Title, changed = &title, true
			}
			if cmd.Flags().Changed("description") {
				patch.Description, changed = &description, true
			}
			if cmd.Flags().Changed("url") {
				embed, ytThumb := embedFromURL(url)
				patch.EmbedURL, changed = &embed, true
				if ytThumb != "" && !cmd.Flags().Changed("thumbnail") {
					patch.ThumbnailURL = &ytThumb
				}
			}
			if cmd.Flags().Changed("thumbnail") {
				uri, err := resolveImage(ctx, app, thumbnail)
				if err != nil {
					return err
				}
				patch.ThumbnailURL, changed = &uri, true
			}
			if cmd.Flags().Changed("local") {
				patch.IsLocal, changed = &local, true
			}
			if !changed {
				return fmt.Errorf("nothing to change; pass at least one field flag")
			}

			v, err := app.Videos.UpdateVideo(ctx, args[0], patch)
			if err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "Updated video %s [%s]\n", v.Title, v.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Video title")
	cmd.Flags().StringVar(&description, "description", "", "Video description")
	cmd.Flags().StringVar(&url, "url", "", "YouTube link or embed URL")
	cmd.Flags().StringVar(&thumbnail, "thumbnail", "", "Thumbnail: file, URL or data URI")
	cmd.Flags().BoolVar(&local, "local", false, "Mark the video as a local upload")

	return cmd
}

func newVideoRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"remove"},
		Short:   "Remove a video",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if ok, err := confirmRemoval(cmd, app, yes, "video", args[0]); err != nil || !ok {
				return err
			}
			if err := app.Videos.RemoveVideo(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "Removed video %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")

	return cmd
}
