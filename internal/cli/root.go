package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexanderramin/folio/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Documents service.DocumentService
	Sessions  service.SessionService
	Projects  service.ProjectService
	Timeline  service.TimelineService
	Videos    service.VideoService
	Settings  service.SettingsService
	Images    service.ImageService

	// IsInteractive reports whether prompts may be shown. Nil means never.
	IsInteractive func() bool
	// Now is the clock for relative timestamps. Nil means time.Now.
	Now func() time.Time
	// Width is the terminal width used for card layouts. Zero means 100.
	Width int
	// ServeAddr is the default listen address for the serve command.
	ServeAddr string
	// Logger receives server logs.
	Logger *slog.Logger

	noInput bool
}

// NewApp wires every service of store into an App.
func NewApp(store *service.Store) *App {
	return &App{
		Documents: store,
		Sessions:  store,
		Projects:  store,
		Timeline:  store,
		Videos:    store,
		Settings:  store,
		Images:    store,
		ServeAddr: ":8080",
	}
}

func (a *App) interactive() bool {
	return !a.noInput && a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) width() int {
	if a.Width > 0 {
		return a.Width
	}
	return 100
}

func (a *App) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.Default()
}

// NewRootCmd creates the top-level "folio" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "folio",
		Short:         "Portfolio builder: profile, projects, timeline, videos and about page",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	addGlobalFlags(root.PersistentFlags(), app)

	root.AddCommand(
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newProfileCmd(app),
		newProjectCmd(app),
		newTimelineCmd(app),
		newVideoCmd(app),
		newAboutCmd(app),
		newLayoutCmd(app),
		newImageCmd(app),
		newViewCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newServeCmd(app),
	)

	return root
}

// addGlobalFlags registers flags shared by every subcommand.
func addGlobalFlags(fs *pflag.FlagSet, app *App) {
	fs.BoolVar(&app.noInput, "no-input", false, "Never prompt; fail instead when required flags are missing")
	fs.IntVar(&app.Width, "term-width", app.Width, "Terminal width for card layouts (0 for 100)")
}

// FriendlyError rewrites store errors into messages aimed at the person at
// the terminal.
func FriendlyError(err error) string {
	switch {
	case errors.Is(err, service.ErrNoActiveSession):
		return "not logged in; run `folio login` first"
	case errors.Is(err, service.ErrConflict):
		return "the portfolio was changed by another process; re-run the command"
	case errors.Is(err, service.ErrQuotaExceeded):
		return fmt.Sprintf("portfolio too large to save: %v", err)
	default:
		return err.Error()
	}
}

func out(cmd *cobra.Command) io.Writer { return cmd.OutOrStdout() }
