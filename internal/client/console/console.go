// Package console is the interactive single-surface shell of the client.
// One screen is visible at a time; route strings like #/trash switch it,
// every screen entry fetches fresh data, and mutation results flow back as
// toasts plus either an in-place token replacement or a full reload.
package console

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/signalops/sigconsole/internal/client/api"
	"github.com/signalops/sigconsole/internal/client/iocli"
	"github.com/signalops/sigconsole/internal/client/router"
	"github.com/signalops/sigconsole/internal/client/session"
	"github.com/signalops/sigconsole/internal/client/sync"
	"github.com/signalops/sigconsole/internal/client/widget"
	"github.com/signalops/sigconsole/internal/models"
)

//go:generate moq -out viewer_mock.go . Viewer

// Viewer is the read-only slice of the API client behind the audit screens.
type Viewer interface {
	ListTrash(ctx context.Context) ([]models.TrashEntry, error)
	ListChanges(ctx context.Context) ([]models.ChangeLogRow, error)
	ListVersions(ctx context.Context, entityType string, entityID int64) ([]models.VersionEntry, error)
}

// errQuit ends the command loop without being an error.
var errQuit = errors.New("quit")

type Console struct {
	session *session.Controller
	records *sync.Service
	viewer  Viewer
	pickers *widget.Registry
	io      iocli.IO
	logger  *slog.Logger

	// cols is the last loaded main-screen snapshot. Mutations resolve their
	// concurrency tokens against it; a reload replaces it wholesale.
	cols *sync.Collections
}

func New(sess *session.Controller, records *sync.Service, viewer Viewer, cio iocli.IO, logger *slog.Logger) *Console {
	return &Console{
		session: sess,
		records: records,
		viewer:  viewer,
		pickers: widget.NewRegistry(),
		io:      cio,
		logger:  logger,
	}
}

// Run drives the command loop until quit or stdin EOF.
func (c *Console) Run(ctx context.Context) error {
	c.io.Println(styles.Title.Render("Signal Console"))
	c.muted("Type 'help' for commands. Routes like #/trash or #/versions/signal/5 switch screens.")
	c.io.Println()

	if c.session.State() == session.StateAuthenticated {
		if err := c.ShowMain(ctx); err != nil {
			c.reportErr(ctx, err)
		}
	} else {
		c.muted("Not logged in. Use 'login' to start a session.")
	}

	for {
		line, err := c.io.ReadInput(c.prompt())
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		if err := c.handleLine(ctx, line); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			c.reportErr(ctx, err)
		}

		// Expiry detected mid-command but swallowed by the handler still
		// gets exactly one visible notice.
		if c.session.ConsumeExpiry() {
			c.toastWarning("Session expired. Log in again to continue.")
		}
	}
}

func (c *Console) prompt() string {
	if user := c.session.ActiveUser(); user != "" {
		return user + "@sig> "
	}
	return "sig> "
}

func (c *Console) handleLine(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	// Route strings mirror the location fragment of the web UI.
	if strings.HasPrefix(line, "#") || strings.HasPrefix(line, "/") {
		return router.Dispatch(ctx, router.Parse(strings.TrimPrefix(line, "#")), c)
	}

	parts := strings.Fields(line)
	cmd, args := parts[0], parts[1:]

	switch cmd {
	case "help":
		c.printHelp()
		return nil
	case "login":
		return c.cmdLogin(ctx)
	case "logout":
		return c.cmdLogout(ctx)
	case "status":
		return c.cmdStatus()
	case "reload":
		return c.ShowMain(ctx)
	case "signal":
		return c.cmdSignal(ctx, args)
	case "asset":
		return c.cmdAsset(ctx, args)
	case "quit", "exit":
		c.io.Println("Bye!")
		return errQuit
	default:
		c.toastError("unknown command: " + cmd)
		return nil
	}
}

// reportErr turns a command failure into user feedback. A version conflict
// is never retried: the stale snapshot is replaced by a full reload and the
// operator re-applies the change against fresh data.
func (c *Console) reportErr(ctx context.Context, err error) {
	switch {
	case api.IsAuthExpired(err):
		c.session.ConsumeExpiry()
		c.toastWarning("Session expired. Log in again to continue.")
	case api.IsConflict(err):
		c.toastWarning("Record was changed by someone else. Reloading.")
		if rerr := c.ShowMain(ctx); rerr != nil {
			c.toastError(api.MessageOr(rerr, "reload failed"))
		}
	default:
		c.toastError(api.MessageOr(err, "request failed"))
	}
}

func (c *Console) requireAuth() bool {
	if c.session.State() == session.StateAuthenticated {
		return true
	}
	c.toastError("not logged in")
	return false
}

func (c *Console) printHelp() {
	c.io.Println("Commands:")
	c.io.Println("  login | logout | status       session")
	c.io.Println("  reload                        refetch and redraw the main screen")
	c.io.Println("  signal add                    create a signal")
	c.io.Println("  signal edit <id>              edit a signal")
	c.io.Println("  signal rm <id>                delete a signal")
	c.io.Println("  asset add                     create an asset (with signal picker)")
	c.io.Println("  asset edit <id>               edit an asset (with signal picker)")
	c.io.Println("  asset rm <id>                 delete an asset")
	c.io.Println("  quit                          leave")
	c.io.Println()
	c.io.Println("Screens (route strings):")
	c.io.Println("  #/                            main screen")
	c.io.Println("  #/trash                       deleted records")
	c.io.Println("  #/changes                     change feed")
	c.io.Println("  #/versions/<type>/<id>        version history of one record")
}
