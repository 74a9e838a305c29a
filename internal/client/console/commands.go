package console

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/signalops/sigconsole/internal/client/api"
	"github.com/signalops/sigconsole/internal/client/sync"
	"github.com/signalops/sigconsole/internal/client/widget"
	"github.com/signalops/sigconsole/internal/models"
	pkgapi "github.com/signalops/sigconsole/pkg/api"
)

func (c *Console) cmdLogin(ctx context.Context) error {
	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return err
	}
	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return err
	}

	if err := c.session.Login(ctx, username, password); err != nil {
		// Rejected credentials are a login outcome, not a session expiry.
		c.toastError(api.MessageOr(err, "login failed"))
		return nil
	}

	user := c.session.ActiveUser()
	if user == "" {
		user = username
	}
	c.toastSuccess("Logged in as " + user)
	return c.ShowMain(ctx)
}

func (c *Console) cmdLogout(ctx context.Context) error {
	if err := c.session.Logout(ctx); err != nil {
		return err
	}
	c.cols = nil
	c.pickers.Reset()
	c.toastSuccess("Logged out.")
	return nil
}

func (c *Console) cmdStatus() error {
	c.io.Printf("State: %s\n", c.session.State())
	if user := c.session.ActiveUser(); user != "" {
		c.io.Printf("User:  %s\n", user)
	}
	if exp, ok := c.session.TokenExpiry(); ok {
		c.io.Printf("Token expires: %s\n", exp.Format("2006-01-02 15:04:05 MST"))
	}
	return nil
}

func (c *Console) cmdSignal(ctx context.Context, args []string) error {
	if !c.requireAuth() {
		return nil
	}
	if len(args) == 0 {
		c.toastError("usage: signal add | signal edit <id> | signal rm <id>")
		return nil
	}

	switch args[0] {
	case "add":
		payload, err := c.promptSignal(pkgapi.SignalPayload{})
		if err != nil {
			return err
		}
		if err := c.records.CreateSignal(ctx, payload); err != nil {
			return err
		}
		c.toastSuccess("Signal created.")
		return c.ShowMain(ctx)

	case "edit":
		sig, err := c.findSignal(ctx, args[1:])
		if err != nil || sig == nil {
			return err
		}
		payload, err := c.promptSignal(pkgapi.SignalPayload{
			FrequencyFrom: sig.FrequencyFrom,
			FrequencyTo:   sig.FrequencyTo,
			Modulation:    sig.Modulation,
			Power:         sig.Power,
		})
		if err != nil {
			return err
		}
		outcome, err := c.records.UpdateSignal(ctx, sig, payload)
		if err != nil {
			return err
		}
		if outcome == sync.UpdateNoop {
			c.muted("No changes to save.")
			return nil
		}
		c.toastSuccess(fmt.Sprintf("Signal #%d saved.", sig.ID))
		return nil

	case "rm":
		sig, err := c.findSignal(ctx, args[1:])
		if err != nil || sig == nil {
			return err
		}
		ok, err := c.io.Confirm(fmt.Sprintf("Delete signal #%d? [y/N]: ", sig.ID))
		if err != nil {
			return err
		}
		if !ok {
			c.muted("Cancelled.")
			return nil
		}
		if err := c.records.DeleteSignal(ctx, sig); err != nil {
			return err
		}
		c.toastSuccess(fmt.Sprintf("Signal #%d deleted.", sig.ID))
		return c.ShowMain(ctx)

	default:
		c.toastError("usage: signal add | signal edit <id> | signal rm <id>")
		return nil
	}
}

func (c *Console) cmdAsset(ctx context.Context, args []string) error {
	if !c.requireAuth() {
		return nil
	}
	if len(args) == 0 {
		c.toastError("usage: asset add | asset edit <id> | asset rm <id>")
		return nil
	}

	switch args[0] {
	case "add":
		if err := c.loadIfNeeded(ctx); err != nil {
			return err
		}
		name, desc, err := c.promptAssetFields("", "")
		if err != nil {
			return err
		}
		ids, ok, err := c.runPicker(nil)
		if err != nil || !ok {
			if !ok {
				c.muted("Cancelled.")
			}
			return err
		}
		payload := pkgapi.AssetPayload{Name: name, Description: desc, SignalIDs: ids}
		if err := c.records.CreateAsset(ctx, payload); err != nil {
			return err
		}
		c.toastSuccess("Asset created.")
		return c.ShowMain(ctx)

	case "edit":
		asset, err := c.findAsset(ctx, args[1:])
		if err != nil || asset == nil {
			return err
		}
		name, desc, err := c.promptAssetFields(asset.Name, asset.Description)
		if err != nil {
			return err
		}
		ids, ok, err := c.runPicker(asset.SignalIDs)
		if err != nil || !ok {
			if !ok {
				c.muted("Cancelled.")
			}
			return err
		}
		payload := pkgapi.AssetPayload{Name: name, Description: desc, SignalIDs: ids}
		outcome, err := c.records.UpdateAsset(ctx, asset, payload)
		if err != nil {
			return err
		}
		if outcome == sync.UpdateNoop {
			c.muted("No changes to save.")
			return nil
		}
		c.toastSuccess(fmt.Sprintf("Asset #%d saved.", asset.ID))
		return nil

	case "rm":
		asset, err := c.findAsset(ctx, args[1:])
		if err != nil || asset == nil {
			return err
		}
		ok, err := c.io.Confirm(fmt.Sprintf("Delete asset %q (#%d)? [y/N]: ", asset.Name, asset.ID))
		if err != nil {
			return err
		}
		if !ok {
			c.muted("Cancelled.")
			return nil
		}
		if err := c.records.DeleteAsset(ctx, asset); err != nil {
			return err
		}
		c.toastSuccess(fmt.Sprintf("Asset #%d deleted.", asset.ID))
		return c.ShowMain(ctx)

	default:
		c.toastError("usage: asset add | asset edit <id> | asset rm <id>")
		return nil
	}
}

// runPicker drives the signal multi-select until done or cancel. The widget
// attaches to the registry with first-wins semantics and opening it closes
// any other open picker.
func (c *Console) runPicker(selected []int64) ([]int64, bool, error) {
	options := make([]widget.Option, 0, len(c.cols.Signals))
	for i := range c.cols.Signals {
		s := &c.cols.Signals[i]
		options = append(options, widget.Option{ID: s.ID, Label: s.Label()})
	}

	ms := widget.New(options, selected)
	c.pickers.Attach(ms)
	c.pickers.OpenOnly(ms)

	c.muted("Signal picker: <id> toggles, 'find <text>' filters, 'clear' resets, 'done' saves, 'cancel' aborts.")

	for {
		c.io.Printf("%s\n", ms.SummaryText())
		for _, opt := range ms.Visible() {
			mark := "[ ]"
			if ms.Checked(opt.ID) {
				mark = "[x]"
			}
			c.io.Printf("  %s %s\n", mark, opt.Label)
		}

		line, err := c.io.ReadInput("picker> ")
		if err != nil {
			return nil, false, err
		}
		line = strings.TrimSpace(line)

		// a bare id and "toggle <id>" are equivalent
		line = strings.TrimPrefix(line, "toggle ")

		switch {
		case line == "done":
			ms.Close()
			return ms.CheckedIDs(), true, nil
		case line == "cancel":
			ms.Close()
			return nil, false, nil
		case line == "open":
			c.pickers.OpenOnly(ms)
		case line == "clear":
			ms.SetSearch("")
		case strings.HasPrefix(line, "find "):
			ms.SetSearch(strings.TrimPrefix(line, "find "))
		case line == "":
			// redraw
		default:
			id, err := strconv.ParseInt(line, 10, 64)
			if err != nil || !ms.Toggle(id) {
				c.toastError("unknown option: " + line)
			}
		}
	}
}

// loadIfNeeded fetches collections when no main screen was rendered yet,
// so edits work right after login without an explicit reload.
func (c *Console) loadIfNeeded(ctx context.Context) error {
	if c.cols != nil {
		return nil
	}
	cols, err := c.records.FetchAll(ctx)
	if err != nil {
		return err
	}
	c.cols = cols
	return nil
}

func (c *Console) findSignal(ctx context.Context, args []string) (*models.Signal, error) {
	id, ok := c.parseID(args)
	if !ok {
		return nil, nil
	}
	if err := c.loadIfNeeded(ctx); err != nil {
		return nil, err
	}
	sig := c.cols.SignalByID(id)
	if sig == nil {
		c.toastError(fmt.Sprintf("no signal #%d (try 'reload')", id))
	}
	return sig, nil
}

func (c *Console) findAsset(ctx context.Context, args []string) (*models.Asset, error) {
	id, ok := c.parseID(args)
	if !ok {
		return nil, nil
	}
	if err := c.loadIfNeeded(ctx); err != nil {
		return nil, err
	}
	asset := c.cols.AssetByID(id)
	if asset == nil {
		c.toastError(fmt.Sprintf("no asset #%d (try 'reload')", id))
	}
	return asset, nil
}

func (c *Console) parseID(args []string) (int64, bool) {
	if len(args) == 0 {
		c.toastError("missing id")
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		c.toastError("bad id: " + args[0])
		return 0, false
	}
	return id, true
}

// promptSignal collects the signal fields, showing current values as
// defaults that an empty input keeps.
func (c *Console) promptSignal(def pkgapi.SignalPayload) (pkgapi.SignalPayload, error) {
	var out pkgapi.SignalPayload
	var err error

	if out.FrequencyFrom, err = c.readFloat("Frequency from", def.FrequencyFrom); err != nil {
		return out, err
	}
	if out.FrequencyTo, err = c.readFloat("Frequency to", def.FrequencyTo); err != nil {
		return out, err
	}
	if out.Modulation, err = c.readString("Modulation", def.Modulation); err != nil {
		return out, err
	}
	if out.Power, err = c.readFloat("Power", def.Power); err != nil {
		return out, err
	}
	return out, nil
}

func (c *Console) promptAssetFields(defName, defDesc string) (string, string, error) {
	name, err := c.readString("Name", defName)
	if err != nil {
		return "", "", err
	}
	desc, err := c.readString("Description", defDesc)
	if err != nil {
		return "", "", err
	}
	return name, desc, nil
}

func (c *Console) readString(label, def string) (string, error) {
	input, err := c.io.ReadInput(fmt.Sprintf("%s [%s]: ", label, def))
	if err != nil {
		return "", err
	}
	if input == "" {
		return def, nil
	}
	return input, nil
}

func (c *Console) readFloat(label string, def float64) (float64, error) {
	for {
		input, err := c.io.ReadInput(fmt.Sprintf("%s [%g]: ", label, def))
		if err != nil {
			return 0, err
		}
		if input == "" {
			return def, nil
		}
		v, err := strconv.ParseFloat(input, 64)
		if err != nil {
			c.toastError("not a number: " + input)
			continue
		}
		return v, nil
	}
}
