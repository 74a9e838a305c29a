package console

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// ShowMain fetches both collections and redraws the main screen. Picker
// state from the previous render is discarded: the widgets belong to the
// rendered snapshot, not to the records.
func (c *Console) ShowMain(ctx context.Context) error {
	if !c.requireAuth() {
		return nil
	}

	cols, err := c.records.FetchAll(ctx)
	if err != nil {
		return err
	}
	c.cols = cols
	c.pickers.Reset()

	c.io.Println(styles.Header.Render("Signals"))
	if len(cols.Signals) == 0 {
		c.muted("  (none)")
	}
	for i := range cols.Signals {
		s := &cols.Signals[i]
		c.io.Printf("  %s\n", s.Label())
		c.io.Printf("    %s\n", styles.Muted.Render(
			fmt.Sprintf("created by %s | updated by %s | v%d", s.CreatedBy, s.UpdatedBy, s.LockVersion)))
	}

	c.io.Println()
	c.io.Println(styles.Header.Render("Assets"))
	if len(cols.Assets) == 0 {
		c.muted("  (none)")
	}
	for i := range cols.Assets {
		a := &cols.Assets[i]
		c.io.Printf("  #%d | %s | signals: %s\n", a.ID, a.Name, formatIDs(a.SignalIDs))
		if a.Description != "" {
			c.io.Printf("    %s\n", styles.Muted.Render(a.Description))
		}
		c.io.Printf("    %s\n", styles.Muted.Render(
			fmt.Sprintf("created by %s | updated by %s | v%d", a.CreatedBy, a.UpdatedBy, a.LockVersion)))
	}
	c.io.Println()
	return nil
}

// ShowTrash renders the read-only list of soft-deleted records.
func (c *Console) ShowTrash(ctx context.Context) error {
	if !c.requireAuth() {
		return nil
	}

	entries, err := c.viewer.ListTrash(ctx)
	if err != nil {
		return err
	}

	c.io.Println(styles.Header.Render("Trash"))
	if len(entries) == 0 {
		c.muted("  (empty)")
	}
	for _, e := range entries {
		c.io.Printf("  %s #%d | %s | deleted by %s at %s\n",
			e.EntityType, e.ID, e.Name, e.DeletedBy, e.DeletedAt)
	}
	c.io.Println()
	return nil
}

// ShowChanges renders the change feed in the order the backend serves it.
func (c *Console) ShowChanges(ctx context.Context) error {
	if !c.requireAuth() {
		return nil
	}

	rows, err := c.viewer.ListChanges(ctx)
	if err != nil {
		return err
	}

	c.io.Println(styles.Header.Render("Changes"))
	if len(rows) == 0 {
		c.muted("  (no changes)")
	}
	for _, r := range rows {
		c.io.Printf("  %s | %s | %s %s #%d\n", r.ChangedAt, r.ChangedBy, r.Operation, r.EntityType, r.EntityID)
		for _, ch := range r.Changes {
			c.io.Printf("    %s\n", styles.Muted.Render(ch))
		}
	}
	c.io.Println()
	return nil
}

// ShowVersions renders the version history of one record. Snapshots are
// pretty-printed; the hash is shown exactly as served since the backend
// owns its verification.
func (c *Console) ShowVersions(ctx context.Context, entityType string, entityID int64) error {
	if !c.requireAuth() {
		return nil
	}

	versions, err := c.viewer.ListVersions(ctx, entityType, entityID)
	if err != nil {
		return err
	}

	c.io.Println(styles.Header.Render(fmt.Sprintf("Versions: %s #%d", entityType, entityID)))
	if len(versions) == 0 {
		c.muted("  (no history)")
	}
	for _, v := range versions {
		c.io.Printf("  v%d | %s | by %s at %s\n", v.Version, v.Operation, v.ChangedBy, v.ChangedAt)
		c.io.Printf("    hash: %s\n", v.Hash)
		if len(v.Snapshot) > 0 {
			var buf bytes.Buffer
			if err := json.Indent(&buf, v.Snapshot, "    ", "  "); err == nil {
				c.io.Printf("    %s\n", buf.String())
			} else {
				c.io.Printf("    %s\n", string(v.Snapshot))
			}
		}
	}
	c.io.Println()
	return nil
}

func formatIDs(ids []int64) string {
	if len(ids) == 0 {
		return "none"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, ", ")
}
