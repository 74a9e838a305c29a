// Package router turns navigation fragments into screens. A fragment has no
// structure beyond '/'-separated segments; anything unrecognized lands on
// the main screen.
package router

import (
	"context"
	"strconv"
	"strings"
)

// Screen identifies one of the fixed set of views. Exactly one screen is
// visible at a time and entering a screen always re-fetches its data.
type Screen int

const (
	ScreenMain Screen = iota
	ScreenTrash
	ScreenChanges
	ScreenVersions
)

func (s Screen) String() string {
	switch s {
	case ScreenMain:
		return "main"
	case ScreenTrash:
		return "trash"
	case ScreenChanges:
		return "changes"
	case ScreenVersions:
		return "versions"
	default:
		return "unknown"
	}
}

// Route is a parsed navigation target. EntityType and EntityID are only
// meaningful for ScreenVersions.
type Route struct {
	Screen     Screen
	EntityType string
	EntityID   int64
}

// Parse splits the fragment on '/', drops empty segments and resolves the
// screen. A versions route with a non-numeric id is a routing failure and
// falls back to the main screen.
func Parse(fragment string) Route {
	fragment = strings.TrimPrefix(strings.TrimSpace(fragment), "#")

	var parts []string
	for _, p := range strings.Split(fragment, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}

	if len(parts) == 0 {
		return Route{Screen: ScreenMain}
	}

	switch parts[0] {
	case "trash":
		return Route{Screen: ScreenTrash}
	case "changes":
		return Route{Screen: ScreenChanges}
	case "versions":
		if len(parts) >= 3 {
			id, err := strconv.ParseInt(parts[2], 10, 64)
			if err != nil {
				return Route{Screen: ScreenMain}
			}
			return Route{Screen: ScreenVersions, EntityType: parts[1], EntityID: id}
		}
		return Route{Screen: ScreenMain}
	default:
		return Route{Screen: ScreenMain}
	}
}

// Loader is implemented by the console: one loader per screen, each of which
// fetches fresh data on entry.
type Loader interface {
	ShowMain(ctx context.Context) error
	ShowTrash(ctx context.Context) error
	ShowChanges(ctx context.Context) error
	ShowVersions(ctx context.Context, entityType string, entityID int64) error
}

// Dispatch runs exactly one screen loader for the route.
func Dispatch(ctx context.Context, r Route, l Loader) error {
	switch r.Screen {
	case ScreenTrash:
		return l.ShowTrash(ctx)
	case ScreenChanges:
		return l.ShowChanges(ctx)
	case ScreenVersions:
		return l.ShowVersions(ctx, r.EntityType, r.EntityID)
	default:
		return l.ShowMain(ctx)
	}
}
