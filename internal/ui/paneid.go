package ui

import (
	"strconv"
	"sync/atomic"
)

// PaneID identifies a pane for lookup and equality. IDs are never reused.
type PaneID uint64

// NoPane is the zero PaneID; no pane ever carries it.
const NoPane PaneID = 0

var lastPaneID atomic.Uint64

// NewPaneID returns a fresh process-wide unique id.
func NewPaneID() PaneID {
	return PaneID(lastPaneID.Add(1))
}

func (id PaneID) String() string {
	if id == NoPane {
		return "none"
	}
	return "pane-" + strconv.FormatUint(uint64(id), 10)
}
