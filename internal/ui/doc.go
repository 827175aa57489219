// Package ui is a pane-orchestration engine for Bubble Tea programs.
//
// Core abstractions:
//   - Content: the capability interface implemented by anything shown in a pane
//   - Pane: wraps one Content plus its last laid-out rectangle and hover flag
//   - PaneContainer: lays out the panes of one tab, owns resizable Dividers,
//     answers spatial queries (next/prev, left/right/up/down, hit-testing)
//   - Tab: one PaneContainer plus a Footer
//   - Mode: the Layout/Focus interaction state machine
//   - KeyBindings: configurable key-to-action mapping
//   - MasterLayout: tabs, navigation bar, mode and the event-routing protocol
//
// Layout is pull-based: Render recomputes every rectangle from the screen size,
// the arrangement and the divider percentages. Only percentages survive a frame.
package ui
