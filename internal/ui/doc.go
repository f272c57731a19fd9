// Package ui contains the Bubble Tea program for the dual-pane browser.
//
// Message flow:
//   - Bubble Tea invokes Model.Update, which looks the message up in a typed
//     handler registry.
//   - Key presses go through Route. An open overlay (text input, search line
//     or bookmark list) receives every key; otherwise the source pane gets
//     the first chance and the global key table the second. Route yields at
//     most one action.Action.
//   - Apply dispatches the action: the source pane applies its local part,
//     then the model performs the global part (switching panes, changing
//     directories, opening overlays, submitting jobs, launching commands).
//
// Background work:
//   - Copy, move and delete run on a jobs.Runner. Completions come back as
//     jobResultMsg, which updates the status row and refreshes both panes.
//   - An optional backend.Watcher reports filesystem changes in the listed
//     directories; the affected panes are re-listed.
//   - Exec and edit commands run through the command bus and report failures
//     on the status row.
package ui
