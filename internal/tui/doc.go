// Package tui contains the terminal user interface of cloudboard.
//
// The dashboard is built on the Bubble Tea framework and split along
// Model-View-Controller lines:
//
//   - model (internal/tui/model): the Model struct holding catalog, search,
//     filter, hover and ingestion state, the message types, and the async
//     commands that resolve detection calls into messages.
//   - view (internal/tui/view): pure render functions from the Model to
//     strings, one per panel (share chart, pills, company grid, overlays).
//   - controller (internal/tui/controller): the program bootstrap and the
//     central Update dispatch routing key, window and result messages into
//     model transitions.
//
// components holds the reusable panel/header/statusbar builders, design the
// color palette and spacing constants, and utils small rune-width aware
// string helpers used by the views.
package tui
