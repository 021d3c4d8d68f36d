// Package cli provides the interactive docshare terminal clients.
//
// NewUploaderApp and NewViewerApp wire configuration, logging, the local
// SQLite store, the HTTP API client and the platform collaborators into a
// controller, then App.Run drives it from a read-eval-print loop. Every
// command is looked up in the controller's event table; "help" and
// "exit"/"quit" are built in.
package cli
