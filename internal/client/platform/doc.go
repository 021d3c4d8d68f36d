// Package platform stands in for the browser surface the controllers were
// written against: the page location, blocking alerts, the clipboard, new
// windows and tabs, and saving downloaded bytes. Each concern is a small
// interface with a system implementation for the terminal clients; tests
// substitute fakes.
package platform
