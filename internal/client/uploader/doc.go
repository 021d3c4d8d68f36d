// Package uploader implements the upload page: picking files, sending them
// under a share link and handing out the viewer URL.
//
// The Controller owns all page state. Every exported operation mutates it
// under a lock and then fires the OnChange callback so the caller can
// redraw from View.
package uploader
