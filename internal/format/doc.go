// Package format holds the pure presentation helpers shared by the uploader
// and the viewer: byte sizes, file-type icons, avatar initials, countdowns
// and timestamps. Nothing here touches state or I/O.
package format
