// Package models defines the wire and in-memory types shared by the
// docshare clients: the file manifest served for a link, upload results and
// the pending file handles picked by the user.
package models
