// Package localstore is the client's local key/value persistence: the
// upload session identifier shared by all links and, per link, the set of
// file IDs the local user has already opened.
//
// Values live in an SQLite table created by the embedded goose migrations
// (see InitDatabase). Reads and writes are synchronous; there is no
// cross-process notification, so a second client sees changes only after
// it reloads.
package localstore
