// Package viewer implements the share page: it loads a link's manifest,
// groups files by customer and tracks which files the local user has
// already opened.
package viewer
