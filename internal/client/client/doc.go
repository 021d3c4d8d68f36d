// Package client talks to the document sharing API.
//
// # Overview
//
// Client is the transport-agnostic contract used by the uploader and viewer
// controllers; HTTPClient implements it over the JSON/multipart HTTP API:
//
//	POST {base}/upload/{linkId}   multipart: customer_name, session_id, files...
//	GET  {base}/files/{linkId}    manifest of files grouped by customer
//
// and fetches raw file bytes from the signed download URLs the manifest
// carries.
//
// # Error Handling
//
// Non-2xx responses are returned as *APIError carrying the status and the
// server's "detail" message when present; match with errors.As. Transport
// failures wrap ErrUnavailable; match with errors.Is.
//
// No timeouts are imposed beyond the caller's context.
package client
