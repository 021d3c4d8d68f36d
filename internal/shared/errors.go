package shared

import "errors"

var (
	// ErrNoLinkID means the page URL carries no ?id= parameter.
	ErrNoLinkID = errors.New("no link id provided")

	// ErrLinkExpired means the server reported the link as expired.
	ErrLinkExpired = errors.New("link expired")
)
