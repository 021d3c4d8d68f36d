//go:build !unix

package cli

import "context"

func watchVisibility(ctx context.Context, fn func()) (stop func()) {
	return func() {}
}
