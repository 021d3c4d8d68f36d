package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/docshare/internal/flagx"
)

// parseFlags populates Config fields from command-line flags and returns
// the -id value, which the caller folds into the page URL.
//
// Only the flags handled here are considered (see flagx.FilterArgs), so -c
// and unknown flags do not interfere.
func parseFlags(cfg *Config, args []string) (string, error) {
	args = flagx.FilterArgs(args, []string{"-a", "-u", "-id", "-d", "-o"})

	fs := flag.NewFlagSet("docshare", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var linkID string
	fs.StringVar(&cfg.APIBase, "a", cfg.APIBase, "base URL of the docshare API")
	fs.StringVar(&cfg.PageURL, "u", cfg.PageURL, "page URL to start on")
	fs.StringVar(&linkID, "id", "", "link ID")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "path of the local database")
	fs.StringVar(&cfg.DownloadDir, "o", cfg.DownloadDir, "download directory")

	if err := fs.Parse(args); err != nil {
		return "", err
	}
	return linkID, nil
}
