package client

import (
	"context"

	"github.com/dmitrijs2005/docshare/internal/client/models"
)

type Client interface {
	Upload(ctx context.Context, linkID string, req models.UploadRequest) (*models.UploadResult, error)
	Files(ctx context.Context, linkID string) (*models.Manifest, error)
	Fetch(ctx context.Context, url string) ([]byte, error)
}
