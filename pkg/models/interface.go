package models

import (
	"context"
	"time"
)

// RemoteFile is the provider-side record of an uploaded file.
// Name is the opaque resource identifier (e.g. "files/abc123") used for
// retrieval and deletion; the rest is metadata reported back by the provider.
type RemoteFile struct {
	Name        string
	DisplayName string
	MIMEType    string
	URI         string
	SizeBytes   int64
	CreateTime  time.Time
	ExpireTime  time.Time
	State       string // PROCESSING|ACTIVE|FAILED as reported by the provider
}

// Agent is the slice of the provider file/generation API the workflow consumes.
type Agent interface {
	UploadFile(ctx context.Context, path, displayName string) (*RemoteFile, error)
	GenerateWithFile(ctx context.Context, prompt string, file *RemoteFile) (string, error)
	GetFile(ctx context.Context, name string) (*RemoteFile, error)
	DeleteFile(ctx context.Context, name string) error
	ListFiles(ctx context.Context) ([]*RemoteFile, error)
}
