package service

import (
	"context"
)

// Namespace selects the bucket a file is stored in.
type Namespace string

const (
	// NamespaceAssets holds product and customization images.
	NamespaceAssets Namespace = "assets"
	// NamespaceDeepAR holds DeepAR effect files.
	NamespaceDeepAR Namespace = "deepar"
)

// StoredFile describes one stored object.
type StoredFile struct {
	Path        string `json:"path"`
	URL         string `json:"url"`
	Size        int64  `json:"size"`
	ContentType string `json:"contentType,omitempty"`
}

// FileStorage stores uploaded files and returns their public URLs.
type FileStorage interface {
	// AddFile stores content at path and returns its download URL.
	AddFile(ctx context.Context, namespace Namespace, path string, content []byte, contentType string) (string, error)

	// DeleteFile removes the file at path. Deleting a missing file is not an error.
	DeleteFile(ctx context.Context, namespace Namespace, path string) error

	// DeleteURL removes the file a previously returned URL points at.
	DeleteURL(ctx context.Context, namespace Namespace, url string) error

	// ListFiles lists files under prefix.
	ListFiles(ctx context.Context, namespace Namespace, prefix string) ([]StoredFile, error)
}
