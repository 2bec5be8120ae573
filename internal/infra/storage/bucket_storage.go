// Package storage stores uploaded files in gocloud.dev blob buckets.
package storage

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"

	deliverycontext "smartfit/internal/delivery/context"
	domainerrors "smartfit/internal/domain/errors"
	"smartfit/internal/domain/service"
	"smartfit/internal/errors"
	"smartfit/internal/util"

	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

// Bucket is one namespace's bucket and the base URL its objects are served from.
type Bucket struct {
	Bucket  *blob.Bucket
	BaseURL string
}

// bucketStorage implements service.FileStorage with one bucket per namespace.
type bucketStorage struct {
	buckets  map[service.Namespace]Bucket
	maxBytes int64
	logger   *slog.Logger
}

// NewBucketStorage creates a FileStorage over already opened buckets.
// A maxBytes of zero disables the upload size check.
func NewBucketStorage(buckets map[service.Namespace]Bucket, maxBytes int64, logger *slog.Logger) service.FileStorage {
	return &bucketStorage{buckets: buckets, maxBytes: maxBytes, logger: logger}
}

func (s *bucketStorage) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *bucketStorage) bucket(namespace service.Namespace) (Bucket, error) {
	b, ok := s.buckets[namespace]
	if !ok {
		return Bucket{}, domainerrors.ErrValidationFailed.WithDetails("unknown storage namespace: " + string(namespace))
	}

	return b, nil
}

func (s *bucketStorage) fail(ctx context.Context, op string, namespace service.Namespace, key string, err error) error {
	s.log(ctx).Error("Storage call failed",
		slog.String("op", op),
		slog.String("namespace", string(namespace)),
		slog.String("key", key),
		slog.Any("error", err),
	)

	return domainerrors.NewStorageError(err, string(namespace)+"/"+key)
}

func (s *bucketStorage) AddFile(ctx context.Context, namespace service.Namespace, path string, content []byte, contentType string) (string, error) {
	b, err := s.bucket(namespace)
	if err != nil {
		return "", err
	}
	if err := validKey(path); err != nil {
		return "", err
	}
	if len(content) == 0 {
		return "", domainerrors.ErrValidationFailed.WithDetails("file is empty")
	}
	if s.maxBytes > 0 && int64(len(content)) > s.maxBytes {
		return "", domainerrors.ErrFileTooLarge.WithDetails(
			path + " is " + util.FormatBytes(int64(len(content))) + ", the limit is " + util.FormatBytes(s.maxBytes))
	}

	if err := b.Bucket.WriteAll(ctx, path, content, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return "", s.fail(ctx, "write", namespace, path, err)
	}

	s.log(ctx).Info("File stored",
		slog.String("namespace", string(namespace)),
		slog.String("key", path),
		slog.Int("size", len(content)),
	)

	return publicURL(b.BaseURL, path), nil
}

func (s *bucketStorage) DeleteFile(ctx context.Context, namespace service.Namespace, path string) error {
	b, err := s.bucket(namespace)
	if err != nil {
		return err
	}
	if err := validKey(path); err != nil {
		return err
	}

	if err := b.Bucket.Delete(ctx, path); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return s.fail(ctx, "delete", namespace, path, err)
	}

	return nil
}

func (s *bucketStorage) DeleteURL(ctx context.Context, namespace service.Namespace, fileURL string) error {
	b, err := s.bucket(namespace)
	if err != nil {
		return err
	}

	key, ok := keyFromURL(b.BaseURL, fileURL)
	if !ok {
		return domainerrors.ErrValidationFailed.WithDetails("url does not belong to " + string(namespace) + " storage")
	}

	return s.DeleteFile(ctx, namespace, key)
}

func (s *bucketStorage) ListFiles(ctx context.Context, namespace service.Namespace, prefix string) ([]service.StoredFile, error) {
	b, err := s.bucket(namespace)
	if err != nil {
		return nil, err
	}

	files := []service.StoredFile{}
	iter := b.Bucket.List(&blob.ListOptions{Prefix: prefix})
	for {
		obj, err := iter.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, s.fail(ctx, "list", namespace, prefix, err)
		}
		if obj.IsDir {
			continue
		}

		file := service.StoredFile{Path: obj.Key, URL: publicURL(b.BaseURL, obj.Key), Size: obj.Size}
		if attrs, err := b.Bucket.Attributes(ctx, obj.Key); err == nil {
			file.ContentType = attrs.ContentType
		}
		files = append(files, file)
	}

	return files, nil
}

func validKey(key string) error {
	if key == "" || strings.HasPrefix(key, "/") || strings.HasSuffix(key, "/") {
		return domainerrors.ErrValidationFailed.WithDetails("invalid file path: " + key)
	}
	for _, seg := range strings.Split(key, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return domainerrors.ErrValidationFailed.WithDetails("invalid file path: " + key)
		}
	}

	return nil
}

// publicURL joins base and key, escaping each key segment.
func publicURL(base, key string) string {
	segments := strings.Split(key, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}

	return strings.TrimRight(base, "/") + "/" + strings.Join(segments, "/")
}

func keyFromURL(base, fileURL string) (string, bool) {
	prefix := strings.TrimRight(base, "/") + "/"
	if !strings.HasPrefix(fileURL, prefix) {
		return "", false
	}

	rest := strings.TrimPrefix(fileURL, prefix)
	if i := strings.IndexAny(rest, "?#"); i >= 0 {
		rest = rest[:i]
	}

	key, err := url.PathUnescape(rest)
	if err != nil || validKey(key) != nil {
		return "", false
	}

	return key, true
}
