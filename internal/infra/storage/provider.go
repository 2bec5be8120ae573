package storage

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"smartfit/config"
	"smartfit/internal/domain/service"
	"smartfit/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

// StorageParams holds dependencies for NewFileStorage, injected by Fx
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewFileStorage opens the asset and DeepAR buckets and closes them on stop.
func NewFileStorage(params StorageParams) (service.FileStorage, error) {
	cfg := params.Config.Storage

	assets, err := openBucket(params.Ctx, cfg.AssetsBucketURL, cfg.PublicBaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "open assets bucket")
	}

	deepAR, err := openBucket(params.Ctx, cfg.DeepARBucketURL, cfg.DeepARPublicBaseURL)
	if err != nil {
		_ = assets.Bucket.Close()

		return nil, errors.Wrap(err, "open deepar bucket")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return errors.Join(assets.Bucket.Close(), deepAR.Bucket.Close())
		},
	})

	params.Logger.Info("File storage ready",
		slog.String("assets", cfg.AssetsBucketURL),
		slog.String("deepar", cfg.DeepARBucketURL),
	)

	return NewBucketStorage(map[service.Namespace]Bucket{
		service.NamespaceAssets: assets,
		service.NamespaceDeepAR: deepAR,
	}, cfg.MaxUploadBytes, params.Logger), nil
}

func openBucket(ctx context.Context, bucketURL, baseURL string) (Bucket, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return Bucket{}, errors.WithStack(err)
	}

	if baseURL == "" {
		baseURL = defaultBaseURL(bucketURL)
	}

	return Bucket{Bucket: bucket, BaseURL: baseURL}, nil
}

// defaultBaseURL derives a download base from the bucket URL. GCS buckets use
// the public storage host; other schemes keep their own URL.
func defaultBaseURL(bucketURL string) string {
	u, err := url.Parse(bucketURL)
	if err != nil {
		return strings.TrimRight(bucketURL, "/")
	}

	if u.Scheme == "gs" {
		return "https://storage.googleapis.com/" + u.Host
	}

	return u.Scheme + "://" + strings.TrimRight(u.Host+u.Path, "/")
}

// Module provides the storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewFileStorage),
)
