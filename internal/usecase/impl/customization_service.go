package impl

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"path"
	"slices"
	"strings"
	"sync"

	deliverycontext "smartfit/internal/delivery/context"
	"smartfit/internal/domain/entity"
	domainerrors "smartfit/internal/domain/errors"
	"smartfit/internal/domain/repository"
	"smartfit/internal/domain/service"
	"smartfit/internal/errors"
	"smartfit/internal/usecase"
	"smartfit/internal/util"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const uploadConcurrency = 3

type customizationService struct {
	arModelRepo repository.ARModelRepository
	storage     service.FileStorage
	logger      *slog.Logger
}

// CustomizationServiceParams holds dependencies for CustomizationService, injected by Fx.
type CustomizationServiceParams struct {
	fx.In

	ARModelRepo repository.ARModelRepository
	Storage     service.FileStorage
	Logger      *slog.Logger
}

// NewCustomizationService creates the AR model management service.
func NewCustomizationService(params CustomizationServiceParams) usecase.CustomizationUsecase {
	return &customizationService{
		arModelRepo: params.ARModelRepo,
		storage:     params.Storage,
		logger:      params.Logger,
	}
}

func (srv *customizationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *customizationService) ListModels(ctx context.Context) ([]*entity.ARModel, error) {
	bases := entity.BaseModels()
	models := make([]*entity.ARModel, len(bases))

	g, gctx := errgroup.WithContext(ctx)
	for i, base := range bases {
		g.Go(func() error {
			ext, err := srv.arModelRepo.FindExtension(gctx, base.ID)
			if err != nil {
				return errors.Wrapf(err, "find extension of %s", base.ID)
			}

			model := &entity.ARModel{BaseModel: base, ARModelExtension: *ext}
			model.Colors = make(map[string]entity.ColorCompleteness, len(ext.BodyColors))
			for key, color := range ext.BodyColors {
				model.Colors[key] = color.Completeness()
			}
			models[i] = model

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return models, nil
}

// UploadBodyColor stores every file it was given, merges the URLs that made it
// and reports the ones that did not. Stored files are removed again when the
// merge fails; files the merge replaced are removed once it succeeds.
func (srv *customizationService) UploadBodyColor(
	ctx context.Context,
	actor entity.Actor,
	modelID entity.ARModelID,
	colorKey string,
	files map[string]usecase.FileUpload,
) (*usecase.BodyColorUploadResult, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if _, ok := entity.FindBaseModel(modelID); !ok {
		return nil, domainerrors.ErrModelNotFound.WithDetails(string(modelID))
	}
	if err := checkKey("color key", colorKey); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("no files to upload")
	}
	for asset, file := range files {
		if !isAsset(asset) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown asset " + asset)
		}
		if len(file.Content) == 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails(asset + " is empty")
		}
	}

	current, err := srv.arModelRepo.FindExtension(ctx, modelID)
	if err != nil {
		return nil, errors.Wrapf(err, "find extension of %s", modelID)
	}
	previous := colorAssets(current.BodyColors[colorKey])

	var (
		mu       sync.Mutex
		uploaded = map[string]string{}
		failures = map[string]error{}
	)
	g := new(errgroup.Group)
	g.SetLimit(uploadConcurrency)
	for asset, file := range files {
		g.Go(func() error {
			url, err := srv.storage.AddFile(ctx, assetNamespace(asset), assetPath(modelID, colorKey, asset, file), file.Content, file.ContentType)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures[asset] = err
			} else {
				uploaded[asset] = url
			}

			return nil
		})
	}
	_ = g.Wait()

	if len(uploaded) == 0 {
		return nil, errors.Wrap(firstFailure(failures), "upload body color assets")
	}

	if err := srv.arModelRepo.MergeBodyColor(ctx, modelID, colorKey, uploaded); err != nil {
		for asset, url := range uploaded {
			if delErr := srv.storage.DeleteURL(ctx, assetNamespace(asset), url); delErr != nil {
				srv.log(ctx).Warn("Failed to remove orphaned upload",
					slog.String("url", url),
					slog.Any("error", delErr),
				)
			}
		}

		return nil, errors.Wrapf(err, "record body color %s/%s", modelID, colorKey)
	}
	srv.removeSuperseded(ctx, previous, uploaded)

	ext, err := srv.arModelRepo.FindExtension(ctx, modelID)
	if err != nil {
		return nil, errors.Wrapf(err, "find extension of %s", modelID)
	}
	color := ext.BodyColors[colorKey]

	result := &usecase.BodyColorUploadResult{
		Color:        color,
		Completeness: color.Completeness(),
		Uploaded:     uploaded,
	}
	if len(failures) > 0 {
		result.Failed = make(map[string]string, len(failures))
		for asset, err := range failures {
			result.Failed[asset] = err.Error()
		}
	}

	srv.log(ctx).Info("Body color assets uploaded",
		slog.String("model", string(modelID)),
		slog.String("color", colorKey),
		slog.Int("uploaded", len(uploaded)),
		slog.Int("failed", len(failures)),
		slog.Bool("complete", result.Completeness.Complete),
	)

	return result, nil
}

// removeSuperseded deletes the files of assets whose URL was replaced. A
// re-upload of identical content keeps its URL and is left alone.
func (srv *customizationService) removeSuperseded(ctx context.Context, previous, uploaded map[string]string) {
	for asset, url := range uploaded {
		old, ok := previous[asset]
		if !ok || old == url {
			continue
		}
		if err := srv.storage.DeleteURL(ctx, assetNamespace(asset), old); err != nil {
			srv.log(ctx).Warn("Failed to remove superseded body color file",
				slog.String("asset", asset),
				slog.String("url", old),
				slog.Any("error", err),
			)
		}
	}
}

func (srv *customizationService) DeleteBodyColor(ctx context.Context, actor entity.Actor, modelID entity.ARModelID, colorKey string) ([]string, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if _, ok := entity.FindBaseModel(modelID); !ok {
		return nil, domainerrors.ErrModelNotFound.WithDetails(string(modelID))
	}
	if err := checkKey("color key", colorKey); err != nil {
		return nil, err
	}

	ext, err := srv.arModelRepo.FindExtension(ctx, modelID)
	if err != nil {
		return nil, errors.Wrapf(err, "find extension of %s", modelID)
	}
	color, ok := ext.BodyColors[colorKey]
	if !ok {
		return nil, domainerrors.ErrNotFound.WithDetails("body color " + colorKey)
	}

	if err := srv.arModelRepo.DeleteBodyColor(ctx, modelID, colorKey); err != nil {
		return nil, errors.Wrapf(err, "delete body color %s/%s", modelID, colorKey)
	}

	var warnings []string
	for asset, url := range colorAssets(color) {
		if err := srv.storage.DeleteURL(ctx, assetNamespace(asset), url); err != nil {
			srv.log(ctx).Warn("Failed to delete body color file",
				slog.String("asset", asset),
				slog.String("url", url),
				slog.Any("error", err),
			)
			warnings = append(warnings, asset+" file could not be deleted")
		}
	}
	slices.Sort(warnings)

	srv.log(ctx).Info("Body color deleted", slog.String("model", string(modelID)), slog.String("color", colorKey))

	return warnings, nil
}

func (srv *customizationService) UpsertComponentOption(
	ctx context.Context,
	actor entity.Actor,
	modelID entity.ARModelID,
	kind entity.ComponentKind,
	optionID string,
	option *entity.ComponentOption,
) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if _, ok := entity.FindBaseModel(modelID); !ok {
		return domainerrors.ErrModelNotFound.WithDetails(string(modelID))
	}
	if !kind.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown component " + string(kind))
	}
	if err := checkKey("option id", optionID); err != nil {
		return err
	}
	if option == nil {
		return domainerrors.ErrValidationFailed.WithDetails("option is required")
	}
	if option.Price < 0 || option.Days < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("price and days must not be negative")
	}

	if err := srv.arModelRepo.SaveComponentOption(ctx, modelID, kind, optionID, option); err != nil {
		return errors.Wrapf(err, "save %s option %s", kind, optionID)
	}

	return nil
}

func isAsset(name string) bool {
	return name == entity.AssetDeepAR || slices.Contains(entity.ImageAssets(), name)
}

func assetNamespace(asset string) service.Namespace {
	if asset == entity.AssetDeepAR {
		return service.NamespaceDeepAR
	}

	return service.NamespaceAssets
}

// assetPath names an upload after its asset and content checksum.
func assetPath(modelID entity.ARModelID, colorKey, asset string, file usecase.FileUpload) string {
	ext := strings.ToLower(path.Ext(file.Filename))
	if ext == "" {
		if exts, _ := mime.ExtensionsByType(file.ContentType); len(exts) > 0 {
			ext = exts[0]
		}
	}

	return fmt.Sprintf("ar_models/%s/%s/%s-%s%s", modelID, colorKey, asset, util.ContentChecksum(file.Content, 8), ext)
}

func colorAssets(color entity.BodyColor) map[string]string {
	assets := map[string]string{}
	for name, url := range map[string]string{
		entity.AssetMain:   color.Images.Main,
		entity.AssetFront:  color.Images.Front,
		entity.AssetSide:   color.Images.Side,
		entity.AssetBack:   color.Images.Back,
		entity.AssetDeepAR: color.DeepARFile,
	} {
		if url != "" {
			assets[name] = url
		}
	}

	return assets
}

func firstFailure(failures map[string]error) error {
	keys := make([]string, 0, len(failures))
	for key := range failures {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	if len(keys) == 0 {
		return errors.New("no files were stored")
	}

	return errors.Wrap(failures[keys[0]], keys[0])
}

// checkKey rejects keys that cannot be used as a single document path segment.
func checkKey(what, key string) error {
	if strings.TrimSpace(key) == "" {
		return domainerrors.ErrValidationFailed.WithDetails(what + " is required")
	}
	if strings.ContainsAny(key, "/.#$[]") {
		return domainerrors.ErrValidationFailed.WithDetails(what + " must not contain / . # $ [ ]")
	}

	return nil
}
