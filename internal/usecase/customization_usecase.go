package usecase

import (
	"context"

	"smartfit/internal/domain/entity"
)

// FileUpload is one uploaded asset.
type FileUpload struct {
	Filename    string
	ContentType string
	Content     []byte
}

// BodyColorUploadResult reports which assets were stored and the color's completeness.
type BodyColorUploadResult struct {
	Color        entity.BodyColor         `json:"color"`
	Completeness entity.ColorCompleteness `json:"completeness"`
	Uploaded     map[string]string        `json:"uploaded"`
	Failed       map[string]string        `json:"failed,omitempty"`
}

// CustomizationUsecase defines AR model management.
type CustomizationUsecase interface {
	// ListModels returns the base models merged with their stored extensions.
	ListModels(ctx context.Context) ([]*entity.ARModel, error)
	// UploadBodyColor stores any subset of a color's assets. Keys of files are
	// asset names (main, front, side, back, deepARFile).
	UploadBodyColor(ctx context.Context, actor entity.Actor, modelID entity.ARModelID, colorKey string, files map[string]FileUpload) (*BodyColorUploadResult, error)
	// DeleteBodyColor removes a color and its stored files. File deletion is best effort.
	DeleteBodyColor(ctx context.Context, actor entity.Actor, modelID entity.ARModelID, colorKey string) ([]string, error)
	UpsertComponentOption(ctx context.Context, actor entity.Actor, modelID entity.ARModelID, kind entity.ComponentKind, optionID string, option *entity.ComponentOption) error
}
