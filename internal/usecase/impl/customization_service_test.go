package impl

import (
	"context"
	"strings"
	"testing"

	"smartfit/internal/domain/entity"
	domainerrors "smartfit/internal/domain/errors"
	"smartfit/internal/domain/service"
	"smartfit/internal/errors"
	mockRepo "smartfit/internal/mocks/repository"
	mockSvc "smartfit/internal/mocks/service"
	"smartfit/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type customizationServiceFixtures struct {
	service     usecase.CustomizationUsecase
	arModelRepo *mockRepo.MockARModelRepository
	storage     *mockSvc.MockFileStorage
}

func createTestCustomizationService(t *testing.T) customizationServiceFixtures {
	arModelRepo := mockRepo.NewMockARModelRepository(t)
	storage := mockSvc.NewMockFileStorage(t)

	srv := NewCustomizationService(CustomizationServiceParams{
		ARModelRepo: arModelRepo,
		Storage:     storage,
		Logger:      discardLogger(),
	})

	return customizationServiceFixtures{service: srv, arModelRepo: arModelRepo, storage: storage}
}

func png(name string) usecase.FileUpload {
	return usecase.FileUpload{Filename: name + ".PNG", ContentType: "image/png", Content: []byte(name)}
}

func TestCustomizationService_ListModels(t *testing.T) {
	fx := createTestCustomizationService(t)
	fx.arModelRepo.EXPECT().FindExtension(mock.Anything, entity.ModelClassic).Return(&entity.ARModelExtension{
		BodyColors: map[string]entity.BodyColor{
			"red": {Images: entity.ColorImages{Main: "m", Front: "f", Side: "s", Back: "b"}, DeepARFile: "d"},
			"blue": {Images: entity.ColorImages{Main: "m"}},
		},
	}, nil)
	fx.arModelRepo.EXPECT().FindExtension(mock.Anything, entity.ModelRunner).Return(&entity.ARModelExtension{}, nil)
	fx.arModelRepo.EXPECT().FindExtension(mock.Anything, entity.ModelBasketball).Return(&entity.ARModelExtension{}, nil)

	models, err := fx.service.ListModels(context.Background())
	require.NoError(t, err)
	require.Len(t, models, 3)
	assert.Equal(t, entity.ModelClassic, models[0].ID)
	assert.True(t, models[0].Colors["red"].Complete)
	assert.Equal(t, []string{"front", "side", "back", "deepARFile"}, models[0].Colors["blue"].Missing)
	assert.Empty(t, models[1].Colors)
}

func TestCustomizationService_UploadBodyColor_PartialFailure(t *testing.T) {
	fx := createTestCustomizationService(t)
	ctx := context.Background()

	fx.arModelRepo.EXPECT().FindExtension(ctx, entity.ModelClassic).Return(&entity.ARModelExtension{}, nil).Once()

	fx.storage.EXPECT().
		AddFile(mock.Anything, service.NamespaceAssets, mock.MatchedBy(func(p string) bool {
			return strings.HasPrefix(p, "ar_models/classic/red/main-") && strings.HasSuffix(p, ".png")
		}), []byte("main"), "image/png").
		Return("https://cdn/main.png", nil)
	fx.storage.EXPECT().
		AddFile(mock.Anything, service.NamespaceDeepAR, mock.MatchedBy(func(p string) bool {
			return strings.HasPrefix(p, "ar_models/classic/red/deepARFile-") && strings.HasSuffix(p, ".deepar")
		}), mock.Anything, mock.Anything).
		Return("https://cdn/red.deepar", nil)
	fx.storage.EXPECT().
		AddFile(mock.Anything, service.NamespaceAssets, mock.MatchedBy(func(p string) bool {
			return strings.HasPrefix(p, "ar_models/classic/red/side-")
		}), mock.Anything, mock.Anything).
		Return("", domainerrors.ErrFileTooLarge)

	fx.arModelRepo.EXPECT().
		MergeBodyColor(ctx, entity.ModelClassic, "red", map[string]string{
			"main":       "https://cdn/main.png",
			"deepARFile": "https://cdn/red.deepar",
		}).
		Return(nil)
	fx.arModelRepo.EXPECT().FindExtension(ctx, entity.ModelClassic).Return(&entity.ARModelExtension{
		BodyColors: map[string]entity.BodyColor{
			"red": {Images: entity.ColorImages{Main: "https://cdn/main.png"}, DeepARFile: "https://cdn/red.deepar"},
		},
	}, nil).Once()

	result, err := fx.service.UploadBodyColor(ctx, admin, entity.ModelClassic, "red", map[string]usecase.FileUpload{
		"main":       png("main"),
		"side":       png("side"),
		"deepARFile": {Filename: "red.deepar", Content: []byte("effect")},
	})
	require.NoError(t, err)
	assert.Len(t, result.Uploaded, 2)
	assert.Contains(t, result.Failed, "side")
	assert.False(t, result.Completeness.Complete)
	assert.Equal(t, []string{"front", "side", "back"}, result.Completeness.Missing)
}

func TestCustomizationService_UploadBodyColor_MergeFailureRemovesFiles(t *testing.T) {
	fx := createTestCustomizationService(t)

	fx.arModelRepo.EXPECT().FindExtension(mock.Anything, entity.ModelRunner).Return(&entity.ARModelExtension{
		BodyColors: map[string]entity.BodyColor{"red": {Images: entity.ColorImages{Main: "https://cdn/main-old.png"}}},
	}, nil)
	fx.storage.EXPECT().AddFile(mock.Anything, service.NamespaceAssets, mock.Anything, mock.Anything, mock.Anything).
		Return("https://cdn/main.png", nil)
	fx.arModelRepo.EXPECT().MergeBodyColor(mock.Anything, entity.ModelRunner, "red", mock.Anything).
		Return(errors.New("PERMISSION_DENIED"))
	fx.storage.EXPECT().DeleteURL(mock.Anything, service.NamespaceAssets, "https://cdn/main.png").Return(nil)

	_, err := fx.service.UploadBodyColor(context.Background(), admin, entity.ModelRunner, "red",
		map[string]usecase.FileUpload{"main": png("main")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PERMISSION_DENIED")
}

func TestCustomizationService_UploadBodyColor_RemovesSupersededFiles(t *testing.T) {
	fx := createTestCustomizationService(t)
	ctx := context.Background()

	before := entity.BodyColor{
		Images:     entity.ColorImages{Main: "https://cdn/main-old.png", Front: "https://cdn/front.png"},
		DeepARFile: "https://cdn/red-old.deepar",
	}
	after := entity.BodyColor{
		Images:     entity.ColorImages{Main: "https://cdn/main-new.png", Front: "https://cdn/front.png"},
		DeepARFile: "https://cdn/red-new.deepar",
	}
	fx.arModelRepo.EXPECT().FindExtension(ctx, entity.ModelClassic).
		Return(&entity.ARModelExtension{BodyColors: map[string]entity.BodyColor{"red": before}}, nil).Once()

	fx.storage.EXPECT().AddFile(mock.Anything, service.NamespaceAssets, mock.MatchedBy(func(p string) bool {
		return strings.HasPrefix(p, "ar_models/classic/red/main-")
	}), mock.Anything, mock.Anything).Return("https://cdn/main-new.png", nil)
	fx.storage.EXPECT().AddFile(mock.Anything, service.NamespaceAssets, mock.MatchedBy(func(p string) bool {
		return strings.HasPrefix(p, "ar_models/classic/red/front-")
	}), mock.Anything, mock.Anything).Return("https://cdn/front.png", nil)
	fx.storage.EXPECT().AddFile(mock.Anything, service.NamespaceDeepAR, mock.Anything, mock.Anything, mock.Anything).
		Return("https://cdn/red-new.deepar", nil)
	fx.arModelRepo.EXPECT().MergeBodyColor(ctx, entity.ModelClassic, "red", mock.Anything).Return(nil)

	fx.storage.EXPECT().DeleteURL(ctx, service.NamespaceAssets, "https://cdn/main-old.png").Return(nil).Once()
	fx.storage.EXPECT().DeleteURL(ctx, service.NamespaceDeepAR, "https://cdn/red-old.deepar").Return(errors.New("timeout")).Once()

	fx.arModelRepo.EXPECT().FindExtension(ctx, entity.ModelClassic).
		Return(&entity.ARModelExtension{BodyColors: map[string]entity.BodyColor{"red": after}}, nil).Once()

	result, err := fx.service.UploadBodyColor(ctx, admin, entity.ModelClassic, "red", map[string]usecase.FileUpload{
		"main":       png("main v2"),
		"front":      png("front"),
		"deepARFile": {Filename: "red.deepar", Content: []byte("effect v2")},
	})
	require.NoError(t, err)
	assert.Equal(t, after, result.Color)
	fx.storage.AssertNotCalled(t, "DeleteURL", mock.Anything, service.NamespaceAssets, "https://cdn/front.png")
}

func TestCustomizationService_UploadBodyColor_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		actor   entity.Actor
		model   entity.ARModelID
		color   string
		files   map[string]usecase.FileUpload
		wantErr error
	}{
		{
			name:    "not admin",
			actor:   entity.Actor{UserID: "shop-1", Role: entity.RoleShopOwner, ShopID: "shop-1"},
			model:   entity.ModelClassic,
			color:   "red",
			files:   map[string]usecase.FileUpload{"main": png("main")},
			wantErr: domainerrors.ErrForbidden,
		},
		{
			name:    "unknown model",
			actor:   admin,
			model:   "sandal",
			color:   "red",
			files:   map[string]usecase.FileUpload{"main": png("main")},
			wantErr: domainerrors.ErrModelNotFound,
		},
		{
			name:    "bad color key",
			actor:   admin,
			model:   entity.ModelClassic,
			color:   "red/blue",
			files:   map[string]usecase.FileUpload{"main": png("main")},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "unknown asset",
			actor:   admin,
			model:   entity.ModelClassic,
			color:   "red",
			files:   map[string]usecase.FileUpload{"top": png("top")},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "no files",
			actor:   admin,
			model:   entity.ModelClassic,
			color:   "red",
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCustomizationService(t)

			_, err := fx.service.UploadBodyColor(context.Background(), tt.actor, tt.model, tt.color, tt.files)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestCustomizationService_DeleteBodyColor(t *testing.T) {
	fx := createTestCustomizationService(t)
	ctx := context.Background()

	fx.arModelRepo.EXPECT().FindExtension(ctx, entity.ModelClassic).Return(&entity.ARModelExtension{
		BodyColors: map[string]entity.BodyColor{
			"red": {Images: entity.ColorImages{Main: "https://cdn/main.png"}, DeepARFile: "https://cdn/red.deepar"},
		},
	}, nil)
	fx.arModelRepo.EXPECT().DeleteBodyColor(ctx, entity.ModelClassic, "red").Return(nil)
	fx.storage.EXPECT().DeleteURL(ctx, service.NamespaceAssets, "https://cdn/main.png").Return(nil)
	fx.storage.EXPECT().DeleteURL(ctx, service.NamespaceDeepAR, "https://cdn/red.deepar").Return(errors.New("timeout"))

	warnings, err := fx.service.DeleteBodyColor(ctx, admin, entity.ModelClassic, "red")
	require.NoError(t, err)
	assert.Equal(t, []string{"deepARFile file could not be deleted"}, warnings)
}

func TestCustomizationService_DeleteBodyColor_Missing(t *testing.T) {
	fx := createTestCustomizationService(t)
	fx.arModelRepo.EXPECT().FindExtension(mock.Anything, entity.ModelClassic).Return(&entity.ARModelExtension{}, nil)

	_, err := fx.service.DeleteBodyColor(context.Background(), admin, entity.ModelClassic, "red")
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestCustomizationService_UpsertComponentOption(t *testing.T) {
	fx := createTestCustomizationService(t)
	option := &entity.ComponentOption{Price: 150, Days: 2, Colors: []string{"white"}}
	fx.arModelRepo.EXPECT().SaveComponentOption(mock.Anything, entity.ModelClassic, entity.ComponentLaces, "flat", option).Return(nil)

	require.NoError(t, fx.service.UpsertComponentOption(context.Background(), admin, entity.ModelClassic, entity.ComponentLaces, "flat", option))

	err := fx.service.UpsertComponentOption(context.Background(), admin, entity.ModelClassic, "soles", "flat", option)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	err = fx.service.UpsertComponentOption(context.Background(), admin, entity.ModelClassic, entity.ComponentLaces, "flat",
		&entity.ComponentOption{Price: -1})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
