package handler

import (
	"io"
	"mime/multipart"
	"net/http"

	"smartfit/internal/delivery/api/response"
	"smartfit/internal/domain/entity"
	domainerrors "smartfit/internal/domain/errors"
	"smartfit/internal/errors"
	"smartfit/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CustomizationHandlerParams holds dependencies for CustomizationHandler, injected by Fx.
type CustomizationHandlerParams struct {
	fx.In

	CustomizationUC usecase.CustomizationUsecase
}

// CustomizationHandler serves AR model listings and admin asset management.
type CustomizationHandler struct {
	customizationUC usecase.CustomizationUsecase
}

// NewCustomizationHandler is the constructor for CustomizationHandler
func NewCustomizationHandler(params CustomizationHandlerParams) *CustomizationHandler {
	return &CustomizationHandler{customizationUC: params.CustomizationUC}
}

// ListModels returns every base model with its body colors and options.
func (h *CustomizationHandler) ListModels(c echo.Context) error {
	models, err := h.customizationUC.ListModels(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, models)
}

// UploadBodyColor stores the multipart files of one body color. Each form
// field name is the asset it fills.
func (h *CustomizationHandler) UploadBodyColor(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	form, err := c.MultipartForm()
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("expected a multipart form")
	}

	files := make(map[string]usecase.FileUpload, len(form.File))
	for field, headers := range form.File {
		if len(headers) == 0 {
			continue
		}
		upload, err := readUpload(headers[0])
		if err != nil {
			return err
		}
		files[field] = upload
	}

	result, err := h.customizationUC.UploadBodyColor(c.Request().Context(), actor,
		entity.ARModelID(c.Param("modelId")), c.Param("colorKey"), files)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusCreated
	if len(result.Failed) > 0 {
		status = http.StatusMultiStatus
	}

	return response.Success(c, status, result)
}

func readUpload(header *multipart.FileHeader) (usecase.FileUpload, error) {
	f, err := header.Open()
	if err != nil {
		return usecase.FileUpload{}, errors.Wrapf(err, "open upload %s", header.Filename)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return usecase.FileUpload{}, errors.Wrapf(err, "read upload %s", header.Filename)
	}

	return usecase.FileUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Content:     content,
	}, nil
}

// DeleteBodyColor removes a body color and its stored files.
func (h *CustomizationHandler) DeleteBodyColor(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	warnings, err := h.customizationUC.DeleteBodyColor(c.Request().Context(), actor,
		entity.ARModelID(c.Param("modelId")), c.Param("colorKey"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithWarnings(c, http.StatusOK, map[string]string{"deleted": c.Param("colorKey")}, warnings)
}

// UpsertComponentOption creates or replaces a lace or insole option.
func (h *CustomizationHandler) UpsertComponentOption(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	var option entity.ComponentOption
	if err := c.Bind(&option); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	if err := h.customizationUC.UpsertComponentOption(c.Request().Context(), actor,
		entity.ARModelID(c.Param("modelId")), entity.ComponentKind(c.Param("kind")), c.Param("optionId"), &option); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, option)
}
