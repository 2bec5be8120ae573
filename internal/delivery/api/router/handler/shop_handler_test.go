package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"smartfit/internal/domain/entity"
	domainerrors "smartfit/internal/domain/errors"
	mockUC "smartfit/internal/mocks/usecase"
	"smartfit/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type shopHandlerFixtures struct {
	harness    apiHarness
	handler    *ShopHandler
	shops      *mockUC.MockShopUsecase
	activation *mockUC.MockActivationUsecase
}

func createTestShopHandler(t *testing.T) shopHandlerFixtures {
	harness := newHarness(t)
	shops := mockUC.NewMockShopUsecase(t)
	activation := mockUC.NewMockActivationUsecase(t)

	return shopHandlerFixtures{
		harness: harness,
		handler: NewShopHandler(ShopHandlerParams{
			ShopUC:       shops,
			ActivationUC: activation,
		}),
		shops:      shops,
		activation: activation,
	}
}

func TestShopHandler_Nearby(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantRadius float64
		wantStatus int
	}{
		{name: "explicit radius", query: "lat=14.5995&lng=120.9842&radiusKm=15", wantRadius: 15, wantStatus: http.StatusOK},
		{name: "default radius", query: "lat=14.5995&lng=120.9842", wantRadius: defaultNearbyRadiusKm, wantStatus: http.StatusOK},
		{name: "missing lng", query: "lat=14.5995", wantStatus: http.StatusBadRequest},
		{name: "not a number", query: "lat=north&lng=120.9842", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestShopHandler(t)
			if tt.wantStatus == http.StatusOK {
				fx.shops.EXPECT().
					NearbyShops(mock.Anything, 14.5995, 120.9842, tt.wantRadius).
					Return([]*usecase.NearbyShop{{Shop: &entity.Shop{ID: "makati"}, DistanceKm: 6.6}}, nil)
			}

			rec := fx.harness.callAs(customerAuth, fx.handler.Nearby,
				httptest.NewRequest(http.MethodGet, "/api/v1/shops/nearby?"+tt.query, nil), nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestShopHandler_RejectShop(t *testing.T) {
	fx := createTestShopHandler(t)

	fx.shops.EXPECT().
		RejectShop(mock.Anything, adminAuth.Actor, "shop-9", "").
		Return(nil, domainerrors.ErrValidationFailed.WithDetails("a rejection reason is required"))

	rec := fx.harness.callAs(adminAuth, fx.handler.RejectShop,
		jsonRequest(http.MethodPost, "/api/v1/admin/shops/shop-9/reject", `{}`), pathParams{"id": "shop-9"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestShopHandler_ProvisionEmployees(t *testing.T) {
	fx := createTestShopHandler(t)

	fx.activation.EXPECT().
		ProvisionDefaultAccounts(mock.Anything, ownerAuth.Actor, "shop-1", 2).
		Return([]*usecase.ProvisionedAccount{
			{EmployeeID: "emp2", Email: "emp2.shop-1@smartfit.local", TempPassword: "abcdefghij"},
			{EmployeeID: "emp3", Email: "emp3.shop-1@smartfit.local", TempPassword: "klmnopqrst"},
		}, nil)

	rec := fx.harness.callAs(ownerAuth, fx.handler.ProvisionEmployees,
		jsonRequest(http.MethodPost, "/api/v1/shops/shop-1/employees/provision", `{"count":2}`), pathParams{"shopId": "shop-1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "emp3.shop-1@smartfit.local")
}

func TestShopHandler_ProvisionEmployees_CountBounds(t *testing.T) {
	fx := createTestShopHandler(t)

	rec := fx.harness.callAs(ownerAuth, fx.handler.ProvisionEmployees,
		jsonRequest(http.MethodPost, "/api/v1/shops/shop-1/employees/provision", `{"count":50}`), pathParams{"shopId": "shop-1"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCustomizationHandler_UploadBodyColor(t *testing.T) {
	harness := newHarness(t)
	customization := mockUC.NewMockCustomizationUsecase(t)
	h := NewCustomizationHandler(CustomizationHandlerParams{CustomizationUC: customization})

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("image", "red.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	part, err = writer.CreateFormFile("deepARFile", "red.deepar")
	require.NoError(t, err)
	_, err = part.Write([]byte("deepar-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	customization.EXPECT().
		UploadBodyColor(mock.Anything, adminAuth.Actor, entity.ARModelID("runner"), "red",
			mock.MatchedBy(func(files map[string]usecase.FileUpload) bool {
				return len(files) == 2 &&
					string(files["image"].Content) == "png-bytes" &&
					files["deepARFile"].Filename == "red.deepar"
			})).
		Return(&usecase.BodyColorUploadResult{
			Uploaded: map[string]string{"image": "https://cdn/image.png"},
			Failed:   map[string]string{"deepARFile": "upload failed"},
		}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/customization/models/runner/colors/red", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())

	rec := harness.callAs(adminAuth, h.UploadBodyColor, req, pathParams{"modelId": "runner", "colorKey": "red"})

	assert.Equal(t, http.StatusMultiStatus, rec.Code)
	assert.Contains(t, rec.Body.String(), "upload failed")
}

func TestCustomizationHandler_UploadBodyColor_NotMultipart(t *testing.T) {
	harness := newHarness(t)
	h := NewCustomizationHandler(CustomizationHandlerParams{CustomizationUC: mockUC.NewMockCustomizationUsecase(t)})

	rec := harness.callAs(adminAuth, h.UploadBodyColor,
		jsonRequest(http.MethodPost, "/api/v1/customization/models/runner/colors/red", `{}`),
		pathParams{"modelId": "runner", "colorKey": "red"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
