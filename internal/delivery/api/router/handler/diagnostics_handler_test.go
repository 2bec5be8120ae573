package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"smartfit/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticsHandler_WhoAmI(t *testing.T) {
	tests := []struct {
		name          string
		state         *usecase.AuthState
		wantLabel     string
		wantShopStaff bool
		wantAdmin     bool
	}{
		{name: "customer", state: customerAuth, wantLabel: "customer"},
		{name: "shop owner", state: ownerAuth, wantLabel: "shop owner", wantShopStaff: true},
		{name: "admin", state: adminAuth, wantLabel: "admin", wantAdmin: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			harness := newHarness(t)
			h := NewDiagnosticsHandler()

			rec := harness.callAs(tt.state, h.WhoAmI, httptest.NewRequest(http.MethodGet, "/test/whoami", nil), nil)
			require.Equal(t, http.StatusOK, rec.Code)

			var body struct {
				Label     string `json:"label"`
				ShopStaff bool   `json:"shopStaff"`
				Admin     bool   `json:"admin"`
			}
			require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &body))
			assert.Equal(t, tt.wantLabel, body.Label)
			assert.Equal(t, tt.wantShopStaff, body.ShopStaff)
			assert.Equal(t, tt.wantAdmin, body.Admin)
		})
	}
}

func TestDiagnosticsHandler_WhoAmI_Anonymous(t *testing.T) {
	harness := newHarness(t)

	rec := harness.call(NewDiagnosticsHandler().WhoAmI, httptest.NewRequest(http.MethodGet, "/test/whoami", nil), nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDiagnosticsHandler_Ping(t *testing.T) {
	harness := newHarness(t)

	rec := harness.call(NewDiagnosticsHandler().Ping, httptest.NewRequest(http.MethodGet, "/test/ping", nil), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"status":"pong"`)
}
