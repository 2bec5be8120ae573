package config

import (
	"testing"
	"time"

	"smartfit/internal/domain/constants"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"firebase": map[string]any{
			"databaseUrl": "",
		},
		"store": map[string]any{
			"rootPath":     "smartfit_AR_Database",
			"pollInterval": "2s",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"storage": map[string]any{
			"deepArBucketUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "FIREBASE_DATABASEURL", want: "firebase.databaseUrl"},
		{envKey: "STORE_ROOTPATH", want: "store.rootPath"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "STORAGE_DEEPARBUCKETURL", want: "storage.deepArBucketUrl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsOptionalSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, constants.StoreProviderMemory, cfg.Store.Provider)
	assert.Equal(t, constants.DefaultRootPath, cfg.Store.RootPath)
	assert.Equal(t, 2*time.Second, cfg.Store.PollInterval)
	assert.Equal(t, constants.AuthProviderLocal, cfg.Auth.Provider)
	assert.Equal(t, "mem://", cfg.Storage.AssetsBucketURL)
	assert.Equal(t, constants.MailProviderLog, cfg.Mail.Provider)
	assert.InDelta(t, 0.12, cfg.Pricing.VATRate, 1e-9)
	assert.InDelta(t, 200.0, cfg.Pricing.ShippingFee, 1e-9)
	assert.Equal(t, 5*time.Minute, cfg.Activation.ReconcileInterval)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Store:   &StoreConfig{Provider: constants.StoreProviderFirebase, RootPath: "other", PollInterval: time.Second},
		Pricing: &PricingConfig{VATRate: 0.1, ShippingFee: 150},
	}

	applyDefaults(cfg)

	assert.Equal(t, constants.StoreProviderFirebase, cfg.Store.Provider)
	assert.Equal(t, "other", cfg.Store.RootPath)
	assert.Equal(t, time.Second, cfg.Store.PollInterval)
	assert.InDelta(t, 0.1, cfg.Pricing.VATRate, 1e-9)
	assert.InDelta(t, 150.0, cfg.Pricing.ShippingFee, 1e-9)
}
