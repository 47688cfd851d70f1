package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"identity": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"commerce": map[string]any{
			"sslMode": "disable",
		},
		"seed": map[string]any{
			"adminUsername": "admin",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "IDENTITY_SSLMODE", want: "identity.sslMode"},
		{envKey: "IDENTITY_MASTER_USERNAME", want: "identity.master.userName"},
		{envKey: "COMMERCE_SSLMODE", want: "commerce.sslMode"},
		{envKey: "SEED_ADMINUSERNAME", want: "seed.adminUsername"},
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
