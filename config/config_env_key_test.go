package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"rateLimiter": map[string]any{
			"limit": 10,
		},
		"secretKey": map[string]any{
			"session": "",
		},
		"worktime": map[string]any{
			"saturdayCutoffHour": 18,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "RATELIMITER_LIMIT", want: "rateLimiter.limit"},
		{envKey: "SECRETKEY_SESSION", want: "secretKey.session"},
		{envKey: "WORKTIME_SATURDAYCUTOFFHOUR", want: "worktime.saturdayCutoffHour"},
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
