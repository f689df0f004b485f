package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
			"amqpUrl": "",
		},
		"supabase": map[string]any{
			"serviceRoleKey": "",
			"jwtSecret":      "",
		},
		"session": map[string]any{
			"cookieName": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "PUBSUB_AMQPURL", want: "pubsub.amqpUrl"},
		{envKey: "SUPABASE_SERVICEROLEKEY", want: "supabase.serviceRoleKey"},
		{envKey: "SUPABASE_JWTSECRET", want: "supabase.jwtSecret"},
		{envKey: "SESSION_COOKIENAME", want: "session.cookieName"},
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

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.Site = &SiteConfig{PublicURL: "https://showcase.example.edu/"}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultSessionCookieName, cfg.Session.CookieName)
	assert.Equal(t, defaultSessionTTL, cfg.Session.TTL)
	assert.Equal(t, time.Minute, cfg.Session.RefreshSkew)
	assert.Equal(t, "https://showcase.example.edu", cfg.Site.PublicURL)
	assert.Equal(t, "https://showcase.example.edu", cfg.Site.EmbedOrigin)
	assert.Equal(t, defaultPasswordResetPath, cfg.Site.PasswordResetPath)
	assert.Equal(t, defaultInviteTTL, cfg.Invite.DefaultTTL)
	assert.Equal(t, defaultQRCodeSize, cfg.QRCode.Size)
	assert.Equal(t, defaultDeletionRetryCron, cfg.Worker.DeletionRetryCron)
	assert.Equal(t, defaultMaxDeletionTries, cfg.Worker.MaxDeletionAttempts)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Session: &SessionConfig{CookieName: "sid", TTL: time.Hour},
		Site:    &SiteConfig{PublicURL: "https://a.example", EmbedOrigin: "https://b.example"},
	}

	applyDefaults(cfg)

	assert.Equal(t, "sid", cfg.Session.CookieName)
	assert.Equal(t, time.Hour, cfg.Session.TTL)
	assert.Equal(t, "https://b.example", cfg.Site.EmbedOrigin)
}
