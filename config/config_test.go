package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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
		},
		"stripe": map[string]any{
			"webhookSecret": "",
		},
		"mealPlan": map[string]any{
			"snackGapKcal": 150,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "STRIPE_WEBHOOKSECRET", want: "stripe.webhookSecret"},
		{envKey: "MEALPLAN_SNACKGAPKCAL", want: "mealPlan.snackGapKcal"},
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

func TestApplyDefaults_FillsWorkflowAndProviderSettings(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	require.NotNil(t, cfg.Workflow)
	assert.Equal(t, 4, cfg.Workflow.LLM.MaxAttempts)
	assert.Equal(t, 2*time.Second, cfg.Workflow.LLM.MinBackoff)
	assert.Equal(t, 3, cfg.Workflow.DB.MaxAttempts)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, 3, cfg.Video.CandidatesPerQuery)
	assert.Equal(t, time.Minute, cfg.Video.BatchTimeout)
	assert.Equal(t, 7, cfg.MealPlan.Days)
	assert.Equal(t, "czk", cfg.Stripe.Currency)
	assert.Nil(t, cfg.Redis)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		LLM:   &LLMConfig{Provider: "vertex", Temperature: 0.2},
		Redis: &RedisConfig{Addr: "localhost:6379"},
	}
	applyDefaults(cfg)

	assert.Equal(t, "vertex", cfg.LLM.Provider)
	assert.InDelta(t, 0.2, cfg.LLM.Temperature, 1e-6)
	assert.Equal(t, 30*time.Second, cfg.Redis.LockTTL)
}
