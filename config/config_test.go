package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() Config {
	return Config{
		Weights: MatchWeights{
			Rating:      0.35,
			Reliability: 0.25,
			Completion:  0.25,
			Proximity:   0.15,
		},
		DefaultCompletionRate: 0.8,
		PendingTimeoutMins:    30,
		SessionTTLMins:        10,
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	require.NoError(t, validate(validTestConfig()))
}

func TestValidateRejectsWeightsNotSummingToOne(t *testing.T) {
	cfg := validTestConfig()
	cfg.Weights.Rating = 0.5
	assert.Error(t, validate(cfg))
}

func TestValidateRejectsBadCompletionRate(t *testing.T) {
	cfg := validTestConfig()
	cfg.DefaultCompletionRate = 1.5
	assert.Error(t, validate(cfg))
}

func TestValidateRejectsNonPositiveTimeout(t *testing.T) {
	cfg := validTestConfig()
	cfg.PendingTimeoutMins = 0
	assert.Error(t, validate(cfg))
}

func TestDurationHelpers(t *testing.T) {
	prev := AppConfig
	defer func() { AppConfig = prev }()

	AppConfig = validTestConfig()
	assert.Equal(t, 30*time.Minute, PendingTimeout())
	assert.Equal(t, 10*time.Minute, SessionTTL())
}
