package whatsapp

import (
	"testing"

	"birthday_notification_bot/internal/infra/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twilioConfig() *config.AppConfig {
	return &config.AppConfig{
		TwilioAccountSID:   "AC123",
		TwilioAuthToken:    "secret",
		TwilioWhatsAppFrom: "whatsapp:+1415000",
	}
}

func metaConfig() *config.AppConfig {
	return &config.AppConfig{
		MetaWABAToken:     "token123",
		MetaPhoneNumberID: "555000",
	}
}

func TestSelectPrefersTwilioWhenBothConfigured(t *testing.T) {
	cfg := twilioConfig()
	cfg.MetaWABAToken = "token123"
	cfg.MetaPhoneNumberID = "555000"

	client, err := NewClientFromConfig(cfg)
	require.NoError(t, err)
	assert.IsType(t, &TwilioClient{}, client)
}

func TestSelectFallsBackToMeta(t *testing.T) {
	client, err := NewClientFromConfig(metaConfig())
	require.NoError(t, err)
	assert.IsType(t, &MetaClient{}, client)
}

func TestSelectPartialTwilioCredentialsDoNotCount(t *testing.T) {
	cfg := metaConfig()
	cfg.TwilioAccountSID = "AC123" // token and sender missing

	client, err := NewClientFromConfig(cfg)
	require.NoError(t, err)
	assert.IsType(t, &MetaClient{}, client)
}

func TestSelectErrorsWhenNothingConfigured(t *testing.T) {
	client, err := NewClientFromConfig(&config.AppConfig{})
	assert.Nil(t, client)
	assert.ErrorIs(t, err, ErrNoProviderConfigured)
}
