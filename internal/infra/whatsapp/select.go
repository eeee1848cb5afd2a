package whatsapp

import (
	"errors"

	domainWhatsApp "birthday_notification_bot/internal/domain/whatsapp"
	"birthday_notification_bot/internal/infra/config"
)

// ErrNoProviderConfigured means neither Twilio nor Meta credentials are set.
var ErrNoProviderConfigured = errors.New("no WhatsApp provider configured")

// NewClientFromConfig selects the messaging provider once, based on which
// credentials are populated. Twilio is preferred; Meta is the fallback.
func NewClientFromConfig(cfg *config.AppConfig) (domainWhatsApp.Client, error) {
	switch {
	case cfg.TwilioConfigured():
		return NewTwilioClient(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioWhatsAppFrom), nil
	case cfg.MetaConfigured():
		return NewMetaClient(cfg.MetaWABAToken, cfg.MetaPhoneNumberID), nil
	default:
		return nil, ErrNoProviderConfigured
	}
}
