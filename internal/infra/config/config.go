package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultContactsFile      = "contacts.xlsx"
	defaultContactsSheet     = "contacts"
	defaultDBPath            = "sent.db"
	defaultOpenAIModel       = "gpt-4o-mini"
	defaultMaxMessagesPerRun = 200
	defaultSendDelaySeconds  = 0.6
)

// AppConfig holds all configuration for the application. Components receive
// it (or fields of it) through their constructors; nothing reads the process
// environment outside of Load.
type AppConfig struct {
	// Twilio WhatsApp credentials (preferred provider).
	TwilioAccountSID   string
	TwilioAuthToken    string
	TwilioWhatsAppFrom string // e.g. "whatsapp:+1415XXXX"

	// Meta WhatsApp Cloud API credentials (secondary provider).
	MetaWABAToken     string
	MetaPhoneNumberID string

	// OpenAI credentials for generated greetings (optional).
	OpenAIAPIKey string
	OpenAIModel  string

	ContactsFile  string
	ContactsSheet string
	DBPath        string

	MaxMessagesPerRun int
	SendDelay         time.Duration // pacing between send attempts

	LogLevel    string
	Environment string
}

// TwilioConfigured reports whether all Twilio credentials are present.
func (c *AppConfig) TwilioConfigured() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.TwilioWhatsAppFrom != ""
}

// MetaConfigured reports whether all Meta Cloud API credentials are present.
func (c *AppConfig) MetaConfigured() bool {
	return c.MetaWABAToken != "" && c.MetaPhoneNumberID != ""
}

// OpenAIConfigured reports whether greeting generation is available.
func (c *AppConfig) OpenAIConfigured() bool {
	return c.OpenAIAPIKey != ""
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{
		TwilioAccountSID:   os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:    os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioWhatsAppFrom: os.Getenv("TWILIO_WHATSAPP_FROM"),
		MetaWABAToken:      os.Getenv("META_WABA_TOKEN"),
		MetaPhoneNumberID:  os.Getenv("META_PHONE_NUMBER_ID"),
		OpenAIAPIKey:       os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:        os.Getenv("OPENAI_MODEL"),
		ContactsFile:       os.Getenv("CONTACTS_FILE"),
		ContactsSheet:      os.Getenv("CONTACTS_SHEET"),
		DBPath:             os.Getenv("DB_PATH"),
	}

	if cfg.OpenAIModel == "" {
		cfg.OpenAIModel = defaultOpenAIModel
	}
	if cfg.ContactsFile == "" {
		cfg.ContactsFile = defaultContactsFile
	}
	if cfg.ContactsSheet == "" {
		cfg.ContactsSheet = defaultContactsSheet
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath
	}

	cfg.MaxMessagesPerRun = defaultMaxMessagesPerRun
	if raw := os.Getenv("MAX_MESSAGES_PER_RUN"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid MAX_MESSAGES_PER_RUN: %q", raw)
		}
		cfg.MaxMessagesPerRun = n
	}

	delaySeconds := float64(defaultSendDelaySeconds)
	if raw := os.Getenv("SEND_DELAY_SECONDS"); raw != "" {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || f < 0 {
			return nil, fmt.Errorf("invalid SEND_DELAY_SECONDS: %q", raw)
		}
		delaySeconds = f
	}
	cfg.SendDelay = time.Duration(delaySeconds * float64(time.Second))

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	return cfg, nil
}
