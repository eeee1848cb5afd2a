package main

import (
	"context"
	"fmt"
	"log"

	"birthday_notification_bot/internal/app"
	"birthday_notification_bot/internal/domain/greeting"
	domainWhatsApp "birthday_notification_bot/internal/domain/whatsapp"
	"birthday_notification_bot/internal/infra/config"
	idb "birthday_notification_bot/internal/infra/database"
	"birthday_notification_bot/internal/infra/excel"
	"birthday_notification_bot/internal/infra/logger"
	"birthday_notification_bot/internal/infra/openai"
	iwa "birthday_notification_bot/internal/infra/whatsapp"
)

func main() {
	fmt.Println("Birthday Notification Bot starting...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: Could not load application configuration: %v", err)
	}

	logger.Init(cfg)
	appLog := logger.Get()
	appLog.Infof("Configuration loaded. LogLevel: %s, Environment: %s, Contacts: %s (sheet %q), Store: %s",
		cfg.LogLevel, cfg.Environment, cfg.ContactsFile, cfg.ContactsSheet, cfg.DBPath)

	ctx := context.Background()

	// Initialize Dedup Store
	db, err := idb.NewSQLiteConnection(cfg.DBPath)
	if err != nil {
		appLog.Fatalf("Could not open dedup store at %s: %v", cfg.DBPath, err)
	}
	defer db.Close()

	store := idb.NewSQLiteSendRepository(db)
	if err := store.Init(ctx); err != nil {
		appLog.Fatalf("Could not initialize dedup store: %v", err)
	}
	appLog.Info("Dedup store initialized.")

	// Contact source
	source := excel.NewReader(cfg.ContactsFile, cfg.ContactsSheet)

	// Optional greeting generator
	var generator greeting.Generator
	if cfg.OpenAIConfigured() {
		generator = openai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
		appLog.Infof("Greeting generator configured with model %s.", cfg.OpenAIModel)
	} else {
		appLog.Info("OpenAI not configured; builtin greeting templates will be used.")
	}

	// Messaging provider: Twilio preferred, Meta second. When neither is
	// configured the run still executes and finishes with zero sends.
	var sender domainWhatsApp.Client
	if client, err := iwa.NewClientFromConfig(cfg); err != nil {
		appLog.Errorf("Messaging provider selection failed: %v", err)
	} else {
		sender = client
	}

	composer := app.NewComposer(generator, appLog)
	runService := app.NewRunService(source, store, sender, composer, appLog,
		cfg.MaxMessagesPerRun, cfg.SendDelay)

	appLog.Info("Starting birthday run.")
	if err := runService.Run(ctx); err != nil {
		appLog.Errorf("Run terminated: %v", err)
	}
}
