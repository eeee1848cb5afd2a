// internal/app/run_service.go
package app

import (
	"context"
	"fmt"
	"time"

	"birthday_notification_bot/internal/domain/contact"
	"birthday_notification_bot/internal/domain/dedup"
	domainWhatsApp "birthday_notification_bot/internal/domain/whatsapp"

	"github.com/sirupsen/logrus"
)

// candidate is a contact that passed birthday-match and dedup filtering in
// the current run and is eligible for sending.
type candidate struct {
	name     string
	phone    string
	notes    string
	template string
}

// RunService executes one complete notification pass: load contacts, filter
// candidates, then compose, send and record each greeting in source order.
type RunService struct {
	source   contact.Source
	store    dedup.Repository
	sender   domainWhatsApp.Client // nil when no provider is configured
	composer *Composer
	logger   *logrus.Logger

	maxMessagesPerRun int
	sendDelay         time.Duration

	now func() time.Time
}

func NewRunService(
	source contact.Source,
	store dedup.Repository,
	sender domainWhatsApp.Client,
	composer *Composer,
	logger *logrus.Logger,
	maxMessagesPerRun int,
	sendDelay time.Duration,
) *RunService {
	return &RunService{
		source:            source,
		store:             store,
		sender:            sender,
		composer:          composer,
		logger:            logger,
		maxMessagesPerRun: maxMessagesPerRun,
		sendDelay:         sendDelay,
		now:               time.Now,
	}
}

// Run performs a single batch pass. A load failure aborts the run before any
// send is attempted; per-candidate failures are logged and the loop
// continues. The dedup year is the run's UTC calendar year, independent of
// each contact's timezone.
func (s *RunService) Run(ctx context.Context) error {
	contacts, err := s.source.Load(ctx)
	if err != nil {
		s.logger.Errorf("Failed to load contacts: %v", err)
		return fmt.Errorf("load contacts: %w", err)
	}

	now := s.now()
	runYear := now.UTC().Year()

	var candidates []candidate
	for _, ct := range contacts {
		bday := ParseBirthday(ct.Birthday)
		if bday == nil {
			continue
		}
		if !IsBirthdayToday(*bday, ct.Timezone, now) {
			continue
		}
		sent, err := s.store.HasSent(ctx, ct.Phone, runYear)
		if err != nil {
			s.logger.Errorf("Dedup lookup failed for %s (%s): %v", ct.Name, ct.Phone, err)
			continue
		}
		if sent {
			s.logger.Infof("Already sent to %s (%s) this year; skipping.", ct.Name, ct.Phone)
			continue
		}
		candidates = append(candidates, candidate{
			name:     ct.Name,
			phone:    ct.Phone,
			notes:    ct.Notes,
			template: ct.Template,
		})
	}
	s.logger.Infof("Found %d recipients for today.", len(candidates))

	if len(candidates) > s.maxMessagesPerRun {
		candidates = candidates[:s.maxMessagesPerRun]
	}

	if s.sender == nil && len(candidates) > 0 {
		s.logger.Error("No WhatsApp provider configured; skipping all sends.")
		candidates = nil
	}

	sentCount := 0
	for _, cand := range candidates {
		if s.processCandidate(ctx, cand, runYear) {
			sentCount++
		}
		if s.sendDelay > 0 {
			time.Sleep(s.sendDelay) // gentle pacing between attempts
		}
	}

	s.logger.Infof("Run complete. Sent %d messages.", sentCount)
	return nil
}

// processCandidate composes, sends and records one greeting. A panic from a
// single candidate is contained here so the rest of the batch proceeds. The
// candidate counts as sent only once the record is persisted; a send whose
// record write fails is retried on the next run (last write wins).
func (s *RunService) processCandidate(ctx context.Context, cand candidate, year int) (sent bool) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Errorf("Unexpected failure sending to %s (%s): %v", cand.name, cand.phone, r)
			sent = false
		}
	}()

	message := s.composer.Compose(ctx, cand.name, cand.notes, cand.template)

	if err := s.sender.Send(ctx, cand.phone, message); err != nil {
		s.logger.Errorf("Failed to send to %s (%s): %v", cand.name, cand.phone, err)
		return false
	}
	if err := s.store.Record(ctx, cand.phone, year, message); err != nil {
		s.logger.Errorf("Sent to %s (%s) but failed to record send: %v", cand.name, cand.phone, err)
		return false
	}
	s.logger.Infof("Sent to %s (%s).", cand.name, cand.phone)
	return true
}
