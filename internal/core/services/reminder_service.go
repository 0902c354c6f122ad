package services

import (
	"context"
	"log"
	"time"

	"embox/internal/adapters/persistence/repositories"
	"embox/internal/core/membership"

	"github.com/robfig/cron/v3"
)

// ReminderService runs the daily payment-reminder check. It classifies
// every active customer against today and logs the counts; delivery of
// actual reminders (SMS, WhatsApp) hangs off CheckDue.
type ReminderService struct {
	customerRepo repositories.CustomerRepository
	cron         *cron.Cron
}

// NewReminderService creates a new reminder service
func NewReminderService(customerRepo repositories.CustomerRepository) *ReminderService {
	return &ReminderService{
		customerRepo: customerRepo,
		cron:         cron.New(),
	}
}

// Start schedules the daily reminder check at 08:00
func (s *ReminderService) Start() {
	_, err := s.cron.AddFunc("0 8 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if _, err := s.CheckDue(ctx, time.Now()); err != nil {
			log.Printf("Reminder check failed: %v", err)
		}
	})
	if err != nil {
		log.Printf("Failed to schedule reminder job: %v", err)
		return
	}

	s.cron.Start()
	log.Println("ReminderService started (daily at 08:00)")
}

// Stop stops the cron scheduler
func (s *ReminderService) Stop() {
	s.cron.Stop()
	log.Println("ReminderService stopped")
}

// DueCheckResult summarizes one reminder run
type DueCheckResult struct {
	DueToday    []string
	DueTomorrow []string
	Overdue     []string
}

// CheckDue classifies all active customers against today and returns
// the names grouped by urgency
func (s *ReminderService) CheckDue(ctx context.Context, today time.Time) (*DueCheckResult, error) {
	customers, err := s.customerRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	result := &DueCheckResult{}
	for _, customer := range customers {
		status, err := membership.Classify(customer.DueDate, today)
		if err != nil {
			log.Printf("Skipping customer %d: %v", customer.ID, err)
			continue
		}

		switch status {
		case membership.StatusDueToday:
			result.DueToday = append(result.DueToday, customer.FullName)
		case membership.StatusDueTomorrow:
			result.DueTomorrow = append(result.DueTomorrow, customer.FullName)
		case membership.StatusOverdue:
			result.Overdue = append(result.Overdue, customer.FullName)
		}
	}

	log.Printf("Reminder check: %d due today, %d due tomorrow, %d overdue",
		len(result.DueToday), len(result.DueTomorrow), len(result.Overdue))

	return result, nil
}
