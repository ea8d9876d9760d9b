package jobs

import (
	"context"
	"time"

	"carrental-backend/internal/logger"
)

// SendOverdueReminders emails every renter whose rental is past its
// scheduled end and still RENTED. Read-only with respect to rental status:
// the penalty itself is computed at return time, not here.
func (jr *JobRunner) SendOverdueReminders() {
	jr.runWithRecovery("SendOverdueReminders", func() {
		ctx := context.Background()
		now := time.Now()

		rentals, err := jr.store.RentalRepository.ListOverdue(ctx, now)
		if err != nil {
			logger.Error("Failed to list overdue rentals", "error", err)
			return
		}

		sent := 0
		for _, rental := range rentals {
			account, err := jr.store.AccountRepository.GetByID(ctx, rental.AccountID)
			if err != nil {
				logger.Warn("Skipping overdue reminder, account lookup failed",
					"rental_id", rental.ID, "account_id", rental.AccountID, "error", err)
				continue
			}
			car, err := jr.store.CarRepository.GetByID(ctx, rental.CarID)
			if err != nil {
				logger.Warn("Skipping overdue reminder, car lookup failed",
					"rental_id", rental.ID, "car_id", rental.CarID, "error", err)
				continue
			}

			daysOverdue := int64(now.Sub(rental.ScheduledEndAt).Hours() / 24)
			if daysOverdue <= 0 {
				daysOverdue = 1
			}

			if err := jr.emailSvc.SendOverdueReminder(ctx, account.Email, account.Name, car.Name, daysOverdue); err != nil {
				logger.Warn("Failed to send overdue reminder", "rental_id", rental.ID, "error", err)
				continue
			}
			sent++
		}

		logger.Info("Overdue reminders sent", "overdue", len(rentals), "sent", sent)
	})
}
