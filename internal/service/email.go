package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"carrental-backend/internal/domain"
)

type emailService struct {
	apiKey   string
	from     string
	fromName string
}

func NewEmailService(apiKey, from, fromName string) EmailService {
	return &emailService{
		apiKey:   apiKey,
		from:     from,
		fromName: fromName,
	}
}

func (s *emailService) SendRentalReceipt(ctx context.Context, email, name, carName string, rental *domain.Rental) error {
	subject := fmt.Sprintf("Rental confirmed - %s", carName)
	body := fmt.Sprintf(
		"Hello %s,\n\nYour rental of %s for %d day(s) is confirmed.\n\nBase fee: %s\nOption fee: %s\nTotal due at return: %s\n\nScheduled return: %s",
		name, carName, rental.Days,
		rental.BaseFee.StringFixed(0), rental.OptionFee.StringFixed(0), rental.TotalFee.StringFixed(0),
		rental.ScheduledEndAt.Format("2006-01-02 15:04"),
	)
	if len(rental.Options) > 0 {
		body += fmt.Sprintf("\nOptions: %s", strings.Join(rental.Options, ", "))
	}
	return s.send(email, name, subject, body)
}

func (s *emailService) SendReturnReceipt(ctx context.Context, email, name, carName string, rental *domain.Rental) error {
	subject := fmt.Sprintf("Return settled - %s", carName)
	body := fmt.Sprintf(
		"Hello %s,\n\nYour rental of %s has been returned.\n\nRental fee: %s\nMembership discount: -%s\nOverdue penalty: +%s\nSettled total: %s",
		name, carName,
		rental.BaseFee.Add(rental.OptionFee).StringFixed(0),
		rental.Discount.StringFixed(0), rental.Penalty.StringFixed(0), rental.TotalFee.StringFixed(0),
	)
	return s.send(email, name, subject, body)
}

func (s *emailService) SendOverdueReminder(ctx context.Context, email, name, carName string, daysOverdue int64) error {
	subject := fmt.Sprintf("Overdue rental - %s", carName)
	body := fmt.Sprintf(
		"Hello %s,\n\nYour rental of %s is %d day(s) past its scheduled return. A penalty of 30%% of the daily rate accrues per overdue day. Please return the car as soon as possible.",
		name, carName, daysOverdue,
	)
	return s.send(email, name, subject, body)
}

func (s *emailService) send(to, toName, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.from)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d", response.StatusCode)
	}
	return nil
}
