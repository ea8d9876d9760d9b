package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type RentalStatus string

const (
	RentalStatusRented   RentalStatus = "RENTED"
	RentalStatusReturned RentalStatus = "RETURNED"
)

// Rental is the durable record of one rental transaction. Fee fields are
// snapshots: BaseFee and OptionFee are fixed at creation, Discount, Penalty
// and the final TotalFee at return. Invariant:
// TotalFee = (BaseFee + OptionFee - Discount) + Penalty.
type Rental struct {
	ID             int64           `json:"id"`
	AccountID      int32           `json:"account_id"`
	CarID          int32           `json:"car_id"`
	Days           int32           `json:"days"`
	StartAt        time.Time       `json:"start_at"`
	ScheduledEndAt time.Time       `json:"scheduled_end_at"`
	ReturnedAt     *time.Time      `json:"returned_at,omitempty"`
	Status         RentalStatus    `json:"status"`
	FeePolicy      string          `json:"fee_policy"`
	MembershipTier string          `json:"membership_tier"`
	Options        []string        `json:"options"`
	BaseFee        decimal.Decimal `json:"base_fee"`
	OptionFee      decimal.Decimal `json:"option_fee"`
	Discount       decimal.Decimal `json:"discount"`
	Penalty        decimal.Decimal `json:"penalty"`
	TotalFee       decimal.Decimal `json:"total_fee"`
	CreatedOn      string          `json:"created_on"`
	UpdatedOn      string          `json:"updated_on"`
}
