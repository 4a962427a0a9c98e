package models

import (
	"errors"
	"strings"

	"github.com/centavo/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// BudgetClass partitions budgets into the six financial categories
// of the summary.
type BudgetClass string

const (
	ClassIncome     BudgetClass = "income"
	ClassExpense    BudgetClass = "expense"
	ClassCreditCard BudgetClass = "creditCard"
	ClassPension    BudgetClass = "pension"
	ClassInvestment BudgetClass = "investment"
	ClassCashBox    BudgetClass = "cashBox"
)

// BudgetClasses lists all valid classes in summary order.
var BudgetClasses = []BudgetClass{ClassIncome, ClassExpense, ClassCreditCard, ClassPension, ClassInvestment, ClassCashBox}

// PaymentMethod is the way a budget is settled.
//
// Registers of budgets paid by credit appear in the summary lists, but are
// excluded from the predicted and actual income and expense sums.
type PaymentMethod string

const (
	PaymentCredit   PaymentMethod = "credit"
	PaymentDebit    PaymentMethod = "debit"
	PaymentPix      PaymentMethod = "pix"
	PaymentTransfer PaymentMethod = "transfer"
)

// Budget represents a financial line item of a user, one-off or recurring.
type Budget struct {
	DefaultModel
	OwnerID       uuid.UUID       `json:"ownerId" gorm:"index"`
	Class         BudgetClass     `json:"budgetClass"`
	Description   string          `json:"description"`
	CurrentValue  decimal.Decimal `json:"currentValue" gorm:"type:DECIMAL(20,8)"` // Nominal value used when materializing registers
	ExpectedDay   int             `json:"expectedDay"`                            // Day of month used when materializing registers
	Recurrent     bool            `json:"isRecurrent"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	ActivePeriods []ActivePeriod  `json:"activePeriods" gorm:"constraint:OnDelete:CASCADE"`
	Registers     []Register      `json:"registers" gorm:"constraint:OnDelete:CASCADE"`
}

var (
	ErrBudgetClassInvalid    = errors.New("the budget class is not one of income, expense, creditCard, pension, investment, cashBox")
	ErrBudgetValueNegative   = errors.New("the budget value must not be negative")
	ErrExpectedDayOutOfMonth = errors.New("the expected day must be between 1 and 31")
)

// BeforeSave validates and normalizes the budget
//
// It applies the defaults for description and payment method
// and trims whitespace from the description.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Description = strings.TrimSpace(b.Description)
	if b.Description == "" {
		b.Description = "Extra"
	}

	if b.PaymentMethod == "" {
		b.PaymentMethod = PaymentDebit
	}

	if !slices.Contains(BudgetClasses, b.Class) {
		return ErrBudgetClassInvalid
	}

	if b.CurrentValue.IsNegative() {
		return ErrBudgetValueNegative
	}

	if b.ExpectedDay < 1 || b.ExpectedDay > 31 {
		return ErrExpectedDayOutOfMonth
	}

	return nil
}

// InPeriod reports whether the budget overlaps the month.
//
// A budget overlaps when it already has a register dated in the month, or
// when one of its active periods starts before the month ends and does not
// end before the month starts. A period without a start date never makes
// the budget recurrence eligible.
//
// ActivePeriods and Registers must be preloaded.
func (b Budget) InPeriod(month types.Month) bool {
	for _, register := range b.Registers {
		if month.Contains(register.Date) {
			return true
		}
	}

	for _, period := range b.ActivePeriods {
		if period.StartDate == nil {
			continue
		}

		if period.StartDate.Before(month.End()) && (period.EndDate == nil || period.EndDate.After(month.Start())) {
			return true
		}
	}

	return false
}

// RegisterFor returns the register dated in the month, nil if there is none.
func (b Budget) RegisterFor(month types.Month) *Register {
	for i, register := range b.Registers {
		if month.Contains(register.Date) {
			return &b.Registers[i]
		}
	}

	return nil
}

// Budgets returns all budgets of the owner, with their active periods and
// registers preloaded.
//
// With a month, only budgets overlapping that month are returned. An owner
// without budgets yields an empty slice.
func Budgets(db *gorm.DB, ownerID uuid.UUID, month *types.Month) ([]Budget, error) {
	var budgets []Budget

	err := db.
		Preload("ActivePeriods").
		Preload("Registers").
		Where(&Budget{OwnerID: ownerID}).
		Order("created_at ASC").
		Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	if month == nil {
		return budgets, nil
	}

	matching := make([]Budget, 0, len(budgets))
	for _, budget := range budgets {
		if budget.InPeriod(*month) {
			matching = append(matching, budget)
		}
	}

	return matching, nil
}

// DeleteBudgets permanently deletes the budgets with the given IDs,
// cascading their active periods and registers. Budgets of other owners
// are skipped silently.
func DeleteBudgets(db *gorm.DB, ownerID uuid.UUID, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	return db.Unscoped().
		Where("owner_id = ?", ownerID).
		Where("id IN ?", ids).
		Delete(&Budget{}).Error
}
