package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/centavo/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Allocation shares of the intermediate actual balance and the share of
// the actual income that bounds credit card spending. Business constants.
var (
	CreditLimitShare = decimal.NewFromFloat(0.25)
	PensionShare     = decimal.NewFromFloat(0.08)
	InvestmentShare  = decimal.NewFromFloat(0.65)
	CashBoxShare     = decimal.NewFromFloat(0.27)
)

// ErrRegisterMissing indicates that a budget overlapping the summarized
// month has no register for it after materialization. This is a defect in
// the materializer, not a user error.
var ErrRegisterMissing = errors.New("no register materialized for the requested month")

// EnsureRegisters materializes a register for every budget of the owner
// that overlaps the month and does not have one yet.
//
// New registers get the budget's nominal value, are dated on the budget's
// expected day clamped into the month, and start unchecked. The unique
// index on (budget_id, month) makes this idempotent under concurrency: a
// request losing the check-then-create race treats the violation as
// success.
func EnsureRegisters(db *gorm.DB, ownerID uuid.UUID, month types.Month) error {
	budgets, err := Budgets(db, ownerID, &month)
	if err != nil {
		return err
	}

	for _, budget := range budgets {
		if budget.RegisterFor(month) != nil {
			continue
		}

		register := Register{
			BudgetID: budget.ID,
			Value:    budget.CurrentValue,
			Date:     month.Day(budget.ExpectedDay),
		}

		err := db.Create(&register).Error
		if errors.Is(err, ErrRegisterMonthNotUnique) {
			continue
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// RegisterView is the per-month projection of a budget and its register
// for that month, as returned in summaries.
type RegisterView struct {
	ID            uuid.UUID       `json:"id"`       // ID of the register
	ParentID      uuid.UUID       `json:"parentId"` // ID of the budget the register belongs to
	Description   string          `json:"description"`
	Value         decimal.Decimal `json:"value"`
	Date          time.Time       `json:"date"`
	Checked       bool            `json:"isChecked"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Deleted       bool            `json:"deleted"`
}

// Summary is the financial summary of a month. It is computed on every
// request and never persisted.
type Summary struct {
	Incomes     []RegisterView `json:"incomes"`
	Outcomes    []RegisterView `json:"outcomes"`
	CreditCards []RegisterView `json:"creditCards"`
	Pensions    []RegisterView `json:"pensions"`
	Investments []RegisterView `json:"investments"`
	CashBoxes   []RegisterView `json:"cashBoxes"`

	PredictedIncomeValue      decimal.Decimal `json:"predictedIncomeValue"`
	PredictedOutcomeValue     decimal.Decimal `json:"predictedOutcomeValue"`
	PredictedBalance          decimal.Decimal `json:"predictedBalance"`
	ActualIncomeValue         decimal.Decimal `json:"actualIncomeValue"`
	ActualOutcomeValue        decimal.Decimal `json:"actualOutcomeValue"`
	ActualBalance             decimal.Decimal `json:"actualBalance"`
	ActualCreditValue         decimal.Decimal `json:"actualCreditValue"`
	CreditLimitValue          decimal.Decimal `json:"creditLimitValue"`
	ActualPensionValue        decimal.Decimal `json:"actualPensionValue"`
	PredictedPensionValue     decimal.Decimal `json:"predictedPensionValue"`
	ActualInvestmentsValue    decimal.Decimal `json:"actualInvestmentsValue"`
	PredictedInvestmentsValue decimal.Decimal `json:"predictedInvestmentsValue"`
	ActualCashBoxValue        decimal.Decimal `json:"actualCashBoxValue"`
	PredictedCashBoxValue     decimal.Decimal `json:"predictedCashBoxValue"`
}

// registerViews projects the budgets of a class onto their registers for
// the month.
//
// Every budget of the class is expected to have a register for the month
// after EnsureRegisters ran, a missing one is reported as
// ErrRegisterMissing instead of being skipped silently.
func registerViews(budgets []Budget, month types.Month, class BudgetClass) ([]RegisterView, error) {
	views := make([]RegisterView, 0)

	for _, budget := range budgets {
		if budget.Class != class {
			continue
		}

		register := budget.RegisterFor(month)
		if register == nil {
			return nil, fmt.Errorf("%w: budget %s, month %s", ErrRegisterMissing, budget.ID, month)
		}

		views = append(views, RegisterView{
			ID:            register.ID,
			ParentID:      budget.ID,
			Description:   budget.Description,
			Value:         register.Value,
			Date:          register.Date,
			Checked:       register.Checked,
			PaymentMethod: budget.PaymentMethod,
			Deleted:       register.Deleted,
		})
	}

	return views, nil
}

// predictedSum is the sum of all entries that are not deleted and not
// settled via credit, regardless of whether they are checked.
func predictedSum(views []RegisterView) decimal.Decimal {
	sum := decimal.Zero
	for _, view := range views {
		if view.Deleted || view.PaymentMethod == PaymentCredit {
			continue
		}
		sum = sum.Add(view.Value)
	}
	return sum
}

// actualSum is the sum of all checked, not deleted entries that are not
// settled via credit.
func actualSum(views []RegisterView) decimal.Decimal {
	sum := decimal.Zero
	for _, view := range views {
		if !view.Checked || view.Deleted || view.PaymentMethod == PaymentCredit {
			continue
		}
		sum = sum.Add(view.Value)
	}
	return sum
}

// settledSum is the sum of all checked, not deleted entries. Credit card,
// pension, investment and cash box categories have no payment method
// exclusion.
func settledSum(views []RegisterView) decimal.Decimal {
	sum := decimal.Zero
	for _, view := range views {
		if !view.Checked || view.Deleted {
			continue
		}
		sum = sum.Add(view.Value)
	}
	return sum
}

// allocationFor returns the share of the balance allocated to a category,
// zero when the balance is not positive.
func allocationFor(balance, share decimal.Decimal) decimal.Decimal {
	if balance.IsPositive() {
		return balance.Mul(share)
	}
	return decimal.Zero
}

// creditLimit returns how much credit card spending the actual income
// still supports after the predicted expenses, floored at zero.
func creditLimit(actualIncome, predictedOutcome decimal.Decimal) decimal.Decimal {
	limit := actualIncome.Mul(CreditLimitShare).Sub(predictedOutcome)
	if limit.IsPositive() {
		return limit
	}
	return decimal.Zero
}

// Summarize materializes the registers of the month and aggregates them
// into the financial summary.
func Summarize(db *gorm.DB, ownerID uuid.UUID, month types.Month) (Summary, error) {
	err := EnsureRegisters(db, ownerID, month)
	if err != nil {
		return Summary{}, err
	}

	// Refetch so that newly materialized registers are included
	budgets, err := Budgets(db, ownerID, &month)
	if err != nil {
		return Summary{}, err
	}

	lists := make(map[BudgetClass][]RegisterView, len(BudgetClasses))
	for _, class := range BudgetClasses {
		lists[class], err = registerViews(budgets, month, class)
		if err != nil {
			return Summary{}, err
		}
	}

	summary := Summary{
		Incomes:     lists[ClassIncome],
		Outcomes:    lists[ClassExpense],
		CreditCards: lists[ClassCreditCard],
		Pensions:    lists[ClassPension],
		Investments: lists[ClassInvestment],
		CashBoxes:   lists[ClassCashBox],
	}

	summary.PredictedIncomeValue = predictedSum(summary.Incomes)
	summary.PredictedOutcomeValue = predictedSum(summary.Outcomes)
	summary.ActualIncomeValue = actualSum(summary.Incomes)
	summary.ActualOutcomeValue = actualSum(summary.Outcomes)

	summary.ActualCreditValue = settledSum(summary.CreditCards)
	summary.CreditLimitValue = creditLimit(summary.ActualIncomeValue, summary.PredictedOutcomeValue)

	// The balance the allocations are derived from: what actually came in,
	// minus what actually went out, minus settled credit card spending
	intermediateBalance := summary.ActualIncomeValue.
		Sub(summary.ActualOutcomeValue).
		Sub(summary.ActualCreditValue)

	summary.ActualPensionValue = settledSum(summary.Pensions)
	summary.PredictedPensionValue = allocationFor(intermediateBalance, PensionShare)
	summary.ActualInvestmentsValue = settledSum(summary.Investments)
	summary.PredictedInvestmentsValue = allocationFor(intermediateBalance, InvestmentShare)
	summary.ActualCashBoxValue = settledSum(summary.CashBoxes)
	summary.PredictedCashBoxValue = allocationFor(intermediateBalance, CashBoxShare)

	summary.PredictedBalance = summary.PredictedIncomeValue.
		Sub(summary.PredictedOutcomeValue).
		Sub(summary.CreditLimitValue).
		Sub(summary.PredictedPensionValue).
		Sub(summary.PredictedInvestmentsValue).
		Sub(summary.PredictedCashBoxValue)

	summary.ActualBalance = summary.ActualIncomeValue.
		Sub(summary.ActualOutcomeValue).
		Sub(summary.ActualCreditValue).
		Sub(summary.ActualPensionValue).
		Sub(summary.ActualInvestmentsValue).
		Sub(summary.ActualCashBoxValue)

	return summary, nil
}
