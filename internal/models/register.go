package models

import (
	"errors"
	"time"

	"github.com/centavo/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Register is one concrete occurrence of a budget for a specific date.
// Its value may diverge from the budget's nominal value after edits.
//
// Month is derived from Date on every save. Together with BudgetID it
// forms a unique index so that a budget can never have two registers in
// the same calendar month, regardless of how many requests race the
// materializer.
type Register struct {
	DefaultModel
	BudgetID uuid.UUID       `json:"budgetId" gorm:"uniqueIndex:register_budget_month"`
	Value    decimal.Decimal `json:"value" gorm:"type:DECIMAL(20,8)"`
	Date     time.Time       `json:"date"`
	Month    types.Month     `json:"-" gorm:"uniqueIndex:register_budget_month"`
	Checked  bool            `json:"checked"` // Has this occurrence been settled
	Deleted  bool            `json:"deleted"` // Soft delete flag, deleted registers stay visible in summaries
}

var (
	ErrRegisterMonthNotUnique = errors.New("a budget can only have one register per month")
	ErrRegisterNotAllowed     = errors.New("you are not allowed to update this register")
)

// BeforeSave sets the date and derives the month of the register.
func (r *Register) BeforeSave(_ *gorm.DB) error {
	if r.Date.IsZero() {
		r.Date = time.Now().In(time.UTC)
	} else {
		r.Date = r.Date.In(time.UTC)
	}

	r.Month = types.MonthOf(r.Date)
	return nil
}

// AfterFind resets the timezone of the date to UTC, see DefaultModel.AfterFind.
func (r *Register) AfterFind(_ *gorm.DB) error {
	r.Date = r.Date.In(time.UTC)
	return nil
}

// RegisterPatch is a partial update for a register. Nil fields are left
// untouched.
type RegisterPatch struct {
	Value   *decimal.Decimal
	Date    *time.Time
	Checked *bool
	Deleted *bool
}

// UpdateRegister applies a partial update to a register of a budget.
//
// The budget is looked up by ID and owner together. When no budget
// matches the pair, ErrRegisterNotAllowed is returned without revealing
// whether the budget exists for another owner.
func UpdateRegister(db *gorm.DB, ownerID, budgetID, registerID uuid.UUID, patch RegisterPatch) error {
	var budget Budget
	err := db.First(&budget, "id = ? AND owner_id = ?", budgetID, ownerID).Error
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRegisterNotAllowed
		}
		return err
	}

	var register Register
	err = db.First(&register, "id = ? AND budget_id = ?", registerID, budgetID).Error
	if err != nil {
		return err
	}

	if patch.Value != nil {
		register.Value = *patch.Value
	}

	if patch.Date != nil {
		register.Date = *patch.Date
	}

	if patch.Checked != nil {
		register.Checked = *patch.Checked
	}

	if patch.Deleted != nil {
		register.Deleted = *patch.Deleted
	}

	// Save instead of Updates so that BeforeSave re-derives the month
	// when the date changes
	return db.Save(&register).Error
}
