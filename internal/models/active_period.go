package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivePeriod is a date range during which a recurring budget produces
// registers. A one-off budget has a single period without dates.
type ActivePeriod struct {
	DefaultModel
	BudgetID  uuid.UUID  `json:"budgetId"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

var (
	ErrPeriodEndsBeforeStart = errors.New("the end date of an active period must not be before its start date")
	ErrPeriodEndWithoutStart = errors.New("an active period with an end date requires a start date")
)

// BeforeSave validates the period dates and normalizes them to UTC.
func (p *ActivePeriod) BeforeSave(_ *gorm.DB) error {
	if p.EndDate != nil && p.StartDate == nil {
		return ErrPeriodEndWithoutStart
	}

	if p.StartDate != nil && p.EndDate != nil && p.EndDate.Before(*p.StartDate) {
		return ErrPeriodEndsBeforeStart
	}

	if p.StartDate != nil {
		start := p.StartDate.In(time.UTC)
		p.StartDate = &start
	}

	if p.EndDate != nil {
		end := p.EndDate.In(time.UTC)
		p.EndDate = &end
	}

	return nil
}

// AfterFind resets the timezone of the dates to UTC, see DefaultModel.AfterFind.
func (p *ActivePeriod) AfterFind(_ *gorm.DB) error {
	if p.StartDate != nil {
		start := p.StartDate.In(time.UTC)
		p.StartDate = &start
	}

	if p.EndDate != nil {
		end := p.EndDate.In(time.UTC)
		p.EndDate = &end
	}

	return nil
}
