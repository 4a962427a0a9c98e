package v1

import (
	"fmt"
	"time"

	"github.com/centavo/backend/internal/httputil"
	"github.com/centavo/backend/internal/models"
	ct_uuid "github.com/centavo/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetEditable represents all user configurable parameters of a budget
type BudgetEditable struct {
	Value         decimal.Decimal      `json:"value" example:"1999.99"`                                                                      // Nominal value of the budget
	Class         models.BudgetClass   `json:"budgetClass" binding:"required,oneof=income expense creditCard pension investment cashBox" example:"income"` // Financial category
	Description   string               `json:"description" example:"Salary" default:"Extra"`                                                 // Free text description
	ExpectedDay   int                  `json:"expectedDay" binding:"omitempty,min=1,max=31" example:"5"`                                     // Day of month a register is expected on
	Consolidated  *bool                `json:"consolidated" default:"true"`                                                                  // Is the initial register already settled?
	StartDate     *time.Time           `json:"startDate"`                                                                                    // Start of the recurrence, unset for one-off budgets
	EndDate       *time.Time           `json:"endDate"`                                                                                      // Optional end of the recurrence
	PaymentMethod models.PaymentMethod `json:"paymentMethod" binding:"omitempty,oneof=credit debit pix transfer" default:"debit"`            // How the budget is settled
}

// model normalizes the editable into the budget to persist, together with
// its single active period and its initial register.
func (editable BudgetEditable) model(ownerID uuid.UUID) models.Budget {
	consolidated := true
	if editable.Consolidated != nil {
		consolidated = *editable.Consolidated
	}

	expectedDay := editable.ExpectedDay
	if expectedDay == 0 {
		if editable.StartDate != nil {
			expectedDay = editable.StartDate.Day()
		} else {
			expectedDay = time.Now().In(time.UTC).Day()
		}
	}

	registerDate := time.Now().In(time.UTC)
	if editable.StartDate != nil {
		registerDate = *editable.StartDate
	}

	return models.Budget{
		OwnerID:       ownerID,
		Class:         editable.Class,
		Description:   editable.Description,
		CurrentValue:  editable.Value,
		ExpectedDay:   expectedDay,
		Recurrent:     editable.StartDate != nil,
		PaymentMethod: editable.PaymentMethod,
		ActivePeriods: []models.ActivePeriod{
			{
				StartDate: editable.StartDate,
				EndDate:   editable.EndDate,
			},
		},
		Registers: []models.Register{
			{
				Value:   editable.Value,
				Date:    registerDate,
				Checked: consolidated,
			},
		},
	}
}

type BudgetLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/budgets/3b1ea324-d438-4419-882a-2fc91d71772f"` // The budget itself
}

type Budget struct {
	models.Budget
	Links BudgetLinks `json:"links"`
}

func newBudget(c *gin.Context, model models.Budget) Budget {
	return Budget{
		Budget: model,
		Links: BudgetLinks{
			Self: fmt.Sprintf("%s/budgets/%s", httputil.RequestPathV1(c), model.ID),
		},
	}
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                          // Data for the budget
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetListResponse struct {
	Data       []Budget    `json:"data"`                                                          // List of budgets
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BudgetQueryFilter struct {
	Month       int                `form:"month" filterField:"false"`       // Zero based month index, 0 is January. Only budgets overlapping the period are returned.
	Year        int                `form:"year" filterField:"false"`        // Year for the period filter, defaults to the current year
	Class       models.BudgetClass `form:"class"`                           // By financial category
	Description string             `form:"description" filterField:"false"` // By description, glob patterns are supported
	Offset      uint               `form:"offset" filterField:"false"`      // The offset of the first budget returned. Defaults to 0.
	Limit       int                `form:"limit" filterField:"false"`       // Maximum number of budgets to return. Defaults to 50.
}

func (f BudgetQueryFilter) model() models.Budget {
	return models.Budget{
		Class: f.Class,
	}
}

// BudgetDeletion is the request body for bulk deleting budgets.
type BudgetDeletion struct {
	IDs []ct_uuid.UUID `json:"ids" binding:"required"` // IDs of the budgets to delete
}
