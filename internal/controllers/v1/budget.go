package v1

import (
	"net/http"
	"time"

	"github.com/centavo/backend/internal/httputil"
	"github.com/centavo/backend/internal/models"
	"github.com/centavo/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBudgetList)
		r.GET("", GetBudgets)
		r.POST("", CreateBudget)
		r.DELETE("", DeleteBudgets)
	}

	// Registers of a budget
	{
		r.OPTIONS("/:id/registers/:registerId", OptionsRegisterDetail)
		r.PATCH("/:id/registers/:registerId", UpdateRegister)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGetPostDelete(c)
}

// @Summary		Create budget
// @Description	Creates a new budget with its first register. A budget with a start date recurs monthly from that date on.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		201		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			X-User-ID	header	string			true	"ID of the requesting user"
// @Param			budget		body	BudgetEditable	true	"Budget"
// @Router			/v1/budgets [post]
func CreateBudget(c *gin.Context) {
	var editable BudgetEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	budget := editable.model(ownerID(c))

	err = models.DB.Create(&budget).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	data := newBudget(c, budget)
	c.JSON(http.StatusCreated, BudgetResponse{Data: &data})
}

// @Summary		List budgets
// @Description	Returns the budgets of the requesting user
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetListResponse
// @Failure		400	{object}	BudgetListResponse
// @Failure		500	{object}	BudgetListResponse
// @Param			X-User-ID	header	string	true	"ID of the requesting user"
// @Param			month		query	int		false	"Zero based month index. Only budgets overlapping the period are returned."
// @Param			year		query	int		false	"Year for the period filter. Defaults to the current year."
// @Param			class		query	string	false	"Filter by financial category"
// @Param			description	query	string	false	"Filter by description, glob patterns are supported"
// @Param			offset		query	uint	false	"The offset of the first budget returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of budgets to return. Defaults to 50."
// @Router			/v1/budgets [get]
func GetBudgets(c *gin.Context) {
	var filter BudgetQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we're filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	if slices.Contains(setFields, "Month") && (filter.Month < 0 || filter.Month > 11) {
		e := errMonthOutOfRange.Error()
		c.JSON(http.StatusBadRequest, BudgetListResponse{
			Error: &e,
		})
		return
	}

	var budgets []models.Budget
	err := models.DB.
		Preload("ActivePeriods").
		Preload("Registers").
		Where(&models.Budget{OwnerID: ownerID(c)}).
		Where(filter.model(), queryFields...).
		Order("created_at ASC").
		Find(&budgets).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetListResponse{
			Error: &e,
		})
		return
	}

	// The period and description filters need the full resource, they are
	// applied in memory after the query
	if slices.Contains(setFields, "Month") {
		year := filter.Year
		if year == 0 {
			year = time.Now().In(time.UTC).Year()
		}
		month := types.NewMonthFromIndex(year, filter.Month)

		matching := make([]models.Budget, 0, len(budgets))
		for _, budget := range budgets {
			if budget.InPeriod(month) {
				matching = append(matching, budget)
			}
		}
		budgets = matching
	}

	if filter.Description != "" {
		matching := make([]models.Budget, 0, len(budgets))
		for _, budget := range budgets {
			if glob.Glob(filter.Description, budget.Description) {
				matching = append(matching, budget)
			}
		}
		budgets = matching
	}

	total := int64(len(budgets))

	// Set the offset. Does not need checking since the default is 0
	if filter.Offset > uint(len(budgets)) {
		filter.Offset = uint(len(budgets))
	}
	budgets = budgets[filter.Offset:]

	// Default to 50 budgets and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	if limit >= 0 && limit < len(budgets) {
		budgets = budgets[:limit]
	}

	apiResources := make([]Budget, 0, len(budgets))
	for _, budget := range budgets {
		apiResources = append(apiResources, newBudget(c, budget))
	}

	c.JSON(http.StatusOK, BudgetListResponse{
		Data: apiResources,
		Pagination: &Pagination{
			Count:  len(apiResources),
			Total:  total,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Delete budgets
// @Description	Permanently deletes the budgets with the given IDs together with their registers
// @Tags			Budgets
// @Accept			json
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			X-User-ID	header	string			true	"ID of the requesting user"
// @Param			deletion	body	BudgetDeletion	true	"IDs of the budgets to delete"
// @Router			/v1/budgets [delete]
func DeleteBudgets(c *gin.Context) {
	var deletion BudgetDeletion

	err := httputil.BindData(c, &deletion)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	ids := make([]uuid.UUID, 0, len(deletion.IDs))
	for _, id := range deletion.IDs {
		ids = append(ids, id.UUID)
	}

	err = models.DeleteBudgets(models.DB, ownerID(c), ids)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
