package v1

import (
	"net/http"
	"time"

	"github.com/centavo/backend/internal/httputil"
	"github.com/centavo/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterEditable represents the fields of a register that can be
// patched. Fields that are not part of the request body stay untouched.
type RegisterEditable struct {
	Value   *decimal.Decimal `json:"value" example:"2150.00"` // New value of the occurrence
	Date    *time.Time       `json:"date"`                    // New date of the occurrence
	Checked *bool            `json:"checked"`                 // Has the occurrence been settled?
	Deleted *bool            `json:"deleted"`                 // Soft delete flag
}

func (editable RegisterEditable) patch() models.RegisterPatch {
	return models.RegisterPatch{
		Value:   editable.Value,
		Date:    editable.Date,
		Checked: editable.Checked,
		Deleted: editable.Deleted,
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets/{id}/registers/{registerId} [options]
func OptionsRegisterDetail(c *gin.Context) {
	httputil.OptionsPatch(c)
}

// @Summary		Update register
// @Description	Updates a register of a budget owned by the requesting user. Only values to be updated need to be specified.
// @Tags			Budgets
// @Accept			json
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			X-User-ID	header	string				true	"ID of the requesting user"
// @Param			id			path	string				true	"ID of the budget"
// @Param			registerId	path	string				true	"ID of the register"
// @Param			register	body	RegisterEditable	true	"Register"
// @Router			/v1/budgets/{id}/registers/{registerId} [patch]
func UpdateRegister(c *gin.Context) {
	var uri URIRegister
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: httputil.ErrInvalidUUID.Error(),
		})
		return
	}

	var editable RegisterEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	if editable.Value != nil && editable.Value.IsNegative() {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errRegisterValueNegative.Error(),
		})
		return
	}

	err = models.UpdateRegister(models.DB, ownerID(c), uri.ID.UUID, uri.RegisterID.UUID, editable.patch())
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
