package v1

import (
	"net/http"

	"github.com/centavo/backend/internal/httputil"
	"github.com/centavo/backend/internal/models"
	"github.com/centavo/backend/internal/types"
	"github.com/gin-gonic/gin"
)

type SummaryResponse struct {
	Data  *Summary `json:"data"`  // The summary of the month
	Error *string  `json:"error"` // The error, if any occurred
}

type Summary struct {
	Year  int `json:"year" example:"2025"` // The summarized year
	Month int `json:"month" example:"8"`   // The summarized month as zero based index
	models.Summary
}

// RegisterSummaryRoutes registers the routes for summaries with
// the RouterGroup that is passed.
func RegisterSummaryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:year/:month", OptionsSummaryDetail)
	r.GET("/:year/:month", GetSummary)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Summaries
// @Success		204
// @Router			/v1/summaries/{year}/{month} [options]
func OptionsSummaryDetail(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get summary
// @Description	Materializes the registers of the month and returns its financial summary. The summary is recomputed on every request.
// @Tags			Summaries
// @Produce		json
// @Success		200	{object}	SummaryResponse
// @Failure		400	{object}	SummaryResponse
// @Failure		500	{object}	SummaryResponse
// @Param			X-User-ID	header	string	true	"ID of the requesting user"
// @Param			year		path	int		true	"The year"
// @Param			month		path	int		true	"Zero based month index, 0 is January"
// @Router			/v1/summaries/{year}/{month} [get]
func GetSummary(c *gin.Context) {
	var uri URIPeriod
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, SummaryResponse{
			Error: &e,
		})
		return
	}

	if uri.Year < 1900 || uri.Year > 2100 {
		e := errYearOutOfRange.Error()
		c.JSON(http.StatusBadRequest, SummaryResponse{
			Error: &e,
		})
		return
	}

	if uri.Month < 0 || uri.Month > 11 {
		e := errMonthOutOfRange.Error()
		c.JSON(http.StatusBadRequest, SummaryResponse{
			Error: &e,
		})
		return
	}

	month := types.NewMonthFromIndex(uri.Year, uri.Month)

	summary, err := models.Summarize(models.DB, ownerID(c), month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{
		Data: &Summary{
			Year:    uri.Year,
			Month:   uri.Month,
			Summary: summary,
		},
	})
}
