package v1

import (
	"github.com/centavo/backend/internal/httputil"
	ct_uuid "github.com/centavo/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type URIID struct {
	ID ct_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type URIRegister struct {
	URIID
	RegisterID ct_uuid.UUID `uri:"registerId" binding:"required" format:"UUID"` // ID of the register
}

type URIPeriod struct {
	Year  int `uri:"year" binding:"required"` // The year
	Month int `uri:"month"`                   // Zero based month index, 0 is January
}

type Pagination struct {
	Count  int   `json:"count"`  // The amount of records returned in this response
	Offset uint  `json:"offset"` // The offset for the first record returned
	Limit  int   `json:"limit"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total"`  // The total number of resources matching the query
}

// ownerID returns the ID of the requesting user, resolved by the owner
// middleware from the X-User-ID header.
func ownerID(c *gin.Context) uuid.UUID {
	return c.MustGet(httputil.ContextOwner).(uuid.UUID)
}
