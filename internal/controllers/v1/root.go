package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mpdx/staff-report/internal/httputil"
	"github.com/mpdx/staff-report/internal/models"
)

type RootResponse struct {
	Links RootLinks `json:"links"` // Links for the v1 API
}

type RootLinks struct {
	FundSnapshots      string `json:"fundSnapshots" example:"https://example.com/api/v1/fund-snapshots"`            // URL of fund snapshot endpoint
	StaffExpenseReport string `json:"staffExpenseReport" example:"https://example.com/api/v1/staff-expense-report"` // URL of the report categories endpoint
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	RootResponse
// @Router			/v1 [get]
func GetRoot(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			FundSnapshots:      url + "/v1/fund-snapshots",
			StaffExpenseReport: url + "/v1/staff-expense-report/categories",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}
