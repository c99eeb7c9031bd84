package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	google_uuid "github.com/google/uuid"
	"github.com/mpdx/staff-report/internal/httputil"
	"github.com/mpdx/staff-report/internal/models"
	"github.com/rs/zerolog/log"
)

// RegisterFundSnapshotRoutes registers the routes for fund snapshots with
// the RouterGroup that is passed.
func (co Controller) RegisterFundSnapshotRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsFundSnapshots)
	r.GET("", GetFundSnapshots)
	r.POST("", CreateFundSnapshot)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Fund Snapshots
// @Success		204
// @Router			/v1/fund-snapshots [options]
func OptionsFundSnapshots(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Get fund snapshots
// @Description	Returns the fund snapshot for the account and month range. If no month range is given, all snapshots of the account are listed without their funds.
// @Tags			Fund Snapshots
// @Produce		json
// @Success		200	{object}	FundSnapshotResponse
// @Failure		400	{object}	FundSnapshotResponse
// @Failure		404	{object}	FundSnapshotResponse
// @Failure		500	{object}	FundSnapshotResponse
// @Param			account		query	string	true	"ID of the account"
// @Param			startMonth	query	string	false	"First month of the range, YYYY-MM"
// @Param			endMonth	query	string	false	"Last month of the range, YYYY-MM"
// @Router			/v1/fund-snapshots [get]
func GetFundSnapshots(c *gin.Context) {
	var q SnapshotQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, FundSnapshotResponse{Error: &s})
		return
	}

	if err := q.validate(false); err != nil {
		s := err.Error()
		c.JSON(status(err), FundSnapshotResponse{Error: &s})
		return
	}

	if q.StartMonth.IsZero() && q.EndMonth.IsZero() {
		snapshots, err := models.ListSnapshots(models.DB, q.Account.UUID)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), FundSnapshotListResponse{Error: &s})
			return
		}

		data := make([]FundSnapshot, 0, len(snapshots))
		for _, snapshot := range snapshots {
			data = append(data, newFundSnapshot(c, snapshot))
		}

		c.JSON(http.StatusOK, FundSnapshotListResponse{Data: data})
		return
	}

	if err := q.validate(true); err != nil {
		s := err.Error()
		c.JSON(status(err), FundSnapshotResponse{Error: &s})
		return
	}

	snapshot, err := models.LoadSnapshot(models.DB, q.Account.UUID, q.StartMonth, q.EndMonth)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FundSnapshotResponse{Error: &s})
		return
	}

	data := newFundSnapshot(c, snapshot)
	c.JSON(http.StatusOK, FundSnapshotResponse{Data: &data})
}

// @Summary		Store fund snapshot
// @Description	Stores the funds of an account for a month range. An existing snapshot for the same account and month range is replaced.
// @Tags			Fund Snapshots
// @Accept			json
// @Produce		json
// @Success		201			{object}	FundSnapshotResponse
// @Failure		400			{object}	FundSnapshotResponse
// @Failure		500			{object}	FundSnapshotResponse
// @Param			snapshot	body		FundSnapshotEditable	true	"Fund snapshot"
// @Router			/v1/fund-snapshots [post]
func CreateFundSnapshot(c *gin.Context) {
	var editable FundSnapshotEditable
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(status(err), FundSnapshotResponse{Error: &s})
		return
	}

	if editable.AccountID == google_uuid.Nil {
		s := errAccountID.Error()
		c.JSON(http.StatusBadRequest, FundSnapshotResponse{Error: &s})
		return
	}

	if editable.StartMonth.IsZero() || editable.EndMonth.IsZero() {
		s := errMonthRangeBody.Error()
		c.JSON(http.StatusBadRequest, FundSnapshotResponse{Error: &s})
		return
	}

	model := editable.model()
	if err := models.ReplaceSnapshot(models.DB, &model); err != nil {
		s := err.Error()
		c.JSON(status(err), FundSnapshotResponse{Error: &s})
		return
	}

	log.Debug().Str("account", model.AccountID.String()).Str("version", model.Version()).Msg("fund snapshot stored")

	data := newFundSnapshot(c, model)
	c.JSON(http.StatusCreated, FundSnapshotResponse{Data: &data})
}
