package v1

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mpdx/staff-report/internal/config"
	"github.com/mpdx/staff-report/internal/report"
)

// Controller serves the v1 API.
type Controller struct {
	Service *report.Service

	// Now is the reference time for named date ranges and the default
	// target month.
	Now func() time.Time
}

// NewController sets up the report service from the configuration.
func NewController(cfg config.Config) (Controller, error) {
	l, err := cfg.Localizer()
	if err != nil {
		return Controller{}, err
	}

	service, err := report.NewService(cfg.ReportCacheSize, l)
	if err != nil {
		return Controller{}, err
	}

	return Controller{
		Service: service,
		Now:     time.Now,
	}, nil
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", GetRoot)
	r.OPTIONS("", OptionsRoot)

	co.RegisterFundSnapshotRoutes(r.Group("/fund-snapshots"))
	co.RegisterReportRoutes(r.Group("/staff-expense-report"))
}

func (co Controller) now() time.Time {
	if co.Now == nil {
		return time.Now()
	}
	return co.Now()
}
