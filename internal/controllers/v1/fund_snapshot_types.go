package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	google_uuid "github.com/google/uuid"
	"github.com/mpdx/staff-report/internal/models"
	"github.com/mpdx/staff-report/internal/report"
	"github.com/mpdx/staff-report/internal/types"
	"github.com/mpdx/staff-report/internal/uuid"
)

// SnapshotQuery identifies the fund snapshot of an account for a month range.
type SnapshotQuery struct {
	Account    uuid.UUID   `form:"account"`    // ID of the account
	StartMonth types.Month `form:"startMonth"` // First month of the range, YYYY-MM
	EndMonth   types.Month `form:"endMonth"`   // Last month of the range, YYYY-MM
}

func (q SnapshotQuery) validate(requireRange bool) error {
	if q.Account.IsNil() {
		return errAccountParameter
	}

	if requireRange && (q.StartMonth.IsZero() || q.EndMonth.IsZero()) {
		return errMonthRangeNotSet
	}

	return nil
}

type FundSnapshotEditable struct {
	AccountID  google_uuid.UUID `json:"accountId" example:"9c1f8a12-6a5e-4b9e-a0a4-0d41cb7c7f52"` // ID of the account the funds belong to
	StartMonth types.Month      `json:"startMonth" example:"2025-01-01"`                          // First month of the range
	EndMonth   types.Month      `json:"endMonth" example:"2025-03-01"`                            // Last month of the range
	Funds      []report.Fund    `json:"funds"`                                                    // Funds with their categories and transactions
}

func (editable FundSnapshotEditable) model() models.FundSnapshot {
	return models.NewFundSnapshot(editable.AccountID, editable.StartMonth, editable.EndMonth, editable.Funds)
}

type FundSnapshotLinks struct {
	Self       string `json:"self" example:"https://example.com/api/v1/fund-snapshots?account=9c1f8a12-6a5e-4b9e-a0a4-0d41cb7c7f52&startMonth=2025-01&endMonth=2025-03"`
	Income     string `json:"income" example:"https://example.com/api/v1/staff-expense-report/income?account=9c1f8a12-6a5e-4b9e-a0a4-0d41cb7c7f52&startMonth=2025-01&endMonth=2025-03"`
	Expense    string `json:"expense" example:"https://example.com/api/v1/staff-expense-report/expense?account=9c1f8a12-6a5e-4b9e-a0a4-0d41cb7c7f52&startMonth=2025-01&endMonth=2025-03"`
	Categories string `json:"categories" example:"https://example.com/api/v1/staff-expense-report/categories?account=9c1f8a12-6a5e-4b9e-a0a4-0d41cb7c7f52&startMonth=2025-01&endMonth=2025-03"`
}

type FundSnapshot struct {
	ID        google_uuid.UUID `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	CreatedAt time.Time        `json:"createdAt" example:"2025-01-17T20:14:44.322Z"`
	UpdatedAt time.Time        `json:"updatedAt" example:"2025-01-17T20:14:44.322Z"`
	Version   string           `json:"version"` // Changes every time the snapshot is replaced
	FundSnapshotEditable
	Links FundSnapshotLinks `json:"links"`
}

func newFundSnapshot(c *gin.Context, model models.FundSnapshot) FundSnapshot {
	url := c.GetString(string(models.DBContextURL))
	query := fmt.Sprintf("account=%s&startMonth=%s&endMonth=%s", model.AccountID, model.StartMonth, model.EndMonth)

	return FundSnapshot{
		ID:        model.ID,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
		Version:   model.Version(),
		FundSnapshotEditable: FundSnapshotEditable{
			AccountID:  model.AccountID,
			StartMonth: model.StartMonth,
			EndMonth:   model.EndMonth,
			Funds:      model.ReportFunds(),
		},
		Links: FundSnapshotLinks{
			Self:       fmt.Sprintf("%s/v1/fund-snapshots?%s", url, query),
			Income:     fmt.Sprintf("%s/v1/staff-expense-report/income?%s", url, query),
			Expense:    fmt.Sprintf("%s/v1/staff-expense-report/expense?%s", url, query),
			Categories: fmt.Sprintf("%s/v1/staff-expense-report/categories?%s", url, query),
		},
	}
}

type FundSnapshotResponse struct {
	Data  *FundSnapshot `json:"data"`                                                              // Data for the fund snapshot
	Error *string       `json:"error,omitempty" example:"the account query parameter must be set"` // The error, if any occurred
}

type FundSnapshotListResponse struct {
	Data  []FundSnapshot `json:"data"`                                                              // List of fund snapshots, without funds
	Error *string        `json:"error,omitempty" example:"the account query parameter must be set"` // The error, if any occurred
}
