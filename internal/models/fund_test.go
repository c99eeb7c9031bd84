package models_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/mpdx/staff-report/internal/models"
	"github.com/mpdx/staff-report/internal/report"
	"github.com/mpdx/staff-report/internal/types"
	"github.com/shopspring/decimal"
)

var (
	january = types.NewMonth(2025, time.January)
	march   = types.NewMonth(2025, time.March)
)

func testFunds() []report.Fund {
	return []report.Fund{
		{
			FundType:     "Primary",
			Total:        decimal.RequireFromString("1234.56"),
			DeficitLimit: decimal.NewFromInt(-500),
			Balance:      decimal.NewFromInt(800),
			Categories: []report.Category{
				{
					Category: report.CategoryMinistry,
					Total:    decimal.NewFromInt(-200),
					Subcategories: []report.Subcategory{
						{
							Subcategory: report.SubcategoryTravel,
							BreakdownByMonth: []report.MonthBreakdown{
								{
									Month: january,
									Transactions: []report.RawTransaction{
										{ID: "t-2", Amount: decimal.NewFromInt(-120), TransactedAt: types.DateOf(time.Date(2025, 1, 18, 0, 0, 0, 0, time.UTC)), Description: "Train"},
										{ID: "t-1", Amount: decimal.NewFromInt(-80), TransactedAt: types.DateOf(time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)), Description: "Hotel"},
									},
								},
							},
						},
					},
				},
				{
					Category: report.CategoryAdditionalSalary,
					Subcategories: []report.Subcategory{
						{
							Subcategory: report.SubcategoryBonus,
							BreakdownByMonth: []report.MonthBreakdown{
								{Month: january, Transactions: []report.RawTransaction{{ID: "t-3", Amount: decimal.RequireFromString("100.25"), TransactedAt: types.DateOf(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC))}}},
								{Month: march, Transactions: []report.RawTransaction{}},
							},
						},
					},
				},
			},
		},
		{FundType: "Savings"},
	}
}

func (suite *TestSuiteStandard) TestReplaceAndLoadSnapshot() {
	accountID := uuid.New()
	stored := suite.createTestSnapshot(models.NewFundSnapshot(accountID, january, march, testFunds()))
	suite.Assert().NotEqual(uuid.Nil, stored.ID)

	loaded, err := models.LoadSnapshot(models.DB, accountID, january, march)
	suite.Require().Nil(err)
	suite.Assert().Equal(stored.ID, loaded.ID)
	suite.Assert().True(loaded.StartMonth.Equal(january))
	suite.Assert().True(loaded.EndMonth.Equal(march))

	funds := loaded.ReportFunds()
	suite.Require().Len(funds, 2)
	suite.Assert().Equal(report.FundType("Primary"), funds[0].FundType)
	suite.Assert().Equal(report.FundType("Savings"), funds[1].FundType)
	suite.Assert().True(decimal.RequireFromString("1234.56").Equal(funds[0].Total))
	suite.Assert().True(decimal.NewFromInt(-500).Equal(funds[0].DeficitLimit))

	// Source order is preserved on every level
	categories := funds[0].Categories
	suite.Require().Len(categories, 2)
	suite.Assert().Equal(report.CategoryMinistry, categories[0].Category)
	suite.Assert().Equal(report.CategoryAdditionalSalary, categories[1].Category)

	transactions := categories[0].Subcategories[0].BreakdownByMonth[0].Transactions
	suite.Require().Len(transactions, 2)
	suite.Assert().Equal("t-2", transactions[0].ID)
	suite.Assert().Equal("Train", transactions[0].Description)
	suite.Assert().True(decimal.NewFromInt(-120).Equal(transactions[0].Amount))
	suite.Assert().True(time.Date(2025, 1, 18, 0, 0, 0, 0, time.UTC).Equal(transactions[0].TransactedAt.Time))
	suite.Assert().Equal(time.UTC, transactions[0].TransactedAt.Location())
	suite.Assert().Equal("t-1", transactions[1].ID)

	months := categories[1].Subcategories[0].BreakdownByMonth
	suite.Require().Len(months, 2)
	suite.Assert().True(months[0].Month.Equal(january))
	suite.Assert().True(months[1].Month.Equal(march))
	suite.Assert().Len(months[1].Transactions, 0)
	suite.Assert().True(decimal.RequireFromString("100.25").Equal(months[0].Transactions[0].Amount))
}

func (suite *TestSuiteStandard) TestReplaceSnapshotReplaces() {
	accountID := uuid.New()
	first := suite.createTestSnapshot(models.NewFundSnapshot(accountID, january, march, testFunds()))

	replacement := testFunds()[:1]
	replacement[0].Categories = replacement[0].Categories[1:]
	second := suite.createTestSnapshot(models.NewFundSnapshot(accountID, january, march, replacement))

	suite.Assert().NotEqual(first.ID, second.ID)
	suite.Assert().NotEqual(first.Version(), second.Version())

	loaded, err := models.LoadSnapshot(models.DB, accountID, january, march)
	suite.Require().Nil(err)
	suite.Assert().Equal(second.ID, loaded.ID)
	suite.Require().Len(loaded.Funds, 1)
	suite.Require().Len(loaded.Funds[0].Categories, 1)

	// Children of the replaced snapshot are deleted with it
	var count int64
	suite.Require().Nil(models.DB.Model(&models.FundTransaction{}).Count(&count).Error)
	suite.Assert().Equal(int64(1), count)

	suite.Require().Nil(models.DB.Model(&models.FundSnapshot{}).Count(&count).Error)
	suite.Assert().Equal(int64(1), count)
}

func (suite *TestSuiteStandard) TestReplaceSnapshotOtherRange() {
	accountID := uuid.New()
	suite.createTestSnapshot(models.NewFundSnapshot(accountID, january, march, testFunds()))
	suite.createTestSnapshot(models.NewFundSnapshot(accountID, march, march, nil))
	suite.createTestSnapshot(models.NewFundSnapshot(uuid.New(), january, march, nil))

	snapshots, err := models.ListSnapshots(models.DB, accountID)
	suite.Require().Nil(err)
	suite.Require().Len(snapshots, 2)
	suite.Assert().True(snapshots[0].StartMonth.Equal(january))
	suite.Assert().True(snapshots[1].StartMonth.Equal(march))
	suite.Assert().Len(snapshots[0].Funds, 0, "listing does not load funds")
}

func (suite *TestSuiteStandard) TestReplaceSnapshotInvalidRange() {
	snapshot := models.NewFundSnapshot(uuid.New(), march, january, nil)

	err := models.ReplaceSnapshot(models.DB, &snapshot)
	suite.Assert().ErrorIs(err, models.ErrMonthRangeInvalid)
}

func (suite *TestSuiteStandard) TestListSnapshotsEmpty() {
	snapshots, err := models.ListSnapshots(models.DB, uuid.New())
	suite.Require().Nil(err)
	suite.Assert().NotNil(snapshots)
	suite.Assert().Len(snapshots, 0)
}
