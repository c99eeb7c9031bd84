package v1_test

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mpdx/staff-report/internal/report"
	"github.com/mpdx/staff-report/internal/types"
	"github.com/shopspring/decimal"
)

var (
	testAccountID = uuid.MustParse("9c1f8a12-6a5e-4b9e-a0a4-0d41cb7c7f52")
	january       = types.NewMonth(2025, time.January)
	march         = types.NewMonth(2025, time.March)
)

// reportURL returns the URL of a report endpoint for the test snapshot with
// January 2025 as target month.
func reportURL(path, query string) string {
	url := fmt.Sprintf("http://example.com/v1/staff-expense-report%s?account=%s&startMonth=2025-01&endMonth=2025-03&month=2025-01", path, testAccountID)
	if query != "" {
		url += "&" + query
	}
	return url
}

func raw(id, amount string, transactedAt time.Time) report.RawTransaction {
	return report.RawTransaction{
		ID:           id,
		Amount:       decimal.RequireFromString(amount),
		TransactedAt: types.DateOf(transactedAt),
		Description:  "Transaction " + id,
	}
}

func category(code report.CategoryCode, subcategory report.SubcategoryCode, transactions ...report.RawTransaction) report.Category {
	return report.Category{
		Category: code,
		Subcategories: []report.Subcategory{
			{
				Subcategory: subcategory,
				BreakdownByMonth: []report.MonthBreakdown{
					{Month: january, Transactions: transactions},
				},
			},
		},
	}
}

// testFunds returns a Primary fund with transactions in January and
// February 2025 and an empty Savings fund.
func testFunds() []report.Fund {
	jan := func(d int) time.Time { return time.Date(2025, time.January, d, 0, 0, 0, 0, time.UTC) }

	return []report.Fund{
		{
			FundType: "Primary",
			Categories: []report.Category{
				category(report.CategorySalary, report.SubcategoryPayroll,
					raw("s1", "2500", jan(1)),
					raw("s2", "-300", jan(31)),
				),
				category(report.CategoryOther, report.SubcategoryOther,
					raw("o1", "-25.50", jan(10)),
					raw("o2", "0", jan(11)),
				),
				category(report.CategoryMinistry, report.SubcategoryTravel,
					raw("m1", "-80", jan(5)),
					raw("m2", "-120", jan(18)),
					raw("m3", "-40", time.Date(2025, time.February, 2, 0, 0, 0, 0, time.UTC)),
				),
				category(report.CategoryBenefits, report.SubcategoryMedical,
					raw("b1", "60", jan(12)),
				),
			},
		},
		{FundType: "Savings"},
	}
}
