package report_test

import (
	"time"

	"github.com/mpdx/staff-report/internal/report"
	"github.com/mpdx/staff-report/internal/types"
	"github.com/shopspring/decimal"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T {
	return &v
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
					{
						Month:        types.NewMonth(2025, time.January),
						Transactions: transactions,
					},
				},
			},
		},
	}
}

// additionalSalaryFund has one income and two expense transactions in January 2025.
func additionalSalaryFund() report.Fund {
	return report.Fund{
		FundType: "Primary",
		Categories: []report.Category{
			category(report.CategoryAdditionalSalary, report.SubcategoryBonus,
				raw("1", "100", day(2025, time.January, 15)),
				raw("2", "-100", day(2025, time.January, 20)),
				raw("3", "-1000", day(2025, time.January, 24)),
			),
		},
	}
}

// mixedFund has several categories, a zero amount transaction and one
// transaction outside of January 2025.
func mixedFund() report.Fund {
	return report.Fund{
		FundType: "Primary",
		Categories: []report.Category{
			category(report.CategorySalary, report.SubcategoryPayroll,
				raw("s1", "2500", day(2025, time.January, 1)),
				raw("s2", "-300", day(2025, time.January, 31)),
			),
			category(report.CategoryOther, report.SubcategoryOther,
				raw("o1", "-25.50", day(2025, time.January, 10)),
				raw("o2", "0", day(2025, time.January, 11)),
			),
			category(report.CategoryMinistry, report.SubcategoryTravel,
				raw("m1", "-80", day(2025, time.January, 5)),
				raw("m2", "-120", day(2025, time.January, 18)),
				raw("m3", "-40", day(2025, time.February, 2)),
			),
			category(report.CategoryBenefits, report.SubcategoryMedical,
				raw("b1", "60", day(2025, time.January, 12)),
			),
		},
	}
}
