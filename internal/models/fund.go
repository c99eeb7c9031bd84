package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mpdx/staff-report/internal/report"
	"github.com/mpdx/staff-report/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FundSnapshot is the fund data of an account for a month range, as
// delivered by the financial backend.
//
// There is at most one snapshot per account and month range. Storing a new
// one replaces the old one.
type FundSnapshot struct {
	DefaultModel
	AccountID  uuid.UUID   `gorm:"uniqueIndex:idx_fund_snapshot_period"`
	StartMonth types.Month `gorm:"uniqueIndex:idx_fund_snapshot_period"`
	EndMonth   types.Month `gorm:"uniqueIndex:idx_fund_snapshot_period"`
	Funds      []Fund      `gorm:"constraint:OnDelete:CASCADE"`
}

func (FundSnapshot) Self() string {
	return "Fund Snapshot"
}

// Version identifies the content of the snapshot. It changes whenever the
// snapshot is replaced.
func (s FundSnapshot) Version() string {
	return fmt.Sprintf("%s@%d", s.ID, s.UpdatedAt.UnixNano())
}

type Fund struct {
	DefaultModel
	FundSnapshotID uuid.UUID
	Position       int
	FundType       string
	Total          decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	DeficitLimit   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Balance        decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Categories     []FundCategory  `gorm:"constraint:OnDelete:CASCADE"`
}

type FundCategory struct {
	DefaultModel
	FundID          uuid.UUID
	Position        int
	Category        string
	Total           decimal.Decimal   `gorm:"type:DECIMAL(20,8)"`
	AveragePerMonth decimal.Decimal   `gorm:"type:DECIMAL(20,8)"`
	Subcategories   []FundSubcategory `gorm:"constraint:OnDelete:CASCADE"`
}

type FundSubcategory struct {
	DefaultModel
	FundCategoryID  uuid.UUID
	Position        int
	Subcategory     string
	Total           decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	AveragePerMonth decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Months          []FundMonth     `gorm:"constraint:OnDelete:CASCADE"`
}

type FundMonth struct {
	DefaultModel
	FundSubcategoryID uuid.UUID
	Position          int
	Month             types.Month
	Total             decimal.Decimal   `gorm:"type:DECIMAL(20,8)"`
	Transactions      []FundTransaction `gorm:"constraint:OnDelete:CASCADE"`
}

type FundTransaction struct {
	DefaultModel
	FundMonthID  uuid.UUID
	Position     int
	ExternalID   string          // ID of the transaction in the financial backend
	Amount       decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	TransactedAt time.Time
	Description  string
}

// AfterFind enforces UTC for the transaction date.
func (t *FundTransaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.TransactedAt = t.TransactedAt.In(time.UTC)
	return nil
}

// NewFundSnapshot builds a snapshot from report funds. The position of every
// element is recorded so that LoadSnapshot restores the source order.
func NewFundSnapshot(accountID uuid.UUID, start, end types.Month, funds []report.Fund) FundSnapshot {
	snapshot := FundSnapshot{
		AccountID:  accountID,
		StartMonth: start,
		EndMonth:   end,
		Funds:      make([]Fund, 0, len(funds)),
	}

	for i, f := range funds {
		fund := Fund{
			Position:     i,
			FundType:     string(f.FundType),
			Total:        f.Total,
			DeficitLimit: f.DeficitLimit,
			Balance:      f.Balance,
		}

		for j, c := range f.Categories {
			category := FundCategory{
				Position:        j,
				Category:        string(c.Category),
				Total:           c.Total,
				AveragePerMonth: c.AveragePerMonth,
			}

			for k, s := range c.Subcategories {
				subcategory := FundSubcategory{
					Position:        k,
					Subcategory:     string(s.Subcategory),
					Total:           s.Total,
					AveragePerMonth: s.AveragePerMonth,
				}

				for l, m := range s.BreakdownByMonth {
					month := FundMonth{
						Position: l,
						Month:    m.Month,
						Total:    m.Total,
					}

					for n, t := range m.Transactions {
						month.Transactions = append(month.Transactions, FundTransaction{
							Position:     n,
							ExternalID:   t.ID,
							Amount:       t.Amount,
							TransactedAt: t.TransactedAt.In(time.UTC),
							Description:  t.Description,
						})
					}

					subcategory.Months = append(subcategory.Months, month)
				}

				category.Subcategories = append(category.Subcategories, subcategory)
			}

			fund.Categories = append(fund.Categories, category)
		}

		snapshot.Funds = append(snapshot.Funds, fund)
	}

	return snapshot
}

// ReportFunds converts the snapshot to the funds the report engine works on.
func (s FundSnapshot) ReportFunds() []report.Fund {
	funds := make([]report.Fund, 0, len(s.Funds))

	for _, f := range s.Funds {
		fund := report.Fund{
			FundType:     report.FundType(f.FundType),
			Total:        f.Total,
			DeficitLimit: f.DeficitLimit,
			Balance:      f.Balance,
			Categories:   make([]report.Category, 0, len(f.Categories)),
		}

		for _, c := range f.Categories {
			category := report.Category{
				Category:        report.CategoryCode(c.Category),
				Total:           c.Total,
				AveragePerMonth: c.AveragePerMonth,
				Subcategories:   make([]report.Subcategory, 0, len(c.Subcategories)),
			}

			for _, sc := range c.Subcategories {
				subcategory := report.Subcategory{
					Subcategory:      report.SubcategoryCode(sc.Subcategory),
					Total:            sc.Total,
					AveragePerMonth:  sc.AveragePerMonth,
					BreakdownByMonth: make([]report.MonthBreakdown, 0, len(sc.Months)),
				}

				for _, m := range sc.Months {
					month := report.MonthBreakdown{
						Month:        m.Month,
						Total:        m.Total,
						Transactions: make([]report.RawTransaction, 0, len(m.Transactions)),
					}

					for _, t := range m.Transactions {
						month.Transactions = append(month.Transactions, report.RawTransaction{
							ID:           t.ExternalID,
							Amount:       t.Amount,
							TransactedAt: types.DateOf(t.TransactedAt),
							Description:  t.Description,
						})
					}

					subcategory.BreakdownByMonth = append(subcategory.BreakdownByMonth, month)
				}

				category.Subcategories = append(category.Subcategories, subcategory)
			}

			fund.Categories = append(fund.Categories, category)
		}

		funds = append(funds, fund)
	}

	return funds
}

// ReplaceSnapshot stores the snapshot, replacing an existing snapshot for
// the same account and month range.
func ReplaceSnapshot(db *gorm.DB, snapshot *FundSnapshot) error {
	if snapshot.StartMonth.After(snapshot.EndMonth) {
		return ErrMonthRangeInvalid
	}

	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("account_id = ? AND start_month = ? AND end_month = ?", snapshot.AccountID, snapshot.StartMonth, snapshot.EndMonth).
			Delete(&FundSnapshot{}).Error
		if err != nil {
			return err
		}

		return tx.Create(snapshot).Error
	})
}

func byPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}

// LoadSnapshot loads the snapshot for an account and month range with all
// funds, categories, subcategories, months and transactions in source order.
func LoadSnapshot(db *gorm.DB, accountID uuid.UUID, start, end types.Month) (FundSnapshot, error) {
	var snapshot FundSnapshot

	err := db.
		Preload("Funds", byPosition).
		Preload("Funds.Categories", byPosition).
		Preload("Funds.Categories.Subcategories", byPosition).
		Preload("Funds.Categories.Subcategories.Months", byPosition).
		Preload("Funds.Categories.Subcategories.Months.Transactions", byPosition).
		Where("account_id = ? AND start_month = ? AND end_month = ?", accountID, start, end).
		First(&snapshot).Error
	if err != nil {
		return FundSnapshot{}, err
	}

	return snapshot, nil
}

// ListSnapshots lists the snapshots of an account without their funds,
// ordered by month range.
func ListSnapshots(db *gorm.DB, accountID uuid.UUID) ([]FundSnapshot, error) {
	snapshots := make([]FundSnapshot, 0)

	err := db.
		Where("account_id = ?", accountID).
		Order("start_month, end_month").
		Find(&snapshots).Error

	return snapshots, err
}
