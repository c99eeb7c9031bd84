package v1

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mpdx/staff-report/internal/httputil"
	"github.com/mpdx/staff-report/internal/models"
	"github.com/mpdx/staff-report/internal/report"
	"github.com/mpdx/staff-report/internal/types"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// RegisterReportRoutes registers the routes for the staff expense report
// with the RouterGroup that is passed.
func (co Controller) RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/categories", OptionsReport)
	r.GET("/categories", co.GetCategories)
	r.OPTIONS("/print", OptionsReport)
	r.GET("/print", co.GetPrint)
	r.OPTIONS("/download/:reportType", OptionsReport)
	r.GET("/download/:reportType", co.GetDownload)
	r.OPTIONS("/:tableType", OptionsReport)
	r.GET("/:tableType", co.GetTable)
	r.OPTIONS("/:tableType/breakdown/:category", OptionsReport)
	r.GET("/:tableType/breakdown/:category", co.GetBreakdown)
}

// reportData is the fund data of a report request with resolved filters.
type reportData struct {
	snapshot  models.FundSnapshot
	funds     []report.Fund
	target    time.Time
	filters   report.Filters
	available []report.CategoryCode
}

// loadReport loads the snapshot selected by the query and resolves the
// date range and category selection.
func (co Controller) loadReport(q ReportQuery) (reportData, error) {
	if err := q.validate(true); err != nil {
		return reportData{}, err
	}

	snapshot, err := models.LoadSnapshot(models.DB, q.Account.UUID, q.StartMonth, q.EndMonth)
	if err != nil {
		return reportData{}, err
	}

	now := co.now()
	filters, err := q.filters(now)
	if err != nil {
		return reportData{}, err
	}

	d := reportData{
		snapshot: snapshot,
		funds:    snapshot.ReportFunds(),
		target:   q.targetTime(now),
		filters:  filters,
	}

	d.available = report.GetAvailableCategories(d.funds, &d.filters, d.target)
	d.filters.Categories = expandCategories(q.Categories, d.available)

	return d, nil
}

// rows returns the rows of one table. A fund type that is not part of
// the snapshot yields an empty table.
func (co Controller) rows(d reportData, fundType report.FundType, tableType report.TableType) []report.Transaction {
	fund := report.Fund{FundType: fundType}
	for _, f := range d.funds {
		if f.FundType == fundType {
			fund = f
			break
		}
	}

	return co.Service.Transactions(report.Query{
		Version:    d.snapshot.Version(),
		Fund:       fund,
		TargetTime: d.target,
		Filters:    d.filters,
		TableType:  tableType,
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Staff Expense Report
// @Success		204
// @Router			/v1/staff-expense-report/{tableType} [options]
func OptionsReport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get report table
// @Description	Returns one table of the staff expense report. Selected categories are aggregated into one row each.
// @Tags			Staff Expense Report
// @Produce		json
// @Success		200					{object}	ReportTableResponse
// @Failure		400					{object}	ReportTableResponse
// @Failure		404					{object}	ReportTableResponse
// @Failure		500					{object}	ReportTableResponse
// @Param			tableType			path		string		true	"income or expense"
// @Param			account				query		string		true	"ID of the account"
// @Param			startMonth			query		string		true	"First month of the fund snapshot, YYYY-MM"
// @Param			endMonth			query		string		true	"Last month of the fund snapshot, YYYY-MM"
// @Param			month				query		string		false	"Target month, YYYY-MM"
// @Param			fundType			query		string		false	"Fund type, defaults to Primary"
// @Param			selectedDateRange	query		string		false	"WeekToDate, MonthToDate or YearToDate"
// @Param			startDate			query		string		false	"Inclusive start date, YYYY-MM-DD"
// @Param			endDate				query		string		false	"Inclusive end date, YYYY-MM-DD"
// @Param			categories			query		[]string	false	"Categories to group, glob patterns are supported"
// @Param			sortField			query		string		false	"date or amount"
// @Param			sortDirection		query		string		false	"asc or desc"
// @Param			page				query		int			false	"Zero based page"
// @Param			pageSize			query		int			false	"10, 25, 50 or 100"
// @Param			emptyText			query		string		false	"Placeholder for an empty table"
// @Router			/v1/staff-expense-report/{tableType} [get]
func (co Controller) GetTable(c *gin.Context) {
	tableType, err := report.ParseTableType(c.Param("tableType"))
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ReportTableResponse{Error: &s})
		return
	}

	var q TableQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ReportTableResponse{Error: &s})
		return
	}

	sort, err := q.sort()
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ReportTableResponse{Error: &s})
		return
	}

	if q.Page < 0 {
		s := errInvalidPage.Error()
		c.JSON(http.StatusBadRequest, ReportTableResponse{Error: &s})
		return
	}

	d, err := co.loadReport(q.ReportQuery)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReportTableResponse{Error: &s})
		return
	}

	l := co.Service.Localizer()
	rows := co.rows(d, q.fundType(), tableType)

	emptyText := q.EmptyText
	if emptyText == "" {
		emptyText = l.T(fmt.Sprintf("No %s Transactions Found", tableType))
	}

	total := report.SumAmounts(rows)
	data := ReportTable{
		TableType: tableType,
		Title:     l.T(string(tableType)),
		Month:     types.MonthOf(d.target),
		Filters:   d.filters,
		Total:     l.Amount(total),
		RawTotal:  total,
		Table: report.NewTable(rows, report.TableOptions{
			Sort:             sort,
			Page:             q.Page,
			PageSize:         q.PageSize,
			EmptyPlaceholder: emptyText,
		}, l),
	}

	c.JSON(http.StatusOK, ReportTableResponse{Data: &data})
}

// @Summary		Get category breakdown
// @Description	Returns the transactions aggregated in the row of a category and their total
// @Tags			Staff Expense Report
// @Produce		json
// @Success		200			{object}	BreakdownResponse
// @Failure		400			{object}	BreakdownResponse
// @Failure		404			{object}	BreakdownResponse
// @Failure		500			{object}	BreakdownResponse
// @Param			tableType	path		string	true	"income or expense"
// @Param			category	path		string	true	"Category code, e.g. Ministry"
// @Param			account		query		string	true	"ID of the account"
// @Param			startMonth	query		string	true	"First month of the fund snapshot, YYYY-MM"
// @Param			endMonth	query		string	true	"Last month of the fund snapshot, YYYY-MM"
// @Router			/v1/staff-expense-report/{tableType}/breakdown/{category} [get]
func (co Controller) GetBreakdown(c *gin.Context) {
	tableType, err := report.ParseTableType(c.Param("tableType"))
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BreakdownResponse{Error: &s})
		return
	}

	var q ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BreakdownResponse{Error: &s})
		return
	}

	// The category of the breakdown is always grouped
	category := report.CategoryCode(c.Param("category"))
	q.Categories = append(q.Categories, string(category))

	d, err := co.loadReport(q)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BreakdownResponse{Error: &s})
		return
	}

	row, ok := report.FindGroupedRow(co.rows(d, q.fundType(), tableType), category)
	if !ok {
		s := errCategoryNotGrouped.Error()
		c.JSON(status(errCategoryNotGrouped), BreakdownResponse{Error: &s})
		return
	}

	data, err := report.Breakdown(row, co.Service.Localizer())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BreakdownResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, BreakdownResponse{Data: &data})
}

// @Summary		Get available categories
// @Description	Returns the categories of all funds that have transactions in the selected date range. "Other" is always last.
// @Tags			Staff Expense Report
// @Produce		json
// @Success		200			{object}	CategoriesResponse
// @Failure		400			{object}	CategoriesResponse
// @Failure		404			{object}	CategoriesResponse
// @Failure		500			{object}	CategoriesResponse
// @Param			account		query		string	true	"ID of the account"
// @Param			startMonth	query		string	true	"First month of the fund snapshot, YYYY-MM"
// @Param			endMonth	query		string	true	"Last month of the fund snapshot, YYYY-MM"
// @Router			/v1/staff-expense-report/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	var q ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, CategoriesResponse{Error: &s})
		return
	}

	d, err := co.loadReport(q)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoriesResponse{Error: &s})
		return
	}

	l := co.Service.Localizer()
	data := make([]CategoryOption, 0, len(d.available))
	for _, code := range d.available {
		data = append(data, CategoryOption{
			Code:  code,
			Label: l.T(report.CategoryLabel(code)),
		})
	}

	c.JSON(http.StatusOK, CategoriesResponse{Data: data})
}

// exportRows returns the rows of a report in display order.
func (co Controller) exportRows(d reportData, fundType report.FundType, reportType report.ReportType) []report.Transaction {
	switch reportType {
	case report.ReportIncome:
		return report.SortRows(co.rows(d, fundType, report.TableIncome))
	case report.ReportExpense:
		return report.SortRows(co.rows(d, fundType, report.TableExpense))
	}

	income := report.SortRows(co.rows(d, fundType, report.TableIncome))
	return append(income, report.SortRows(co.rows(d, fundType, report.TableExpense))...)
}

// @Summary		Download report
// @Description	Returns the report as CSV file
// @Tags			Staff Expense Report
// @Produce		text/csv
// @Success		200
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			reportType	path		string	true	"income, expense or combined"
// @Param			account		query		string	true	"ID of the account"
// @Param			startMonth	query		string	true	"First month of the fund snapshot, YYYY-MM"
// @Param			endMonth	query		string	true	"Last month of the fund snapshot, YYYY-MM"
// @Router			/v1/staff-expense-report/download/{reportType} [get]
func (co Controller) GetDownload(c *gin.Context) {
	reportType, err := report.ParseReportType(c.Param("reportType"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	var q ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	d, err := co.loadReport(q)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var buf bytes.Buffer
	name, err := report.DownloadCSV(&buf, reportType, co.exportRows(d, q.fundType(), reportType), co.Service.Localizer())
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

// @Summary		Print report
// @Description	Returns the income and expense tables with running and grand totals as XLSX workbook
// @Tags			Staff Expense Report
// @Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success		200
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			account		query		string	true	"ID of the account"
// @Param			startMonth	query		string	true	"First month of the fund snapshot, YYYY-MM"
// @Param			endMonth	query		string	true	"Last month of the fund snapshot, YYYY-MM"
// @Router			/v1/staff-expense-report/print [get]
func (co Controller) GetPrint(c *gin.Context) {
	var q ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	d, err := co.loadReport(q)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	l := co.Service.Localizer()
	tables := make([]report.PrintTable, 0, 2)
	for _, tableType := range []report.TableType{report.TableIncome, report.TableExpense} {
		rows := report.SortRows(co.rows(d, q.fundType(), tableType))
		tables = append(tables, report.NewPrintTable(tableType, rows, report.SumAmounts(rows), l))
	}

	var buf bytes.Buffer
	if err := report.WritePrintWorkbook(&buf, tables...); err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.PrintSheet+".xlsx"))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
