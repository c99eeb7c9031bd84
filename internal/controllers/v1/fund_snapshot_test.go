package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/mpdx/staff-report/internal/controllers/v1"
	"github.com/mpdx/staff-report/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var snapshotURL = "http://example.com/v1/fund-snapshots"

func (suite *TestSuiteStandard) createSnapshotViaAPI() v1.FundSnapshot {
	recorder := test.Request(suite.T(), http.MethodPost, snapshotURL, v1.FundSnapshotEditable{
		AccountID:  testAccountID,
		StartMonth: january,
		EndMonth:   march,
		Funds:      testFunds(),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.FundSnapshotResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	return *response.Data
}

func (suite *TestSuiteStandard) TestCreateFundSnapshot() {
	snapshot := suite.createSnapshotViaAPI()

	suite.Assert().Equal(testAccountID, snapshot.AccountID)
	suite.Assert().True(snapshot.StartMonth.Equal(january))
	suite.Assert().True(snapshot.EndMonth.Equal(march))
	suite.Assert().NotEmpty(snapshot.Version)
	suite.Require().Len(snapshot.Funds, 2)
	suite.Assert().Len(snapshot.Funds[0].Categories, 4)

	query := fmt.Sprintf("account=%s&startMonth=2025-01&endMonth=2025-03", testAccountID)
	suite.Assert().Equal("http://example.com/v1/fund-snapshots?"+query, snapshot.Links.Self)
	suite.Assert().Equal("http://example.com/v1/staff-expense-report/income?"+query, snapshot.Links.Income)
	suite.Assert().Equal("http://example.com/v1/staff-expense-report/expense?"+query, snapshot.Links.Expense)
	suite.Assert().Equal("http://example.com/v1/staff-expense-report/categories?"+query, snapshot.Links.Categories)

	// The self link returns the stored snapshot
	recorder := test.Request(suite.T(), http.MethodGet, snapshot.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.FundSnapshotResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(snapshot.ID, response.Data.ID)
	suite.Assert().Equal(snapshot.Version, response.Data.Version)

	transactions := response.Data.Funds[0].Categories[2].Subcategories[0].BreakdownByMonth[0].Transactions
	suite.Require().Len(transactions, 3)
	suite.Assert().Equal("m1", transactions[0].ID)
	suite.Assert().True(decimal.NewFromInt(-80).Equal(transactions[0].Amount))
}

func (suite *TestSuiteStandard) TestCreateFundSnapshotReplaces() {
	first := suite.createSnapshotViaAPI()
	second := suite.createSnapshotViaAPI()

	suite.Assert().NotEqual(first.ID, second.ID)
	suite.Assert().NotEqual(first.Version, second.Version)

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("%s?account=%s", snapshotURL, testAccountID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.FundSnapshotListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal(second.ID, response.Data[0].ID)
}

func (suite *TestSuiteStandard) TestCreateFundSnapshotErrors() {
	tests := []struct {
		name   string
		body   any
		status int
		err    string
	}{
		{"Empty body", "", http.StatusBadRequest, "the request body must not be empty"},
		{"Broken JSON", `{ "accountId": "9c1f8a12`, http.StatusBadRequest, "the body of your request contains invalid or un-parseable data. Please check and try again"},
		{"No account", `{ "startMonth": "2025-01", "endMonth": "2025-03" }`, http.StatusBadRequest, "the accountId must be set"},
		{"No month range", fmt.Sprintf(`{ "accountId": "%s" }`, testAccountID), http.StatusBadRequest, "the startMonth and endMonth must be set"},
		{"Start after end", fmt.Sprintf(`{ "accountId": "%s", "startMonth": "2025-03", "endMonth": "2025-01" }`, testAccountID), http.StatusBadRequest, "the start month must not be after the end month"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, snapshotURL, tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)

			var response v1.FundSnapshotResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Nil(t, response.Data)
			require.NotNil(t, response.Error)
			assert.Equal(t, tt.err, *response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestGetFundSnapshotsErrors() {
	tests := []struct {
		name   string
		query  string
		status int
		err    string
	}{
		{"No account", "", http.StatusBadRequest, "the account query parameter must be set"},
		{"Invalid account", "account=abc", http.StatusBadRequest, "not a valid UUID"},
		{"Invalid month", fmt.Sprintf("account=%s&startMonth=January", testAccountID), http.StatusBadRequest, "YYYY-MM"},
		{"Half a range", fmt.Sprintf("account=%s&startMonth=2025-01", testAccountID), http.StatusBadRequest, "the startMonth and endMonth query parameters must be set"},
		{"Not found", fmt.Sprintf("account=%s&startMonth=2025-01&endMonth=2025-02", testAccountID), http.StatusNotFound, "there is no fund snapshot matching your query"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, snapshotURL+"?"+tt.query, "")
			test.AssertHTTPStatus(t, &recorder, tt.status)

			var response v1.FundSnapshotResponse
			test.DecodeResponse(t, &recorder, &response)
			require.NotNil(t, response.Error)
			assert.Contains(t, *response.Error, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestGetFundSnapshotsList() {
	suite.createTestSnapshot()

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("%s?account=%s", snapshotURL, testAccountID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.FundSnapshotListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Len(response.Data[0].Funds, 0, "listed snapshots do not contain funds")

	// Other accounts do not see the snapshot
	recorder = test.Request(suite.T(), http.MethodGet, snapshotURL+"?account=65392deb-5e92-4268-b114-297faad6cdce", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 0)
}

func (suite *TestSuiteStandard) TestGetFundSnapshotDatabaseClosed() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("%s?account=%s", snapshotURL, testAccountID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestCreateFundSnapshotDateOnlyTransactions() {
	body := fmt.Sprintf(`{
		"accountId": "%s",
		"startMonth": "2025-01-01",
		"endMonth": "2025-03-01",
		"funds": [{
			"fundType": "Primary",
			"categories": [{
				"category": "AdditionalSalary",
				"subcategories": [{
					"subcategory": "Bonus",
					"breakdownByMonth": [{
						"month": "2025-01-01",
						"transactions": [
							{ "id": "a1", "amount": 100, "transactedAt": "2025-01-15" },
							{ "id": "a2", "amount": -100, "transactedAt": "2025-01-20" },
							{ "id": "a3", "amount": -1000, "transactedAt": "2025-01-24T18:30:00Z" }
						]
					}]
				}]
			}]
		}]
	}`, testAccountID)

	recorder := test.Request(suite.T(), http.MethodPost, snapshotURL, body)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)
	suite.Assert().Contains(recorder.Body.String(), `"transactedAt":"2025-01-20"`)
	suite.Assert().Contains(recorder.Body.String(), `"transactedAt":"2025-01-24"`)

	table := suite.getTable(reportURL("/expense", "categories=AdditionalSalary"))
	suite.Require().Len(table.Rows, 1)
	suite.Assert().Equal("grouped-AdditionalSalary", table.Rows[0].ID)
	suite.Assert().Equal("2025-01-20", table.Rows[0].Date)
	suite.Assert().True(decimal.NewFromInt(-1100).Equal(table.Rows[0].RawAmount), table.Rows[0].RawAmount.String())
}

func (suite *TestSuiteStandard) TestCreateFundSnapshotInvalidDate() {
	body := fmt.Sprintf(`{
		"accountId": "%s",
		"startMonth": "2025-01",
		"endMonth": "2025-03",
		"funds": [{ "fundType": "Primary", "categories": [{ "category": "Ministry", "subcategories": [{ "subcategory": "Travel", "breakdownByMonth": [{
			"month": "2025-01", "transactions": [{ "id": "x", "amount": -1, "transactedAt": "20.01.2025" }]
		}]}]}]}]
	}`, testAccountID)

	recorder := test.Request(suite.T(), http.MethodPost, snapshotURL, body)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
