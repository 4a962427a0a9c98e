package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/centavo/backend/internal/controllers/v1"
	"github.com/centavo/backend/internal/models"
	"github.com/centavo/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerPath(budgetID, registerID uuid.UUID) string {
	return fmt.Sprintf("http://example.com/v1/budgets/%s/registers/%s", budgetID, registerID)
}

func (suite *TestSuiteStandard) TestRegisterOptions() {
	budget := createTestBudget(suite.T(), uuid.New(), v1.BudgetEditable{})
	register := budget.Data.Registers[0]

	r := test.Request(suite.T(), http.MethodOptions, registerPath(budget.Data.ID, register.ID), nil, owned(uuid.New()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "PATCH", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestUpdateRegister() {
	owner := uuid.New()
	budget := createTestBudget(suite.T(), owner, v1.BudgetEditable{Value: decimal.NewFromFloat(100)})
	register := budget.Data.Registers[0]

	r := test.Request(suite.T(), http.MethodPatch, registerPath(budget.Data.ID, register.ID), map[string]any{
		"value":   "123.45",
		"checked": false,
	}, owned(owner))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	var updated models.Register
	require.Nil(suite.T(), models.DB.First(&updated, "id = ?", register.ID).Error)
	assert.True(suite.T(), updated.Value.Equal(decimal.NewFromFloat(123.45)))
	assert.False(suite.T(), updated.Checked)
}

func (suite *TestSuiteStandard) TestUpdateRegisterPartial() {
	owner := uuid.New()
	budget := createTestBudget(suite.T(), owner, v1.BudgetEditable{Value: decimal.NewFromFloat(100)})
	register := budget.Data.Registers[0]

	// Only the deleted flag is sent, everything else stays untouched
	r := test.Request(suite.T(), http.MethodPatch, registerPath(budget.Data.ID, register.ID), map[string]any{
		"deleted": true,
	}, owned(owner))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	var updated models.Register
	require.Nil(suite.T(), models.DB.First(&updated, "id = ?", register.ID).Error)
	assert.True(suite.T(), updated.Deleted)
	assert.True(suite.T(), updated.Checked)
	assert.True(suite.T(), updated.Value.Equal(decimal.NewFromFloat(100)))
}

func (suite *TestSuiteStandard) TestUpdateRegisterForeignOwner() {
	budget := createTestBudget(suite.T(), uuid.New(), v1.BudgetEditable{})
	register := budget.Data.Registers[0]

	r := test.Request(suite.T(), http.MethodPatch, registerPath(budget.Data.ID, register.ID), map[string]any{
		"checked": false,
	}, owned(uuid.New()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)
}

func (suite *TestSuiteStandard) TestUpdateRegisterNotFound() {
	owner := uuid.New()
	budget := createTestBudget(suite.T(), owner, v1.BudgetEditable{})

	r := test.Request(suite.T(), http.MethodPatch, registerPath(budget.Data.ID, uuid.New()), map[string]any{
		"checked": false,
	}, owned(owner))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestUpdateRegisterInvalid() {
	owner := uuid.New()
	budget := createTestBudget(suite.T(), owner, v1.BudgetEditable{})
	register := budget.Data.Registers[0]

	tests := []struct {
		name string
		url  string
		body any
	}{
		{"Invalid budget UUID", fmt.Sprintf("http://example.com/v1/budgets/not-a-uuid/registers/%s", register.ID), `{ "checked": true }`},
		{"Invalid register UUID", fmt.Sprintf("http://example.com/v1/budgets/%s/registers/not-a-uuid", budget.Data.ID), `{ "checked": true }`},
		{"Empty body", registerPath(budget.Data.ID, register.ID), ""},
		{"Negative value", registerPath(budget.Data.ID, register.ID), `{ "value": "-1" }`},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, tt.url, tt.body, owned(owner))
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}
