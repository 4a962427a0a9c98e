package models_test

import (
	"time"

	"github.com/centavo/backend/internal/models"
	"github.com/centavo/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestRegisterMonthDerived() {
	register := suite.createTestRegister(models.Register{
		BudgetID: suite.createTestBudget(models.Budget{OwnerID: uuid.New()}).ID,
		Date:     time.Date(2025, 7, 23, 14, 30, 0, 0, time.UTC),
	})

	assert.True(suite.T(), register.Month.Equal(types.NewMonth(2025, 7)))
}

func (suite *TestSuiteStandard) TestRegisterDateDefaultsToNow() {
	register := suite.createTestRegister(models.Register{
		BudgetID: suite.createTestBudget(models.Budget{OwnerID: uuid.New()}).ID,
	})

	assert.False(suite.T(), register.Date.IsZero())
	assert.True(suite.T(), register.Month.Equal(types.MonthOf(time.Now().In(time.UTC))))
}

func (suite *TestSuiteStandard) TestRegisterMonthUnique() {
	budget := suite.createTestBudget(models.Budget{OwnerID: uuid.New()})

	_ = suite.createTestRegister(models.Register{
		BudgetID: budget.ID,
		Date:     time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	})

	// Another register in the same month must be rejected, even on a
	// different day
	duplicate := models.Register{
		BudgetID: budget.ID,
		Date:     time.Date(2025, 7, 28, 0, 0, 0, 0, time.UTC),
	}
	err := models.DB.Create(&duplicate).Error
	assert.ErrorIs(suite.T(), err, models.ErrRegisterMonthNotUnique)

	// The next month is fine
	next := models.Register{
		BudgetID: budget.ID,
		Date:     time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
	}
	err = models.DB.Create(&next).Error
	assert.Nil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestRegisterMonthUniquePerBudget() {
	owner := uuid.New()
	date := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	// Two budgets can have registers in the same month
	_ = suite.createTestRegister(models.Register{
		BudgetID: suite.createTestBudget(models.Budget{OwnerID: owner}).ID,
		Date:     date,
	})
	_ = suite.createTestRegister(models.Register{
		BudgetID: suite.createTestBudget(models.Budget{OwnerID: owner}).ID,
		Date:     date,
	})
}

func (suite *TestSuiteStandard) TestUpdateRegister() {
	owner := uuid.New()
	budget := suite.createTestBudget(models.Budget{OwnerID: owner})
	register := suite.createTestRegister(models.Register{
		BudgetID: budget.ID,
		Value:    decimal.NewFromFloat(100),
		Date:     time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
	})

	value := decimal.NewFromFloat(123.45)
	checked := true
	err := models.UpdateRegister(models.DB, owner, budget.ID, register.ID, models.RegisterPatch{
		Value:   &value,
		Checked: &checked,
	})
	require.Nil(suite.T(), err)

	var updated models.Register
	require.Nil(suite.T(), models.DB.First(&updated, "id = ?", register.ID).Error)

	assert.True(suite.T(), updated.Value.Equal(value))
	assert.True(suite.T(), updated.Checked)
	assert.True(suite.T(), updated.Date.Equal(register.Date), "Date must stay untouched by a partial update")
}

func (suite *TestSuiteStandard) TestUpdateRegisterRederivesMonth() {
	owner := uuid.New()
	budget := suite.createTestBudget(models.Budget{OwnerID: owner})
	register := suite.createTestRegister(models.Register{
		BudgetID: budget.ID,
		Date:     time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
	})

	date := time.Date(2025, 9, 12, 0, 0, 0, 0, time.UTC)
	err := models.UpdateRegister(models.DB, owner, budget.ID, register.ID, models.RegisterPatch{
		Date: &date,
	})
	require.Nil(suite.T(), err)

	var updated models.Register
	require.Nil(suite.T(), models.DB.First(&updated, "id = ?", register.ID).Error)

	assert.True(suite.T(), updated.Month.Equal(types.NewMonth(2025, 9)))
}

func (suite *TestSuiteStandard) TestUpdateRegisterForeignOwner() {
	budget := suite.createTestBudget(models.Budget{OwnerID: uuid.New()})
	register := suite.createTestRegister(models.Register{
		BudgetID: budget.ID,
		Date:     time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
	})

	checked := true
	err := models.UpdateRegister(models.DB, uuid.New(), budget.ID, register.ID, models.RegisterPatch{
		Checked: &checked,
	})
	assert.ErrorIs(suite.T(), err, models.ErrRegisterNotAllowed)

	var unchanged models.Register
	require.Nil(suite.T(), models.DB.First(&unchanged, "id = ?", register.ID).Error)
	assert.False(suite.T(), unchanged.Checked)
}

func (suite *TestSuiteStandard) TestUpdateRegisterNotFound() {
	owner := uuid.New()
	budget := suite.createTestBudget(models.Budget{OwnerID: owner})

	err := models.UpdateRegister(models.DB, owner, budget.ID, uuid.New(), models.RegisterPatch{})
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestUpdateRegisterSoftDelete() {
	owner := uuid.New()
	budget := suite.createTestBudget(models.Budget{OwnerID: owner})
	register := suite.createTestRegister(models.Register{
		BudgetID: budget.ID,
		Date:     time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
	})

	deleted := true
	err := models.UpdateRegister(models.DB, owner, budget.ID, register.ID, models.RegisterPatch{
		Deleted: &deleted,
	})
	require.Nil(suite.T(), err)

	// The register stays in the database, only the flag is set
	var updated models.Register
	require.Nil(suite.T(), models.DB.First(&updated, "id = ?", register.ID).Error)
	assert.True(suite.T(), updated.Deleted)
}
