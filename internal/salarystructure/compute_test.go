package salarystructure_test

import (
	"testing"

	"go-payroll/internal/component"
	"go-payroll/internal/salarystructure"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func assignment(code string, ctype component.ComponentType, amount int64) salarystructure.ComponentAssignment {
	return salarystructure.ComponentAssignment{
		SalaryComponentID: uuid.New(),
		ComponentName:     code,
		ComponentCode:     code,
		ComponentType:     ctype,
		Amount:            amount,
	}
}

func TestComputeTotals(t *testing.T) {
	t.Run("gross minus deductions", func(t *testing.T) {
		assignments := []salarystructure.ComponentAssignment{
			assignment("BASIC", component.TypeEarning, 3000000),
			assignment("HRA", component.TypeAllowance, 1200000),
			assignment("PF", component.TypeDeduction, 360000),
		}

		totals := salarystructure.ComputeTotals(assignments)

		assert.Equal(t, int64(4200000), totals.Gross)
		assert.Equal(t, int64(360000), totals.Deductions)
		assert.Equal(t, int64(3840000), totals.Net)
	})

	t.Run("no deductions means net equals gross", func(t *testing.T) {
		assignments := []salarystructure.ComponentAssignment{
			assignment("BASIC", component.TypeEarning, 5000000),
		}

		totals := salarystructure.ComputeTotals(assignments)

		assert.Equal(t, totals.Gross, totals.Net)
	})

	t.Run("reimbursement stays out of gross and net", func(t *testing.T) {
		assignments := []salarystructure.ComponentAssignment{
			assignment("BASIC", component.TypeEarning, 5000000),
			assignment("NETR", component.TypeReimbursement, 100000),
		}

		totals := salarystructure.ComputeTotals(assignments)

		assert.Equal(t, int64(5000000), totals.Gross)
		assert.Equal(t, int64(5000000), totals.Net)
		assert.Equal(t, int64(100000), totals.Reimbursement)
	})

	t.Run("empty", func(t *testing.T) {
		totals := salarystructure.ComputeTotals(nil)

		assert.Equal(t, int64(0), totals.Gross)
		assert.Equal(t, int64(0), totals.Net)
	})
}

func TestMonthlyCTC(t *testing.T) {
	cases := []struct {
		annual  int64
		monthly int64
	}{
		{1200000, 100000},
		{1000000, 83333}, // 83333.33 dibulatkan ke bawah
		{1000006, 83334}, // 83333.83 dibulatkan ke atas
		{0, 0},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.monthly, salarystructure.MonthlyCTC(tc.annual), "annual=%d", tc.annual)
	}
}

func TestPercentageAmount(t *testing.T) {
	// 12% dari 100000 sen = 12000 sen.
	assert.Equal(t, int64(12000), salarystructure.PercentageAmount(12, 100000))
	// 12.5% dari 99999 = 12499.875, dibulatkan half-up ke 12500.
	assert.Equal(t, int64(12500), salarystructure.PercentageAmount(12.5, 99999))
	assert.Equal(t, int64(0), salarystructure.PercentageAmount(0, 100000))
	assert.Equal(t, int64(100000), salarystructure.PercentageAmount(100, 100000))
}

func TestWithAssignment(t *testing.T) {
	base := salarystructure.SalaryStructure{
		Assignments: []salarystructure.ComponentAssignment{
			assignment("BASIC", component.TypeEarning, 3000000),
		},
		GrossSalary: 3000000,
		NetSalary:   3000000,
	}

	updated := base.WithAssignment(assignment("PF", component.TypeDeduction, 360000))

	assert.Equal(t, int64(3000000), updated.GrossSalary)
	assert.Equal(t, int64(2640000), updated.NetSalary)
	assert.Len(t, updated.Assignments, 2)

	// Struktur asal tidak berubah.
	assert.Len(t, base.Assignments, 1)
	assert.Equal(t, int64(3000000), base.NetSalary)
}

func TestWithoutAssignment(t *testing.T) {
	pf := assignment("PF", component.TypeDeduction, 360000)
	base := salarystructure.SalaryStructure{
		Assignments: []salarystructure.ComponentAssignment{
			assignment("BASIC", component.TypeEarning, 3000000),
			pf,
		},
		GrossSalary: 3000000,
		NetSalary:   2640000,
	}

	updated := base.WithoutAssignment(pf.SalaryComponentID.String())

	assert.Len(t, updated.Assignments, 1)
	assert.Equal(t, int64(3000000), updated.NetSalary)
	assert.Len(t, base.Assignments, 2)
}
