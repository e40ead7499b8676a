package salarystructure

import (
	"github.com/shopspring/decimal"
)

// Totals adalah hasil agregasi murni atas assignment sebuah struktur.
// Reimbursement dicatat terpisah dan sengaja tidak masuk gross maupun net.
type Totals struct {
	Gross         int64
	Deductions    int64
	Net           int64
	Reimbursement int64
}

var twelve = decimal.NewFromInt(12)
var hundred = decimal.NewFromInt(100)

// MonthlyCTC membagi CTC tahunan (sen) menjadi bulanan, dibulatkan half-up
// ke sen terdekat. DivRound decimal membulatkan half-away-from-zero; untuk
// nominal gaji yang selalu positif itu sama dengan half-up.
func MonthlyCTC(ctcAnnual int64) int64 {
	return decimal.NewFromInt(ctcAnnual).
		DivRound(twelve, 0).
		IntPart()
}

// PercentageAmount menghitung nominal komponen bertipe PERCENTAGE:
// persentase dari CTC bulanan, dibulatkan ke sen.
func PercentageAmount(percentage float64, ctcMonthly int64) int64 {
	return decimal.NewFromFloat(percentage).
		Mul(decimal.NewFromInt(ctcMonthly)).
		DivRound(hundred, 0).
		IntPart()
}

// ComputeTotals menjumlah ulang seluruh assignment dari nol. Tidak pernah
// patch incremental: hasil dihitung ke struct baru lalu di-assign, supaya
// kegagalan di tengah tidak meninggalkan total setengah jadi.
func ComputeTotals(assignments []ComponentAssignment) Totals {
	var t Totals
	for _, a := range assignments {
		switch {
		case a.ComponentType.CountsTowardGross():
			t.Gross += a.Amount
		case a.ComponentType.IsDeduction():
			t.Deductions += a.Amount
		default:
			// REIMBURSEMENT
			t.Reimbursement += a.Amount
		}
	}
	t.Net = t.Gross - t.Deductions
	return t
}

// WithAssignment mengembalikan salinan struktur dengan satu assignment baru
// dan total yang sudah dihitung ulang. Struktur asal tidak disentuh.
func (s SalaryStructure) WithAssignment(a ComponentAssignment) SalaryStructure {
	out := s
	out.Assignments = make([]ComponentAssignment, len(s.Assignments), len(s.Assignments)+1)
	copy(out.Assignments, s.Assignments)
	out.Assignments = append(out.Assignments, a)
	out.applyTotals(ComputeTotals(out.Assignments))
	return out
}

// WithoutAssignment mengembalikan salinan struktur tanpa komponen tertentu,
// dengan total dihitung ulang.
func (s SalaryStructure) WithoutAssignment(componentID string) SalaryStructure {
	out := s
	out.Assignments = make([]ComponentAssignment, 0, len(s.Assignments))
	for _, a := range s.Assignments {
		if a.SalaryComponentID.String() == componentID {
			continue
		}
		out.Assignments = append(out.Assignments, a)
	}
	out.applyTotals(ComputeTotals(out.Assignments))
	return out
}

func (s *SalaryStructure) applyTotals(t Totals) {
	s.GrossSalary = t.Gross
	s.NetSalary = t.Net
}
