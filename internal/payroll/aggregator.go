package payroll

// RunTotals adalah agregat satu run atas seluruh payslip-nya.
type RunTotals struct {
	TotalEmployees int
	TotalGross     int64
	TotalNet       int64
}

// RecomputeTotals menjumlah ulang penuh dari daftar payslip. Tidak pernah
// incremental: regenerate atau hapus payslip cukup memanggil ini lagi.
// Payslip lama yang belum menyimpan gross memakai total earnings-nya.
func RecomputeTotals(payslips []Payslip) RunTotals {
	var t RunTotals
	t.TotalEmployees = len(payslips)
	for _, p := range payslips {
		gross := p.GrossSalary
		if gross == 0 {
			gross = p.TotalEarnings
		}
		t.TotalGross += gross
		t.TotalNet += p.NetSalary
	}
	return t
}
