package payroll

import (
	"time"

	payrollerrors "go-payroll/internal/payroll/errors"
)

// PeriodBounds menurunkan tanggal awal dan akhir kalender dari (month, year).
// AddDate(0, 1, -1) dari tanggal 1 otomatis benar untuk bulan pendek dan
// tahun kabisat.
func PeriodBounds(month, year int) (time.Time, time.Time, error) {
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, payrollerrors.ErrInvalidPeriod
	}
	if year < 1 {
		return time.Time{}, time.Time{}, payrollerrors.ErrInvalidPeriod
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	return from, to, nil
}
