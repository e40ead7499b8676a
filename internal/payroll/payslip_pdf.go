package payroll

import (
	"bytes"
	"fmt"
	"strings"
)

// RenderPayslipPDF menyusun payslip satu halaman dari snapshot yang sudah
// terbit. Tidak ada query tambahan: semua angka sudah ada di payslip.
func RenderPayslipPDF(payslip *Payslip, run *PayrollRun) ([]byte, error) {
	lines := []string{
		"PAYSLIP",
		fmt.Sprintf("Period: %04d-%02d", run.Year, run.Month),
		fmt.Sprintf("Employee: %s (%s)", payslip.EmployeeName, payslip.EmployeeNumber),
		fmt.Sprintf("Attendance: %d present / %d absent / %d paid leave of %d working days",
			payslip.PresentDays, payslip.AbsentDays, payslip.PaidLeaves, payslip.TotalWorkingDays),
		"",
	}

	for _, kind := range []LineKind{LineEarning, LineDeduction, LineReimbursement} {
		section := false
		for _, c := range payslip.Components {
			if c.Kind != kind {
				continue
			}
			if !section {
				lines = append(lines, string(kind)+"S")
				section = true
			}
			lines = append(lines, fmt.Sprintf("  %-30s %s", c.ComponentName, formatMoney(c.Amount)))
		}
	}

	lines = append(lines,
		"",
		fmt.Sprintf("Total Earnings:   %s", formatMoney(payslip.TotalEarnings)),
		fmt.Sprintf("Total Deductions: %s", formatMoney(payslip.TotalDeductions)),
		fmt.Sprintf("Net Salary:       %s", formatMoney(payslip.NetSalary)),
		fmt.Sprintf("Payment Status:   %s", payslip.PaymentStatus),
	)
	if payslip.PaymentReference != nil {
		lines = append(lines, fmt.Sprintf("Payment Ref:      %s", *payslip.PaymentReference))
	}

	return buildSimplePayslipPDF(lines)
}

// formatMoney menampilkan satuan terkecil sebagai desimal dua digit.
func formatMoney(v int64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

func buildSimplePayslipPDF(lines []string) ([]byte, error) {
	if len(lines) == 0 {
		lines = []string{"Payslip"}
	}

	var content strings.Builder
	content.WriteString("BT\n/F1 12 Tf\n14 TL\n50 800 Td\n")
	for i, line := range lines {
		escaped := pdfEscape(line)
		if i == 0 {
			content.WriteString(fmt.Sprintf("(%s) Tj\n", escaped))
			continue
		}
		content.WriteString(fmt.Sprintf("T* (%s) Tj\n", escaped))
	}
	content.WriteString("ET")

	stream := content.String()
	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n",
		"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>\nendobj\n",
		"4 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Courier >>\nendobj\n",
		fmt.Sprintf("5 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(stream), stream),
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, len(objects)+1)
	offsets = append(offsets, 0)

	for _, obj := range objects {
		offsets = append(offsets, out.Len())
		out.WriteString(obj)
	}

	xrefStart := out.Len()
	out.WriteString(fmt.Sprintf("xref\n0 %d\n", len(offsets)))
	out.WriteString("0000000000 65535 f \n")
	for i := 1; i < len(offsets); i++ {
		out.WriteString(fmt.Sprintf("%010d 00000 n \n", offsets[i]))
	}
	out.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(offsets), xrefStart))

	return out.Bytes(), nil
}

func pdfEscape(v string) string {
	replacer := strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)")
	return replacer.Replace(v)
}
