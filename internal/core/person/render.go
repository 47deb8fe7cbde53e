package person

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DisplayInfo は一覧表示用の1行サマリを返します。
// 項目の順序は出力互換のため固定です。
func (r *Record) DisplayInfo() string {
	base := fmt.Sprintf("Name: %s, Phone: %s, Email: %s, Role: %s", r.name, r.telephone, r.email, r.kind)

	switch r.kind {
	case KindTeacher:
		return fmt.Sprintf("%s, Salary: %s, Subjects: %s", base, formatSalary(r.salary), strings.Join(r.Subjects(), ", "))
	case KindAdmin:
		return fmt.Sprintf("%s, Salary: %s, Employment: %s, Hours: %d", base, formatSalary(r.salary), r.employmentType, r.workingHours)
	case KindStudent:
		return fmt.Sprintf("%s, Subjects: %s", base, strings.Join(r.Subjects(), ", "))
	default:
		return base
	}
}

// DetailedInfo は全属性を1行1項目で返します。
func (r *Record) DetailedInfo() string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- %s Details ---\n", r.kind)
	fmt.Fprintf(&b, "Name: %s\n", r.name)
	fmt.Fprintf(&b, "Telephone: %s\n", r.telephone)
	fmt.Fprintf(&b, "Email: %s\n", r.email)
	fmt.Fprintf(&b, "Role: %s\n", r.kind)

	if r.hasSalary() {
		fmt.Fprintf(&b, "Salary: %s\n", formatSalary(r.salary))
	}
	if r.kind == KindAdmin {
		fmt.Fprintf(&b, "Employment Type: %s\n", r.employmentType)
		fmt.Fprintf(&b, "Working Hours: %d\n", r.workingHours)
	}
	for i, subject := range r.Subjects() {
		fmt.Fprintf(&b, "Subject %d: %s\n", i+1, subject)
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func formatSalary(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
