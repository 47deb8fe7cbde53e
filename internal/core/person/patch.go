package person

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Patch は編集時の部分更新内容です。nil や空白のみの文字列は現在値を維持します。
type Patch struct {
	Name           *string
	Telephone      *string
	Email          *string
	Salary         *decimal.Decimal
	Subject1       *string
	Subject2       *string
	Subject3       *string
	EmploymentType *string
	WorkingHours   *int
}

// Apply は指定された項目のみをセッター経由で反映します。
// 種別に無い項目は無視されます。
func (p Patch) Apply(r *Record) {
	if v, ok := present(p.Name); ok {
		// present が空白を除外しているため SetName は失敗しない。
		_ = r.SetName(v)
	}
	if v, ok := present(p.Telephone); ok {
		r.SetTelephone(v)
	}
	if v, ok := present(p.Email); ok {
		r.SetEmail(v)
	}
	if p.Salary != nil {
		r.SetSalary(*p.Salary)
	}
	for i, s := range []*string{p.Subject1, p.Subject2, p.Subject3} {
		if v, ok := present(s); ok {
			r.SetSubject(i, v)
		}
	}
	if v, ok := present(p.EmploymentType); ok {
		r.SetEmploymentType(v)
	}
	if p.WorkingHours != nil {
		r.SetWorkingHours(*p.WorkingHours)
	}
}

// Empty はどの項目も変更しない Patch かどうかを返します。
func (p Patch) Empty() bool {
	for _, s := range []*string{p.Name, p.Telephone, p.Email, p.Subject1, p.Subject2, p.Subject3, p.EmploymentType} {
		if _, ok := present(s); ok {
			return false
		}
	}
	return p.Salary == nil && p.WorkingHours == nil
}

func present(s *string) (string, bool) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return "", false
	}
	return *s, true
}
