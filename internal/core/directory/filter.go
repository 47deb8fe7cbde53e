package directory

import (
	"strings"

	"github.com/ogurasousui/edu-centre-directory/internal/core/person"
)

// Filter は一覧表示の対象種別を表します。
type Filter string

const (
	FilterAll      Filter = "All"
	FilterTeachers Filter = "Teachers"
	FilterAdmins   Filter = "Admins"
	FilterStudents Filter = "Students"
)

// ParseFilter は大文字小文字を区別せずにフィルタ名を解釈します。種別名の単数形も受け付けます。
func ParseFilter(raw string) (Filter, error) {
	trimmed := strings.TrimSpace(raw)
	if strings.EqualFold(trimmed, string(FilterAll)) {
		return FilterAll, nil
	}
	kind, err := person.ParseKind(trimmed)
	if err != nil {
		return "", ErrInvalidFilter
	}
	return FilterFor(kind), nil
}

// FilterFor は単一種別のみを対象とするフィルタを返します。
func FilterFor(kind person.Kind) Filter {
	switch kind {
	case person.KindTeacher:
		return FilterTeachers
	case person.KindAdmin:
		return FilterAdmins
	case person.KindStudent:
		return FilterStudents
	default:
		return ""
	}
}

// Kinds はフィルタに含まれる種別を一覧順 (Teacher, Admin, Student) で返します。
func (f Filter) Kinds() []person.Kind {
	switch f {
	case FilterAll:
		return person.Kinds()
	case FilterTeachers:
		return []person.Kind{person.KindTeacher}
	case FilterAdmins:
		return []person.Kind{person.KindAdmin}
	case FilterStudents:
		return []person.Kind{person.KindStudent}
	default:
		return nil
	}
}
