package person

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Kind はレコードの種別を表します。生成後に変更されることはありません。
type Kind string

const (
	KindTeacher Kind = "Teacher"
	KindAdmin   Kind = "Admin"
	KindStudent Kind = "Student"
)

// Kinds は一覧表示の順序で全種別を返します。
func Kinds() []Kind {
	return []Kind{KindTeacher, KindAdmin, KindStudent}
}

// ParseKind は単数形・複数形の種別名を大文字小文字を区別せずに解釈します。
func ParseKind(raw string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "teacher", "teachers":
		return KindTeacher, nil
	case "admin", "admins":
		return KindAdmin, nil
	case "student", "students":
		return KindStudent, nil
	default:
		return "", ErrInvalidKind
	}
}

// Valid は既知の種別かどうかを返します。
func (k Kind) Valid() bool {
	switch k {
	case KindTeacher, KindAdmin, KindStudent:
		return true
	default:
		return false
	}
}

// EmploymentType は事務職員の雇用形態です。
type EmploymentType string

const (
	EmploymentFullTime EmploymentType = "Full-time"
	EmploymentPartTime EmploymentType = "Part-time"
)

// NormalizeEmploymentType はホワイトリストに無い値を Full-time に置き換えます。
func NormalizeEmploymentType(raw string) EmploymentType {
	switch EmploymentType(raw) {
	case EmploymentFullTime, EmploymentPartTime:
		return EmploymentType(raw)
	default:
		return EmploymentFullTime
	}
}

const (
	// DefaultWorkingHours は勤務時間が指定されなかった事務職員に設定される週あたりの時間です。
	DefaultWorkingHours = 40
	minWorkingHours     = 1
	maxSubjects         = 3
)

// Record は教員・事務職員・学生の共通属性と種別ごとの属性を保持するエンティティです。
// どの属性が意味を持つかは Kind によって決まります。
type Record struct {
	id             string
	kind           Kind
	name           string
	telephone      string
	email          string
	salary         decimal.Decimal
	subjects       [maxSubjects]string
	employmentType EmploymentType
	workingHours   int
}

// Fields はレコード生成時の入力値です。
type Fields struct {
	Name           string
	Telephone      string
	Email          string
	Salary         decimal.Decimal
	Subject1       string
	Subject2       string
	Subject3       string
	EmploymentType string
	WorkingHours   *int
}

// New は種別に応じたレコードを生成します。値の補正はすべてセッター経由で行われます。
func New(id string, kind Kind, f Fields) (*Record, error) {
	if !kind.Valid() {
		return nil, ErrInvalidKind
	}

	r := &Record{id: id, kind: kind}
	if err := r.SetName(f.Name); err != nil {
		return nil, err
	}
	r.SetTelephone(f.Telephone)
	r.SetEmail(f.Email)

	switch kind {
	case KindTeacher:
		r.SetSalary(f.Salary)
		r.SetSubject(0, f.Subject1)
		r.SetSubject(1, f.Subject2)
	case KindAdmin:
		r.SetSalary(f.Salary)
		r.SetEmploymentType(f.EmploymentType)
		hours := DefaultWorkingHours
		if f.WorkingHours != nil {
			hours = *f.WorkingHours
		}
		r.SetWorkingHours(hours)
	case KindStudent:
		r.SetSubject(0, f.Subject1)
		r.SetSubject(1, f.Subject2)
		r.SetSubject(2, f.Subject3)
	}

	return r, nil
}

func (r *Record) ID() string                     { return r.id }
func (r *Record) Kind() Kind                     { return r.kind }
func (r *Record) Name() string                   { return r.name }
func (r *Record) Telephone() string              { return r.telephone }
func (r *Record) Email() string                  { return r.email }
func (r *Record) Salary() decimal.Decimal        { return r.salary }
func (r *Record) EmploymentType() EmploymentType { return r.employmentType }
func (r *Record) WorkingHours() int              { return r.workingHours }

// Subject は 0 始まりの科目を返します。範囲外や種別に無い科目は空文字列です。
func (r *Record) Subject(i int) string {
	if i < 0 || i >= r.subjectCount() {
		return ""
	}
	return r.subjects[i]
}

// Subjects は種別が持つ科目を順に返します。
func (r *Record) Subjects() []string {
	out := make([]string, r.subjectCount())
	copy(out, r.subjects[:])
	return out
}

// SetName は名前を設定します。空白のみの名前は拒否され、値は変更されません。
func (r *Record) SetName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrInvalidName
	}
	r.name = trimmed
	return nil
}

func (r *Record) SetTelephone(telephone string) {
	r.telephone = telephone
}

func (r *Record) SetEmail(email string) {
	r.email = email
}

// SetSalary は給与を設定します。負の値は 0 に丸められます。
func (r *Record) SetSalary(salary decimal.Decimal) {
	if !r.hasSalary() {
		return
	}
	if salary.IsNegative() {
		salary = decimal.Zero
	}
	r.salary = salary
}

// SetEmploymentType は雇用形態を設定します。不正な値は Full-time になります。
func (r *Record) SetEmploymentType(raw string) {
	if r.kind != KindAdmin {
		return
	}
	r.employmentType = NormalizeEmploymentType(raw)
}

// SetWorkingHours は週あたりの勤務時間を設定します。0 以下は 1 になります。
func (r *Record) SetWorkingHours(hours int) {
	if r.kind != KindAdmin {
		return
	}
	if hours < minWorkingHours {
		hours = minWorkingHours
	}
	r.workingHours = hours
}

// SetSubject は 0 始まりの科目を設定します。種別に無い位置への設定は無視されます。
func (r *Record) SetSubject(i int, subject string) {
	if i < 0 || i >= r.subjectCount() {
		return
	}
	r.subjects[i] = subject
}

func (r *Record) hasSalary() bool {
	return r.kind == KindTeacher || r.kind == KindAdmin
}

func (r *Record) subjectCount() int {
	switch r.kind {
	case KindTeacher:
		return 2
	case KindStudent:
		return 3
	default:
		return 0
	}
}

// Clone はレコードの独立したコピーを返します。
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}
