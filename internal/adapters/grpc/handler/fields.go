package handler

import (
	"fmt"
	"math"

	"github.com/ogurasousui/edu-centre-directory/internal/core/person"
	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/structpb"
)

// リクエスト Struct のキー名です。
const (
	fieldKind           = "kind"
	fieldIndex          = "index"
	fieldIndices        = "indices"
	fieldName           = "name"
	fieldTelephone      = "telephone"
	fieldEmail          = "email"
	fieldSalary         = "salary"
	fieldSubject1       = "subject1"
	fieldSubject2       = "subject2"
	fieldSubject3       = "subject3"
	fieldEmploymentType = "employment_type"
	fieldWorkingHours   = "working_hours"
)

func malformed(key, want string) error {
	return fmt.Errorf("%w: field %q must be %s", person.ErrValidation, key, want)
}

// stringField はキーが存在しない場合に nil を返します。
func stringField(s *structpb.Struct, key string) (*string, error) {
	v, ok := s.GetFields()[key]
	if !ok || isNull(v) {
		return nil, nil
	}
	sv, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return nil, malformed(key, "a string")
	}
	out := sv.StringValue
	return &out, nil
}

func stringOrEmpty(s *structpb.Struct, key string) (string, error) {
	v, err := stringField(s, key)
	if err != nil || v == nil {
		return "", err
	}
	return *v, nil
}

func intField(s *structpb.Struct, key string) (*int, error) {
	v, ok := s.GetFields()[key]
	if !ok || isNull(v) {
		return nil, nil
	}
	n, err := toInt(v, key)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func requiredIntField(s *structpb.Struct, key string) (int, error) {
	n, err := intField(s, key)
	if err != nil {
		return 0, err
	}
	if n == nil {
		return 0, malformed(key, "set")
	}
	return *n, nil
}

func intListField(s *structpb.Struct, key string) ([]int, error) {
	v, ok := s.GetFields()[key]
	if !ok || isNull(v) {
		return nil, nil
	}
	lv, ok := v.GetKind().(*structpb.Value_ListValue)
	if !ok {
		return nil, malformed(key, "a list of integers")
	}
	out := make([]int, 0, len(lv.ListValue.GetValues()))
	for _, item := range lv.ListValue.GetValues() {
		n, err := toInt(item, key)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// salaryField は文字列 ("65000.00") と数値の両方を受け付けます。
func salaryField(s *structpb.Struct) (*decimal.Decimal, error) {
	v, ok := s.GetFields()[fieldSalary]
	if !ok || isNull(v) {
		return nil, nil
	}
	switch k := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		return person.ParseSalary(k.StringValue)
	case *structpb.Value_NumberValue:
		if math.IsNaN(k.NumberValue) || math.IsInf(k.NumberValue, 0) {
			return nil, malformed(fieldSalary, "a finite decimal number")
		}
		d := decimal.NewFromFloat(k.NumberValue)
		return &d, nil
	default:
		return nil, malformed(fieldSalary, "a decimal string or number")
	}
}

func toInt(v *structpb.Value, key string) (int, error) {
	nv, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, malformed(key, "a whole number")
	}
	f := nv.NumberValue
	if f != math.Trunc(f) || math.IsInf(f, 0) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, malformed(key, "a whole number")
	}
	return int(f), nil
}

func isNull(v *structpb.Value) bool {
	_, ok := v.GetKind().(*structpb.Value_NullValue)
	return ok
}

func kindField(s *structpb.Struct) (person.Kind, error) {
	raw, err := stringOrEmpty(s, fieldKind)
	if err != nil {
		return "", err
	}
	return person.ParseKind(raw)
}

func toRecordStruct(r *person.Record) (*structpb.Struct, error) {
	subjects := make([]any, 0, 3)
	for _, subject := range r.Subjects() {
		subjects = append(subjects, subject)
	}

	fields := map[string]any{
		"id":           r.ID(),
		fieldKind:      string(r.Kind()),
		fieldName:      r.Name(),
		fieldTelephone: r.Telephone(),
		fieldEmail:     r.Email(),
		"subjects":     subjects,
		"summary":      r.DisplayInfo(),
		"details":      r.DetailedInfo(),
	}

	switch r.Kind() {
	case person.KindTeacher:
		fields[fieldSalary] = r.Salary().StringFixed(2)
	case person.KindAdmin:
		fields[fieldSalary] = r.Salary().StringFixed(2)
		fields[fieldEmploymentType] = string(r.EmploymentType())
		fields[fieldWorkingHours] = r.WorkingHours()
	}

	return structpb.NewStruct(fields)
}
