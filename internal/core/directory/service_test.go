package directory

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"testing"

	"github.com/ogurasousui/edu-centre-directory/internal/core/person"
	"github.com/ogurasousui/edu-centre-directory/internal/core/store"
	"github.com/shopspring/decimal"
)

type sequentialIDs struct {
	seq int
}

func (g *sequentialIDs) NewID() string {
	g.seq++
	return "rec-" + strconv.Itoa(g.seq)
}

func newTestService() *Service {
	return NewService(&sequentialIDs{})
}

func decimalPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func mustAdd(t *testing.T, svc *Service, in AddRecordInput) *person.Record {
	t.Helper()

	rec, err := svc.AddRecord(context.Background(), in)
	if err != nil {
		t.Fatalf("AddRecord returned error: %v", err)
	}
	return rec
}

func collect(t *testing.T, svc *Service, filter Filter) []string {
	t.Helper()

	seq, err := svc.ListAll(context.Background(), filter)
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	return slices.Collect(seq)
}

func TestService_AddRecord_Teacher(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	ctx := context.Background()

	before, _ := svc.CountOf(ctx, person.KindTeacher)

	created := mustAdd(t, svc, AddRecordInput{
		Kind:      person.KindTeacher,
		Name:      "Ada Lovelace",
		Telephone: "555-9999",
		Email:     "ada@x.edu",
		Salary:    decimalPtr(65000),
		Subject1:  "Math",
		Subject2:  "CS",
	})

	after, _ := svc.CountOf(ctx, person.KindTeacher)
	if after != before+1 {
		t.Fatalf("expected count to grow by 1, got %d -> %d", before, after)
	}
	if created.ID() != "rec-1" {
		t.Fatalf("expected generated id, got %s", created.ID())
	}
	if created.Name() != "Ada Lovelace" || created.Telephone() != "555-9999" || created.Email() != "ada@x.edu" {
		t.Fatalf("unexpected base fields: %s", created.DisplayInfo())
	}

	lines := collect(t, svc, FilterTeachers)
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %v", lines)
	}
	want := "Name: Ada Lovelace, Phone: 555-9999, Email: ada@x.edu, Role: Teacher, Salary: $65000.00, Subjects: Math, CS"
	if lines[0] != want {
		t.Fatalf("unexpected line.\nwant %s\ngot  %s", want, lines[0])
	}
}

func TestService_AddRecord_CoercesSilently(t *testing.T) {
	t.Parallel()

	svc := newTestService()

	created := mustAdd(t, svc, AddRecordInput{
		Kind:           person.KindAdmin,
		Name:           "Mike Brown",
		Salary:         decimalPtr(-5),
		EmploymentType: "Contractor",
		WorkingHours:   intPtr(0),
	})

	if !created.Salary().IsZero() {
		t.Fatalf("expected salary 0, got %s", created.Salary())
	}
	if created.EmploymentType() != person.EmploymentFullTime {
		t.Fatalf("expected Full-time, got %s", created.EmploymentType())
	}
	if created.WorkingHours() != 1 {
		t.Fatalf("expected hours 1, got %d", created.WorkingHours())
	}
}

func TestService_AddRecord_ValidationErrors(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	ctx := context.Background()

	tests := []struct {
		name string
		in   AddRecordInput
		want error
	}{
		{name: "blank name", in: AddRecordInput{Kind: person.KindStudent, Name: "   "}, want: person.ErrInvalidName},
		{name: "empty name", in: AddRecordInput{Kind: person.KindTeacher}, want: person.ErrInvalidName},
		{name: "missing kind", in: AddRecordInput{Name: "Bob"}, want: person.ErrInvalidKind},
		{name: "unknown kind", in: AddRecordInput{Kind: "Janitor", Name: "Bob"}, want: person.ErrInvalidKind},
	}

	for _, tt := range tests {
		_, err := svc.AddRecord(ctx, tt.in)
		if !errors.Is(err, tt.want) {
			t.Fatalf("%s: expected %v, got %v", tt.name, tt.want, err)
		}
		if !errors.Is(err, person.ErrValidation) {
			t.Fatalf("%s: expected validation error, got %v", tt.name, err)
		}
	}

	for _, k := range person.Kinds() {
		if n, _ := svc.CountOf(ctx, k); n != 0 {
			t.Fatalf("expected no records after failures, %s has %d", k, n)
		}
	}
}

func TestService_ListAll_GroupsByKind(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	mustAdd(t, svc, AddRecordInput{Kind: person.KindStudent, Name: "Emma"})
	mustAdd(t, svc, AddRecordInput{Kind: person.KindAdmin, Name: "Mike"})
	mustAdd(t, svc, AddRecordInput{Kind: person.KindTeacher, Name: "John"})
	mustAdd(t, svc, AddRecordInput{Kind: person.KindStudent, Name: "James"})

	lines := collect(t, svc, FilterAll)
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	prefixes := []string{"Name: John,", "Name: Mike,", "Name: Emma,", "Name: James,"}
	for i, p := range prefixes {
		if len(lines[i]) < len(p) || lines[i][:len(p)] != p {
			t.Fatalf("line %d: expected prefix %q, got %q", i, p, lines[i])
		}
	}

	if got := collect(t, svc, FilterStudents); len(got) != 2 {
		t.Fatalf("expected 2 student lines, got %v", got)
	}
}

func TestService_ListAll_IsRestartableAndLive(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	mustAdd(t, svc, AddRecordInput{Kind: person.KindStudent, Name: "Emma"})

	seq, err := svc.ListAll(context.Background(), FilterAll)
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}

	if got := slices.Collect(seq); len(got) != 1 {
		t.Fatalf("expected 1 line, got %v", got)
	}

	mustAdd(t, svc, AddRecordInput{Kind: person.KindStudent, Name: "James"})

	if got := slices.Collect(seq); len(got) != 2 {
		t.Fatalf("expected sequence to reflect current state, got %v", got)
	}
}

func TestService_ListAll_StopsEarly(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	for _, name := range []string{"a", "b", "c"} {
		mustAdd(t, svc, AddRecordInput{Kind: person.KindStudent, Name: name})
	}

	seq, _ := svc.ListAll(context.Background(), FilterAll)
	var seen int
	for range seq {
		seen++
		if seen == 2 {
			break
		}
	}
	if seen != 2 {
		t.Fatalf("expected to stop after 2, got %d", seen)
	}
}

func TestService_ListAll_InvalidFilter(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	if _, err := svc.ListAll(context.Background(), Filter("Parents")); !errors.Is(err, ErrInvalidFilter) {
		t.Fatalf("expected ErrInvalidFilter, got %v", err)
	}
}

func TestService_EditRecord_OnlyTelephone(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	original := mustAdd(t, svc, AddRecordInput{
		Kind: person.KindTeacher, Name: "John Smith", Telephone: "555-0101", Email: "j.smith@edu.centre",
		Salary: decimalPtr(75000), Subject1: "Mathematics", Subject2: "Physics",
	})

	updated, err := svc.EditRecord(context.Background(), EditRecordInput{
		Kind:  person.KindTeacher,
		Index: 0,
		Patch: person.Patch{Telephone: strPtr("555-7777"), Email: strPtr("  ")},
	})
	if err != nil {
		t.Fatalf("EditRecord returned error: %v", err)
	}

	if updated.ID() != original.ID() {
		t.Fatalf("identity changed: %s -> %s", original.ID(), updated.ID())
	}
	if updated.Telephone() != "555-7777" {
		t.Fatalf("expected telephone update, got %s", updated.Telephone())
	}
	if updated.Name() != original.Name() || updated.Email() != original.Email() ||
		!updated.Salary().Equal(original.Salary()) || !slices.Equal(updated.Subjects(), original.Subjects()) {
		t.Fatalf("unexpected changes.\nbefore %s\nafter  %s", original.DisplayInfo(), updated.DisplayInfo())
	}

	stored, err := svc.GetRecord(context.Background(), GetRecordInput{Kind: person.KindTeacher, Index: 0})
	if err != nil {
		t.Fatalf("GetRecord returned error: %v", err)
	}
	if stored.Telephone() != "555-7777" {
		t.Fatalf("edit not persisted in store: %s", stored.DisplayInfo())
	}
}

func TestService_EditRecord_CoercesWorkingHours(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	mustAdd(t, svc, AddRecordInput{Kind: person.KindAdmin, Name: "Lisa", WorkingHours: intPtr(20)})

	updated, err := svc.EditRecord(context.Background(), EditRecordInput{
		Kind:  person.KindAdmin,
		Index: 0,
		Patch: person.Patch{WorkingHours: intPtr(-1)},
	})
	if err != nil {
		t.Fatalf("EditRecord returned error: %v", err)
	}
	if updated.WorkingHours() != 1 {
		t.Fatalf("expected hours 1, got %d", updated.WorkingHours())
	}
}

func TestService_EditRecord_OutOfRange(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	_, err := svc.EditRecord(context.Background(), EditRecordInput{Kind: person.KindAdmin, Index: 0})
	if !errors.Is(err, store.ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestService_DeleteRecords(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	ctx := context.Background()
	mustAdd(t, svc, AddRecordInput{Kind: person.KindStudent, Name: "Emma"})
	mustAdd(t, svc, AddRecordInput{Kind: person.KindStudent, Name: "James"})
	mustAdd(t, svc, AddRecordInput{Kind: person.KindTeacher, Name: "John"})

	removed, err := svc.DeleteRecords(ctx, DeleteRecordsInput{Kind: person.KindStudent, Indices: []int{0, 1}})
	if err != nil {
		t.Fatalf("DeleteRecords returned error: %v", err)
	}
	if removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}
	if n, _ := svc.CountOf(ctx, person.KindStudent); n != 0 {
		t.Fatalf("expected no students, got %d", n)
	}
	if n, _ := svc.CountOf(ctx, person.KindTeacher); n != 1 {
		t.Fatalf("expected teacher untouched, got %d", n)
	}
}

func TestService_DeleteRecords_InvalidIndex(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	ctx := context.Background()
	mustAdd(t, svc, AddRecordInput{Kind: person.KindStudent, Name: "Emma"})

	_, err := svc.DeleteRecords(ctx, DeleteRecordsInput{Kind: person.KindStudent, Indices: []int{0, 4}})
	if !errors.Is(err, store.ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if n, _ := svc.CountOf(ctx, person.KindStudent); n != 1 {
		t.Fatalf("expected store unchanged, got %d", n)
	}
}

func TestService_UnknownKind(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.CountOf(ctx, "Parent"); !errors.Is(err, person.ErrInvalidKind) {
		t.Fatalf("CountOf: expected ErrInvalidKind, got %v", err)
	}
	if _, err := svc.GetRecord(ctx, GetRecordInput{Kind: "Parent"}); !errors.Is(err, person.ErrInvalidKind) {
		t.Fatalf("GetRecord: expected ErrInvalidKind, got %v", err)
	}
	if _, err := svc.DeleteRecords(ctx, DeleteRecordsInput{Kind: "Parent"}); !errors.Is(err, person.ErrInvalidKind) {
		t.Fatalf("DeleteRecords: expected ErrInvalidKind, got %v", err)
	}
}

func TestService_ReturnedRecordsAreCopies(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	created := mustAdd(t, svc, AddRecordInput{Kind: person.KindStudent, Name: "Emma"})
	_ = created.SetName("Mallory")

	stored, _ := svc.GetRecord(context.Background(), GetRecordInput{Kind: person.KindStudent, Index: 0})
	if stored.Name() != "Emma" {
		t.Fatalf("caller mutated stored record: %s", stored.Name())
	}
}

func TestParseFilter(t *testing.T) {
	t.Parallel()

	cases := map[string]Filter{
		"all":      FilterAll,
		"Teachers": FilterTeachers,
		"admin":    FilterAdmins,
		"STUDENTS": FilterStudents,
	}
	for raw, want := range cases {
		got, err := ParseFilter(raw)
		if err != nil || got != want {
			t.Fatalf("ParseFilter(%q) = %s, %v; want %s", raw, got, err, want)
		}
	}

	if _, err := ParseFilter("everyone"); !errors.Is(err, ErrInvalidFilter) {
		t.Fatalf("expected ErrInvalidFilter, got %v", err)
	}
}
