package seed

import (
	"context"
	"fmt"

	"github.com/ogurasousui/edu-centre-directory/internal/core/directory"
	"github.com/ogurasousui/edu-centre-directory/internal/core/person"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

func salary(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func hours(v int) *int { return &v }

// DemoRecords はデモ用の初期データです。
func DemoRecords() []directory.AddRecordInput {
	return []directory.AddRecordInput{
		{Kind: person.KindTeacher, Name: "Dr. John Smith", Telephone: "555-0101", Email: "j.smith@edu.centre", Salary: salary(75000), Subject1: "Mathematics", Subject2: "Physics"},
		{Kind: person.KindTeacher, Name: "Prof. Sarah Johnson", Telephone: "555-0102", Email: "s.johnson@edu.centre", Salary: salary(82000), Subject1: "English", Subject2: "Literature"},
		{Kind: person.KindAdmin, Name: "Mike Brown", Telephone: "555-0201", Email: "m.brown@edu.centre", Salary: salary(45000), EmploymentType: "Full-time", WorkingHours: hours(40)},
		{Kind: person.KindAdmin, Name: "Lisa Davis", Telephone: "555-0202", Email: "l.davis@edu.centre", Salary: salary(25000), EmploymentType: "Part-time", WorkingHours: hours(20)},
		{Kind: person.KindStudent, Name: "Emma Wilson", Telephone: "555-0301", Email: "e.wilson@student.edu", Subject1: "Mathematics", Subject2: "Physics", Subject3: "Chemistry"},
		{Kind: person.KindStudent, Name: "James Miller", Telephone: "555-0302", Email: "j.miller@student.edu", Subject1: "English", Subject2: "History", Subject3: "Art"},
	}
}

// Load はデモデータをディレクトリに投入します。
func Load(ctx context.Context, svc directory.UseCase, log zerolog.Logger) error {
	for _, in := range DemoRecords() {
		if _, err := svc.AddRecord(ctx, in); err != nil {
			return fmt.Errorf("seed %s %q: %w", in.Kind, in.Name, err)
		}
	}
	log.Info().Int("records", len(DemoRecords())).Msg("demo data loaded")
	return nil
}
