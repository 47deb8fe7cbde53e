// Package console はメニュー形式のテキストコンソールからディレクトリを操作するアダプタです。
// 入力の解釈と表示のみを担当し、業務ルールは持ちません。
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/ogurasousui/edu-centre-directory/internal/core/directory"
	"github.com/ogurasousui/edu-centre-directory/internal/core/person"
	"github.com/ogurasousui/edu-centre-directory/internal/core/store"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const banner = "=== Education Centre Management System ==="

const menu = `
1) Add record
2) View records
3) Edit record
4) Delete records
5) Exit`

var groupHeadings = map[person.Kind]string{
	person.KindTeacher: "TEACHERS:",
	person.KindAdmin:   "ADMINISTRATION:",
	person.KindStudent: "STUDENTS:",
}

// maxLineBytes は 1 回の入力として受け付ける最大バイト数です。
const maxLineBytes = 4096

var (
	// errInputClosed は入力が途中で終了したことを表します。
	errInputClosed = errors.New("console: input closed")
	// errExitDeclined は終了確認で n が選ばれたことを表します。
	errExitDeclined = errors.New("console: exit declined")
	// errLineTooLong は入力行が maxLineBytes を超えた場合に返却されます。
	errLineTooLong = fmt.Errorf("%w: input line longer than %d bytes", person.ErrValidation, maxLineBytes)
)

// Console は対話ループを保持します。
type Console struct {
	svc directory.UseCase
	in  *bufio.Reader
	out io.Writer
	log zerolog.Logger
}

// New は Console を生成します。
func New(svc directory.UseCase, in io.Reader, out io.Writer, log zerolog.Logger) *Console {
	return &Console{svc: svc, in: bufio.NewReader(in), out: out, log: log}
}

// Run は終了が選択されるか入力が尽きるまでメニューを繰り返します。
// 入力エラーは画面に表示して継続し、それ以外のエラーのみを返します。
func (c *Console) Run(ctx context.Context) error {
	c.println(banner)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.println(menu)
		choice, err := c.prompt("Select an option")
		if isInputError(err) {
			c.printf("Error: %v\n", err)
			continue
		}
		if err != nil {
			return c.closed(err)
		}

		var opErr error
		switch choice {
		case "1":
			opErr = c.add(ctx)
		case "2":
			opErr = c.view(ctx)
		case "3":
			opErr = c.edit(ctx)
		case "4":
			opErr = c.delete(ctx)
		case "5":
			opErr = c.exit()
			if opErr == nil {
				return nil
			}
		default:
			c.printf("Invalid option %q.\n", choice)
			continue
		}

		switch {
		case opErr == nil, errors.Is(opErr, errExitDeclined):
		case errors.Is(opErr, errInputClosed):
			return c.closed(opErr)
		case isInputError(opErr):
			c.printf("Error: %v\n", opErr)
		default:
			return opErr
		}
	}
}

func (c *Console) add(ctx context.Context) error {
	kind, err := c.promptKind()
	if err != nil {
		return err
	}

	in := directory.AddRecordInput{Kind: kind}
	for _, f := range []struct {
		label string
		dst   *string
	}{
		{"Name", &in.Name},
		{"Phone", &in.Telephone},
		{"Email", &in.Email},
	} {
		if *f.dst, err = c.prompt(f.label); err != nil {
			return err
		}
	}

	switch kind {
	case person.KindTeacher:
		if in.Salary, err = c.promptSalary("Salary"); err != nil {
			return err
		}
		if in.Subject1, err = c.prompt("Subject 1"); err != nil {
			return err
		}
		if in.Subject2, err = c.prompt("Subject 2"); err != nil {
			return err
		}
	case person.KindAdmin:
		if in.Salary, err = c.promptSalary("Salary"); err != nil {
			return err
		}
		if in.EmploymentType, err = c.prompt("Employment type (Full-time/Part-time)"); err != nil {
			return err
		}
		if in.WorkingHours, err = c.promptHours(fmt.Sprintf("Hours/week [%d]", person.DefaultWorkingHours)); err != nil {
			return err
		}
	case person.KindStudent:
		for i, dst := range []*string{&in.Subject1, &in.Subject2, &in.Subject3} {
			if *dst, err = c.prompt(fmt.Sprintf("Subject %d", i+1)); err != nil {
				return err
			}
		}
	}

	created, err := c.svc.AddRecord(ctx, in)
	if err != nil {
		return err
	}

	c.printf("%s added successfully!\n", created.Kind())
	c.log.Debug().Str("kind", string(created.Kind())).Str("id", created.ID()).Msg("console add")
	return nil
}

func (c *Console) view(ctx context.Context) error {
	raw, err := c.prompt("Filter (All/Teachers/Admins/Students) [All]")
	if err != nil {
		return err
	}

	filter := directory.FilterAll
	if raw != "" {
		if filter, err = directory.ParseFilter(raw); err != nil {
			return err
		}
	}

	c.println("=== EDUCATION CENTRE DATA ===")
	c.println("")

	for _, kind := range filter.Kinds() {
		lines, err := c.svc.ListAll(ctx, directory.FilterFor(kind))
		if err != nil {
			return err
		}

		c.println(groupHeadings[kind])
		empty := true
		for line := range lines {
			c.println("  " + line)
			empty = false
		}
		if empty {
			c.println("  (none)")
		}
		c.println("")
	}
	return nil
}

func (c *Console) edit(ctx context.Context) error {
	kind, err := c.promptKind()
	if err != nil {
		return err
	}

	n, err := c.listNumbered(ctx, kind)
	if err != nil || n == 0 {
		return err
	}

	raw, err := c.prompt("Select record number")
	if err != nil {
		return err
	}
	index, err := parseIndex(raw)
	if err != nil {
		return err
	}

	current, err := c.svc.GetRecord(ctx, directory.GetRecordInput{Kind: kind, Index: index})
	if err != nil {
		return err
	}

	c.println(current.DetailedInfo())
	c.println("Leave a field blank to keep its current value.")

	var patch person.Patch
	if patch.Name, err = c.promptOptional("Name", current.Name()); err != nil {
		return err
	}
	if patch.Telephone, err = c.promptOptional("Phone", current.Telephone()); err != nil {
		return err
	}
	if patch.Email, err = c.promptOptional("Email", current.Email()); err != nil {
		return err
	}

	switch kind {
	case person.KindTeacher, person.KindAdmin:
		label := fmt.Sprintf("Salary [%s]", current.Salary().StringFixed(2))
		if patch.Salary, err = c.promptSalary(label); err != nil {
			return err
		}
	}

	switch kind {
	case person.KindAdmin:
		if patch.EmploymentType, err = c.promptOptional("Employment type", string(current.EmploymentType())); err != nil {
			return err
		}
		if patch.WorkingHours, err = c.promptHours(fmt.Sprintf("Hours/week [%d]", current.WorkingHours())); err != nil {
			return err
		}
	case person.KindTeacher, person.KindStudent:
		subjects := []**string{&patch.Subject1, &patch.Subject2, &patch.Subject3}
		for i, s := range current.Subjects() {
			if *subjects[i], err = c.promptOptional(fmt.Sprintf("Subject %d", i+1), s); err != nil {
				return err
			}
		}
	}

	if patch.Empty() {
		c.println("No changes made.")
		return nil
	}

	updated, err := c.svc.EditRecord(ctx, directory.EditRecordInput{Kind: kind, Index: index, Patch: patch})
	if err != nil {
		return err
	}

	c.println("Record updated:")
	c.println("  " + updated.DisplayInfo())
	return nil
}

func (c *Console) delete(ctx context.Context) error {
	kind, err := c.promptKind()
	if err != nil {
		return err
	}

	n, err := c.listNumbered(ctx, kind)
	if err != nil || n == 0 {
		return err
	}

	raw, err := c.prompt("Select record numbers to delete (e.g. 0,2)")
	if err != nil {
		return err
	}
	indices, err := parseIndices(raw)
	if err != nil {
		return err
	}
	if len(indices) == 0 {
		c.println("Please select records to delete.")
		return nil
	}

	ok, err := c.confirm(fmt.Sprintf("Delete %d selected record(s)?", len(indices)))
	if err != nil {
		return err
	}
	if !ok {
		c.println("Deletion cancelled.")
		return nil
	}

	removed, err := c.svc.DeleteRecords(ctx, directory.DeleteRecordsInput{Kind: kind, Indices: indices})
	if err != nil {
		return err
	}

	c.printf("%d record(s) deleted\n", removed)
	return nil
}

func (c *Console) exit() error {
	ok, err := c.confirm("Are you sure you want to exit?")
	if err != nil {
		return err
	}
	if !ok {
		return errExitDeclined
	}
	c.println("Goodbye!")
	return nil
}

// listNumbered は選択用に "[i] サマリ" 形式で一覧を表示し、件数を返します。
func (c *Console) listNumbered(ctx context.Context, kind person.Kind) (int, error) {
	lines, err := c.svc.ListAll(ctx, directory.FilterFor(kind))
	if err != nil {
		return 0, err
	}

	n := 0
	for line := range lines {
		c.printf("[%d] %s\n", n, line)
		n++
	}
	if n == 0 {
		c.printf("No %s records.\n", kind)
	}
	return n, nil
}

func (c *Console) prompt(label string) (string, error) {
	c.printf("%s: ", label)
	line, err := c.readLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readLine は 1 行を読み込みます。maxLineBytes を超えた行は最後まで読み捨てて errLineTooLong を返します。
func (c *Console) readLine() (string, error) {
	var (
		buf           []byte
		read, tooLong bool
	)
	for {
		chunk, isPrefix, err := c.in.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && read {
				break
			}
			if errors.Is(err, io.EOF) {
				return "", errInputClosed
			}
			return "", fmt.Errorf("console: read input: %w", err)
		}
		read = true

		if !tooLong {
			buf = append(buf, chunk...)
			if len(buf) > maxLineBytes {
				tooLong, buf = true, nil
			}
		}
		if !isPrefix {
			break
		}
	}

	if tooLong {
		return "", errLineTooLong
	}
	return string(buf), nil
}

// promptOptional は空入力の場合に nil を返します。
func (c *Console) promptOptional(label, current string) (*string, error) {
	v, err := c.prompt(fmt.Sprintf("%s [%s]", label, current))
	if err != nil || v == "" {
		return nil, err
	}
	return &v, nil
}

func (c *Console) promptKind() (person.Kind, error) {
	raw, err := c.prompt("Record type (Teacher/Admin/Student)")
	if err != nil {
		return "", err
	}
	return person.ParseKind(raw)
}

func (c *Console) promptSalary(label string) (*decimal.Decimal, error) {
	raw, err := c.prompt(label)
	if err != nil {
		return nil, err
	}
	return person.ParseSalary(raw)
}

func (c *Console) promptHours(label string) (*int, error) {
	raw, err := c.prompt(label)
	if err != nil {
		return nil, err
	}
	return person.ParseWorkingHours(raw)
}

func (c *Console) confirm(question string) (bool, error) {
	answer, err := c.prompt(question + " (y/n)")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (c *Console) closed(err error) error {
	if errors.Is(err, errInputClosed) {
		c.log.Debug().Msg("console input closed")
		return nil
	}
	return err
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func isInputError(err error) bool {
	return errors.Is(err, person.ErrValidation) || errors.Is(err, store.ErrIndexOutOfRange)
}

func parseIndex(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a record number", person.ErrValidation, raw)
	}
	return n, nil
}

// parseIndices はカンマまたは空白区切りの番号を重複なしで返します。
func parseIndices(raw string) ([]int, error) {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := parseIndex(f)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(out, n) {
			out = append(out, n)
		}
	}
	return out, nil
}
