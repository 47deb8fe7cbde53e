package directory

import (
	"context"
	"fmt"
	"iter"

	"github.com/google/uuid"
	"github.com/ogurasousui/edu-centre-directory/internal/core/person"
	"github.com/ogurasousui/edu-centre-directory/internal/core/store"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// IDGenerator はレコード ID を払い出します。
type IDGenerator interface {
	NewID() string
}

type uuidGenerator struct{}

func (uuidGenerator) NewID() string {
	return uuid.NewString()
}

// Service は種別ごとの Store をまとめ、フロントエンドに CRUD 操作を提供します。
type Service struct {
	stores map[person.Kind]*store.Store
	ids    IDGenerator
}

// UseCase はディレクトリユースケースの公開インターフェースです。
type UseCase interface {
	AddRecord(ctx context.Context, in AddRecordInput) (*person.Record, error)
	ListAll(ctx context.Context, filter Filter) (iter.Seq[string], error)
	EditRecord(ctx context.Context, in EditRecordInput) (*person.Record, error)
	DeleteRecords(ctx context.Context, in DeleteRecordsInput) (int, error)
	CountOf(ctx context.Context, kind person.Kind) (int, error)
	GetRecord(ctx context.Context, in GetRecordInput) (*person.Record, error)
}

// NewService は Service を生成します。nil の依存はデフォルト実装で補われます。
func NewService(ids IDGenerator) *Service {
	if ids == nil {
		ids = uuidGenerator{}
	}

	stores := make(map[person.Kind]*store.Store, len(person.Kinds()))
	for _, k := range person.Kinds() {
		stores[k] = store.New(k)
	}

	return &Service{stores: stores, ids: ids}
}

// AddRecordInput はレコード追加時の入力です。
type AddRecordInput struct {
	Kind           person.Kind
	Name           string
	Telephone      string
	Email          string
	Salary         *decimal.Decimal
	Subject1       string
	Subject2       string
	Subject3       string
	EmploymentType string
	WorkingHours   *int
}

// EditRecordInput はレコード編集時の入力です。
type EditRecordInput struct {
	Kind  person.Kind
	Index int
	Patch person.Patch
}

// DeleteRecordsInput はレコード削除時の入力です。確認はフロントエンドの責務です。
type DeleteRecordsInput struct {
	Kind    person.Kind
	Indices []int
}

// GetRecordInput はレコード取得時の入力です。
type GetRecordInput struct {
	Kind  person.Kind
	Index int
}

// AddRecord は種別に応じたレコードを生成し、対応する Store の末尾に追加します。
// 種別と名前の検証は person.New が行います。
func (s *Service) AddRecord(ctx context.Context, in AddRecordInput) (*person.Record, error) {

	var salary decimal.Decimal
	if in.Salary != nil {
		salary = *in.Salary
	}

	rec, err := person.New(s.ids.NewID(), in.Kind, person.Fields{
		Name:           in.Name,
		Telephone:      in.Telephone,
		Email:          in.Email,
		Salary:         salary,
		Subject1:       in.Subject1,
		Subject2:       in.Subject2,
		Subject3:       in.Subject3,
		EmploymentType: in.EmploymentType,
		WorkingHours:   in.WorkingHours,
	})
	if err != nil {
		return nil, err
	}

	count := s.stores[in.Kind].Add(rec)

	zerolog.Ctx(ctx).Debug().
		Str("kind", string(in.Kind)).
		Str("id", rec.ID()).
		Int("count", count).
		Msg("record added")

	return rec.Clone(), nil
}

// ListAll はフィルタに一致するレコードのサマリ行を Teacher, Admin, Student の順に返します。
// 返却されるシーケンスは遅延評価で、反復のたびに現在の Store の状態から生成されます。
func (s *Service) ListAll(ctx context.Context, filter Filter) (iter.Seq[string], error) {
	kinds := filter.Kinds()
	if len(kinds) == 0 {
		return nil, ErrInvalidFilter
	}

	zerolog.Ctx(ctx).Debug().Str("filter", string(filter)).Msg("listing records")

	return func(yield func(string) bool) {
		for _, k := range kinds {
			for _, rec := range s.stores[k].Records() {
				if !yield(rec.DisplayInfo()) {
					return
				}
			}
		}
	}, nil
}

// EditRecord は指定位置のレコードに Patch を適用し、更新後のレコードを返します。
// 空白の項目は現在値を維持します。
func (s *Service) EditRecord(ctx context.Context, in EditRecordInput) (*person.Record, error) {
	st, err := s.storeFor(in.Kind)
	if err != nil {
		return nil, err
	}

	updated, err := st.Update(in.Index, in.Patch.Apply)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("kind", string(in.Kind)).
		Int("index", in.Index).
		Str("id", updated.ID()).
		Msg("record edited")

	return updated, nil
}

// DeleteRecords は指定位置のレコードをまとめて削除し、削除件数を返します。
func (s *Service) DeleteRecords(ctx context.Context, in DeleteRecordsInput) (int, error) {
	st, err := s.storeFor(in.Kind)
	if err != nil {
		return 0, err
	}

	removed, err := st.RemoveMany(in.Indices)
	if err != nil {
		return 0, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("kind", string(in.Kind)).
		Ints("indices", in.Indices).
		Int("removed", removed).
		Msg("records deleted")

	return removed, nil
}

// CountOf は種別ごとの件数を返します。
func (s *Service) CountOf(_ context.Context, kind person.Kind) (int, error) {
	st, err := s.storeFor(kind)
	if err != nil {
		return 0, err
	}
	return st.Count(), nil
}

// GetRecord は指定位置のレコードを返します。
func (s *Service) GetRecord(_ context.Context, in GetRecordInput) (*person.Record, error) {
	st, err := s.storeFor(in.Kind)
	if err != nil {
		return nil, err
	}
	return st.Get(in.Index)
}

func (s *Service) storeFor(kind person.Kind) (*store.Store, error) {
	st, ok := s.stores[kind]
	if !ok {
		return nil, fmt.Errorf("kind %q: %w", kind, person.ErrInvalidKind)
	}
	return st, nil
}
