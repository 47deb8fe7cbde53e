package store

import (
	"fmt"
	"slices"
	"sync"

	"github.com/ogurasousui/edu-centre-directory/internal/core/person"
)

// Store は1種別分のレコードを挿入順に保持するコレクションです。
// 位置は常に 0..Count()-1 で欠番はなく、変更操作を挟むと無効になります。
type Store struct {
	kind    person.Kind
	mu      sync.RWMutex
	records []person.Record
}

// New は指定種別の空の Store を生成します。
func New(kind person.Kind) *Store {
	return &Store{kind: kind}
}

// Kind は Store が保持する種別を返します。
func (s *Store) Kind() person.Kind {
	return s.kind
}

// WithinRead は読み取りロックを保持したまま fn を実行します。
func (s *Store) WithinRead(fn func()) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn()
}

// WithinWrite は書き込みロックを保持したまま fn を実行します。
func (s *Store) WithinWrite(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

// Add はレコードのコピーを末尾に追加し、追加後の件数を返します。
func (s *Store) Add(r *person.Record) int {
	var n int
	s.WithinWrite(func() {
		s.records = append(s.records, *r.Clone())
		n = len(s.records)
	})
	return n
}

// Get は指定位置のレコードのコピーを返します。
func (s *Store) Get(index int) (*person.Record, error) {
	var (
		out *person.Record
		err error
	)
	s.WithinRead(func() {
		if err = s.checkIndex(index); err != nil {
			return
		}
		out = s.records[index].Clone()
	})
	return out, err
}

// Update は指定位置のレコードをその場で変更し、変更後のコピーを返します。
// 位置と ID は変わりません。
func (s *Store) Update(index int, fn func(*person.Record)) (*person.Record, error) {
	var (
		out *person.Record
		err error
	)
	s.WithinWrite(func() {
		if err = s.checkIndex(index); err != nil {
			return
		}
		fn(&s.records[index])
		out = s.records[index].Clone()
	})
	return out, err
}

// RemoveAt は指定位置のレコードを削除し、後続を1つずつ詰めます。
func (s *Store) RemoveAt(index int) error {
	var err error
	s.WithinWrite(func() {
		if err = s.checkIndex(index); err != nil {
			return
		}
		s.records = slices.Delete(s.records, index, index+1)
	})
	return err
}

// RemoveMany は複数位置をまとめて削除し、削除件数を返します。
// 重複は除去され、1つでも範囲外があれば何も削除せずにエラーを返します。
// 削除は大きい位置から行うため、同一バッチ内の位置は互いに影響しません。
func (s *Store) RemoveMany(indices []int) (int, error) {
	if len(indices) == 0 {
		return 0, nil
	}

	unique := slices.Clone(indices)
	slices.Sort(unique)
	unique = slices.Compact(unique)
	slices.Reverse(unique)

	var err error
	s.WithinWrite(func() {
		for _, idx := range unique {
			if err = s.checkIndex(idx); err != nil {
				return
			}
		}
		for _, idx := range unique {
			s.records = slices.Delete(s.records, idx, idx+1)
		}
	})
	if err != nil {
		return 0, err
	}
	return len(unique), nil
}

// Records は現在の全レコードのコピーを挿入順に返します。
func (s *Store) Records() []*person.Record {
	var out []*person.Record
	s.WithinRead(func() {
		out = make([]*person.Record, 0, len(s.records))
		for i := range s.records {
			out = append(out, s.records[i].Clone())
		}
	})
	return out
}

// Count は現在の件数を返します。
func (s *Store) Count() int {
	var n int
	s.WithinRead(func() {
		n = len(s.records)
	})
	return n
}

// checkIndex はロック保持中に呼び出します。
func (s *Store) checkIndex(index int) error {
	if index < 0 || index >= len(s.records) {
		return fmt.Errorf("%s index %d (count %d): %w", s.kind, index, len(s.records), ErrIndexOutOfRange)
	}
	return nil
}
