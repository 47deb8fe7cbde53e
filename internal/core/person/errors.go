package person

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation は入力値の検証エラー全般を表します。個別のエラーはこれをラップします。
	ErrValidation = errors.New("validation error")
	// ErrInvalidKind はレコード種別が不正な場合に返却されます。
	ErrInvalidKind = fmt.Errorf("%w: invalid record kind", ErrValidation)
	// ErrInvalidName は名前が空の場合に返却されます。
	ErrInvalidName = fmt.Errorf("%w: name must not be blank", ErrValidation)
	// ErrInvalidSalary は給与が数値として解釈できない場合に返却されます。
	ErrInvalidSalary = fmt.Errorf("%w: salary must be a decimal number", ErrValidation)
	// ErrInvalidWorkingHours は勤務時間が整数として解釈できない場合に返却されます。
	ErrInvalidWorkingHours = fmt.Errorf("%w: working hours must be a whole number", ErrValidation)
)
