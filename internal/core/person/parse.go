package person

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseSalary はフロントエンドから受け取った給与文字列を解釈します。
// 空文字列は未指定として nil を返します。負の値はここでは拒否せず、セッターで補正されます。
func ParseSalary(raw string) (*decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	trimmed = strings.TrimPrefix(trimmed, "$")

	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", raw, ErrInvalidSalary)
	}
	return &d, nil
}

// ParseWorkingHours は勤務時間の文字列を解釈します。空文字列は未指定として nil を返します。
func ParseWorkingHours(raw string) (*int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}

	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", raw, ErrInvalidWorkingHours)
	}
	return &n, nil
}
