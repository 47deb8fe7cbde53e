package directory

import (
	"fmt"

	"github.com/ogurasousui/edu-centre-directory/internal/core/person"
)

// ErrInvalidFilter は一覧フィルタが不正な場合に返却されます。
var ErrInvalidFilter = fmt.Errorf("%w: invalid filter", person.ErrValidation)
