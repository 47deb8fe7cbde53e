package store

import "errors"

// ErrIndexOutOfRange は指定位置にレコードが存在しない場合に返却されます。
var ErrIndexOutOfRange = errors.New("store: index out of range")
