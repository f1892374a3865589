package storage

import "errors"

// ErrObjectNotFound возвращается, когда объект с указанным ключом отсутствует
var ErrObjectNotFound = errors.New("object not found")
