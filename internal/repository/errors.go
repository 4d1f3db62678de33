package repository

import "errors"

// ErrNotFound is returned by the in-memory repositories when a lookup
// misses. GORM-backed repositories return gorm.ErrRecordNotFound instead;
// services translate both into their domain errors.
var ErrNotFound = errors.New("registro não encontrado")
