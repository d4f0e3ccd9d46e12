package punch

import "errors"

var (
	ErrPunchNotFound    = errors.New("punch not found")
	ErrInvalidPunchKind = errors.New("punch kind must be entrada or saida")
	ErrDuplicatePunch   = errors.New("an identical punch already exists")
	ErrInvalidCursor    = errors.New("invalid pagination cursor")
)
