package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for tree and tab operations
var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrNotDirectory    = errors.New("not a directory")
	ErrSymlinkLoop     = errors.New("symlink loop")
	ErrNotText         = errors.New("not valid UTF-8 text")
)

// IndexError reports an index outside a container
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0,%d)", e.Index, e.Len)
}

func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}
