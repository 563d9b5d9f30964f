package clickpack

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrNoClicks      = errors.New("no clicks found in clickpack, did you select the correct folder?")
	ErrInvalidButton = errors.New("invalid button value")
	errEmptySample   = errors.New("sample contains no audio frames")
	errUnknownFormat = errors.New("no decoder accepted the file")
)

// LoadErrorKind classifies a sample load failure
type LoadErrorKind int

const (
	LoadErrorIO LoadErrorKind = iota
	LoadErrorDecode
)

func (k LoadErrorKind) String() string {
	if k == LoadErrorIO {
		return "io"
	}
	return "decode"
}

// LoadError reports a single sample file that could not be loaded
// Loaders log and skip these; they never fail a whole clickpack
type LoadError struct {
	Kind LoadErrorKind
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s (%s): %v", e.Path, e.Kind, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
