package scanhead

import "errors"

// The closed set of host-visible failures. Every public operation that can
// fail returns one of these, possibly wrapped with context; callers match
// with errors.Is.
var (
	ErrInternal             = errors.New("internal error")
	ErrNilArgument          = errors.New("nil argument")
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrNotConnected         = errors.New("not connected")
	ErrConnected            = errors.New("already connected")
	ErrNotScanning          = errors.New("not scanning")
	ErrScanning             = errors.New("scanning in progress")
	ErrVersionCompatibility = errors.New("scan head firmware major version incompatible with client")
	ErrAlreadyExists        = errors.New("already exists")
	ErrNoMoreRoom           = errors.New("no more room")
	ErrNetwork              = errors.New("network failure")
	ErrNotDiscovered        = errors.New("scan head not discovered")
	ErrUnknown              = errors.New("unknown error")
)

// Code is the legacy numeric error surface: zero or positive for success,
// negative for a failure from the closed set.
type Code int32

const (
	CodeNone                 Code = 0
	CodeInternal             Code = -1
	CodeNilArgument          Code = -2
	CodeInvalidArgument      Code = -3
	CodeNotConnected         Code = -4
	CodeConnected            Code = -5
	CodeNotScanning          Code = -6
	CodeScanning             Code = -7
	CodeVersionCompatibility Code = -8
	CodeAlreadyExists        Code = -9
	CodeNoMoreRoom           Code = -10
	CodeNetwork              Code = -11
	CodeNotDiscovered        Code = -12
	CodeUnknown              Code = -13
)

var codeToErr = map[Code]error{
	CodeInternal:             ErrInternal,
	CodeNilArgument:          ErrNilArgument,
	CodeInvalidArgument:      ErrInvalidArgument,
	CodeNotConnected:         ErrNotConnected,
	CodeConnected:            ErrConnected,
	CodeNotScanning:          ErrNotScanning,
	CodeScanning:             ErrScanning,
	CodeVersionCompatibility: ErrVersionCompatibility,
	CodeAlreadyExists:        ErrAlreadyExists,
	CodeNoMoreRoom:           ErrNoMoreRoom,
	CodeNetwork:              ErrNetwork,
	CodeNotDiscovered:        ErrNotDiscovered,
	CodeUnknown:              ErrUnknown,
}

// ErrorCode collapses an error into its numeric code. nil maps to CodeNone;
// anything outside the closed set maps to CodeUnknown.
func ErrorCode(err error) Code {
	if err == nil {
		return CodeNone
	}
	for code, sentinel := range codeToErr {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	return CodeUnknown
}

// CodeError is the inverse of ErrorCode. Codes outside the known range,
// including positive values, map to ErrUnknown; CodeNone maps to nil.
func CodeError(c Code) error {
	if c == CodeNone {
		return nil
	}
	if err, ok := codeToErr[c]; ok {
		return err
	}
	return ErrUnknown
}
