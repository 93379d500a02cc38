package reshape

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Error codes reported by Code on the errors of this package.
const (
	CodeInvalidData      = "reshape_invalid_data"
	CodeInvalidArgument  = "reshape_invalid_argument"
	CodeInvalidProperty  = "reshape_invalid_property"
	CodeUnknownOperation = "reshape_unknown_operation"
)

// Sentinels for errors.Is.
var (
	ErrDataType         = errors.New("reshape: invalid data")
	ErrArgumentType     = errors.New("reshape: invalid argument")
	ErrPropertyArgument = errors.New("reshape: invalid property argument")
	ErrUnknownOperation = errors.New("reshape: unknown operation")
)

var (
	errInvalidData     = validation.NewError(CodeInvalidData, "reshape.{{.op}} -- Invalid `data` passed. Expected <Record> or <Sequence>.")
	errInvalidArgument = validation.NewError(CodeInvalidArgument, "reshape.{{.op}} -- Invalid `{{.arg}}` passed. Expected {{.expected}}.")
	errInvalidProperty = validation.NewError(CodeInvalidProperty, "reshape.{{.op}} -- Invalid `property` passed inside `props`. Expected <String> or <List>.")
	errUnknownOp       = validation.NewError(CodeUnknownOperation, "reshape -- Unknown operation {{.op}}.")
)

// DataTypeError reports data that is neither a record nor a sequence.
type DataTypeError struct {
	Op  Op
	err validation.Error
}

func newDataTypeError(op Op) *DataTypeError {
	return &DataTypeError{
		Op:  op,
		err: errInvalidData.SetParams(map[string]any{"op": op}),
	}
}

func (e *DataTypeError) Error() string {
	return e.err.Error()
}

func (e *DataTypeError) Code() string {
	return e.err.Code()
}

func (e *DataTypeError) Is(target error) bool {
	return target == ErrDataType
}

// ArgumentTypeError reports an operation argument of the wrong shape.
// Expected holds the accepted shape, e.g. "<Record>".
type ArgumentTypeError struct {
	Op       Op
	Arg      string
	Expected string
	err      validation.Error
	cause    error
}

func newArgumentTypeError(op Op, arg, expected string, cause error) *ArgumentTypeError {
	params := map[string]any{"op": op, "arg": arg, "expected": expected}
	return &ArgumentTypeError{
		Op:       op,
		Arg:      arg,
		Expected: expected,
		err:      errInvalidArgument.SetParams(params),
		cause:    cause,
	}
}

func (e *ArgumentTypeError) Error() string {
	return e.err.Error()
}

func (e *ArgumentTypeError) Code() string {
	return e.err.Code()
}

func (e *ArgumentTypeError) Is(target error) bool {
	return target == ErrArgumentType
}

func (e *ArgumentTypeError) Unwrap() error {
	return e.cause
}

// PropertyArgumentError reports a `property` field of a replacement that is
// neither a string nor a list of strings. It also matches ErrArgumentType.
type PropertyArgumentError struct {
	Op    Op
	err   validation.Error
	cause error
}

func newPropertyArgumentError(op Op, cause error) *PropertyArgumentError {
	return &PropertyArgumentError{
		Op:    op,
		err:   errInvalidProperty.SetParams(map[string]any{"op": op}),
		cause: cause,
	}
}

func (e *PropertyArgumentError) Error() string {
	return e.err.Error()
}

func (e *PropertyArgumentError) Code() string {
	return e.err.Code()
}

func (e *PropertyArgumentError) Is(target error) bool {
	return target == ErrPropertyArgument || target == ErrArgumentType
}

func (e *PropertyArgumentError) Unwrap() error {
	return e.cause
}

// UnknownOperationError is returned by Apply for an operation name it does
// not know.
type UnknownOperationError struct {
	Op  Op
	err validation.Error
}

func newUnknownOperationError(op Op) *UnknownOperationError {
	return &UnknownOperationError{
		Op:  op,
		err: errUnknownOp.SetParams(map[string]any{"op": op}),
	}
}

func (e *UnknownOperationError) Error() string {
	return e.err.Error()
}

func (e *UnknownOperationError) Code() string {
	return e.err.Code()
}

func (e *UnknownOperationError) Is(target error) bool {
	return target == ErrUnknownOperation
}

