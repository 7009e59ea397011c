package response

import (
	"encoding/json"
	stdErrors "errors"
	"io"
)

func isBindError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return stdErrors.As(err, &syntaxErr) ||
		stdErrors.As(err, &typeErr) ||
		stdErrors.Is(err, io.EOF) ||
		stdErrors.Is(err, io.ErrUnexpectedEOF)
}
