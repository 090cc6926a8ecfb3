package normalize

import (
	"errors"
	"fmt"
)

// ErrMalformedRecord marks a row that is missing a required field or carries an unparseable value.
var ErrMalformedRecord = errors.New("malformed record")

func malformed(field string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrMalformedRecord, field, err)
}
