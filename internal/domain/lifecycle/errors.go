package lifecycle

import "errors"

// ErrStorageFault wraps any failure of the underlying store during a unit of work.
// The transaction has been rolled back when it is returned.
var ErrStorageFault = errors.New("storage fault")
