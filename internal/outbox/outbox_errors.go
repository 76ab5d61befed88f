package outbox

import "errors"

var ErrEventNotFound = errors.New("outbox event not found")
