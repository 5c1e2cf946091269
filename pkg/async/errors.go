package async

import "errors"

var ErrTimeout = errors.New("async: timeout waiting for result")
