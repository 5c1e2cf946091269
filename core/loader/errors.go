package loader

import "errors"

var ErrEmptyDocument = errors.New("loader: empty document")
