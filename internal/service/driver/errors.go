package driver

import "errors"

var ErrConflict = errors.New("driver already exists")
