package repository

import "errors"

var ErrNilDependency = errors.New("repository: nil dependency")
