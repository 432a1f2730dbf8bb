package model

import "errors"

var ErrStreamNotFound = errors.New("stream not found")
