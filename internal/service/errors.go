package service

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")
