package tts

import "errors"

var (
	ErrUnknown               = errors.New("unknown error")
	ErrAuthentication        = errors.New("authentication error")
	ErrPermission            = errors.New("permission error")
	ErrNotFound              = errors.New("not found")
	ErrUnprocessableContent  = errors.New("unprocessable content")
	ErrRateLimit             = errors.New("rate limit error")
	ErrInternalServer        = errors.New("internal server error")
	ErrUnsupportedFileFormat = errors.New("unsupported file format")
	ErrUnsupportedTextType   = errors.New("unsupported text type")
)
