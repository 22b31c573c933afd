package mapbox

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/lemon-mint/coord/tts"
)

var (
	ErrAccessTokenRequired error = errors.New("access token is required")
)

func getErrorByStatus(code int) error {
	var err error
	switch {
	case code == http.StatusUnauthorized:
		err = tts.ErrAuthentication
	case code == http.StatusForbidden:
		err = tts.ErrPermission
	case code == http.StatusNotFound:
		err = tts.ErrNotFound
	case code == http.StatusUnprocessableEntity:
		err = tts.ErrUnprocessableContent
	case code == http.StatusTooManyRequests:
		err = tts.ErrRateLimit
	case code >= 500:
		err = tts.ErrInternalServer
	default:
		err = tts.ErrUnknown
	}
	return fmt.Errorf("mapbox: status %d: %w", code, err)
}
