package http

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/fluxrouter-backend/internal/logger"
)

// withRecover turns a panic in a downstream handler into an error response.
//
// A panic carrying an [HTTPError] (see [Abort]) is rendered with its own
// code, name and description. Any other value is logged at error level and
// rendered as 500. The stack trace is attached at debug level, so it only
// appears when debug mode is on. [http.ErrAbortHandler] is re-panicked so
// net/http can abort the connection.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			log := logger.FromRequest(r)
			err := panicToError(rvr)

			var httpErr *HTTPError
			if errors.As(err, &httpErr) {
				log.Info().Int("status", httpErr.Code).Msg(httpErr.Name)
				h.writeError(w, r, httpErr)
				return
			}

			log.Error().Err(err).Msgf("Internal server error: %v", err)
			log.Debug().Bytes("stack", debug.Stack()).Msg("panic stack trace")
			h.writeError(w, r, ErrInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}

func panicToError(rvr any) error {
	if err, ok := rvr.(error); ok {
		return err
	}
	return fmt.Errorf("%v", rvr)
}
