package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go-home.io/x/neato/plugins/common"
)

// Plain HTTP_200 API response.
func respondOk(writer http.ResponseWriter) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(http.StatusOK)
	io.WriteString(writer, `{"status":"OK"}`) // nolint: errcheck
}

// Generic API respond.
func respond(writer http.ResponseWriter, data interface{}) {
	d, err := json.Marshal(data)
	if err != nil {
		respondError(writer, http.StatusInternalServerError, err.Error())
		return
	}

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(http.StatusOK)
	writer.Write(d) // nolint: errcheck
}

// Responds with raw binary data.
func respondBinary(writer http.ResponseWriter, data []byte) {
	writer.Header().Set("Content-Type", http.DetectContentType(data))
	writer.WriteHeader(http.StatusOK)
	writer.Write(data) // nolint: errcheck
}

// Return HTTP_FORBIDDEN status.
func respondUnAuth(writer http.ResponseWriter) {
	http.Error(writer, "Forbidden", http.StatusForbidden)
}

// JSON error response with the given status.
func respondError(writer http.ResponseWriter, status int, problem string) {
	d, _ := json.Marshal(problem) // nolint: errcheck
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	io.WriteString(writer, fmt.Sprintf(`{"status":"ERROR","problem":%s}`, d)) // nolint: errcheck
}

// Logger middleware for the API.
func (s *CameraServer) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Logger.Debug("REST invocation", common.LogSystemToken, logSystem, common.LogURLToken, r.RequestURI)
		next.ServeHTTP(w, r)
	})
}

// Authz middleware.
func (s *CameraServer) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := s.Settings.Security().GetUser(r.Header)
		if err != nil {
			s.Logger.Warn("Unauthorized access attempt", common.LogSystemToken, logSystem,
				common.LogURLToken, r.RequestURI)
			respondUnAuth(w)

			return
		}

		ctx := context.WithValue(r.Context(), ctxtUserName, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Gets current user out of context.
func getContextUser(request *http.Request) string {
	user, _ := request.Context().Value(ctxtUserName).(string)
	return user
}

// Adapts system logger to the recovery handler.
type recoveryLogger struct {
	logger common.ILoggerProvider
}

// Println logs recovered panic.
func (r *recoveryLogger) Println(v ...interface{}) {
	r.logger.Error("Recovered API panic", fmt.Errorf("%s", fmt.Sprint(v...)), common.LogSystemToken, logSystem)
}
