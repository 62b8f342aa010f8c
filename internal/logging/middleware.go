package logging

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

// RequestLogger injects a fresh LogData into each request's context and logs
// start and completion with the accumulated timings and data.
func RequestLogger(log *logrus.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		logData := NewLogData(log)
		endTimer := logData.AddTiming("duration")

		log.Infof("Handler.%v.Start", req.URL.Path)
		next.ServeHTTP(w, req.WithContext(WithLogData(req.Context(), logData)))

		endTimer()
		logData.Log().Infof("Handler.%v.Complete", req.URL.Path)
	})
}
