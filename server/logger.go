package server

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gorilla/mux"
	"github.com/odpf/salt/log"
	"github.com/sirupsen/logrus"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
	size   int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.size += n
	return n, err
}

func newAccessLogger(l log.Logger) (*logrus.Entry, error) {
	// Logrus entry is used, allowing pre-definition of certain fields by the user.
	logLevel, err := logrus.ParseLevel(l.Level())
	if err != nil {
		return nil, err
	}
	accessLogrus := logrus.New()
	accessLogrus.SetLevel(logLevel)
	accessLogrus.SetOutput(l.Writer())
	return logrus.NewEntry(accessLogrus).WithField("reporter", "http"), nil
}

func accessLogMiddleware(entry *logrus.Entry) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(rec, r)
			if rec.status == 0 {
				rec.status = http.StatusOK
			}

			fields := logrus.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"status":   rec.status,
				"size":     rec.size,
				"duration": time.Since(start).String(),
			}
			if rec.status >= http.StatusInternalServerError {
				entry.WithFields(fields).Error("request failed")
				return
			}
			entry.WithFields(fields).Info("request served")
		})
	}
}

func recoveryMiddleware(l log.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if p := recover(); p != nil {
					l.Error("panic is triggered", "path", r.URL.Path, "panic", p, "stack", string(debug.Stack()))
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
