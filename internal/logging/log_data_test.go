package logging

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogData_TimingsAndDataOnOneEntry(t *testing.T) {
	logData := NewLogData(SetupLogging())

	stop := logData.AddTiming("buildMs")
	stop()
	logData.AddData("groupCount", 3)

	entry := logData.Log()
	assert.Contains(t, entry.Data, "buildMs")
	assert.Equal(t, 3, entry.Data["groupCount"])
}

func TestLogData_AccumulatedTiming(t *testing.T) {
	logData := NewLogData(SetupLogging())

	stop := logData.AddToExistingTiming("groupMs")
	stop()
	stop = logData.AddToExistingTiming("groupMs")
	stop()

	entry := logData.Log()
	assert.Contains(t, entry.Data, "groupMs")
}

func TestGetLogData_Roundtrip(t *testing.T) {
	logData := NewLogData(SetupLogging())
	ctx := WithLogData(context.Background(), logData)

	assert.Same(t, logData, GetLogData(ctx))
	assert.Nil(t, GetLogData(context.Background()))
}

func TestRequestLogger_InjectsLogData(t *testing.T) {
	var seen *LogData
	next := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		seen = GetLogData(req.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/reports/planning", nil)
	w := httptest.NewRecorder()
	RequestLogger(SetupLogging(), next).ServeHTTP(w, req)

	assert.NotNil(t, seen)
	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}
