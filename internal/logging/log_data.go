package logging

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// LogData accumulates timings and data points over one report request so
// they land on a single log line. Timings may be recorded from the parallel
// fetch goroutines; data points are only added from the handler goroutine.
type LogData struct {
	timingsMutex *sync.Mutex
	timings      map[string]int64
	dataItems    map[string]interface{}
	logger       *logrus.Logger
}

// NewLogData creates an empty LogData bound to the given logger.
func NewLogData(logger *logrus.Logger) *LogData {
	return &LogData{
		timingsMutex: &sync.Mutex{},
		timings:      make(map[string]int64),
		dataItems:    make(map[string]interface{}),
		logger:       logger,
	}
}

// AddTiming starts a timer and returns the function that stops it and
// records the elapsed milliseconds under entryName.
func (l *LogData) AddTiming(entryName string) func() {
	startTime := time.Now()

	return func() {
		elapsed := time.Since(startTime).Milliseconds()
		l.timingsMutex.Lock()
		defer l.timingsMutex.Unlock()
		l.timings[entryName] = elapsed
	}
}

// AddToExistingTiming is AddTiming for entries recorded in pieces, such as
// per-group work inside one build; stops accumulate instead of overwriting.
func (l *LogData) AddToExistingTiming(entryName string) func() {
	startTime := time.Now()

	return func() {
		elapsed := time.Since(startTime).Milliseconds()
		l.timingsMutex.Lock()
		defer l.timingsMutex.Unlock()
		l.timings[entryName] += elapsed
	}
}

// AddData records a data point, such as a group or transaction count.
func (l *LogData) AddData(key string, value interface{}) {
	l.dataItems[key] = value
}

// Log returns an entry carrying every recorded data point and timing.
func (l *LogData) Log() *logrus.Entry {
	entry := logrus.NewEntry(l.logger)

	for key, value := range l.dataItems {
		entry = entry.WithField(key, value)
	}

	l.timingsMutex.Lock()
	defer l.timingsMutex.Unlock()
	for key, value := range l.timings {
		entry = entry.WithField(key, value)
	}

	return entry
}
