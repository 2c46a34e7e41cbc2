package disk

import "time"

// Metrics defines the interface for tracking persistence activity.
type Metrics interface {
	IncSaves()
	IncSaveErrors()
	IncLoads()
	IncLoadErrors()
	AddBytesWritten(n int64)
	AddBytesRead(n int64)
	ObserveSaveLatency(d time.Duration)
	ObserveLoadLatency(d time.Duration)
}

// noOpMetrics is a default implementation that does nothing.
type noOpMetrics struct{}

func (m *noOpMetrics) IncSaves()                          {}
func (m *noOpMetrics) IncSaveErrors()                     {}
func (m *noOpMetrics) IncLoads()                          {}
func (m *noOpMetrics) IncLoadErrors()                     {}
func (m *noOpMetrics) AddBytesWritten(n int64)            {}
func (m *noOpMetrics) AddBytesRead(n int64)               {}
func (m *noOpMetrics) ObserveSaveLatency(d time.Duration) {}
func (m *noOpMetrics) ObserveLoadLatency(d time.Duration) {}
