package session

// MetricsRecorder метрика количества активных сессий
type MetricsRecorder interface {
	SetActiveSessions(n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type nopMetrics struct{}

func (nopMetrics) SetActiveSessions(int) {}
