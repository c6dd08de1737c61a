package get_lot_config

// PlateRecognizer интерфейс для проверки доступности распознавания номеров
type PlateRecognizer interface {
	Available() bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
