package platerecognizer

// recognizeResponse модель ответа сервиса распознавания
type recognizeResponse struct {
	Plate      string  `json:"plate"`
	Confidence float64 `json:"confidence"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
