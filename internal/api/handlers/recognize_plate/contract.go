package recognize_plate

import "context"

// PlateRecognizer интерфейс клиента распознавания номерных знаков
type PlateRecognizer interface {
	RecognizeWithGracefulDegradation(ctx context.Context, image []byte) (string, bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
