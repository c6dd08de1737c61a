package ticketexporter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
)

// qrSize размер стороны QR-изображения в пикселях
const qrSize = 256

// Exporter экспортирует текст билета в сканируемый QR-артефакт (PNG)
// Вызывается после коммита бронирования: сбой экспорта не отменяет бронирование
type Exporter struct {
	dir string
	log Logger
}

// NewExporter создает экспортер билетов, пишущий в указанную директорию
func NewExporter(dir string, log Logger) *Exporter {
	return &Exporter{dir: dir, log: log}
}

// Export рендерит QR-код для текстового блока билета и возвращает путь к файлу
// Имя файла содержит uuid: повторное бронирование того же места после checkout
// не перетирает артефакт предыдущего билета
func (e *Exporter) Export(text string, slotNo int) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: failed to create tickets dir: %v", ErrExport, err)
	}

	name := fmt.Sprintf("ticket_slot_%d_%s.png", slotNo, uuid.NewString())
	path := filepath.Join(e.dir, name)

	if err := qrcode.WriteFile(text, qrcode.Medium, qrSize, path); err != nil {
		return "", fmt.Errorf("%w: failed to write qr ticket: %v", ErrExport, err)
	}

	e.log.Info("Ticket exported: slot=%d, path=%s", slotNo, path)
	return path, nil
}
