package ticketexporter

import "errors"

var (
	// ErrExport возвращается при сбое записи QR-артефакта
	ErrExport = errors.New("ticketexporter: failed to export ticket")
)
