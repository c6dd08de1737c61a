package ticketexporter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestExportWritesTicket(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	exporter := NewExporter(dir, noopLogger{})

	path, err := exporter.Export("Slot: 3\nOwner: Ivan\nVehicle: KA01AB1234\nCheck-In: 2025-03-01 10:00:00", 3)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(filepath.Base(path), "ticket_slot_3_"))
	require.True(t, strings.HasSuffix(path, ".png"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.NotZero(t, info.Size())
}

// Повторный экспорт для того же места не перетирает прежний артефакт
func TestExportDistinctFiles(t *testing.T) {
	t.Parallel()

	exporter := NewExporter(t.TempDir(), noopLogger{})

	first, err := exporter.Export("ticket one", 5)
	require.NoError(t, err)
	second, err := exporter.Export("ticket two", 5)
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}

func TestExportCreatesDir(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "tickets")
	exporter := NewExporter(dir, noopLogger{})

	path, err := exporter.Export("ticket", 1)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(path, dir))
}
