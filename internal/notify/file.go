package notify

import (
	"fmt"
	"os"
	"path/filepath"

	"agro-advisor/pkg/logger"
)

// FileSender writes the rendered report to a fixed path, replacing the
// previous report. The forwarding integration tails this file, so the
// replacement goes through a temp file and rename; a reader never sees a
// partially written report.
type FileSender struct {
	path string
	l    *logger.Logger
}

func NewFileSender(path string, l *logger.Logger) *FileSender {
	return &FileSender{
		path: path,
		l:    l,
	}
}

func (f *FileSender) Send(reportID, message string) error {
	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*")
	if err != nil {
		return fmt.Errorf("write alert file: %w", err)
	}

	if _, err := tmp.Write([]byte(message)); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write alert file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write alert file: %w", err)
	}

	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write alert file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write alert file: %w", err)
	}

	f.l.Info("alert report written", map[string]any{
		"report_id": reportID,
		"path":      f.path,
		"bytes":     len(message),
	})

	return nil
}
