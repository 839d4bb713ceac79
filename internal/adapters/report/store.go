// Package report persists run reports as JSON documents.
package report

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.trai.ch/sniff/internal/core/domain"
	"go.trai.ch/sniff/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store implements ports.ReportWriter.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Write stores report at path as indented JSON, creating parent directories as needed.
func (s *Store) Write(path string, report domain.Report) error {
	if report.Targets == nil {
		report.Targets = []domain.TargetResult{}
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrReportMarshalFailed.Error())
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReportCreateFailed.Error()), "path", path)
	}

	//nolint:gosec // path is supplied by the user
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReportWriteFailed.Error()), "path", path)
	}

	return nil
}

var _ ports.ReportWriter = (*Store)(nil)
