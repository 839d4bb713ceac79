package ports

import "go.trai.ch/sniff/internal/core/domain"

// ReportWriter persists a run report.
//
//go:generate mockgen -source=report.go -destination=mocks/mock_report.go -package=mocks
type ReportWriter interface {
	Write(path string, report domain.Report) error
}
