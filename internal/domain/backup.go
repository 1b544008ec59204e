package domain

import "time"

// BackupInfo descreve a última execução do backup de planilhas
type BackupInfo struct {
	Year        int       `json:"year"`
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
	Clients     int       `json:"clients"`
	Documents   int       `json:"documents"`
	Files       []string  `json:"files"`
	Failures    []string  `json:"failures"`
	Trigger     string    `json:"trigger"`
}

// ExportFormat é o formato de exportação de um documento
type ExportFormat string

const (
	ExportXLSX ExportFormat = "xlsx"
	ExportPDF  ExportFormat = "pdf"
)

// ExportFile é um arquivo gerado para download
type ExportFile struct {
	FileName    string
	ContentType string
	Content     []byte
}
