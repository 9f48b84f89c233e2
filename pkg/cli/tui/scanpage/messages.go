package scanpage

import "scan-viewer-go/pkg/models"

// ScanDoneMsg is emitted when a scan request returns
type ScanDoneMsg struct {
	Domain string
	Report *models.ScanReport
	Err    error
}

// StatusLoadedMsg is emitted when the scanner status has been fetched
type StatusLoadedMsg struct {
	Status *models.ServerStatus
	Err    error
}
