package store

import "scan-viewer-go/pkg/models"

// ActionType names an action, matching the identifiers used by the web client.
type ActionType string

const (
	TypeSetDomain     ActionType = "SET_DOMAIN"
	TypeSetScanID     ActionType = "SET_SCAN_ID"
	TypeSetULinks     ActionType = "SET_ULINKS"
	TypeSetSlaves     ActionType = "SET_SLAVES"
	TypeSetFinished   ActionType = "SET_FINISHED"
	TypeScanStarted   ActionType = "SCAN_STARTED"
	TypeScanCompleted ActionType = "SCAN_COMPLETED"
)

// Action is anything that can be dispatched to a Store.
// Reduce ignores implementations it does not recognize.
type Action interface {
	Type() ActionType
}

// SetDomain replaces the domain being edited.
type SetDomain struct{ Domain string }

// SetScanID replaces the identifier of the last scan.
type SetScanID struct{ ScanID string }

// SetULinks replaces the link inventory.
type SetULinks struct{ Links models.LinkInventory }

// SetSlaves replaces the worker metrics.
type SetSlaves struct{ Workers models.Workers }

// SetFinished replaces the finished flag.
type SetFinished struct{ Finished bool }

// ScanStarted marks a new scan as in flight, hiding previous results.
type ScanStarted struct{}

// ScanCompleted applies a whole scan result in one step.
type ScanCompleted struct {
	ScanID  string
	Links   models.LinkInventory
	Workers models.Workers
	Summary *models.ScanSummary
}

func (SetDomain) Type() ActionType     { return TypeSetDomain }
func (SetScanID) Type() ActionType     { return TypeSetScanID }
func (SetULinks) Type() ActionType     { return TypeSetULinks }
func (SetSlaves) Type() ActionType     { return TypeSetSlaves }
func (SetFinished) Type() ActionType   { return TypeSetFinished }
func (ScanStarted) Type() ActionType   { return TypeScanStarted }
func (ScanCompleted) Type() ActionType { return TypeScanCompleted }

// CompletedFrom builds the ScanCompleted action for a report.
func CompletedFrom(r *models.ScanReport) ScanCompleted {
	return ScanCompleted{
		ScanID:  r.ScanID,
		Links:   r.UniqueLinks,
		Workers: r.Workers(),
		Summary: r.Summary,
	}
}

// Reduce returns the state that results from applying a to s.
// It has no side effects and never fails: unknown actions return s unchanged.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case SetDomain:
		s.Domain = a.Domain
	case SetScanID:
		s.ScanID = a.ScanID
	case SetULinks:
		s.UniqueLinks = a.Links
	case SetSlaves:
		s.Workers = a.Workers
	case SetFinished:
		s.Finished = a.Finished
	case ScanStarted:
		s.Finished = false
	case ScanCompleted:
		s.ScanID = a.ScanID
		s.UniqueLinks = a.Links
		s.Workers = a.Workers
		s.Summary = a.Summary
		s.Finished = true
	}
	return s
}
