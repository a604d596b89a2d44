// Package notify decouples report dispatch from the pipeline. The current
// implementation persists reports to a file picked up by the SMS/WhatsApp
// forwarding integration; a direct provider client can implement Sender later.
package notify

// Sender delivers a rendered advisory report to farmers.
type Sender interface {
	Send(reportID, message string) error
}
