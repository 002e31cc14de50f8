package service

import "context"

// EditLinkEmail carries everything needed to deliver a freshly minted edit
// link to a page owner. EditLink embeds the raw token; it exists only in
// flight and is never logged.
type EditLinkEmail struct {
	To           string
	BusinessName string
	EditLink     string
	PublicLink   string
}

// RecoveredPage is one entry in a recovery email, covering a single profile
// that matched the requester's address.
type RecoveredPage struct {
	BusinessName string
	EditLink     string
	PublicLink   string
}

// NotificationEmail is a broadcast announcement for one page owner, sent by
// the administrative bulk-notify operation.
type NotificationEmail struct {
	To           string
	BusinessName string
	PublicLink   string
	RecoverLink  string
}

// Mailer defines the interface for the transactional email collaborator.
// Delivery is best effort: a failed send is reported per message and never
// rolls back the mutation that triggered it.
type Mailer interface {
	SendEditLink(ctx context.Context, email *EditLinkEmail) error
	SendRecovery(ctx context.Context, to string, pages []RecoveredPage) error
	SendNotification(ctx context.Context, email *NotificationEmail) error
}
