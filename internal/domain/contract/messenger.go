package contract

import "context"

// Messenger is the outbound message-delivery collaborator. Failures are
// non-fatal to callers; reminder loops log and continue.
type Messenger interface {
	// SendPrivate delivers text to the user identified by the host
	// platform's user id.
	SendPrivate(ctx context.Context, userID string, text string) error
}
