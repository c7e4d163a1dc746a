// Package telegram defines the messaging-protocol capability the session
// core consumes. The concrete MTProto binding lives in the gotd subpackage;
// everything above this interface treats the protocol as opaque.
//
// Implementations surface failures through the shared sentinels in
// internal/common: ErrInvalidPhone, ErrInvalidCode, ErrPasswordRequired,
// ErrInvalidPassword, RateLimitedError (with retry-after), or a wrapped
// transport error for anything else.
package telegram

import "context"

// MessageRef identifies one of the user's own messages inside a dialog,
// precisely enough for an in-place edit.
type MessageRef struct {
	ChatID    int64
	MessageID int
}

// OutgoingMessage is a message the user just sent from their account.
type OutgoingMessage struct {
	Ref  MessageRef
	Text string
}

// Client is one authenticated (or being-authenticated) protocol session.
//
// Updates returns the connection's outgoing-message stream. The channel
// preserves arrival order and is closed when the connection shuts down.
// Close tears the session down and releases the underlying transport; it is
// safe to call concurrently with in-flight operations and more than once.
type Client interface {
	// RequestCode asks the provider to send a confirmation code to phone.
	RequestCode(ctx context.Context, phone string) error

	// SignIn submits the confirmation code for phone. If the account has a
	// second factor enabled it fails with common.ErrPasswordRequired and the
	// session stays usable for SignInPassword.
	SignIn(ctx context.Context, phone, code string) error

	// SignInPassword submits the 2FA password.
	SignInPassword(ctx context.Context, password string) error

	// ExportSession serializes the authorized session into a durable,
	// opaque credential string.
	ExportSession(ctx context.Context) (string, error)

	// Updates exposes the ordered outgoing-message event stream.
	Updates() <-chan OutgoingMessage

	// EditMessage replaces the text of one of the user's messages in place.
	EditMessage(ctx context.Context, ref MessageRef, text string) error

	// Close disconnects and closes the Updates channel.
	Close(ctx context.Context) error
}

// Dialer opens protocol sessions. Dial starts a fresh, unauthenticated
// session for the interactive handshake; DialSession resumes a previously
// exported credential.
type Dialer interface {
	Dial(ctx context.Context) (Client, error)
	DialSession(ctx context.Context, credential string) (Client, error)
}
