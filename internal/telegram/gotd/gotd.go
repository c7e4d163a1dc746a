// Package gotd implements the provider boundary on top of gotd/td, the
// MTProto client library. One Client wraps one running gotd client; its
// lifetime is a goroutine executing Run until Close cancels it.
package gotd

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gotd/td/session"
	tdtelegram "github.com/gotd/td/telegram"
	"github.com/gotd/td/telegram/auth"
	"github.com/gotd/td/tg"
	"github.com/gotd/td/tgerr"

	"github.com/dmitrijs2005/tgpolish/internal/common"
	"github.com/dmitrijs2005/tgpolish/internal/logging"
	"github.com/dmitrijs2005/tgpolish/internal/telegram"
)

type Dialer struct {
	appID   int
	appHash string
	logger  logging.Logger
}

func NewDialer(appID int, appHash string, logger logging.Logger) *Dialer {
	return &Dialer{
		appID:   appID,
		appHash: appHash,
		logger:  logger.With("module", "telegram"),
	}
}

// Dial opens an unauthenticated client for the code handshake.
func (d *Dialer) Dial(ctx context.Context) (telegram.Client, error) {
	return d.dial(ctx, "")
}

// DialSession opens a client restored from an exported session string.
func (d *Dialer) DialSession(ctx context.Context, credential string) (telegram.Client, error) {
	return d.dial(ctx, credential)
}

func (d *Dialer) dial(ctx context.Context, credential string) (telegram.Client, error) {
	storage := &session.StorageMemory{}
	if credential != "" {
		if err := storage.StoreSession(ctx, []byte(credential)); err != nil {
			return nil, fmt.Errorf("restoring session: %w", err)
		}
	}

	c := &Client{
		storage: storage,
		logger:  d.logger,
		updates: make(chan telegram.OutgoingMessage, 64),
		peers:   make(map[int64]tg.InputPeerClass),
		runDone: make(chan struct{}),
	}

	dispatcher := tg.NewUpdateDispatcher()
	dispatcher.OnNewMessage(c.onNewMessage)
	dispatcher.OnEditMessage(c.onEditMessage)

	c.tc = tdtelegram.NewClient(d.appID, d.appHash, tdtelegram.Options{
		SessionStorage: storage,
		UpdateHandler:  dispatcher,
	})

	runCtx, cancel := context.WithCancel(context.Background())
	c.runCtx = runCtx
	c.runCancel = cancel

	initialized := make(chan struct{})
	go func() {
		err := c.tc.Run(runCtx, func(ctx context.Context) error {
			close(initialized)
			<-ctx.Done()
			return ctx.Err()
		})
		c.finish(err)
	}()

	select {
	case <-initialized:
		return c, nil
	case <-c.runDone:
		cancel()
		return nil, mapError(c.runErr)
	case <-ctx.Done():
		cancel()
		return nil, ctx.Err()
	}
}

// Client adapts one running gotd client to the provider interface.
type Client struct {
	tc      *tdtelegram.Client
	storage *session.StorageMemory
	logger  logging.Logger

	runCtx    context.Context
	runCancel context.CancelFunc
	runDone   chan struct{}
	runErr    error

	updates chan telegram.OutgoingMessage

	mu       sync.Mutex
	phone    string
	codeHash string
	peers    map[int64]tg.InputPeerClass
}

func (c *Client) RequestCode(ctx context.Context, phone string) error {
	sent, err := c.tc.Auth().SendCode(ctx, phone, auth.SendCodeOptions{})
	if err != nil {
		return mapError(err)
	}

	code, ok := sent.(*tg.AuthSentCode)
	if !ok {
		return fmt.Errorf("%w: unexpected sent code %T", common.ErrConnectFailed, sent)
	}

	c.mu.Lock()
	c.phone = phone
	c.codeHash = code.PhoneCodeHash
	c.mu.Unlock()
	return nil
}

func (c *Client) SignIn(ctx context.Context, phone, code string) error {
	c.mu.Lock()
	codeHash := c.codeHash
	c.mu.Unlock()

	_, err := c.tc.Auth().SignIn(ctx, phone, code, codeHash)
	if errors.Is(err, auth.ErrPasswordAuthNeeded) {
		return common.ErrPasswordRequired
	}
	if err != nil {
		return mapError(err)
	}
	return nil
}

func (c *Client) SignInPassword(ctx context.Context, password string) error {
	if _, err := c.tc.Auth().Password(ctx, password); err != nil {
		return mapError(err)
	}
	return nil
}

func (c *Client) ExportSession(ctx context.Context) (string, error) {
	data, err := c.storage.LoadSession(ctx)
	if err != nil {
		return "", fmt.Errorf("exporting session: %w", err)
	}
	return string(data), nil
}

func (c *Client) Updates() <-chan telegram.OutgoingMessage {
	return c.updates
}

func (c *Client) EditMessage(ctx context.Context, ref telegram.MessageRef, text string) error {
	c.mu.Lock()
	peer, ok := c.peers[ref.ChatID]
	c.mu.Unlock()
	if !ok {
		return fmt.Errorf("no known peer for chat %d", ref.ChatID)
	}

	req := &tg.MessagesEditMessageRequest{Peer: peer, ID: ref.MessageID}
	req.SetMessage(text)

	if _, err := c.tc.API().MessagesEditMessage(ctx, req); err != nil {
		return mapError(err)
	}
	return nil
}

// finish records the run result and completes teardown, closing the updates
// stream. The run goroutine calls it exactly once, after gotd has stopped
// dispatching updates, so the close cannot race a handler send.
func (c *Client) finish(err error) {
	c.runErr = err
	close(c.updates)
	close(c.runDone)
}

// Close cancels the run goroutine and waits for teardown to complete.
// runDone stays closed, so repeated calls return immediately.
func (c *Client) Close(ctx context.Context) error {
	c.runCancel()
	select {
	case <-c.runDone:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// onNewMessage forwards the user's own outgoing text messages and remembers
// how to address their chats for later edits.
func (c *Client) onNewMessage(ctx context.Context, e tg.Entities, u *tg.UpdateNewMessage) error {
	return c.forwardOutgoing(e, u.Message)
}

// onEditMessage catches the user manually editing one of their own messages;
// the new text runs through the same correction path as a fresh message. The
// significance gate keeps the service's own edits from looping back.
func (c *Client) onEditMessage(ctx context.Context, e tg.Entities, u *tg.UpdateEditMessage) error {
	return c.forwardOutgoing(e, u.Message)
}

func (c *Client) forwardOutgoing(e tg.Entities, message tg.MessageClass) error {
	msg, ok := message.(*tg.Message)
	if !ok || !msg.Out || msg.Message == "" {
		return nil
	}

	chatID, peer := resolvePeer(msg.PeerID, e)
	if peer == nil {
		return nil
	}

	c.mu.Lock()
	c.peers[chatID] = peer
	c.mu.Unlock()

	out := telegram.OutgoingMessage{
		Ref:  telegram.MessageRef{ChatID: chatID, MessageID: msg.ID},
		Text: msg.Message,
	}

	select {
	case c.updates <- out:
	case <-c.runCtx.Done():
	}
	return nil
}

func resolvePeer(peer tg.PeerClass, e tg.Entities) (int64, tg.InputPeerClass) {
	switch p := peer.(type) {
	case *tg.PeerUser:
		user, ok := e.Users[p.UserID]
		if !ok {
			return 0, nil
		}
		return p.UserID, &tg.InputPeerUser{UserID: user.ID, AccessHash: user.AccessHash}
	case *tg.PeerChat:
		return p.ChatID, &tg.InputPeerChat{ChatID: p.ChatID}
	case *tg.PeerChannel:
		channel, ok := e.Channels[p.ChannelID]
		if !ok {
			return 0, nil
		}
		return p.ChannelID, &tg.InputPeerChannel{ChannelID: channel.ID, AccessHash: channel.AccessHash}
	default:
		return 0, nil
	}
}

// mapError folds provider RPC errors into the sentinels the session core
// dispatches on.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if wait, ok := tgerr.AsFloodWait(err); ok {
		return &common.RateLimitedError{RetryAfter: wait}
	}

	switch {
	case tgerr.Is(err, "PHONE_NUMBER_INVALID"), tgerr.Is(err, "PHONE_NUMBER_BANNED"):
		return fmt.Errorf("%w: %v", common.ErrInvalidPhone, err)
	case tgerr.Is(err, "PHONE_CODE_INVALID"), tgerr.Is(err, "PHONE_CODE_EXPIRED"):
		return fmt.Errorf("%w: %v", common.ErrInvalidCode, err)
	case tgerr.Is(err, "PASSWORD_HASH_INVALID"):
		return fmt.Errorf("%w: %v", common.ErrInvalidPassword, err)
	case errors.Is(err, auth.ErrPasswordAuthNeeded):
		return common.ErrPasswordRequired
	default:
		return err
	}
}
