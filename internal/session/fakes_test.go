package session

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"

	"github.com/dmitrijs2005/tgpolish/internal/common"
	"github.com/dmitrijs2005/tgpolish/internal/logging"
	"github.com/dmitrijs2005/tgpolish/internal/models"
	"github.com/dmitrijs2005/tgpolish/internal/telegram"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})))
}

// fakeClient is a scriptable telegram.Client.
type fakeClient struct {
	mu sync.Mutex

	requestCodeErr error
	signInErr      error
	passwordErr    error
	exportOut      string
	exportErr      error

	signInStarted chan struct{} // if set, closed when SignIn enters
	signInGate    chan struct{} // if set, SignIn blocks until closed

	updates chan telegram.OutgoingMessage

	closed      bool
	closeCount  int
	signIns     []string
	passwords   []string
	editedTexts []string
}

func newFakeClient() *fakeClient {
	return &fakeClient{updates: make(chan telegram.OutgoingMessage, 16)}
}

func (f *fakeClient) RequestCode(ctx context.Context, phone string) error {
	return f.requestCodeErr
}

func (f *fakeClient) SignIn(ctx context.Context, phone, code string) error {
	if f.signInStarted != nil {
		close(f.signInStarted)
		f.signInStarted = nil
	}
	if f.signInGate != nil {
		<-f.signInGate
	}
	f.mu.Lock()
	f.signIns = append(f.signIns, code)
	f.mu.Unlock()
	return f.signInErr
}

func (f *fakeClient) SignInPassword(ctx context.Context, password string) error {
	f.mu.Lock()
	f.passwords = append(f.passwords, password)
	f.mu.Unlock()
	return f.passwordErr
}

func (f *fakeClient) ExportSession(ctx context.Context) (string, error) {
	if f.exportErr != nil {
		return "", f.exportErr
	}
	if f.exportOut != "" {
		return f.exportOut, nil
	}
	return "session-string", nil
}

func (f *fakeClient) Updates() <-chan telegram.OutgoingMessage {
	return f.updates
}

func (f *fakeClient) EditMessage(ctx context.Context, ref telegram.MessageRef, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.editedTexts = append(f.editedTexts, text)
	return nil
}

func (f *fakeClient) Close(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closeCount++
	if !f.closed {
		f.closed = true
		close(f.updates)
	}
	return nil
}

func (f *fakeClient) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

// fakeDialer vends fakeClients in order; when the list runs out it vends
// fresh default clients.
type fakeDialer struct {
	mu      sync.Mutex
	queue   []*fakeClient
	dialErr error
	dialed  []*fakeClient
}

func (d *fakeDialer) next() *fakeClient {
	d.mu.Lock()
	defer d.mu.Unlock()
	var c *fakeClient
	if len(d.queue) > 0 {
		c = d.queue[0]
		d.queue = d.queue[1:]
	} else {
		c = newFakeClient()
	}
	d.dialed = append(d.dialed, c)
	return c
}

func (d *fakeDialer) Dial(ctx context.Context) (telegram.Client, error) {
	if d.dialErr != nil {
		return nil, d.dialErr
	}
	return d.next(), nil
}

func (d *fakeDialer) DialSession(ctx context.Context, credential string) (telegram.Client, error) {
	if d.dialErr != nil {
		return nil, d.dialErr
	}
	return d.next(), nil
}

// fakeCredentialStore is an in-memory CredentialStore.
type fakeCredentialStore struct {
	mu     sync.Mutex
	active map[int64]*models.Credential
	putErr error
	getErr error
}

func newFakeCredentialStore() *fakeCredentialStore {
	return &fakeCredentialStore{active: make(map[int64]*models.Credential)}
}

func (s *fakeCredentialStore) PutActive(ctx context.Context, cred *models.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.putErr != nil {
		return s.putErr
	}
	s.active[cred.UserID] = cred
	return nil
}

func (s *fakeCredentialStore) GetActive(ctx context.Context, userID int64) (*models.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return nil, s.getErr
	}
	cred, ok := s.active[userID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return cred, nil
}

func (s *fakeCredentialStore) Deactivate(ctx context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.active, userID)
	return nil
}

func (s *fakeCredentialStore) get(userID int64) (*models.Credential, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cred, ok := s.active[userID]
	return cred, ok
}

// fakeSettingsStore serves fixed settings.
type fakeSettingsStore struct {
	settings *models.UserSettings
	saved    map[string]any
}

func newFakeSettingsStore() *fakeSettingsStore {
	return &fakeSettingsStore{
		settings: models.DefaultSettings(1),
		saved:    make(map[string]any),
	}
}

func (s *fakeSettingsStore) Settings(ctx context.Context, userID int64) (*models.UserSettings, error) {
	return s.settings, nil
}

func (s *fakeSettingsStore) SetAutoCorrect(ctx context.Context, userID int64, enabled bool) error {
	s.settings.AutoCorrectEnabled = enabled
	return nil
}

func (s *fakeSettingsStore) SetMinMessageLength(ctx context.Context, userID int64, length int) error {
	s.settings.MinMessageLength = length
	return nil
}

func (s *fakeSettingsStore) SetExtra(ctx context.Context, userID int64, key string, value any) error {
	s.saved[key] = value
	return nil
}

// fakeUserStore records bookkeeping calls.
type fakeUserStore struct {
	mu     sync.Mutex
	phones map[int64]string
	users  map[int64]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{phones: make(map[int64]string), users: make(map[int64]*models.User)}
}

func (s *fakeUserStore) Upsert(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
	return nil
}

func (s *fakeUserStore) UpdatePhone(ctx context.Context, userID int64, phone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phones[userID] = phone
	return nil
}

var errBoom = errors.New("boom")
