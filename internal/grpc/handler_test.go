package grpc

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/tgpolish/internal/common"
	"github.com/dmitrijs2005/tgpolish/internal/correction"
	"github.com/dmitrijs2005/tgpolish/internal/models"
	pb "github.com/dmitrijs2005/tgpolish/internal/proto"
	"github.com/dmitrijs2005/tgpolish/internal/session"
	"github.com/dmitrijs2005/tgpolish/internal/telegram"
	"github.com/dmitrijs2005/tgpolish/internal/vault"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ---- fakes ----

type stubClient struct {
	mu          sync.Mutex
	signInErr   error
	requestErr  error
	updates     chan telegram.OutgoingMessage
	closed      bool
}

func newStubClient() *stubClient {
	return &stubClient{updates: make(chan telegram.OutgoingMessage, 1)}
}

func (c *stubClient) RequestCode(ctx context.Context, phone string) error { return c.requestErr }
func (c *stubClient) SignIn(ctx context.Context, phone, code string) error {
	return c.signInErr
}
func (c *stubClient) SignInPassword(ctx context.Context, password string) error { return nil }
func (c *stubClient) ExportSession(ctx context.Context) (string, error) {
	return "session-string", nil
}
func (c *stubClient) Updates() <-chan telegram.OutgoingMessage { return c.updates }
func (c *stubClient) EditMessage(ctx context.Context, ref telegram.MessageRef, text string) error {
	return nil
}
func (c *stubClient) Close(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.updates)
	}
	return nil
}

type stubDialer struct {
	next    *stubClient
	dialErr error
}

func (d *stubDialer) vend() (telegram.Client, error) {
	if d.dialErr != nil {
		return nil, d.dialErr
	}
	if d.next != nil {
		c := d.next
		d.next = nil
		return c, nil
	}
	return newStubClient(), nil
}

func (d *stubDialer) Dial(ctx context.Context) (telegram.Client, error) { return d.vend() }
func (d *stubDialer) DialSession(ctx context.Context, credential string) (telegram.Client, error) {
	return d.vend()
}

type memCredentialStore struct {
	mu     sync.Mutex
	active map[int64]*models.Credential
}

func (s *memCredentialStore) PutActive(ctx context.Context, cred *models.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		s.active = map[int64]*models.Credential{}
	}
	s.active[cred.UserID] = cred
	return nil
}
func (s *memCredentialStore) GetActive(ctx context.Context, userID int64) (*models.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cred, ok := s.active[userID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return cred, nil
}
func (s *memCredentialStore) Deactivate(ctx context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.active, userID)
	return nil
}

type memSettingsStore struct {
	settings *models.UserSettings
}

func (s *memSettingsStore) Settings(ctx context.Context, userID int64) (*models.UserSettings, error) {
	if s.settings == nil {
		s.settings = models.DefaultSettings(userID)
	}
	return s.settings, nil
}
func (s *memSettingsStore) SetAutoCorrect(ctx context.Context, userID int64, enabled bool) error {
	st, _ := s.Settings(ctx, userID)
	st.AutoCorrectEnabled = enabled
	return nil
}
func (s *memSettingsStore) SetMinMessageLength(ctx context.Context, userID int64, length int) error {
	st, _ := s.Settings(ctx, userID)
	st.MinMessageLength = length
	return nil
}
func (s *memSettingsStore) SetExtra(ctx context.Context, userID int64, key string, value any) error {
	st, _ := s.Settings(ctx, userID)
	st.Extra[key] = value
	return nil
}

type memUserStore struct {
	mu       sync.Mutex
	upserted []int64
	phones   map[int64]string
}

func (s *memUserStore) Upsert(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.upserted = append(s.upserted, user.ID)
	return nil
}
func (s *memUserStore) UpdatePhone(ctx context.Context, userID int64, phone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phones == nil {
		s.phones = map[int64]string{}
	}
	s.phones[userID] = phone
	return nil
}

type echoOracle struct{}

func (echoOracle) Correct(ctx context.Context, text string) (string, error) { return text, nil }

type handlerFixture struct {
	server *GRPCServer
	dialer *stubDialer
	users  *memUserStore
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	v, err := vault.New("test-secret")
	if err != nil {
		t.Fatalf("vault.New error: %v", err)
	}

	dialer := &stubDialer{}
	creds := &memCredentialStore{}
	settings := &memSettingsStore{}
	users := &memUserStore{}

	authr := session.NewAuthenticator(dialer, v, creds, nopLogger{})
	gate := correction.NewGate(settings, echoOracle{}, time.Second, nopLogger{})
	registry := session.NewRegistry(dialer, gate, nopLogger{})
	manager := session.NewManager(authr, registry, v, creds, settings, users, nopLogger{})

	srv, err := NewGRPCServer(":0", nopLogger{}, manager, "secret")
	if err != nil {
		t.Fatalf("NewGRPCServer error: %v", err)
	}
	return &handlerFixture{server: srv, dialer: dialer, users: users}
}

func authedCtx(userID int64) context.Context {
	return context.WithValue(context.Background(), userIDKey, userID)
}

// ---- tests ----

func TestPing(t *testing.T) {
	f := newHandlerFixture(t)

	resp, err := f.server.Ping(context.Background(), &pb.PingRequest{})
	if err != nil {
		t.Fatalf("Ping error: %v", err)
	}
	if resp.Status != "OK" {
		t.Fatalf("unexpected status: %q", resp.Status)
	}
}

func TestBeginConnect_RegistersUserAndRecordsPhone(t *testing.T) {
	f := newHandlerFixture(t)

	_, err := f.server.BeginConnect(authedCtx(42), &pb.BeginConnectRequest{PhoneNumber: "+7 900 123-45-67"})
	if err != nil {
		t.Fatalf("BeginConnect error: %v", err)
	}

	if len(f.users.upserted) != 1 || f.users.upserted[0] != 42 {
		t.Fatalf("expected upsert for user 42, got %v", f.users.upserted)
	}
	if f.users.phones[42] != "+79001234567" {
		t.Fatalf("unexpected phone: %q", f.users.phones[42])
	}
}

func TestBeginConnect_NoIdentity(t *testing.T) {
	f := newHandlerFixture(t)

	_, err := f.server.BeginConnect(context.Background(), &pb.BeginConnectRequest{PhoneNumber: "+79001234567"})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", err)
	}
}

func TestBeginConnect_InvalidPhone(t *testing.T) {
	f := newHandlerFixture(t)
	client := newStubClient()
	client.requestErr = common.ErrInvalidPhone
	f.dialer.next = client

	_, err := f.server.BeginConnect(authedCtx(42), &pb.BeginConnectRequest{PhoneNumber: "+70000000000"})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestBeginConnect_RateLimited(t *testing.T) {
	f := newHandlerFixture(t)
	client := newStubClient()
	client.requestErr = &common.RateLimitedError{RetryAfter: 30 * time.Second}
	f.dialer.next = client

	_, err := f.server.BeginConnect(authedCtx(42), &pb.BeginConnectRequest{PhoneNumber: "+79001234567"})
	if status.Code(err) != codes.ResourceExhausted {
		t.Fatalf("expected ResourceExhausted, got %v", err)
	}
}

func TestCodeInput_FullFlow(t *testing.T) {
	f := newHandlerFixture(t)
	ctx := authedCtx(42)

	if _, err := f.server.BeginConnect(ctx, &pb.BeginConnectRequest{PhoneNumber: "+79001234567"}); err != nil {
		t.Fatalf("BeginConnect error: %v", err)
	}

	for _, d := range []string{"1", "2", "3", "4", "5"} {
		resp, err := f.server.CodeInput(ctx, &pb.CodeInputRequest{
			Action: pb.CodeAction_CODE_ACTION_DIGIT, Digit: d,
		})
		if err != nil {
			t.Fatalf("CodeInput digit error: %v", err)
		}
		if resp.CodeBuffer[len(resp.CodeBuffer)-1:] != d {
			t.Fatalf("buffer %q does not end with %q", resp.CodeBuffer, d)
		}
	}

	resp, err := f.server.CodeInput(ctx, &pb.CodeInputRequest{Action: pb.CodeAction_CODE_ACTION_SUBMIT})
	if err != nil {
		t.Fatalf("CodeInput submit error: %v", err)
	}
	if resp.PasswordRequired {
		t.Fatal("unexpected password requirement")
	}

	st, err := f.server.Status(ctx, &pb.StatusRequest{})
	if err != nil {
		t.Fatalf("Status error: %v", err)
	}
	if st.Status != "connected_stopped" {
		t.Fatalf("unexpected status: %q", st.Status)
	}
}

func TestCodeInput_Backspace(t *testing.T) {
	f := newHandlerFixture(t)
	ctx := authedCtx(42)

	if _, err := f.server.BeginConnect(ctx, &pb.BeginConnectRequest{PhoneNumber: "+79001234567"}); err != nil {
		t.Fatalf("BeginConnect error: %v", err)
	}

	f.server.CodeInput(ctx, &pb.CodeInputRequest{Action: pb.CodeAction_CODE_ACTION_DIGIT, Digit: "1"})
	f.server.CodeInput(ctx, &pb.CodeInputRequest{Action: pb.CodeAction_CODE_ACTION_DIGIT, Digit: "2"})

	resp, err := f.server.CodeInput(ctx, &pb.CodeInputRequest{Action: pb.CodeAction_CODE_ACTION_BACKSPACE})
	if err != nil {
		t.Fatalf("CodeInput backspace error: %v", err)
	}
	if resp.CodeBuffer != "1" {
		t.Fatalf("expected buffer \"1\", got %q", resp.CodeBuffer)
	}
}

func TestCodeInput_BadDigit(t *testing.T) {
	f := newHandlerFixture(t)

	_, err := f.server.CodeInput(authedCtx(42), &pb.CodeInputRequest{
		Action: pb.CodeAction_CODE_ACTION_DIGIT, Digit: "12",
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestCodeInput_BufferEdges(t *testing.T) {
	f := newHandlerFixture(t)
	ctx := authedCtx(42)

	if _, err := f.server.BeginConnect(ctx, &pb.BeginConnectRequest{PhoneNumber: "+79001234567"}); err != nil {
		t.Fatalf("BeginConnect error: %v", err)
	}

	_, err := f.server.CodeInput(ctx, &pb.CodeInputRequest{Action: pb.CodeAction_CODE_ACTION_BACKSPACE})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("backspace on empty buffer: expected InvalidArgument, got %v", err)
	}

	for _, d := range []string{"1", "2", "3", "4", "5"} {
		if _, err := f.server.CodeInput(ctx, &pb.CodeInputRequest{
			Action: pb.CodeAction_CODE_ACTION_DIGIT, Digit: d,
		}); err != nil {
			t.Fatalf("CodeInput digit error: %v", err)
		}
	}

	_, err = f.server.CodeInput(ctx, &pb.CodeInputRequest{
		Action: pb.CodeAction_CODE_ACTION_DIGIT, Digit: "6",
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("sixth digit: expected InvalidArgument, got %v", err)
	}
}

func TestCodeInput_NoAttempt(t *testing.T) {
	f := newHandlerFixture(t)

	_, err := f.server.CodeInput(authedCtx(42), &pb.CodeInputRequest{
		Action: pb.CodeAction_CODE_ACTION_DIGIT, Digit: "1",
	})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("expected FailedPrecondition, got %v", err)
	}
}

func TestCodeInput_PasswordRequired(t *testing.T) {
	f := newHandlerFixture(t)
	client := newStubClient()
	client.signInErr = common.ErrPasswordRequired
	f.dialer.next = client
	ctx := authedCtx(42)

	if _, err := f.server.BeginConnect(ctx, &pb.BeginConnectRequest{PhoneNumber: "+79001234567"}); err != nil {
		t.Fatalf("BeginConnect error: %v", err)
	}
	for _, d := range []string{"1", "2", "3", "4", "5"} {
		f.server.CodeInput(ctx, &pb.CodeInputRequest{Action: pb.CodeAction_CODE_ACTION_DIGIT, Digit: d})
	}

	resp, err := f.server.CodeInput(ctx, &pb.CodeInputRequest{Action: pb.CodeAction_CODE_ACTION_SUBMIT})
	if err != nil {
		t.Fatalf("CodeInput submit error: %v", err)
	}
	if !resp.PasswordRequired {
		t.Fatal("expected password requirement")
	}

	if _, err := f.server.SubmitPassword(ctx, &pb.SubmitPasswordRequest{Password: "hunter2"}); err != nil {
		t.Fatalf("SubmitPassword error: %v", err)
	}
}

func TestStart_NotConnected(t *testing.T) {
	f := newHandlerFixture(t)

	_, err := f.server.Start(authedCtx(42), &pb.StartRequest{})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("expected FailedPrecondition, got %v", err)
	}
}

func TestStartStopDisconnect(t *testing.T) {
	f := newHandlerFixture(t)
	ctx := authedCtx(42)

	// complete the handshake first
	f.server.BeginConnect(ctx, &pb.BeginConnectRequest{PhoneNumber: "+79001234567"})
	for _, d := range []string{"1", "2", "3", "4", "5"} {
		f.server.CodeInput(ctx, &pb.CodeInputRequest{Action: pb.CodeAction_CODE_ACTION_DIGIT, Digit: d})
	}
	if _, err := f.server.CodeInput(ctx, &pb.CodeInputRequest{Action: pb.CodeAction_CODE_ACTION_SUBMIT}); err != nil {
		t.Fatalf("submit error: %v", err)
	}

	if _, err := f.server.Start(ctx, &pb.StartRequest{}); err != nil {
		t.Fatalf("Start error: %v", err)
	}

	st, _ := f.server.Status(ctx, &pb.StatusRequest{})
	if st.Status != "connected_active" {
		t.Fatalf("unexpected status: %q", st.Status)
	}

	stop, err := f.server.Stop(ctx, &pb.StopRequest{})
	if err != nil || !stop.WasActive {
		t.Fatalf("Stop: %v %v", stop, err)
	}

	disc, err := f.server.Disconnect(ctx, &pb.DisconnectRequest{})
	if err != nil {
		t.Fatalf("Disconnect error: %v", err)
	}
	if disc.WasActive {
		t.Fatal("connection was already stopped")
	}

	st, _ = f.server.Status(ctx, &pb.StatusRequest{})
	if st.Status != "not_connected" {
		t.Fatalf("unexpected status: %q", st.Status)
	}
}

func TestSettings_GetAndUpdate(t *testing.T) {
	f := newHandlerFixture(t)
	ctx := authedCtx(42)

	got, err := f.server.GetSettings(ctx, &pb.GetSettingsRequest{})
	if err != nil {
		t.Fatalf("GetSettings error: %v", err)
	}
	if !got.AutoCorrectEnabled || got.MinMessageLength != int32(models.DefaultMinMessageLength) {
		t.Fatalf("unexpected defaults: %+v", got)
	}

	if _, err := f.server.UpdateSetting(ctx, &pb.UpdateSettingRequest{Name: "auto_correct", Value: "false"}); err != nil {
		t.Fatalf("UpdateSetting error: %v", err)
	}
	if _, err := f.server.UpdateSetting(ctx, &pb.UpdateSettingRequest{Name: "min_message_length", Value: "25"}); err != nil {
		t.Fatalf("UpdateSetting error: %v", err)
	}

	got, err = f.server.GetSettings(ctx, &pb.GetSettingsRequest{})
	if err != nil {
		t.Fatalf("GetSettings error: %v", err)
	}
	if got.AutoCorrectEnabled || got.MinMessageLength != 25 {
		t.Fatalf("unexpected settings: %+v", got)
	}
}

func TestUpdateSetting_BadValues(t *testing.T) {
	f := newHandlerFixture(t)
	ctx := authedCtx(42)

	if _, err := f.server.UpdateSetting(ctx, &pb.UpdateSettingRequest{Name: "auto_correct", Value: "maybe"}); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
	if _, err := f.server.UpdateSetting(ctx, &pb.UpdateSettingRequest{Name: "min_message_length", Value: "abc"}); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
	if _, err := f.server.UpdateSetting(ctx, &pb.UpdateSettingRequest{Name: "min_message_length", Value: "2"}); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument for out-of-range value, got %v", err)
	}
}

func TestUpdateSetting_ExtraKey(t *testing.T) {
	f := newHandlerFixture(t)
	ctx := authedCtx(42)

	if _, err := f.server.UpdateSetting(ctx, &pb.UpdateSettingRequest{Name: "tone", Value: "formal"}); err != nil {
		t.Fatalf("UpdateSetting error: %v", err)
	}

	got, err := f.server.GetSettings(ctx, &pb.GetSettingsRequest{})
	if err != nil {
		t.Fatalf("GetSettings error: %v", err)
	}
	if got.ExtraJson != `{"tone":"formal"}` {
		t.Fatalf("unexpected extra: %q", got.ExtraJson)
	}
}
