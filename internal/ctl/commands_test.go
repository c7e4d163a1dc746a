package ctl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
)

type fakeSessionClient struct {
	calls []string

	beginConnectErr error
	submitErr       error
	startErr        error

	buffer           string
	passwordRequired bool

	status   string
	settings *Settings

	settingName  string
	settingValue string
}

func (f *fakeSessionClient) Close() error { return nil }
func (f *fakeSessionClient) Ping(ctx context.Context) (string, error) {
	f.calls = append(f.calls, "ping")
	return "ok", nil
}
func (f *fakeSessionClient) BeginConnect(ctx context.Context, phone string) error {
	f.calls = append(f.calls, "begin:"+phone)
	return f.beginConnectErr
}
func (f *fakeSessionClient) CodeDigit(ctx context.Context, digit string) (*CodeState, error) {
	f.calls = append(f.calls, "digit:"+digit)
	f.buffer += digit
	return &CodeState{Buffer: f.buffer}, nil
}
func (f *fakeSessionClient) CodeBackspace(ctx context.Context) (*CodeState, error) {
	f.calls = append(f.calls, "backspace")
	if f.buffer != "" {
		f.buffer = f.buffer[:len(f.buffer)-1]
	}
	return &CodeState{Buffer: f.buffer}, nil
}
func (f *fakeSessionClient) CodeSubmit(ctx context.Context) (*CodeState, error) {
	f.calls = append(f.calls, "submit")
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return &CodeState{PasswordRequired: f.passwordRequired}, nil
}
func (f *fakeSessionClient) SubmitPassword(ctx context.Context, password string) error {
	f.calls = append(f.calls, "password:"+password)
	return nil
}
func (f *fakeSessionClient) CancelAuth(ctx context.Context) error {
	f.calls = append(f.calls, "cancel")
	return nil
}
func (f *fakeSessionClient) Start(ctx context.Context) error {
	f.calls = append(f.calls, "start")
	return f.startErr
}
func (f *fakeSessionClient) Stop(ctx context.Context) (bool, error) {
	f.calls = append(f.calls, "stop")
	return true, nil
}
func (f *fakeSessionClient) Disconnect(ctx context.Context) (bool, error) {
	f.calls = append(f.calls, "disconnect")
	return false, nil
}
func (f *fakeSessionClient) Status(ctx context.Context) (string, error) {
	f.calls = append(f.calls, "status")
	return f.status, nil
}
func (f *fakeSessionClient) GetSettings(ctx context.Context) (*Settings, error) {
	f.calls = append(f.calls, "settings")
	return f.settings, nil
}
func (f *fakeSessionClient) UpdateSetting(ctx context.Context, name string, value string) error {
	f.calls = append(f.calls, "update")
	f.settingName = name
	f.settingValue = value
	return nil
}

// newTestApp wires an App over the fake client with all interactive seams
// stubbed. Returned cleanup restores the seams.
func newTestApp(t *testing.T, fc *fakeSessionClient, lines ...string) (*App, *[]string) {
	t.Helper()

	out := &[]string{}
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		*out = append(*out, fmt.Sprintln(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })

	origText := getSimpleText
	i := 0
	getSimpleText = func(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
		if i >= len(lines) {
			return "", io.EOF
		}
		line := lines[i]
		i++
		return line, nil
	}
	t.Cleanup(func() { getSimpleText = origText })

	app := &App{config: &Config{UserID: 42}, client: fc, reader: bufio.NewReader(strings.NewReader(""))}
	return app, out
}

func printed(out *[]string) string {
	return strings.Join(*out, "")
}

func TestConnect(t *testing.T) {
	fc := &fakeSessionClient{}
	app, out := newTestApp(t, fc, "+7 900 123-45-67")

	if err := app.Connect(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(fc.calls) != 1 || fc.calls[0] != "begin:+7 900 123-45-67" {
		t.Fatalf("unexpected calls: %v", fc.calls)
	}
	if !strings.Contains(printed(out), "Code requested") {
		t.Fatalf("unexpected output: %q", printed(out))
	}
}

func TestConnect_ServerError(t *testing.T) {
	fc := &fakeSessionClient{beginConnectErr: errors.New("invalid phone number")}
	app, out := newTestApp(t, fc, "12345")

	if err := app.Connect(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(printed(out), "invalid phone number") {
		t.Fatalf("error not printed: %q", printed(out))
	}
}

func TestCode_FullEntry(t *testing.T) {
	fc := &fakeSessionClient{status: "connected_stopped"}
	app, out := newTestApp(t, fc, "1", "2", "9", "b", "3", "4", "5", "s")

	if err := app.Code(context.Background()); err != nil {
		t.Fatal(err)
	}

	want := []string{"digit:1", "digit:2", "digit:9", "backspace", "digit:3", "digit:4", "digit:5", "submit", "status"}
	if len(fc.calls) != len(want) {
		t.Fatalf("calls mismatch: got %v, want %v", fc.calls, want)
	}
	for i := range want {
		if fc.calls[i] != want[i] {
			t.Fatalf("call %d: got %q, want %q", i, fc.calls[i], want[i])
		}
	}
	if !strings.Contains(printed(out), "Connected!") {
		t.Fatalf("unexpected output: %q", printed(out))
	}
	if app.lastStatus != "connected_stopped" {
		t.Fatalf("status not refreshed: %q", app.lastStatus)
	}
}

func TestCode_MasksDigits(t *testing.T) {
	fc := &fakeSessionClient{}
	app, out := newTestApp(t, fc, "1", "2", "q")

	if err := app.Code(context.Background()); err != nil {
		t.Fatal(err)
	}
	got := printed(out)
	if strings.Contains(got, "12") {
		t.Fatalf("digits leaked to output: %q", got)
	}
	if !strings.Contains(got, "**") {
		t.Fatalf("mask not printed: %q", got)
	}
}

func TestCode_PasswordRequired(t *testing.T) {
	fc := &fakeSessionClient{passwordRequired: true}
	app, out := newTestApp(t, fc, "1", "s")

	if err := app.Code(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(printed(out), "password") {
		t.Fatalf("unexpected output: %q", printed(out))
	}
	for _, c := range fc.calls {
		if c == "status" {
			t.Fatalf("status refreshed before password step: %v", fc.calls)
		}
	}
}

func TestCode_RejectsJunkInput(t *testing.T) {
	fc := &fakeSessionClient{}
	app, _ := newTestApp(t, fc, "12", "x", "q")

	if err := app.Code(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(fc.calls) != 0 {
		t.Fatalf("junk input reached the client: %v", fc.calls)
	}
}

func TestCode_SubmitErrorKeepsLoop(t *testing.T) {
	fc := &fakeSessionClient{submitErr: errors.New("invalid confirmation code")}
	app, out := newTestApp(t, fc, "s", "q")

	if err := app.Code(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(printed(out), "invalid confirmation code") {
		t.Fatalf("error not printed: %q", printed(out))
	}
}

func TestPassword(t *testing.T) {
	fc := &fakeSessionClient{status: "connected_stopped"}
	app, out := newTestApp(t, fc)

	origPw := getPassword
	getPassword = func(w io.Writer) ([]byte, error) { return []byte("hunter2"), nil }
	t.Cleanup(func() { getPassword = origPw })

	if err := app.Password(context.Background()); err != nil {
		t.Fatal(err)
	}
	if fc.calls[0] != "password:hunter2" {
		t.Fatalf("unexpected calls: %v", fc.calls)
	}
	if !strings.Contains(printed(out), "Connected!") {
		t.Fatalf("unexpected output: %q", printed(out))
	}
}

func TestStartStopDisconnect(t *testing.T) {
	fc := &fakeSessionClient{status: "connected_active"}
	app, out := newTestApp(t, fc)

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		t.Fatal(err)
	}
	if err := app.Stop(ctx); err != nil {
		t.Fatal(err)
	}
	if err := app.Disconnect(ctx); err != nil {
		t.Fatal(err)
	}

	got := printed(out)
	for _, want := range []string{"Correction started.", "Correction stopped.", "Disconnected."} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q in output: %q", want, got)
		}
	}
}

func TestStart_NotConnected(t *testing.T) {
	fc := &fakeSessionClient{startErr: errors.New("not connected")}
	app, out := newTestApp(t, fc)

	if err := app.Start(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(printed(out), "not connected") {
		t.Fatalf("error not printed: %q", printed(out))
	}
}

func TestStatus(t *testing.T) {
	fc := &fakeSessionClient{status: "not_connected"}
	app, out := newTestApp(t, fc)

	if err := app.Status(context.Background()); err != nil {
		t.Fatal(err)
	}
	if app.lastStatus != "not_connected" {
		t.Fatalf("lastStatus = %q", app.lastStatus)
	}
	if !strings.Contains(printed(out), "not_connected") {
		t.Fatalf("unexpected output: %q", printed(out))
	}
}

func TestSettingsAndSet(t *testing.T) {
	fc := &fakeSessionClient{settings: &Settings{
		AutoCorrectEnabled: true,
		MinMessageLength:   10,
		Extra:              map[string]string{"tone": "formal"},
	}}
	app, out := newTestApp(t, fc)

	ctx := context.Background()
	if err := app.Settings(ctx); err != nil {
		t.Fatal(err)
	}
	got := printed(out)
	for _, want := range []string{"auto_correct: true", "min_message_length: 10", "tone: formal"} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q in output: %q", want, got)
		}
	}

	if err := app.Set(ctx, []string{"min_message_length", "25"}); err != nil {
		t.Fatal(err)
	}
	if fc.settingName != "min_message_length" || fc.settingValue != "25" {
		t.Fatalf("unexpected update: %q=%q", fc.settingName, fc.settingValue)
	}
}

func TestSet_Usage(t *testing.T) {
	fc := &fakeSessionClient{}
	app, out := newTestApp(t, fc)

	if err := app.Set(context.Background(), []string{"auto_correct"}); err != nil {
		t.Fatal(err)
	}
	if len(fc.calls) != 0 {
		t.Fatalf("incomplete set reached the client: %v", fc.calls)
	}
	if !strings.Contains(printed(out), "Usage") {
		t.Fatalf("unexpected output: %q", printed(out))
	}
}

func TestGetStatusPrompt(t *testing.T) {
	fc := &fakeSessionClient{}
	app, _ := newTestApp(t, fc)

	if got := app.getStatus(); got != "(user 42, unknown)" {
		t.Fatalf("got %q", got)
	}
	app.lastStatus = "connected_active"
	if got := app.getStatus(); got != "(user 42, connected_active)" {
		t.Fatalf("got %q", got)
	}
}
