package ctl

import (
	"context"
	"encoding/json"

	pb "github.com/dmitrijs2005/tgpolish/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// CodeState is what the daemon reports back after a code entry action.
type CodeState struct {
	Buffer           string
	PasswordRequired bool
}

// Settings mirrors the per-user correction settings exposed by the daemon.
type Settings struct {
	AutoCorrectEnabled bool
	MinMessageLength   int
	Extra              map[string]string
}

// SessionClient is the command surface the CLI needs from the daemon.
// The real GRPCClient satisfies it; tests provide a stub.
type SessionClient interface {
	Close() error
	Ping(ctx context.Context) (string, error)
	BeginConnect(ctx context.Context, phone string) error
	CodeDigit(ctx context.Context, digit string) (*CodeState, error)
	CodeBackspace(ctx context.Context) (*CodeState, error)
	CodeSubmit(ctx context.Context) (*CodeState, error)
	SubmitPassword(ctx context.Context, password string) error
	CancelAuth(ctx context.Context) error
	Start(ctx context.Context) error
	Stop(ctx context.Context) (bool, error)
	Disconnect(ctx context.Context) (bool, error)
	Status(ctx context.Context) (string, error)
	GetSettings(ctx context.Context) (*Settings, error)
	UpdateSetting(ctx context.Context, name string, value string) error
}

// GRPCClient wraps the generated SessionService client and attaches the
// access token to every call.
type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.SessionServiceClient
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete("access_token")
	md.Set("access_token", token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	ctx = withAccessToken(ctx, s.accessToken)
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewSessionClient dials the daemon at endpointURL. The token is minted
// locally by the caller; the connection itself is lazy, so dialing errors
// surface on the first call.
func NewSessionClient(endpointURL string, accessToken string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, accessToken: accessToken}

	conn, err := grpc.NewClient(c.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor))
	if err != nil {
		return nil, err
	}

	c.conn = conn
	c.client = pb.NewSessionServiceClient(conn)
	return c, nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

// mapError strips gRPC status plumbing so the REPL can print the server's
// message as-is.
func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	if st, ok := status.FromError(err); ok {
		return &serverError{msg: st.Message()}
	}
	return err
}

type serverError struct {
	msg string
}

func (e *serverError) Error() string { return e.msg }

func (s *GRPCClient) Ping(ctx context.Context) (string, error) {
	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.Status, nil
}

func (s *GRPCClient) BeginConnect(ctx context.Context, phone string) error {
	_, err := s.client.BeginConnect(ctx, &pb.BeginConnectRequest{PhoneNumber: phone})
	return s.mapError(err)
}

func (s *GRPCClient) codeInput(ctx context.Context, action pb.CodeAction, digit string) (*CodeState, error) {
	resp, err := s.client.CodeInput(ctx, &pb.CodeInputRequest{Action: action, Digit: digit})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &CodeState{Buffer: resp.CodeBuffer, PasswordRequired: resp.PasswordRequired}, nil
}

func (s *GRPCClient) CodeDigit(ctx context.Context, digit string) (*CodeState, error) {
	return s.codeInput(ctx, pb.CodeAction_CODE_ACTION_DIGIT, digit)
}

func (s *GRPCClient) CodeBackspace(ctx context.Context) (*CodeState, error) {
	return s.codeInput(ctx, pb.CodeAction_CODE_ACTION_BACKSPACE, "")
}

func (s *GRPCClient) CodeSubmit(ctx context.Context) (*CodeState, error) {
	return s.codeInput(ctx, pb.CodeAction_CODE_ACTION_SUBMIT, "")
}

func (s *GRPCClient) SubmitPassword(ctx context.Context, password string) error {
	_, err := s.client.SubmitPassword(ctx, &pb.SubmitPasswordRequest{Password: password})
	return s.mapError(err)
}

func (s *GRPCClient) CancelAuth(ctx context.Context) error {
	_, err := s.client.CancelAuth(ctx, &pb.CancelAuthRequest{})
	return s.mapError(err)
}

func (s *GRPCClient) Start(ctx context.Context) error {
	_, err := s.client.Start(ctx, &pb.StartRequest{})
	return s.mapError(err)
}

func (s *GRPCClient) Stop(ctx context.Context) (bool, error) {
	resp, err := s.client.Stop(ctx, &pb.StopRequest{})
	if err != nil {
		return false, s.mapError(err)
	}
	return resp.WasActive, nil
}

func (s *GRPCClient) Disconnect(ctx context.Context) (bool, error) {
	resp, err := s.client.Disconnect(ctx, &pb.DisconnectRequest{})
	if err != nil {
		return false, s.mapError(err)
	}
	return resp.WasActive, nil
}

func (s *GRPCClient) Status(ctx context.Context) (string, error) {
	resp, err := s.client.Status(ctx, &pb.StatusRequest{})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.Status, nil
}

func (s *GRPCClient) GetSettings(ctx context.Context) (*Settings, error) {
	resp, err := s.client.GetSettings(ctx, &pb.GetSettingsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	extra := map[string]string{}
	if resp.ExtraJson != "" {
		if err := json.Unmarshal([]byte(resp.ExtraJson), &extra); err != nil {
			return nil, err
		}
	}

	return &Settings{
		AutoCorrectEnabled: resp.AutoCorrectEnabled,
		MinMessageLength:   int(resp.MinMessageLength),
		Extra:              extra,
	}, nil
}

func (s *GRPCClient) UpdateSetting(ctx context.Context, name string, value string) error {
	_, err := s.client.UpdateSetting(ctx, &pb.UpdateSettingRequest{Name: name, Value: value})
	return s.mapError(err)
}
