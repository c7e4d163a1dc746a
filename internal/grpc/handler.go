package grpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/tgpolish/internal/common"
	"github.com/dmitrijs2005/tgpolish/internal/models"
	pb "github.com/dmitrijs2005/tgpolish/internal/proto"
	"github.com/dmitrijs2005/tgpolish/internal/session"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}

func (s *GRPCServer) BeginConnect(ctx context.Context, req *pb.BeginConnectRequest) (*pb.BeginConnectResponse, error) {

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "Connect request", "user_id", userID)

	// the user row must exist before phone bookkeeping
	if err := s.manager.RegisterUser(ctx, &models.User{ID: userID}); err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	if err := s.manager.BeginConnect(ctx, userID, req.PhoneNumber); err != nil {
		return nil, s.mapError(ctx, err)
	}

	return &pb.BeginConnectResponse{}, nil

}

func (s *GRPCServer) CodeInput(ctx context.Context, req *pb.CodeInputRequest) (*pb.CodeInputResponse, error) {

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	switch req.Action {

	case pb.CodeAction_CODE_ACTION_DIGIT:
		if len(req.Digit) != 1 {
			return nil, status.Error(codes.InvalidArgument, "digit must be a single character")
		}
		buffer, err := s.manager.InputCodeDigit(userID, req.Digit[0])
		if err != nil {
			return nil, s.mapError(ctx, err)
		}
		return &pb.CodeInputResponse{CodeBuffer: buffer}, nil

	case pb.CodeAction_CODE_ACTION_BACKSPACE:
		buffer, err := s.manager.InputCodeBackspace(userID)
		if err != nil {
			return nil, s.mapError(ctx, err)
		}
		return &pb.CodeInputResponse{CodeBuffer: buffer}, nil

	case pb.CodeAction_CODE_ACTION_SUBMIT:
		err := s.manager.SubmitCode(ctx, userID)
		if errors.Is(err, common.ErrPasswordRequired) {
			return &pb.CodeInputResponse{PasswordRequired: true}, nil
		}
		if err != nil {
			return nil, s.mapError(ctx, err)
		}
		return &pb.CodeInputResponse{}, nil

	default:
		return nil, status.Error(codes.InvalidArgument, "unknown code action")
	}

}

func (s *GRPCServer) SubmitPassword(ctx context.Context, req *pb.SubmitPasswordRequest) (*pb.SubmitPasswordResponse, error) {

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.manager.SubmitPassword(ctx, userID, req.Password); err != nil {
		return nil, s.mapError(ctx, err)
	}

	return &pb.SubmitPasswordResponse{}, nil

}

func (s *GRPCServer) CancelAuth(ctx context.Context, req *pb.CancelAuthRequest) (*pb.CancelAuthResponse, error) {

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	s.manager.CancelAuth(ctx, userID)

	return &pb.CancelAuthResponse{}, nil

}

func (s *GRPCServer) Start(ctx context.Context, req *pb.StartRequest) (*pb.StartResponse, error) {

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.manager.Start(ctx, userID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, status.Error(codes.FailedPrecondition, "not connected")
		}
		return nil, s.mapError(ctx, err)
	}

	return &pb.StartResponse{}, nil

}

func (s *GRPCServer) Stop(ctx context.Context, req *pb.StopRequest) (*pb.StopResponse, error) {

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	return &pb.StopResponse{WasActive: s.manager.Stop(ctx, userID)}, nil

}

func (s *GRPCServer) Disconnect(ctx context.Context, req *pb.DisconnectRequest) (*pb.DisconnectResponse, error) {

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	wasActive, err := s.manager.Disconnect(ctx, userID)
	if err != nil {
		return nil, s.mapError(ctx, err)
	}

	return &pb.DisconnectResponse{WasActive: wasActive}, nil

}

func (s *GRPCServer) Status(ctx context.Context, req *pb.StatusRequest) (*pb.StatusResponse, error) {

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	st, err := s.manager.Status(ctx, userID)
	if err != nil {
		return nil, s.mapError(ctx, err)
	}

	return &pb.StatusResponse{Status: st.String()}, nil

}

func (s *GRPCServer) GetSettings(ctx context.Context, req *pb.GetSettingsRequest) (*pb.GetSettingsResponse, error) {

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	settings, err := s.manager.Settings(ctx, userID)
	if err != nil {
		return nil, s.mapError(ctx, err)
	}

	extra, err := json.Marshal(settings.Extra)
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.GetSettingsResponse{
		AutoCorrectEnabled: settings.AutoCorrectEnabled,
		MinMessageLength:   int32(settings.MinMessageLength),
		ExtraJson:          string(extra),
	}, nil

}

func (s *GRPCServer) UpdateSetting(ctx context.Context, req *pb.UpdateSettingRequest) (*pb.UpdateSettingResponse, error) {

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	switch req.Name {

	case "auto_correct":
		enabled, err := strconv.ParseBool(req.Value)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "auto_correct must be a boolean")
		}
		if err := s.manager.SetAutoCorrect(ctx, userID, enabled); err != nil {
			return nil, s.mapError(ctx, err)
		}

	case "min_message_length":
		length, err := strconv.Atoi(req.Value)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "min_message_length must be an integer")
		}
		if err := s.manager.SetMinMessageLength(ctx, userID, length); err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}

	default:
		if err := s.manager.SetExtra(ctx, userID, req.Name, req.Value); err != nil {
			return nil, s.mapError(ctx, err)
		}
	}

	return &pb.UpdateSettingResponse{}, nil

}

// mapError translates the session core's sentinel errors into gRPC statuses.
func (s *GRPCServer) mapError(ctx context.Context, err error) error {

	var rle *common.RateLimitedError
	if errors.As(err, &rle) {
		return status.Error(codes.ResourceExhausted,
			fmt.Sprintf("rate limited, retry after %s", rle.RetryAfter))
	}

	switch {
	case errors.Is(err, common.ErrInvalidPhone):
		return status.Error(codes.InvalidArgument, "invalid phone number")
	case errors.Is(err, common.ErrInvalidCode):
		return status.Error(codes.InvalidArgument, "invalid confirmation code")
	case errors.Is(err, common.ErrInvalidPassword):
		return status.Error(codes.InvalidArgument, "invalid password")
	case errors.Is(err, session.ErrCodeBufferFull), errors.Is(err, session.ErrCodeBufferEmpty):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrNoActiveAttempt):
		return status.Error(codes.FailedPrecondition, "no authentication in progress")
	case errors.Is(err, common.ErrConnectFailed):
		return status.Error(codes.Unavailable, "connection failed")
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	default:
		s.logger.Error(ctx, err.Error())
		return status.Error(codes.Internal, "internal error")
	}
}
