package commands

import (
	"context"
	"log/slog"
	"time"

	"meeting-room-booking/internal/domain/auth"
	reqdto "meeting-room-booking/internal/handler/dto/request"
	"meeting-room-booking/internal/pkg/clock"
	"meeting-room-booking/internal/pkg/errs"
	"meeting-room-booking/internal/pkg/jwt"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	Username    string
	AccessToken string
	ExpiresAt   time.Time
	ExpiresIn   time.Duration
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	verifier   auth.Verifier
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(verifier auth.Verifier, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		verifier:   verifier,
		jwtService: jwtService,
		clock:      clk,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	if err := a.verifier.Verify(credentials.Username(), credentials.Password()); err != nil {
		slog.WarnContext(ctx, "admin login rejected", "username", credentials.Username())
		// Same error for unknown user and wrong password
		return nil, ErrInvalidCredentials
	}

	issuedAt := a.clock.Now()
	token, err := a.jwtService.GenerateToken(credentials.Username())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	slog.InfoContext(ctx, "admin logged in", "username", credentials.Username())
	return &LoginResult{
		Username:    credentials.Username(),
		AccessToken: token,
		ExpiresAt:   issuedAt.Add(a.jwtService.TokenDuration()),
		ExpiresIn:   a.jwtService.TokenDuration(),
	}, nil
}
