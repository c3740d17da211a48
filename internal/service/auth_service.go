package service

import (
	"context"
	"time"

	"portfolio-be/internal/dto"
	"portfolio-be/internal/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Login(ctx context.Context, req *dto.OwnerLoginRequest) (*dto.OwnerLoginResponse, error)
}

type authService struct {
	jwtSecret    string
	ownerKeyHash string
	tokenTTL     time.Duration
	log          logger.ILogger
}

func NewAuthService(jwtSecret, ownerKeyHash string, tokenTTL time.Duration, log logger.ILogger) IAuthService {
	return &authService{
		jwtSecret:    jwtSecret,
		ownerKeyHash: ownerKeyHash,
		tokenTTL:     tokenTTL,
		log:          log,
	}
}

// Login exchanges the owner access key for a signed token. There is exactly
// one owner; guests never get a token.
func (s *authService) Login(_ context.Context, req *dto.OwnerLoginRequest) (*dto.OwnerLoginResponse, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(s.ownerKeyHash), []byte(req.AccessKey)); err != nil {
		s.log.Warn("auth", "owner login rejected", nil)
		return nil, ErrUnauthorized
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"role": "owner",
		"iat":  now.Unix(),
		"exp":  now.Add(s.tokenTTL).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}

	s.log.Info("auth", "owner logged in", nil)

	return &dto.OwnerLoginResponse{
		Token:     token,
		ExpiresIn: int64(s.tokenTTL.Seconds()),
	}, nil
}
