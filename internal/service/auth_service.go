package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"net/url"
	"strings"
	"time"

	"github.com/fady121/alfady/internal/apierror"
	"github.com/fady121/alfady/internal/config"
	"github.com/fady121/alfady/internal/dto"
	"github.com/fady121/alfady/internal/model"
	"github.com/fady121/alfady/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	RequestCode(ctx context.Context, req dto.RequestCodeRequest) (*dto.RequestCodeResponse, error)
	Verify(ctx context.Context, req dto.VerifyCodeRequest) (*dto.TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
}

type authService struct {
	repo repository.OwnerRepository
	rdb  *redis.Client
	cfg  *config.Config
}

func NewAuthService(repo repository.OwnerRepository, rdb *redis.Client, cfg *config.Config) AuthService {
	return &authService{repo: repo, rdb: rdb, cfg: cfg}
}

func otpKey(phone string) string { return "otp:" + phone }

// RequestCode issues a fresh one-time code for the owner's phone and hands
// back a wa.me link that opens WhatsApp with the code prefilled. The code is
// stored only in Redis, under a TTL; requesting again replaces it.
func (s *authService) RequestCode(ctx context.Context, req dto.RequestCodeRequest) (*dto.RequestCodeResponse, error) {
	if _, err := s.repo.FindByPhone(ctx, req.Phone); err != nil {
		return nil, apierror.Unauthorized("invalid credentials")
	}

	code, err := randomCode()
	if err != nil {
		return nil, err
	}
	ttl := time.Duration(s.cfg.OTPExpiryMinutes) * time.Minute
	if err := s.rdb.Set(ctx, otpKey(req.Phone), code, ttl).Err(); err != nil {
		return nil, err
	}

	text := url.QueryEscape(fmt.Sprintf("Login code: %s", code))
	link := fmt.Sprintf("https://wa.me/%s?text=%s", strings.TrimPrefix(req.Phone, "+"), text)
	return &dto.RequestCodeResponse{
		WhatsAppLink: link,
		ExpiresIn:    int(ttl.Seconds()),
	}, nil
}

// Verify exchanges a one-time code for a token pair. The stored passcode is
// accepted as a fallback so the owner can still get in when Redis lost the
// code (restart, expiry).
func (s *authService) Verify(ctx context.Context, req dto.VerifyCodeRequest) (*dto.TokenResponse, error) {
	owner, err := s.repo.FindByPhone(ctx, req.Phone)
	if err != nil {
		return nil, apierror.Unauthorized("invalid credentials")
	}

	stored, err := s.rdb.Get(ctx, otpKey(req.Phone)).Result()
	if err == nil && stored == req.Code {
		s.rdb.Del(ctx, otpKey(req.Phone))
		return s.tokenPair(owner)
	}
	if bcrypt.CompareHashAndPassword([]byte(owner.PasscodeHash), []byte(req.Code)) == nil {
		return s.tokenPair(owner)
	}
	return nil, apierror.Unauthorized("invalid credentials")
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, apierror.Unauthorized("invalid refresh token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apierror.Unauthorized("invalid refresh token")
	}
	sub, _ := claims["sub"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return nil, apierror.Unauthorized("invalid refresh token")
	}

	owner, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.Unauthorized("invalid refresh token")
	}
	return s.tokenPair(owner)
}

func (s *authService) tokenPair(owner *model.Owner) (*dto.TokenResponse, error) {
	access, err := s.generateToken(owner, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	refresh, err := s.generateToken(owner, time.Duration(s.cfg.JWTRefreshHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
		ExpiresIn:    s.cfg.JWTExpirationHours * 3600,
		Owner: dto.OwnerResponse{
			ID:    owner.ID.String(),
			Name:  owner.Name,
			Phone: owner.Phone,
		},
	}, nil
}

func (s *authService) generateToken(owner *model.Owner, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   owner.ID.String(),
		"phone": owner.Phone,
		"exp":   time.Now().Add(ttl).Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func randomCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%04d", n.Int64()), nil
}
