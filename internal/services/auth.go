package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/gabevillegas628/dsap-backend/internal/logger"
	"github.com/gabevillegas628/dsap-backend/internal/types"
)

// Claims is the identity a verified token carries: who the caller is and
// what role they act in. Account management lives outside this service;
// only token minting and verification happen here.
type Claims struct {
	UserID uuid.UUID
	Role   types.UserRole
}

type AuthService interface {
	MintToken(userID uuid.UUID, role types.UserRole) (string, error)
	ParseToken(tokenString string) (*Claims, error)
}

type authService struct {
	log       *logger.Logger
	secretKey []byte
	tokenTTL  time.Duration
}

func NewAuthService(log *logger.Logger, secretKey string, tokenTTL time.Duration) AuthService {
	return &authService{
		log:       log.With("service", "AuthService"),
		secretKey: []byte(secretKey),
		tokenTTL:  tokenTTL,
	}
}

func (s *authService) MintToken(userID uuid.UUID, role types.UserRole) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  userID.String(),
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  now.Add(s.tokenTTL).Unix(),
	})
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (s *authService) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, fmt.Errorf("invalid subject claim: %w", err)
	}
	role, _ := claims["role"].(string)
	return &Claims{UserID: userID, Role: types.UserRole(role)}, nil
}
