package service

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"careercompass/internal/model"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// AuthService handles user authentication. The identity provider proper is
// an external collaborator; this layer only exchanges credentials for a
// signed token the rest of the API trusts.
type AuthService struct {
	demoUsername string
	demoPassword string
	jwtSecret    []byte
}

// NewAuthService creates a new auth service
func NewAuthService(jwtSecret string) *AuthService {
	username := os.Getenv("DEMO_USERNAME")
	if username == "" {
		username = "demo"
	}
	password := os.Getenv("DEMO_PASSWORD")
	if password == "" {
		password = "password123"
	}

	return &AuthService{
		demoUsername: username,
		demoPassword: password,
		jwtSecret:    []byte(jwtSecret),
	}
}

// Login validates credentials and returns a user token
func (s *AuthService) Login(username, password string) (*model.LoginResponse, error) {
	if username != s.demoUsername || password != s.demoPassword {
		return nil, ErrInvalidCredentials
	}

	userID := "u_" + uuid.New().String()[:8]

	claims := &model.UserClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(7 * 24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		Token:  tokenString,
		UserID: userID,
	}, nil
}

// ValidateUserToken validates a user JWT and returns claims
func (s *AuthService) ValidateUserToken(tokenString string) (*model.UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.UserClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
