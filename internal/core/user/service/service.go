package userapp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofrs/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"yatube/internal/config"
	userEntity "yatube/internal/core/user"
	userPort "yatube/internal/ports/user"
)

const issuer = "yatube"

var ErrInvalidToken = errors.New("invalid session token")

// UserService registers users and issues session tokens.
type UserService struct {
	UserRepository userPort.UserRepository
	jwtKey         []byte
	lifetime       time.Duration
}

func NewUserService(repo userPort.UserRepository, jwtKey []byte, lifetime time.Duration) *UserService {
	if lifetime <= 0 {
		lifetime = 24 * time.Hour
	}
	return &UserService{
		UserRepository: repo,
		jwtKey:         jwtKey,
		lifetime:       lifetime,
	}
}

// LoginUser checks the password and returns a signed session token.
func (s *UserService) LoginUser(ctx context.Context, username, password string) (*userPort.LoginResponse, error) {
	user, err := s.UserRepository.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		config.Logger.Debug("Login for unknown user", zap.String("username", username), zap.Error(err))
		return nil, userEntity.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		config.Logger.Debug("Invalid password", zap.String("username", username))
		return nil, userEntity.ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(s.lifetime)
	token, err := s.generateJWT(user, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("could not generate token: %w", err)
	}

	return &userPort.LoginResponse{
		Token:     token,
		UserID:    user.ID.String(),
		ExpiresAt: expiresAt,
	}, nil
}

func (s *UserService) generateJWT(user *userEntity.User, expiresAt time.Time) (string, error) {
	claims := &jwt.StandardClaims{
		Subject:   user.ID.String(),
		Issuer:    issuer,
		IssuedAt:  time.Now().Unix(),
		ExpiresAt: expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtKey)
}

// Authenticate resolves a session token to its user.
func (s *UserService) Authenticate(ctx context.Context, tokenString string) (*userPort.UserDTO, error) {
	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtKey, nil
	})
	if err != nil || !token.Valid || claims.Issuer != issuer {
		return nil, ErrInvalidToken
	}

	u, err := s.UserRepository.FindByID(ctx, claims.Subject)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return userPort.ToDTO(u), nil
}

// RegisterUser creates a user with a bcrypt-hashed password.
func (s *UserService) RegisterUser(ctx context.Context, firstName, lastName, username, email, password string) (*userPort.UserDTO, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, errors.New("username and password are required")
	}

	if existing, err := s.UserRepository.FindByUsername(ctx, username); err == nil && existing != nil {
		return nil, userEntity.ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &userEntity.User{
		ID:        uuid.Must(uuid.NewV4()),
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Username:  username,
		Email:     strings.TrimSpace(email),
		Password:  string(hashedPassword),
	}

	u, err := s.UserRepository.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	config.Logger.Info("User registered", zap.String("username", u.Username), zap.String("id", u.ID.String()))
	return userPort.ToDTO(u), nil
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*userPort.UserDTO, error) {
	u, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return userPort.ToDTO(u), nil
}

// DeleteUser removes a user and cascades to everything they own.
func (s *UserService) DeleteUser(ctx context.Context, username string) error {
	u, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if err := s.UserRepository.Delete(ctx, u.ID.String()); err != nil {
		return fmt.Errorf("delete user %s: %w", username, err)
	}
	config.Logger.Info("User deleted", zap.String("username", username))
	return nil
}
