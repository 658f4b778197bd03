package service

import (
	"context"
	"errors"
	"time"

	"fitpro/trainer-app/internal/domain"
	"fitpro/trainer-app/internal/store"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// --- Error Definitions ---
var (
	ErrUserAlreadyExists    = errors.New("user with this username already exists")
	ErrAuthenticationFailed = errors.New("authentication failed: invalid username or password")
	ErrHashingFailed        = errors.New("failed to hash password")
	ErrTokenGeneration      = errors.New("failed to generate authentication token")
)

// AuthService handles trainer account registration and login.
type AuthService interface {
	Register(ctx context.Context, username, password string, role domain.Role, gymID string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (token string, user *domain.User, err error)
	UsersByGym(ctx context.Context, gymID string) ([]domain.User, error)
}

type authService struct {
	users         store.UserStore
	jwtSecret     string
	jwtExpiration time.Duration
}

// NewAuthService creates a new instance of authService.
func NewAuthService(users store.UserStore, jwtSecret string, jwtExpiration time.Duration) AuthService {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty") // Critical configuration
	}
	if jwtExpiration <= 0 {
		jwtExpiration = time.Hour
	}
	return &authService{
		users:         users,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

// Register handles new account creation for trainers and gym admins.
func (s *authService) Register(ctx context.Context, username, password string, role domain.Role, gymID string) (*domain.User, error) {
	if username == "" || password == "" || role == "" {
		return nil, errors.New("username, password, and role cannot be empty")
	}

	_, err := s.users.GetByUsername(ctx, username)
	if err == nil {
		return nil, ErrUserAlreadyExists
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrHashingFailed
	}

	user, err := s.users.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: string(hashedPassword),
		Role:         role,
		GymID:        gymID,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

// Login handles authentication and JWT generation.
func (s *authService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, errors.New("username and password cannot be empty")
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", nil, ErrAuthenticationFailed
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrAuthenticationFailed
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	user.PasswordHash = ""
	return token, user, nil
}

// UsersByGym lists the accounts belonging to one gym, for the gym admin
// dashboard. Password hashes are stripped.
func (s *authService) UsersByGym(ctx context.Context, gymID string) ([]domain.User, error) {
	users, err := s.users.GetByGymID(ctx, gymID)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

// --- JWT Helper ---

// Claims defines the structure of the JWT payload. Shared with the API
// middleware that parses it back out.
type Claims struct {
	UserID string      `json:"uid"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

func (s *authService) generateJWT(user *domain.User) (string, error) {
	expirationTime := time.Now().Add(s.jwtExpiration)
	claims := &Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "fitpro-trainer-app",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
