package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/YelzhanWeb/restaurant/internal/adapter/logger"
	"github.com/YelzhanWeb/restaurant/internal/domain"
	"github.com/YelzhanWeb/restaurant/internal/interfaces"
)

var ErrInvalidToken = errors.New("invalid or expired token")

type Service struct {
	users        interfaces.UserRepository
	secret       []byte
	tokenTTL     time.Duration
	bcryptRounds int
	lgr          logger.Logger
}

func NewService(users interfaces.UserRepository, secret string, tokenTTL time.Duration, bcryptRounds int, lgr logger.Logger) *Service {
	if bcryptRounds <= 0 {
		bcryptRounds = bcrypt.DefaultCost
	}
	return &Service{
		users:        users,
		secret:       []byte(secret),
		tokenTTL:     tokenTTL,
		bcryptRounds: bcryptRounds,
		lgr:          lgr,
	}
}

func (s *Service) Login(ctx context.Context, username, password string) (*interfaces.AuthResult, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.signToken(user)
	if err != nil {
		return nil, err
	}

	s.lgr.Info("auth_login", "user logged in", "", map[string]interface{}{
		"user_id":  user.ID,
		"username": user.Username,
	})
	return &interfaces.AuthResult{User: user, Token: token}, nil
}

func (s *Service) Register(ctx context.Context, cmd interfaces.RegisterCommand) (*interfaces.AuthResult, error) {
	taken, err := s.users.ExistsByUsernameOrEmail(ctx, cmd.Username, cmd.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), s.bcryptRounds)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := cmd.Role
	if role == "" {
		role = domain.RoleStaff
	}

	user := &domain.User{
		Username:     cmd.Username,
		Email:        cmd.Email,
		PasswordHash: string(hash),
		FirstName:    cmd.FirstName,
		LastName:     cmd.LastName,
		Phone:        cmd.Phone,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.signToken(user)
	if err != nil {
		return nil, err
	}

	s.lgr.Info("auth_register", "user registered", "", map[string]interface{}{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     string(user.Role),
	})
	return &interfaces.AuthResult{User: user, Token: token}, nil
}

func (s *Service) GetProfile(ctx context.Context, userID int) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *Service) UpdateProfile(ctx context.Context, cmd interfaces.UpdateProfileCommand) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	if cmd.Email != user.Email {
		inUse, err := s.users.EmailInUse(ctx, cmd.Email, cmd.UserID)
		if err != nil {
			return nil, err
		}
		if inUse {
			return nil, domain.ErrUsernameTaken
		}
	}

	user.FirstName = cmd.FirstName
	user.LastName = cmd.LastName
	user.Email = cmd.Email
	user.Phone = cmd.Phone

	if err := s.users.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) ChangePassword(ctx context.Context, userID int, current, next string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)); err != nil {
		return domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), s.bcryptRounds)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.users.UpdatePassword(ctx, userID, string(hash))
}

// Authenticate verifies a signed token and loads the active user it names.
func (s *Service) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	userID, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return nil, ErrInvalidToken
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrInvalidToken
	}
	return user, nil
}

func (s *Service) signToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.Itoa(user.ID),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
