package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/YelzhanWeb/restaurant/internal/adapter/logger"
	"github.com/YelzhanWeb/restaurant/internal/domain"
	"github.com/YelzhanWeb/restaurant/internal/interfaces"
	"github.com/YelzhanWeb/restaurant/internal/mocks"
)

func newTestService(users *mocks.UserRepository) *Service {
	return NewService(users, "test-secret", time.Hour, bcrypt.MinCost, logger.New("test"))
}

func hash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestLogin(t *testing.T) {
	users := new(mocks.UserRepository)
	svc := newTestService(users)

	users.On("FindByUsername", mock.Anything, "alice").Return(&domain.User{
		ID: 1, Username: "alice", PasswordHash: hash(t, "s3cret"), IsActive: true, Role: domain.RoleStaff,
	}, nil)

	result, err := svc.Login(context.Background(), "alice", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "alice", result.User.Username)
}

func TestLoginWrongPassword(t *testing.T) {
	users := new(mocks.UserRepository)
	svc := newTestService(users)

	users.On("FindByUsername", mock.Anything, "alice").Return(&domain.User{
		ID: 1, Username: "alice", PasswordHash: hash(t, "s3cret"), IsActive: true,
	}, nil)

	_, err := svc.Login(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	users := new(mocks.UserRepository)
	svc := newTestService(users)

	users.On("FindByUsername", mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound)

	// Unknown users get the same error as bad passwords.
	_, err := svc.Login(context.Background(), "ghost", "whatever")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginInactiveUser(t *testing.T) {
	users := new(mocks.UserRepository)
	svc := newTestService(users)

	users.On("FindByUsername", mock.Anything, "alice").Return(&domain.User{
		ID: 1, Username: "alice", PasswordHash: hash(t, "s3cret"), IsActive: false,
	}, nil)

	_, err := svc.Login(context.Background(), "alice", "s3cret")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestRegister(t *testing.T) {
	users := new(mocks.UserRepository)
	svc := newTestService(users)

	users.On("ExistsByUsernameOrEmail", mock.Anything, "bob", "bob@example.com").Return(false, nil)
	users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).
		Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			u.ID = 3
			u.IsActive = true
		}).Return(nil)

	result, err := svc.Register(context.Background(), interfaces.RegisterCommand{
		Username:  "bob",
		Email:     "bob@example.com",
		Password:  "hunter22",
		FirstName: "Bob",
		LastName:  "Jones",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, domain.RoleStaff, result.User.Role)
	assert.NotEqual(t, "hunter22", result.User.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(result.User.PasswordHash), []byte("hunter22")))
}

func TestRegisterDuplicate(t *testing.T) {
	users := new(mocks.UserRepository)
	svc := newTestService(users)

	users.On("ExistsByUsernameOrEmail", mock.Anything, "bob", "bob@example.com").Return(true, nil)

	_, err := svc.Register(context.Background(), interfaces.RegisterCommand{
		Username: "bob", Email: "bob@example.com", Password: "hunter22",
	})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthenticateRoundTrip(t *testing.T) {
	users := new(mocks.UserRepository)
	svc := newTestService(users)

	user := &domain.User{ID: 1, Username: "alice", PasswordHash: hash(t, "s3cret"), IsActive: true}
	users.On("FindByUsername", mock.Anything, "alice").Return(user, nil)
	users.On("FindByID", mock.Anything, 1).Return(user, nil)

	result, err := svc.Login(context.Background(), "alice", "s3cret")
	require.NoError(t, err)

	verified, err := svc.Authenticate(context.Background(), result.Token)
	require.NoError(t, err)
	assert.Equal(t, 1, verified.ID)
}

func TestAuthenticateRejectsGarbage(t *testing.T) {
	users := new(mocks.UserRepository)
	svc := newTestService(users)

	_, err := svc.Authenticate(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthenticateRejectsForeignSignature(t *testing.T) {
	users := new(mocks.UserRepository)
	user := &domain.User{ID: 1, Username: "alice", PasswordHash: hash(t, "s3cret"), IsActive: true}
	users.On("FindByUsername", mock.Anything, "alice").Return(user, nil)

	issuer := NewService(users, "other-secret", time.Hour, bcrypt.MinCost, logger.New("test"))
	result, err := issuer.Login(context.Background(), "alice", "s3cret")
	require.NoError(t, err)

	verifier := newTestService(users)
	_, err = verifier.Authenticate(context.Background(), result.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestChangePassword(t *testing.T) {
	users := new(mocks.UserRepository)
	svc := newTestService(users)

	users.On("FindByID", mock.Anything, 1).Return(&domain.User{
		ID: 1, PasswordHash: hash(t, "old-pass"), IsActive: true,
	}, nil)
	users.On("UpdatePassword", mock.Anything, 1, mock.AnythingOfType("string")).Return(nil)

	require.NoError(t, svc.ChangePassword(context.Background(), 1, "old-pass", "new-pass"))

	err := svc.ChangePassword(context.Background(), 1, "wrong", "new-pass")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
