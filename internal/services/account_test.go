package services_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/mosorio19/Lomito/internal/repository/memory"
	"github.com/mosorio19/Lomito/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct{}

func (fakeUploader) Upload(ctx context.Context, folder, filename string, body io.Reader) (string, error) {
	io.Copy(io.Discard, body)
	return "https://cdn.test/" + folder + "/" + filename, nil
}

func newAccountService() (*services.AccountService, *memory.AccountRepo) {
	accounts := memory.NewAccountRepo()
	sessions := memory.NewSessionRepo()
	return services.NewAccountService(accounts, sessions, fakeUploader{}, "test-secret"), accounts
}

func validSignup() services.SignupInput {
	return services.SignupInput{
		Name:     "Ana",
		Sex:      "F",
		Surname:  "Lopez",
		Age:      "28",
		Email:    "ana@example.com",
		Password: "hunter22",
	}
}

func TestSignupThenLogin(t *testing.T) {
	svc, _ := newAccountService()
	ctx := context.Background()

	account, err := svc.Signup(ctx, validSignup())
	require.NoError(t, err)
	require.NotEmpty(t, account.ID)
	assert.Equal(t, "ana@example.com", account.Email)
	assert.NotEqual(t, "hunter22", account.PasswordHash)

	token, logged, err := svc.Login(ctx, "ana@example.com", "hunter22")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, account.ID, logged.ID)

	accountID, sessionID, err := svc.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, account.ID, accountID)
	assert.NotEmpty(t, sessionID)
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, accounts := newAccountService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, validSignup())
	require.NoError(t, err)

	in := validSignup()
	in.Name = "Otra"
	_, err = svc.Signup(ctx, in)
	require.ErrorIs(t, err, services.ErrDuplicateAccount)
	assert.Equal(t, 1, accounts.Count())
}

func TestSignupValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*services.SignupInput)
		want   error
	}{
		{"non-numeric age", func(in *services.SignupInput) { in.Age = "veinte" }, services.ErrInvalidAge},
		{"negative age", func(in *services.SignupInput) { in.Age = "-5" }, services.ErrInvalidAge},
		{"malformed email", func(in *services.SignupInput) { in.Email = "not-an-email" }, services.ErrInvalidEmail},
		{"empty password", func(in *services.SignupInput) { in.Password = "" }, services.ErrEmptyPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, accounts := newAccountService()
			in := validSignup()
			tt.mutate(&in)

			_, err := svc.Signup(context.Background(), in)
			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, 0, accounts.Count(), "nothing should be persisted on validation failure")
		})
	}
}

func TestLoginBadCredentials(t *testing.T) {
	svc, _ := newAccountService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, validSignup())
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "ana@example.com", "wrong")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@example.com", "hunter22")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestLogoutEndsSession(t *testing.T) {
	svc, _ := newAccountService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, validSignup())
	require.NoError(t, err)

	token, _, err := svc.Login(ctx, "ana@example.com", "hunter22")
	require.NoError(t, err)

	_, sessionID, err := svc.Authenticate(ctx, token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, sessionID))

	_, _, err = svc.Authenticate(ctx, token)
	assert.Error(t, err, "token must be rejected once the session is gone")
}

func TestCompleteProfile(t *testing.T) {
	svc, _ := newAccountService()
	ctx := context.Background()

	account, err := svc.Signup(ctx, validSignup())
	require.NoError(t, err)

	updated, err := svc.CompleteProfile(ctx, services.ProfileInput{
		AccountID: account.ID,
		Region:    "CDMX",
		Phone:     "5550001111",
		Bio:       "me gustan los perros",
		IdealPet:  "un labrador tranquilo",
		Photo:     bytes.NewReader([]byte("fake-image")),
		Filename:  "me.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, "CDMX", updated.Region)
	assert.Equal(t, "5550001111", updated.Phone)
	assert.Equal(t, "https://cdn.test/profiles/me.jpg", updated.PhotoURL)
}

func TestRegisterPushToken(t *testing.T) {
	svc, accounts := newAccountService()
	ctx := context.Background()

	account, err := svc.Signup(ctx, validSignup())
	require.NoError(t, err)

	deviceToken := "apns-device-token"
	require.NoError(t, svc.RegisterPushToken(ctx, account.ID, &deviceToken))

	stored, err := accounts.GetByID(ctx, account.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.PushToken)
	assert.Equal(t, deviceToken, *stored.PushToken)
}
