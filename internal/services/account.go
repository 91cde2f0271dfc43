package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/mosorio19/Lomito/internal/models"
	"github.com/mosorio19/Lomito/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const sessionTTL = 7 * 24 * time.Hour

// AccountStore is the persistence surface the account service needs.
type AccountStore interface {
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id string) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	CompleteProfile(ctx context.Context, id, region, phone, bio, idealPet, photoURL string) error
	UpdatePushToken(ctx context.Context, accountID string, pushToken *string) error
}

// SessionStore is the persistence surface for login sessions.
type SessionStore interface {
	Create(ctx context.Context, session *models.Session) error
	GetByID(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
}

// AccountService handles registration, login and profile logic.
type AccountService struct {
	accounts  AccountStore
	sessions  SessionStore
	uploader  Uploader
	jwtSecret string
}

// NewAccountService creates a new account service
func NewAccountService(accounts AccountStore, sessions SessionStore, uploader Uploader, jwtSecret string) *AccountService {
	return &AccountService{
		accounts:  accounts,
		sessions:  sessions,
		uploader:  uploader,
		jwtSecret: jwtSecret,
	}
}

// SignupInput carries the signup step-1 form fields. Age arrives as
// text and is validated here.
type SignupInput struct {
	Name     string
	Sex      string
	Surname  string
	Age      string
	Email    string
	Password string
}

// Signup validates the step-1 fields and creates the account with only
// those fields populated. Profile completion happens in a second step.
func (s *AccountService) Signup(ctx context.Context, in SignupInput) (*models.Account, error) {
	age, err := strconv.Atoi(strings.TrimSpace(in.Age))
	if err != nil || age < 0 {
		return nil, ErrInvalidAge
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidEmail
	}

	if in.Password == "" {
		return nil, ErrEmptyPassword
	}

	exists, err := s.accounts.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, ErrDuplicateAccount
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	account := &models.Account{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Surname:      in.Surname,
		Age:          age,
		Sex:          in.Sex,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		// A concurrent signup can slip past the EmailExists check.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrDuplicateAccount
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return account, nil
}

// ProfileInput carries the signup step-2 fields plus the photo upload.
type ProfileInput struct {
	AccountID string
	Region    string
	Phone     string
	Bio       string
	IdealPet  string
	Photo     io.Reader
	Filename  string
}

// CompleteProfile uploads the profile photo and fills in the remaining
// account fields.
func (s *AccountService) CompleteProfile(ctx context.Context, in ProfileInput) (*models.Account, error) {
	photoURL, err := s.uploader.Upload(ctx, "profiles", in.Filename, in.Photo)
	if err != nil {
		return nil, fmt.Errorf("failed to upload profile photo: %w", err)
	}

	err = s.accounts.CompleteProfile(ctx, in.AccountID, in.Region, in.Phone, in.Bio, in.IdealPet, photoURL)
	if err != nil {
		return nil, fmt.Errorf("failed to complete profile: %w", err)
	}

	return s.accounts.GetByID(ctx, in.AccountID)
}

// Login verifies the credentials and opens a session, returning the
// signed token for it.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, *models.Account, error) {
	account, err := s.accounts.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to look up account: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	now := time.Now()
	session := &models.Session{
		ID:        uuid.New().String(),
		AccountID: account.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(sessionTTL),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return "", nil, fmt.Errorf("failed to create session: %w", err)
	}

	token, err := s.signToken(account.ID, session.ID, session.ExpiresAt)
	if err != nil {
		return "", nil, err
	}

	return token, account, nil
}

// Logout deletes the session backing the token. The token itself stays
// syntactically valid until it expires, but Authenticate rejects it once
// the session row is gone.
func (s *AccountService) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Authenticate validates a token and returns the account and session it
// is bound to.
func (s *AccountService) Authenticate(ctx context.Context, tokenString string) (accountID, sessionID string, err error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return "", "", fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", fmt.Errorf("invalid token claims")
	}
	accountID, ok = claims["account_id"].(string)
	if !ok {
		return "", "", fmt.Errorf("account_id not found in token")
	}
	sessionID, ok = claims["session_id"].(string)
	if !ok {
		return "", "", fmt.Errorf("session_id not found in token")
	}

	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return "", "", fmt.Errorf("session is no longer active: %w", err)
	}
	if session.AccountID != accountID {
		return "", "", fmt.Errorf("session does not belong to account")
	}

	return accountID, sessionID, nil
}

// GetByID returns an account by its identifier.
func (s *AccountService) GetByID(ctx context.Context, id string) (*models.Account, error) {
	return s.accounts.GetByID(ctx, id)
}

// RegisterPushToken stores the APNs device token for an account. A nil
// token clears it.
func (s *AccountService) RegisterPushToken(ctx context.Context, accountID string, pushToken *string) error {
	return s.accounts.UpdatePushToken(ctx, accountID, pushToken)
}

func (s *AccountService) signToken(accountID, sessionID string, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"account_id": accountID,
		"session_id": sessionID,
		"exp":        expiresAt.Unix(),
		"iat":        time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
