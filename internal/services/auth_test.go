package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/employee-registry/internal/models"
	"github.com/sbilibin2017/employee-registry/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Signup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter)

	userID := uuid.New()

	tests := []struct {
		name      string
		username  string
		email     string
		password  string
		writerID  uuid.UUID
		writerErr error
		wantID    uuid.UUID
		wantErr   error
	}{
		{
			name:     "successful signup",
			username: "alice",
			email:    "alice@example.com",
			password: "pass123",
			writerID: userID,
			wantID:   userID,
		},
		{
			name:      "username taken",
			username:  "bob",
			email:     "bob@example.com",
			password:  "pass123",
			writerErr: models.ErrDuplicateUsername,
			wantErr:   services.ErrUsernameTaken,
		},
		{
			name:      "email taken",
			username:  "carol",
			email:     "carol@example.com",
			password:  "pass123",
			writerErr: models.ErrDuplicateEmail,
			wantErr:   services.ErrEmailTaken,
		},
		{
			name:      "writer error",
			username:  "eve",
			email:     "eve@example.com",
			password:  "pass123",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var storedHash string
			mockWriter.EXPECT().
				Save(gomock.Any(), tt.username, gomock.Any(), tt.email).
				DoAndReturn(func(_ context.Context, _, passwordHash, _ string) (uuid.UUID, error) {
					storedHash = passwordHash
					return tt.writerID, tt.writerErr
				})

			id, err := svc.Signup(context.Background(), tt.username, tt.email, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Equal(t, uuid.Nil, id)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)

			assert.NotEqual(t, tt.password, storedHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(tt.password)))
			cost, err := bcrypt.Cost([]byte(storedHash))
			require.NoError(t, err)
			assert.Equal(t, services.PasswordHashCost, cost)
		})
	}
}

func TestAuthService_Signup_SaltsEveryHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockUserWriter(ctrl)
	svc := services.NewAuthService(services.NewMockUserReader(ctrl), mockWriter)

	var hashes []string
	mockWriter.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, passwordHash, _ string) (uuid.UUID, error) {
			hashes = append(hashes, passwordHash)
			return uuid.New(), nil
		}).
		Times(2)

	_, err := svc.Signup(context.Background(), "alice", "alice@example.com", "samepass")
	require.NoError(t, err)
	_, err = svc.Signup(context.Background(), "bob", "bob@example.com", "samepass")
	require.NoError(t, err)

	require.Len(t, hashes, 2)
	assert.NotEqual(t, hashes[0], hashes[1])
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter)

	password := "secret1"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	user := &models.UserDB{UserID: uuid.New(), Username: "alice", Email: "alice@example.com", PasswordHash: string(hashed)}

	strPtr := func(s string) *string { return &s }

	tests := []struct {
		name         string
		username     string
		email        string
		password     string
		wantUsername *string
		wantEmail    *string
		user         *models.UserDB
		readerErr    error
		wantErr      error
	}{
		{
			name:         "login by username",
			username:     "alice",
			password:     password,
			wantUsername: strPtr("alice"),
			user:         user,
		},
		{
			name:      "login by email",
			email:     "alice@example.com",
			password:  password,
			wantEmail: strPtr("alice@example.com"),
			user:      user,
		},
		{
			name:         "unregistered username",
			username:     "bob",
			password:     password,
			wantUsername: strPtr("bob"),
			wantErr:      services.ErrUserNotRegistered,
		},
		{
			name:      "unregistered email",
			email:     "bob@example.com",
			password:  password,
			wantEmail: strPtr("bob@example.com"),
			wantErr:   services.ErrUserNotRegistered,
		},
		{
			name:     "no identifier",
			password: password,
			wantErr:  services.ErrUserNotRegistered,
		},
		{
			name:         "wrong password",
			username:     "alice",
			password:     "wrongpass",
			wantUsername: strPtr("alice"),
			user:         user,
			wantErr:      services.ErrInvalidPassword,
		},
		{
			name:         "reader error",
			username:     "alice",
			password:     password,
			wantUsername: strPtr("alice"),
			readerErr:    errors.New("db error"),
			wantErr:      errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsernameOrEmail(gomock.Any(), tt.wantUsername, tt.wantEmail).
				Return(tt.user, tt.readerErr)

			err := svc.Login(context.Background(), tt.username, tt.email, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
