package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/erosion-server/internal/logger"
	"github.com/MKhiriev/erosion-server/internal/mock"
	"github.com/MKhiriev/erosion-server/internal/store"
	"github.com/MKhiriev/erosion-server/internal/utils"
	"github.com/MKhiriev/erosion-server/internal/validators"
	"github.com/MKhiriev/erosion-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func ptr[T any](v T) *T { return &v }

func newTestUserSvc(t *testing.T, ctrl *gomock.Controller) (UserService, *mock.MockUserRepository, *mock.MockScoreRepository) {
	t.Helper()

	users := mock.NewMockUserRepository(ctrl)
	scores := mock.NewMockScoreRepository(ctrl)
	svc := NewUserService(users, scores,
		utils.NewPasswordHasher(bcrypt.MinCost),
		validators.NewCreateValidator(), validators.NewUpdateValidator(),
		logger.Nop())

	return svc, users, scores
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestUserService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestUserSvc(t, ctrl)

	users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "Rivers", u.Handle)
			assert.Equal(t, "river", u.Username)
			assert.NotEqual(t, "Valid123!", u.Password, "password must be hashed before storage")
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("Valid123!")))
			u.ID = 1
			return u, nil
		},
	)

	user, err := svc.Register(context.Background(), models.NewUser{Handle: "Rivers", Username: "river", Password: "Valid123!"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
}

func TestUserService_Register_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   models.NewUser
		wantMsg string
	}{
		{
			name:    "missing handle first",
			input:   models.NewUser{},
			wantMsg: "Missing 'handle' in request body.",
		},
		{
			name:    "missing password",
			input:   models.NewUser{Handle: "h", Username: "u"},
			wantMsg: "Missing 'password' in request body.",
		},
		{
			name:    "weak password",
			input:   models.NewUser{Handle: "h", Username: "u", Password: "NoDigits!!"},
			wantMsg: validators.MsgPasswordWeak,
		},
		{
			name:    "password over bcrypt byte limit",
			input:   models.NewUser{Handle: "h", Username: "u", Password: "Aa1!" + strings.Repeat("é", 68)},
			wantMsg: validators.MsgPasswordTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, _ := newTestUserSvc(t, ctrl)

			_, err := svc.Register(context.Background(), tt.input)

			var vErr *validators.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantMsg, vErr.Message)
		})
	}
}

func TestUserService_Register_UsernameTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestUserSvc(t, ctrl)

	users.EXPECT().Create(gomock.Any(), gomock.Any()).Times(1).Return(models.User{}, store.ErrUsernameAlreadyExists)

	_, err := svc.Register(context.Background(), models.NewUser{Handle: "h", Username: "river", Password: "Valid123!"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

// ── Get / Delete ─────────────────────────────────────────────────────────────

func TestUserService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestUserSvc(t, ctrl)

	users.EXPECT().Get(gomock.Any(), int64(4)).Return(models.User{}, store.ErrNotFound)

	_, err := svc.Get(context.Background(), 4)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "User not found.")
}

func TestUserService_Delete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestUserSvc(t, ctrl)

	users.EXPECT().Delete(gomock.Any(), int64(4)).Return(store.ErrNotFound)

	err := svc.Delete(context.Background(), 4)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, ResourceUser, nf.Resource)
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestUserService_Update_UnknownIDBeforeValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestUserSvc(t, ctrl)

	users.EXPECT().Get(gomock.Any(), int64(9)).Return(models.User{}, store.ErrNotFound)

	err := svc.Update(context.Background(), 9, models.UserUpdate{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserService_Update_NothingToUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestUserSvc(t, ctrl)

	users.EXPECT().Get(gomock.Any(), int64(1)).Return(models.User{ID: 1}, nil)

	err := svc.Update(context.Background(), 1, models.UserUpdate{Handle: ptr("")})

	var vErr *validators.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, validators.MsgNothingToUpdate, vErr.Message)
}

func TestUserService_Update_WritesSuppliedFieldsOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestUserSvc(t, ctrl)

	users.EXPECT().Get(gomock.Any(), int64(1)).Return(models.User{ID: 1}, nil)
	users.EXPECT().Update(gomock.Any(), int64(1), map[string]any{"handle": "New"}).Return(nil)

	require.NoError(t, svc.Update(context.Background(), 1, models.UserUpdate{Handle: ptr("New")}))
}

func TestUserService_Update_DuplicateUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestUserSvc(t, ctrl)

	users.EXPECT().Get(gomock.Any(), int64(1)).Return(models.User{ID: 1}, nil)
	users.EXPECT().Update(gomock.Any(), int64(1), gomock.Any()).Return(store.ErrUsernameAlreadyExists)

	err := svc.Update(context.Background(), 1, models.UserUpdate{Username: ptr("taken")})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

// ── ListScores ───────────────────────────────────────────────────────────────

func TestUserService_ListScores_OwnHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, scores := newTestUserSvc(t, ctrl)

	want := []models.Score{{ID: 1, UserID: 5}, {ID: 2, UserID: 5}}
	scores.EXPECT().ListByUser(gomock.Any(), int64(5)).Return(want, nil)

	got, err := svc.ListScores(context.Background(), models.User{ID: 5}, 5)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUserService_ListScores_OtherUserForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestUserSvc(t, ctrl)

	_, err := svc.ListScores(context.Background(), models.User{ID: 5}, 6)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUserService_ListScores_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, scores := newTestUserSvc(t, ctrl)

	scores.EXPECT().ListByUser(gomock.Any(), int64(5)).Return(nil, errors.New("db down"))

	_, err := svc.ListScores(context.Background(), models.User{ID: 5}, 5)
	assert.ErrorContains(t, err, "db down")
}
