package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"guesthouse/config"
	"guesthouse/infras/otel/mocks"
	s3Mocks "guesthouse/infras/s3/mocks"
	"guesthouse/infras/token"
	staffMocks "guesthouse/internal/domains/staff/mocks"
	"guesthouse/internal/domains/staff/model"
	"guesthouse/internal/domains/staff/model/dto"
	"guesthouse/internal/domains/staff/service"
	"guesthouse/shared/constant"
	gDto "guesthouse/shared/dto"
	"guesthouse/shared/failure"
	"guesthouse/shared/password"
)

type staffFixture struct {
	svc   service.Staff
	repo  *staffMocks.MockStaff
	s3    *s3Mocks.MockS3
	token token.Token
}

func newStaffFixture(t *testing.T) staffFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	repo := staffMocks.NewMockStaff(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)

	cfg := new(config.Config)
	cfg.App.Name = "guesthouse"
	cfg.Server.Env = constant.ServerEnvDevelopment
	cfg.Session.Secret = "test-secret"
	cfg.Session.ExpireMin = 60
	cfg.External.S3.BucketName = "guesthouse-assets"

	tokenService := token.New(cfg)

	return staffFixture{
		svc:   service.New(repo, cfg, mocks.NewOtel(), tokenService, mockS3),
		repo:  repo,
		s3:    mockS3,
		token: tokenService,
	}
}

func TestStaffService_Signup(t *testing.T) {
	f := newStaffFixture(t)

	req := dto.SignupRequest{
		EmailID:   "jane@example.com",
		Password:  "correct-horse",
		Role:      constant.RoleStaff,
		FirstName: "Jane",
	}

	var inserted model.Staff
	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
	f.repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, staff model.Staff) error {
			inserted = staff

			return nil
		})

	res, cookie, err := f.svc.Signup(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "jane@example.com", res.EmailID)
	assert.NotEqual(t, "correct-horse", inserted.Password)
	assert.NoError(t, password.Verify("correct-horse", inserted.Password))

	require.NotNil(t, cookie)
	assert.Equal(t, constant.SessionCookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)

	claims, err := f.token.Validate(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, inserted.ID, claims.StaffID)
	assert.Equal(t, constant.RoleStaff, claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestStaffService_SignupDuplicateEmail(t *testing.T) {
	f := newStaffFixture(t)

	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

	_, cookie, err := f.svc.Signup(context.Background(), dto.SignupRequest{
		EmailID:   "jane@example.com",
		Password:  "correct-horse",
		Role:      constant.RoleStaff,
		FirstName: "Jane",
	})

	assert.Error(t, err)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	assert.Nil(t, cookie)
}

func TestStaffService_SignupConcurrentDuplicateHitsConstraint(t *testing.T) {
	f := newStaffFixture(t)

	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
	f.repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(&pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeUniqueViolation), Constraint: "staffs_email_id_key"})

	_, cookie, err := f.svc.Signup(context.Background(), dto.SignupRequest{
		EmailID:   "jane@example.com",
		Password:  "correct-horse",
		Role:      constant.RoleStaff,
		FirstName: "Jane",
	})

	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	assert.EqualError(t, err, "email already registered")
	assert.Nil(t, cookie)
}

func TestStaffService_Login(t *testing.T) {
	hashed, err := password.Hash("correct-horse")
	require.NoError(t, err)

	stored := model.Staff{
		ID:       "staff-1",
		EmailID:  "jane@example.com",
		Password: hashed,
		Role:     constant.RoleAdmin,
	}

	tests := []struct {
		name        string
		req         dto.LoginRequest
		setupMock   func(f staffFixture)
		wantErr     bool
		wantCode    int
		wantMessage string
	}{
		{
			name: "successful login redirects",
			req:  dto.LoginRequest{EmailID: "jane@example.com", Password: "correct-horse"},
			setupMock: func(f staffFixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
			},
		},
		{
			name: "unknown email",
			req:  dto.LoginRequest{EmailID: "ghost@example.com", Password: "correct-horse"},
			setupMock: func(f staffFixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Staff{}, nil)
			},
			wantErr:     true,
			wantCode:    http.StatusUnauthorized,
			wantMessage: "No such Email found",
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{EmailID: "jane@example.com", Password: "incorrect-donkey"},
			setupMock: func(f staffFixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
			},
			wantErr:     true,
			wantCode:    http.StatusUnauthorized,
			wantMessage: "Wrong Password, Try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newStaffFixture(t)
			tt.setupMock(f)

			res, cookie, err := f.svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				assert.Equal(t, tt.wantMessage, err.Error())
				assert.Nil(t, cookie)

				return
			}

			require.NoError(t, err)
			assert.True(t, res.Redirect)
			assert.Equal(t, "jane@example.com", res.Staff.EmailID)

			require.NotNil(t, cookie)
			claims, err := f.token.Validate(cookie.Value)
			require.NoError(t, err)
			assert.Equal(t, constant.RoleAdmin, claims.Role)
		})
	}
}

func TestStaffService_UpdateProfileUploadFailureAborts(t *testing.T) {
	f := newStaffFixture(t)

	stored := model.Staff{ID: "staff-1", EmailID: "jane@example.com", Role: constant.RoleStaff}

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
	f.s3.EXPECT().
		UploadFile(gomock.Any(), "guesthouse-assets", model.EntityName, gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("bucket unreachable"))

	req := dto.UpdateProfileRequest{FirstName: "Janet"}
	req.Picture = &multipart.FileHeader{Filename: "me.png"}

	// Update must never be called when the upload fails.
	_, cookie, err := f.svc.UpdateProfile(context.Background(), req, "staff-1")

	assert.Error(t, err)
	assert.Nil(t, cookie)
}

func TestStaffService_UpdateProfileRefreshesSession(t *testing.T) {
	f := newStaffFixture(t)

	stored := model.Staff{ID: "staff-1", EmailID: "jane@example.com", Role: constant.RoleStaff, FirstName: "Jane"}
	updated := stored
	updated.FirstName = "Janet"

	gomock.InOrder(
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil),
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(updated, nil),
	)

	res, cookie, err := f.svc.UpdateProfile(context.Background(), dto.UpdateProfileRequest{FirstName: "Janet"}, "staff-1")
	require.NoError(t, err)

	assert.Equal(t, "Janet", res.FirstName)

	require.NotNil(t, cookie)
	claims, err := f.token.Validate(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, "staff-1", claims.StaffID)
}

func TestStaffService_GetAllExcludesAdmins(t *testing.T) {
	f := newStaffFixture(t)

	var usedFilter gDto.FilterGroup
	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Staff, error) {
			usedFilter = filter

			return []model.Staff{{ID: "staff-1", EmailID: "jane@example.com", Role: constant.RoleStaff}}, nil
		})

	res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10})
	require.NoError(t, err)

	require.Len(t, res.Staffs, 1)
	assert.Equal(t, 1, res.TotalData)

	require.Len(t, usedFilter.Filters, 1)
	filter, ok := usedFilter.Filters[0].(gDto.Filter)
	require.True(t, ok)
	assert.Equal(t, model.FieldRole, filter.Field)
	assert.Equal(t, gDto.FilterOperatorNotEq, filter.Operator)
	assert.Equal(t, constant.RoleAdmin, filter.Value)
}

func TestStaffService_DeleteByEmail(t *testing.T) {
	t.Run("deletes existing account", func(t *testing.T) {
		f := newStaffFixture(t)

		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(1), nil)

		assert.NoError(t, f.svc.DeleteByEmail(context.Background(), "jane@example.com"))
	})

	t.Run("not found when nothing was deleted", func(t *testing.T) {
		f := newStaffFixture(t)

		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(0), nil)

		err := f.svc.DeleteByEmail(context.Background(), "ghost@example.com")
		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
