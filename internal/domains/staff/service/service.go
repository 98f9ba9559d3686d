package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"guesthouse/config"
	"guesthouse/infras/otel"
	"guesthouse/infras/s3"
	"guesthouse/infras/token"
	"guesthouse/internal/domains/staff/model"
	"guesthouse/internal/domains/staff/model/dto"
	"guesthouse/internal/domains/staff/repository"
	"guesthouse/shared"
	"guesthouse/shared/constant"
	gDto "guesthouse/shared/dto"
	"guesthouse/shared/failure"
	"guesthouse/shared/password"
)

// Staff implements the account lifecycle behind the staff-management pages.
// Operations that change the caller's identity return the refreshed session
// cookie alongside the payload.
type Staff interface {
	Signup(ctx context.Context, req dto.SignupRequest) (dto.StaffResponse, *http.Cookie, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, *http.Cookie, error)
	UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest, staffID string) (dto.StaffResponse, *http.Cookie, error)
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetStaffsResponse, error)
	GetByEmail(ctx context.Context, emailID string) (dto.StaffResponse, error)
	DeleteByEmail(ctx context.Context, emailID string) error
}

type serviceImpl struct {
	repo         repository.Staff
	cfg          *config.Config
	otel         otel.Otel
	tokenService token.Token
	s3           s3.S3
}

func New(repo repository.Staff, cfg *config.Config, otel otel.Otel, tokenService token.Token, s3 s3.S3) Staff {
	return &serviceImpl{
		repo:         repo,
		cfg:          cfg,
		otel:         otel,
		tokenService: tokenService,
		s3:           s3,
	}
}

func emailFilter(emailID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEmailID,
				Operator: gDto.FilterOperatorEq,
				Value:    emailID,
				Table:    model.TableName,
			},
		},
	}
}

func (s *serviceImpl) Signup(ctx context.Context, req dto.SignupRequest) (res dto.StaffResponse, cookie *http.Cookie, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Signup")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.repo.Exist(ctx, emailFilter(req.EmailID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if staff exists")

		return res, nil, fmt.Errorf("failed to check if staff exists: %w", err)
	}

	if exists {
		return res, nil, failure.Conflict("email already registered") // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	staff := req.ToModel(hashedPassword)

	if err = s.repo.Insert(ctx, staff); err != nil {
		// A concurrent signup can slip past the Exist pre-check and land on
		// the email unique constraint instead.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return res, nil, failure.Conflict("email already registered") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create staff")

		return res, nil, fmt.Errorf("failed to create staff: %w", err)
	}

	cookie, err = s.issueSession(staff)
	if err != nil {
		return res, nil, err
	}

	res.FromModel(staff)

	return res, cookie, nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, cookie *http.Cookie, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	staff, err := s.repo.Get(ctx, emailFilter(req.EmailID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff")

		return res, nil, fmt.Errorf("failed to get staff: %w", err)
	}

	if staff.ID == constant.Empty {
		log.Warn().Str("email", req.EmailID).Msg("login attempt with non-existent email")

		return res, nil, failure.Unauthorized("No such Email found") // nolint:wrapcheck
	}

	if err := password.Verify(req.Password, staff.Password); err != nil {
		log.Warn().Str("email", req.EmailID).Msg("login attempt with wrong password")

		return res, nil, failure.Unauthorized("Wrong Password, Try again.") // nolint:wrapcheck
	}

	cookie, err = s.issueSession(staff)
	if err != nil {
		return res, nil, err
	}

	res.Redirect = true
	res.Staff.FromModel(staff)

	return res, cookie, nil
}

// UpdateProfile uploads the new picture before touching the record: a failed
// upload aborts the whole update. The refreshed cookie reflects the record as
// stored.
func (s *serviceImpl) UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest, staffID string) (res dto.StaffResponse, cookie *http.Cookie, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateProfile")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(staffID, model.FieldID, model.TableName)

	staff, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff")

		return res, nil, fmt.Errorf("failed to get staff: %w", err)
	}

	if staff.ID == constant.Empty {
		return res, nil, failure.NotFound("staff not found") // nolint:wrapcheck
	}

	bucketName := s.cfg.External.S3.BucketName

	pictureURL := constant.Empty
	var uploadedObjectName string
	if req.Picture != nil {
		filename := uuid.NewString()

		// Keep the original extension
		parts := strings.Split(req.Picture.Filename, ".")
		if len(parts) > 1 {
			filename = fmt.Sprintf("%s.%s", filename, parts[len(parts)-1])
		}

		url, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, req.PictureFile, req.Picture, filename)
		if err != nil {
			log.Error().Err(err).Msg("failed to upload profile picture")

			return res, nil, fmt.Errorf("failed to upload profile picture: %w", err)
		}
		pictureURL = url
		uploadedObjectName = filename
	}

	updatedFields := shared.TransformFields(req, staff.EmailID)
	if pictureURL != constant.Empty {
		updatedFields[model.FieldProfilePicURL] = pictureURL
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update staff")

		// Cleanup: delete newly uploaded picture if DB update fails
		if uploadedObjectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, uploadedObjectName)
		}

		return res, nil, fmt.Errorf("failed to update staff: %w", err)
	}

	// Delete old picture if update succeeded and a new one was uploaded
	if pictureURL != constant.Empty && staff.ProfilePicURL != constant.Empty {
		oldObjectName := s.s3.GetObjectNameFromURL(bucketName, staff.ProfilePicURL)
		if oldObjectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, oldObjectName)
		}
	}

	updated, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to reload staff")

		return res, nil, fmt.Errorf("failed to reload staff: %w", err)
	}

	cookie, err = s.issueSession(updated)
	if err != nil {
		return res, nil, err
	}

	res.FromModel(updated)

	return res, cookie, nil
}

// GetAll lists every non-admin account. The admin gate happens at the
// middleware; this listing never includes admins regardless of caller.
func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetStaffsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllStaff")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRole,
				Operator: gDto.FilterOperatorNotEq,
				Value:    constant.RoleAdmin,
				Table:    model.TableName,
			},
		},
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count staff")

		return res, fmt.Errorf("failed to count staff: %w", err)
	}

	staffs, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff listing")

		return res, fmt.Errorf("failed to get staff listing: %w", err)
	}

	res.FromModels(staffs, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) GetByEmail(ctx context.Context, emailID string) (res dto.StaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetStaffByEmail")
	defer scope.End()
	defer scope.TraceIfError(err)

	staff, err := s.repo.Get(ctx, emailFilter(emailID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff by email")

		return res, fmt.Errorf("failed to get staff by email: %w", err)
	}

	if staff.ID == constant.Empty {
		return res, failure.NotFound("No such Email found") // nolint:wrapcheck
	}

	res.FromModel(staff)

	return res, nil
}

func (s *serviceImpl) DeleteByEmail(ctx context.Context, emailID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteStaffByEmail")
	defer scope.End()
	defer scope.TraceIfError(err)

	rows, err := s.repo.Delete(ctx, emailFilter(emailID))
	if err != nil {
		log.Error().Err(err).Msg("failed to delete staff")

		return fmt.Errorf("failed to delete staff: %w", err)
	}

	if rows == 0 {
		return failure.NotFound("No such Email found") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) issueSession(staff model.Staff) (*http.Cookie, error) {
	signed, expiresAt, err := s.tokenService.Generate(staff.ID, staff.EmailID, staff.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate session token")

		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	return s.tokenService.SessionCookie(signed, expiresAt), nil
}
