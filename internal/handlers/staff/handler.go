package staff

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"guesthouse/infras/otel"
	"guesthouse/internal/domains/staff/model/dto"
	"guesthouse/internal/domains/staff/service"
	"guesthouse/shared/constant"
	gDto "guesthouse/shared/dto"
	"guesthouse/shared/failure"
	"guesthouse/shared/validator"
	"guesthouse/transport/http/middleware"
	"guesthouse/transport/http/response"
)

type Handler struct {
	service service.Staff
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.Staff, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/staff", func(routerGroup chi.Router) {
		routerGroup.Post("/signup", handler.Signup)
		routerGroup.Post("/login", handler.Login)

		routerGroup.Group(func(sessionGroup chi.Router) {
			sessionGroup.Use(handler.auth.Session)

			sessionGroup.Patch("/", handler.UpdateProfile)

			sessionGroup.Group(func(adminGroup chi.Router) {
				adminGroup.Use(handler.auth.AdminOnly)

				adminGroup.Get("/", handler.GetStaffs)
				adminGroup.Get("/{emailId}", handler.GetStaffByEmail)
				adminGroup.Delete("/{emailId}", handler.DeleteStaffByEmail)
			})
		})
	})
}

// Signup registers a staff account.
// @Summary Register a staff account
// @Description Create a staff account and start a session for it.
// @Tags Staff
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "Account details"
// @Success 201 {object} response.Data[dto.StaffResponse] "Created account"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/staff/signup [post]
func (handler *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Signup")
	defer scope.End()

	var req dto.SignupRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	staff, cookie, err := handler.service.Signup(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to sign up staff")

		response.WithError(w, err)

		return
	}

	http.SetCookie(w, cookie)

	scope.AddEvent("Staff signed up successfully")

	response.WithJSON(w, http.StatusCreated, staff)
}

// Login starts a staff session.
// @Summary Log a staff account in
// @Description Verify the credentials and set the session cookie.
// @Tags Staff
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} response.Data[dto.LoginResponse] "Session started"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/staff/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	var req dto.LoginRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, cookie, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed login attempt")

		response.WithError(w, err)

		return
	}

	http.SetCookie(w, cookie)

	scope.AddEvent("Staff logged in successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateProfile updates the caller's profile and picture.
// @Summary Update the staff profile
// @Description Update profile fields and optionally replace the profile picture, then refresh the session cookie.
// @Tags Staff
// @Accept multipart/form-data
// @Produce json
// @Param profileData formData string false "Profile fields as JSON"
// @Param picture formData file false "Profile picture"
// @Success 200 {object} response.Data[dto.StaffResponse] "Updated account"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/staff [patch]
func (handler *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProfile")
	defer scope.End()

	staffID, _ := ctx.Value(constant.ContextKeyStaffID).(string)
	if staffID == constant.Empty {
		response.WithError(w, failure.ErrUnauthorizedAccess)

		return
	}

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, err)

		return
	}

	var req dto.UpdateProfileRequest
	if profileData := r.FormValue("profileData"); profileData != constant.Empty {
		if err := validator.Validate(strings.NewReader(profileData), &req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate profile data")

			response.WithError(w, err)

			return
		}
	}

	file, fileHeader, err := r.FormFile("picture")
	if err == nil {
		req.Picture = fileHeader
		req.PictureFile = file

		defer file.Close()

		if err := validator.ValidateStruct(&req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate picture")

			response.WithError(w, err)

			return
		}
	}

	staff, cookie, err := handler.service.UpdateProfile(ctx, req, staffID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update staff profile")

		response.WithError(w, err)

		return
	}

	http.SetCookie(w, cookie)

	scope.AddEvent("Staff profile updated successfully")

	response.WithJSON(w, http.StatusOK, staff)
}

// GetStaffs lists all non-admin staff accounts.
// @Summary List staff accounts
// @Description List every staff account except admins. Admin session required.
// @Tags Staff
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetStaffsResponse] "Staff listing"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/staff [get]
func (handler *Handler) GetStaffs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStaffs")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	staffs, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get staff listing")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Staff listing retrieved successfully")

	response.WithJSON(w, http.StatusOK, staffs)
}

// GetStaffByEmail retrieves one staff account by email.
// @Summary Get a staff account by email
// @Description Retrieve a staff account by its email. Admin session required.
// @Tags Staff
// @Accept json
// @Produce json
// @Param emailId path string true "Staff email"
// @Success 200 {object} response.Data[dto.StaffResponse] "Staff account"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/staff/{emailId} [get]
func (handler *Handler) GetStaffByEmail(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStaffByEmail")
	defer scope.End()

	emailID := chi.URLParam(r, constant.RequestParamEmailID)

	staff, err := handler.service.GetByEmail(ctx, emailID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get staff by email")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Staff retrieved successfully")

	response.WithJSON(w, http.StatusOK, staff)
}

// DeleteStaffByEmail removes one staff account by email.
// @Summary Delete a staff account by email
// @Description Delete a staff account by its email. Admin session required.
// @Tags Staff
// @Accept json
// @Produce json
// @Param emailId path string true "Staff email"
// @Success 200 {object} response.Message "Staff deleted successfully"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/staff/{emailId} [delete]
func (handler *Handler) DeleteStaffByEmail(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteStaffByEmail")
	defer scope.End()

	emailID := chi.URLParam(r, constant.RequestParamEmailID)

	if err := handler.service.DeleteByEmail(ctx, emailID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete staff")

		response.WithError(w, err)

		return
	}

	admin, _ := ctx.Value(constant.ContextKeyStaffEmail).(string)
	scope.AddEvent("Staff deleted successfully by " + admin)

	response.WithMessage(w, http.StatusOK, "Staff deleted successfully")
}
