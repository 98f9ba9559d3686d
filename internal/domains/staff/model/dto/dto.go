package dto

import (
	"mime/multipart"

	"github.com/google/uuid"

	"guesthouse/internal/domains/staff/model"
	"guesthouse/shared"
	gDto "guesthouse/shared/dto"
	gModel "guesthouse/shared/model"
	"guesthouse/shared/timezone"
)

type SignupRequest struct {
	EmailID   string `json:"email_id"   validate:"required,email"`
	Password  string `json:"password"   validate:"required,min=8"`
	Role      string `json:"role"       validate:"required,oneof=admin staff"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name"  validate:"omitempty,max=100"`
	Phone     string `json:"phone"      validate:"omitempty,max=20"`
}

func (r *SignupRequest) ToModel(hashedPassword string) model.Staff {
	return model.Staff{
		ID:        uuid.NewString(),
		EmailID:   r.EmailID,
		Password:  hashedPassword,
		Role:      r.Role,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  r.EmailID,
			ModifiedBy: r.EmailID,
		},
	}
}

type LoginRequest struct {
	EmailID  string `json:"email_id" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Redirect bool          `json:"redirect"`
	Staff    StaffResponse `json:"staff"`
}

type UpdateProfileRequest struct {
	FirstName string `db:"first_name" json:"first_name" validate:"omitempty,max=100"`
	LastName  string `db:"last_name"  json:"last_name"  validate:"omitempty,max=100"`
	Phone     string `db:"phone"      json:"phone"      validate:"omitempty,max=20"`

	Picture     *multipart.FileHeader `json:"picture" validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=2"`
	PictureFile multipart.File        `json:"-"`
}

type StaffResponse struct {
	ID            string `json:"id"`
	EmailID       string `json:"email_id"`
	Role          string `json:"role"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Phone         string `json:"phone"`
	ProfilePicURL string `json:"profile_pic_url"`
	gDto.Metadata
}

func (r *StaffResponse) FromModel(model model.Staff) {
	r.ID = model.ID
	r.EmailID = model.EmailID
	r.Role = model.Role
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.Phone = model.Phone
	r.ProfilePicURL = model.ProfilePicURL
	r.Metadata.FromModel(model.Metadata)
}

type GetStaffsResponse struct {
	Staffs    []StaffResponse `json:"staffs"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetStaffsResponse) FromModels(models []model.Staff, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Staffs = make([]StaffResponse, len(models))
	for i, mod := range models {
		r.Staffs[i].FromModel(mod)
	}
}
