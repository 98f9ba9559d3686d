package model

import "guesthouse/shared/model"

const (
	TableName  = "staffs"
	EntityName = "staff"

	FieldID            = "id"
	FieldEmailID       = "email_id"
	FieldPassword      = "password"
	FieldRole          = "role"
	FieldFirstName     = "first_name"
	FieldLastName      = "last_name"
	FieldPhone         = "phone"
	FieldProfilePicURL = "profile_pic_url"
)

// Staff is an internal account. EmailID is the unique business key every
// staff-management route addresses records by.
type Staff struct {
	ID            string `db:"id"`
	EmailID       string `db:"email_id"`
	Password      string `db:"password"`
	Role          string `db:"role"`
	FirstName     string `db:"first_name"`
	LastName      string `db:"last_name"`
	Phone         string `db:"phone"`
	ProfilePicURL string `db:"profile_pic_url"`
	model.Metadata
}
