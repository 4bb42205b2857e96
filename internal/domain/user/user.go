package user

import (
	"github.com/medcare-africa/medcare-api/internal/domain"
)

// User is a member of the system: admin, doctor or patient. Role-specific
// attributes are optional and empty for other roles. Users are created only
// by the seed data; there is no signup flow.
type User struct {
	ID    int         `json:"id"`
	Email string      `json:"email"`
	Name  string      `json:"name"`
	Role  domain.Role `json:"role"`

	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`

	// Doctor attributes
	Specialization string `json:"specialization,omitempty"`
	License        string `json:"license,omitempty"`
	Department     string `json:"department,omitempty"`

	// Patient attributes
	DateOfBirth      string   `json:"dateOfBirth,omitempty"`
	BloodType        string   `json:"bloodType,omitempty"`
	Allergies        []string `json:"allergies,omitempty"`
	EmergencyContact string   `json:"emergencyContact,omitempty"`

	// Password is never serialized. Seed data never sets it, but the
	// redaction contract holds regardless: no response may carry it.
	Password string `json:"-"`
}

// Redacted returns a copy safe to hand out in API responses.
func (u *User) Redacted() *User {
	cp := *u
	cp.Password = ""
	return &cp
}

// UpdateUserCommand applies a merge-update: only non-nil fields overwrite
// the stored record. The record's ID is pinned and cannot be changed.
type UpdateUserCommand struct {
	Email            *string
	Name             *string
	Role             *domain.Role
	Phone            *string
	Address          *string
	Specialization   *string
	License          *string
	Department       *string
	DateOfBirth      *string
	BloodType        *string
	Allergies        *[]string
	EmergencyContact *string
}

func (u *User) Apply(cmd *UpdateUserCommand) {
	if cmd.Email != nil {
		u.Email = *cmd.Email
	}
	if cmd.Name != nil {
		u.Name = *cmd.Name
	}
	if cmd.Role != nil {
		u.Role = *cmd.Role
	}
	if cmd.Phone != nil {
		u.Phone = *cmd.Phone
	}
	if cmd.Address != nil {
		u.Address = *cmd.Address
	}
	if cmd.Specialization != nil {
		u.Specialization = *cmd.Specialization
	}
	if cmd.License != nil {
		u.License = *cmd.License
	}
	if cmd.Department != nil {
		u.Department = *cmd.Department
	}
	if cmd.DateOfBirth != nil {
		u.DateOfBirth = *cmd.DateOfBirth
	}
	if cmd.BloodType != nil {
		u.BloodType = *cmd.BloodType
	}
	if cmd.Allergies != nil {
		u.Allergies = *cmd.Allergies
	}
	if cmd.EmergencyContact != nil {
		u.EmergencyContact = *cmd.EmergencyContact
	}
}
