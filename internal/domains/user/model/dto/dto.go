package dto

import (
	"innkeeper/internal/domains/user/model"
	gDto "innkeeper/shared/dto"
)

type UserResponse struct {
	ID       string  `json:"id"`
	Email    string  `json:"email"`
	Role     string  `json:"role"`
	FullName *string `json:"full_name,omitempty"`
	Active   bool    `json:"active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.Role = model.Role
	r.FullName = model.FullName
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}
