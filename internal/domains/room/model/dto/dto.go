package dto

import (
	"mime/multipart"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"innkeeper/internal/domains/room/model"
	"innkeeper/shared"
	gDto "innkeeper/shared/dto"
	gModel "innkeeper/shared/model"
	"innkeeper/shared/timezone"
)

type CreateRoomRequest struct {
	RoomNumber  string                `json:"room_number" validate:"required,max=20"`
	Floor       string                `json:"floor"       validate:"omitempty,max=20"`
	Type        string                `json:"type"        validate:"required,max=50"`
	Price       float64               `json:"price"       validate:"required,gt=0"`
	Capacity    int                   `json:"capacity"    validate:"omitempty,min=0"`
	Description string                `json:"description" validate:"omitempty"`
	Features    []string              `json:"features"    validate:"omitempty"`
	Image       *multipart.FileHeader `json:"image"       validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile   multipart.File        `json:"-"`
	Active      *bool                 `json:"active"      validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(user string, imageURL string) model.Room {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Room{
		ID:          uuid.NewString(),
		RoomNumber:  c.RoomNumber,
		Floor:       c.Floor,
		Type:        c.Type,
		Price:       c.Price,
		Capacity:    c.Capacity,
		Description: c.Description,
		Image:       imageURL,
		Cleanliness: model.CleanlinessClean,
		Features:    pq.StringArray(c.Features),
		Active:      active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	RoomNumber  string   `db:"room_number" json:"room_number" validate:"omitempty,max=20"`
	Floor       string   `db:"floor"       json:"floor"       validate:"omitempty,max=20"`
	Type        string   `db:"type"        json:"type"        validate:"omitempty,max=50"`
	Price       *float64 `db:"price"       json:"price"       validate:"omitempty,gt=0"`
	Capacity    *int     `db:"capacity"    json:"capacity"    validate:"omitempty,min=0"`
	Description string   `db:"description" json:"description" validate:"omitempty"`
	Cleanliness string   `db:"cleanliness" json:"cleanliness" validate:"omitempty,oneof=CLEAN DIRTY OUT_OF_SERVICE"`
	Active      *bool    `db:"active"      json:"active"      validate:"omitempty"`
}

type UploadRoomImageRequest struct {
	Image     *multipart.FileHeader `json:"image" validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile multipart.File        `json:"-"`
}

type RoomResponse struct {
	ID          string   `json:"id"`
	RoomNumber  string   `json:"room_number"`
	Floor       string   `json:"floor"`
	Type        string   `json:"type"`
	Price       float64  `json:"price"`
	Capacity    int      `json:"capacity"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Cleanliness string   `json:"cleanliness"`
	Features    []string `json:"features"`
	Active      bool     `json:"active"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.Floor = model.Floor
	r.Type = model.Type
	r.Price = model.Price
	r.Capacity = model.Capacity
	r.Description = model.Description
	r.Image = model.Image
	r.Cleanliness = model.Cleanliness
	r.Features = model.Features
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
