package validator_test

import (
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"innkeeper/shared/constant"
	"innkeeper/shared/validator"
)

type createBookingPayload struct {
	RoomID    string `json:"room_id"    validate:"required,uuid"`
	Email     string `json:"email"      validate:"required,email"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name:    "valid payload",
			body:    `{"room_id":"550e8400-e29b-41d4-a716-446655440000","email":"guest@example.com","start_date":"2030-01-10"}`,
			wantErr: false,
		},
		{
			name:    "malformed json",
			body:    `{"room_id":`,
			wantErr: true,
		},
		{
			name:    "missing required field",
			body:    `{"email":"guest@example.com","start_date":"2030-01-10"}`,
			wantErr: true,
		},
		{
			name:    "invalid date format",
			body:    `{"room_id":"550e8400-e29b-41d4-a716-446655440000","email":"guest@example.com","start_date":"10-01-2030"}`,
			wantErr: true,
		},
		{
			name:    "invalid email",
			body:    `{"room_id":"550e8400-e29b-41d4-a716-446655440000","email":"not-an-email","start_date":"2030-01-10"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload createBookingPayload
			err := validator.Validate(strings.NewReader(tt.body), &payload)

			if tt.wantErr && err == nil {
				t.Error("expected an error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateStruct(t *testing.T) {
	valid := createBookingPayload{
		RoomID:    "550e8400-e29b-41d4-a716-446655440000",
		Email:     "guest@example.com",
		StartDate: "2030-01-10",
	}

	if err := validator.ValidateStruct(&valid); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	invalid := createBookingPayload{}
	if err := validator.ValidateStruct(&invalid); err == nil {
		t.Error("expected an error for empty struct, got nil")
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name    string
		field   any
		tag     string
		wantErr bool
	}{
		{
			name:    "valid uuid",
			field:   "550e8400-e29b-41d4-a716-446655440000",
			tag:     "uuid",
			wantErr: false,
		},
		{
			name:    "invalid uuid",
			field:   "not-a-uuid",
			tag:     "uuid",
			wantErr: true,
		},
		{
			name:    "valid oneof",
			field:   "CONFIRMED",
			tag:     "oneof=CONFIRMED CANCELLED COMPLETED",
			wantErr: false,
		},
		{
			name:    "invalid oneof",
			field:   "CHECKED_IN",
			tag:     "oneof=CONFIRMED CANCELLED COMPLETED",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.wantErr && err == nil {
				t.Error("expected an error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

type uploadPayload struct {
	Image multipart.FileHeader `validate:"mimetypes=image/png image/jpeg,maxfilesize=2"`
}

func fileHeader(contentType string, size int64) multipart.FileHeader {
	header := textproto.MIMEHeader{}
	header.Set(constant.RequestHeaderContentType, contentType)

	return multipart.FileHeader{
		Filename: "room.png",
		Header:   header,
		Size:     size,
	}
}

func TestFileValidation(t *testing.T) {
	tests := []struct {
		name    string
		file    multipart.FileHeader
		wantErr bool
	}{
		{
			name:    "allowed type within size limit",
			file:    fileHeader("image/png", 1024*1024),
			wantErr: false,
		},
		{
			name:    "disallowed content type",
			file:    fileHeader("application/pdf", 1024),
			wantErr: true,
		},
		{
			name:    "file too large",
			file:    fileHeader("image/jpeg", 5*1024*1024),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := uploadPayload{Image: tt.file}
			err := validator.ValidateStruct(&payload)

			if tt.wantErr && err == nil {
				t.Error("expected an error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
