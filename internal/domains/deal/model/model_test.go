package model_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"innkeeper/internal/domains/deal/model"
)

func TestDeal_AppliesTo(t *testing.T) {
	today := time.Date(2030, 6, 15, 0, 0, 0, 0, time.UTC)

	base := model.Deal{
		ID:              "deal-1",
		Name:            "Summer Special",
		DiscountPercent: 20,
		RoomType:        "Double",
		Status:          model.StatusOngoing,
	}

	tests := []struct {
		name    string
		mutate  func(d *model.Deal)
		room    string
		applies bool
	}{
		{
			name:    "ongoing deal for matching room type",
			mutate:  func(d *model.Deal) {},
			room:    "Double",
			applies: true,
		},
		{
			name:    "room type mismatch",
			mutate:  func(d *model.Deal) {},
			room:    "Suite",
			applies: false,
		},
		{
			name: "ALL matches every room type",
			mutate: func(d *model.Deal) {
				d.RoomType = model.RoomTypeAll
			},
			room:    "Suite",
			applies: true,
		},
		{
			name: "inactive deal never applies",
			mutate: func(d *model.Deal) {
				d.Status = model.StatusInactive
			},
			room:    "Double",
			applies: false,
		},
		{
			name: "ended deal never applies",
			mutate: func(d *model.Deal) {
				d.Status = model.StatusEnded
			},
			room:    "Double",
			applies: false,
		},
		{
			name: "deal not started yet",
			mutate: func(d *model.Deal) {
				d.StartDate = sql.NullTime{Time: today.AddDate(0, 0, 1), Valid: true}
			},
			room:    "Double",
			applies: false,
		},
		{
			name: "deal window expired",
			mutate: func(d *model.Deal) {
				d.EndDate = sql.NullTime{Time: today.AddDate(0, 0, -1), Valid: true}
			},
			room:    "Double",
			applies: false,
		},
		{
			name: "inside the date window",
			mutate: func(d *model.Deal) {
				d.StartDate = sql.NullTime{Time: today.AddDate(0, 0, -5), Valid: true}
				d.EndDate = sql.NullTime{Time: today.AddDate(0, 0, 5), Valid: true}
			},
			room:    "Double",
			applies: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deal := base
			tt.mutate(&deal)

			assert.Equal(t, tt.applies, deal.AppliesTo(tt.room, today))
		})
	}
}
