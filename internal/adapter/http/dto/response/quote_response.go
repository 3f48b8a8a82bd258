package response

import (
	"time"

	"pintura_xpto/internal/domain/pricing"
	"pintura_xpto/internal/usecase"
)

type LineItemResponse struct {
	Category string  `json:"category"`
	Name     string  `json:"name"`
	Basis    string  `json:"basis"`
	Cost     float64 `json:"cost"`

	RoomID   string `json:"room_id,omitempty"`
	RoomName string `json:"room_name,omitempty"`
}

type RoomResultResponse struct {
	RoomID   string             `json:"room_id"`
	RoomName string             `json:"room_name"`
	Items    []LineItemResponse `json:"items"`
	Total    float64            `json:"total"`
}

type InteriorQuoteResponse struct {
	Rooms     []RoomResultResponse `json:"rooms"`
	Items     []LineItemResponse   `json:"items"`
	Subtotal  float64              `json:"subtotal"`
	SetupFee  float64              `json:"setup_fee"`
	Total     float64              `json:"total"`
	RoomCount int                  `json:"room_count"`
	Warnings  []string             `json:"warnings,omitempty"`

	CalculatedAt time.Time `json:"calculated_at"`
}

type ExteriorBreakdownResponse struct {
	HeightMultiplier     float64 `json:"height_multiplier"`
	DifficultyAdjustment float64 `json:"difficulty_adjustment"`
	FlakingAdjustment    float64 `json:"flaking_adjustment"`
	TotalMultiplier      float64 `json:"total_multiplier"`

	BaseCalculation float64 `json:"base_calculation"`
	AfterCoats      float64 `json:"after_coats"`
	AddOns          float64 `json:"add_ons"`
	FullTotal       float64 `json:"full_total"`
	FinalTotal      float64 `json:"final_total"`
}

type ExteriorQuoteResponse struct {
	JobID     string                    `json:"job_id,omitempty"`
	Items     []LineItemResponse        `json:"items"`
	Breakdown ExteriorBreakdownResponse `json:"breakdown"`
	Total     float64                   `json:"total"`

	CalculatedAt time.Time `json:"calculated_at"`
}

func fromLineItems(items []pricing.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, LineItemResponse{
			Category: string(it.Category),
			Name:     it.Name,
			Basis:    it.Basis,
			Cost:     it.Cost,
			RoomID:   it.RoomID,
			RoomName: it.RoomName,
		})
	}
	return out
}

func FromInteriorQuote(q usecase.InteriorQuote) InteriorQuoteResponse {
	rooms := make([]RoomResultResponse, 0, len(q.Result.Rooms))
	for _, room := range q.Result.Rooms {
		rooms = append(rooms, RoomResultResponse{
			RoomID:   room.RoomID,
			RoomName: room.RoomName,
			Items:    fromLineItems(room.Items),
			Total:    room.Total,
		})
	}

	return InteriorQuoteResponse{
		Rooms:        rooms,
		Items:        fromLineItems(q.Result.Items),
		Subtotal:     q.Result.Subtotal,
		SetupFee:     q.Result.SetupFee,
		Total:        q.Result.Total,
		RoomCount:    q.Result.RoomCount,
		Warnings:     q.Result.Warnings,
		CalculatedAt: q.CalculatedAt,
	}
}

func FromExteriorQuote(q usecase.ExteriorQuote) ExteriorQuoteResponse {
	b := q.Result.Breakdown
	return ExteriorQuoteResponse{
		JobID: q.Result.JobID,
		Items: fromLineItems(q.Result.Items),
		Breakdown: ExteriorBreakdownResponse{
			HeightMultiplier:     b.HeightMultiplier,
			DifficultyAdjustment: b.DifficultyAdjustment,
			FlakingAdjustment:    b.FlakingAdjustment,
			TotalMultiplier:      b.TotalMultiplier,
			BaseCalculation:      b.BaseCalculation,
			AfterCoats:           b.AfterCoats,
			AddOns:               b.AddOns,
			FullTotal:            b.FullTotal,
			FinalTotal:           b.FinalTotal,
		},
		Total:        q.Result.Total,
		CalculatedAt: q.CalculatedAt,
	}
}
