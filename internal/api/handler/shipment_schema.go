package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createShipmentRequest struct {
	SenderName    string  `json:"sender_name"    validate:"required"`
	ReceiverName  string  `json:"receiver_name"  validate:"required"`
	ReceiverEmail string  `json:"receiver_email" validate:"omitempty,email"`
	ReceiverPhone string  `json:"receiver_phone"`
	Address       string  `json:"address"`
	Country       string  `json:"country"`
	Origin        string  `json:"origin"         validate:"required"`
	Destination   string  `json:"destination"    validate:"required"`
	Weight        float64 `json:"weight"         validate:"gte=0"`
	Description   string  `json:"description"`
	Amount        float64 `json:"amount"         validate:"gte=0"`
	Status        string  `json:"status"         validate:"omitempty,oneof='Package Pickup' 'Sorting Center' 'In Transit' 'Customs Clearance' 'Out for Delivery' Delivered"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// --- Response types ---
// These are intentionally separate from domain types so the JSON contract is
// not coupled to internal changes.

type timelineEntryResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// trackResponse is the public tracking view: no contact details beyond the
// names already shown on the tracking page.
type trackResponse struct {
	TrackingCode string                  `json:"tracking_code"`
	SenderName   string                  `json:"sender_name"`
	ReceiverName string                  `json:"receiver_name"`
	Origin       string                  `json:"origin"`
	Destination  string                  `json:"destination"`
	Amount       float64                 `json:"amount"`
	Status       string                  `json:"status"`
	LastUpdate   time.Time               `json:"last_update"`
	Timeline     []timelineEntryResponse `json:"timeline"`
}

// shipmentResponse is the full admin view, returned on create and update.
type shipmentResponse struct {
	TrackingCode  string                  `json:"tracking_code"`
	SenderName    string                  `json:"sender_name"`
	ReceiverName  string                  `json:"receiver_name"`
	ReceiverEmail string                  `json:"receiver_email"`
	ReceiverPhone string                  `json:"receiver_phone"`
	Address       string                  `json:"address"`
	Country       string                  `json:"country"`
	Origin        string                  `json:"origin"`
	Destination   string                  `json:"destination"`
	Weight        float64                 `json:"weight"`
	Description   string                  `json:"description"`
	Amount        float64                 `json:"amount"`
	Status        string                  `json:"status"`
	CreatedAt     time.Time               `json:"created_at"`
	LastUpdate    time.Time               `json:"last_update"`
	Timeline      []timelineEntryResponse `json:"timeline"`
}

// shipmentSummaryResponse is the lightweight item used in the admin list.
// It intentionally omits the timeline to keep payloads small.
type shipmentSummaryResponse struct {
	TrackingCode string    `json:"tracking_code"`
	ReceiverName string    `json:"receiver_name"`
	Origin       string    `json:"origin"`
	Destination  string    `json:"destination"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	LastUpdate   time.Time `json:"last_update"`
}

type acceptedResponse struct {
	Message string `json:"message"`
}
