package handler

import (
	"github.com/cargoconnect/logistics-api/internal/core/domain"
	"github.com/cargoconnect/logistics-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createShipmentRequest) ports.CreateShipmentInput {
	return ports.CreateShipmentInput{
		SenderName:    req.SenderName,
		ReceiverName:  req.ReceiverName,
		ReceiverEmail: req.ReceiverEmail,
		ReceiverPhone: req.ReceiverPhone,
		Address:       req.Address,
		Country:       req.Country,
		Origin:        req.Origin,
		Destination:   req.Destination,
		Weight:        req.Weight,
		Description:   req.Description,
		Amount:        req.Amount,
		InitialStatus: req.Status,
	}
}

// --- Domain → HTTP response ---

func toTimelineResponse(entries []domain.TimelineEntry) []timelineEntryResponse {
	out := make([]timelineEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = timelineEntryResponse{
			Status:    string(e.Status),
			Timestamp: e.Timestamp.UTC(),
		}
	}
	return out
}

func toTrackResponse(s *domain.Shipment) trackResponse {
	return trackResponse{
		TrackingCode: s.TrackingCode,
		SenderName:   s.SenderName,
		ReceiverName: s.ReceiverName,
		Origin:       s.Origin,
		Destination:  s.Destination,
		Amount:       s.Amount,
		Status:       string(s.Status),
		LastUpdate:   s.LastUpdate.UTC(),
		Timeline:     toTimelineResponse(s.Timeline),
	}
}

func toShipmentResponse(s *domain.Shipment) shipmentResponse {
	return shipmentResponse{
		TrackingCode:  s.TrackingCode,
		SenderName:    s.SenderName,
		ReceiverName:  s.ReceiverName,
		ReceiverEmail: s.ReceiverEmail,
		ReceiverPhone: s.ReceiverPhone,
		Address:       s.Address,
		Country:       s.Country,
		Origin:        s.Origin,
		Destination:   s.Destination,
		Weight:        s.Weight,
		Description:   s.Description,
		Amount:        s.Amount,
		Status:        string(s.Status),
		CreatedAt:     s.CreatedAt.UTC(),
		LastUpdate:    s.LastUpdate.UTC(),
		Timeline:      toTimelineResponse(s.Timeline),
	}
}

func toListResponse(shipments []*domain.Shipment) []shipmentSummaryResponse {
	out := make([]shipmentSummaryResponse, len(shipments))
	for i, s := range shipments {
		out[i] = shipmentSummaryResponse{
			TrackingCode: s.TrackingCode,
			ReceiverName: s.ReceiverName,
			Origin:       s.Origin,
			Destination:  s.Destination,
			Status:       string(s.Status),
			CreatedAt:    s.CreatedAt.UTC(),
			LastUpdate:   s.LastUpdate.UTC(),
		}
	}
	return out
}
