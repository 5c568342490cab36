package domain

import (
	"errors"
	"time"
)

// ShipmentStatus is one step of the delivery lifecycle. The progression is
// linear (Package Pickup first, Delivered terminal) but the workflow engine
// does not force forward-only movement: operators may re-apply or skip
// statuses, and every accepted update is appended to the timeline.
type ShipmentStatus string

const (
	StatusPackagePickup    ShipmentStatus = "Package Pickup"
	StatusSortingCenter    ShipmentStatus = "Sorting Center"
	StatusInTransit        ShipmentStatus = "In Transit"
	StatusCustomsClearance ShipmentStatus = "Customs Clearance"
	StatusOutForDelivery   ShipmentStatus = "Out for Delivery"
	StatusDelivered        ShipmentStatus = "Delivered"
)

// AllStatuses lists the lifecycle steps in delivery order.
var AllStatuses = []ShipmentStatus{
	StatusPackagePickup,
	StatusSortingCenter,
	StatusInTransit,
	StatusCustomsClearance,
	StatusOutForDelivery,
	StatusDelivered,
}

var ErrShipmentNotFound = errors.New("shipment not found")
var ErrDuplicateTrackingCode = errors.New("tracking code already exists")
var ErrInvalidStatus = errors.New("invalid shipment status")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")

// IsValid reports whether s is a member of the status enumeration.
func (s ShipmentStatus) IsValid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// TimelineEntry records a single status change on a shipment.
type TimelineEntry struct {
	Status    ShipmentStatus `json:"status" bson:"status"`
	Timestamp time.Time      `json:"timestamp" bson:"timestamp"`
}

// Shipment is the core aggregate root, keyed by its tracking code.
//
// Invariants: TrackingCode is unique and immutable; Timeline is append-only
// and never empty once the shipment exists; Status always equals the status
// of the last Timeline entry; LastUpdate is the timestamp of that entry.
type Shipment struct {
	ID            string          `json:"id,omitempty" bson:"_id,omitempty"`
	TrackingCode  string          `json:"tracking_code" bson:"tracking_code"`
	SenderName    string          `json:"sender_name" bson:"sender_name"`
	ReceiverName  string          `json:"receiver_name" bson:"receiver_name"`
	ReceiverEmail string          `json:"receiver_email" bson:"receiver_email"`
	ReceiverPhone string          `json:"receiver_phone" bson:"receiver_phone"`
	Address       string          `json:"address" bson:"address"`
	Country       string          `json:"country" bson:"country"`
	Origin        string          `json:"origin" bson:"origin"`
	Destination   string          `json:"destination" bson:"destination"`
	Weight        float64         `json:"weight" bson:"weight"`
	Description   string          `json:"description" bson:"description"`
	Amount        float64         `json:"amount" bson:"amount"`
	Status        ShipmentStatus  `json:"status" bson:"status"`
	Timeline      []TimelineEntry `json:"timeline" bson:"timeline"`
	CreatedAt     time.Time       `json:"created_at" bson:"created_at"`
	LastUpdate    time.Time       `json:"last_update" bson:"last_update"`
}
