// internal/domain/entity/boarding_pass.go
package entity

import (
	"time"
)

// BoardingPass is one issued pass. QR and Barcode stay empty until the
// artifact step commits.
type BoardingPass struct {
	ID            string    `bson:"_id" json:"id"`
	Airline       string    `bson:"airline" json:"airline"`
	FlightNumber  string    `bson:"flightNumber" json:"flightNumber"`
	Origin        string    `bson:"origin" json:"origin"`
	Destination   string    `bson:"destination" json:"destination"`
	Connection    *string   `bson:"connection" json:"connection"` // nil when the batch has no layover
	Seat          string    `bson:"seat" json:"seat"`
	PassengerName string    `bson:"passengerName,omitempty" json:"passengerName,omitempty"`
	QR            string    `bson:"qr,omitempty" json:"qr,omitempty"`
	Barcode       string    `bson:"barcode,omitempty" json:"barcode,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// HasArtifacts reports whether both images have been attached
func (p *BoardingPass) HasArtifacts() bool {
	return p.QR != "" && p.Barcode != ""
}

// ConnectionCode returns the layover airport code or an empty string
func (p *BoardingPass) ConnectionCode() string {
	if p.Connection == nil {
		return ""
	}
	return *p.Connection
}

// Artifacts holds the rendered images for a pass
type Artifacts struct {
	QR      string
	Barcode string
}

// IssueRequest is the input of a batch issuance
type IssueRequest struct {
	Count         int    `json:"count"`
	Email         string `json:"email"`
	PassengerName string `json:"passengerName,omitempty"`
}

const (
	MinBatchSize = 1
	MaxBatchSize = 5
)
