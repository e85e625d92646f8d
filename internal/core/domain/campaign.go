package domain

import "time"

// FixedCampaign is a pre-provisioned traffic channel in the external ad
// tracker, maintained by operators. The engine never creates or disables
// these; it only binds offers to them. ExternalID is the tracker-side
// campaign id.
type FixedCampaign struct {
	ID         int64
	ExternalID int64
	Name       string
	GeoKey     string
	Active     bool
	Priority   int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// BindingStatus is the local delivery state of one order-to-campaign
// binding. StatusUnknown is only ever produced by aggregation over zero
// bindings; it is never stored.
type BindingStatus string

const (
	BindingActive  BindingStatus = "ACTIVE"
	BindingStopped BindingStatus = "STOPPED"
	StatusUnknown  BindingStatus = "UNKNOWN"
)

// CampaignBinding joins one order to one fixed campaign once the shared
// offer has been successfully assigned to that campaign. Rows are created
// only on successful assignment, mutated by stats refresh and stop/resume,
// and never deleted.
type CampaignBinding struct {
	ID                 int64
	OrderID            int64
	ExternalCampaignID int64
	OfferID            string
	RequiredClicks     int64
	Clicks             int64
	Conversions        int64
	Cost               float64
	Revenue            float64
	Active             bool
	Status             BindingStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
