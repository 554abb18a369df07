package domain

import "time"

type TableLocation string

const (
	LocationIndoor  TableLocation = "indoor"
	LocationOutdoor TableLocation = "outdoor"
	LocationTerrace TableLocation = "terrace"
)

func (l TableLocation) Valid() bool {
	switch l {
	case LocationIndoor, LocationOutdoor, LocationTerrace:
		return true
	}
	return false
}

// Table is a physical dining table. Occupancy is derived from active orders,
// not stored.
type Table struct {
	ID          int
	Number      string
	Capacity    int
	Location    TableLocation
	QRCode      *string
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	ActiveOrders  int
	LastOrderTime *time.Time
}

// DerivedStatus reports occupied/available/maintenance from the current
// active-order count and availability flag.
func (t *Table) DerivedStatus() string {
	switch {
	case t.ActiveOrders > 0:
		return "occupied"
	case t.IsAvailable:
		return "available"
	default:
		return "maintenance"
	}
}

// ActiveStatuses are the fulfillment statuses that keep a table occupied and
// block table/customer deletion.
var ActiveStatuses = []Status{StatusPending, StatusConfirmed, StatusPreparing, StatusReady}
