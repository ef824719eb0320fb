package domain

type CarStatus string

const (
	CarStatusAvailable   CarStatus = "Available"
	CarStatusInUse       CarStatus = "In Use"
	CarStatusMaintenance CarStatus = "Maintenance"
)

func (s CarStatus) Valid() bool {
	switch s {
	case CarStatusAvailable, CarStatusInUse, CarStatusMaintenance:
		return true
	}
	return false
}

type Car struct {
	ID         int32     `json:"id"`
	Name       string    `json:"name"`
	HourlyRate int64     `json:"hourly_rate"`
	Condition  string    `json:"condition"`
	Status     CarStatus `json:"status"`
	ImgURL     string    `json:"img_url,omitempty"`
}

// SelectableFor reports whether the car may be chosen for a booking.
// currentCarID is the car already attached to the rental being edited,
// or 0 for a new booking. A car in any non-Available status stays
// selectable only when it is that current car.
func (c *Car) SelectableFor(currentCarID int32) bool {
	if c.Status == CarStatusAvailable {
		return true
	}
	return currentCarID != 0 && c.ID == currentCarID
}

// CarListing is a car annotated for a selection view.
type CarListing struct {
	Car
	Selectable bool `json:"selectable"`
	Current    bool `json:"current"`
}

// AnnotateSelectable partitions cars into selectable vs. disabled for the
// given editing context. Pass currentCarID = 0 when not editing.
func AnnotateSelectable(cars []Car, currentCarID int32) []CarListing {
	listings := make([]CarListing, 0, len(cars))
	for _, c := range cars {
		listings = append(listings, CarListing{
			Car:        c,
			Selectable: c.SelectableFor(currentCarID),
			Current:    currentCarID != 0 && c.ID == currentCarID,
		})
	}
	return listings
}
