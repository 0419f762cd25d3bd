package model

// Booking is the client-side projection of a confirmed booking. Like
// TimeSlot it is transient: refetched on demand, discarded after rendering.
type Booking struct {
	BookingID   string `json:"bookingId"`
	RangeTypeID string `json:"rangeTypeId"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	BookingTime string `json:"bookingTime"`
	LaneCode    string `json:"laneCode"`
	UserName    string `json:"userName,omitempty"`
	UserEmail   string `json:"userEmail,omitempty"`
	Status      string `json:"status,omitempty"`
}
