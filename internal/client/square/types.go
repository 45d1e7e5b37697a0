package square

// Booking is a Square Bookings API booking as returned by the query API.
type Booking struct {
	ID                  string               `json:"id"`
	Version             int                  `json:"version"`
	Status              string               `json:"status"`
	CreatedAt           string               `json:"created_at"`
	UpdatedAt           string               `json:"updated_at"`
	StartAt             string               `json:"start_at"`
	LocationID          string               `json:"location_id"`
	CustomerID          string               `json:"customer_id"`
	SellerNote          string               `json:"seller_note"`
	AppointmentSegments []AppointmentSegment `json:"appointment_segments"`
}

// AppointmentSegment is one service segment of a booking.
type AppointmentSegment struct {
	DurationMinutes    int    `json:"duration_minutes"`
	ServiceVariationID string `json:"service_variation_id"`
	TeamMemberID       string `json:"team_member_id"`
}

// Customer is a Square customer profile.
type Customer struct {
	ID           string `json:"id"`
	GivenName    string `json:"given_name"`
	FamilyName   string `json:"family_name"`
	EmailAddress string `json:"email_address"`
	PhoneNumber  string `json:"phone_number"`
}

type listBookingsResponse struct {
	Bookings []Booking    `json:"bookings"`
	Cursor   string       `json:"cursor"`
	Errors   []apiError   `json:"errors"`
}

type getCustomerResponse struct {
	Customer Customer   `json:"customer"`
	Errors   []apiError `json:"errors"`
}

type apiError struct {
	Category string `json:"category"`
	Code     string `json:"code"`
	Detail   string `json:"detail"`
}
