package square

import (
	"context"
	"strconv"
	"time"

	httpclient "github.com/UbiShip-Limited/bItS-build-sub008/internal/client/http"

	"github.com/pkg/errors"
)

const apiVersion = "2024-06-04"

// BookingsAPI is the capability the sync job depends on. It is satisfied by
// *Client and mocked in tests.
type BookingsAPI interface {
	ListBookings(ctx context.Context, startAtMin, startAtMax time.Time) ([]Booking, error)
	GetCustomer(ctx context.Context, customerID string) (*Customer, error)
}

// Client talks to the Square Connect API.
type Client struct {
	httpClient *httpclient.HTTPClient
	locationID string
}

// NewClient creates a Square API client. The access token is attached to
// every request; retries on transient failures come from the underlying
// HTTP client.
func NewClient(baseURL, accessToken, locationID string) *Client {
	return &Client{
		httpClient: httpclient.NewHTTPClient(
			httpclient.WithBaseURL(baseURL),
			httpclient.WithDefaultHeader("Authorization", "Bearer "+accessToken),
			httpclient.WithDefaultHeader("Square-Version", apiVersion),
		),
		locationID: locationID,
	}
}

// ListBookings returns all bookings whose start time falls inside the given
// window, following pagination cursors until exhausted.
func (c *Client) ListBookings(ctx context.Context, startAtMin, startAtMax time.Time) ([]Booking, error) {
	var bookings []Booking
	cursor := ""

	for {
		options := []httpclient.RequestOption{
			httpclient.WithQueryParam("start_at_min", startAtMin.UTC().Format(time.RFC3339)),
			httpclient.WithQueryParam("start_at_max", startAtMax.UTC().Format(time.RFC3339)),
			httpclient.WithQueryParam("limit", strconv.Itoa(100)),
		}
		if c.locationID != "" {
			options = append(options, httpclient.WithQueryParam("location_id", c.locationID))
		}
		if cursor != "" {
			options = append(options, httpclient.WithQueryParam("cursor", cursor))
		}

		resp, err := c.httpClient.Get(ctx, "/v2/bookings", options...)
		if err != nil {
			return nil, errors.Wrap(err, "square: list bookings request failed")
		}

		var page listBookingsResponse
		if err := httpclient.DecodeJSON(resp, &page); err != nil {
			return nil, errors.Wrap(err, "square: list bookings response invalid")
		}
		if len(page.Errors) > 0 {
			return nil, errors.Errorf("square: list bookings returned %s (%s)", page.Errors[0].Code, page.Errors[0].Detail)
		}

		bookings = append(bookings, page.Bookings...)
		if page.Cursor == "" {
			return bookings, nil
		}
		cursor = page.Cursor
	}
}

// GetCustomer looks up a Square customer profile by id.
func (c *Client) GetCustomer(ctx context.Context, customerID string) (*Customer, error) {
	resp, err := c.httpClient.Get(ctx, "/v2/customers/"+customerID)
	if err != nil {
		return nil, errors.Wrap(err, "square: get customer request failed")
	}

	var body getCustomerResponse
	if err := httpclient.DecodeJSON(resp, &body); err != nil {
		return nil, errors.Wrap(err, "square: get customer response invalid")
	}
	if len(body.Errors) > 0 {
		return nil, errors.Errorf("square: get customer returned %s (%s)", body.Errors[0].Code, body.Errors[0].Detail)
	}

	return &body.Customer, nil
}
