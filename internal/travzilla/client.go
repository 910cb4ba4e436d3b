package travzilla

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrEmptyResponse is returned when the vendor answers HTTP 200 with a
// literal null body, which it does when a search matches nothing.
var ErrEmptyResponse = errors.New("vendor returned empty response")

// Config holds the vendor connection settings. Credentials are injected
// server-side; they never reach a client.
type Config struct {
	BaseURL  string
	Username string
	Password string
	Timeout  time.Duration
}

// Client is a thin JSON client for the Travzilla hotel API. All calls inject
// Basic Auth and forward/return vendor payloads as-is.
type Client struct {
	config     Config
	httpClient *http.Client
}

// NewClient creates a vendor API client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		config: cfg,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Search runs an availability search. Returns ErrEmptyResponse when the
// vendor found no hotels.
func (c *Client) Search(ctx context.Context, req *SearchRequest) (*SearchResponse, error) {
	var resp SearchResponse
	if err := c.post(ctx, "/Search", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// HotelDetails fetches static content for one hotel.
func (c *Client) HotelDetails(ctx context.Context, req *HotelDetailsRequest) (*HotelDetailsResponse, error) {
	var resp HotelDetailsResponse
	if err := c.post(ctx, "/Hoteldetails", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// HotelRooms fetches live room offers for one hotel.
func (c *Client) HotelRooms(ctx context.Context, req *HotelRoomRequest) (*HotelRoomResponse, error) {
	var resp HotelRoomResponse
	if err := c.post(ctx, "/HotelRoom", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Prebook locks/validates a rate for the given booking code. The vendor
// returning a null body is mapped to a failed Status so callers only have to
// check one thing.
func (c *Client) Prebook(ctx context.Context, req *PrebookRequest) (*PrebookResponse, error) {
	var resp PrebookResponse
	if err := c.post(ctx, "/Prebook", req, &resp); err != nil {
		if errors.Is(err, ErrEmptyResponse) {
			return &PrebookResponse{Status: Status{Code: "400", Description: "No prebook response received"}}, nil
		}
		return nil, err
	}
	return &resp, nil
}

// Book places the final booking. Callers must ensure this is invoked at most
// once per BookingReferenceId.
func (c *Client) Book(ctx context.Context, req *BookRequest) (*BookResponse, error) {
	var resp BookResponse
	if err := c.post(ctx, "/HotelBook", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Cancel voids a confirmed booking.
func (c *Client) Cancel(ctx context.Context, req *CancelRequest) (*CancelResponse, error) {
	var resp CancelResponse
	if err := c.post(ctx, "/Cancel", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CountryList fetches the static country list.
func (c *Client) CountryList(ctx context.Context) (*CountryListResponse, error) {
	var resp CountryListResponse
	if err := c.do(ctx, http.MethodGet, "/CountryList", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CityList fetches the city list of one country.
func (c *Client) CityList(ctx context.Context, req *CityListRequest) (*CityListResponse, error) {
	var resp CityListResponse
	if err := c.post(ctx, "/CityList", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// HotelCodeList fetches the hotel codes of one city.
func (c *Client) HotelCodeList(ctx context.Context, req *HotelCodeListRequest) (*HotelCodeListResponse, error) {
	var resp HotelCodeListResponse
	if err := c.post(ctx, "/HotelCodeList", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// BookingDetail looks up one booking at the vendor.
func (c *Client) BookingDetail(ctx context.Context, req *BookingDetailRequest) (*BookingDetailResponse, error) {
	var resp BookingDetailResponse
	if err := c.post(ctx, "/BookingDetail", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// BookingDetailsByDate lists bookings created inside a date range.
func (c *Client) BookingDetailsByDate(ctx context.Context, req *BookingDetailsByDateRequest) (*BookingDetailsByDateResponse, error) {
	var resp BookingDetailsByDateResponse
	if err := c.post(ctx, "/BookingDetailsBasedOnDate", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal vendor request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build vendor request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(c.config.Username, c.config.Password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("vendor request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read vendor response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("vendor API error: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	// The vendor answers 200 with a bare null when nothing matched.
	if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ErrEmptyResponse
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode vendor response: %w", err)
	}
	return nil
}
