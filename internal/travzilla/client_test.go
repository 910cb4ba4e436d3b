package travzilla_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelrbs/internal/travzilla"
)

func newTestClient(handler http.Handler) (*travzilla.Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := travzilla.NewClient(travzilla.Config{
		BaseURL:  server.URL,
		Username: "apiuser",
		Password: "apipass",
	})
	return client, server
}

func TestSearch(t *testing.T) {
	var gotPath, gotUser, gotPass string
	var captured travzilla.SearchRequest

	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, gotPass, _ = r.BasicAuth()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(travzilla.SearchResponse{
			Status: travzilla.Status{Code: "200", Description: "Successful"},
			HotelResult: []travzilla.HotelResult{
				{
					HotelCode: "1402689",
					HotelName: "Atlantis The Palm",
					Rooms: []travzilla.Room{
						{BookingCode: "BC-1", Name: "Deluxe Room", TotalFare: "1850.50"},
					},
				},
			},
		})
	}))
	defer server.Close()

	resp, err := client.Search(context.Background(), &travzilla.SearchRequest{
		CheckIn:          "2025-10-01",
		CheckOut:         "2025-10-03",
		CityCode:         "115936",
		GuestNationality: "AE",
		PaxRooms:         []travzilla.PaxRoom{{Adults: 2}},
	})

	require.NoError(t, err)
	assert.Equal(t, "/Search", gotPath)
	assert.Equal(t, "apiuser", gotUser)
	assert.Equal(t, "apipass", gotPass)
	assert.Equal(t, "115936", captured.CityCode)
	assert.True(t, resp.Status.OK())
	require.Len(t, resp.HotelResult, 1)
	assert.Equal(t, "1402689", resp.HotelResult[0].HotelCode)
	assert.InDelta(t, 1850.50, resp.HotelResult[0].Rooms[0].FareAmount(), 0.001)
}

func TestSearchEmptyResponse(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("null"))
	}))
	defer server.Close()

	_, err := client.Search(context.Background(), &travzilla.SearchRequest{CityCode: "115936"})
	assert.ErrorIs(t, err, travzilla.ErrEmptyResponse)
}

func TestSearchHTTPError(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := client.Search(context.Background(), &travzilla.SearchRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestPrebookMapsNullBodyToFailedStatus(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("null"))
	}))
	defer server.Close()

	resp, err := client.Prebook(context.Background(), &travzilla.PrebookRequest{
		BookingCode: "BC-1",
		PaymentMode: "Limit",
	})

	require.NoError(t, err)
	assert.False(t, resp.Status.OK())
	assert.Equal(t, "400", resp.Status.Code)
}

func TestBook(t *testing.T) {
	var captured travzilla.BookRequest

	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/HotelBook", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(travzilla.BookResponse{
			Status:             travzilla.Status{Code: "200", Description: "Successful"},
			ConfirmationNumber: "TRZ-88210045",
			BookingId:          "1900771",
			BookingStatus:      "Confirmed",
		})
	}))
	defer server.Close()

	age := 8
	resp, err := client.Book(context.Background(), &travzilla.BookRequest{
		BookingCode: "BC-1",
		CustomerDetails: []travzilla.CustomerDetail{
			{CustomerNames: []travzilla.CustomerName{
				{Title: "Mr", FirstName: "Ayesha", LastName: "Khan", Type: "Adult"},
				{Title: "Ms", FirstName: "Zara", LastName: "Khan", Type: "Child", Age: &age},
			}},
		},
		BookingType:        "Voucher",
		ClientReferenceId:  "20250830120000#417",
		BookingReferenceId: "HB-2025-0001",
		PaymentMode:        "Limit",
		GuestNationality:   "AE",
		TotalFare:          960.00,
		EmailId:            "guest@example.com",
		PhoneNumber:        971509876543,
	})

	require.NoError(t, err)
	assert.True(t, resp.Status.OK())
	assert.Equal(t, "TRZ-88210045", resp.ConfirmationNumber)

	// Phone goes out numeric, fare as a number
	assert.Equal(t, int64(971509876543), captured.PhoneNumber)
	assert.Equal(t, "Voucher", captured.BookingType)
	assert.Equal(t, "Limit", captured.PaymentMode)
	require.Len(t, captured.CustomerDetails, 1)
	require.Len(t, captured.CustomerDetails[0].CustomerNames, 2)
	require.NotNil(t, captured.CustomerDetails[0].CustomerNames[1].Age)
	assert.Equal(t, 8, *captured.CustomerDetails[0].CustomerNames[1].Age)
}

func TestCancel(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Cancel", r.URL.Path)
		json.NewEncoder(w).Encode(travzilla.CancelResponse{
			Status:             travzilla.Status{Code: "200", Description: "Successful"},
			ConfirmationNumber: "TRZ-88210045",
			RefundAmount:       "850.00",
			CancellationCharge: "110.00",
		})
	}))
	defer server.Close()

	resp, err := client.Cancel(context.Background(), &travzilla.CancelRequest{
		ConfirmationNumber: "TRZ-88210045",
	})

	require.NoError(t, err)
	assert.True(t, resp.Status.OK())
	assert.Equal(t, "850.00", resp.RefundAmount.String())
}

func TestCountryList(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/CountryList", r.URL.Path)
		json.NewEncoder(w).Encode(travzilla.CountryListResponse{
			Status:      travzilla.Status{Code: "200"},
			CountryList: []travzilla.Country{{Code: "AE", Name: "United Arab Emirates"}},
		})
	}))
	defer server.Close()

	resp, err := client.CountryList(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.CountryList, 1)
	assert.Equal(t, "AE", resp.CountryList[0].Code)
}

func TestStatusOK(t *testing.T) {
	assert.True(t, travzilla.Status{Code: "200"}.OK())
	assert.True(t, travzilla.Status{Code: "201"}.OK())
	assert.False(t, travzilla.Status{Code: "400"}.OK())
	assert.False(t, travzilla.Status{Code: "500"}.OK())
}
