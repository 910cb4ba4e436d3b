package telr

// Gateway order status codes, as returned by the status-check call.
const (
	StatusBlocked    = -2
	StatusCancelled  = -1
	StatusNotPaid    = 0
	StatusPending    = 1
	StatusDeclined   = 2
	StatusAuthorised = 3
	StatusVoid       = 4
	StatusCredited   = 5
	StatusSettled    = 6
	StatusRefunded   = 7
)

// StatusText maps a gateway status code to a readable label.
func StatusText(code int) string {
	switch code {
	case StatusBlocked:
		return "Blocked"
	case StatusCancelled:
		return "Cancelled"
	case StatusNotPaid:
		return "Not Paid"
	case StatusPending:
		return "Pending"
	case StatusDeclined:
		return "Declined"
	case StatusAuthorised:
		return "Authorised"
	case StatusVoid:
		return "Void"
	case StatusCredited:
		return "Credited"
	case StatusSettled:
		return "Settled"
	case StatusRefunded:
		return "Refunded"
	default:
		return "Unknown"
	}
}

// CustomerName carries the cardholder name fields.
type CustomerName struct {
	Forenames string `json:"forenames"`
	Surname   string `json:"surname"`
}

// CustomerAddress carries the billing address fields.
type CustomerAddress struct {
	Line1   string `json:"line1"`
	City    string `json:"city"`
	Country string `json:"country"` // ISO country code
}

// Customer is the payer sent with an order-creation call.
type Customer struct {
	Ref     string          `json:"ref"`
	Email   string          `json:"email"`
	Name    CustomerName    `json:"name"`
	Address CustomerAddress `json:"address"`
	Phone   string          `json:"phone"`
}

// ReturnURLs are where the hosted payment page sends the customer back.
type ReturnURLs struct {
	Authorised string `json:"authorised"`
	Declined   string `json:"declined"`
	Cancelled  string `json:"cancelled"`
}

// CreateOrderParams is the operator-side input for creating a gateway order.
type CreateOrderParams struct {
	CartID      string
	Amount      string // already formatted to 2 decimals
	Currency    string
	Description string
	Customer    Customer
	ReturnURLs  ReturnURLs
}

type orderSection struct {
	CartID      string `json:"cartid"`
	Test        string `json:"test"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
	TranType    string `json:"trantype"`
}

// createRequest is the wire shape of a "create" call.
type createRequest struct {
	Method   string       `json:"method"`
	Store    string       `json:"store"`
	AuthKey  string       `json:"authkey"`
	Framed   int          `json:"framed"`
	Language string       `json:"language"`
	Order    orderSection `json:"order"`
	Customer Customer     `json:"customer"`
	Return   ReturnURLs   `json:"return"`
}

// checkRequest is the wire shape of a "check" call.
type checkRequest struct {
	Method  string `json:"method"`
	Store   string `json:"store"`
	AuthKey string `json:"authkey"`
	Order   struct {
		Ref string `json:"ref"`
	} `json:"order"`
}

// OrderStatus is the numeric/text status pair of an order.
type OrderStatus struct {
	Code int    `json:"code"`
	Text string `json:"text"`
}

// Transaction describes the gateway-side transaction of an order.
type Transaction struct {
	Ref     string `json:"ref"`
	Type    string `json:"type"`
	Class   string `json:"class"`
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CardType names the card scheme.
type CardType struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// Card is the (masked) card metadata of a completed payment.
type Card struct {
	Last4 string   `json:"last4"`
	Type  CardType `json:"type"`
}

// Order is the gateway's view of a payment order. On creation only Ref, URL
// and the echo fields are set; on a status check Status/Transaction/Card are
// populated.
type Order struct {
	Ref         string       `json:"ref"`
	URL         string       `json:"url,omitempty"`
	CartID      string       `json:"cartid"`
	Test        int          `json:"test"`
	Amount      string       `json:"amount"`
	Currency    string       `json:"currency"`
	Description string       `json:"description"`
	Status      *OrderStatus `json:"status,omitempty"`
	Transaction *Transaction `json:"transaction,omitempty"`
	PayMethod   string       `json:"paymethod,omitempty"`
	Card        *Card        `json:"card,omitempty"`
}

// Response is the gateway's envelope for both create and check calls.
type Response struct {
	Method string `json:"method"`
	Trace  string `json:"trace"`
	Order  *Order `json:"order,omitempty"`
	Error  *struct {
		Message string `json:"message"`
		Note    string `json:"note"`
	} `json:"error,omitempty"`
}
