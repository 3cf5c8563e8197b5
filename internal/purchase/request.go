package purchase

import "strconv"

// Request is an immutable purchase request passed through the approval chain.
type Request struct {
	amount  float64
	number  int64
	purpose string
}

// NewRequest builds a request. Amounts are not validated.
func NewRequest(amount float64, number int64, purpose string) Request {
	return Request{amount: amount, number: number, purpose: purpose}
}

// Amount returns the requested amount.
func (r Request) Amount() float64 {
	return r.amount
}

// Number returns the purchase order number.
func (r Request) Number() int64 {
	return r.number
}

// Purpose returns the free-form purpose text.
func (r Request) Purpose() string {
	return r.purpose
}

// FormatAmount renders an amount with the shortest exact representation.
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
