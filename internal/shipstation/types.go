package shipstation

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

func init() {
	// The upstream API reads and writes money fields as bare JSON
	// numbers; shopspring quotes them by default, which the full-order
	// update endpoint must never see.
	decimal.MarshalJSONWithoutQuotes = true
}

// Status is an upstream order status.
type Status string

const (
	StatusAwaitingPayment  Status = "awaiting_payment"
	StatusAwaitingShipment Status = "awaiting_shipment"
	StatusShipped          Status = "shipped"
	StatusOnHold           Status = "on_hold"
	StatusCancelled        Status = "cancelled"
)

// Statuses lists every status the upstream service reports, in its
// canonical order.
var Statuses = []Status{
	StatusAwaitingPayment,
	StatusAwaitingShipment,
	StatusShipped,
	StatusOnHold,
	StatusCancelled,
}

// Valid reports whether s is a known order status.
func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Tag is an entry in the upstream tag catalog.
type Tag struct {
	TagID int64  `json:"tagId"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// TagIDSet is an order's tag membership, normalized to bare identifiers.
//
// The upstream API is inconsistent about the wire shape: tagIds arrives
// either as bare integers or as {tagId, name} records depending on the
// endpoint. Normalization happens once, here, on unmarshal; business logic
// only ever sees []int64.
type TagIDSet []int64

// taggedRecord is the object form of a tag membership entry.
type taggedRecord struct {
	TagID int64 `json:"tagId"`
}

// UnmarshalJSON accepts null, a list of integers, or a list of
// {tagId, name} records.
func (s *TagIDSet) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if string(data) == "null" {
		*s = nil
		return nil
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("tagIds: %w", err)
	}

	ids := make(TagIDSet, 0, len(raw))
	for _, elem := range raw {
		var id int64
		if err := json.Unmarshal(elem, &id); err == nil {
			ids = append(ids, id)
			continue
		}
		var rec taggedRecord
		if err := json.Unmarshal(elem, &rec); err != nil {
			return fmt.Errorf("tagIds: unrecognized element %s", elem)
		}
		ids = append(ids, rec.TagID)
	}
	*s = ids
	return nil
}

// MarshalJSON always emits the bare-integer form, which the order update
// endpoint accepts.
func (s TagIDSet) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	return json.Marshal([]int64(s))
}

// Has reports membership of id in the set.
func (s TagIDSet) Has(id int64) bool {
	for _, have := range s {
		if have == id {
			return true
		}
	}
	return false
}

// Address is a ship-to or bill-to address. Only Name participates in
// matching; the rest is carried for display and round-trip.
type Address struct {
	Name       string `json:"name"`
	Company    string `json:"company,omitempty"`
	Street1    string `json:"street1,omitempty"`
	Street2    string `json:"street2,omitempty"`
	Street3    string `json:"street3,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

// Item is one order line.
type Item struct {
	OrderItemID       int64           `json:"orderItemId,omitempty"`
	LineItemKey       string          `json:"lineItemKey,omitempty"`
	SKU               string          `json:"sku"`
	Name              string          `json:"name"`
	Quantity          int             `json:"quantity"`
	UnitPrice         decimal.Decimal `json:"unitPrice"`
	WarehouseLocation string          `json:"warehouseLocation,omitempty"`
	Options           json.RawMessage `json:"options,omitempty"`
	ProductID         int64           `json:"productId,omitempty"`
	UPC               string          `json:"upc,omitempty"`
}

// Shipment is the tracking record attached to a shipped order.
type Shipment struct {
	TrackingNumber string `json:"trackingNumber"`
	CarrierCode    string `json:"carrierCode"`
}

// Order is an upstream order record.
//
// OrderID is the service-assigned identifier used in mutation calls;
// OrderNumber is the human-facing number used in search and display. Both
// are immutable. Fields this tool never interprets are kept as
// json.RawMessage so a full-order update does not drop them.
type Order struct {
	OrderID        int64           `json:"orderId"`
	OrderNumber    string          `json:"orderNumber"`
	OrderKey       string          `json:"orderKey,omitempty"`
	OrderDate      string          `json:"orderDate,omitempty"`
	CreateDate     string          `json:"createDate,omitempty"`
	ShipByDate     string          `json:"shipByDate,omitempty"`
	ShipDate       string          `json:"shipDate,omitempty"`
	OrderStatus    Status          `json:"orderStatus"`
	CustomerEmail  string          `json:"customerEmail,omitempty"`
	BillTo         json.RawMessage `json:"billTo,omitempty"`
	ShipTo         Address         `json:"shipTo"`
	Items          []Item          `json:"items,omitempty"`
	OrderTotal     decimal.Decimal `json:"orderTotal"`
	// Pointers: omitempty cannot drop a zero-valued struct, and a money
	// field absent on read must stay absent on the full-order update.
	AmountPaid     *decimal.Decimal `json:"amountPaid,omitempty"`
	TaxAmount      *decimal.Decimal `json:"taxAmount,omitempty"`
	ShippingAmount *decimal.Decimal `json:"shippingAmount,omitempty"`
	CustomerNotes  string          `json:"customerNotes,omitempty"`
	InternalNotes  string          `json:"internalNotes,omitempty"`
	Gift           bool            `json:"gift,omitempty"`
	GiftMessage    string          `json:"giftMessage,omitempty"`
	PaymentMethod  string          `json:"paymentMethod,omitempty"`
	CarrierCode    string          `json:"carrierCode,omitempty"`
	ServiceCode    string          `json:"serviceCode,omitempty"`
	PackageCode    string          `json:"packageCode,omitempty"`
	Confirmation   string          `json:"confirmation,omitempty"`

	// Opaque round-trip fields.
	Weight               json.RawMessage `json:"weight,omitempty"`
	Dimensions           json.RawMessage `json:"dimensions,omitempty"`
	InsuranceOptions     json.RawMessage `json:"insuranceOptions,omitempty"`
	InternationalOptions json.RawMessage `json:"internationalOptions,omitempty"`
	AdvancedOptions      json.RawMessage `json:"advancedOptions,omitempty"`

	TagIDs    TagIDSet   `json:"tagIds"`
	Shipments []Shipment `json:"shipments,omitempty"`
}

// RecipientName returns the ship-to name, empty when absent.
func (o *Order) RecipientName() string {
	return o.ShipTo.Name
}

// TagNames maps the order's tag ids through the catalog, skipping ids the
// catalog does not know.
func (o *Order) TagNames(catalog []Tag) []string {
	byID := make(map[int64]string, len(catalog))
	for _, t := range catalog {
		byID[t.TagID] = t.Name
	}
	var names []string
	for _, id := range o.TagIDs {
		if name, ok := byID[id]; ok {
			names = append(names, name)
		}
	}
	return names
}

// ordersResponse is the envelope for order search endpoints.
type ordersResponse struct {
	Orders []Order `json:"orders"`
	Total  int     `json:"total"`
	Page   int     `json:"page"`
	Pages  int     `json:"pages"`
}

// addTagRequest is the payload for the add-tag endpoint.
type addTagRequest struct {
	OrderID int64 `json:"orderId"`
	TagID   int64 `json:"tagId"`
}
