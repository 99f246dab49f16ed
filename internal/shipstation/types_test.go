package shipstation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTagIDSetBareIntegers covers the bare-integer wire shape.
func TestTagIDSetBareIntegers(t *testing.T) {
	var s TagIDSet
	require.NoError(t, json.Unmarshal([]byte(`[11, 42, 7]`), &s))
	assert.Equal(t, TagIDSet{11, 42, 7}, s)
	assert.True(t, s.Has(42))
	assert.False(t, s.Has(99))
}

// TestTagIDSetRecords covers the {tagId, name} record wire shape.
func TestTagIDSetRecords(t *testing.T) {
	var s TagIDSet
	raw := `[{"tagId": 11, "name": "RUSH"}, {"tagId": 42, "name": "Special NOTE!"}]`
	require.NoError(t, json.Unmarshal([]byte(raw), &s))
	assert.Equal(t, TagIDSet{11, 42}, s)
}

// TestTagIDSetNull treats null as an empty set.
func TestTagIDSetNull(t *testing.T) {
	var s TagIDSet
	require.NoError(t, json.Unmarshal([]byte(`null`), &s))
	assert.Nil(t, s)
	assert.False(t, s.Has(1))
}

// TestTagIDSetRejectsGarbage rejects elements that are neither form.
func TestTagIDSetRejectsGarbage(t *testing.T) {
	var s TagIDSet
	err := json.Unmarshal([]byte(`["rush"]`), &s)
	require.Error(t, err)
}

// TestTagIDSetMarshalBare verifies the canonical marshal form is bare ids,
// regardless of how the set was read.
func TestTagIDSetMarshalBare(t *testing.T) {
	var s TagIDSet
	require.NoError(t, json.Unmarshal([]byte(`[{"tagId": 3, "name": "x"}]`), &s))

	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `[3]`, string(out))
}

// TestOrderRoundTripPreservesOpaqueFields verifies that fields the tool
// does not interpret survive a decode/encode cycle, which the full-order
// update endpoint depends on.
func TestOrderRoundTripPreservesOpaqueFields(t *testing.T) {
	raw := `{
		"orderId": 123,
		"orderNumber": "9219",
		"orderStatus": "awaiting_shipment",
		"customerEmail": "noah@example.com",
		"shipTo": {"name": "Noah Wolfe", "city": "Denver"},
		"orderTotal": 42.50,
		"internalNotes": "fragile",
		"tagIds": [7],
		"items": [{"sku": "W-1", "name": "Widget", "quantity": 2, "unitPrice": 19.99}],
		"advancedOptions": {"warehouseId": 55, "customField1": "keep me"},
		"weight": {"value": 12, "units": "ounces"}
	}`

	var o Order
	require.NoError(t, json.Unmarshal([]byte(raw), &o))
	assert.Equal(t, int64(123), o.OrderID)
	assert.Equal(t, StatusAwaitingShipment, o.OrderStatus)
	assert.Equal(t, "Noah Wolfe", o.RecipientName())
	assert.Equal(t, "42.5", o.OrderTotal.String())

	o.InternalNotes = "fragile, leave at door"
	out, err := json.Marshal(&o)
	require.NoError(t, err)

	var back map[string]any
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, "fragile, leave at door", back["internalNotes"])

	adv, ok := back["advancedOptions"].(map[string]any)
	require.True(t, ok, "advancedOptions must survive the round trip")
	assert.Equal(t, "keep me", adv["customField1"])
	assert.Contains(t, back, "weight")
}

// TestOrderMarshalsMoneyAsNumbers verifies the update payload carries money
// fields as bare JSON numbers and never invents money fields the source
// document did not contain.
func TestOrderMarshalsMoneyAsNumbers(t *testing.T) {
	raw := `{
		"orderId": 1,
		"orderNumber": "9219",
		"orderStatus": "awaiting_shipment",
		"shipTo": {"name": "Noah Wolfe"},
		"orderTotal": 42.5,
		"tagIds": [],
		"items": [{"sku": "W-1", "name": "Widget", "quantity": 2, "unitPrice": 19.99}]
	}`

	var o Order
	require.NoError(t, json.Unmarshal([]byte(raw), &o))

	out, err := json.Marshal(&o)
	require.NoError(t, err)

	var back map[string]any
	require.NoError(t, json.Unmarshal(out, &back))

	assert.Equal(t, 42.5, back["orderTotal"], "orderTotal must be a bare number")

	items, ok := back["items"].([]any)
	require.True(t, ok)
	item := items[0].(map[string]any)
	assert.Equal(t, 19.99, item["unitPrice"], "unitPrice must be a bare number")

	// Absent on read means absent on write.
	assert.NotContains(t, back, "amountPaid")
	assert.NotContains(t, back, "taxAmount")
	assert.NotContains(t, back, "shippingAmount")
}

// TestStatusValid checks the status enumeration.
func TestStatusValid(t *testing.T) {
	for _, s := range Statuses {
		assert.True(t, s.Valid(), "status %q", s)
	}
	assert.False(t, Status("pending").Valid())
}

// TestTagNames maps ids through the catalog, skipping unknown ids.
func TestTagNames(t *testing.T) {
	catalog := []Tag{
		{TagID: 1, Name: "RUSH"},
		{TagID: 2, Name: "Special NOTE!"},
	}
	o := Order{TagIDs: TagIDSet{2, 9, 1}}
	assert.Equal(t, []string{"Special NOTE!", "RUSH"}, o.TagNames(catalog))
}
