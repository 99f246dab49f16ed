package cli

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/shopspring/decimal"

	"github.com/quaywork/warehousectl/internal/shipstation"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func detailOrder() *shipstation.Order {
	return &shipstation.Order{
		OrderID:       1,
		OrderNumber:   "9219",
		OrderStatus:   shipstation.StatusAwaitingShipment,
		ShipTo:        shipstation.Address{Name: "Noah Wolfe"},
		CustomerEmail: "noah@example.com",
		OrderDate:     "2024-03-01T08:15:00",
		OrderTotal:    decimal.RequireFromString("42.50"),
		InternalNotes: "fragile",
		TagIDs:        shipstation.TagIDSet{7, 9},
		Shipments: []shipstation.Shipment{
			{TrackingNumber: "1Z999AA10123456784", CarrierCode: "ups"},
		},
		Items: []shipstation.Item{
			{Name: "Widget", SKU: "W-1", Quantity: 2},
			{Name: "Gadget", SKU: "G-9", Quantity: 1},
		},
	}
}

var testCatalog = []shipstation.Tag{
	{TagID: 3, Name: "Priority"},
	{TagID: 7, Name: "RUSH"},
	{TagID: 9, Name: "Special NOTE!"},
}

func TestRenderOrderDetailGolden(t *testing.T) {
	buf := &bytes.Buffer{}
	RenderOrderDetail(buf, detailOrder(), testCatalog)
	newGoldie(t).Assert(t, "order_detail", buf.Bytes())
}

// TestRenderOrderSummaryGolden exercises the five-item display cap.
func TestRenderOrderSummaryGolden(t *testing.T) {
	o := detailOrder()
	o.Items = nil
	for i := 1; i <= 7; i++ {
		o.Items = append(o.Items, shipstation.Item{
			Name:     fmt.Sprintf("Item %d", i),
			SKU:      fmt.Sprintf("SKU-%d", i),
			Quantity: 1,
		})
	}

	buf := &bytes.Buffer{}
	RenderOrderSummary(buf, o)
	newGoldie(t).Assert(t, "order_summary", buf.Bytes())
}

func TestRenderCandidateListGolden(t *testing.T) {
	orders := []shipstation.Order{
		{
			OrderNumber:   "9219",
			ShipTo:        shipstation.Address{Name: "Noah Wolfe"},
			CustomerEmail: "noah@example.com",
			OrderTotal:    decimal.RequireFromString("42.50"),
		},
		{
			OrderNumber:   "9220",
			ShipTo:        shipstation.Address{Name: "Noah Wolfeson"},
			CustomerEmail: "wolfeson@example.com",
			OrderTotal:    decimal.RequireFromString("18.00"),
		},
		{
			OrderNumber:   "9221",
			CustomerEmail: "anon@example.com",
		},
	}

	buf := &bytes.Buffer{}
	RenderCandidateList(buf, orders)
	newGoldie(t).Assert(t, "candidate_list", buf.Bytes())
}

func TestRenderOrderListGolden(t *testing.T) {
	withTags := *detailOrder()
	withTags.TagIDs = shipstation.TagIDSet{7}

	anon := shipstation.Order{
		OrderNumber:   "9221",
		OrderStatus:   shipstation.StatusAwaitingShipment,
		CustomerEmail: "anon@example.com",
	}

	buf := &bytes.Buffer{}
	RenderOrderList(buf, []shipstation.Order{withTags, anon}, testCatalog)
	newGoldie(t).Assert(t, "order_list", buf.Bytes())
}

// TestRenderTagListGolden: catalog sorted by name, not id.
func TestRenderTagListGolden(t *testing.T) {
	unsorted := []shipstation.Tag{
		{TagID: 9, Name: "Special NOTE!"},
		{TagID: 7, Name: "RUSH"},
		{TagID: 3, Name: "Priority"},
	}

	buf := &bytes.Buffer{}
	RenderTagList(buf, unsorted)
	newGoldie(t).Assert(t, "tag_list", buf.Bytes())
}
