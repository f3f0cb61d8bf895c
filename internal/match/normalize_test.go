package match

import (
	"testing"
)

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Basic cases
		{"OrderID", "orderid"},
		{"order_id", "orderid"},
		{"order-id", "orderid"},
		{"orderId", "orderid"},
		{"ORDERID", "orderid"},

		// CamelCase variations
		{"customerName", "customername"},
		{"CustomerName", "customername"},
		{"XMLParser", "xmlparser"},
		{"getHTTPResponse", "gethttpresponse"},

		// With underscores
		{"price_cents", "pricecents"},
		{"PRICE_CENTS", "pricecents"},
		{"Price_Cents", "pricecents"},

		// Edge cases
		{"", ""},
		{"a", "a"},
		{"A", "a"},
		{"ID", "id"},

		// Mixed separators
		{"order_item-ID", "orderitemid"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := NormalizeIdent(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeIdent(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNormalizeIdentWithSuffixStrip(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"CreatedAt", "created"},
		{"OrderID", "order"},
		{"TagIDs", "tag"},
		{"UpdatedUTC", "updated"},
		{"EventTimestamp", "event"},

		// A name that IS the suffix stays whole
		{"ID", "id"},
		{"At", "at"},

		// Only one suffix is stripped
		{"ModifiedAtUTC", "modifiedat"},

		// Nothing to strip
		{"FullName", "fullname"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := NormalizeIdentWithSuffixStrip(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeIdentWithSuffixStrip(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
