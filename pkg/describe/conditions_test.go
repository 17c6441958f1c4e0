package describe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ekaya-inc/ekaya-querydesc/pkg/naming"
)

func TestInterpretCondition(t *testing.T) {
	names := naming.Default()

	tests := []struct {
		name     string
		fragment string
		expected string
	}{
		{
			name:     "both bounds in one fragment",
			fragment: "CreatedDate >= '2024-01-01' <= '2024-12-31'",
			expected: "Created Date is within a specific date range",
		},
		{
			name:     "on or after with date",
			fragment: "CreatedDate >= '2024-01-01'",
			expected: "Created Date is on or after January 1, 2024",
		},
		{
			name:     "on or before with date",
			fragment: "b.PaidDate <= '2024-06-30'",
			expected: "Paid Date is on or before June 30, 2024",
		},
		{
			name:     "on or after infinity",
			fragment: "ShipDate >= '-infinity'::timestamptz",
			expected: "Ship Date is on or after the beginning of time",
		},
		{
			name:     "greater than keeps raw value",
			fragment: "Quantity > 10",
			expected: "Quantity is greater than 10",
		},
		{
			name:     "greater than does not format dates",
			fragment: "OrderDate > '2024-01-01'",
			expected: "Order Date is greater than 2024-01-01",
		},
		{
			name:     "less than",
			fragment: "o.UnitPrice < 5.5",
			expected: "Unit Price is less than 5.5",
		},
		{
			name:     "equals",
			fragment: "Status = 'Open'",
			expected: "Status equals Open",
		},
		{
			name:     "equals date",
			fragment: "BookingDate = '2024-02-29'",
			expected: "Booking Date equals February 29, 2024",
		},
		{
			name:     "equals null",
			fragment: "SalesRepID = NULL",
			expected: "Sales Rep is empty",
		},
		{
			name:     "equals bound parameter",
			fragment: "CustomerID = @customerId",
			expected: "Customer equals specified value",
		},
		{
			name:     "like hides pattern",
			fragment: "CustomerName LIKE '%acme%'",
			expected: "Customer Name contains specific text",
		},
		{
			name:     "ilike hides pattern",
			fragment: "name ILIKE '%bob%'",
			expected: "Name contains specific text",
		},
		{
			name:     "not like",
			fragment: "CustomerName NOT LIKE 'test%'",
			expected: "Customer Name contains specific text",
		},
		{
			name:     "unparsable field is not humanized",
			fragment: "'x' = Status",
			expected: "field equals Status",
		},
		{
			name:     "in list",
			fragment: "Status IN ('Open', 'Pending')",
			expected: "Status is one of several values",
		},
		{
			name:     "is null",
			fragment: "PaidDate IS NULL",
			expected: "Paid Date is empty",
		},
		{
			name:     "is not null",
			fragment: "PaidDate IS NOT NULL",
			expected: "Paid Date has a value",
		},
		{
			name:     "between",
			fragment: "Quantity BETWEEN 1",
			expected: "Quantity is within a range",
		},
		{
			name:     "unknown column is humanized",
			fragment: "approval_stage = 'final'",
			expected: "Approval Stage equals final",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := interpretCondition(condition{text: tt.fragment}, names)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestInterpretCondition_Unrecognized(t *testing.T) {
	names := naming.Default()

	for _, fragment := range []string{"EXISTS (SELECT 1 FROM x)", "IsActive", "5"} {
		t.Run(fragment, func(t *testing.T) {
			_, ok := interpretCondition(condition{text: fragment}, names)
			assert.False(t, ok)
		})
	}
}

func TestSplitConditions(t *testing.T) {
	tests := []struct {
		name     string
		where    string
		expected []condition
	}{
		{
			name:     "empty",
			where:    "",
			expected: nil,
		},
		{
			name:  "and/or split",
			where: "Status = 'Open' AND Qty > 3 or PaidDate IS NULL",
			expected: []condition{
				{text: "Status = 'Open'"},
				{text: "Qty > 3"},
				{text: "PaidDate IS NULL"},
			},
		},
		{
			name:  "range pair is merged",
			where: "CreatedDate >= '2024-01-01' AND CreatedDate <= '2024-12-31'",
			expected: []condition{
				{
					text:  "CreatedDate >= '2024-01-01' and CreatedDate <= '2024-12-31'",
					lower: "2024-01-01",
					upper: "2024-12-31",
				},
			},
		},
		{
			name:  "reversed range pair is merged",
			where: "b.ShipDate <= '2024-12-31' and b.ShipDate >= '2024-01-01'",
			expected: []condition{
				{
					text:  "b.ShipDate <= '2024-12-31' and b.ShipDate >= '2024-01-01'",
					lower: "2024-01-01",
					upper: "2024-12-31",
				},
			},
		},
		{
			name:  "bounds on different fields are not merged",
			where: "CreatedDate >= '2024-01-01' AND PaidDate <= '2024-12-31'",
			expected: []condition{
				{text: "CreatedDate >= '2024-01-01'"},
				{text: "PaidDate <= '2024-12-31'"},
			},
		},
		{
			name:  "bounds joined by or are not merged",
			where: "Qty >= 1 OR Qty <= 0",
			expected: []condition{
				{text: "Qty >= 1"},
				{text: "Qty <= 0"},
			},
		},
		{
			name:  "grouping parentheses are trimmed",
			where: "(Status = 'Open' OR Status = 'Pending') AND Qty > 0",
			expected: []condition{
				{text: "Status = 'Open'"},
				{text: "Status = 'Pending'"},
				{text: "Qty > 0"},
			},
		},
		{
			name:  "between is split naively",
			where: "Qty BETWEEN 1 AND 5",
			expected: []condition{
				{text: "Qty BETWEEN 1"},
				{text: "5"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, splitConditions(tt.where))
		})
	}
}

func TestExtractField(t *testing.T) {
	tests := []struct {
		fragment string
		expected string
	}{
		{"CreatedDate >= '2024-01-01'", "CreatedDate"},
		{"b.CreatedDate >= '2024-01-01'", "CreatedDate"},
		{`"o"."Status" = 'x'`, "Status"},
		{"b . PaidDate IS NULL", "PaidDate"},
		{"(Status = 'Open'", "Status"},
		{"= 5", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.fragment, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractField(tt.fragment))
		})
	}
}
