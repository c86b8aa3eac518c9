package orders

import "testing"

func TestBuildSaleTotalsExactArithmetic(t *testing.T) {
	cases := []struct {
		name      string
		items     []SaleItemInput
		subtotals []string
		total     string
	}{
		{
			name: "single line",
			items: []SaleItemInput{
				{ProductID: 1, Quantity: 7, UnitPrice: money(t, "12.50")},
			},
			subtotals: []string{"87.50"},
			total:     "87.50",
		},
		{
			name: "two lines",
			items: []SaleItemInput{
				{ProductID: 1, Quantity: 3, UnitPrice: money(t, "5.00")},
				{ProductID: 2, Quantity: 2, UnitPrice: money(t, "7.25")},
			},
			subtotals: []string{"15.00", "14.50"},
			total:     "29.50",
		},
		{
			// float64 would accumulate 0.30000000000000004 here
			name: "no floating drift",
			items: []SaleItemInput{
				{ProductID: 1, Quantity: 1, UnitPrice: money(t, "0.10")},
				{ProductID: 2, Quantity: 1, UnitPrice: money(t, "0.10")},
				{ProductID: 3, Quantity: 1, UnitPrice: money(t, "0.10")},
			},
			subtotals: []string{"0.10", "0.10", "0.10"},
			total:     "0.30",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lines, total := buildSaleTotals(tc.items)
			if len(lines) != len(tc.items) {
				t.Fatalf("lines = %d, want %d", len(lines), len(tc.items))
			}
			for i, line := range lines {
				if got := line.Subtotal.String(); got != tc.subtotals[i] {
					t.Errorf("subtotal[%d] = %s, want %s", i, got, tc.subtotals[i])
				}
			}
			if got := total.String(); got != tc.total {
				t.Errorf("total = %s, want %s", got, tc.total)
			}
		})
	}
}
