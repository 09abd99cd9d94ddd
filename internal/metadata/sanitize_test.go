package metadata

import "testing"

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean name untouched", "Customer Name", "Customer Name"},
		{"dots stripped", "First.Name", "FirstName"},
		{"arithmetic stripped", "Total+Tax-Discount*2/3", "TotalTaxDiscount23"},
		{"parens stripped", "Amount (USD)", "Amount USD"},
		{"brackets stripped", "Tags[0]", "Tags0"},
		{"quotes stripped", `The "Best" Field`, "The Best Field"},
		{"braces stripped", "{placeholder}", "placeholder"},
		{"underscores stripped", "order_id", "orderid"},
		{"empty", "", ""},
		{"only invalid chars", `.+-*/()[]"{}_`, ""},
		{"unicode preserved", "Prénom_Client", "PrénomClient"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{"First.Name", "Amount (USD)", "order_id", "Already Clean"}
	for _, in := range inputs {
		once := Sanitize(in)
		if twice := Sanitize(once); twice != once {
			t.Errorf("Sanitize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}
