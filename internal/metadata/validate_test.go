package metadata

import "testing"

func TestValidateField(t *testing.T) {
	valid := NewColumnSet([]string{"Customer Name", "Order.Date", "order_total"})

	tests := []struct {
		name   string
		field  string
		want   string
		wantOK bool
	}{
		{"exact match", "Customer Name", "Customer Name", true},
		{"stripped proposal misses a spaced column", "Customer.Name", RecordID, false},
		{"matches sanitized column", "OrderDate", "OrderDate", true},
		{"proposal with stripped chars matches sanitized column", "Order.Date", "OrderDate", true},
		{"underscore column", "ordertotal", "ordertotal", true},
		{"miss falls back", "Invoice Number", RecordID, false},
		{"empty falls back", "", RecordID, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ValidateField(tt.field, valid)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ValidateField(%q) = (%q, %v), want (%q, %v)", tt.field, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestValidateDisplayField(t *testing.T) {
	valid := NewColumnSet([]string{"Customer Name"})

	got, ok := ValidateDisplayField(RecordID, valid)
	if got != RecordID || !ok {
		t.Errorf("fallback identifier should validate: (%q, %v)", got, ok)
	}
	got, ok = ValidateDisplayField("Customer Name", valid)
	if got != "Customer Name" || !ok {
		t.Errorf("real column should validate: (%q, %v)", got, ok)
	}
	got, ok = ValidateDisplayField("Nope", valid)
	if got != RecordID || ok {
		t.Errorf("miss should fall back: (%q, %v)", got, ok)
	}
}

func TestColumnSetContains(t *testing.T) {
	set := NewColumnSet([]string{"First.Name"})
	if !set.Contains("FirstName") {
		t.Error("sanitized form should be a member")
	}
	if !set.Contains("First.Name") {
		t.Error("raw form should sanitize to a member")
	}
	if set.Contains("Last Name") {
		t.Error("unknown column reported as member")
	}
}
