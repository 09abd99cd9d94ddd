package workbook

import (
	"encoding/json"
	"strings"
	"testing"
)

func testWorkbook() *Workbook {
	wb := New()
	wb.Set("Customers", &Sheet{
		Columns: []string{"Name", "Email"},
		Rows: []map[string]string{
			{"Name": "Ada", "Email": "ada@example.com"},
			{"Name": "Grace", "Email": ""},
		},
	})
	wb.Set("Orders", &Sheet{
		Columns: []string{"Order ID", "Total"},
	})
	return wb
}

func TestSummarize(t *testing.T) {
	s := Summarize(testWorkbook())

	if len(s) != 2 || s[0].Name != "Customers" || s[1].Name != "Orders" {
		t.Fatalf("summary = %+v", s)
	}
	if got := s.Columns("Orders"); len(got) != 2 || got[0] != "Order ID" {
		t.Errorf("Columns(Orders) = %v", got)
	}
	if s.Columns("Nope") != nil {
		t.Error("unknown table should return nil")
	}
}

func TestSummaryJSONOrdered(t *testing.T) {
	raw, err := json.Marshal(Summarize(testWorkbook()))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"Customers":["Name","Email"],"Orders":["Order ID","Total"]}`
	if string(raw) != want {
		t.Errorf("json = %s, want %s", raw, want)
	}
}

func TestProfile(t *testing.T) {
	profiles := Profile(testWorkbook())

	if len(profiles) != 2 {
		t.Fatalf("profiles = %+v", profiles)
	}
	customers := profiles[0]
	if customers.Rows != 2 || customers.Cols != 2 {
		t.Errorf("dimensions = %dx%d", customers.Rows, customers.Cols)
	}
	if customers.NullColumns["Email"] != 1 {
		t.Errorf("null counts = %v", customers.NullColumns)
	}
	if _, ok := customers.NullColumns["Name"]; ok {
		t.Error("full column should not appear in null counts")
	}
}

func TestProfileJSON(t *testing.T) {
	out, err := ProfileJSON(Profile(testWorkbook()))
	if err != nil {
		t.Fatalf("ProfileJSON: %v", err)
	}
	if !json.Valid([]byte(out)) {
		t.Fatalf("invalid JSON:\n%s", out)
	}
	if !strings.Contains(out, `"Customers"`) || !strings.Contains(out, `"null_columns"`) {
		t.Errorf("unexpected rendering:\n%s", out)
	}
	// Sheet order must follow the workbook.
	if strings.Index(out, `"Customers"`) > strings.Index(out, `"Orders"`) {
		t.Error("sheets out of order")
	}
}
