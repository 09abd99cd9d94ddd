package metadata

import (
	"encoding/json"
	"testing"
)

func TestFlexBoolUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    FlexBool
		wantErr bool
	}{
		{"native true", `true`, true, false},
		{"native false", `false`, false, false},
		{"upper string", `"TRUE"`, true, false},
		{"lower string", `"false"`, false, false},
		{"mixed case", `"True"`, true, false},
		{"padded string", `"  true "`, true, false},
		{"empty string", `""`, false, false},
		{"null", `null`, false, false},
		{"nonzero number", `1`, true, false},
		{"zero number", `0`, false, false},
		{"garbage string", `"yes please"`, false, false},
		{"array", `[true]`, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b FlexBool
			err := json.Unmarshal([]byte(tt.input), &b)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && b != tt.want {
				t.Errorf("got %v, want %v", b, tt.want)
			}
		})
	}
}

func TestFlexBoolCell(t *testing.T) {
	if got := FlexBool(true).Cell(); got != "TRUE" {
		t.Errorf("true cell = %q", got)
	}
	if got := FlexBool(false).Cell(); got != "FALSE" {
		t.Errorf("false cell = %q", got)
	}
}

func TestFlexStringUnmarshal(t *testing.T) {
	tests := []struct {
		input string
		want  FlexString
	}{
		{`"hello"`, "hello"},
		{`null`, ""},
		{`42`, "42"},
		{`3.5`, "3.5"},
		{`true`, "true"},
	}
	for _, tt := range tests {
		var s FlexString
		if err := json.Unmarshal([]byte(tt.input), &s); err != nil {
			t.Fatalf("unmarshal %s: %v", tt.input, err)
		}
		if s != tt.want {
			t.Errorf("unmarshal %s = %q, want %q", tt.input, s, tt.want)
		}
	}
}

func TestFieldNameUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     string
		wantText bool
	}{
		{"string", `"Customer Name"`, "Customer Name", true},
		{"empty string is still text", `""`, "", true},
		{"null", `null`, "", false},
		{"integer", `7`, "7", false},
		{"float", `7.25`, "7.25", false},
		{"bool", `true`, "true", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FieldName
			if err := json.Unmarshal([]byte(tt.input), &f); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if f.Value != tt.want || f.Text != tt.wantText {
				t.Errorf("got {%q %v}, want {%q %v}", f.Value, f.Text, tt.want, tt.wantText)
			}
		})
	}
}

func TestParseViewType(t *testing.T) {
	tests := []struct {
		input  string
		want   ViewType
		wantOK bool
	}{
		{"List", ViewList, true},
		{"list", ViewList, true},
		{" report summary ", ViewReportSummary, true},
		{"KANBAN", ViewKanban, true},
		{"Gantt", ViewType("Gantt"), false},
		{"", ViewType(""), false},
	}
	for _, tt := range tests {
		got, ok := ParseViewType(tt.input)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseViewType(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestParseObjectType(t *testing.T) {
	got, ok := ParseObjectType("report")
	if got != ObjectReport || !ok {
		t.Errorf("ParseObjectType(report) = (%q, %v)", got, ok)
	}
	got, ok = ParseObjectType("Widget")
	if got != ObjectType("Widget") || ok {
		t.Errorf("unknown type should pass through: (%q, %v)", got, ok)
	}
}
