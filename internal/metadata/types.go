// Package metadata defines the row model for the generated ERP metadata
// workbook: modules, tables, and dashboard elements, plus the sanitation and
// repair rules applied to AI-proposed values before layout and export.
package metadata

import (
	"encoding/json"
	"fmt"
	"strings"
)

// RecordID is the platform's universal unique-id column. It is the fallback
// substituted whenever an AI-proposed field reference cannot be matched to a
// real column.
const RecordID = "Record ID"

// ViewType is the presentation mode of a dashboard panel. Values outside the
// known set pass through verbatim; ParseViewType reports whether the value was
// recognized so callers can log unexpected AI output without rewriting it.
type ViewType string

const (
	ViewEmpty         ViewType = "Empty"
	ViewList          ViewType = "List"
	ViewCalendar      ViewType = "Calendar"
	ViewChart         ViewType = "Chart"
	ViewReportSummary ViewType = "Report Summary"
	ViewKanban        ViewType = "Kanban"
)

// ViewTypes lists the valid dropdown options in sheet order.
var ViewTypes = []ViewType{ViewEmpty, ViewList, ViewCalendar, ViewChart, ViewReportSummary, ViewKanban}

// ParseViewType normalizes a raw value against the known view types.
func ParseViewType(s string) (ViewType, bool) {
	t := strings.TrimSpace(s)
	for _, v := range ViewTypes {
		if strings.EqualFold(t, string(v)) {
			return v, true
		}
	}
	return ViewType(t), false
}

// ObjectType is the kind of object a dashboard panel points at.
type ObjectType string

const (
	ObjectTable  ObjectType = "Table"
	ObjectReport ObjectType = "Report"
	ObjectForm   ObjectType = "Form"
)

// ObjectTypes lists the valid dropdown options in sheet order.
var ObjectTypes = []ObjectType{ObjectTable, ObjectReport, ObjectForm}

// ParseObjectType normalizes a raw value against the known object types.
func ParseObjectType(s string) (ObjectType, bool) {
	t := strings.TrimSpace(s)
	for _, v := range ObjectTypes {
		if strings.EqualFold(t, string(v)) {
			return v, true
		}
	}
	return ObjectType(t), false
}

// FieldType distinguishes bound table columns from static dashboard text.
type FieldType string

const (
	FieldTypeField      FieldType = "Field"
	FieldTypeStaticText FieldType = "Static Text"
)

// FieldTypes lists the valid dropdown options in sheet order.
var FieldTypes = []FieldType{FieldTypeField, FieldTypeStaticText}

// ModuleKind is the Type column of the Modules sheet.
type ModuleKind string

const (
	KindModule    ModuleKind = "Module"
	KindDashboard ModuleKind = "Dashboard"
)

// LinkType is the relationship kind on the Links sheet.
type LinkType string

const (
	LinkLookup           LinkType = "Lookup"
	LinkLookupRestricted LinkType = "LookupRestricted"
	LinkManyToMany       LinkType = "ManyToMany"
	LinkMasterDetail     LinkType = "MasterDetail"
)

// LinkTypes lists the valid dropdown options in sheet order.
var LinkTypes = []LinkType{LinkLookup, LinkLookupRestricted, LinkManyToMany, LinkMasterDetail}

// SecurityLevels lists the valid Security dropdown options on the Table sheet.
var SecurityLevels = []string{"None", "Readonly", "Full Restrict"}

// FlexBool tolerates the boolean shapes LLMs actually emit: native JSON
// booleans, "TRUE"/"FALSE" strings (any case), empty strings, and null all
// decode without error. It exports as the sheet convention "TRUE"/"FALSE".
type FlexBool bool

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*b = false
	case bool:
		*b = FlexBool(v)
	case string:
		*b = FlexBool(strings.EqualFold(strings.TrimSpace(v), "true"))
	case float64:
		*b = FlexBool(v != 0)
	default:
		return fmt.Errorf("cannot decode %s as boolean", data)
	}
	return nil
}

// Cell renders the sheet representation.
func (b FlexBool) Cell() string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

// FlexString tolerates scalar values that should have been strings: numbers
// and booleans are stringified, null decodes to empty.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*s = ""
	case string:
		*s = FlexString(v)
	case float64:
		*s = FlexString(trimFloat(v))
	case bool:
		*s = FlexString(fmt.Sprintf("%v", v))
	default:
		return fmt.Errorf("cannot decode %s as string", data)
	}
	return nil
}

func (s FlexString) String() string { return string(s) }

// FieldName carries an AI-proposed field reference. Text records whether the
// value arrived as a string; non-string references (numbers, nulls) sort last
// during field layout and keep default sizing.
type FieldName struct {
	Value string
	Text  bool
}

func (f *FieldName) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		f.Value, f.Text = "", false
	case string:
		f.Value, f.Text = v, true
	case float64:
		f.Value, f.Text = trimFloat(v), false
	case bool:
		f.Value, f.Text = fmt.Sprintf("%v", v), false
	default:
		return fmt.Errorf("cannot decode %s as field name", data)
	}
	return nil
}

func (f FieldName) String() string { return f.Value }

// trimFloat renders 3.0 as "3" but keeps real fractions.
func trimFloat(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}
