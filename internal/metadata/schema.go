package metadata

// Metadata workbook sheet names, in export order.
const (
	SheetModules   = "Modules"
	SheetTable     = "Table"
	SheetDashboard = "Dashboard"
	SheetLinks     = "Links"
)

// MetadataSheets is the fixed sheet order of an exported metadata workbook.
var MetadataSheets = []string{SheetModules, SheetTable, SheetDashboard, SheetLinks}

// SheetSchemas declares the exact ordered column list of every metadata
// sheet. The exporter inserts empty columns for anything a generated sheet is
// missing and discards anything outside the schema, so the workbook always
// round-trips through the platform importer.
var SheetSchemas = map[string][]string{
	SheetModules: {"Module", "Parent Module", "Type", "Color", "Icon"},
	SheetTable: {
		"Table Name", "Notes?", "Events?", "Timers?", "Delete?", "Clone?",
		"Hide Search?", "Web Form?", "Display Field", "Unique Id", "Module",
		"Field", "Data Type", "Required?", "List Values", "Auto Increment?",
		"Auto Increment Start", "Conditions", "Format", "Default Value",
		"Validation Condition", "ColorExpression", "Validation Regex",
		"Recalculate on each update ?", "Decimal Place", "FieldGroupId",
		"Field Grpoup Type", "Field Group Show Icon", "Security", "Role",
		"Click Rule",
	},
	SheetDashboard: {
		"Module", "Dashboard", "Element Id", "Object Type", "Object Name",
		"View Type", "View Type Attributes", "Bold", "Italicize",
		"Hide Header?", "Hide Body?", "PosX", "PosY", "Width", "Height",
		"Color", "Background Color", "Font", "Font Size", "Field Type",
		"Field", "Bold?", "Italicize?", "PosX.1", "PosY.1", "Width.1",
		"Height.1", "Color.1", "Background Color.1", "Font.1", "Size",
		"Bold? - L", "Italicize? - L", "Color - L", "Background Color - L",
		"Font - L", "Size - L",
	},
	SheetLinks: {"Table Name", "Link Name", "Link Type", "Linked Table"},
}

// DropdownConfigs maps each metadata sheet to its column-level dropdown
// option lists, injected into the exported workbook as list validations.
var DropdownConfigs = map[string]map[string][]string{
	SheetModules: {
		"Type": {string(KindModule), string(KindDashboard)},
	},
	SheetTable: {
		"Notes?":                       booleanOptions,
		"Events?":                      booleanOptions,
		"Timers?":                      booleanOptions,
		"Delete?":                      booleanOptions,
		"Clone?":                       booleanOptions,
		"Hide Search?":                 booleanOptions,
		"Web Form?":                    booleanOptions,
		"Required?":                    booleanOptions,
		"Auto Increment?":              booleanOptions,
		"Recalculate on each update ?": booleanOptions,
		"Field Group Show Icon":        booleanOptions,
		"Security":                     SecurityLevels,
	},
	SheetDashboard: {
		"View Type":      stringList(ViewTypes),
		"Object Type":    stringList(ObjectTypes),
		"Field Type":     stringList(FieldTypes),
		"Bold":           booleanOptions,
		"Italicize":      booleanOptions,
		"Hide Header?":   booleanOptions,
		"Hide Body?":     booleanOptions,
		"Bold?":          booleanOptions,
		"Italicize?":     booleanOptions,
		"Bold? - L":      booleanOptions,
		"Italicize? - L": booleanOptions,
	},
	SheetLinks: {
		"Link Type": stringList(LinkTypes),
	},
}

var booleanOptions = []string{"TRUE", "FALSE"}

func stringList[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
