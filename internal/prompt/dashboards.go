package prompt

import (
	"fmt"
	"strings"
)

// dashboardColumns are the columns the dashboard stage asks the model to
// fill; geometry and attribute columns are computed locally afterwards.
var dashboardColumns = []string{
	"Module", "Dashboard", "Element Id", "Object Type",
	"Object Name", "View Type", "Bold", "Italicize", "Hide Header?",
	"Hide Body?", "Field Type", "Field",
	"Bold?", "Italicize?", "Bold? - L", "Italicize? - L",
}

// Dashboards asks for dashboard metadata rows: one row per field the model
// proposes, constrained to the module/table mapping and the sanitized
// table-column map.
func Dashboards(modules []string, moduleTableJSON, tableColumnJSON string, viewTypes, objectTypes []string) Prompt {
	var sb strings.Builder
	sb.WriteString("You are a metadata architect for TableFlow ERP.\n\n")
	sb.WriteString("Objective:\nGenerate dashboard metadata rows using business context.\n\n")
	fmt.Fprintf(&sb, "Columns to Fill:\n%s\n\n", strings.Join(dashboardColumns, ", "))
	sb.WriteString("Business Rules:\n")
	fmt.Fprintf(&sb, "- Map **Module** directly from valid module names: %s.\n", quoteList(modules))
	sb.WriteString("- Strictly follow this mapping to assign tables to their respective modules:\n")
	sb.WriteString(moduleTableJSON)
	sb.WriteString("\n")
	sb.WriteString(`- Dashboard can follow the pattern "<Table> Dashboard" or based on business context.
- Link **Object Name** to the actual table names.
- **Element Id** and **Parent Element Id** should form a hierarchy (Dashboard is parent, fields/objects are children).
`)
	fmt.Fprintf(&sb, "- Object Type should be based on context (use: %s).\n", quoteList(objectTypes))
	fmt.Fprintf(&sb, "- View Type should be business-friendly (choose from: %s).\n", quoteList(viewTypes))
	sb.WriteString(`- Bold, Italicize, Hide Header?, Hide Body? should default to FALSE but can be TRUE where appropriate.
- **Field Type** should be "Field" for table columns.
- **Field** should strictly match a column from the associated table.

Dataset Context:
Tables & Columns:
`)
	sb.WriteString(tableColumnJSON)
	sb.WriteString(`

Output Example:
[
    {
        "Module": "Sales",
        "Dashboard": "Orders",
        "Element Id": "1",
        "Object Type": "Table",
        "Object Name": "Orders",
        "View Type": "List",
        "Bold": false,
        "Italicize": false,
        "Hide Header?": false,
        "Hide Body?": false,
        "Field Type": "Field",
        "Field": "Order ID"
    }
]

Repeat for all tables & relevant fields.`)
	return Prompt{
		System: "You are a metadata generator for dashboards.",
		User:   sb.String(),
	}
}
