package prompt

import (
	"fmt"
	"strings"

	"tableflow/internal/workbook"
)

// Tables asks for one metadata row per field of every user table, each
// linked to one of the valid modules.
func Tables(validModules []string, summary workbook.Summary) Prompt {
	var sb strings.Builder
	sb.WriteString("You are an enterprise metadata architect for the TableFlow ERP platform.\n\n")
	sb.WriteString("Objective:\n")
	sb.WriteString("- For each table (sheet) below, generate multiple metadata rows (one for each field).\n")
	fmt.Fprintf(&sb, "- Each table must be linked to one valid Module from this list: %s.\n\n", quoteList(validModules))
	sb.WriteString(`Important Rules:
- DO NOT link to Dashboards.
- Only use Modules where Type = "Module" from the provided list.
- Intelligently select the correct Module based on the table's business context.

Metadata Rules:
`)
	sb.WriteString(predefineds)
	sb.WriteString(`

Special Instructions:
- Ensure every **Field** and **Display Field** strictly matches an existing column from the table's columns below.
- **DO NOT create fields that do not exist in the table's columns.**
- Leave **Format** blank for all fields unless using **Custom**. If Custom is used, also provide Mask + Validation Regex.
- For the **Display Field**, prefer business-relevant columns such as "Lead Source", "Deal Name", or "Customer Name" **only if present** in the table.
- If no such common field exists, fallback strictly to "Record ID".
- For BOOLEAN columns (Notes?, Events?, Delete?, Required?, Auto Increment?, etc.), ONLY use native true/false (no strings).
- Avoid empty cells. Default to empty strings ("") for optional text fields.

Tables & Columns:
`)
	for _, t := range summary {
		fmt.Fprintf(&sb, "- **%s** Columns: %s\n", t.Name, quoteList(t.Columns))
	}
	sb.WriteString(`
Output Example:
[
    {
        "Table Name": "Orders",
        "Notes?": true,
        "Events?": true,
        "Timers?": false,
        "Delete?": true,
        "Clone?": true,
        "Hide Search?": false,
        "Web Form?": true,
        "Display Field": "Order ID",
        "Unique Id": "Record ID",
        "Module": "Sales",
        "Field": "Order ID",
        "Data Type": "Integer",
        "Required?": true,
        "List Values": "",
        "Auto Increment?": true,
        "Auto Increment Start": "1",
        "Conditions": "",
        "Format": "",
        "Default Value": "",
        "Validation Condition": "",
        "ColorExpression": "",
        "Validation Regex": "",
        "Recalculate on each update ?": false,
        "Decimal Place": "0",
        "FieldGroupId": "",
        "Field Grpoup Type": "",
        "Field Group Show Icon": false,
        "Security": "None",
        "Role": "",
        "Click Rule": ""
    }
]

Repeat this for **ALL fields of ALL detected tables**.`)
	return Prompt{
		System: "You are a metadata generator for ERP tables.",
		User:   sb.String(),
	}
}

// quoteList renders a Python-style quoted list, the shape the prompts have
// always embedded.
func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = "'" + s + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
