package prompt

import (
	"fmt"
	"strings"
)

// Relevance asks for a strict JSON verdict on whether a dataset profile
// describes business data worth generating ERP metadata for.
func Relevance(profileJSON string) Prompt {
	var sb strings.Builder
	sb.WriteString("You are an expert in enterprise resource planning (ERP) systems.\n")
	sb.WriteString("Given the following dataset summary, please determine if it is relevant for generating ERP modules.\n")
	sb.WriteString("Relevance means that the dataset contains business-related data such as client information, sales records,\n")
	sb.WriteString("inventory management, employee records, etc.\n")
	sb.WriteString("Respond with a JSON object exactly in the following format:\n")
	sb.WriteString(`{"relevant": true} if relevant, or {"relevant": false} if not.` + "\n\n")
	sb.WriteString("Dataset summary:\n")
	sb.WriteString(profileJSON)
	return Prompt{
		System: "You are an ERP systems expert.",
		User:   sb.String(),
	}
}

// Modules asks for the two-level module/dashboard hierarchy derived from a
// dataset profile.
func Modules(profileJSON string) Prompt {
	var sb strings.Builder
	sb.WriteString("You are an enterprise metadata architect for TableFlow ERP.\n\n")
	sb.WriteString(platformContext)
	sb.WriteString("\n\nHere is the dataset summary you are working with:\n")
	sb.WriteString(profileJSON)
	sb.WriteString("\n\nKey Guidelines:\n")
	sb.WriteString(`1. Create a clean two-level hierarchy:
- **Modules** should represent broad functional areas or management domains (e.g., "Sales", "Inventory", "Client Management").
- **Dashboards** should represent business entities or screens within a module (e.g., "Clients", "Leads", "Orders", "Employees").

2. Avoid assigning data tables directly as Modules unless they truly represent a full domain.
- For example, prefer:
    - "Client Management" -> Module
    - "Clients" -> Dashboard
- NOT:
    - "Clients" -> Module
    - "Client Management" -> Dashboard

3. Apply grouping logic:
- Similar tables (e.g., "Leads", "Deals") should fall under a single logical module ("Sales").
- Use business intuition to create clean top-level Modules and logical Dashboard assignments.

4. Don't repeat names:
- Avoid cases where Module and Dashboard names are identical.
- Always aim to group dashboards under a distinct parent Module.
`)
	sb.WriteString("\nOutput must be in this JSON format:\n")
	fmt.Fprintf(&sb, `[
    {"Module": "ModuleName", "Parent Module": "", "Type": "Module", "Color": "", "Icon": ""},
    {"Module": "DashboardName", "Parent Module": "ModuleName", "Type": "Dashboard", "Color": "", "Icon": ""}
]
`)
	sb.WriteString("\nThink carefully before assigning \"Module\" or \"Dashboard\" types.")
	return Prompt{
		System: "You are a metadata expert for TableFlow ERP platform.",
		User:   sb.String(),
	}
}
