// Package prompt builds the completion prompts for each generation stage.
// Builders are pure: the same inputs always produce the same prompt text, so
// generation runs are reproducible up to the model's own nondeterminism.
package prompt

// Prompt pairs the system and user messages of one completion request.
type Prompt struct {
	System string
	User   string
}

// platformContext is the standing business context shared by the generation
// stages. The hierarchy rules mirror the target platform's navigation model.
const platformContext = `TableFlow is a no-code platform for building ERP systems.

Business Concept:
- The system has two "Type" values: "Module" and "Dashboard".
- "Modules" are top-level navigation elements (e.g., Sales, Inventory).
- "Dashboard" is used where traditionally a "Menu" would exist.
- A "Dashboard" is always a child under a "Module".
- Dashboards can link to CRUD tables, reports, workflows, or visual dashboards.

Important:
- Do NOT use "Menu" as a type. Replace it with "Dashboard" as per our standard.
- Each metadata record must include: Module, Parent Module, Type (Module/Dashboard), Color, Icon.
- Leave Color and Icon blank ("").
- Ensure that Dashboards always have a parent Module.
- Apply proper logical grouping based on the provided dataset.`

// predefineds lists the platform's fixed vocabularies for table metadata.
const predefineds = `- Data Type Options: Boolean, Currency, Date, DateTime, Decimal, Document, Image, Integer, List, Percentage, Text, Multi Select, Digital Signature, Rating, Radio Button, Assign to, Time
- Security Options: None, Readonly, Full Restrict
- Format Options:
  - Leave blank by default.
  - Only use **Custom** when specific formats are required.
  - If Custom is used, also provide **Mask** + **Validation Regex**.
- Unique Id will always be: "Record ID"
- TRUE/FALSE columns: Notes?, Events?, Delete?, Required?, Auto Increment?, Timers?, Clone?, Hide Search?, Web Form?, Recalculate on each update ?, Field Group Show Icon (Use native boolean true or false, NOT "TRUE"/"FALSE" strings)`
