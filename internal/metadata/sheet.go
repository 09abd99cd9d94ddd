package metadata

import (
	"strconv"

	"tableflow/internal/workbook"
)

// ModulesSheet renders module rows as the Modules sheet.
func ModulesSheet(rows []ModuleRow) *workbook.Sheet {
	s := &workbook.Sheet{Columns: append([]string(nil), SheetSchemas[SheetModules]...)}
	for _, r := range rows {
		s.Rows = append(s.Rows, map[string]string{
			"Module":        r.Module,
			"Parent Module": r.ParentModule.String(),
			"Type":          string(r.Kind),
			"Color":         r.Color.String(),
			"Icon":          r.Icon.String(),
		})
	}
	return s
}

// TablesSheet renders table rows as the Table sheet.
func TablesSheet(rows []TableRow) *workbook.Sheet {
	s := &workbook.Sheet{Columns: append([]string(nil), SheetSchemas[SheetTable]...)}
	for _, r := range rows {
		s.Rows = append(s.Rows, map[string]string{
			"Table Name":                   r.TableName,
			"Notes?":                       r.Notes.Cell(),
			"Events?":                      r.Events.Cell(),
			"Timers?":                      r.Timers.Cell(),
			"Delete?":                      r.Delete.Cell(),
			"Clone?":                       r.Clone.Cell(),
			"Hide Search?":                 r.HideSearch.Cell(),
			"Web Form?":                    r.WebForm.Cell(),
			"Display Field":                r.DisplayField,
			"Unique Id":                    r.UniqueID,
			"Module":                       r.Module,
			"Field":                        r.Field,
			"Data Type":                    r.DataType,
			"Required?":                    r.Required.Cell(),
			"List Values":                  r.ListValues.String(),
			"Auto Increment?":              r.AutoIncrement.Cell(),
			"Auto Increment Start":         r.AutoIncrementStart.String(),
			"Conditions":                   r.Conditions.String(),
			"Format":                       r.Format.String(),
			"Default Value":                r.DefaultValue.String(),
			"Validation Condition":         r.ValidationCond.String(),
			"ColorExpression":              r.ColorExpression.String(),
			"Validation Regex":             r.ValidationRegex.String(),
			"Recalculate on each update ?": r.Recalculate.Cell(),
			"Decimal Place":                r.DecimalPlace.String(),
			"FieldGroupId":                 r.FieldGroupID.String(),
			"Field Grpoup Type":            r.FieldGroupType.String(),
			"Field Group Show Icon":        r.FieldGroupShowIcon.Cell(),
			"Security":                     r.Security.String(),
			"Role":                         r.Role.String(),
			"Click Rule":                   r.ClickRule.String(),
		})
	}
	return s
}

// DashboardsSheet renders dashboard rows as the Dashboard sheet. Cosmetic
// passthrough columns (colors, fonts, sizes) export as zeros; the layout
// engines never touch them.
func DashboardsSheet(rows []DashboardRow) *workbook.Sheet {
	s := &workbook.Sheet{Columns: append([]string(nil), SheetSchemas[SheetDashboard]...)}
	for _, r := range rows {
		cells := map[string]string{
			"Module":               r.Module,
			"Dashboard":            r.Dashboard,
			"Element Id":           r.ElementID,
			"Object Type":          string(r.ObjectType),
			"Object Name":          r.ObjectName,
			"View Type":            string(r.ViewType),
			"View Type Attributes": r.ViewTypeAttributes,
			"Bold":                 r.Bold.Cell(),
			"Italicize":            r.Italicize.Cell(),
			"Hide Header?":         r.HideHeader.Cell(),
			"Hide Body?":           r.HideBody.Cell(),
			"PosX":                 strconv.Itoa(r.PanelX),
			"PosY":                 strconv.Itoa(r.PanelY),
			"Width":                strconv.Itoa(r.PanelWidth),
			"Height":               strconv.Itoa(r.PanelHeight),
			"Field Type":           string(r.FieldType),
			"Field":                r.Field.Value,
			"Bold?":                r.FieldBold.Cell(),
			"Italicize?":           r.FieldItalicize.Cell(),
			"PosX.1":               strconv.Itoa(r.FieldX),
			"PosY.1":               strconv.Itoa(r.FieldY),
			"Width.1":              strconv.Itoa(r.FieldWidth),
			"Height.1":             strconv.Itoa(r.FieldHeight),
			"Bold? - L":            r.LabelBold.Cell(),
			"Italicize? - L":       r.LabelItalicize.Cell(),
		}
		for _, cosmetic := range []string{
			"Color", "Background Color", "Font", "Font Size",
			"Color.1", "Background Color.1", "Font.1", "Size",
			"Color - L", "Background Color - L", "Font - L", "Size - L",
		} {
			cells[cosmetic] = "0"
		}
		s.Rows = append(s.Rows, cells)
	}
	return s
}
