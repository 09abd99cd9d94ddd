package metadata

// Default panel geometry applied to every dashboard row before layout runs.
const (
	DefaultPanelX      = 0
	DefaultPanelY      = 0
	DefaultPanelWidth  = 6
	DefaultPanelHeight = 14
)

// Default field geometry within a panel.
const (
	DefaultFieldX      = 3
	DefaultFieldY      = 5
	DefaultFieldWidth  = 50
	DefaultFieldHeight = 50
)

// ModuleRow is one row of the Modules sheet: a module or one of its
// dashboards in the two-level navigation hierarchy.
type ModuleRow struct {
	Module       string     `json:"Module"`
	ParentModule FlexString `json:"Parent Module"`
	Kind         ModuleKind `json:"Type"`
	Color        FlexString `json:"Color"`
	Icon         FlexString `json:"Icon"`
}

// TableRow is one row of the Table sheet: one field of one table, plus the
// table-level feature flags the platform repeats on every field row.
type TableRow struct {
	TableName          string     `json:"Table Name"`
	Notes              FlexBool   `json:"Notes?"`
	Events             FlexBool   `json:"Events?"`
	Timers             FlexBool   `json:"Timers?"`
	Delete             FlexBool   `json:"Delete?"`
	Clone              FlexBool   `json:"Clone?"`
	HideSearch         FlexBool   `json:"Hide Search?"`
	WebForm            FlexBool   `json:"Web Form?"`
	DisplayField       string     `json:"Display Field"`
	UniqueID           string     `json:"Unique Id"`
	Module             string     `json:"Module"`
	Field              string     `json:"Field"`
	DataType           string     `json:"Data Type"`
	Required           FlexBool   `json:"Required?"`
	ListValues         FlexString `json:"List Values"`
	AutoIncrement      FlexBool   `json:"Auto Increment?"`
	AutoIncrementStart FlexString `json:"Auto Increment Start"`
	Conditions         FlexString `json:"Conditions"`
	Format             FlexString `json:"Format"`
	DefaultValue       FlexString `json:"Default Value"`
	ValidationCond     FlexString `json:"Validation Condition"`
	ColorExpression    FlexString `json:"ColorExpression"`
	ValidationRegex    FlexString `json:"Validation Regex"`
	Recalculate        FlexBool   `json:"Recalculate on each update ?"`
	DecimalPlace       FlexString `json:"Decimal Place"`
	FieldGroupID       FlexString `json:"FieldGroupId"`
	// "Grpoup" is the platform's own header spelling; changing it breaks import.
	FieldGroupType     FlexString `json:"Field Grpoup Type"`
	FieldGroupShowIcon FlexBool   `json:"Field Group Show Icon"`
	Security           FlexString `json:"Security"`
	Role               FlexString `json:"Role"`
	ClickRule          FlexString `json:"Click Rule"`
}

// DashboardRow is one row of the Dashboard sheet: one field (or static text
// element) of one dashboard panel. Rows sharing a (module, dashboard) pair
// form a panel and share element id and panel geometry; field geometry varies
// per row.
type DashboardRow struct {
	Module     string     `json:"Module"`
	Dashboard  string     `json:"Dashboard"`
	ElementID  string     `json:"Element Id"`
	ObjectType ObjectType `json:"Object Type"`
	ObjectName string     `json:"Object Name"`
	ViewType   ViewType   `json:"View Type"`

	// Panel-level display flags.
	Bold       FlexBool `json:"Bold"`
	Italicize  FlexBool `json:"Italicize"`
	HideHeader FlexBool `json:"Hide Header?"`
	HideBody   FlexBool `json:"Hide Body?"`

	FieldType FieldType `json:"Field Type"`
	Field     FieldName `json:"Field"`

	// Field-level and label-level display flags.
	FieldBold      FlexBool `json:"Bold?"`
	FieldItalicize FlexBool `json:"Italicize?"`
	LabelBold      FlexBool `json:"Bold? - L"`
	LabelItalicize FlexBool `json:"Italicize? - L"`

	// Panel geometry, identical across a panel's rows.
	PanelX, PanelY          int
	PanelWidth, PanelHeight int

	// Field geometry within the panel.
	FieldX, FieldY          int
	FieldWidth, FieldHeight int

	// Derived per-(dashboard, object, view) attribute string.
	ViewTypeAttributes string
}

// ApplyGeometryDefaults sets the documented default geometry on rows fresh
// from the AI parse, before the layout passes overwrite them.
func (r *DashboardRow) ApplyGeometryDefaults() {
	r.PanelX, r.PanelY = DefaultPanelX, DefaultPanelY
	r.PanelWidth, r.PanelHeight = DefaultPanelWidth, DefaultPanelHeight
	r.FieldX, r.FieldY = DefaultFieldX, DefaultFieldY
	r.FieldWidth, r.FieldHeight = DefaultFieldWidth, DefaultFieldHeight
}
