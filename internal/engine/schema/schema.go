// Package schema holds the declarative entity descriptions driving the
// generic CRUD engine: which fields an entity has, how each is typed,
// validated and rendered. Configs are authored per entity type and stay
// immutable for the lifetime of the process.
package schema

// EnumOption is one selectable value of an enum field.
type EnumOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FieldConfig describes one displayed or editable attribute.
type FieldConfig struct {
	Key      string    `json:"key"`
	Label    string    `json:"label"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required,omitempty"`
	Hidden   bool      `json:"hidden,omitempty"`
	ReadOnly bool      `json:"read_only,omitempty"`
	Order    int       `json:"order,omitempty"`
	Section  string    `json:"section,omitempty"`

	// Enum fields.
	Options []EnumOption `json:"options,omitempty"`
	// EntityRef / RefList: type tag of the referenced entity.
	RefType string `json:"ref_type,omitempty"`
	// ValueList: element type of the list items.
	ItemType FieldType `json:"item_type,omitempty"`

	// Validation constraints.
	Min            *float64 `json:"min,omitempty"`
	Max            *float64 `json:"max,omitempty"`
	Pattern        string   `json:"pattern,omitempty"`
	PatternMessage string   `json:"pattern_message,omitempty"`
	// Validate returns an error message, or "" when the value passes.
	Validate func(v any) string `json:"-"`

	// Format overrides the default rendering for this field.
	Format func(v any) string `json:"-"`
}

// OptionLabel resolves an enum value to its label, falling back to the
// raw value when it is not declared.
func (f FieldConfig) OptionLabel(value string) string {
	for _, o := range f.Options {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

// EntityConfig is the static descriptor of one domain entity.
type EntityConfig struct {
	Type         string        `json:"type"`
	Name         string        `json:"name"`
	PluralName   string        `json:"plural_name"`
	KeyField     string        `json:"key_field"`
	DisplayField string        `json:"display_field"`
	Fields       []FieldConfig `json:"fields"`
	// SearchFields lists the keys matched by the collection search box.
	// Empty means every non-hidden field.
	SearchFields []string `json:"search_fields,omitempty"`
	DefaultSort  string   `json:"default_sort,omitempty"`
	// PlaceholderImage is shown for entities without an image field value.
	PlaceholderImage string `json:"placeholder_image,omitempty"`
}

// Field returns the config for the given key, or nil.
func (c *EntityConfig) Field(key string) *FieldConfig {
	for i := range c.Fields {
		if c.Fields[i].Key == key {
			return &c.Fields[i]
		}
	}
	return nil
}

// VisibleFields returns the non-hidden fields in declared order.
func (c *EntityConfig) VisibleFields() []FieldConfig {
	out := make([]FieldConfig, 0, len(c.Fields))
	for _, f := range c.Fields {
		if !f.Hidden {
			out = append(out, f)
		}
	}
	return out
}

// RequiredFields returns the keys of all required fields.
func (c *EntityConfig) RequiredFields() []string {
	var keys []string
	for _, f := range c.Fields {
		if f.Required {
			keys = append(keys, f.Key)
		}
	}
	return keys
}

// EffectiveSearchFields resolves the search field set: the configured
// list, or all non-hidden field keys when unset.
func (c *EntityConfig) EffectiveSearchFields() []string {
	if len(c.SearchFields) > 0 {
		return c.SearchFields
	}
	var keys []string
	for _, f := range c.Fields {
		if !f.Hidden {
			keys = append(keys, f.Key)
		}
	}
	return keys
}

// Key returns the configured key field name, defaulting to "id".
func (c *EntityConfig) Key() string {
	if c.KeyField != "" {
		return c.KeyField
	}
	return "id"
}
