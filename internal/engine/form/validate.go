package form

import (
	"fmt"
	"regexp"

	"previplan/internal/engine/schema"
)

// Validate runs every field rule and collects all violations instead of
// failing fast, so one submit attempt surfaces every problem at once. The
// returned map is keyed by field key; empty means the record is clean.
func Validate(cfg *schema.EntityConfig, rec schema.Record) map[string]string {
	errs := map[string]string{}
	for _, f := range cfg.Fields {
		if msg := validateField(f, rec[f.Key]); msg != "" {
			errs[f.Key] = msg
		}
	}
	return errs
}

func validateField(f schema.FieldConfig, v any) string {
	if f.Required && schema.IsEmpty(v) {
		return "This field is required"
	}
	if schema.IsEmpty(v) {
		return ""
	}

	if f.Type == schema.TypeNumber {
		n, ok := schema.Record{"x": v}.Float("x")
		if !ok {
			return "Must be a number"
		}
		if f.Min != nil && n < *f.Min {
			return fmt.Sprintf("Minimum value is %s", trimFloat(*f.Min))
		}
		if f.Max != nil && n > *f.Max {
			return fmt.Sprintf("Maximum value is %s", trimFloat(*f.Max))
		}
	}

	if f.Pattern != "" {
		s, _ := v.(string)
		re, err := regexp.Compile(f.Pattern)
		if err == nil && !re.MatchString(s) {
			if f.PatternMessage != "" {
				return f.PatternMessage
			}
			return "Invalid format"
		}
	}

	if f.Validate != nil {
		if msg := f.Validate(v); msg != "" {
			return msg
		}
	}
	return ""
}

func trimFloat(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}
