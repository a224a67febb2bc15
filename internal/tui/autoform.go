// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package tui

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"grimm.is/flywatch/internal/errors"
	"grimm.is/flywatch/internal/i18n"
)

// AutoForm generates a huh.Form from a struct pointer using reflection.
// It parses the `tui:"..."` tag to configure field properties. Title and
// desc values are message keys and are translated through p.
//
// Only string and bool fields can be bound; numeric settings are edited as
// strings and converted by the caller.
func AutoForm(v any, p *i18n.Printer) *huh.Form {
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr || val.Elem().Kind() != reflect.Struct {
		panic("AutoForm requires a pointer to a struct")
	}

	el := val.Elem()
	t := el.Type()
	var fields []huh.Field

	for i := 0; i < el.NumField(); i++ {
		field := el.Field(i)
		fieldType := t.Field(i)
		tag := fieldType.Tag.Get("tui")
		if tag == "" {
			continue
		}

		props := parseTag(tag)

		title := fieldType.Name
		if k := props["title"]; k != "" {
			title = p.T(k)
		}
		desc := ""
		if k := props["desc"]; k != "" {
			desc = p.T(k)
		}

		switch field.Kind() {
		case reflect.String:
			if optsStr, ok := props["options"]; ok {
				var selectOpts []huh.Option[string]
				for _, o := range strings.Split(optsStr, "|") {
					// "Label:Value" or just "Value"
					label, value, found := strings.Cut(o, ":")
					if !found {
						value = label
					}
					selectOpts = append(selectOpts, huh.NewOption(strings.TrimSpace(label), strings.TrimSpace(value)))
				}
				fields = append(fields, huh.NewSelect[string]().
					Title(title).
					Description(desc).
					Options(selectOpts...).
					Value(field.Addr().Interface().(*string)))
				continue
			}

			input := huh.NewInput().
				Title(title).
				Description(desc).
				Value(field.Addr().Interface().(*string))
			if ph := props["placeholder"]; ph != "" {
				input.Placeholder(p.T(ph))
			}
			if vKey, ok := props["validate"]; ok {
				if validator, exists := Validators[vKey]; exists {
					input.Validate(validator)
				}
			}
			fields = append(fields, input)

		case reflect.Bool:
			fields = append(fields, huh.NewConfirm().
				Title(title).
				Description(desc).
				Value(field.Addr().Interface().(*bool)))

		default:
			DebugLog("AutoForm: unsupported field kind", "field", fieldType.Name, "kind", field.Kind())
		}
	}

	return huh.NewForm(
		huh.NewGroup(fields...),
	).WithTheme(huh.ThemeBase16())
}

// parseTag splits "key=val,key2=val2".
func parseTag(tag string) map[string]string {
	res := make(map[string]string)
	for _, part := range strings.Split(tag, ",") {
		k, v, ok := strings.Cut(part, "=")
		if ok {
			res[strings.TrimSpace(k)] = strings.TrimSpace(v)
		}
	}
	return res
}

// Validators is the registry referenced by validate= in tui tags.
var Validators = map[string]func(string) error{
	"required": func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(errors.KindValidation, "this field is required")
		}
		return nil
	},
	// threshold accepts an empty string (disabled) or a positive uint32.
	"threshold": func(s string) error {
		_, err := parseThreshold(s)
		return err
	},
}

// parseThreshold converts a form value into a threshold. Empty means unset.
func parseThreshold(s string) (*uint32, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return nil, errors.Errorf(errors.KindValidation, "must be a whole number up to %d", uint32(math.MaxUint32))
	}
	if n == 0 {
		return nil, errors.New(errors.KindValidation, "must be greater than zero")
	}
	v := uint32(n)
	return &v, nil
}

func formatThreshold(v *uint32) string {
	if v == nil {
		return ""
	}
	return strconv.FormatUint(uint64(*v), 10)
}
