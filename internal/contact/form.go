// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package contact

import (
	"fmt"
	"strings"
)

// Field names a contact form input. The values double as the EmailJS
// template parameter names and the HTML input names.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldMessage Field = "message"
)

// Fields lists every input in display order.
var Fields = []Field{FieldName, FieldEmail, FieldMessage}

// Form is a snapshot of the three inputs.
type Form struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Message string `json:"message" form:"message"`
}

// Get returns the value of one input.
func (f Form) Get(field Field) string {
	switch field {
	case FieldName:
		return f.Name
	case FieldEmail:
		return f.Email
	case FieldMessage:
		return f.Message
	}
	return ""
}

// Set updates one input.
func (f *Form) Set(field Field, value string) error {
	switch field {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldMessage:
		f.Message = value
	default:
		return fmt.Errorf("unknown contact field %q", field)
	}
	return nil
}

// Missing lists required inputs that are empty. Only emptiness is checked;
// the shape of the email address is left to the delivery service.
func (f Form) Missing() []Field {
	var missing []Field
	for _, field := range Fields {
		if f.Get(field) == "" {
			missing = append(missing, field)
		}
	}
	return missing
}

// Validate returns a *ValidationError when any required input is empty.
func (f Form) Validate() error {
	if missing := f.Missing(); len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// IsEmpty reports whether every input is empty.
func (f Form) IsEmpty() bool {
	return f == Form{}
}

// Params returns the template parameters sent to the delivery service.
func (f Form) Params() map[string]string {
	return map[string]string{
		string(FieldName):    f.Name,
		string(FieldEmail):   f.Email,
		string(FieldMessage): f.Message,
	}
}

func joinFields(fields []Field) string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
