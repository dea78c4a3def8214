// Package validation binds request fields to validation rules and collects
// every failure of a request payload into a single list.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// Payload is a decoded JSON request body keyed by field name.
type Payload map[string]any

// FieldError describes why a single field was rejected.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

// RuleFunc checks one field of a payload and returns nil when it is valid.
type RuleFunc func(p Payload) *FieldError

var (
	// ErrNotObject is returned by Decode when the body is not a JSON object.
	ErrNotObject = errors.New("request body must be a JSON object")
	// ErrNotFinite is returned by Float for infinite or NaN values.
	ErrNotFinite = errors.New("number is not finite")
)

// Date layouts accepted as ISO-8601, tried in order.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

type check struct {
	tag     string
	message string
}

type valueKind int

const (
	textValue valueKind = iota
	numberValue
)

type rule struct {
	kind   valueKind
	checks []check
	// secret values are never echoed back in a FieldError.
	secret bool
}

var rules = map[string]rule{
	"first_name": {checks: []check{{"required", "First name is required"}}},
	"last_name":  {checks: []check{{"required", "Last name is required"}}},
	"position":   {checks: []check{{"required", "Position is required"}}},
	"department": {checks: []check{{"required", "Department is required"}}},
	"email":      {checks: []check{{"required,email", "Please provide a valid email address"}}},
	"salary": {kind: numberValue, checks: []check{
		{"required,numeric,finite", "Enter salary in number"},
	}},
	"date_of_joining": {checks: []check{
		{"required", "Joining date is required"},
		{"iso8601", "Please provide a valid date format (YYYY-MM-DDTHH:mm:ss.sssZ)"},
	}},
	"username": {checks: []check{{"required", "Username is required"}}},
	"password": {secret: true, checks: []check{{"min=6", "Password must be at least 6 characters long"}}},
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("iso8601", func(fl validator.FieldLevel) bool {
		_, err := ParseTime(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		_, err := Payload{"v": fl.Field().String()}.Float("v")
		return err == nil
	}); err != nil {
		panic(err)
	}
	return v
}

// Rule returns the rule bound to field. The second result is false for
// fields that have no rule.
func Rule(field string) (RuleFunc, bool) {
	r, ok := rules[field]
	if !ok {
		return nil, false
	}

	return func(p Payload) *FieldError {
		raw := p[field]
		value := normalize(raw, r.kind)
		for _, c := range r.checks {
			if err := validate.Var(value, c.tag); err != nil {
				fe := &FieldError{Field: field, Message: c.message}
				if !r.secret {
					fe.Value = raw
				}
				return fe
			}
		}
		return nil
	}, true
}

// Validate runs the rule of every listed field against p and returns all
// failures in the order the fields were given. Fields without a rule are skipped.
func Validate(p Payload, fields ...string) []FieldError {
	var errs []FieldError
	for _, field := range fields {
		check, ok := Rule(field)
		if !ok {
			continue
		}
		if fe := check(p); fe != nil {
			errs = append(errs, *fe)
		}
	}
	return errs
}

// Decode reads a JSON object from r. Numbers are kept as json.Number.
func Decode(r io.Reader) (Payload, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}
	return Payload(obj), nil
}

// String returns the field as text, or "" when it is absent.
func (p Payload) String(field string) string {
	return normalize(p[field], textValue)
}

// Has reports whether the field is present.
func (p Payload) Has(field string) bool {
	_, ok := p[field]
	return ok
}

// Float returns the field as a finite number.
func (p Payload) Float(field string) (float64, error) {
	f, err := strconv.ParseFloat(normalize(p[field], numberValue), 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, ErrNotFinite
	}
	return f, nil
}

// Time returns the field parsed as an ISO-8601 date or timestamp.
func (p Payload) Time(field string) (time.Time, error) {
	return ParseTime(p.String(field))
}

// ParseTime parses s using the accepted ISO-8601 layouts.
func ParseTime(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid ISO-8601 date %q", s)
}

// normalize turns a decoded JSON value into the string the validator checks.
// Objects, arrays and null become "".
func normalize(v any, kind valueKind) string {
	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		if kind == numberValue {
			if f, err := val.Float64(); err == nil {
				return strconv.FormatFloat(f, 'f', -1, 64)
			}
		}
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}
