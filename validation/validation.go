// Package validation holds one typed record per front-desk form and the
// checks that must pass before a request is sent or accepted.
package validation

import (
	"errors"
	"fmt"
	"log"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
)

const DateLayout = "2006-01-02"

// Errors maps a JSON field path to a human readable message.
type Errors map[string]string

func (e Errors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+e[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e Errors) Add(field, msg string) {
	if _, exists := e[field]; !exists {
		e[field] = msg
	}
}

// Err returns nil when there are no field errors.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// AsErrors extracts field errors from err, if any.
func AsErrors(err error) (Errors, bool) {
	var fe Errors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 ()\-]{6,19}$`)

var (
	once     sync.Once
	validate *validator.Validate
)

func engine() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
		if err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return phonePattern.MatchString(fl.Field().String())
		}); err != nil {
			log.Fatalf("❌ register phone validator: %v", err)
		}
		validate = v
	})
	return validate
}

// Struct runs the tag rules on a form and converts failures into Errors.
func Struct(form any) Errors {
	errs := Errors{}
	err := engine().Struct(form)
	if err == nil {
		return errs
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		errs.Add("_", err.Error())
		return errs
	}
	for _, fe := range ves {
		errs.Add(fieldPath(fe), message(fe))
	}
	return errs
}

// fieldPath keeps only JSON names: the root struct and embedded forms carry
// Go (upper case) names and are dropped. "StayUpdateForm.StayForm.guestEmail"
// becomes "guestEmail".
func fieldPath(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	kept := parts[:0]
	for _, p := range parts {
		if p != "" && unicode.IsUpper(rune(p[0])) {
			continue
		}
		kept = append(kept, p)
	}
	if len(kept) == 0 {
		return fe.Field()
	}
	return strings.Join(kept, ".")
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "phone":
		return "must be a valid phone number"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "len":
		return "must be exactly " + fe.Param() + " characters"
	case "iso4217":
		return "must be an ISO 4217 currency code"
	case "datetime":
		if fe.Param() == DateLayout {
			return "must be a date in YYYY-MM-DD format"
		}
		return "must be a timestamp in RFC 3339 format"
	}
	return "is invalid"
}

// ParseDate reads a YYYY-MM-DD string as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
}

// dateOf is t's calendar date in t's own location, as midnight UTC so it
// compares directly with ParseDate results.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// withinDays reports whether the stored date d lies within n days of now's
// local calendar date.
func withinDays(d, now time.Time, n int) bool {
	diff := dateOf(d.UTC()).Sub(dateOf(now)) / (24 * time.Hour)
	if diff < 0 {
		diff = -diff
	}
	return int(diff) <= n
}
