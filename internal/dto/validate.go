package dto

import (
	"errors"
	"net/mail"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dtroode/mediavault-server/internal/model"
)

// MaxPasswordBytes is the longest password bcrypt can hash.
const MaxPasswordBytes = 72

var validate = newValidator()

var hostnameRe = regexp.MustCompile(`^([a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?)(\.[a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?)*$`)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "email_notld", isEmailWithoutTLD)
	mustRegister(v, "password_len", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= MaxPasswordBytes
	})

	v.RegisterStructValidation(quotaPositive, UserAdminCreateRequest{}, UserAdminUpdateRequest{})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// isEmailWithoutTLD accepts addr-spec emails whose domain is a bare host
// name, so "admin@localhost" is valid.
func isEmailWithoutTLD(fl validator.FieldLevel) bool {
	s := fl.Field().String()

	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Name != "" || addr.Address != s {
		return false
	}

	at := strings.LastIndexByte(s, '@')
	if at <= 0 {
		return false
	}
	return hostnameRe.MatchString(strings.ToLower(s[at+1:]))
}

func quotaPositive(sl validator.StructLevel) {
	var quota model.Nullable[int64]
	switch req := sl.Current().Interface().(type) {
	case UserAdminCreateRequest:
		quota = req.QuotaSizeInBytes
	case UserAdminUpdateRequest:
		quota = req.QuotaSizeInBytes
	default:
		return
	}

	if q := quota.Ptr(); q != nil && *q <= 0 {
		sl.ReportError(*q, "quotaSizeInBytes", "QuotaSizeInBytes", "gt", "0")
	}
}

// checkStruct runs tag and struct-level constraints on req and appends the
// failures to errs, skipping fields that already failed to decode.
func checkStruct(req any, errs *ValidationError) error {
	err := validate.Struct(req)
	if err == nil {
		return errs.errOrNil()
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	for _, fe := range verrs {
		path := fieldPath(fe)
		errs.Add(path, "%s", constraintMessageFor(path, fe.Tag(), fe.Param()))
	}
	return errs.errOrNil()
}

// fieldPath is the namespace of fe without the root struct name, e.g.
// "acks[0].type".
func fieldPath(fe validator.FieldError) string {
	if _, path, ok := strings.Cut(fe.Namespace(), "."); ok && path != "" {
		return path
	}
	return fe.Field()
}

func constraintMessageFor(field, tag, param string) string {
	switch tag {
	case "email_notld":
		return field + " must be an email"
	case "min":
		if param == "1" {
			return field + " should not be empty"
		}
		return field + " must be longer than or equal to " + param + " characters"
	case "max":
		return field + " must be shorter than or equal to " + param + " characters"
	case "password_len":
		return field + " must be at most " + strconv.Itoa(MaxPasswordBytes) + " bytes"
	case "gt":
		return field + " must be a positive number"
	case "avatar_color":
		colors := make([]string, 0, len(model.AvatarColors))
		for _, c := range model.AvatarColors {
			colors = append(colors, string(c))
		}
		return field + " must be one of the following values: " + strings.Join(colors, ", ")
	default:
		return field + " is invalid"
	}
}
