package schema

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/studyforge/catalog/pkg/types"
)

// validate is a package-level validator instance. A single instance caches
// struct metadata across calls.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report field paths using the json tag names so they match the
	// paths produced by Validate.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return types.IsValidCategory(types.Category(fl.Field().String()))
	})

	return v
}

// ValidateTopic re-checks an already-typed Topic using the declared struct
// tags. It is used on snapshot import paths, where records arrive typed
// rather than as loose candidate maps. Every tag violation is collected.
func ValidateTopic(t *types.Topic) []types.ValidationError {
	err := validate.Struct(t)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []types.ValidationError{{Path: "topic", Reason: err.Error()}}
	}

	out := make([]types.ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, types.ValidationError{
			Path:   fieldPath(fe),
			Reason: reasonFor(fe),
		})
	}
	return out
}

// fieldPath converts a validator namespace like "Topic.resources[2].url"
// into the catalog's field-path form "resources[2].url".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "category":
		return "unknown category"
	default:
		return "failed " + fe.Tag() + " check"
	}
}
