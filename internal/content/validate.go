package content

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	validate *validator.Validate
	sites    []string
}

func NewValidator(sites []string) *Validator {
	v := &Validator{
		validate: validator.New(),
		sites:    sites,
	}

	// Registration only fails on an empty tag or nil func.
	_ = v.validate.RegisterValidation("notrailingspacecomma", func(fl validator.FieldLevel) bool {
		return !strings.HasSuffix(fl.Field().String(), " ,")
	})
	_ = v.validate.RegisterValidation("notrailingcomma", func(fl validator.FieldLevel) bool {
		return !strings.HasSuffix(fl.Field().String(), ",")
	})
	_ = v.validate.RegisterValidation("site", func(fl validator.FieldLevel) bool {
		return slices.Contains(v.sites, fl.Field().String())
	})

	return v
}

type rule struct {
	field    string
	value    any
	tag      string
	messages map[string]string
}

func listRule(field string, value string) rule {
	return rule{
		field: field,
		value: value,
		tag:   "required,notrailingspacecomma,notrailingcomma",
		messages: map[string]string{
			"required":             fmt.Sprintf("%s field cannot be blank.", field),
			"notrailingspacecomma": fmt.Sprintf("%s field cannot end with a space followed by a comma.", field),
			"notrailingcomma":      fmt.Sprintf("%s field should not end with a comma.", field),
		},
	}
}

// Validate checks the form values and returns a *ValidationError for the
// first rule that does not hold. Rules are checked in a fixed order.
func (v *Validator) Validate(values FormValues) error {
	rules := []rule{
		listRule("Artist", values.Artist),
		listRule("Language", values.Language),
		listRule("Tags", values.Tags),
		{
			field:    "Title",
			value:    values.Title,
			tag:      "required",
			messages: map[string]string{"required": "Title cannot be blank."},
		},
		{
			field: "URL",
			value: values.Url,
			tag:   "omitempty,startswith=" + RequiredUrlPrefix,
			messages: map[string]string{
				"startswith": fmt.Sprintf("URL must start with '%s' or be left blank.", RequiredUrlPrefix),
			},
		},
		{
			field: "Site",
			value: values.Site,
			tag:   "site",
			messages: map[string]string{
				"site": fmt.Sprintf("Site must be one of: %s.", strings.Join(v.sites, ", ")),
			},
		},
		{
			field: "Rating",
			value: values.Rating,
			tag:   fmt.Sprintf("min=%d,max=%d", MinRating, MaxRating),
			messages: map[string]string{
				"min": fmt.Sprintf("Rating must be between %d and %d.", MinRating, MaxRating),
				"max": fmt.Sprintf("Rating must be between %d and %d.", MinRating, MaxRating),
			},
		},
	}

	for _, r := range rules {
		if err := v.check(r); err != nil {
			return err
		}
	}
	return nil
}

func (v *Validator) check(r rule) error {
	err := v.validate.Var(r.value, r.tag)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return err
	}

	tag := fieldErrors[0].Tag()
	msg, ok := r.messages[tag]
	if !ok {
		msg = fmt.Sprintf("%s failed the '%s' check.", r.field, tag)
	}
	return &ValidationError{Field: r.field, Message: msg}
}
