// Package validators holds the shared validation engine. The per-area
// subpackages build fiber middlewares on top of it that parse the request
// body and store it in c.Locals for the controller.
package validators

import (
	"elearning/models"
	"elearning/utils"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/gofiber/fiber/v2"
)

var (
	validate   = validator.New()
	translator ut.Translator
)

const requiredText = "{0} is required"

func init() {
	english := en.New()
	translator, _ = ut.New(english, english).GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterTranslation("required", translator,
		func(t ut.Translator) error { return t.Add("required", requiredText, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T("required", fe.Field())
			return s
		},
	)
}

// Struct validates s and converts failures into *utils.ValidationError keyed
// by JSON field path.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fieldPath(fe)] = fe.Translate(translator)
	}
	return &utils.ValidationError{Fields: fields}
}

// fieldPath drops the top-level struct name from the namespace:
// "LoginRequest.email" becomes "email".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

// Body returns a middleware that parses the request body into a new T,
// validates it and stores it under key.
func Body[T any](key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(T)
		if err := c.BodyParser(reqData); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body!")
		}
		if err := Struct(reqData); err != nil {
			return err
		}
		c.Locals(key, reqData)
		return c.Next()
	}
}

// ValidID rejects requests whose :id parameter is not a record id.
func ValidID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !models.IsValidID(c.Params("id")) {
			return &utils.InvalidIDError{Path: "_id"}
		}
		return c.Next()
	}
}
