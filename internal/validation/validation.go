// Package validation registers request validation rules on gin's validator and
// turns validation failures into client-facing messages.
package validation

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/yukikurage/project-showcase-api/internal/models"
	"github.com/yukikurage/project-showcase-api/internal/utils"
)

var (
	// custom validation tags & texts
	batchIDTag   = "batchid"
	batchIDText  = "{0} must contain only uppercase letters and numbers"
	batchTag     = "batchrange"
	batchText    = "{0} must be in format YYYY-YYYY"
	categoryTag  = "category"
	categoryText = "{0} must be one of undergraduate, capstone, research, internship"
	httpURLTag   = "httpurl"
	httpURLText  = "{0} must be a valid http or https URL"
	httpURLRegex = regexp.MustCompile(`^https?://\S+$`)
	yearTag      = "projectyear"
	yearText     = "{0} must be between 2000 and next year"
	notBlankTag  = "notblank"
	notBlankText = "{0} cannot be blank"

	requiredTag  = "required"
	requiredText = "{0} is required"

	once       sync.Once
	translator ut.Translator
	now        = time.Now
)

// Init registers custom tags and English translations on gin's validator.
// It is safe to call more than once.
func Init() {
	once.Do(func() {
		validate, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			panic("validation: gin validator engine is not go-playground/validator")
		}

		_en := en.New()
		uni := ut.New(_en, _en)
		translator, _ = uni.GetTranslator("en")
		_ = en_translations.RegisterDefaultTranslations(validate, translator)

		// Use JSON tag names for errors instead of Go struct names.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = validate.RegisterValidation(batchIDTag, batchIDValidation)
		_ = validate.RegisterValidation(batchTag, batchRangeValidation)
		_ = validate.RegisterValidation(categoryTag, categoryValidation)
		_ = validate.RegisterValidation(httpURLTag, httpURLValidation)
		_ = validate.RegisterValidation(yearTag, projectYearValidation)
		_ = validate.RegisterValidation(notBlankTag, notBlankValidation)

		registerTranslation(validate, batchIDTag, batchIDText)
		registerTranslation(validate, batchTag, batchText)
		registerTranslation(validate, categoryTag, categoryText)
		registerTranslation(validate, httpURLTag, httpURLText)
		registerTranslation(validate, yearTag, yearText)
		registerTranslation(validate, notBlankTag, notBlankText)
		registerTranslation(validate, requiredTag, requiredText, true)
	})
}

func registerTranslation(validate *validator.Validate, tag, text string, override ...bool) {
	var ovrd bool
	if len(override) > 0 {
		ovrd = override[0]
	}
	_ = validate.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, ovrd) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// Message converts a binding error into a single client-facing sentence.
func Message(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		if translator == nil {
			return validationErrs[0].Error()
		}
		return validationErrs[0].Translate(translator)
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		return "Request body is required"
	case errors.Is(err, io.ErrUnexpectedEOF), errors.As(err, &syntaxErr):
		return "Request body is not valid JSON"
	case errors.As(err, &typeErr):
		if typeErr.Field != "" {
			return typeErr.Field + " has an invalid type"
		}
		return "Request body has an invalid type"
	}
	return "Invalid request body"
}

// BindJSON binds the request body into obj and returns a client-facing
// message when binding or validation fails.
func BindJSON(c *gin.Context, obj interface{}) (string, bool) {
	if err := c.ShouldBindJSON(obj); err != nil {
		return Message(err), false
	}
	return "", true
}

// Custom Validators

func batchIDValidation(fl validator.FieldLevel) bool {
	value := utils.NormalizeBatchID(fl.Field().String())
	return utils.ValidBatchID(value)
}

func batchRangeValidation(fl validator.FieldLevel) bool {
	return utils.ValidBatchRange(fl.Field().String())
}

func categoryValidation(fl validator.FieldLevel) bool {
	return models.Category(fl.Field().String()).Valid()
}

func httpURLValidation(fl validator.FieldLevel) bool {
	return httpURLRegex.MatchString(fl.Field().String())
}

func projectYearValidation(fl validator.FieldLevel) bool {
	year := int(fl.Field().Int())
	return year >= 2000 && year <= now().Year()+1
}

func notBlankValidation(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
