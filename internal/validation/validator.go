package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/labstack/echo/v4"
)

type violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// PayloadError holds all violations found in payload
type PayloadError struct {
	violations []violation
}

func (e *PayloadError) Error() string {
	buff := bytes.NewBufferString("")

	for _, err := range e.violations {
		buff.WriteString(err.Message)
		buff.WriteString("\n")
	}

	return buff.String()
}

// Violation appends violation to the error
func (e *PayloadError) Violation(field string, msg string) {
	e.violations = append(e.violations, violation{Field: field, Message: msg})
}

// Fields returns names of violated fields in order of appearance
func (e *PayloadError) Fields() []string {
	fields := make([]string, 0, len(e.violations))
	for _, v := range e.violations {
		fields = append(fields, v.Field)
	}
	return fields
}

func (e *PayloadError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Errors []violation `json:"errors"`
	}{
		Errors: e.violations,
	})
}

// Validator validates structs and translates violations
type Validator struct {
	validator  *validator.Validate
	translator ut.Translator
}

// New builds new Validator
func New(validator *validator.Validate, translator ut.Translator) *Validator {
	return &Validator{
		validator:  validator,
		translator: translator,
	}
}

// NewEnglish builds Validator which reports json field names and english messages
func NewEnglish() (*Validator, error) {
	enLocale := en.New()
	unvTranslator := ut.New(enLocale, enLocale)
	trans, ok := unvTranslator.GetTranslator("en")
	if !ok {
		return nil, errors.New("failed to build validator because of missing en translations")
	}

	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := entranslations.RegisterDefaultTranslations(v, trans); err != nil {
		return nil, fmt.Errorf("failed to register en translations - %w", err)
	}
	return New(v, trans), nil
}

// Struct validates struct, violations are reported as PayloadError
func (v *Validator) Struct(i any) error {
	err := v.validator.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return v.payloadError(ve)
	}
	return err
}

func (v *Validator) payloadError(ve validator.ValidationErrors) error {
	pldErr := &PayloadError{violations: make([]violation, 0)}
	for _, e := range ve {
		pldErr.Violation(e.Field(), e.Translate(v.translator))
	}
	return pldErr
}

// EchoValidator adapts Validator to echo.Validator
type EchoValidator struct {
	validator *Validator
}

// Echo builds new EchoValidator
func Echo(validator *Validator) *EchoValidator {
	return &EchoValidator{validator: validator}
}

func (v *EchoValidator) Validate(i any) error {
	err := v.validator.Struct(i)
	if err == nil {
		return nil
	}

	var pldErr *PayloadError
	if errors.As(err, &pldErr) {
		return pldErr
	}

	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
