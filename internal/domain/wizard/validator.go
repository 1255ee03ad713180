package wizard

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"requisicoes/internal/domain/entities"
)

const justificationTag = "justification"

// Validator checks the fields of one wizard step and returns field→message errors
// keyed by the json field name.
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// registration only fails for empty tags or nil funcs
	_ = v.RegisterValidation(justificationTag, validateJustification)
	return &Validator{v: v}
}

// ValidateStep validates the fields owned by the step at index. The last step validates
// the whole draft. An empty map means the step is valid.
func (val *Validator) ValidateStep(index int, d Draft) map[string]string {
	if index < 0 || index >= len(steps) {
		return map[string]string{"step": "Etapa inválida"}
	}
	fields := steps[index].Fields

	var err error
	if len(fields) == 0 {
		err = val.v.Struct(d)
	} else {
		err = val.v.StructPartial(d, fields...)
	}
	return translate(err, d)
}

// ValidateAll validates every step of the draft.
func (val *Validator) ValidateAll(d Draft) map[string]string {
	return translate(val.v.Struct(d), d)
}

// justification length depends on the priority chosen on the item step
func validateJustification(fl validator.FieldLevel) bool {
	parent := fl.Parent()
	if parent.Kind() == reflect.Ptr {
		parent = parent.Elem()
	}
	priority := entities.Priority(parent.FieldByName("Priority").String())
	text := strings.TrimSpace(fl.Field().String())
	return utf8.RuneCountInString(text) >= priority.JustificationMinLength()
}

func translate(err error, d Draft) map[string]string {
	out := map[string]string{}
	if err == nil {
		return out
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["_"] = err.Error()
		return out
	}
	for _, fe := range verrs {
		out[fe.Field()] = message(fe, d)
	}
	return out
}

func message(fe validator.FieldError, d Draft) string {
	switch fe.Tag() {
	case "required":
		return "Campo obrigatório"
	case "email":
		return "E-mail inválido"
	case "gt":
		return "Deve ser maior que zero"
	case "oneof":
		return "Valor inválido"
	case "max":
		return fmt.Sprintf("Máximo de %s caracteres", fe.Param())
	case justificationTag:
		return fmt.Sprintf("A justificativa deve ter pelo menos %d caracteres", d.Priority.JustificationMinLength())
	default:
		return "Valor inválido"
	}
}
