package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/claraboia/jcreader/internal/command"
)

var fieldLabels = map[string]string{
	"Email":                "E-mail",
	"Password":             "Senha",
	"PasswordConfirmation": "Confirmação de senha",
	"Name":                 "Nome",
	"Rating":               "Avaliação",
	"Comment":              "Comentário",
	"ImagePath":            "Imagem",
}

// formError turns validation failures into the messages the site's forms
// show. Other errors pass through unchanged.
func formError(err error) error {
	if !errors.Is(err, command.ErrInvalidForm) {
		return err
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, fieldMessage(fe))
	}
	return errors.New(strings.Join(messages, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	label, ok := fieldLabels[fe.Field()]
	if !ok {
		label = fe.Field()
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s: este campo é obrigatório.", label)
	case "email":
		return fmt.Sprintf("%s: informe um endereço de e-mail válido.", label)
	case "min":
		if fe.Field() == "Rating" {
			return fmt.Sprintf("%s: escolha uma nota de 1 a 5.", label)
		}
		return fmt.Sprintf("%s: use pelo menos %s caracteres.", label, fe.Param())
	case "max":
		if fe.Field() == "Rating" {
			return fmt.Sprintf("%s: escolha uma nota de 1 a 5.", label)
		}
		return fmt.Sprintf("%s: use no máximo %s caracteres.", label, fe.Param())
	case "eqfield":
		return fmt.Sprintf("%s: as senhas não coincidem.", label)
	case "file":
		return fmt.Sprintf("%s: arquivo não encontrado.", label)
	default:
		return fmt.Sprintf("%s: valor inválido.", label)
	}
}
