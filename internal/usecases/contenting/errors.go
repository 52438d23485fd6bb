package contenting

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownContentType = errors.New("tipo de conteúdo desconhecido")
	ErrNoTemplates        = errors.New("nenhum template disponível")
	ErrEmptyChoices       = errors.New("lista de opções vazia")
	ErrUnresolvedField    = errors.New("placeholder não resolvido")
	ErrGenerationPanic    = errors.New("pânico durante a geração")
)

// ContentError é um erro de geração com o contexto do conteúdo envolvido
type ContentError struct {
	Err         error
	ContentType string
	Details     string
}

func (e *ContentError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s (%s): %s", e.Err.Error(), e.ContentType, e.Details)
	}
	return fmt.Sprintf("%s (%s)", e.Err.Error(), e.ContentType)
}

func (e *ContentError) Unwrap() error {
	return e.Err
}

func NewContentError(err error, contentType string, details string) *ContentError {
	return &ContentError{
		Err:         err,
		ContentType: contentType,
		Details:     details,
	}
}
