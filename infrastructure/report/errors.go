package report

import "fmt"

// WriteError indica que o relatório não pôde ser gravado no destino
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("falha ao gravar relatório em %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

func NewWriteError(path string, err error) *WriteError {
	return &WriteError{Path: path, Err: err}
}
