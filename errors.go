package lpnb

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

// MalformedDocumentCode is the text code attached to parse failures.
const MalformedDocumentCode = "NOTEBOOK_MALFORMED"

// ErrMalformedDocument 表示输入字节不是合法的 YAML
var ErrMalformedDocument = errors.New("malformed notebook document")

func wrapMalformedDocument(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(fmt.Errorf("%w: %v", ErrMalformedDocument, err), goerrors.CategoryValidation, "parse notebook yaml").
		WithTextCode(MalformedDocumentCode)
}

// IsMalformedDocument reports whether err came from an unparsable notebook.
func IsMalformedDocument(err error) bool {
	return err != nil && errors.Is(err, ErrMalformedDocument)
}
