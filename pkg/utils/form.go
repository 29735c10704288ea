package utils

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/form/v4"
)

var formDecoder = form.NewDecoder()

// normalizer is implemented by request structs that clean their own input.
type normalizer interface {
	Normalize()
}

// BindForm decodes the posted form into dst and validates it. It returns
// every field error found, or nil when dst is ready to use.
func BindForm(r *http.Request, dst any) map[string]string {
	if err := r.ParseForm(); err != nil {
		return map[string]string{"form": "Invalid form submission"}
	}

	errs := make(map[string]string)

	if err := formDecoder.Decode(dst, r.PostForm); err != nil {
		var decodeErrs form.DecodeErrors
		if !errors.As(err, &decodeErrs) {
			return map[string]string{"form": "Invalid form submission"}
		}
		for field := range decodeErrs {
			errs[formFieldName(field)] = "Invalid value"
		}
	}

	if n, ok := dst.(normalizer); ok {
		n.Normalize()
	}

	for field, msg := range ValidateStruct(dst) {
		// a decode failure is the more useful message
		if _, seen := errs[field]; !seen {
			errs[field] = msg
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// genres[1] -> genres
func formFieldName(namespace string) string {
	if i := strings.IndexByte(namespace, '['); i > 0 {
		return namespace[:i]
	}
	return namespace
}
