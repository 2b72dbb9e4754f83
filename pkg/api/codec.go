package api

import (
	"context"
	"net/http"
	"net/url"
	"reflect"

	"github.com/cashstate/cashstate-go/pkg/domain"
)

// codec is the backend-specific wrapping and unwrapping of call results.
// One implementation per backend variant, selected at configuration time.
type codec interface {
	// newRequest builds the outbound HTTP request, attaching identity
	// the way this variant expects. id is nil for skip-identity calls
	// or when talking anonymously.
	newRequest(ctx context.Context, base *url.URL, id *domain.Identity, op *operation) (*http.Request, error)

	// decode interprets a response. 401 is classified before decode
	// ever runs, so implementations never see it.
	decode(status int, body []byte, out any) error
}

// validatable lets reply types declare the fields the backend must
// supply. A reply that omits one is a hard decode failure, never a
// silently zero-valued result.
type validatable interface {
	Validate() error
}

// checkDecoded walks a decoded result and runs every Validate it finds,
// nested replies and list elements included.
func checkDecoded(v reflect.Value) error {
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return nil
		}
		return checkDecoded(v.Elem())
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			if err := checkDecoded(v.Index(i)); err != nil {
				return err
			}
		}
	case reflect.Struct:
		if v.CanAddr() {
			if val, ok := v.Addr().Interface().(validatable); ok {
				if err := val.Validate(); err != nil {
					return err
				}
			}
		}
		for i := 0; i < v.NumField(); i++ {
			if !v.Type().Field(i).IsExported() {
				continue
			}
			if err := checkDecoded(v.Field(i)); err != nil {
				return err
			}
		}
	}
	return nil
}
