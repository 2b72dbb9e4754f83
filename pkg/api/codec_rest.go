package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strings"

	"github.com/cashstate/cashstate-go/pkg/domain"
)

// restCodec speaks plain JSON over resource paths. Identity travels as a
// bearer header, errors come back as {"detail": "..."}.
type restCodec struct{}

func (restCodec) newRequest(ctx context.Context, base *url.URL, id *domain.Identity, op *operation) (*http.Request, error) {
	u := *base
	u.Path = strings.TrimSuffix(base.Path, "/") + op.path
	if len(op.query) > 0 {
		u.RawQuery = op.query.Encode()
	}

	var body *bytes.Buffer
	if op.body != nil {
		data, err := json.Marshal(op.body)
		if err != nil {
			return nil, errInvalidURL(err)
		}
		body = bytes.NewBuffer(data)
	} else {
		body = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, op.method, u.String(), body)
	if err != nil {
		return nil, errInvalidURL(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if id != nil && id.AccessToken != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", id.AccessToken))
	}
	return req, nil
}

func (restCodec) decode(status int, body []byte, out any) error {
	if status < 200 || status >= 300 {
		detail := struct {
			Detail string `json:"detail"`
		}{}
		// a body that isn't the error shape still yields a generic
		// server error, never a decode failure
		_ = json.Unmarshal(body, &detail)
		return errServer(status, detail.Detail)
	}

	if out == nil {
		return nil
	}
	if len(body) == 0 {
		return errInvalidResponse(fmt.Errorf("empty body for %T result", out))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errDecode(err)
	}
	if err := checkDecoded(reflect.ValueOf(out)); err != nil {
		return errDecode(err)
	}
	return nil
}
