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

// rpcCodec speaks the function-call protocol: every call is a POST to
// one of three fixed paths with a uniform body, and every result comes
// back wrapped in a {status, value, errorMessage} envelope. Identity is
// injected as a userId argument rather than a header.
type rpcCodec struct{}

type rpcEnvelope struct {
	Status       string          `json:"status"`
	Value        json.RawMessage `json:"value"`
	ErrorMessage string          `json:"errorMessage"`
}

func rpcPath(kind opKind) string {
	switch kind {
	case opMutation:
		return "/api/mutation"
	case opAction:
		return "/api/action"
	}
	return "/api/query"
}

func (rpcCodec) newRequest(ctx context.Context, base *url.URL, id *domain.Identity, op *operation) (*http.Request, error) {
	args := make(map[string]any, len(op.args)+1)
	for k, v := range op.args {
		args[k] = v
	}
	if id != nil && !op.skipIdentity {
		args["userId"] = id.UserID
	}

	data, err := json.Marshal(map[string]any{
		"path":   op.fn,
		"args":   args,
		"format": "json",
	})
	if err != nil {
		return nil, errInvalidURL(err)
	}

	u := *base
	u.Path = strings.TrimSuffix(base.Path, "/") + rpcPath(op.kind)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewBuffer(data))
	if err != nil {
		return nil, errInvalidURL(err)
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func (rpcCodec) decode(status int, body []byte, out any) error {
	env := rpcEnvelope{}
	if err := json.Unmarshal(body, &env); err != nil {
		if status < 200 || status >= 300 {
			return errServer(status, "")
		}
		return errDecode(err)
	}

	// an envelope-level error wins regardless of HTTP status
	if env.Status == "error" {
		return errBackend(env.ErrorMessage)
	}
	if status < 200 || status >= 300 {
		return errServer(status, env.ErrorMessage)
	}

	if out == nil {
		return nil
	}
	if len(env.Value) == 0 || string(env.Value) == "null" {
		return errDecode(fmt.Errorf("envelope value missing for %T result", out))
	}
	if err := json.Unmarshal(env.Value, out); err != nil {
		return errDecode(err)
	}
	if err := checkDecoded(reflect.ValueOf(out)); err != nil {
		return errDecode(err)
	}
	return nil
}
