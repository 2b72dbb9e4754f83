// Package api is the typed client contract for the CashState backend:
// one strongly-typed method per backend operation, built on a shared
// transport and a per-variant envelope codec.
package api

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cashstate/cashstate-go/pkg/config"
	"github.com/cashstate/cashstate-go/pkg/domain"
	"github.com/cashstate/cashstate-go/pkg/session"
)

// Client talks to one backend. Safe for concurrent use; the only shared
// mutable state (the identity) lives behind the session store.
type Client struct {
	base    *url.URL
	httpc   *http.Client
	codec   codec
	variant config.Variant
	session *session.Store

	log   zerolog.Logger
	debug bool
}

type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client, mainly for tests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// WithLogger sets the logger used for debug request logging.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New builds a Client for the configured backend variant.
func New(cfg *config.Config, sess *session.Store, opts ...Option) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, errInvalidURL(err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, errInvalidURL(&url.Error{Op: "parse", URL: cfg.BaseURL, Err: io.ErrUnexpectedEOF})
	}

	c := &Client{
		base:    base,
		httpc:   &http.Client{Timeout: cfg.Timeout},
		variant: cfg.Variant,
		session: sess,
		log:     zerolog.Nop(),
		debug:   cfg.Debug,
	}
	if cfg.Variant == config.VariantRPC {
		c.codec = rpcCodec{}
	} else {
		c.codec = restCodec{}
	}

	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// call performs one round trip: resolve identity, build the request via
// the codec, send it, classify failures, decode the result into out.
func (c *Client) call(ctx context.Context, op *operation, out any) error {
	var id *domain.Identity
	if !op.skipIdentity {
		id = c.session.Current()
		if id == nil {
			return errNotLoggedIn()
		}
		// a stale access token is rotated before it can 401; if the
		// rotation fails the old token is sent and the server decides
		if id.HasExpired() && id.RefreshToken != "" {
			if refreshed, err := c.Refresh(ctx); err == nil {
				if err := c.session.Set(refreshed); err == nil {
					id = refreshed
				}
			}
		}
	}

	req, err := c.codec.newRequest(ctx, c.base, id, op)
	if err != nil {
		return err
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	if c.debug {
		c.log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("fn", op.fn).Msg("api call")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return errNetwork(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errInvalidResponse(err)
	}

	if c.debug {
		c.log.Debug().Int("status", resp.StatusCode).Str("url", req.URL.String()).Msg("api reply")
	}

	// 401 always means the identity is no longer valid, whatever the body says
	if resp.StatusCode == http.StatusUnauthorized {
		return errUnauthorized()
	}

	return c.codec.decode(resp.StatusCode, body, out)
}
