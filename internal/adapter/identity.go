package adapter

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/sammirack/admin-sync/internal/config"
	"github.com/sammirack/admin-sync/internal/logger"
	"github.com/sammirack/admin-sync/internal/utils"
)

// UnknownIP is substituted when the external IP lookup is disabled or
// fails. Identities degrade to "username@unknown" rather than blocking a
// save on a third-party endpoint.
const UnknownIP = "unknown"

type ipLookupResponse struct {
	IP string `json:"ip"`
}

type httpIdentityProvider struct {
	client    *utils.HTTPClient
	lookupURL string
	username  string
	logger    *logger.Logger

	mu       sync.Mutex
	cachedIP string
}

// NewHTTPIdentityProvider constructs an [IdentityProvider] that resolves the
// client's external IP through the configured lookup endpoint (ipify-style
// `{"ip": "..."}` response) and combines it with the operator account name.
// The IP is resolved once and cached for the lifetime of the provider.
func NewHTTPIdentityProvider(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) IdentityProvider {
	client := utils.NewHTTPClient()
	client.SetTimeout(adapterCfg.RequestTimeout)

	return &httpIdentityProvider{
		client:    client,
		lookupURL: adapterCfg.IdentityURL,
		username:  appCfg.Username,
		logger:    logger,
	}
}

// Identity implements [IdentityProvider]. It returns "username@ip", where ip
// is the cached external address or [UnknownIP] when the lookup is disabled
// or failed. Lookup failures are logged, never propagated.
func (p *httpIdentityProvider) Identity(ctx context.Context) string {
	return p.username + "@" + p.clientIP(ctx)
}

func (p *httpIdentityProvider) clientIP(ctx context.Context) string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cachedIP != "" {
		return p.cachedIP
	}
	if p.lookupURL == "" {
		return UnknownIP
	}

	resp, err := p.client.R().SetContext(ctx).Get(p.lookupURL)
	if err != nil {
		p.logger.Warn().Err(err).Msg("external ip lookup failed")
		return UnknownIP
	}
	if err = mapHTTPError(resp); err != nil {
		p.logger.Warn().Err(err).Msg("external ip lookup failed")
		return UnknownIP
	}

	var body ipLookupResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil || body.IP == "" {
		p.logger.Warn().Err(err).Msg("external ip lookup returned no address")
		return UnknownIP
	}

	p.cachedIP = body.IP
	return p.cachedIP
}
