package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	ErrTenantNotFound = goerr.New("tenant config not found")
)

// Tags classifying errors by how they are reported to the caller
var (
	// ErrTagMalformedPayload marks a body that could not be decoded into a known payload
	ErrTagMalformedPayload = goerr.NewTag("malformed_payload")
	// ErrTagTenantUnknown marks a request for a workspace that has not installed the app
	ErrTagTenantUnknown = goerr.NewTag("tenant_unknown")
	// ErrTagUpstream marks a failed Slack API call
	ErrTagUpstream = goerr.NewTag("upstream_unavailable")
	// ErrTagInvalidSignature marks a request whose Slack signature did not verify
	ErrTagInvalidSignature = goerr.NewTag("invalid_signature")
)
