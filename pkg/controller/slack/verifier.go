package slack

import (
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/atodeyomu/pkg/domain/interfaces"
	"github.com/secmon-lab/atodeyomu/pkg/domain/model"
	"github.com/slack-go/slack"
)

// SignatureVerifier checks X-Slack-Signature with the app's signing secret
type SignatureVerifier struct {
	signingSecret string
}

var _ interfaces.SignatureVerifier = &SignatureVerifier{}

// NewSignatureVerifier creates a verifier for the signing secret
func NewSignatureVerifier(signingSecret string) *SignatureVerifier {
	return &SignatureVerifier{signingSecret: signingSecret}
}

// Verify checks the signature and timestamp headers against the raw body
func (v *SignatureVerifier) Verify(header http.Header, body []byte) error {
	if v.signingSecret == "" {
		return goerr.New("signing secret is not configured", goerr.T(model.ErrTagInvalidSignature))
	}

	sv, err := slack.NewSecretsVerifier(header, v.signingSecret)
	if err != nil {
		return goerr.Wrap(err, "invalid signature headers", goerr.T(model.ErrTagInvalidSignature))
	}
	if _, err := sv.Write(body); err != nil {
		return goerr.Wrap(err, "failed to hash request body", goerr.T(model.ErrTagInvalidSignature))
	}
	if err := sv.Ensure(); err != nil {
		return goerr.Wrap(err, "signature mismatch", goerr.T(model.ErrTagInvalidSignature))
	}
	return nil
}
