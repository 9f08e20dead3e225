package slack

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/atodeyomu/pkg/domain/interfaces"
	"github.com/secmon-lab/atodeyomu/pkg/domain/model"
	"github.com/secmon-lab/atodeyomu/pkg/utils/apperr"
	"github.com/secmon-lab/atodeyomu/pkg/utils/metrics"
	"github.com/slack-go/slack"
)

const (
	endpointActions = "actions"
	endpointEvents  = "events"

	// maxBodySize bounds the request body read before verification
	maxBodySize = 1 << 20
)

// Handler handles Slack webhook endpoints
type Handler struct {
	verifier interfaces.SignatureVerifier
	actionUC interfaces.Action
	eventUC  interfaces.Event
	metrics  *metrics.Metrics
}

// NewHandler creates a new Slack handler
func NewHandler(verifier interfaces.SignatureVerifier, actionUC interfaces.Action, eventUC interfaces.Event, m *metrics.Metrics) *Handler {
	return &Handler{
		verifier: verifier,
		actionUC: actionUC,
		eventUC:  eventUC,
		metrics:  m,
	}
}

// HandleAction handles interaction payloads posted as a form
func (h *Handler) HandleAction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := h.readVerifiedBody(r)
	if err != nil {
		h.writeError(w, ctx, endpointActions, err)
		return
	}

	form, err := url.ParseQuery(string(body))
	if err != nil {
		h.writeError(w, ctx, endpointActions, goerr.Wrap(err, "failed to parse form", goerr.T(model.ErrTagMalformedPayload)))
		return
	}

	raw := form.Get("payload")
	if raw == "" {
		h.writeError(w, ctx, endpointActions, goerr.New("payload not found", goerr.T(model.ErrTagMalformedPayload)))
		return
	}

	payload, err := DecodeInteraction([]byte(raw))
	if err != nil {
		h.writeError(w, ctx, endpointActions, err)
		return
	}
	h.metrics.CountPayload(endpointActions, payloadKind(payload))

	base := payload.Base()
	ctxlog.From(ctx).Info("Handling Slack interaction",
		"kind", payloadKind(payload),
		"team_id", base.TeamID,
		"user_id", base.UserID,
		"callback_id", base.CallbackID,
	)

	result, err := h.actionUC.Route(ctx, payload)
	if err != nil {
		h.writeError(w, ctx, endpointActions, err)
		return
	}

	if result.HasErrors() {
		writeJSON(ctx, w, http.StatusOK, slack.NewErrorsViewSubmissionResponse(result.Errors))
		return
	}
	w.WriteHeader(http.StatusOK)
}

// HandleEvent handles Events API requests
func (h *Handler) HandleEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := h.readVerifiedBody(r)
	if err != nil {
		h.writeError(w, ctx, endpointEvents, err)
		return
	}

	event, err := DecodeEvent(body)
	if err != nil {
		h.writeError(w, ctx, endpointEvents, err)
		return
	}
	h.metrics.CountPayload(endpointEvents, eventKind(event))

	result, err := h.eventUC.HandleEvent(ctx, event)
	if err != nil {
		h.writeError(w, ctx, endpointEvents, err)
		return
	}

	if result != nil {
		writeJSON(ctx, w, http.StatusOK, map[string]string{"challenge": result.Challenge})
		return
	}
	w.WriteHeader(http.StatusOK)
}

// readVerifiedBody reads the raw body and checks its signature before anything parses it
func (h *Handler) readVerifiedBody(r *http.Request) ([]byte, error) {
	defer r.Body.Close()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read request body", goerr.T(model.ErrTagMalformedPayload))
	}

	if err := h.verifier.Verify(r.Header, body); err != nil {
		return nil, err
	}
	return body, nil
}

// statusOf maps an error to the response status by its tags
func statusOf(err error) int {
	switch {
	case goerr.HasTag(err, model.ErrTagInvalidSignature):
		return http.StatusForbidden
	case goerr.HasTag(err, model.ErrTagMalformedPayload), goerr.HasTag(err, model.ErrTagTenantUnknown):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes an error response
func (h *Handler) writeError(w http.ResponseWriter, ctx context.Context, endpoint string, err error) {
	status := statusOf(err)
	h.metrics.CountFailure(endpoint, status)

	if status == http.StatusInternalServerError {
		refID := apperr.Handle(ctx, err)
		writeJSON(ctx, w, status, map[string]string{
			"error":     "internal server error",
			"error_ref": refID.String(),
		})
		return
	}

	ctxlog.From(ctx).Warn("Rejected Slack request", "error", err, "status", status)

	writeJSON(ctx, w, status, map[string]string{"error": http.StatusText(status)})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.From(ctx).Error("Failed to write response", "error", err)
	}
}

func payloadKind(p model.InboundPayload) string {
	switch p.(type) {
	case *model.ShortcutInvoked:
		return "shortcut"
	case *model.BlockAction:
		return "block_action"
	case *model.ViewSubmitted:
		return "view_submission"
	default:
		return "unknown"
	}
}

func eventKind(ev model.EventCallback) string {
	switch ev.(type) {
	case *model.URLVerification:
		return "url_verification"
	case *model.ReactionAdded:
		return "reaction_added"
	case *model.UnsupportedEvent:
		return "unsupported"
	default:
		return "unknown"
	}
}
