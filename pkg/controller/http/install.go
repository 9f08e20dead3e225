package http

import (
	"html/template"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/atodeyomu/pkg/domain/interfaces"
	"github.com/secmon-lab/atodeyomu/pkg/domain/model"
	"github.com/secmon-lab/atodeyomu/pkg/utils/apperr"
)

var installPage = template.Must(template.New("install").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>atodeyomu</title>
</head>
<body>
    <h1>atodeyomu</h1>
    <p>{{.Message}}</p>
    {{if .ErrorRef}}<p>Reference: <code>{{.ErrorRef}}</code></p>{{end}}
</body>
</html>
`))

type installPageData struct {
	Message  string
	ErrorRef string
}

// InstallHandler handles the OAuth redirect of the app installation
type InstallHandler struct {
	installUC interfaces.Install
}

// NewInstallHandler creates a new install handler
func NewInstallHandler(installUC interfaces.Install) *InstallHandler {
	return &InstallHandler{installUC: installUC}
}

// HandleAuthorize exchanges the code in the query and replies with an HTML page
func (h *InstallHandler) HandleAuthorize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	code := r.URL.Query().Get("code")
	if code == "" {
		ctxlog.From(ctx).Warn("Authorization request without code", "error", r.URL.Query().Get("error"))
		writeInstallPage(w, r, http.StatusBadRequest, installPageData{Message: "Installation failed."})
		return
	}

	cfg, err := h.installUC.Install(ctx, code)
	if err != nil {
		if goerr.HasTag(err, model.ErrTagUpstream) {
			ctxlog.From(ctx).Warn("Failed to exchange OAuth code", "error", err)
			writeInstallPage(w, r, http.StatusBadRequest, installPageData{Message: "Installation failed."})
			return
		}

		refID := apperr.Handle(ctx, err)
		writeInstallPage(w, r, http.StatusInternalServerError, installPageData{
			Message:  "Installation failed.",
			ErrorRef: refID.String(),
		})
		return
	}

	ctxlog.From(ctx).Info("Workspace registered", "team_id", cfg.TeamID)
	writeInstallPage(w, r, http.StatusOK, installPageData{Message: "Registration completed."})
}

func writeInstallPage(w http.ResponseWriter, r *http.Request, status int, data installPageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := installPage.Execute(w, data); err != nil {
		ctxlog.From(r.Context()).Error("Failed to write install page", "error", err)
	}
}
