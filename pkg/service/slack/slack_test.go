package slack_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/atodeyomu/pkg/domain/model"
	slackSvc "github.com/secmon-lab/atodeyomu/pkg/service/slack"
	"github.com/slack-go/slack"
)

// newSlackAPI starts a fake Slack Web API answering each method with the given JSON body
func newSlackAPI(t *testing.T, responses map[string]any) (*httptest.Server, *[]*http.Request) {
	var requests []*http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.NoError(t, r.ParseForm())
		requests = append(requests, r)

		resp, ok := responses[r.URL.Path]
		if !ok {
			resp = map[string]any{"ok": false, "error": "unknown_method"}
		}
		w.Header().Set("Content-Type", "application/json")
		gt.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	t.Cleanup(srv.Close)
	return srv, &requests
}

func TestServiceGetEmoji(t *testing.T) {
	srv, _ := newSlackAPI(t, map[string]any{
		"/emoji.list": map[string]any{
			"ok":    true,
			"emoji": map[string]string{"atodeyomu": "https://emoji.example.com/atodeyomu.png"},
		},
	})

	svc := slackSvc.New("xoxb-test", slack.OptionAPIURL(srv.URL+"/"))
	emoji, err := svc.GetEmoji(context.Background())
	gt.NoError(t, err).Required()
	gt.Equal(t, "https://emoji.example.com/atodeyomu.png", emoji["atodeyomu"])
}

func TestServiceDeleteMessage(t *testing.T) {
	srv, requests := newSlackAPI(t, map[string]any{
		"/chat.delete": map[string]any{"ok": true, "channel": "C0000000000", "ts": "1629922334.000700"},
	})

	svc := slackSvc.New("xoxb-test", slack.OptionAPIURL(srv.URL+"/"))
	err := svc.DeleteMessage(context.Background(), "C0000000000", "1629922334.000700")
	gt.NoError(t, err).Required()

	gt.Equal(t, 1, len(*requests))
	gt.Equal(t, "C0000000000", (*requests)[0].Form.Get("channel"))
	gt.Equal(t, "1629922334.000700", (*requests)[0].Form.Get("ts"))
}

func TestServiceGetPermalink(t *testing.T) {
	srv, _ := newSlackAPI(t, map[string]any{
		"/chat.getPermalink": map[string]any{
			"ok":        true,
			"channel":   "C0000000000",
			"permalink": "https://example.slack.com/archives/C0000000000/p1629891004013500",
		},
	})

	svc := slackSvc.New("xoxb-test", slack.OptionAPIURL(srv.URL+"/"))
	link, err := svc.GetPermalink(context.Background(), "C0000000000", "1629891004.013500")
	gt.NoError(t, err).Required()
	gt.Equal(t, "https://example.slack.com/archives/C0000000000/p1629891004013500", link)
}

func TestServiceUpstreamError(t *testing.T) {
	srv, _ := newSlackAPI(t, map[string]any{
		"/chat.delete": map[string]any{"ok": false, "error": "message_not_found"},
	})

	factory := slackSvc.NewFactory(slack.OptionAPIURL(srv.URL + "/"))
	err := factory("xoxb-test").DeleteMessage(context.Background(), "C0000000000", "1")
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, model.ErrTagUpstream))
}

// rewriteTransport sends every request to target, keeping the path
type rewriteTransport struct {
	target *url.URL
}

func (rt rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.URL.Scheme = rt.target.Scheme
	req.URL.Host = rt.target.Host
	return http.DefaultTransport.RoundTrip(req)
}

func newOAuthClient(t *testing.T, resp map[string]any) *http.Client {
	srv, _ := newSlackAPI(t, map[string]any{"/api/oauth.v2.access": resp})
	target, err := url.Parse(srv.URL)
	gt.NoError(t, err).Required()
	return &http.Client{Transport: rewriteTransport{target: target}}
}

func TestOAuthExchangeCode(t *testing.T) {
	client := newOAuthClient(t, map[string]any{
		"ok":           true,
		"app_id":       "A0000000000",
		"access_token": "xoxb-installed",
		"team":         map[string]string{"id": "T0000000000", "name": "team"},
	})

	oauth := slackSvc.NewOAuth("client-id", "client-secret", slackSvc.WithHTTPClient(client))
	installation, err := oauth.ExchangeCode(context.Background(), "code")
	gt.NoError(t, err).Required()
	gt.Equal(t, "T0000000000", installation.TeamID.String())
	gt.Equal(t, "team", installation.TeamName)
	gt.Equal(t, "xoxb-installed", installation.AccessToken)
}

func TestOAuthExchangeCodeFailure(t *testing.T) {
	client := newOAuthClient(t, map[string]any{"ok": false, "error": "invalid_code"})

	oauth := slackSvc.NewOAuth("client-id", "client-secret", slackSvc.WithHTTPClient(client))
	_, err := oauth.ExchangeCode(context.Background(), "code")
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, model.ErrTagUpstream))
}

func TestOAuthExchangeCodeEmpty(t *testing.T) {
	oauth := slackSvc.NewOAuth("client-id", "client-secret")
	_, err := oauth.ExchangeCode(context.Background(), "")
	gt.Error(t, err)
}
