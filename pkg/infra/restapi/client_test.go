package restapi_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/JesusMG/conflictsdetector-mergebot/pkg/domain/model"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/domain/types"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/infra/restapi"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/utils/testutil"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

type recorded struct {
	method string
	path   string
	query  map[string][]string
	auth   string
	body   map[string]any
}

func newServer(t *testing.T, status int, response string) (*restapi.Client, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.EscapedPath()
		rec.query = r.URL.Query()
		rec.auth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		if len(raw) > 0 {
			gt.NoError(t, json.Unmarshal(raw, &rec.body))
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)

	client := gt.R1(restapi.New(srv.URL+"/", types.APIKey("secret-token"))).NoError(t)
	return client, rec
}

func TestNew(t *testing.T) {
	_, err := restapi.New("", types.APIKey("k"))
	gt.Error(t, err).Is(types.ErrInvalidOption)

	_, err = restapi.New("ftp://example.com", types.APIKey("k"))
	gt.Error(t, err).Is(types.ErrInvalidOption)

	_, err = restapi.New("http://example.com", "")
	gt.Error(t, err).Is(types.ErrInvalidOption)
}

func TestFindBranches(t *testing.T) {
	client, rec := newServer(t, http.StatusOK, `[
		{"id": 1234, "name": "/main/task001", "owner": "tester", "comment": "fix"},
		{"id": "77", "name": "/main/task002"}
	]`)

	branches := gt.R1(client.FindBranches(context.Background(), "myrepo", "branch where id=1234")).NoError(t)
	gt.A(t, branches).Length(2)
	gt.V(t, *branches[0]).Equal(model.Branch{
		Repository: "myrepo",
		ID:         "1234",
		FullName:   "/main/task001",
		Owner:      "tester",
		Comment:    "fix",
	})
	gt.V(t, branches[1].ID).Equal("77")
	gt.V(t, branches[1].Owner).Equal("")

	gt.V(t, rec.method).Equal(http.MethodGet)
	gt.V(t, rec.path).Equal("/api/v1/repos/myrepo/find")
	gt.V(t, rec.auth).Equal("ApiKey secret-token")
	gt.V(t, rec.query["query"]).Equal([]string{"branch where id=1234"})
	gt.V(t, rec.query["queryDateFormat"]).Equal([]string{restapi.QueryDateFormat})
	gt.V(t, rec.query["fields"]).Equal([]string{"id,name,owner,comment"})
}

func TestMergeToShelve(t *testing.T) {
	client, rec := newServer(t, http.StatusOK, `{"status":"Conflicts","message":"manual conflicts","changesetNumber":0}`)

	result := gt.R1(client.MergeToShelve(context.Background(), "my repo", "/main/task001", "/main")).NoError(t)
	gt.V(t, result.Status).Equal(model.MergeStatusConflicts)
	gt.V(t, result.Message).Equal("manual conflicts")

	gt.V(t, rec.method).Equal(http.MethodPost)
	gt.V(t, rec.path).Equal("/api/v1/repos/my%20repo/mergeto")
	gt.V(t, rec.body["sourceType"]).Equal("Branch")
	gt.V(t, rec.body["source"]).Equal("/main/task001")
	gt.V(t, rec.body["destination"]).Equal("/main")
	gt.V(t, rec.body["createShelve"]).Equal(true)
	gt.V(t, rec.body["ensureNoDstChanges"]).Equal(false)
}

func TestDeleteShelve(t *testing.T) {
	client, rec := newServer(t, http.StatusOK, ``)
	gt.NoError(t, client.DeleteShelve(context.Background(), "myrepo", 42))
	gt.V(t, rec.method).Equal(http.MethodDelete)
	gt.V(t, rec.path).Equal("/api/v1/repos/myrepo/shelve/42")
}

func TestUpdateBranchAttribute(t *testing.T) {
	client, rec := newServer(t, http.StatusOK, ``)
	gt.NoError(t, client.UpdateBranchAttribute(context.Background(), "myrepo", "/main/task001", "status", "FAILED"))
	gt.V(t, rec.method).Equal(http.MethodPut)
	gt.V(t, rec.path).Equal("/api/v1/repos/myrepo/attributes/status")
	gt.V(t, rec.body["targetName"]).Equal("/main/task001")
	gt.V(t, rec.body["targetType"]).Equal("Branch")
	gt.V(t, rec.body["value"]).Equal("FAILED")
}

func TestGetBranch(t *testing.T) {
	t.Run("leading slash is stripped", func(t *testing.T) {
		client, rec := newServer(t, http.StatusOK, `{"id":5,"name":"/main/task001","repositoryId":"1_1"}`)
		info := gt.R1(client.GetBranch(context.Background(), "myrepo", "/main/task001")).NoError(t)
		gt.V(t, info.ID).Equal(5)
		gt.V(t, info.RepositoryID).Equal("1_1")
		gt.V(t, rec.path).Equal("/api/v1/repos/myrepo/branches/main%2Ftask001")
	})

	t.Run("null body is no branch", func(t *testing.T) {
		client, _ := newServer(t, http.StatusOK, `null`)
		info := gt.R1(client.GetBranch(context.Background(), "myrepo", "/main/task001")).NoError(t)
		gt.True(t, info == nil)
	})
}

func TestIssueTracker(t *testing.T) {
	t.Run("connected", func(t *testing.T) {
		client, rec := newServer(t, http.StatusOK, `{"value":"True"}`)
		gt.True(t, gt.R1(client.IsIssueTrackerConnected(context.Background(), "jira")).NoError(t))
		gt.V(t, rec.path).Equal("/api/v1/issues/jira/checkconnection")
	})

	t.Run("unparsable value is not connected", func(t *testing.T) {
		client, _ := newServer(t, http.StatusOK, `{"value":"maybe"}`)
		gt.False(t, gt.R1(client.IsIssueTrackerConnected(context.Background(), "jira")).NoError(t))
	})

	t.Run("get field", func(t *testing.T) {
		client, rec := newServer(t, http.StatusOK, `{"value":"Validated"}`)
		value := gt.R1(client.GetIssueTrackerField(context.Background(), "jira", "PRJ", "001", "status")).NoError(t)
		gt.V(t, value).Equal("Validated")
		gt.V(t, rec.path).Equal("/api/v1/issues/jira/PRJ/001/status")
	})

	t.Run("set field", func(t *testing.T) {
		client, rec := newServer(t, http.StatusOK, `{"value":"Open"}`)
		gt.NoError(t, client.SetIssueTrackerField(context.Background(), "jira", "PRJ", "001", "status", "Open"))
		gt.V(t, rec.method).Equal(http.MethodPut)
		gt.V(t, rec.body["newValue"]).Equal("Open")
	})
}

func TestNotify(t *testing.T) {
	t.Run("sends message", func(t *testing.T) {
		client, rec := newServer(t, http.StatusOK, ``)
		gt.NoError(t, client.Notify(context.Background(), "slack", "hello", []string{"alice", "bob"}))
		gt.V(t, rec.method).Equal(http.MethodPost)
		gt.V(t, rec.path).Equal("/api/v1/notify/slack")
		gt.V(t, rec.body["message"]).Equal("hello")
		gt.V(t, rec.body["recipients"]).Equal([]any{"alice", "bob"})
	})

	t.Run("no recipients sends nothing", func(t *testing.T) {
		client, rec := newServer(t, http.StatusOK, ``)
		gt.NoError(t, client.Notify(context.Background(), "slack", "hello", nil))
		gt.V(t, rec.method).Equal("")
	})
}

func TestGetUserProfile(t *testing.T) {
	client, rec := newServer(t, http.StatusOK, `{"profile":{"slack":"@alice"}}`)
	profile := gt.R1(client.GetUserProfile(context.Background(), "alice")).NoError(t)
	gt.V(t, profile["profile"]).Equal(map[string]any{"slack": "@alice"})
	gt.V(t, rec.path).Equal("/api/v1/users/alice/profile")

	empty, _ := newServer(t, http.StatusOK, ``)
	gt.True(t, gt.R1(empty.GetUserProfile(context.Background(), "bob")).NoError(t) == nil)
}

func TestSendMergeReport(t *testing.T) {
	client, rec := newServer(t, http.StatusOK, ``)
	report := &model.MergeReport{
		Timestamp:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		RepositoryID: "1_1",
		BranchID:     9,
		Properties: []model.MergeReportEntry{
			{Type: model.MergeReportTypeOK, Value: "/main/task001"},
		},
	}
	gt.NoError(t, client.SendMergeReport(context.Background(), "conflicts bot", report))
	gt.V(t, rec.method).Equal(http.MethodPut)
	gt.V(t, rec.path).Equal("/api/v1/mergereports/conflicts%20bot")
	gt.V(t, rec.body["repositoryId"]).Equal("1_1")
}

func TestErrorResponse(t *testing.T) {
	testCases := map[string]struct {
		status int
		body   string
		msg    string
		hint   string
	}{
		"unauthorized": {
			status: http.StatusUnauthorized,
			body:   `{"error":{"message":"invalid token"}}`,
			msg:    "invalid token",
			hint:   restapi.StatusHint(http.StatusUnauthorized),
		},
		"not found": {
			status: http.StatusNotFound,
			body:   `{"error":{"message":"no such branch"}}`,
			msg:    "no such branch",
			hint:   restapi.StatusHint(http.StatusNotFound),
		},
		"plain body": {
			status: http.StatusBadGateway,
			body:   "gateway down",
			msg:    "gateway down",
			hint:   "",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			client, _ := newServer(t, tc.status, tc.body)
			err := client.UpdateBranchAttribute(context.Background(), "myrepo", "/main/task001", "status", "FAILED")
			gt.Error(t, err).Is(types.ErrControlPlane)

			values := goerr.Unwrap(err).Values()
			gt.V(t, values["status"]).Equal(any(tc.status))
			gt.V(t, values["message"]).Equal(any(tc.msg))
			gt.V(t, values["hint"]).Equal(any(tc.hint))
		})
	}
}

func TestStatusHint(t *testing.T) {
	gt.S(t, restapi.StatusHint(http.StatusUnauthorized)).Contains("API Key")
	gt.S(t, restapi.StatusHint(http.StatusNotFound)).Contains("doesn't exist")
	gt.S(t, restapi.StatusHint(http.StatusBadRequest)).Contains("couldn't understand")
	gt.S(t, restapi.StatusHint(http.StatusInternalServerError)).Contains("server log")
	gt.V(t, restapi.StatusHint(http.StatusTeapot)).Equal("")
}

func TestClientWithRealServer(t *testing.T) {
	cp := testutil.ControlPlaneOrSkip(t)

	client := gt.R1(restapi.New(cp.RestAPIURL, types.APIKey(cp.APIKey))).NoError(t)
	branches := gt.R1(client.FindBranches(context.Background(), cp.Repository, "branch where name='/main'")).NoError(t)
	gt.A(t, branches).Longer(0)
}
