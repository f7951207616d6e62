package restapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/JesusMG/conflictsdetector-mergebot/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

const (
	// QueryDateFormat is the date layout declared to the find endpoint.
	QueryDateFormat = "yyyy-MM-ddTHH:mm:ssZ"

	branchFields = "id,name,owner,comment"
)

type singleResponse struct {
	Value string `json:"value"`
}

func (x *Client) FindBranches(ctx context.Context, repository, query string) ([]*model.Branch, error) {
	var rows []map[string]any
	if err := x.call(ctx, apiRequest{
		method: http.MethodGet,
		path:   endpoint("/api/v1/repos/%s/find", repository),
		query: url.Values{
			"query":           {query},
			"queryDateFormat": {QueryDateFormat},
			"fields":          {branchFields},
		},
		action: "retrieve the list of branches to process",
	}, &rows); err != nil {
		return nil, goerr.Wrap(err, "failed to find branches", goerr.V("repository", repository), goerr.V("query", query))
	}

	branches := make([]*model.Branch, 0, len(rows))
	for _, row := range rows {
		branches = append(branches, &model.Branch{
			Repository: repository,
			ID:         stringValue(row, "id"),
			FullName:   stringValue(row, "name"),
			Owner:      stringValue(row, "owner"),
			Comment:    stringValue(row, "comment"),
		})
	}
	return branches, nil
}

// stringValue renders a find result field as text. Missing fields are empty.
func stringValue(row map[string]any, key string) string {
	switch v := row[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func (x *Client) GetBranch(ctx context.Context, repository, branchFullName string) (*model.BranchInfo, error) {
	name := strings.TrimPrefix(branchFullName, "/")

	var info *model.BranchInfo
	if err := x.call(ctx, apiRequest{
		method: http.MethodGet,
		path:   endpoint("/api/v1/repos/%s/branches/%s", repository, name),
		action: fmt.Sprintf("get info of branch br:%s@%s", name, repository),
	}, &info); err != nil {
		return nil, err
	}
	return info, nil
}

type mergeToRequest struct {
	SourceType         string `json:"sourceType"`
	Source             string `json:"source"`
	Destination        string `json:"destination"`
	Comment            string `json:"comment"`
	CreateShelve       bool   `json:"createShelve"`
	EnsureNoDstChanges bool   `json:"ensureNoDstChanges"`
}

func (x *Client) MergeToShelve(ctx context.Context, repository, source, destination string) (*model.MergeToResult, error) {
	req := mergeToRequest{
		SourceType:   "Branch",
		Source:       source,
		Destination:  destination,
		CreateShelve: true,
	}

	var result model.MergeToResult
	if err := x.call(ctx, apiRequest{
		method: http.MethodPost,
		path:   endpoint("/api/v1/repos/%s/mergeto", repository),
		body:   req,
		action: fmt.Sprintf("merge from %s '%s' to '%s'", req.SourceType, source, destination),
	}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (x *Client) DeleteShelve(ctx context.Context, repository string, shelveID int) error {
	return x.call(ctx, apiRequest{
		method: http.MethodDelete,
		path:   endpoint("/api/v1/repos/%s/shelve/%s", repository, strconv.Itoa(shelveID)),
		action: fmt.Sprintf("delete shelve sh:%d@%s", shelveID, repository),
	}, nil)
}

type changeAttributeRequest struct {
	TargetName string `json:"targetName"`
	TargetType string `json:"targetType"`
	Value      string `json:"value"`
}

func (x *Client) UpdateBranchAttribute(ctx context.Context, repository, branchFullName, attrName, attrValue string) error {
	return x.call(ctx, apiRequest{
		method: http.MethodPut,
		path:   endpoint("/api/v1/repos/%s/attributes/%s", repository, attrName),
		body: changeAttributeRequest{
			TargetName: branchFullName,
			TargetType: "Branch",
			Value:      attrValue,
		},
		action: fmt.Sprintf("update attribute %s=%s of branch %s", attrName, attrValue, branchFullName),
	}, nil)
}

func (x *Client) IsIssueTrackerConnected(ctx context.Context, plugName string) (bool, error) {
	var resp singleResponse
	if err := x.call(ctx, apiRequest{
		method: http.MethodGet,
		path:   endpoint("/api/v1/issues/%s/checkconnection", plugName),
		action: fmt.Sprintf("test connection to '%s'", plugName),
	}, &resp); err != nil {
		return false, err
	}

	connected, err := strconv.ParseBool(strings.TrimSpace(resp.Value))
	if err != nil {
		return false, nil
	}
	return connected, nil
}

func (x *Client) GetIssueTrackerField(ctx context.Context, plugName, projectKey, taskID, fieldName string) (string, error) {
	var resp singleResponse
	if err := x.call(ctx, apiRequest{
		method: http.MethodGet,
		path:   endpoint("/api/v1/issues/%s/%s/%s/%s", plugName, projectKey, taskID, fieldName),
		action: fmt.Sprintf("get field '%s' of issue %s-%s in %s", fieldName, projectKey, taskID, plugName),
	}, &resp); err != nil {
		return "", err
	}
	return resp.Value, nil
}

func (x *Client) SetIssueTrackerField(ctx context.Context, plugName, projectKey, taskID, fieldName, value string) error {
	return x.call(ctx, apiRequest{
		method: http.MethodPut,
		path:   endpoint("/api/v1/issues/%s/%s/%s/%s", plugName, projectKey, taskID, fieldName),
		body: struct {
			NewValue string `json:"newValue"`
		}{NewValue: value},
		action: fmt.Sprintf("set field '%s' of issue %s-%s in %s to value '%s'", fieldName, projectKey, taskID, plugName, value),
	}, nil)
}

func (x *Client) Notify(ctx context.Context, plugName, message string, recipients []string) error {
	if len(recipients) == 0 {
		return nil
	}

	return x.call(ctx, apiRequest{
		method: http.MethodPost,
		path:   endpoint("/api/v1/notify/%s", plugName),
		body: struct {
			Message    string   `json:"message"`
			Recipients []string `json:"recipients"`
		}{Message: message, Recipients: recipients},
		action: fmt.Sprintf("notify message to '%s'", strings.Join(recipients, " ")),
	}, nil)
}

func (x *Client) GetUserProfile(ctx context.Context, user string) (map[string]any, error) {
	var profile map[string]any
	if err := x.call(ctx, apiRequest{
		method: http.MethodGet,
		path:   endpoint("/api/v1/users/%s/profile", user),
		action: fmt.Sprintf("get profile of user '%s'", user),
	}, &profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (x *Client) SendMergeReport(ctx context.Context, botName string, report *model.MergeReport) error {
	return x.call(ctx, apiRequest{
		method: http.MethodPut,
		path:   endpoint("/api/v1/mergereports/%s", botName),
		body:   report,
		action: fmt.Sprintf("upload merge report of br:%d (repo ID: %s)", report.BranchID, report.RepositoryID),
	}, nil)
}
