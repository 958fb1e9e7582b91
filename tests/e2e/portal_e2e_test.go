//go:build e2e
// +build e2e

package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	facultyModel "github.com/collabx/backend/internal/faculty/model"
	hackathonModel "github.com/collabx/backend/internal/hackathon/model"
	joinrequestModel "github.com/collabx/backend/internal/joinrequest/model"
	projectModel "github.com/collabx/backend/internal/project/model"
	rosterModel "github.com/collabx/backend/internal/roster/model"
	statisticsModel "github.com/collabx/backend/internal/statistics/model"
)

func (s *E2ETestSuite) createApprovedProject(ownerID string, teamSize int, skills []string) string {
	s.T().Helper()

	resp, body := s.request(http.MethodPost, "/projects", ownerID, map[string]interface{}{
		"title":           "Campus Helper",
		"description":     "A portal for campus errands",
		"domain":          "web",
		"difficulty":      "medium",
		"skills_required": skills,
		"team_size":       teamSize,
	})
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode)

	var created struct {
		Project projectModel.ProjectResponse `json:"project"`
	}
	require.NoError(s.T(), json.Unmarshal(body, &created))
	projectID := created.Project.ProjectID
	require.NotEmpty(s.T(), projectID)

	s.seedAdmin("moderator")
	resp, _ = s.request(http.MethodPost, fmt.Sprintf("/projects/%s/moderate", projectID), "moderator", map[string]string{
		"decision": "approved",
	})
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	return projectID
}

func (s *E2ETestSuite) TestHealth() {
	resp, body := s.request(http.MethodGet, "/health", "", nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	var health struct {
		Status string `json:"status"`
	}
	require.NoError(s.T(), json.Unmarshal(body, &health))
	assert.Equal(s.T(), "ok", health.Status)
}

func (s *E2ETestSuite) TestJoinFlowAgainstPostgres() {
	projectID := s.createApprovedProject("owner", 4, []string{"go", "react", "sql", "docker"})

	resp, body := s.request(http.MethodPost, fmt.Sprintf("/projects/%s/join", projectID), "u1", map[string]interface{}{
		"role":    "developer",
		"skills":  []string{"Go", "SQL"},
		"message": "count me in",
	})
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode)

	var submitted joinrequestModel.RequestResponse
	require.NoError(s.T(), json.Unmarshal(body, &submitted))
	assert.Equal(s.T(), 50, submitted.Request.MatchPercentage)
	assert.Equal(s.T(), "pending", submitted.Request.Status)

	resp, _ = s.request(http.MethodPost, fmt.Sprintf("/requests/%s/decide", submitted.Request.RequestID), "owner", map[string]string{
		"outcome": "accepted",
	})
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	resp, body = s.request(http.MethodGet, fmt.Sprintf("/projects/%s/team", projectID), "", nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	var roster rosterModel.RosterResponse
	require.NoError(s.T(), json.Unmarshal(body, &roster))
	require.Equal(s.T(), 1, roster.Total)
	assert.Equal(s.T(), "u1", roster.Members[0].UserID)

	resp, body = s.request(http.MethodGet, "/projects/"+projectID, "", nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	var project projectModel.ProjectResponse
	require.NoError(s.T(), json.Unmarshal(body, &project))
	assert.Equal(s.T(), 1, project.CurrentMembers)

	// repeated decision conflicts
	resp, _ = s.request(http.MethodPost, fmt.Sprintf("/requests/%s/decide", submitted.Request.RequestID), "owner", map[string]string{
		"outcome": "rejected",
	})
	assert.Equal(s.T(), http.StatusConflict, resp.StatusCode)
}

func (s *E2ETestSuite) TestRemoveMemberIsIdempotent() {
	projectID := s.createApprovedProject("owner", 4, []string{"go"})

	resp, body := s.request(http.MethodPost, fmt.Sprintf("/projects/%s/join", projectID), "u1", map[string]interface{}{
		"role":   "developer",
		"skills": []string{"go"},
	})
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode)

	var submitted joinrequestModel.RequestResponse
	require.NoError(s.T(), json.Unmarshal(body, &submitted))

	resp, _ = s.request(http.MethodPost, fmt.Sprintf("/requests/%s/decide", submitted.Request.RequestID), "owner", map[string]string{
		"outcome": "accepted",
	})
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	resp, _ = s.request(http.MethodDelete, fmt.Sprintf("/projects/%s/team/u1", projectID), "owner", nil)
	require.Equal(s.T(), http.StatusNoContent, resp.StatusCode)
	resp, _ = s.request(http.MethodDelete, fmt.Sprintf("/projects/%s/team/u1", projectID), "owner", nil)
	require.Equal(s.T(), http.StatusNoContent, resp.StatusCode)

	resp, body = s.request(http.MethodGet, fmt.Sprintf("/projects/%s/team", projectID), "", nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	var roster rosterModel.RosterResponse
	require.NoError(s.T(), json.Unmarshal(body, &roster))
	assert.Equal(s.T(), 0, roster.Total)
}

func (s *E2ETestSuite) TestDirectoriesRequireAdmin() {
	s.seedAdmin("dean")

	resp, _ := s.request(http.MethodPost, "/faculty", "student", map[string]interface{}{
		"name": "Dr. Rao",
	})
	assert.Equal(s.T(), http.StatusForbidden, resp.StatusCode)

	resp, body := s.request(http.MethodPost, "/faculty", "dean", map[string]interface{}{
		"name":       "Dr. Rao",
		"department": "CSE",
		"domain":     "ml",
		"skills":     []string{"python", "pytorch"},
	})
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode)

	var faculty facultyModel.FacultyResponse
	require.NoError(s.T(), json.Unmarshal(body, &faculty))
	require.NotEmpty(s.T(), faculty.Faculty.FacultyID)

	resp, body = s.request(http.MethodGet, "/faculty", "", nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	var list facultyModel.FacultyListResponse
	require.NoError(s.T(), json.Unmarshal(body, &list))
	assert.Equal(s.T(), 1, list.Total)

	resp, body = s.request(http.MethodPost, "/hackathons", "dean", map[string]interface{}{
		"event_name": "Winter Hack",
		"event_date": "2026-12-05",
		"status":     hackathonModel.StatusUpcoming,
		"format":     hackathonModel.FormatHybrid,
	})
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode)

	var hackathon hackathonModel.HackathonResponse
	require.NoError(s.T(), json.Unmarshal(body, &hackathon))
	assert.Equal(s.T(), "dean", hackathon.Hackathon.CreatedBy)

	resp, body = s.request(http.MethodGet, "/hackathons?status="+hackathonModel.StatusUpcoming, "", nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	var hackathons hackathonModel.HackathonListResponse
	require.NoError(s.T(), json.Unmarshal(body, &hackathons))
	assert.Equal(s.T(), 1, hackathons.Total)
}

func (s *E2ETestSuite) TestStatisticsReflectDecisions() {
	projectID := s.createApprovedProject("owner", 4, []string{"go", "sql"})

	for _, uid := range []string{"u1", "u2"} {
		resp, body := s.request(http.MethodPost, fmt.Sprintf("/projects/%s/join", projectID), uid, map[string]interface{}{
			"role":   "developer",
			"skills": []string{"go", "sql"},
		})
		require.Equal(s.T(), http.StatusCreated, resp.StatusCode)

		if uid == "u1" {
			var submitted joinrequestModel.RequestResponse
			require.NoError(s.T(), json.Unmarshal(body, &submitted))
			resp, _ = s.request(http.MethodPost, fmt.Sprintf("/requests/%s/decide", submitted.Request.RequestID), "owner", map[string]string{
				"outcome": "accepted",
			})
			require.Equal(s.T(), http.StatusOK, resp.StatusCode)
		}
	}

	resp, body := s.request(http.MethodGet, "/statistics/projects", "", nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	var projects statisticsModel.ProjectStatisticsResponse
	require.NoError(s.T(), json.Unmarshal(body, &projects))
	assert.Equal(s.T(), 1, projects.Statistics.TotalProjects)
	assert.Equal(s.T(), 1, projects.Statistics.ApprovedProjects)
	assert.Equal(s.T(), 1, projects.Statistics.TotalMembers)
	require.Len(s.T(), projects.ByDomain, 1)
	assert.Equal(s.T(), "web", projects.ByDomain[0].Domain)

	resp, body = s.request(http.MethodGet, "/statistics/requests", "", nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	var requests statisticsModel.RequestStatisticsResponse
	require.NoError(s.T(), json.Unmarshal(body, &requests))
	assert.Equal(s.T(), 2, requests.Statistics.TotalRequests)
	assert.Equal(s.T(), 1, requests.Statistics.AcceptedRequests)
	assert.Equal(s.T(), 1, requests.Statistics.PendingRequests)
	assert.InDelta(s.T(), 100.0, requests.Statistics.AverageMatchPercent, 0.01)
}
