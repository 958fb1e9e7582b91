// Package model provides data transfer objects for statistics module.
package model

// ProjectStatistics represents aggregate figures over the project catalog.
type ProjectStatistics struct {
	TotalProjects    int     `json:"total_projects"`
	PendingProjects  int     `json:"pending_projects"`
	ApprovedProjects int     `json:"approved_projects"`
	RejectedProjects int     `json:"rejected_projects"`
	AverageTeamSize  float64 `json:"average_team_size"`
	TotalMembers     int     `json:"total_members"`
}

// DomainBreakdown represents the project count within one domain.
type DomainBreakdown struct {
	Domain string `json:"domain"`
	Count  int    `json:"count"`
}

// ProjectStatisticsResponse represents response for project statistics.
type ProjectStatisticsResponse struct {
	Statistics ProjectStatistics `json:"statistics"`
	ByDomain   []DomainBreakdown `json:"by_domain"`
}

// RequestStatistics represents aggregate figures over join requests.
type RequestStatistics struct {
	TotalRequests        int     `json:"total_requests"`
	PendingRequests      int     `json:"pending_requests"`
	AcceptedRequests     int     `json:"accepted_requests"`
	RejectedRequests     int     `json:"rejected_requests"`
	AverageMatchPercent  float64 `json:"average_match_percent"`
	AcceptedMatchPercent float64 `json:"accepted_match_percent"`
}

// RequestStatisticsResponse represents response for join request statistics.
type RequestStatisticsResponse struct {
	Statistics RequestStatistics `json:"statistics"`
}
