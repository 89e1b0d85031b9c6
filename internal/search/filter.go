// Package search implements the client-side free-text filter used by the
// listing views over an already-fetched page of jobs. It is a derived
// filter, never a server query.
package search

import (
	"strings"

	"jobquest-web/pkg/models"
)

// FilterJobs keeps the jobs whose concatenated text contains every
// whitespace-separated term of the query, case-insensitively. An empty or
// blank query keeps everything.
func FilterJobs(jobs []models.Job, query string) []models.Job {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return jobs
	}

	matched := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if matchesAll(haystack(&job), terms) {
			matched = append(matched, job)
		}
	}
	return matched
}

func matchesAll(text string, terms []string) bool {
	for _, term := range terms {
		if !strings.Contains(text, term) {
			return false
		}
	}
	return true
}

// haystack concatenates the searchable fields of a job, lowercased.
func haystack(job *models.Job) string {
	parts := []string{job.Title, job.Company, job.Location, job.Description}
	parts = append(parts, job.Skills...)
	return strings.ToLower(strings.Join(parts, " "))
}
