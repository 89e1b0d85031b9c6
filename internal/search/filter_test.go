package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobquest-web/pkg/models"
)

func TestFilterJobs(t *testing.T) {
	jobs := []models.Job{
		{ID: "1", Title: "Backend Engineer", Skills: []string{"Go"}},
		{ID: "2", Title: "Frontend Dev", Skills: []string{"React"}},
	}

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{
			name:    "single term matches skill case-insensitively",
			query:   "go",
			wantIDs: []string{"1"},
		},
		{
			name:    "all terms must land on one job",
			query:   "engineer react",
			wantIDs: []string{},
		},
		{
			name:    "empty query keeps everything",
			query:   "",
			wantIDs: []string{"1", "2"},
		},
		{
			name:    "blank query keeps everything",
			query:   "   ",
			wantIDs: []string{"1", "2"},
		},
		{
			name:    "two terms on the same job",
			query:   "backend go",
			wantIDs: []string{"1"},
		},
		{
			name:    "no match",
			query:   "rust",
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterJobs(jobs, tt.query)
			ids := make([]string, 0, len(got))
			for _, j := range got {
				ids = append(ids, j.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilterJobsSearchesLocationAndDescription(t *testing.T) {
	jobs := []models.Job{
		{ID: "1", Title: "Engineer", Location: "Berlin", Description: "Kafka pipelines"},
	}

	assert.Len(t, FilterJobs(jobs, "berlin"), 1)
	assert.Len(t, FilterJobs(jobs, "kafka"), 1)
	assert.Len(t, FilterJobs(jobs, "berlin kafka"), 1)
	assert.Len(t, FilterJobs(jobs, "berlin munich"), 0)
}
