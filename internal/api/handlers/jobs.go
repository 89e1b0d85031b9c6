package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"jobquest-web/internal/api/middleware"
	"jobquest-web/internal/backend"
	"jobquest-web/internal/config"
	"jobquest-web/internal/logging"
	"jobquest-web/internal/savedjobs"
	"jobquest-web/internal/search"
	"jobquest-web/pkg/jobview"
	"jobquest-web/pkg/models"
)

// buildJobCard computes every derived display field for one job so all
// listing and detail views render identically.
func buildJobCard(origin string, set *savedjobs.Set, job models.Job, now time.Time) models.JobCard {
	card := models.JobCard{
		Job:       job,
		Saved:     set.IsJobSaved(job.ID),
		PostedAgo: jobview.TimeAgo(job.CreatedAt, now),
	}

	if job.Salary != nil {
		if display, ok := jobview.FormatSalary(job.Salary.Min, job.Salary.Max, job.Salary.Currency, job.Salary.Period); ok {
			card.Salary = display
		}
	}

	if job.Deadline != nil {
		info := jobview.ClassifyDeadline(*job.Deadline, now)
		card.Deadline = &models.DeadlineView{
			Bucket:   string(info.Bucket),
			Label:    info.Label,
			DaysLeft: info.DaysLeft,
			Urgency:  info.Urgency,
		}
	}

	links := jobview.BuildShareLinks(origin, job.ID, job.Title, job.Company)
	card.Share = models.ShareView{
		URL:      links.URL,
		Mailto:   links.Mailto,
		LinkedIn: links.LinkedIn,
		Twitter:  links.Twitter,
		WhatsApp: links.WhatsApp,
	}

	return card
}

// ListJobsHandler serves the job board listing. Every backend parameter,
// search included, is forwarded upstream; the filter parameter is the local
// search box and only narrows the fetched page.
func ListJobsHandler(cfg *config.Config, client *backend.Client, saved *savedjobs.Manager) echo.HandlerFunc {
	logger := logging.GetGlobalLogger()

	return func(c echo.Context) error {
		var query models.JobListQuery
		if err := c.Bind(&query); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid_request", "Invalid query parameters")
		}

		list, err := client.ListJobs(c.Request().Context(), query)
		if err != nil {
			logger.Error("Failed to fetch job listing", map[string]interface{}{
				"request_id": middleware.RequestID(c),
				"error":      err.Error(),
			})
			return backendErrorJSON(c, err)
		}

		jobs := search.FilterJobs(list.Jobs, query.Filter)

		sess := middleware.CurrentSession(c)
		set := saved.ForSession(sess.ID, sess.SavedJobIDs)

		now := time.Now()
		cards := make([]models.JobCard, 0, len(jobs))
		for _, job := range jobs {
			cards = append(cards, buildJobCard(cfg.Gateway.PublicOrigin, set, job, now))
		}

		return c.JSON(http.StatusOK, models.JobCardList{
			Cards:   cards,
			Page:    list.Page,
			Limit:   list.Limit,
			Total:   list.Total,
			Matched: len(cards),
		})
	}
}

// GetJobHandler serves one job's detail view.
func GetJobHandler(cfg *config.Config, client *backend.Client, saved *savedjobs.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		jobID := c.Param("id")
		if jobID == "" {
			return errorJSON(c, http.StatusBadRequest, "invalid_request", "Job ID is required")
		}

		job, err := client.GetJob(c.Request().Context(), jobID)
		if err != nil {
			return backendErrorJSON(c, err)
		}

		sess := middleware.CurrentSession(c)
		set := saved.ForSession(sess.ID, sess.SavedJobIDs)

		card := buildJobCard(cfg.Gateway.PublicOrigin, set, *job, time.Now())
		return c.JSON(http.StatusOK, card)
	}
}

// SavedJobsHandler serves the signed-in user's bookmarked jobs. Jobs removed
// from the board since they were saved are absent from the response.
func SavedJobsHandler(cfg *config.Config, client *backend.Client, saved *savedjobs.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := middleware.CurrentSession(c)
		set := saved.ForSession(sess.ID, sess.SavedJobIDs)

		ids := set.Snapshot()
		jobs, err := client.GetJobsByIDs(c.Request().Context(), ids)
		if err != nil {
			return backendErrorJSON(c, err)
		}

		now := time.Now()
		cards := make([]models.JobCard, 0, len(jobs))
		for _, job := range jobs {
			cards = append(cards, buildJobCard(cfg.Gateway.PublicOrigin, set, job, now))
		}

		return c.JSON(http.StatusOK, models.JobCardList{
			Cards:   cards,
			Page:    1,
			Limit:   len(cards),
			Total:   len(cards),
			Matched: len(cards),
		})
	}
}
