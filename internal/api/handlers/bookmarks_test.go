package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobquest-web/internal/savedjobs"
	"jobquest-web/pkg/models"
)

func TestToggleBookmarkRequiresSignIn(t *testing.T) {
	saved := savedjobs.NewManager(5*time.Second, nil)

	c, rec := newContext(t, http.MethodPost, "/api/v1/jobs/j1/bookmark", "", guestSession())
	c.SetParamNames("id")
	c.SetParamValues("j1")

	require.NoError(t, ToggleBookmarkHandler(saved)(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ToggleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Saved)
	assert.Equal(t, "sign_in_required", resp.Status)
	require.NotNil(t, resp.Notice)
	assert.Equal(t, int64(5000), resp.Notice.DismissAfterMS)
}

func TestToggleBookmarkFlipsState(t *testing.T) {
	saved := savedjobs.NewManager(5*time.Second, nil)
	sess := userSession()

	toggle := func() models.ToggleResponse {
		c, rec := newContext(t, http.MethodPost, "/api/v1/jobs/j1/bookmark", "", sess)
		c.SetParamNames("id")
		c.SetParamValues("j1")
		require.NoError(t, ToggleBookmarkHandler(saved)(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.ToggleResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		return resp
	}

	first := toggle()
	assert.True(t, first.Saved)
	assert.Equal(t, "saved", first.Status)

	second := toggle()
	assert.False(t, second.Saved)
	assert.Equal(t, "removed", second.Status)
}

func TestToggleBookmarkSharedAcrossViews(t *testing.T) {
	saved := savedjobs.NewManager(5*time.Second, nil)
	sess := userSession()

	c, _ := newContext(t, http.MethodPost, "/api/v1/jobs/j1/bookmark", "", sess)
	c.SetParamNames("id")
	c.SetParamValues("j1")
	require.NoError(t, ToggleBookmarkHandler(saved)(c))

	// Another request in the same session observes the same set.
	set := saved.ForSession(sess.ID, sess.SavedJobIDs)
	assert.True(t, set.IsJobSaved("j1"))
}
