package handlers

import (
	"net/http"

	"scan-viewer-go/pkg/api/middleware"
	"scan-viewer-go/pkg/api/session"
	"scan-viewer-go/pkg/cli/client"
	"scan-viewer-go/pkg/views"

	"github.com/gin-gonic/gin"
)

type tabView struct {
	Category string
	Label    string
	Count    int
	Active   bool
	Entries  []string
}

type pageData struct {
	Domain    string
	Error     string
	Retryable bool
	Finished  bool
	Summary   string
	Columns   []string
	Rows      [][]string
	Tabs      []tabView
	ActiveTab *tabView
}

// Page renders the scan page for the caller's session. A tab query
// parameter selects the link category to show.
func Page() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.CurrentSession(c)
		if tab := c.Query("tab"); tab != "" {
			sess.SetTab(tab)
		}
		c.HTML(http.StatusOK, "page.html", buildPage(sess))
	}
}

func buildPage(sess *session.Session) pageData {
	state := sess.Service.Store().State()
	data := pageData{
		Domain:   state.Domain,
		Finished: views.Visible(state),
		Summary:  views.Summary(state),
		Columns:  views.WorkerColumns,
		Rows:     views.WorkerRows(state),
	}

	if err := sess.Err(); err != nil {
		data.Error = err.Error()
		if scanErr, ok := client.AsScanError(err); ok {
			data.Error = scanErr.UserMessage()
			data.Retryable = scanErr.IsRetryable()
		}
	}

	tabs := views.LinkTabs(state)
	active := views.TabIndex(tabs, sess.Tab())
	for i, t := range tabs {
		data.Tabs = append(data.Tabs, tabView{
			Category: t.Category,
			Label:    t.Label,
			Count:    len(t.Entries),
			Active:   i == active,
			Entries:  t.Entries,
		})
	}
	if active >= 0 {
		data.ActiveTab = &data.Tabs[active]
	}

	return data
}
