package cli

import (
	"context"
	"net/url"

	"github.com/pvolkovs/staffdesk/internal/client/models"
)

// showSearchResults is the filtered results view. The filter comes from
// the query context; a load with no criteria fails before reaching the
// server and clears the snapshot, which is exactly the view's rule for
// a failed filtered query.
func (a *App) showSearchResults(ctx context.Context, query url.Values) {
	filter := models.SearchFilter{
		Designation: query.Get("designation"),
		Department:  query.Get("department"),
	}

	a.active = a.search
	if err := a.search.Load(ctx, filter); err != nil {
		return
	}
	a.renderList(a.search.Snapshot())
}
