package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/spride/spride-web/src/internal/model"
)

type NewShuttleLog struct {
	TripID         int                  `json:"shuttleId"`
	CrowdLevel     model.CrowdLevel     `json:"crowdLevel"`
	BoardingStatus model.BoardingStatus `json:"status"`
}

// ListShuttleLogs fetches status reports for the given trips and keeps the
// newest report per trip.
func (c *Client) ListShuttleLogs(ctx context.Context, tripIDs []int) (map[int]model.TripStatus, error) {
	overlay := make(map[int]model.TripStatus)
	if len(tripIDs) == 0 {
		return overlay, nil
	}
	ids := make([]string, len(tripIDs))
	for i, id := range tripIDs {
		ids[i] = strconv.Itoa(id)
	}

	var logs []model.TripStatus
	err := c.do(ctx, request{
		op:     "list_shuttle_logs",
		method: http.MethodGet,
		path:   "/api/shuttle-logs",
		query:  url.Values{"shuttleIds": {strings.Join(ids, ",")}},
	}, &logs)
	if err != nil {
		return overlay, err
	}
	return latestByTrip(logs), nil
}

func latestByTrip(logs []model.TripStatus) map[int]model.TripStatus {
	overlay := make(map[int]model.TripStatus, len(logs))
	for _, l := range logs {
		if cur, ok := overlay[l.TripID]; !ok || l.ObservedAt.After(cur.ObservedAt) {
			overlay[l.TripID] = l
		}
	}
	return overlay
}

func (c *Client) CreateShuttleLog(ctx context.Context, entry NewShuttleLog) error {
	body, err := jsonBody(entry)
	if err != nil {
		return err
	}
	return c.do(ctx, request{
		op:          "create_shuttle_log",
		method:      http.MethodPost,
		path:        "/api/shuttle-logs",
		body:        body,
		contentType: "application/json",
	}, nil)
}
