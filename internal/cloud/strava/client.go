// Package strava is a thin client for the Strava v3 API. It encodes no
// knowledge of resource schemas: every operation returns generic ordered
// records that flow straight into the output serializer.
package strava

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/eddmann/strava-cli/internal/output"
)

// DefaultBaseURL is the base Strava API server URL
const DefaultBaseURL = "https://www.strava.com/api/v3"

// Authenticator runs an operation with a valid access token, refreshing
// beforehand if needed; the operation is never invoked without one
type Authenticator interface {
	WithAuth(ctx context.Context, op func(ctx context.Context, accessToken string) error) error
}

// ActivityListOptions are the paging and time filters of an activity listing
type ActivityListOptions struct {
	Before  int64 // epoch seconds
	After   int64 // epoch seconds
	Page    int
	PerPage int
}

// EffortListOptions are the filters of a segment effort listing
type EffortListOptions struct {
	StartDate string // ISO-8601 local date
	EndDate   string // ISO-8601 local date
	PerPage   int
}

// ExploreOptions scope a segment search to a geographic area
type ExploreOptions struct {
	Bounds       string // "sw_lat,sw_lng,ne_lat,ne_lng"
	ActivityType string // "running" or "riding"
	MinCategory  int
	MaxCategory  int
}

// Client is a Strava API client
type Client interface {
	Athlete(ctx context.Context) (output.Value, error)
	AthleteStats(ctx context.Context, athleteID int64) (output.Value, error)
	AthleteZones(ctx context.Context) (output.Value, error)

	Activities(ctx context.Context, opts ActivityListOptions) (output.Value, error)
	Activity(ctx context.Context, activityID int64, includeAllEfforts bool) (output.Value, error)
	ActivityLaps(ctx context.Context, activityID int64) (output.Value, error)
	ActivityZones(ctx context.Context, activityID int64) (output.Value, error)
	ActivityComments(ctx context.Context, activityID int64) (output.Value, error)
	ActivityKudos(ctx context.Context, activityID int64) (output.Value, error)
	ActivityStreams(ctx context.Context, activityID int64, keys []string) (output.Value, error)

	Segment(ctx context.Context, segmentID int64) (output.Value, error)
	StarredSegments(ctx context.Context, perPage int) (output.Value, error)
	StarSegment(ctx context.Context, segmentID int64, starred bool) (output.Value, error)
	ExploreSegments(ctx context.Context, opts ExploreOptions) (output.Value, error)

	SegmentEffort(ctx context.Context, effortID int64) (output.Value, error)
	SegmentEfforts(ctx context.Context, segmentID int64, opts EffortListOptions) (output.Value, error)

	Routes(ctx context.Context, athleteID int64, perPage int) (output.Value, error)
	Route(ctx context.Context, routeID int64) (output.Value, error)
	RouteStreams(ctx context.Context, routeID int64) (output.Value, error)

	AthleteClubs(ctx context.Context) (output.Value, error)
	Club(ctx context.Context, clubID int64) (output.Value, error)
	ClubMembers(ctx context.Context, clubID int64, perPage int) (output.Value, error)
	ClubActivities(ctx context.Context, clubID int64, perPage int) (output.Value, error)

	Gear(ctx context.Context, gearID string) (output.Value, error)
}

// NewClient creates a new Strava client authenticating through the provided gate
func NewClient(baseURL string, auth Authenticator) Client {
	return &client{
		baseURL:    baseURL,
		auth:       auth,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type client struct {
	baseURL    string
	auth       Authenticator
	httpClient *http.Client
}

func (c *client) Athlete(ctx context.Context) (output.Value, error) {
	return c.getOne(ctx, "/athlete", nil)
}

func (c *client) AthleteStats(ctx context.Context, athleteID int64) (output.Value, error) {
	return c.getOne(ctx, fmt.Sprintf("/athletes/%d/stats", athleteID), nil)
}

func (c *client) AthleteZones(ctx context.Context) (output.Value, error) {
	return c.getOne(ctx, "/athlete/zones", nil)
}

func (c *client) Activities(ctx context.Context, opts ActivityListOptions) (output.Value, error) {
	query := url.Values{}
	if opts.Before > 0 {
		query.Set("before", strconv.FormatInt(opts.Before, 10))
	}
	if opts.After > 0 {
		query.Set("after", strconv.FormatInt(opts.After, 10))
	}
	if opts.Page > 0 {
		query.Set("page", strconv.Itoa(opts.Page))
	}
	addPerPage(query, opts.PerPage)
	return c.getList(ctx, "/athlete/activities", query)
}

func (c *client) Activity(ctx context.Context, activityID int64, includeAllEfforts bool) (output.Value, error) {
	query := url.Values{}
	if includeAllEfforts {
		query.Set("include_all_efforts", "true")
	}
	return c.getOne(ctx, fmt.Sprintf("/activities/%d", activityID), query)
}

func (c *client) ActivityLaps(ctx context.Context, activityID int64) (output.Value, error) {
	return c.getList(ctx, fmt.Sprintf("/activities/%d/laps", activityID), nil)
}

func (c *client) ActivityZones(ctx context.Context, activityID int64) (output.Value, error) {
	return c.getList(ctx, fmt.Sprintf("/activities/%d/zones", activityID), nil)
}

func (c *client) ActivityComments(ctx context.Context, activityID int64) (output.Value, error) {
	return c.getList(ctx, fmt.Sprintf("/activities/%d/comments", activityID), nil)
}

func (c *client) ActivityKudos(ctx context.Context, activityID int64) (output.Value, error) {
	return c.getList(ctx, fmt.Sprintf("/activities/%d/kudos", activityID), nil)
}

func (c *client) ActivityStreams(ctx context.Context, activityID int64, keys []string) (output.Value, error) {
	query := url.Values{}
	if len(keys) > 0 {
		query.Set("keys", strings.Join(keys, ","))
	}
	// keyed by stream type so the result renders as one record
	query.Set("key_by_type", "true")
	return c.getOne(ctx, fmt.Sprintf("/activities/%d/streams", activityID), query)
}

func (c *client) Segment(ctx context.Context, segmentID int64) (output.Value, error) {
	return c.getOne(ctx, fmt.Sprintf("/segments/%d", segmentID), nil)
}

func (c *client) StarredSegments(ctx context.Context, perPage int) (output.Value, error) {
	query := url.Values{}
	addPerPage(query, perPage)
	return c.getList(ctx, "/segments/starred", query)
}

func (c *client) StarSegment(ctx context.Context, segmentID int64, starred bool) (output.Value, error) {
	query := url.Values{}
	query.Set("starred", strconv.FormatBool(starred))
	return c.putOne(ctx, fmt.Sprintf("/segments/%d/starred", segmentID), query)
}

func (c *client) ExploreSegments(ctx context.Context, opts ExploreOptions) (output.Value, error) {
	query := url.Values{}
	query.Set("bounds", opts.Bounds)
	if opts.ActivityType != "" {
		query.Set("activity_type", opts.ActivityType)
	}
	if opts.MinCategory > 0 {
		query.Set("min_cat", strconv.Itoa(opts.MinCategory))
	}
	if opts.MaxCategory > 0 {
		query.Set("max_cat", strconv.Itoa(opts.MaxCategory))
	}
	return c.getOne(ctx, "/segments/explore", query)
}

func (c *client) SegmentEffort(ctx context.Context, effortID int64) (output.Value, error) {
	return c.getOne(ctx, fmt.Sprintf("/segment_efforts/%d", effortID), nil)
}

func (c *client) SegmentEfforts(ctx context.Context, segmentID int64, opts EffortListOptions) (output.Value, error) {
	query := url.Values{}
	query.Set("segment_id", strconv.FormatInt(segmentID, 10))
	if opts.StartDate != "" {
		query.Set("start_date_local", opts.StartDate)
	}
	if opts.EndDate != "" {
		query.Set("end_date_local", opts.EndDate)
	}
	addPerPage(query, opts.PerPage)
	return c.getList(ctx, "/segment_efforts", query)
}

func (c *client) Routes(ctx context.Context, athleteID int64, perPage int) (output.Value, error) {
	query := url.Values{}
	addPerPage(query, perPage)
	return c.getList(ctx, fmt.Sprintf("/athletes/%d/routes", athleteID), query)
}

func (c *client) Route(ctx context.Context, routeID int64) (output.Value, error) {
	return c.getOne(ctx, fmt.Sprintf("/routes/%d", routeID), nil)
}

func (c *client) RouteStreams(ctx context.Context, routeID int64) (output.Value, error) {
	return c.getList(ctx, fmt.Sprintf("/routes/%d/streams", routeID), nil)
}

func (c *client) AthleteClubs(ctx context.Context) (output.Value, error) {
	return c.getList(ctx, "/athlete/clubs", nil)
}

func (c *client) Club(ctx context.Context, clubID int64) (output.Value, error) {
	return c.getOne(ctx, fmt.Sprintf("/clubs/%d", clubID), nil)
}

func (c *client) ClubMembers(ctx context.Context, clubID int64, perPage int) (output.Value, error) {
	query := url.Values{}
	addPerPage(query, perPage)
	return c.getList(ctx, fmt.Sprintf("/clubs/%d/members", clubID), query)
}

func (c *client) ClubActivities(ctx context.Context, clubID int64, perPage int) (output.Value, error) {
	query := url.Values{}
	addPerPage(query, perPage)
	return c.getList(ctx, fmt.Sprintf("/clubs/%d/activities", clubID), query)
}

func (c *client) Gear(ctx context.Context, gearID string) (output.Value, error) {
	return c.getOne(ctx, "/gear/"+url.PathEscape(gearID), nil)
}

func addPerPage(query url.Values, perPage int) {
	if perPage > 0 {
		query.Set("per_page", strconv.Itoa(perPage))
	}
}
