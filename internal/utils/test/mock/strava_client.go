package mock

import (
	"context"

	"github.com/eddmann/strava-cli/internal/cloud/strava"
	"github.com/eddmann/strava-cli/internal/output"
)

// StravaClient is a mocked Strava client
type StravaClient struct {
	strava.Client
	AthleteFn      func(ctx context.Context) (output.Value, error)
	AthleteStatsFn func(ctx context.Context, athleteID int64) (output.Value, error)
	AthleteZonesFn func(ctx context.Context) (output.Value, error)

	ActivitiesFn       func(ctx context.Context, opts strava.ActivityListOptions) (output.Value, error)
	ActivityFn         func(ctx context.Context, activityID int64, includeAllEfforts bool) (output.Value, error)
	ActivityLapsFn     func(ctx context.Context, activityID int64) (output.Value, error)
	ActivityZonesFn    func(ctx context.Context, activityID int64) (output.Value, error)
	ActivityCommentsFn func(ctx context.Context, activityID int64) (output.Value, error)
	ActivityKudosFn    func(ctx context.Context, activityID int64) (output.Value, error)
	ActivityStreamsFn  func(ctx context.Context, activityID int64, keys []string) (output.Value, error)

	SegmentFn         func(ctx context.Context, segmentID int64) (output.Value, error)
	StarredSegmentsFn func(ctx context.Context, perPage int) (output.Value, error)
	StarSegmentFn     func(ctx context.Context, segmentID int64, starred bool) (output.Value, error)
	ExploreSegmentsFn func(ctx context.Context, opts strava.ExploreOptions) (output.Value, error)

	SegmentEffortFn  func(ctx context.Context, effortID int64) (output.Value, error)
	SegmentEffortsFn func(ctx context.Context, segmentID int64, opts strava.EffortListOptions) (output.Value, error)

	RoutesFn       func(ctx context.Context, athleteID int64, perPage int) (output.Value, error)
	RouteFn        func(ctx context.Context, routeID int64) (output.Value, error)
	RouteStreamsFn func(ctx context.Context, routeID int64) (output.Value, error)

	AthleteClubsFn   func(ctx context.Context) (output.Value, error)
	ClubFn           func(ctx context.Context, clubID int64) (output.Value, error)
	ClubMembersFn    func(ctx context.Context, clubID int64, perPage int) (output.Value, error)
	ClubActivitiesFn func(ctx context.Context, clubID int64, perPage int) (output.Value, error)

	GearFn func(ctx context.Context, gearID string) (output.Value, error)
}

// Athlete calls the mocked Athlete implementation if provided,
// otherwise the call falls back to the underlying strava.Client implementation.
// NOTE: this may panic if the underlying strava.Client is left undefined
func (sc StravaClient) Athlete(ctx context.Context) (output.Value, error) {
	if sc.AthleteFn != nil {
		return sc.AthleteFn(ctx)
	}
	return sc.Client.Athlete(ctx)
}

// AthleteStats calls the mocked AthleteStats implementation if provided,
// otherwise the call falls back to the underlying strava.Client implementation.
// NOTE: this may panic if the underlying strava.Client is left undefined
func (sc StravaClient) AthleteStats(ctx context.Context, athleteID int64) (output.Value, error) {
	if sc.AthleteStatsFn != nil {
		return sc.AthleteStatsFn(ctx, athleteID)
	}
	return sc.Client.AthleteStats(ctx, athleteID)
}

// AthleteZones calls the mocked AthleteZones implementation if provided,
// otherwise the call falls back to the underlying strava.Client implementation.
// NOTE: this may panic if the underlying strava.Client is left undefined
func (sc StravaClient) AthleteZones(ctx context.Context) (output.Value, error) {
	if sc.AthleteZonesFn != nil {
		return sc.AthleteZonesFn(ctx)
	}
	return sc.Client.AthleteZones(ctx)
}

// Activities calls the mocked Activities implementation if provided,
// otherwise the call falls back to the underlying strava.Client implementation.
// NOTE: this may panic if the underlying strava.Client is left undefined
func (sc StravaClient) Activities(ctx context.Context, opts strava.ActivityListOptions) (output.Value, error) {
	if sc.ActivitiesFn != nil {
		return sc.ActivitiesFn(ctx, opts)
	}
	return sc.Client.Activities(ctx, opts)
}

// Activity calls the mocked Activity implementation if provided,
// otherwise the call falls back to the underlying strava.Client implementation.
// NOTE: this may panic if the underlying strava.Client is left undefined
func (sc StravaClient) Activity(ctx context.Context, activityID int64, includeAllEfforts bool) (output.Value, error) {
	if sc.ActivityFn != nil {
		return sc.ActivityFn(ctx, activityID, includeAllEfforts)
	}
	return sc.Client.Activity(ctx, activityID, includeAllEfforts)
}

// ActivityLaps calls the mocked ActivityLaps implementation if provided,
// otherwise the call falls back to the underlying strava.Client implementation.
// NOTE: this may panic if the underlying strava.Client is left undefined
func (sc StravaClient) ActivityLaps(ctx context.Context, activityID int64) (output.Value, error) {
	if sc.ActivityLapsFn != nil {
		return sc.ActivityLapsFn(ctx, activityID)
	}
	return sc.Client.ActivityLaps(ctx, activityID)
}

// ActivityZones calls the mocked ActivityZones implementation if provided,
// otherwise the call falls back to the underlying strava.Client implementation.
// NOTE: this may panic if the underlying strava.Client is left undefined
func (sc StravaClient) ActivityZones(ctx context.Context, activityID int64) (output.Value, error) {
	if sc.ActivityZonesFn != nil {
		return sc.ActivityZonesFn(ctx, activityID)
	}
	return sc.Client.ActivityZones(ctx, activityID)
}

// ActivityComments calls the mocked ActivityComments implementation if provided,
// otherwise the call falls back to the underlying strava.Client implementation.
// NOTE: this may panic if the underlying strava.Client is left undefined
func (sc StravaClient) ActivityComments(ctx context.Context, activityID int64) (output.Value, error) {
	if sc.ActivityCommentsFn != nil {
		return sc.ActivityCommentsFn(ctx, activityID)
	}
	return sc.Client.ActivityComments(ctx, activityID)
}

// ActivityKudos calls the mocked ActivityKudos implementation if provided,
// otherwise the call falls back to the underlying strava.Client implementation.
// NOTE: this may panic if the underlying strava.Client is left undefined
func (sc StravaClient) ActivityKudos(ctx context.Context, activityID int64) (output.Value, error) {
	if sc.ActivityKudosFn != nil {
		return sc.ActivityKudosFn(ctx, activityID)
	}
	return sc.Client.ActivityKudos(ctx, activityID)
}

// ActivityStreams calls the mocked ActivityStreams implementation if provided,
// otherwise the call falls back to the underlying strava.Client implementation.
// NOTE: this may panic if the underlying strava.Client is left undefined
func (sc StravaClient) ActivityStreams(ctx context.Context, activityID int64, keys []string) (output.Value, error) {
	if sc.ActivityStreamsFn != nil {
		return sc.ActivityStreamsFn(ctx, activityID, keys)
	}
	return sc.Client.ActivityStreams(ctx, activityID, keys)
}

// Segment calls the mocked Segment implementation if provided,
// otherwise the call falls back to the underlying strava.Client implementation.
// NOTE: this may panic if the underlying strava.Client is left undefined
func (sc StravaClient) Segment(ctx context.Context, segmentID int64) (output.Value, error) {
	if sc.SegmentFn != nil {
		return sc.SegmentFn(ctx, segmentID)
	}
	return sc.Client.Segment(ctx, segmentID)
}

// StarredSegments calls the mocked StarredSegments implementation if provided,
// otherwise the call falls back to the underlying strava.Client implementation.
// NOTE: this may panic if the underlying strava.Client is left undefined
func (sc StravaClient) StarredSegments(ctx context.Context, perPage int) (output.Value, error) {
	if sc.StarredSegmentsFn != nil {
		return sc.StarredSegmentsFn(ctx, perPage)
	}
	return sc.Client.StarredSegments(ctx, perPage)
}

// StarSegment calls the mocked StarSegment implementation if provided,
// otherwise the call falls back to the underlying strava.Client implementation.
// NOTE: this may panic if the underlying strava.Client is left undefined
func (sc StravaClient) StarSegment(ctx context.Context, segmentID int64, starred bool) (output.Value, error) {
	if sc.StarSegmentFn != nil {
		return sc.StarSegmentFn(ctx, segmentID, starred)
	}
	return sc.Client.StarSegment(ctx, segmentID, starred)
}

// ExploreSegments calls the mocked ExploreSegments implementation if provided,
// otherwise the call falls back to the underlying strava.Client implementation.
// NOTE: this may panic if the underlying strava.Client is left undefined
func (sc StravaClient) ExploreSegments(ctx context.Context, opts strava.ExploreOptions) (output.Value, error) {
	if sc.ExploreSegmentsFn != nil {
		return sc.ExploreSegmentsFn(ctx, opts)
	}
	return sc.Client.ExploreSegments(ctx, opts)
}

// SegmentEffort calls the mocked SegmentEffort implementation if provided,
// otherwise the call falls back to the underlying strava.Client implementation.
// NOTE: this may panic if the underlying strava.Client is left undefined
func (sc StravaClient) SegmentEffort(ctx context.Context, effortID int64) (output.Value, error) {
	if sc.SegmentEffortFn != nil {
		return sc.SegmentEffortFn(ctx, effortID)
	}
	return sc.Client.SegmentEffort(ctx, effortID)
}

// SegmentEfforts calls the mocked SegmentEfforts implementation if provided,
// otherwise the call falls back to the underlying strava.Client implementation.
// NOTE: this may panic if the underlying strava.Client is left undefined
func (sc StravaClient) SegmentEfforts(ctx context.Context, segmentID int64, opts strava.EffortListOptions) (output.Value, error) {
	if sc.SegmentEffortsFn != nil {
		return sc.SegmentEffortsFn(ctx, segmentID, opts)
	}
	return sc.Client.SegmentEfforts(ctx, segmentID, opts)
}

// Routes calls the mocked Routes implementation if provided,
// otherwise the call falls back to the underlying strava.Client implementation.
// NOTE: this may panic if the underlying strava.Client is left undefined
func (sc StravaClient) Routes(ctx context.Context, athleteID int64, perPage int) (output.Value, error) {
	if sc.RoutesFn != nil {
		return sc.RoutesFn(ctx, athleteID, perPage)
	}
	return sc.Client.Routes(ctx, athleteID, perPage)
}

// Route calls the mocked Route implementation if provided,
// otherwise the call falls back to the underlying strava.Client implementation.
// NOTE: this may panic if the underlying strava.Client is left undefined
func (sc StravaClient) Route(ctx context.Context, routeID int64) (output.Value, error) {
	if sc.RouteFn != nil {
		return sc.RouteFn(ctx, routeID)
	}
	return sc.Client.Route(ctx, routeID)
}

// RouteStreams calls the mocked RouteStreams implementation if provided,
// otherwise the call falls back to the underlying strava.Client implementation.
// NOTE: this may panic if the underlying strava.Client is left undefined
func (sc StravaClient) RouteStreams(ctx context.Context, routeID int64) (output.Value, error) {
	if sc.RouteStreamsFn != nil {
		return sc.RouteStreamsFn(ctx, routeID)
	}
	return sc.Client.RouteStreams(ctx, routeID)
}

// AthleteClubs calls the mocked AthleteClubs implementation if provided,
// otherwise the call falls back to the underlying strava.Client implementation.
// NOTE: this may panic if the underlying strava.Client is left undefined
func (sc StravaClient) AthleteClubs(ctx context.Context) (output.Value, error) {
	if sc.AthleteClubsFn != nil {
		return sc.AthleteClubsFn(ctx)
	}
	return sc.Client.AthleteClubs(ctx)
}

// Club calls the mocked Club implementation if provided,
// otherwise the call falls back to the underlying strava.Client implementation.
// NOTE: this may panic if the underlying strava.Client is left undefined
func (sc StravaClient) Club(ctx context.Context, clubID int64) (output.Value, error) {
	if sc.ClubFn != nil {
		return sc.ClubFn(ctx, clubID)
	}
	return sc.Client.Club(ctx, clubID)
}

// ClubMembers calls the mocked ClubMembers implementation if provided,
// otherwise the call falls back to the underlying strava.Client implementation.
// NOTE: this may panic if the underlying strava.Client is left undefined
func (sc StravaClient) ClubMembers(ctx context.Context, clubID int64, perPage int) (output.Value, error) {
	if sc.ClubMembersFn != nil {
		return sc.ClubMembersFn(ctx, clubID, perPage)
	}
	return sc.Client.ClubMembers(ctx, clubID, perPage)
}

// ClubActivities calls the mocked ClubActivities implementation if provided,
// otherwise the call falls back to the underlying strava.Client implementation.
// NOTE: this may panic if the underlying strava.Client is left undefined
func (sc StravaClient) ClubActivities(ctx context.Context, clubID int64, perPage int) (output.Value, error) {
	if sc.ClubActivitiesFn != nil {
		return sc.ClubActivitiesFn(ctx, clubID, perPage)
	}
	return sc.Client.ClubActivities(ctx, clubID, perPage)
}

// Gear calls the mocked Gear implementation if provided,
// otherwise the call falls back to the underlying strava.Client implementation.
// NOTE: this may panic if the underlying strava.Client is left undefined
func (sc StravaClient) Gear(ctx context.Context, gearID string) (output.Value, error) {
	if sc.GearFn != nil {
		return sc.GearFn(ctx, gearID)
	}
	return sc.Client.Gear(ctx, gearID)
}
