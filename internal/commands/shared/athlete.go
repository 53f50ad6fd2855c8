package shared

import (
	"context"
	"errors"

	"github.com/eddmann/strava-cli/internal/cli"

	"github.com/iancoleman/orderedmap"
)

// CurrentAthleteID resolves the authenticated athlete's id, preferring the
// id captured at login over a round trip to the API
func CurrentAthleteID(ctx context.Context, profile *cli.Profile, clients cli.Clients) (int64, error) {
	tokens, err := profile.TokenSet()
	if err != nil {
		return 0, err
	}
	if tokens.AthleteID > 0 {
		return tokens.AthleteID, nil
	}

	athlete, err := clients.Strava.Athlete(ctx)
	if err != nil {
		return 0, err
	}

	record, ok := athlete.(*orderedmap.OrderedMap)
	if !ok {
		return 0, errors.New("unexpected athlete response")
	}
	id, ok := record.Get("id")
	if !ok {
		return 0, errors.New("athlete response carries no id")
	}
	athleteID, ok := id.(float64)
	if !ok {
		return 0, errors.New("athlete response carries a malformed id")
	}
	return int64(athleteID), nil
}
