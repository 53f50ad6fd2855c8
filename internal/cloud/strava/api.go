package strava

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/eddmann/strava-cli/internal/cli/feedback"
	"github.com/eddmann/strava-cli/internal/output"

	"github.com/iancoleman/orderedmap"
)

// set of supported api header keys
const (
	headerAuthorization = "Authorization"
	headerContentType   = "Content-Type"

	mediaTypeJSON = "application/json"
)

func (c *client) getOne(ctx context.Context, path string, query url.Values) (output.Value, error) {
	res, err := c.do(ctx, http.MethodGet, path, query)
	if err != nil {
		return nil, err
	}
	return decodeRecord(res)
}

func (c *client) getList(ctx context.Context, path string, query url.Values) (output.Value, error) {
	res, err := c.do(ctx, http.MethodGet, path, query)
	if err != nil {
		return nil, err
	}
	return decodeRecords(res)
}

func (c *client) putOne(ctx context.Context, path string, query url.Values) (output.Value, error) {
	res, err := c.do(ctx, http.MethodPut, path, query)
	if err != nil {
		return nil, err
	}
	return decodeRecord(res)
}

func (c *client) do(ctx context.Context, method, path string, query url.Values) (*http.Response, error) {
	var res *http.Response
	err := c.auth.WithAuth(ctx, func(ctx context.Context, accessToken string) error {
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
		if err != nil {
			return err
		}
		if len(query) > 0 {
			req.URL.RawQuery = query.Encode()
		}
		req.Header.Set(headerAuthorization, "Bearer "+accessToken)

		r, err := c.httpClient.Do(req)
		if err != nil {
			return feedback.NewTransientErr(err)
		}
		res = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	if res.StatusCode >= 200 && res.StatusCode <= 299 {
		return res, nil
	}
	defer res.Body.Close()

	return nil, parseResponseError(res)
}

func decodeRecord(res *http.Response) (output.Value, error) {
	defer res.Body.Close()

	record := orderedmap.New()
	if err := json.NewDecoder(res.Body).Decode(record); err != nil {
		return nil, feedback.NewSerializationErr(err)
	}
	return record, nil
}

func decodeRecords(res *http.Response) (output.Value, error) {
	defer res.Body.Close()

	var records []*orderedmap.OrderedMap
	if err := json.NewDecoder(res.Body).Decode(&records); err != nil {
		return nil, feedback.NewSerializationErr(err)
	}
	return records, nil
}
