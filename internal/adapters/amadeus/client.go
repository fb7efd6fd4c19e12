package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"stayfinder/internal/adapters/observability"
	"stayfinder/internal/domain"
)

const (
	searchRadiusKM = 5
	maxAdults      = 9
)

// Client talks to the Amadeus reference-data and shopping APIs with
// client-side rate limiting and bearer auth from a TokenSource.
type Client struct {
	base   string
	hc     *http.Client
	tokens *TokenSource
	rl     *rate.Limiter
}

func New(base string, tokens *TokenSource, rps int) *Client {
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base:   base,
		hc:     &http.Client{Timeout: 20 * time.Second},
		tokens: tokens,
		rl:     rate.NewLimiter(rate.Limit(rps), rps),
	}
}

func (c *Client) HotelsByGeocode(ctx context.Context, lat, lon float64) ([]map[string]any, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("radius", strconv.Itoa(searchRadiusKM))
	q.Set("radiusUnit", "KM")
	return c.getData(ctx, "/v1/reference-data/locations/hotels/by-geocode", q)
}

func (c *Client) HotelsByCity(ctx context.Context, cityCode string) ([]map[string]any, error) {
	q := url.Values{}
	q.Set("cityCode", strings.ToUpper(cityCode))
	q.Set("radius", strconv.Itoa(searchRadiusKM))
	q.Set("radiusUnit", "KM")
	return c.getData(ctx, "/v1/reference-data/locations/hotels/by-city", q)
}

func (c *Client) HotelOffers(ctx context.Context, hotelIDs []string, adults int, checkIn, checkOut string) ([]map[string]any, error) {
	if adults < 1 {
		adults = 1
	}
	if adults > maxAdults {
		adults = maxAdults
	}
	q := url.Values{}
	q.Set("hotelIds", strings.Join(hotelIDs, ","))
	q.Set("adults", strconv.Itoa(adults))
	q.Set("checkInDate", checkIn)
	q.Set("checkOutDate", checkOut)
	return c.getData(ctx, "/v2/shopping/hotel-offers", q)
}

// getData performs a bearer-authenticated GET and unwraps the `data` array.
// 401 invalidates the token cache and surfaces domain.ErrUnauthorized; other
// 4xx/5xx surface as *domain.UpstreamError with the upstream detail message.
func (c *Client) getData(ctx context.Context, path string, q url.Values) ([]map[string]any, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return nil, err
	}
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("amadeus", path, resp.StatusCode, time.Since(start))

	if resp.StatusCode == http.StatusUnauthorized {
		c.tokens.Invalidate()
		return nil, domain.ErrUnauthorized
	}
	if resp.StatusCode >= 400 {
		return nil, &domain.UpstreamError{
			StatusCode: resp.StatusCode,
			Detail:     readErrorDetail(resp.Body),
		}
	}

	var envelope struct {
		Data []map[string]any `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", path, err)
	}
	return envelope.Data, nil
}

// readErrorDetail pulls the first errors[].detail from an upstream error body.
func readErrorDetail(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, 64<<10))
	var body struct {
		Errors []struct {
			Detail string `json:"detail"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(b, &body); err == nil && len(body.Errors) > 0 {
		return strings.TrimSpace(body.Errors[0].Detail)
	}
	return ""
}
