package tracker

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bvanleeuwen/specsheet/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// nagerBaseURL is the public holiday API; no authentication required.
const nagerBaseURL = "https://date.nager.at/api/v3"

// HolidayClient imports public holidays from the Nager.Date API.
type HolidayClient struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewHolidayClient creates a holiday importer.
func NewHolidayClient(log zerolog.Logger) *HolidayClient {
	return &HolidayClient{
		baseURL: nagerBaseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		log: log.With().Str("component", "holidays").Logger(),
	}
}

type publicHoliday struct {
	Date      string `json:"date"`
	LocalName string `json:"localName"`
	Name      string `json:"name"`
	Global    bool   `json:"global"`
}

// PublicHolidays fetches the national holidays of a country for one year.
// Regional (non-global) entries are skipped; members in other regions
// would lose capacity they actually have.
func (c *HolidayClient) PublicHolidays(ctx context.Context, year int, countryCode string) ([]domain.HolidayEntry, error) {
	endpoint := fmt.Sprintf("%s/PublicHolidays/%d/%s", c.baseURL, year, countryCode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching public holidays: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, fmt.Errorf("country %q year %d: %w", countryCode, year, ErrNotFound)
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, string(body))
	}

	var payload []publicHoliday
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding holidays: %w", err)
	}

	var entries []domain.HolidayEntry
	for _, h := range payload {
		if !h.Global {
			continue
		}
		day, err := time.Parse("2006-01-02", h.Date)
		if err != nil {
			c.log.Warn().Str("date", h.Date).Str("name", h.Name).Msg("skipping holiday with malformed date")
			continue
		}
		entries = append(entries, domain.HolidayEntry{
			ID:         uuid.NewString(),
			Name:       h.LocalName,
			Start:      day,
			End:        day,
			IsNational: true,
		})
	}

	c.log.Info().
		Str("country", countryCode).
		Int("year", year).
		Int("holidays", len(entries)).
		Msg("public holidays imported")
	return entries, nil
}
