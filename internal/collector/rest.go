package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/Yang0427/stocks/internal/model"
)

// RESTFetcher implements Fetcher against a self-hosted market data REST API,
// for deployments where Yahoo is unreachable.
type RESTFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewRESTFetcher creates a new fetcher with optional proxy support.
func NewRESTFetcher(baseURL, apiKey, proxyURL string) *RESTFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &RESTFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *RESTFetcher) Name() string { return "rest" }

// restBar is the expected JSON bar shape.
type restBar struct {
	Timestamp int64   `json:"timestamp"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    float64 `json:"volume"`
}

// restMeta is the expected JSON metadata shape.
type restMeta struct {
	LongName      string  `json:"long_name"`
	ShortName     string  `json:"short_name"`
	Price         float64 `json:"price"`
	DividendRate  float64 `json:"dividend_rate"`
	DividendYield float64 `json:"dividend_yield"`
}

func (f *RESTFetcher) FetchDailyBars(ticker string, days int) ([]model.PriceBar, error) {
	endpoint := fmt.Sprintf("%s/api/v1/bars/daily?symbol=%s&limit=%d",
		f.BaseURL, url.QueryEscape(ticker), days)
	body, err := f.get(endpoint)
	if err != nil {
		return nil, err
	}

	var raw []restBar
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode bars: %w", err)
	}
	bars := make([]model.PriceBar, len(raw))
	for i, rb := range raw {
		bars[i] = model.PriceBar{
			Date:   time.Unix(rb.Timestamp, 0),
			Open:   rb.Open,
			High:   rb.High,
			Low:    rb.Low,
			Close:  rb.Close,
			Volume: rb.Volume,
		}
	}
	// Ensure chronological order
	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })
	return bars, nil
}

func (f *RESTFetcher) FetchMeta(ticker string) (*model.TickerMeta, error) {
	endpoint := fmt.Sprintf("%s/api/v1/meta?symbol=%s", f.BaseURL, url.QueryEscape(ticker))
	body, err := f.get(endpoint)
	if err != nil {
		return nil, err
	}

	var raw restMeta
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode meta: %w", err)
	}
	return &model.TickerMeta{
		LongName:      raw.LongName,
		ShortName:     raw.ShortName,
		Price:         raw.Price,
		DividendRate:  raw.DividendRate,
		DividendYield: raw.DividendYield,
	}, nil
}

func (f *RESTFetcher) get(endpoint string) ([]byte, error) {
	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	if f.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.APIKey)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch: status %d, body: %s", resp.StatusCode, string(body))
	}
	return body, nil
}
