package provider

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"StockBoard/internal/model"
)

const defaultYahooBaseURL = "https://query1.finance.yahoo.com"

// YahooFetcher implements Fetcher using the Yahoo Finance public API.
type YahooFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewYahooFetcher creates a new Yahoo Finance fetcher with optional proxy support.
func NewYahooFetcher(proxyURL string) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooFetcher{
		BaseURL: defaultYahooBaseURL,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

// yahooChart is the response structure from the Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []interface{} `json:"open"`
					High   []interface{} `json:"high"`
					Low    []interface{} `json:"low"`
					Close  []interface{} `json:"close"`
					Volume []interface{} `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func toFloat(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

func (f *YahooFetcher) get(endpoint string) ([]byte, error) {
	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

func (f *YahooFetcher) fetchChart(symbol, interval, rng string) ([]model.PriceBar, error) {
	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s?interval=%s&range=%s",
		f.BaseURL, url.PathEscape(symbol), interval, rng)

	body, err := f.get(endpoint)
	if err != nil {
		return nil, err
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		// Empty but successful: a delisted or suspended symbol.
		return nil, nil
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, nil
	}
	quote := result.Indicators.Quote[0]
	bars := make([]model.PriceBar, 0, len(result.Timestamp))

	for i, ts := range result.Timestamp {
		o := toFloat(quote.Open[i])
		h := toFloat(quote.High[i])
		l := toFloat(quote.Low[i])
		c := toFloat(quote.Close[i])
		if o == 0 && h == 0 && l == 0 && c == 0 {
			continue // skip null bars (holidays etc.)
		}
		bars = append(bars, model.PriceBar{
			Time:   time.Unix(ts, 0),
			Open:   o,
			High:   h,
			Low:    l,
			Close:  c,
			Volume: toFloat(quote.Volume[i]),
		})
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}

func (f *YahooFetcher) FetchHistory(symbol string, lookback model.Lookback) ([]model.PriceBar, error) {
	return f.fetchChart(symbol, "1d", string(lookback))
}

func (f *YahooFetcher) FetchQuote(symbol string) ([]model.PriceBar, error) {
	return f.fetchChart(symbol, "1d", "5d")
}

// yahooNum is Yahoo's {raw, fmt} wrapper around optional numeric fields.
type yahooNum struct {
	Raw *float64 `json:"raw"`
}

// yahooSummary is the response structure from the quoteSummary API.
type yahooSummary struct {
	QuoteSummary struct {
		Result []struct {
			AssetProfile struct {
				Sector              string `json:"sector"`
				Industry            string `json:"industry"`
				Website             string `json:"website"`
				LongBusinessSummary string `json:"longBusinessSummary"`
			} `json:"assetProfile"`
			SummaryDetail struct {
				MarketCap        yahooNum `json:"marketCap"`
				TrailingPE       yahooNum `json:"trailingPE"`
				DividendYield    yahooNum `json:"dividendYield"`
				FiftyTwoWeekHigh yahooNum `json:"fiftyTwoWeekHigh"`
				FiftyTwoWeekLow  yahooNum `json:"fiftyTwoWeekLow"`
			} `json:"summaryDetail"`
			DefaultKeyStatistics struct {
				PriceToBook yahooNum `json:"priceToBook"`
			} `json:"defaultKeyStatistics"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

func (f *YahooFetcher) FetchProfile(symbol string) (*model.CompanyProfile, error) {
	endpoint := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=assetProfile%%2CsummaryDetail%%2CdefaultKeyStatistics",
		f.BaseURL, url.PathEscape(symbol))

	body, err := f.get(endpoint)
	if err != nil {
		return nil, err
	}

	var summary yahooSummary
	if err := json.Unmarshal(body, &summary); err != nil {
		return nil, fmt.Errorf("yahoo decode summary: %w", err)
	}
	if summary.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", summary.QuoteSummary.Error.Description)
	}
	if len(summary.QuoteSummary.Result) == 0 {
		return nil, nil
	}

	r := summary.QuoteSummary.Result[0]
	return &model.CompanyProfile{
		Symbol:           symbol,
		Sector:           r.AssetProfile.Sector,
		Industry:         r.AssetProfile.Industry,
		Website:          r.AssetProfile.Website,
		Summary:          r.AssetProfile.LongBusinessSummary,
		MarketCap:        r.SummaryDetail.MarketCap.Raw,
		TrailingPE:       r.SummaryDetail.TrailingPE.Raw,
		PriceToBook:      r.DefaultKeyStatistics.PriceToBook.Raw,
		DividendYield:    r.SummaryDetail.DividendYield.Raw,
		FiftyTwoWeekHigh: r.SummaryDetail.FiftyTwoWeekHigh.Raw,
		FiftyTwoWeekLow:  r.SummaryDetail.FiftyTwoWeekLow.Raw,
	}, nil
}

// yahooSearch is the response structure from the search API's news section.
type yahooSearch struct {
	News []struct {
		Title               string `json:"title"`
		Publisher           string `json:"publisher"`
		Link                string `json:"link"`
		ProviderPublishTime int64  `json:"providerPublishTime"`
	} `json:"news"`
}

func (f *YahooFetcher) FetchNews(symbol string) ([]model.NewsItem, error) {
	endpoint := fmt.Sprintf("%s/v1/finance/search?q=%s&newsCount=10&quotesCount=0",
		f.BaseURL, url.QueryEscape(symbol))

	body, err := f.get(endpoint)
	if err != nil {
		return nil, err
	}

	var search yahooSearch
	if err := json.Unmarshal(body, &search); err != nil {
		return nil, fmt.Errorf("yahoo decode news: %w", err)
	}

	items := make([]model.NewsItem, 0, len(search.News))
	for _, n := range search.News {
		items = append(items, model.NewsItem{
			Title:       n.Title,
			Publisher:   n.Publisher,
			Link:        n.Link,
			PublishedAt: time.Unix(n.ProviderPublishTime, 0),
		})
	}
	return items, nil
}
