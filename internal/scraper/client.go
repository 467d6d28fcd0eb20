package scraper

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"strconv"

	v1 "github.com/Shuang777/lending-club/internal/domain/order/v1"
	"github.com/Shuang777/lending-club/pkg/config"
	"github.com/Shuang777/lending-club/pkg/errors"
	"github.com/Shuang777/lending-club/pkg/logger"
	"github.com/go-resty/resty/v2"
)

const (
	queryParamsPath  = "/foliofn/tradingInventory.action"
	notesPath        = "/foliofn/browseNotesAj.action"
	fileDownloadPath = "/fileDownload.action"

	loanStatsFile = "LoanStatsNew.csv"
)

// Client scrapes the marketplace's secondary market endpoints.
type Client struct {
	http   *resty.Client
	cfg    config.ScraperConfig
	logger logger.Interface
}

// NewClient creates a new scrape client. The cookie carries an
// authenticated marketplace session.
func NewClient(cfg config.ScraperConfig, logger logger.Interface) *Client {
	http := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("User-Agent", cfg.UserAgent)
	if cfg.Cookie != "" {
		http.SetHeader("Cookie", cfg.Cookie)
	}

	return &Client{
		http:   http,
		cfg:    cfg,
		logger: logger,
	}
}

// SetQueryParams registers the high level note search filters with the
// session. The marketplace keeps them server side, so this must run once
// before paging through notes.
func (c *Client) SetQueryParams(ctx context.Context) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(searchFilters()).
		Get(queryParamsPath)
	if err != nil {
		return c.requestError(queryParamsPath, err)
	}
	if resp.IsError() {
		return c.statusError(queryParamsPath, resp.StatusCode())
	}

	return nil
}

// FetchNotePage fetches one page of listed notes.
func (c *Client) FetchNotePage(ctx context.Context, offset, limit int) (*NotePage, error) {
	page := &NotePage{}
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"sortBy":     "opa",
			"dir":        "asc",
			"newrdnnum":  strconv.Itoa(10000000 + rand.Intn(80000000)),
			"startindex": strconv.Itoa(offset),
			"pagesize":   strconv.Itoa(limit),
		}).
		SetResult(page).
		Get(notesPath)
	if err != nil {
		return nil, c.requestError(notesPath, err)
	}
	if resp.IsError() {
		return nil, c.statusError(notesPath, resp.StatusCode())
	}

	if page.Result != resultSuccess {
		return nil, errors.TracerFromError(errors.NewErrorDetails(
			fmt.Sprintf("note page query returned %q", page.Result),
			string(errors.ScrapeDecodeError),
			"result",
		))
	}

	return page, nil
}

// FetchAllNotes registers the search filters and pages through every
// matching note. MaxRecords caps the result when positive.
func (c *Client) FetchAllNotes(ctx context.Context) ([]v1.ListingSnapshot, error) {
	if err := c.SetQueryParams(ctx); err != nil {
		return nil, err
	}

	probe, err := c.FetchNotePage(ctx, 0, 1)
	if err != nil {
		return nil, err
	}

	recordLimit := probe.TotalRecords
	if c.cfg.MaxRecords > 0 && c.cfg.MaxRecords < recordLimit {
		recordLimit = c.cfg.MaxRecords
	}

	c.logger.InfoContext(ctx, "Fetching listed notes", logger.Field{
		Key:   "limit",
		Value: recordLimit,
	}, logger.Field{
		Key:   "total",
		Value: probe.TotalRecords,
	})

	var snapshots []v1.ListingSnapshot
	for offset := 0; offset < recordLimit; offset += c.cfg.PageSize {
		page, err := c.FetchNotePage(ctx, offset, c.cfg.PageSize)
		if err != nil {
			return nil, err
		}
		if len(page.SearchResult.Loans) == 0 {
			break
		}

		snapshots = append(snapshots, page.SearchResult.Loans...)

		c.logger.DebugContext(ctx, "Fetched note page", logger.Field{
			Key:   "offset",
			Value: offset,
		}, logger.Field{
			Key:   "records",
			Value: len(page.SearchResult.Loans),
		})
	}

	if len(snapshots) > recordLimit {
		snapshots = snapshots[:recordLimit]
	}

	return snapshots, nil
}

// DownloadLoanStats streams the historical loan stats CSV. The caller owns
// the returned reader.
func (c *Client) DownloadLoanStats(ctx context.Context) (io.ReadCloser, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"file": loanStatsFile,
			"type": "gen",
		}).
		SetDoNotParseResponse(true).
		Get(fileDownloadPath)
	if err != nil {
		return nil, c.requestError(fileDownloadPath, err)
	}
	if resp.IsError() {
		resp.RawBody().Close()
		return nil, c.statusError(fileDownloadPath, resp.StatusCode())
	}

	return resp.RawBody(), nil
}

func (c *Client) requestError(path string, err error) error {
	return errors.TracerFromError(errors.NewErrorDetails(
		fmt.Sprintf("request to %s failed: %v", path, err),
		string(errors.ScrapeRequestError),
		"path",
	))
}

func (c *Client) statusError(path string, status int) error {
	return errors.TracerFromError(errors.NewErrorDetails(
		fmt.Sprintf("request to %s returned status %d", path, status),
		string(errors.ScrapeRequestError),
		"path",
	))
}
