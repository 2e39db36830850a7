package adapter

import (
	"context"
	"fmt"
	"math/rand"
	"net"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/clio/internal/config"
	"github.com/MKhiriev/clio/internal/logger"
	"github.com/MKhiriev/clio/internal/utils"
	"github.com/MKhiriev/clio/models"
)

const (
	searchPath  = "/json/stations/search"
	serversPath = "/json/servers"
	clickPath   = "/json/url/"
)

type httpDirectoryAdapter struct {
	client *utils.HTTPClient

	// fallbackURL is both the discovery endpoint and the URL used when
	// discovery fails.
	fallbackURL string

	mu      sync.RWMutex
	baseURL string

	lookupHost func(ctx context.Context, host string) ([]string, error)
	pick       func(n int) int

	logger *logger.Logger
}

// NewDirectoryAdapter constructs the resty implementation of
// [DirectoryAdapter]. It validates dirCfg.BaseURL and configures the HTTP
// client with the request timeout and the user agent from appCfg.
//
// Returns an error if the base URL is empty or not an http(s) URL.
func NewDirectoryAdapter(dirCfg config.ClientDirectory, appCfg config.ClientApp, logger *logger.Logger) (DirectoryAdapter, error) {
	baseURL, err := normalizeBaseURL(dirCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid directory base url: %w", err)
	}

	return &httpDirectoryAdapter{
		client:      utils.NewHTTPClient(appCfg.UserAgent, dirCfg.RequestTimeout),
		fallbackURL: baseURL,
		baseURL:     baseURL,
		lookupHost:  net.DefaultResolver.LookupHost,
		pick:        rand.Intn,
		logger:      logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("address must include host and http(s) scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// BaseURL implements [DirectoryAdapter].
func (h *httpDirectoryAdapter) BaseURL() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.baseURL
}

func (h *httpDirectoryAdapter) setBaseURL(u string) {
	h.mu.Lock()
	h.baseURL = u
	h.mu.Unlock()
}

// Discover implements [DirectoryAdapter]. It resolves the fallback host first
// (a lookup failure is only logged), then GETs /json/servers from it and
// picks one server name at random as https://<name>.
func (h *httpDirectoryAdapter) Discover(ctx context.Context) error {
	log := h.logger.With().Str("func", "httpDirectoryAdapter.Discover").Logger()

	if u, err := url.Parse(h.fallbackURL); err == nil {
		if _, err = h.lookupHost(ctx, u.Hostname()); err != nil {
			log.Debug().Err(err).Str("host", u.Hostname()).Msg("directory host lookup failed")
		}
	}

	var servers []models.ServerInfo
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&servers).
		Get(h.fallbackURL + serversPath)
	if err != nil {
		h.setBaseURL(h.fallbackURL)
		return fmt.Errorf("%w: %w", ErrDiscoveryFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.setBaseURL(h.fallbackURL)
		return fmt.Errorf("%w: %w", ErrDiscoveryFailed, err)
	}

	names := make([]string, 0, len(servers))
	for _, s := range servers {
		if name := strings.TrimSpace(s.Name); name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		h.setBaseURL(h.fallbackURL)
		return fmt.Errorf("%w: no servers returned", ErrDiscoveryFailed)
	}

	picked := "https://" + names[h.pick(len(names))]
	h.setBaseURL(picked)
	log.Info().Str("base_url", picked).Int("servers", len(names)).Msg("directory mirror selected")

	return nil
}

// Search implements [DirectoryAdapter]. It GETs /json/stations/search with
// order=votes and reverse=true, filtering by name or, for tag queries, by
// tag.
func (h *httpDirectoryAdapter) Search(ctx context.Context, query models.SearchQuery) ([]models.Station, error) {
	term := strings.TrimSpace(query.Term)
	if term == "" {
		return nil, ErrEmptyQuery
	}

	field := "name"
	if query.ByTag {
		field = "tag"
	}

	params := map[string]string{
		"order":   "votes",
		"reverse": "true",
		field:     term,
	}
	if query.Limit > 0 {
		params["limit"] = strconv.Itoa(query.Limit)
	}

	var stations []models.Station
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&stations).
		Get(h.BaseURL() + searchPath)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	return stations, nil
}

// RegisterClick implements [DirectoryAdapter]. It POSTs to
// /json/url/<stationuuid>.
func (h *httpDirectoryAdapter) RegisterClick(ctx context.Context, stationUUID string) error {
	id, ok := utils.NormalizeStationUUID(stationUUID)
	if !ok {
		return nil
	}

	resp, err := h.client.R().
		SetContext(ctx).
		Post(h.BaseURL() + clickPath + id)
	if err != nil {
		return fmt.Errorf("click request: %w", err)
	}

	return mapHTTPError(resp)
}
