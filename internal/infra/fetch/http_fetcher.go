// Package fetch implements the network Fetcher on net/http.
package fetch

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"twashell/config"
	"twashell/internal/domain/entity"
	"twashell/internal/domain/service"

	"github.com/pkg/errors"
)

const fetchTimeout = 30 * time.Second

type httpFetcher struct {
	client *http.Client
	base   *url.URL
}

// NewHTTPFetcher creates a Fetcher resolving root-relative URLs against the
// configured application origin.
func NewHTTPFetcher(cfg *config.AppConfig) (service.Fetcher, error) {
	if cfg == nil || cfg.Origin == "" {
		return nil, errors.New("app origin not configured")
	}

	base, err := url.Parse(cfg.Origin)
	if err != nil {
		return nil, errors.Wrap(err, "parse app origin")
	}

	return &httpFetcher{
		client: &http.Client{Timeout: fetchTimeout},
		base:   base,
	}, nil
}

func (f *httpFetcher) Fetch(ctx context.Context, req *entity.FetchRequest) (*entity.FetchResponse, error) {
	target, err := f.base.Parse(req.URL)
	if err != nil {
		return nil, errors.Wrapf(err, "parse request url %s", req.URL)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target.String(), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	for key, values := range req.Header {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	httpResp, err := f.client.Do(httpReq)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch %s", req.URL)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "read response body for %s", req.URL)
	}

	responseType := entity.ResponseTypeBasic
	if target.Host != f.base.Host {
		responseType = entity.ResponseTypeCORS
	}

	return &entity.FetchResponse{
		URL:        req.URL,
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header.Clone(),
		Body:       body,
		Type:       responseType,
	}, nil
}
