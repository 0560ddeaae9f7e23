package entity

import "net/http"

// ResponseType mirrors the fetch response type taxonomy. Only basic
// (same-origin) responses are eligible for caching.
type ResponseType string

const (
	ResponseTypeBasic  ResponseType = "basic"
	ResponseTypeCORS   ResponseType = "cors"
	ResponseTypeOpaque ResponseType = "opaque"
)

// FetchRequest is a request intercepted by the asset cache manager.
type FetchRequest struct {
	Method string
	URL    string
	Header http.Header
}

// FetchResponse is the outcome of a network fetch or a cache hit.
type FetchResponse struct {
	URL        string
	StatusCode int
	Header     http.Header
	Body       []byte
	Type       ResponseType
}

// Cacheable reports whether the response may be stored: success status and
// same-origin type only.
func (r *FetchResponse) Cacheable() bool {
	return r != nil && r.StatusCode == http.StatusOK && r.Type == ResponseTypeBasic
}

// Clone returns a deep copy so the cached entry cannot alias the response
// handed back to the caller.
func (r *FetchResponse) Clone() *FetchResponse {
	if r == nil {
		return nil
	}

	clone := &FetchResponse{
		URL:        r.URL,
		StatusCode: r.StatusCode,
		Type:       r.Type,
	}
	if r.Header != nil {
		clone.Header = r.Header.Clone()
	}
	if r.Body != nil {
		clone.Body = make([]byte, len(r.Body))
		copy(clone.Body, r.Body)
	}

	return clone
}
