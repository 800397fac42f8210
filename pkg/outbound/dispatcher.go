// pkg/outbound/dispatcher.go
package outbound

import (
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ErrorString is the fixed sentinel returned as the body whenever transport
// fails. Kept for callers that compare against it; new call sites should
// check the returned error instead.
const ErrorString = "-2"

// NoResponse is the status returned when no response was received. It maps
// to "Invalid Response Code" in the status table.
const NoResponse = -1

const postReadTimeout = 10 * time.Second

// Dispatcher issues GET and POST callouts over clients borrowed from its
// ClientCache. Like the cache it is confined to one worker goroutine; give
// each worker its own Dispatcher.
type Dispatcher struct {
	cache *ClientCache
	log   *zap.Logger
}

func NewDispatcher(log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{
		cache: NewClientCache(log),
		log:   log,
	}
}

// Get issues a synchronous GET against https://host:port+path. On success it
// returns the response body and numeric status. On transport failure the
// body is ErrorString, the status is NoResponse and err carries the cause.
// Get applies no read timeout of its own; a client that previously served a
// Post keeps that call's timeout.
func (d *Dispatcher) Get(host string, port int, path string) (string, int, error) {
	client := d.cache.Acquire(host, port)
	start := time.Now()
	res, err := client.Get(Endpoint{Host: host, Port: port}.url(path))
	if err != nil {
		observe(http.MethodGet, NoResponse, start)
		return ErrorString, NoResponse, err
	}
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		observe(http.MethodGet, NoResponse, start)
		return ErrorString, NoResponse, err
	}
	observe(http.MethodGet, res.StatusCode, start)
	return string(body), res.StatusCode, nil
}

// Post issues a synchronous POST with the given body and content type,
// merging any extra headers into the request. A 10 second read timeout is
// set on the acquired client for this and subsequent calls through it.
// Failure semantics match Get, plus a diagnostic log line with the
// transport error.
func (d *Dispatcher) Post(host string, port int, path, body, contentType string, headers http.Header) (string, int, error) {
	client := d.cache.Acquire(host, port)
	client.Timeout = postReadTimeout

	req, err := http.NewRequest(http.MethodPost, Endpoint{Host: host, Port: port}.url(path), strings.NewReader(body))
	if err != nil {
		return ErrorString, NoResponse, err
	}
	for k, vs := range headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Content-Type", contentType)

	start := time.Now()
	res, err := client.Do(req)
	if err != nil {
		d.log.Debug("POST failed",
			zap.String("host", host),
			zap.Int("port", port),
			zap.String("path", path),
			zap.Error(err),
		)
		observe(http.MethodPost, NoResponse, start)
		return ErrorString, NoResponse, err
	}
	defer res.Body.Close()
	respBody, err := io.ReadAll(res.Body)
	if err != nil {
		d.log.Debug("POST failed",
			zap.String("host", host),
			zap.Int("port", port),
			zap.String("path", path),
			zap.Error(err),
		)
		observe(http.MethodPost, NoResponse, start)
		return ErrorString, NoResponse, err
	}
	observe(http.MethodPost, res.StatusCode, start)
	return string(respBody), res.StatusCode, nil
}

func observe(method string, code int, start time.Time) {
	outboundRequests.WithLabelValues(strconv.Itoa(code), method).Inc()
	outboundDuration.Observe(time.Since(start).Seconds())
}
