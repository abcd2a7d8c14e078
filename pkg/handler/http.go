package handler

import (
	"net/http"
	"os"
	"strings"
	"time"

	httputils "github.com/foomo/keel/utils/net/http"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/foomo/skeletonio/pkg/metrics"
	"github.com/foomo/skeletonio/pkg/store"
	"github.com/foomo/skeletonio/skeleton"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type (
	// HTTP read-only access to a skeleton library
	HTTP struct {
		l        *zap.Logger
		basePath string
		library  *store.Library
	}
	HTTPOption func(*HTTP)
)

// skeletonStats summary of one stored skeleton
type skeletonStats struct {
	Name   string `json:"name"`
	Root   string `json:"root"`
	Nodes  int    `json:"nodes"`
	Joints int    `json:"joints"`
	Depth  int    `json:"depth"`
}

// ------------------------------------------------------------------------------------------------
// ~ Constructor
// ------------------------------------------------------------------------------------------------

// NewHTTP returns a handler serving the library under the base path
func NewHTTP(l *zap.Logger, library *store.Library, opts ...HTTPOption) http.Handler {
	inst := &HTTP{
		l:        l.Named("http"),
		basePath: "/skeletonio",
		library:  library,
	}

	for _, opt := range opts {
		opt(inst)
	}

	return inst
}

// ------------------------------------------------------------------------------------------------
// ~ Options
// ------------------------------------------------------------------------------------------------

func WithBasePath(v string) HTTPOption {
	return func(o *HTTP) {
		o.basePath = v
	}
}

// ------------------------------------------------------------------------------------------------
// ~ Public methods
// ------------------------------------------------------------------------------------------------

func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputils.ServerError(h.l, w, r, http.StatusMethodNotAllowed, errors.New("method not allowed"))
		return
	}

	path := strings.Trim(strings.TrimPrefix(r.URL.Path, h.basePath), "/")
	route, name := resolveRoute(path)
	if route == "" {
		httputils.ServerError(h.l, w, r, http.StatusNotFound, errors.Errorf("no route for %q", path))
		return
	}

	start := time.Now()
	err := h.executeRequest(w, r, route, name)
	status := "success"
	if err != nil {
		status = "error"
	}

	metrics.ServiceRequestCounter.WithLabelValues(string(route), status).Inc()
	metrics.ServiceRequestDuration.WithLabelValues(string(route), status).Observe(time.Since(start).Seconds())
}

// ------------------------------------------------------------------------------------------------
// ~ Private methods
// ------------------------------------------------------------------------------------------------

func (h *HTTP) executeRequest(w http.ResponseWriter, r *http.Request, route Route, name string) error {
	switch route {
	case RouteList:
		names, err := h.library.List(r.Context())
		if err != nil {
			httputils.ServerError(h.l, w, r, http.StatusInternalServerError, err)
			return err
		}
		if names == nil {
			names = []string{}
		}
		return h.writeJSON(w, names)
	case RouteGet:
		data, err := h.library.LoadBytes(r.Context(), name)
		if err != nil {
			h.writeLoadError(w, r, name, err)
			return err
		}
		w.Header().Set("Content-Type", "application/json")
		_, err = w.Write(data)
		return err
	case RouteStats:
		record, err := h.library.Load(r.Context(), name)
		if err != nil {
			h.writeLoadError(w, r, name, err)
			return err
		}
		return h.writeJSON(w, skeletonStats{
			Name:   name,
			Root:   record.Name,
			Nodes:  record.Count(),
			Joints: record.Joints(),
			Depth:  record.Depth(),
		})
	default:
		err := errors.Errorf("unknown route: %s", route)
		httputils.ServerError(h.l, w, r, http.StatusNotFound, err)
		return err
	}
}

func (h *HTTP) writeJSON(w http.ResponseWriter, v interface{}) error {
	data, err := json.MarshalIndent(v, "", skeleton.Indent)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	_, err = w.Write(data)
	return err
}

func (h *HTTP) writeLoadError(w http.ResponseWriter, r *http.Request, name string, err error) {
	if errors.Is(err, os.ErrNotExist) {
		httputils.ServerError(h.l, w, r, http.StatusNotFound, errors.Errorf("no such skeleton: %q", name))
		return
	}
	httputils.ServerError(h.l, w, r, http.StatusInternalServerError, err)
}

// resolveRoute maps a trimmed request path to a route and skeleton name
func resolveRoute(path string) (Route, string) {
	parts := strings.Split(path, "/")
	switch {
	case path == string(RouteList):
		return RouteList, ""
	case len(parts) == 2 && parts[0] == string(RouteList):
		return RouteGet, parts[1]
	case len(parts) == 3 && parts[0] == string(RouteList) && parts[2] == string(RouteStats):
		return RouteStats, parts[1]
	default:
		return "", ""
	}
}
