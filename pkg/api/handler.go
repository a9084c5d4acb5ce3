package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/astfn/as-enum/pkg/catalog"
	"github.com/astfn/as-enum/pkg/defaults"
	"github.com/astfn/as-enum/pkg/enum"
	aserrors "github.com/astfn/as-enum/pkg/errors"
	"github.com/astfn/as-enum/pkg/serializer"
	"github.com/astfn/as-enum/pkg/server"
)

// ListResponse is the body of GET /v1/enums.
type ListResponse struct {
	Count int               `json:"count"`
	Enums []catalog.Summary `json:"enums"`
}

// Handler serves the enums of a catalog.
type Handler struct {
	catalog     *catalog.Catalog
	version     string
	cacheMaxAge time.Duration
	timeout     time.Duration
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithVersion sets the version stamped into response documents.
func WithVersion(v string) HandlerOption {
	return func(h *Handler) { h.version = v }
}

// WithCacheMaxAge sets the Cache-Control max-age of enum responses.
func WithCacheMaxAge(d time.Duration) HandlerOption {
	return func(h *Handler) { h.cacheMaxAge = d }
}

// WithTimeout bounds how long a single request may take.
func WithTimeout(d time.Duration) HandlerOption {
	return func(h *Handler) {
		if d > 0 {
			h.timeout = d
		}
	}
}

// NewHandler creates a handler for c.
func NewHandler(c *catalog.Catalog, opts ...HandlerOption) *Handler {
	h := &Handler{
		catalog:     c,
		cacheMaxAge: defaults.EnumCacheMaxAge,
		timeout:     defaults.EnumHandlerTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes returns the API routes keyed by mux pattern.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"GET /v1/enums":                   h.withTimeout(h.HandleList),
		"GET /v1/enums/{name}":            h.withTimeout(h.HandleDescribe),
		"GET /v1/enums/{name}/options":    h.withTimeout(h.HandleOptions),
		"GET /v1/enums/{name}/dictionary": h.withTimeout(h.HandleDictionary),
		"GET /v1/enums/{name}/lookup":     h.withTimeout(h.HandleLookup),
	}
}

func (h *Handler) withTimeout(next http.HandlerFunc) http.HandlerFunc {
	return http.TimeoutHandler(next, h.timeout, "request timed out").ServeHTTP
}

// HandleList lists the registered enums.
func (h *Handler) HandleList(w http.ResponseWriter, _ *http.Request) {
	items := h.catalog.Items()
	resp := ListResponse{
		Count: len(items),
		Enums: make([]catalog.Summary, len(items)),
	}
	for i, item := range items {
		resp.Enums[i] = item.Summary()
	}

	h.setCacheHeaders(w)
	serializer.RespondJSON(w, http.StatusOK, resp)
}

// HandleDescribe returns keys, values, labels and entries of one enum.
func (h *Handler) HandleDescribe(w http.ResponseWriter, r *http.Request) {
	item, ok := h.item(w, r)
	if !ok {
		return
	}

	h.setCacheHeaders(w)
	serializer.RespondJSON(w, http.StatusOK, item.Describe(h.version))
}

// HandleOptions generates options. Both aliases default to label and value
// for every request so that concurrent clients do not see each other's
// overrides.
func (h *Handler) HandleOptions(w http.ResponseWriter, r *http.Request) {
	item, ok := h.item(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	labelAlias := q.Get("labelAlias")
	if labelAlias == "" {
		labelAlias = enum.DefaultLabelAlias
	}
	valueAlias := q.Get("valueAlias")
	if valueAlias == "" {
		valueAlias = enum.DefaultValueAlias
	}
	slog.Debug("generating options",
		"name", item.Name,
		"labelAlias", labelAlias,
		"valueAlias", valueAlias)

	doc := item.Options(h.version, enum.WithLabelAlias(labelAlias), enum.WithValueAlias(valueAlias))

	h.setCacheHeaders(w)
	serializer.RespondJSON(w, http.StatusOK, doc)
}

// HandleDictionary returns the direct-access dictionary of one enum.
func (h *Handler) HandleDictionary(w http.ResponseWriter, r *http.Request) {
	item, ok := h.item(w, r)
	if !ok {
		return
	}

	h.setCacheHeaders(w)
	serializer.RespondJSON(w, http.StatusOK, item.Dictionary(h.version))
}

// HandleLookup resolves ?key= or ?value= against one enum.
func (h *Handler) HandleLookup(w http.ResponseWriter, r *http.Request) {
	item, ok := h.item(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	hasKey, hasValue := q.Has(catalog.ByKey), q.Has(catalog.ByValue)
	if hasKey == hasValue {
		server.WriteError(w, r, http.StatusBadRequest, aserrors.ErrCodeInvalidRequest,
			"exactly one of key or value is required", false, nil)
		return
	}

	var (
		result *catalog.LookupResult
		err    error
	)
	if hasKey {
		result, err = item.LookupKey(q.Get(catalog.ByKey), h.version)
	} else {
		result, err = item.LookupValue(q.Get(catalog.ByValue), h.version)
	}
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Lookup failed", nil)
		return
	}

	h.setCacheHeaders(w)
	serializer.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) item(w http.ResponseWriter, r *http.Request) (*catalog.Item, bool) {
	item, err := h.catalog.Lookup(r.PathValue("name"))
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Enum lookup failed", nil)
		return nil, false
	}
	return item, true
}

func (h *Handler) setCacheHeaders(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(h.cacheMaxAge.Seconds())))
}
