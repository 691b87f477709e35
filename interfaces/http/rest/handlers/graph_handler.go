package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Anirach/ncd-health-plus/application/ports"
	"github.com/Anirach/ncd-health-plus/application/queries"
	vo "github.com/Anirach/ncd-health-plus/domain/core/valueobjects"
	"github.com/Anirach/ncd-health-plus/pkg/common"
	pkgerrors "github.com/Anirach/ncd-health-plus/pkg/errors"
)

// GraphHandler serves the knowledge graph of the active model
type GraphHandler struct {
	queries *queries.GraphQueryService
	models  ports.ModelProvider
	errs    *pkgerrors.ErrorHandler
}

// NewGraphHandler creates a new graph handler
func NewGraphHandler(q *queries.GraphQueryService, models ports.ModelProvider, errs *pkgerrors.ErrorHandler) *GraphHandler {
	return &GraphHandler{queries: q, models: models, errs: errs}
}

// GetGraph handles GET /graph
func (h *GraphHandler) GetGraph(w http.ResponseWriter, r *http.Request) {
	respond(w, r, h.models, http.StatusOK, h.queries.Overview(), nil)
}

// ListNodes handles GET /graph/nodes?type=&domain=
func (h *GraphHandler) ListNodes(w http.ResponseWriter, r *http.Request) {
	var f queries.NodeFilter
	if t := r.URL.Query().Get("type"); t != "" {
		nt, err := vo.ParseNodeType(t)
		if err != nil {
			h.errs.Handle(w, r, pkgerrors.NewValidationError(err.Error()))
			return
		}
		f.Type = nt
	}
	if d := r.URL.Query().Get("domain"); d != "" {
		domain, err := vo.ParseDomain(d)
		if err != nil {
			h.errs.Handle(w, r, pkgerrors.NewValidationError(err.Error()))
			return
		}
		f.Domain = domain
	}
	respond(w, r, h.models, http.StatusOK, h.queries.Nodes(f), nil)
}

// GetNode handles GET /graph/nodes/{nodeID}
func (h *GraphHandler) GetNode(w http.ResponseWriter, r *http.Request) {
	id := vo.NodeID(chi.URLParam(r, "nodeID"))
	detail, err := h.queries.Node(id)
	if err != nil {
		h.errs.Handle(w, r, err)
		return
	}
	respond(w, r, h.models, http.StatusOK, detail, nil)
}

// ListEdges handles GET /graph/edges?domain=&source=&target=&page=&page_size=
func (h *GraphHandler) ListEdges(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var f queries.EdgeFilter
	if d := q.Get("domain"); d != "" {
		domain, err := vo.ParseDomain(d)
		if err != nil {
			h.errs.Handle(w, r, pkgerrors.NewValidationError(err.Error()))
			return
		}
		f.Domain = domain
	}
	for _, p := range []struct {
		key string
		dst *vo.NodeID
	}{{"source", &f.Source}, {"target", &f.Target}} {
		if v := q.Get(p.key); v != "" {
			id, err := vo.ParseNodeID(v)
			if err != nil {
				h.errs.Handle(w, r, pkgerrors.NewValidationError(err.Error()))
				return
			}
			*p.dst = id
		}
	}

	page := common.ExtractPaginationParams(r)
	edges, total := h.queries.Edges(f, page.Offset(), page.PageSize)
	respond(w, r, h.models, http.StatusOK, edges, common.BuildPaginationMeta(page.Page, page.PageSize, total))
}
