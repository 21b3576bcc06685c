package v1handler

import (
	"catalog/internal/domains"
	"catalog/pkg/domain"
	"catalog/pkg/logger"
	"catalog/pkg/serrors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// parseListDomainsParams reads the optional start and count query parameters.
func parseListDomainsParams(q url.Values) (domains.ListRequest, error) {
	var req domains.ListRequest

	for _, p := range []struct {
		name string
		dst  **int
	}{
		{name: "start", dst: &req.Start},
		{name: "count", dst: &req.Count},
	} {
		raw := q.Get(p.name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return req, serrors.Wrap(serrors.ErrBadRequest, err, "%s must be an integer", p.name)
		}
		if v < 0 {
			return req, serrors.With(serrors.ErrBadRequest, "%s must not be negative", p.name)
		}
		*p.dst = &v
	}

	return req, nil
}

// ListDomains returns a page of domains, hydrated with their properties where
// they could be resolved.
func (h Handler) ListDomains(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := parseListDomainsParams(r.URL.Query())
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	res, err := h.deps.Domains.List(ctx, SessionFromContext(ctx), req).Await(ctx)
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	var resolved []*domain.Domain
	if h.deps.Resolver != nil && len(res.Domains) > 0 {
		resolved, err = h.deps.Resolver.Resolve(ctx, res.Domains)
		if err != nil {
			// the page itself is valid; clients still get the URNs
			logger.Warn(ctx, "could not resolve domains", zap.Error(err))
			resolved = nil
		}
	}

	writeJSON(ctx, w, http.StatusOK, func(enc *jx.Encoder) {
		encodeDomainList(enc, res, resolved)
	})
}

func encodeDomainList(enc *jx.Encoder, res domains.ListResult, resolved []*domain.Domain) {
	enc.ObjStart()
	enc.FieldStart("start")
	enc.Int(res.Start)
	enc.FieldStart("count")
	enc.Int(res.Count)
	enc.FieldStart("total")
	enc.Int(res.Total)
	enc.FieldStart("domains")
	enc.ArrStart()
	for i, stub := range res.Domains {
		enc.ObjStart()
		enc.FieldStart("urn")
		enc.Str(stub.ID.String())
		enc.FieldStart("type")
		enc.Str(string(stub.Kind))
		if i < len(resolved) && resolved[i] != nil {
			enc.FieldStart("properties")
			encodeDomainProperties(enc, resolved[i].Properties)
		}
		enc.ObjEnd()
	}
	enc.ArrEnd()
	enc.ObjEnd()
}

func encodeDomainProperties(enc *jx.Encoder, p domain.DomainProperties) {
	enc.ObjStart()
	enc.FieldStart("name")
	enc.Str(p.Name)
	if p.Description != "" {
		enc.FieldStart("description")
		enc.Str(p.Description)
	}
	if len(p.Owners) > 0 {
		enc.FieldStart("owners")
		enc.ArrStart()
		for _, o := range p.Owners {
			enc.Str(o.String())
		}
		enc.ArrEnd()
	}
	enc.ObjEnd()
}
