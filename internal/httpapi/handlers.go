package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/vahanlens/vahanlens/core"
	"github.com/vahanlens/vahanlens/schema"
	"go.uber.org/zap"
)

func (s *Server) handleFilters() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := s.store.DistinctValues(r.Context())
		if err != nil {
			s.internalError(w, "filters", err)
			return
		}
		s.writeJSON(w, opts)
	}
}

func (s *Server) handleSummary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		groupBy, err := parseGroupBy(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		limit, err := parseLimit(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		records, err := s.store.QueryRecords(r.Context(), filter)
		if err != nil {
			s.internalError(w, "summary", err)
			return
		}
		result, err := core.Summary(records, filter, groupBy)
		if err != nil {
			s.engineError(w, "summary", err)
			return
		}
		if limit > 0 && len(result.Points) > limit {
			result.Points = result.Points[:limit]
		}
		s.writeJSON(w, result)
	}
}

func (s *Server) handleGrowthYoY() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		groupBy, err := parseGroupBy(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		records, err := s.store.QueryRecords(r.Context(), filter)
		if err != nil {
			s.internalError(w, "growth yoy", err)
			return
		}
		points, err := core.Aggregate(records, filter, groupBy)
		if err != nil {
			s.engineError(w, "growth yoy", err)
			return
		}
		growth, err := core.YearOverYear(points)
		if err != nil {
			s.engineError(w, "growth yoy", err)
			return
		}
		s.writeJSON(w, schema.GrowthResult{GroupBy: groupBy, Points: growth})
	}
}

func (s *Server) handleGrowthQoQ() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		groupBy, err := parseGroupBy(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		records, err := s.store.QueryRecords(r.Context(), filter)
		if err != nil {
			s.internalError(w, "growth qoq", err)
			return
		}
		points, err := core.Aggregate(records, filter, groupBy)
		if err != nil {
			s.engineError(w, "growth qoq", err)
			return
		}
		growth, err := core.QuarterOverQuarter(points)
		if err != nil {
			s.engineError(w, "growth qoq", err)
			return
		}
		s.writeJSON(w, schema.QuarterGrowthResult{GroupBy: groupBy, Points: growth})
	}
}

func (s *Server) handleShare() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		records, err := s.store.QueryRecords(r.Context(), filter)
		if err != nil {
			s.internalError(w, "share", err)
			return
		}
		groupBy := []schema.Dimension{schema.DimPeriod, schema.DimCategory, schema.DimMaker}
		points, err := core.Aggregate(records, filter, groupBy)
		if err != nil {
			s.engineError(w, "share", err)
			return
		}
		shares, err := core.MarketShare(points)
		if err != nil {
			s.engineError(w, "share", err)
			return
		}
		s.writeJSON(w, schema.ShareResult{Points: shares})
	}
}

func (s *Server) handleTrends() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		records, err := s.store.QueryRecords(r.Context(), filter)
		if err != nil {
			s.internalError(w, "trends", err)
			return
		}
		stats, err := core.TrendStats(records, filter)
		if err != nil {
			s.engineError(w, "trends", err)
			return
		}
		s.writeJSON(w, stats)
	}
}

// writeJSON renders a success payload.
func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// internalError hides store failures behind a generic 500.
func (s *Server) internalError(w http.ResponseWriter, op string, err error) {
	s.log.Error(op, zap.Error(err))
	http.Error(w, "internal error", http.StatusInternalServerError)
}

// engineError maps rejected inputs to 400 and everything else to 500.
func (s *Server) engineError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, core.ErrInvalidInput) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.internalError(w, op, err)
}

// parseFilter builds a FilterSpec from query parameters: from, to (YYYY-MM)
// and repeatable or comma-separated category, maker, state.
func parseFilter(r *http.Request) (schema.FilterSpec, error) {
	var filter schema.FilterSpec
	q := r.URL.Query()

	if v := q.Get("from"); v != "" {
		from, err := schema.ParsePeriod(v)
		if err != nil {
			return filter, fmt.Errorf("invalid from: %w", err)
		}
		filter.From = &from
	}
	if v := q.Get("to"); v != "" {
		to, err := schema.ParsePeriod(v)
		if err != nil {
			return filter, fmt.Errorf("invalid to: %w", err)
		}
		filter.To = &to
	}

	for _, raw := range splitParams(q["category"]) {
		cat := schema.Category(strings.ToUpper(raw))
		if _, ok := schema.ValidCategories[cat]; !ok {
			return filter, fmt.Errorf("invalid category %q", raw)
		}
		filter.Categories = append(filter.Categories, cat)
	}
	filter.Makers = splitParams(q["maker"])
	filter.States = splitParams(q["state"])

	if err := filter.Validate(); err != nil {
		return filter, err
	}
	return filter, nil
}

// parseGroupBy reads the group-by parameter, defaulting to period+category.
func parseGroupBy(r *http.Request) ([]schema.Dimension, error) {
	raw := splitParams(r.URL.Query()["group-by"])
	if len(raw) == 0 {
		return []schema.Dimension{schema.DimPeriod, schema.DimCategory}, nil
	}
	dims := make([]schema.Dimension, 0, len(raw))
	hasPeriod := false
	for _, v := range raw {
		dim := schema.Dimension(strings.ToLower(v))
		if _, ok := schema.ValidDimensions[dim]; !ok {
			return nil, fmt.Errorf("invalid group-by dimension %q", v)
		}
		if dim == schema.DimPeriod {
			hasPeriod = true
		}
		dims = append(dims, dim)
	}
	if !hasPeriod {
		dims = append([]schema.Dimension{schema.DimPeriod}, dims...)
	}
	return dims, nil
}

// parseLimit reads an optional positive limit parameter.
func parseLimit(r *http.Request) (int, error) {
	v := r.URL.Query().Get("limit")
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid limit %q", v)
	}
	return n, nil
}

// splitParams flattens repeatable query parameters that may also carry
// comma-separated lists.
func splitParams(values []string) []string {
	var out []string
	for _, v := range values {
		for p := range strings.SplitSeq(v, ",") {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}
	return out
}
