package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/poscode/pkg/buildinfo"
	"github.com/matzehuels/poscode/pkg/errors"
	"github.com/matzehuels/poscode/pkg/perm"
)

type unrankRequest struct {
	Code   []int  `json:"code"`
	Family string `json:"family"`
}

type unrankResponse struct {
	Permutation perm.Permutation `json:"permutation"`
	Family      string           `json:"family"`
	Index       *int             `json:"index,omitempty"`
}

type rankRequest struct {
	Permutation []int  `json:"permutation"`
	Family      string `json:"family"`
}

type rankResponse struct {
	Code   perm.Code `json:"code"`
	Family string    `json:"family"`
	Index  *int      `json:"index,omitempty"`
}

type enumerateResponse struct {
	N            int                `json:"n"`
	Total        int                `json:"total"`
	Permutations []perm.Permutation `json:"permutations"`
}

type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleUnrank(w http.ResponseWriter, r *http.Request) {
	var req unrankRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	f, err := perm.ParseFamily(req.Family)
	if err != nil {
		s.writeError(w, err)
		return
	}
	code := perm.Code(req.Code)
	d, err := perm.Unrank(f, code)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, unrankResponse{
		Permutation: d,
		Family:      f.String(),
		Index:       codeIndex(code),
	})
}

func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	var req rankRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	f, err := perm.ParseFamily(req.Family)
	if err != nil {
		s.writeError(w, err)
		return
	}
	c, err := perm.Rank(f, perm.Permutation(req.Permutation))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rankResponse{
		Code:   c,
		Family: f.String(),
		Index:  codeIndex(c),
	})
}

func (s *Server) handleValueAt(w http.ResponseWriter, r *http.Request) {
	code, k, err := lookupParams(r, "k")
	if err != nil {
		s.writeError(w, err)
		return
	}
	v, err := perm.ValueAt(code, k)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"k": k, "value": v})
}

func (s *Server) handlePositionOf(w http.ResponseWriter, r *http.Request) {
	code, x, err := lookupParams(r, "x")
	if err != nil {
		s.writeError(w, err)
		return
	}
	p, err := perm.PositionOf(code, x)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"x": x, "position": p})
}

func (s *Server) handleEnumerate(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(chi.URLParam(r, "n"))
	if err != nil {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid size %q", chi.URLParam(r, "n")))
		return
	}
	if err := errors.ValidateSize(n, MaxEnumerateSize); err != nil {
		s.writeError(w, err)
		return
	}
	limit := 0
	if q := r.URL.Query().Get("limit"); q != "" {
		if limit, err = strconv.Atoi(q); err != nil || limit < 0 {
			s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid limit %q", q))
			return
		}
	}
	perms := perm.Collect(n, limit)
	writeJSON(w, http.StatusOK, enumerateResponse{
		N:            n,
		Total:        perm.Factorial(n),
		Permutations: perms,
	})
}

// lookupParams reads the code and the integer parameter name from the query.
func lookupParams(r *http.Request, name string) (perm.Code, int, error) {
	q := r.URL.Query()
	if !q.Has("code") {
		return nil, 0, errors.New(errors.ErrCodeInvalidInput, "missing code parameter")
	}
	v, err := errors.ParseIntList(q.Get("code"))
	if err != nil {
		return nil, 0, err
	}
	code := perm.Code(v)
	if err := perm.ValidateCode(code); err != nil {
		return nil, 0, err
	}
	raw := q.Get(name)
	i, err := strconv.Atoi(raw)
	if err != nil {
		return nil, 0, errors.New(errors.ErrCodeInvalidInput, "invalid %s %q", name, raw)
	}
	return code, i, nil
}

func codeIndex(c perm.Code) *int {
	if len(c) > perm.MaxIndexSize {
		return nil
	}
	idx := c.Index()
	return &idx
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode request body")
	}
	return nil
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.IsValidation(err) {
		status = http.StatusBadRequest
	} else {
		s.Logger.Error("request failed", "err", err)
	}
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, status, errorResponse{Code: code, Message: errors.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
