package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"pocketcalc/internal/calc"
	"pocketcalc/internal/parser"
)

func (s *server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	if t := r.Header.Get("Content-Type"); t != "application/json" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	bearerToken := r.Header.Get("Authorization")
	if bearerToken == "" {
		http.Error(w, "unknown user", http.StatusBadRequest)
		return
	}
	userID, err := getUserID(bearerToken)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	_expr := struct {
		Value string `json:"expr"`
	}{}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&_expr); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Reject malformed input at submit time; arithmetic failures (zero
	// division and friends) surface later through the result state.
	if !calc.IsValidExpression(_expr.Value) {
		http.Error(w, parser.ErrUnbalancedParens.Error(), http.StatusBadRequest)
		return
	}
	tokens, err := parser.Tokenize(parser.Preprocess(_expr.Value))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	postfix, err := parser.ToPostfix(tokens)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	hash := getHash(joinTokens(postfix))
	if id, err := checkCalculationExists(s.db, hash, userID); err == nil {
		w.Write([]byte(strconv.FormatInt(id, 10)))
		return
	}

	id, err := storeCalculation(s.db, pending, userID, _expr.Value, hash)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !s.jobs.Enqueue(job{id: id, postfix: postfix}) {
		updateCalculationState(s.db, hasError, "calculation queue is full", id)
		http.Error(w, "too many pending calculations", http.StatusServiceUnavailable)
		return
	}
	w.Write([]byte(strconv.FormatInt(id, 10)))
}

func (s *server) handleGetResult(w http.ResponseWriter, r *http.Request) {
	bearerToken := r.Header.Get("Authorization")
	if bearerToken == "" {
		http.Error(w, "unknown user", http.StatusBadRequest)
		return
	}
	userID, err := getUserID(bearerToken)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	strID := r.URL.Query().Get("id")
	id, err := strconv.ParseInt(strID, 10, 64)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	st, err := getCalculationState(s.db, id, userID)
	if err != nil {
		http.Error(w, fmt.Sprintf("no calculation with id %d", id), http.StatusBadRequest)
		return
	}
	data, err := json.Marshal(st)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Write(data)
}

func (s *server) handleValidate(w http.ResponseWriter, r *http.Request) {
	if t := r.Header.Get("Content-Type"); t != "application/json" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	_expr := struct {
		Value string `json:"expr"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&_expr); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := struct {
		Valid bool `json:"valid"`
	}{Valid: calc.IsValidExpression(_expr.Value)}
	json.NewEncoder(w).Encode(resp)
}
