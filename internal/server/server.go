package server

import (
	"crypto/sha1"
	"database/sql"
	"encoding/binary"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"pocketcalc/internal/calc"
	datastructs "pocketcalc/internal/datastructs"
	"pocketcalc/internal/parser"
)

type state string

const (
	pending  state = "pending"
	hasError state = "error"
	ok       state = "ok"
)

type calculationState struct {
	State  state  `json:"state"`
	Result string `json:"result"`
}

// job is one accepted calculation awaiting the worker.
type job struct {
	id      int64
	postfix []parser.Token
}

type server struct {
	router *mux.Router
	db     *sql.DB
	jobs   *datastructs.Queue[job]
}

func newServer(db *sql.DB) *server {
	s := &server{
		db:   db,
		jobs: datastructs.NewQueue[job](64),
	}

	// background worker
	go s.runCalculations()

	r := mux.NewRouter()
	// auth handle
	r.HandleFunc("/api/register", s.handleRegister).Methods("POST")
	r.HandleFunc("/api/login", s.handleLogin).Methods("POST")
	// calculation handle
	r.HandleFunc("/api/calculate", s.handleCalculate).Methods("POST")
	r.HandleFunc("/api/result", s.handleGetResult).Methods("GET")
	r.HandleFunc("/api/validate", s.handleValidate).Methods("POST")

	s.router = r

	return s
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// GetServer builds the calculation API server on addr:port.
func GetServer(addr string, port int, db *sql.DB) *http.Server {
	var _addr string
	if strings.Contains(addr, "localhost") || strings.Contains(addr, "127.0.0.1") {
		_addr = fmt.Sprintf(":%d", port)
	} else {
		_addr = fmt.Sprintf("%s:%d", addr, port)
	}
	return &http.Server{
		Addr:    _addr,
		Handler: newServer(db),
	}
}

type exprHash int64

func getHash(line string) exprHash {
	h := sha1.New()
	h.Write([]byte(line))
	return exprHash(binary.BigEndian.Uint32(h.Sum(nil)))
}

func joinTokens(tokens []parser.Token) string {
	parts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		parts = append(parts, tok.Text)
	}
	return strings.Join(parts, " ")
}

// runCalculations drains the job queue, reducing each stored postfix
// sequence and recording the outcome.
func (s *server) runCalculations() {
	for {
		j := s.jobs.Dequeue()
		res, err := calc.EvaluatePostfix(j.postfix)
		if err != nil {
			log.WithField("id", j.id).WithError(err).Warn("calculation failed")
			if uerr := updateCalculationState(s.db, hasError, err.Error(), j.id); uerr != nil {
				log.WithField("id", j.id).WithError(uerr).Error("update calculation state")
			}
			continue
		}

		formatted := calc.Format(res)
		log.WithFields(log.Fields{"id": j.id, "result": formatted}).Info("calculation done")
		if err := updateCalculationState(s.db, ok, formatted, j.id); err != nil {
			log.WithField("id", j.id).WithError(err).Error("update calculation state")
		}
	}
}
