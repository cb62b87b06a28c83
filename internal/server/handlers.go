package server

import (
	"encoding/json"
	"net/http"

	"github.com/ehrlich-b/rubik-solver/internal/cubecode"
	"github.com/ehrlich-b/rubik-solver/internal/solver"
)

// SolveRequest is the {op, cube} contract of spec.md §6, extended with an
// optional stage name (default: fully solved) per SPEC_FULL.md §4.7.
type SolveRequest struct {
	Op    string `json:"op"`
	Cube  string `json:"cube"`
	Stage string `json:"stage"`
}

// SolveResponse mirrors spec.md §6: status "ok" plus the rotation sequence
// on success, or one of the two error statuses with no solution field.
type SolveResponse struct {
	Status   string   `json:"status"`
	Solution []string `json:"solution,omitempty"`
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, SolveResponse{Status: "ERROR_INVALID_CUBE"})
		return
	}

	if req.Cube == "" {
		writeJSON(w, http.StatusBadRequest, SolveResponse{Status: "ERROR_MISSING_CUBE"})
		return
	}

	stage := solver.Solved
	if req.Stage != "" {
		parsed, ok := solver.ParseStage(req.Stage)
		if !ok {
			writeJSON(w, http.StatusBadRequest, SolveResponse{Status: "ERROR_INVALID_CUBE"})
			return
		}
		stage = parsed
	}

	sv, err := solver.NewFromText(req.Cube, stage)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, SolveResponse{Status: statusFor(err)})
		return
	}

	rotations, err := sv.GetSolution()
	if err != nil {
		// A solver.Error here is a ProgrammerError: a stage failed its own
		// post-invariant on a validated cube. Per spec §7 this is a fatal
		// assertion, not a client-facing input error.
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	tokens := make([]string, len(rotations))
	for i, rot := range rotations {
		tokens[i] = rot.String()
	}
	writeJSON(w, http.StatusOK, SolveResponse{Status: "ok", Solution: tokens})
}

func statusFor(err error) string {
	if codecErr, ok := err.(*cubecode.Error); ok && codecErr.Kind == cubecode.KindInputMissing {
		return "ERROR_MISSING_CUBE"
	}
	return "ERROR_INVALID_CUBE"
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}
