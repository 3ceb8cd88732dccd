package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"flyright-service/internal/domain/entity"
	"flyright-service/internal/domain/repository"
	"flyright-service/internal/infrastructure/auth"
	"flyright-service/internal/infrastructure/ratelimit"
	"flyright-service/internal/usecase"
	"flyright-service/pkg/logger"
)

// Handler exposes the membership auth and flight search endpoints.
type Handler struct {
	memberRepo repository.MemberRepository
	signer     *auth.TokenSigner
	limiter    *ratelimit.Limiter
	searcher   *usecase.LegSearcher
	logger     logger.Logger
}

// NewHandler creates a new API handler
func NewHandler(
	memberRepo repository.MemberRepository,
	signer *auth.TokenSigner,
	limiter *ratelimit.Limiter,
	searcher *usecase.LegSearcher,
	log logger.Logger,
) *Handler {
	return &Handler{
		memberRepo: memberRepo,
		signer:     signer,
		limiter:    limiter,
		searcher:   searcher,
		logger:     log,
	}
}

// Register attaches the API routes to a mux
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/auth", h.Auth)
	mux.HandleFunc("GET /api/search", h.Search)
}

// Auth verifies membership for an email and issues a session token
func (h *Handler) Auth(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || strings.TrimSpace(body.Email) == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}

	status, err := h.memberRepo.CheckMembership(r.Context(), body.Email)
	if err != nil {
		h.logger.Error("Membership check failed", "email", body.Email, "error", err)
		writeError(w, http.StatusBadGateway, "membership check failed")
		return
	}

	if !status.Valid {
		writeJSON(w, http.StatusForbidden, map[string]interface{}{
			"valid":  false,
			"reason": status.Reason,
		})
		return
	}

	token, err := h.signer.CreateToken(body.Email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"valid":  true,
		"reason": status.Reason,
		"token":  token,
	})
}

// Search runs one leg search for an authenticated member
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	payload := h.authorize(w, r)
	if payload == nil {
		return
	}

	allowed, remaining := h.limiter.Allow(payload.Email)
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
	if !allowed {
		writeError(w, http.StatusTooManyRequests, "search limit reached, try again later")
		return
	}

	q := r.URL.Query()
	dep := strings.ToUpper(q.Get("dep"))
	arr := strings.ToUpper(q.Get("arr"))
	date := q.Get("date")
	if dep == "" || arr == "" || date == "" {
		writeError(w, http.StatusBadRequest, "dep, arr and date are required")
		return
	}

	flex, _ := strconv.Atoi(q.Get("flex"))
	cabin := entity.Cabin(q.Get("cabin"))
	if cabin == "" {
		cabin = entity.CabinEconomy
	}

	results, err := h.searcher.SearchLeg(r.Context(), usecase.LegQuery{
		Dep:              dep,
		Arr:              arr,
		Date:             date,
		Flex:             flex,
		Cabin:            cabin,
		CreativeBusiness: q.Get("creative") == "true",
	})
	if err != nil {
		h.logger.Error("Leg search failed", "dep", dep, "arr", arr, "error", err)
		writeError(w, http.StatusBadGateway, "search failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"results": results,
		"count":   len(results),
	})
}

func (h *Handler) authorize(w http.ResponseWriter, r *http.Request) *auth.TokenPayload {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		writeError(w, http.StatusUnauthorized, "missing auth token")
		return nil
	}

	payload := h.signer.VerifyToken(strings.TrimPrefix(header, "Bearer "))
	if payload == nil {
		writeError(w, http.StatusUnauthorized, "invalid or expired token")
		return nil
	}
	return payload
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
