package httphandler

import (
	"net/http"

	"unlock-service/internal/config"
	"unlock-service/internal/repository"
	"unlock-service/pkg/response"
)

// HealthHandler serves the diagnostic endpoints the public form and deploy
// tooling poke at.
type HealthHandler struct {
	repo repository.Repository
	cfg  *config.AppConfig
}

func NewHealthHandler(repo repository.Repository, cfg *config.AppConfig) *HealthHandler {
	return &HealthHandler{repo: repo, cfg: cfg}
}

func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{
		"message": "Phone Unlock Service Backend Running",
	})
}

func (h *HealthHandler) Hello(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{
		"message": "Hello from the backend API!",
	})
}

// TestStore reports whether the document store is reachable.
func (h *HealthHandler) TestStore(w http.ResponseWriter, r *http.Request) {
	res := map[string]interface{}{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      boolStatus(h.cfg.DatabaseURL != ""),
		"database_name":     boolStatus(h.cfg.DatabaseName != ""),
		"connection_status": "Not Connected",
	}

	if err := h.repo.Ping(r.Context()); err != nil {
		res["database"] = "❌ Error: " + err.Error()
	} else {
		res["database"] = "✅ Connected & Working"
		res["connection_status"] = "Connected"
	}

	response.JSON(w, http.StatusOK, res)
}

func boolStatus(set bool) string {
	if set {
		return "✅ Set"
	}
	return "❌ Not Set"
}
