package handlers

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/mgacha/dashboard-services/internal/dashsvc/service"
	"github.com/mgacha/dashboard-services/internal/dashsvc/view"
)

type Handler struct {
	userService        *service.UserService
	collectionService  *service.CollectionService
	leaderboardService *service.LeaderboardService
	historyService     *service.HistoryService
	renderer           *view.Renderer
	leaderboardSize    int
}

func NewHandler(users *service.UserService, collection *service.CollectionService,
	leaderboard *service.LeaderboardService, history *service.HistoryService,
	renderer *view.Renderer, leaderboardSize int) *Handler {
	return &Handler{
		userService:        users,
		collectionService:  collection,
		leaderboardService: leaderboard,
		historyService:     history,
		renderer:           renderer,
		leaderboardSize:    leaderboardSize,
	}
}

type Response struct {
	Message string      `json:"message"`
	Code    int         `json:"code"`
	Data    interface{} `json:"data"`
	Error   string      `json:"error"`
}

func (h *Handler) CreateResponse(w http.ResponseWriter, rsp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(rsp.Code)

	json.NewEncoder(w).Encode(rsp)
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	rsp := Response{
		Message: "dashboard service is running at port " + os.Getenv("DASH_SERVICE_PORT"),
		Code:    200,
		Data:    nil,
	}
	h.CreateResponse(w, rsp)
}
