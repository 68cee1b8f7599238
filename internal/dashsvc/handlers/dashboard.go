package handlers

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/mgacha/dashboard-services/internal/dashsvc/service"
	"github.com/mgacha/dashboard-services/internal/dashsvc/view"
)

// DashboardHandler serves the full dashboard page. Absent or unknown
// user ids degrade to the empty view; store failures and catalog
// integrity faults fail the request.
func (h *Handler) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	userID := query.Get("user_id")
	sortName := query.Get("sort_type")
	if sortName == "" {
		sortName = "Number"
	}
	sortType := service.ParseSortType(sortName)
	reverse := query.Get("reverse") == "1"

	allUsers, err := h.userService.ListUsers(ctx)
	if err != nil {
		log.Errorf("Error [UserService.ListUsers] %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	topUsers, err := h.leaderboardService.TopUsers(ctx, h.leaderboardSize)
	if err != nil {
		log.Errorf("Error [LeaderboardService.TopUsers] %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	totalCards, err := h.leaderboardService.TotalCards(ctx)
	if err != nil {
		log.Errorf("Error [LeaderboardService.TotalCards] %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	selectedUser, err := h.userService.GetUser(ctx, userID)
	if err != nil {
		log.Errorf("Error [UserService.GetUser] %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	selectedName := ""
	twitchID := ""
	if selectedUser != nil {
		selectedName = selectedUser.TwitchName
		twitchID = selectedUser.TwitchID
	}

	cards, err := h.collectionService.BuildCardList(ctx, userID, sortType, reverse)
	if err != nil {
		log.Errorf("Error [CollectionService.BuildCardList] %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	logs, err := h.historyService.FormatHistory(ctx, twitchID)
	if err != nil {
		log.Errorf("Error [HistoryService.FormatHistory] %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	data := view.PageData{
		AllUsers:         allUsers,
		TopUsers:         topUsers,
		TotalUniqueCards: totalCards,
		SelectedUserID:   userID,
		SelectedUserName: selectedName,
		SortType:         sortName,
		Reverse:          reverse,
		SortOptions:      service.SortTypeNames,
		Cards:            cards,
		Logs:             logs,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Render(w, data); err != nil {
		log.Errorf("Error [Renderer.Render] %s", err)
	}
}
