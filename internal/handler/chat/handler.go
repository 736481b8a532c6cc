// Package chat exposes the conversational endpoint over HTTP and
// websocket.
package chat

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Rushabh-Runwal/Roblox-Outfit-Marketplace-Agents/internal/model/outfit"
	"github.com/Rushabh-Runwal/Roblox-Outfit-Marketplace-Agents/internal/service/stylist"
	"github.com/Rushabh-Runwal/Roblox-Outfit-Marketplace-Agents/pkg/utils"
)

// Handler serves the chat contract.
type Handler struct {
	stylist  *stylist.Service
	logger   *zap.Logger
	upgrader websocket.Upgrader
}

// New creates the chat handler.
func New(stylistSvc *stylist.Service, logger *zap.Logger) *Handler {
	return &Handler{
		stylist: stylistSvc,
		logger:  logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes registers the chat routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
	r.Get("/chat/ws", h.handleWebSocket)
}

type chatRequest struct {
	Prompt string `json:"prompt"`
	UserID *int64 `json:"user_id"`
}

type chatResponse struct {
	Success bool          `json:"success"`
	UserID  int64         `json:"user_id"`
	Reply   string        `json:"reply"`
	Outfit  []outfit.Item `json:"outfit"`
}

// validate returns a diagnostic reply for malformed requests. This is
// the only condition that produces a non-success response; degraded
// catalog or classifier behavior still reports success.
func (req *chatRequest) validate() (string, bool) {
	if req.Prompt == "" {
		return "prompt is required", false
	}
	if req.UserID == nil {
		return "user_id is required", false
	}
	return "", true
}

func failure(userID int64, reply string) chatResponse {
	return chatResponse{Success: false, UserID: userID, Reply: reply, Outfit: []outfit.Item{}}
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondJSON(w, http.StatusBadRequest, failure(0, "invalid request body"))
		return
	}

	if reason, ok := req.validate(); !ok {
		var userID int64
		if req.UserID != nil {
			userID = *req.UserID
		}
		utils.RespondJSON(w, http.StatusBadRequest, failure(userID, reason))
		return
	}

	result := h.stylist.HandleChat(r.Context(), *req.UserID, req.Prompt)
	outfitItems := result.Outfit
	if outfitItems == nil {
		outfitItems = []outfit.Item{}
	}

	utils.RespondJSON(w, http.StatusOK, chatResponse{
		Success: true,
		UserID:  *req.UserID,
		Reply:   result.Reply,
		Outfit:  outfitItems,
	})
}

// handleWebSocket speaks the same contract over a websocket: one
// chatRequest frame in, one chatResponse frame out, until the client
// hangs up.
func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	for {
		var req chatRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Warn("websocket read failed", zap.Error(err))
			}
			return
		}

		var resp chatResponse
		if reason, ok := req.validate(); !ok {
			var userID int64
			if req.UserID != nil {
				userID = *req.UserID
			}
			resp = failure(userID, reason)
		} else {
			result := h.stylist.HandleChat(r.Context(), *req.UserID, req.Prompt)
			outfitItems := result.Outfit
			if outfitItems == nil {
				outfitItems = []outfit.Item{}
			}
			resp = chatResponse{Success: true, UserID: *req.UserID, Reply: result.Reply, Outfit: outfitItems}
		}

		if err := conn.WriteJSON(resp); err != nil {
			h.logger.Warn("websocket write failed", zap.Error(err))
			return
		}
	}
}
