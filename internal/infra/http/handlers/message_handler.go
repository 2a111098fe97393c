package handlers

import (
	"net/http"

	"github.com/xavierca1/leadstore/internal/usecase"
)

type MessageHandler struct {
	GenerateUC *usecase.GenerateMessageUseCase
	SendUC     *usecase.SendMessageUseCase
}

func NewMessageHandler(generateUC *usecase.GenerateMessageUseCase, sendUC *usecase.SendMessageUseCase) *MessageHandler {
	return &MessageHandler{
		GenerateUC: generateUC,
		SendUC:     sendUC,
	}
}

// HandleGenerate fills the lead's message with the default outreach text.
func (h *MessageHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseLeadID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "id must be an integer")
		return
	}

	lead, err := h.GenerateUC.Execute(r.Context(), id)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, lead)
}

// HandleSend emails the lead's stored message to the lead.
func (h *MessageHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	id, ok := parseLeadID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "id must be an integer")
		return
	}

	if _, err := h.SendUC.Execute(r.Context(), id); err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Message sent successfully"})
}
