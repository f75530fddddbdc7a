package handlers

import (
	"net/http"

	"canteen-api/statemachine"

	"github.com/gin-gonic/gin"
)

// GetStateMachineInfo returns the preparation pipeline for informational
// purposes (docs, Postman collections).
func GetStateMachineInfo(c *gin.Context) {
	transitions := statemachine.GetAllTransitions()
	info := make([]gin.H, 0, len(transitions))
	for _, t := range transitions {
		info = append(info, gin.H{"from": t.From, "to": t.To})
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   info,
		"terminal_states": []string{"completed"},
		"description":     "Canteen Order Preparation Pipeline",
	})
}
