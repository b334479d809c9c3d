package utils

import (
	"encoding/gob"
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// FlashMessage is a one-time status string shown on the next rendered
// page after a redirect. Level matches the bootstrap alert classes the
// templates use ("success", "danger").
type FlashMessage struct {
	Level   string
	Message string
}

func init() {
	// The cookie store gob-encodes session values
	gob.Register(FlashMessage{})
}

// Flash queues a message in the session for the next render.
func Flash(c *gin.Context, level, message string) {
	session := sessions.Default(c)
	session.AddFlash(FlashMessage{Level: level, Message: message})
	if err := session.Save(); err != nil {
		log.Printf("Error saving flash to session: %v", err)
	}
}

// TakeFlashes drains and returns all pending flash messages.
func TakeFlashes(c *gin.Context) []FlashMessage {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) > 0 {
		if err := session.Save(); err != nil {
			log.Printf("Error clearing flashes from session: %v", err)
		}
	}
	messages := make([]FlashMessage, 0, len(raw))
	for _, f := range raw {
		if m, ok := f.(FlashMessage); ok {
			messages = append(messages, m)
		}
	}
	return messages
}
