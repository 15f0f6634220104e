package controllers

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"sync"

	"github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Damien-Lo/PersonalAssistantNative/config"
	"github.com/Damien-Lo/PersonalAssistantNative/models"
)

/* ---------- globals ---------- */

// calendarRooms holds the open sockets per user: rooms[userID] = set of conns.
var (
	calendarRooms   = make(map[uint]map[*websocket.Conn]bool)
	calendarRoomsMu sync.Mutex
)

/* ---------- helpers ---------- */

// safe write to the socket (the client may already be gone)
func safeWrite(conn *websocket.Conn, typ int, payload []byte) {
	if err := conn.WriteMessage(typ, payload); err != nil && !websocket.IsCloseError(err) {
		log.Printf("WS write error: %v\n", err)
	}
}

/* ---------- WebSocket ---------- */

// CalendarWebSocket streams calendar change notifications to the owner's
// open clients so every screen can refetch without polling.
func CalendarWebSocket(c *websocket.Conn) {
	// Token comes in as a query parameter; websockets carry no headers here.
	tokStr := c.Query("token")
	if tokStr == "" {
		c.Close()
		return
	}

	secret := os.Getenv("JWT_SECRET")
	tok, err := jwt.Parse(tokStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		c.Close()
		return
	}
	claims := tok.Claims.(jwt.MapClaims)
	userID := uint(claims["user_id"].(float64))

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.Close()
		return
	}

	calendarRoomsMu.Lock()
	if calendarRooms[userID] == nil {
		calendarRooms[userID] = make(map[*websocket.Conn]bool)
	}
	calendarRooms[userID][c] = true
	calendarRoomsMu.Unlock()

	// The stream is one-way; the read loop only watches for the close.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			if err != io.EOF && !websocket.IsCloseError(err) {
				log.Println("WS read error:", err)
			}
			break
		}
	}

	calendarRoomsMu.Lock()
	delete(calendarRooms[userID], c)
	calendarRoomsMu.Unlock()
}

/* ---------- broadcast ---------- */

// BroadcastCalendarChange pushes a change notification to every open
// socket of the given user.
func BroadcastCalendarChange(userID uint, action string, event models.CalendarEvent) {
	calendarRoomsMu.Lock()
	defer calendarRoomsMu.Unlock()

	payload, _ := json.Marshal(struct {
		Type string               `json:"type"`
		Data models.CalendarEvent `json:"data"`
	}{action, event})

	for conn := range calendarRooms[userID] {
		safeWrite(conn, websocket.TextMessage, payload)
	}
}
