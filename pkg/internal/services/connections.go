package services

import (
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/samber/lo"

	"github.com/staylio/messaging/pkg/internal/models"
)

var (
	wsConn     = make(map[uint][]*websocket.Conn)
	wsConnLock sync.Mutex
)

func ClientRegister(user models.Account, conn *websocket.Conn) {
	wsConnLock.Lock()
	defer wsConnLock.Unlock()
	wsConn[user.ID] = append(wsConn[user.ID], conn)
}

func ClientUnregister(user models.Account, conn *websocket.Conn) {
	wsConnLock.Lock()
	defer wsConnLock.Unlock()
	wsConn[user.ID] = lo.Filter(wsConn[user.ID], func(item *websocket.Conn, index int) bool {
		return item != conn
	})
	if len(wsConn[user.ID]) == 0 {
		delete(wsConn, user.ID)
	}
}

func CheckOnline(user models.Account) bool {
	wsConnLock.Lock()
	defer wsConnLock.Unlock()
	return len(wsConn[user.ID]) > 0
}

// PushCommand writes one command to every live connection of an account.
// Delivery is at-least-once and unordered across containers; clients
// reconcile by id and timestamp.
func PushCommand(userId uint, task models.UnifiedCommand) {
	wsConnLock.Lock()
	conns := append([]*websocket.Conn(nil), wsConn[userId]...)
	wsConnLock.Unlock()

	for _, conn := range conns {
		_ = conn.WriteMessage(websocket.TextMessage, task.Marshal())
	}
}

func PushCommandBatch(userIds []uint, task models.UnifiedCommand) {
	for _, userId := range userIds {
		PushCommand(userId, task)
	}
}
