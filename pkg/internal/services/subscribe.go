package services

import (
	"sync"

	"github.com/staylio/messaging/pkg/internal/models"
)

// Container key -> UserID -> Client ID
var subscribeInfo = make(map[string]map[uint]string)
var subscribeLock sync.Mutex

// A subscribed user gets container events over their websocket and skips
// the out-of-band notification for them.

func CheckSubscribed(userId uint, ref models.ContainerRef) bool {
	subscribeLock.Lock()
	defer subscribeLock.Unlock()
	if _, ok := subscribeInfo[ref.Key()]; ok {
		if _, ok := subscribeInfo[ref.Key()][userId]; ok {
			return true
		}
	}
	return false
}

func SubscribeContainer(userId uint, ref models.ContainerRef, clientId string) {
	subscribeLock.Lock()
	defer subscribeLock.Unlock()
	if _, ok := subscribeInfo[ref.Key()]; !ok {
		subscribeInfo[ref.Key()] = make(map[uint]string)
	}
	subscribeInfo[ref.Key()][userId] = clientId
}

func UnsubscribeContainer(userId uint, ref models.ContainerRef) {
	subscribeLock.Lock()
	defer subscribeLock.Unlock()
	if _, ok := subscribeInfo[ref.Key()]; ok {
		delete(subscribeInfo[ref.Key()], userId)
	}
}

func UnsubscribeAll(userId uint) {
	subscribeLock.Lock()
	defer subscribeLock.Unlock()
	for _, v := range subscribeInfo {
		delete(v, userId)
	}
}

func UnsubscribeAllWithContainer(ref models.ContainerRef) {
	subscribeLock.Lock()
	defer subscribeLock.Unlock()
	delete(subscribeInfo, ref.Key())
}

func UnsubscribeAllWithClient(clientId string) {
	subscribeLock.Lock()
	defer subscribeLock.Unlock()
	for _, v := range subscribeInfo {
		for k, item := range v {
			if item == clientId {
				delete(v, k)
			}
		}
	}
}
