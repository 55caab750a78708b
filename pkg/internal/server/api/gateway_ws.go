package api

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"

	"github.com/staylio/messaging/pkg/internal/models"
	"github.com/staylio/messaging/pkg/internal/services"
)

// unifiedGateway is the push channel. Clients subscribe to containers and
// receive every domain event of those containers; whatever they send gets
// dispatched like its REST counterpart.
func unifiedGateway(c *websocket.Conn) {
	user := c.Locals("user").(models.Account)
	clientId := uuid.NewString()

	services.ClientRegister(user, c)

	var task models.UnifiedCommand

	var messageType int
	var packet []byte
	var err error

	for {
		if messageType, packet, err = c.ReadMessage(); err != nil {
			break
		} else if err := jsoniter.Unmarshal(packet, &task); err != nil {
			_ = c.WriteMessage(messageType, models.UnifiedCommand{
				Action:  models.CommandError,
				Message: "unable to unmarshal your command, requires json request",
			}.Marshal())
			continue
		}

		response := dealCommand(task, user, clientId)

		if response != nil {
			if err = c.WriteMessage(messageType, response.Marshal()); err != nil {
				break
			}
		}
	}

	services.ClientUnregister(user, c)
	services.UnsubscribeAllWithClient(clientId)
	if !services.CheckOnline(user) {
		// Last connection gone, drop whatever subscriptions are left over.
		services.UnsubscribeAll(user.ID)
	}
}

func dealCommand(task models.UnifiedCommand, user models.Account, clientId string) *models.UnifiedCommand {
	switch task.Action {
	case models.CommandSubscribe:
		var ref models.ContainerRef
		models.FitStruct(task.Payload, &ref)

		if err := services.CheckContainerAccess(ref, user.ID); err != nil {
			return lo.ToPtr(models.UnifiedCommandFromError(err))
		}
		services.SubscribeContainer(user.ID, ref, clientId)
		return nil
	case models.CommandUnsubscribe:
		var ref models.ContainerRef
		models.FitStruct(task.Payload, &ref)

		services.UnsubscribeContainer(user.ID, ref)
		return nil
	case models.CommandSendText:
		var req struct {
			Container models.ContainerRef `json:"container"`
			Uuid      string              `json:"uuid"`
			Content   string              `json:"content"`
			ReplyTo   *uint               `json:"reply_to"`
		}
		models.FitStruct(task.Payload, &req)

		if len(req.Uuid) < 36 {
			req.Uuid = uuid.NewString()
		}

		if err := services.CheckContainerWriteAccess(req.Container, user.ID); err != nil {
			return lo.ToPtr(models.UnifiedCommandFromError(err))
		}

		message := models.Message{
			Uuid:      req.Uuid,
			Content:   req.Content,
			ReplyToID: req.ReplyTo,
			SenderID:  user.ID,
		}
		if req.Container.IsChannel() {
			message.ChannelID = &req.Container.ID
		} else {
			message.ConversationID = &req.Container.ID
		}

		if _, err := services.NewMessage(message); err != nil {
			return lo.ToPtr(models.UnifiedCommandFromError(err))
		}
		return nil
	case models.CommandTypingPing:
		var ref models.ContainerRef
		models.FitStruct(task.Payload, &ref)

		if err := services.CheckContainerWriteAccess(ref, user.ID); err == nil {
			// Best-effort, errors swallowed on purpose.
			_ = services.SetTypingStatus(ref, user)
		}
		return nil
	default:
		return &models.UnifiedCommand{
			Action:  models.CommandError,
			Message: "command not found",
		}
	}
}
