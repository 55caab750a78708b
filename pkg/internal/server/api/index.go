package api

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func MapAPIs(app *fiber.App, baseURL string) {
	api := app.Group(baseURL).Name("API")
	{
		api.Get("/users", listUsers)
		api.Get("/users/me", authMiddleware, getUserinfo)
		api.Get("/users/:accountId", getOthersInfo)

		api.Post("/attachments", authMiddleware, uploadAttachment)

		channels := api.Group("/channels").Name("Channels API")
		{
			channels.Get("/", listChannel)
			channels.Get("/me", authMiddleware, listOwnedChannel)
			channels.Get("/alias/:alias", getChannelByAlias)
			channels.Get("/:channelId", getChannel)
			channels.Post("/", authMiddleware, createChannel)
			channels.Put("/:channelId", authMiddleware, editChannel)
			channels.Delete("/:channelId", authMiddleware, deleteChannel)

			channels.Get("/:channelId/members", listChannelMembers)
			channels.Post("/:channelId/join", authMiddleware, joinChannel)
			channels.Delete("/:channelId/join", authMiddleware, leaveChannel)

			channels.Get("/:channelId/messages", authSoftMiddleware, channelContainer, listMessages)
			channels.Post("/:channelId/messages", authMiddleware, channelContainer, newMessage)
			channels.Post("/:channelId/read", authMiddleware, channelContainer, markContainerRead)
			channels.Get("/:channelId/typing", authMiddleware, channelContainer, listTypingStatus)
			channels.Post("/:channelId/typing", authMiddleware, channelContainer, startTypingStatus)
		}

		conversations := api.Group("/conversations").Name("Conversations API")
		{
			conversations.Post("/", authMiddleware, getOrCreateConversation)
			conversations.Get("/", authMiddleware, listConversations)

			conversations.Get("/:conversationId/messages", authMiddleware, directContainer, listMessages)
			conversations.Post("/:conversationId/messages", authMiddleware, directContainer, newMessage)
			conversations.Post("/:conversationId/read", authMiddleware, directContainer, markContainerRead)
			conversations.Get("/:conversationId/typing", authMiddleware, directContainer, listTypingStatus)
			conversations.Post("/:conversationId/typing", authMiddleware, directContainer, startTypingStatus)
		}

		api.Post("/messages/:messageId/react", authMiddleware, toggleReaction)
		api.Delete("/typing", authMiddleware, stopTypingStatus)

		api.Get("/chats", authMiddleware, getChatList)

		api.Get("/gateway", authMiddleware, websocket.New(unifiedGateway))
	}
}
