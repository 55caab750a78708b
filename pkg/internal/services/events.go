package services

import (
	"github.com/rs/zerolog/log"

	"github.com/staylio/messaging/pkg/internal/models"
)

// PublishToContainer fans one domain event out to every member of a
// container, the sender included; senders reconcile their optimistic state
// against their own echo.
func PublishToContainer(ref models.ContainerRef, task models.UnifiedCommand) {
	idRange, err := ListContainerMemberIDs(ref)
	if err != nil {
		log.Warn().Err(err).Str("container", ref.Key()).Msg("An error occurred when resolving fan-out targets...")
		return
	}

	PushCommandBatch(idRange, task)
}
