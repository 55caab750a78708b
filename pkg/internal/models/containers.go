package models

import "fmt"

type ContainerKind = string

const (
	ContainerKindChannel = ContainerKind("channel")
	ContainerKindDirect  = ContainerKind("direct")
)

// ContainerRef is the tagged reference to the scope holding messages and
// typing indicators: exactly one channel or one direct conversation.
type ContainerRef struct {
	Kind ContainerKind `json:"kind" validate:"required,oneof=channel direct"`
	ID   uint          `json:"id" validate:"required"`
}

func (v ContainerRef) IsChannel() bool {
	return v.Kind == ContainerKindChannel
}

func (v ContainerRef) Key() string {
	return fmt.Sprintf("%s#%d", v.Kind, v.ID)
}
