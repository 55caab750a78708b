package models

// DirectConversation is the single conversation between an unordered pair of
// accounts. PairKey is "min_max" over the two account ids, so resolving
// (A,B) and (B,A) lands on the same row; the unique index makes concurrent
// first-resolves converge instead of duplicating.
type DirectConversation struct {
	BaseModel

	PairKey         string               `json:"pair_key" gorm:"uniqueIndex"`
	FirstAccountID  uint                 `json:"first_account_id"`
	SecondAccountID uint                 `json:"second_account_id"`
	FirstAccount    Account              `json:"first_account"`
	SecondAccount   Account              `json:"second_account"`
	Members         []ConversationMember `json:"members" gorm:"foreignKey:ConversationID"`
}

func (v DirectConversation) Container() ContainerRef {
	return ContainerRef{Kind: ContainerKindDirect, ID: v.ID}
}

// OtherParticipant returns the peer of the given account in the pair.
func (v DirectConversation) OtherParticipant(accountId uint) uint {
	if v.FirstAccountID == accountId {
		return v.SecondAccountID
	}
	return v.FirstAccountID
}

type ConversationMember struct {
	BaseModel

	ConversationID uint               `json:"conversation_id" gorm:"uniqueIndex:idx_conversation_member"`
	AccountID      uint               `json:"account_id" gorm:"uniqueIndex:idx_conversation_member"`
	Conversation   DirectConversation `json:"conversation" gorm:"foreignKey:ConversationID"`
	Account        Account            `json:"account"`
	ReadingAnchor  *uint              `json:"reading_anchor"`
}
