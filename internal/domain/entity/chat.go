package entity

import "time"

// ChatMessage is one append-only message between two identities.
type ChatMessage struct {
	ID         string    `json:"id" firestore:"id"`
	SenderID   string    `json:"senderId" firestore:"senderId"`
	ReceiverID string    `json:"receiverId" firestore:"receiverId"`
	SenderName string    `json:"senderName" firestore:"senderName"`
	Message    string    `json:"message" firestore:"message"`
	Timestamp  time.Time `json:"timestamp" firestore:"timestamp"`
}
