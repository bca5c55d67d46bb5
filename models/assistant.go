package models

import "time"

type AssistantMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

type AssistantReply struct {
	Content string `json:"content"`
}
