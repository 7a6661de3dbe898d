package models

type Error struct {
	Message string `json:"message"`
}

type Message struct {
	Message string `json:"message"`
}

type CreatedMessage struct {
	Message string `json:"message"`
	ID      int    `json:"id"`
}
